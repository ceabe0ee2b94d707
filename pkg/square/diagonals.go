// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package square

// Diagonal identifies one of the 15 a1-h8-direction diagonals, indexed so
// that DiagonalA1H8, the long diagonal, sits in the middle.
type Diagonal int

const (
	DiagonalH1 Diagonal = iota
	DiagonalG1H2
	DiagonalF1H3
	DiagonalE1H4
	DiagonalD1H5
	DiagonalC1H6
	DiagonalB1H7

	DiagonalA1H8

	DiagonalA2G8
	DiagonalA3F8
	DiagonalA4E8
	DiagonalA5D8
	DiagonalA6C8
	DiagonalA7B8
	DiagonalA8

	DiagonalN = 15
)

// AntiDiagonal identifies one of the 15 h1-a8-direction diagonals, indexed
// so that DiagonalH1A8, the long anti-diagonal, sits in the middle.
type AntiDiagonal int

const (
	DiagonalA1 AntiDiagonal = iota
	DiagonalA2B1
	DiagonalA3C1
	DiagonalA4D1
	DiagonalA5E1
	DiagonalA6F1
	DiagonalA7G1

	DiagonalH1A8

	DiagonalB8H2
	DiagonalC8H3
	DiagonalD8H4
	DiagonalE8H5
	DiagonalF8H6
	DiagonalG8H7
	DiagonalH8

	AntiDiagonalN = 15
)
