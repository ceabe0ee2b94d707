// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package bitboard

import "github.com/kestrelchess/kestrel/pkg/square"

// useful bitboard definitions
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// Squares holds a one-bit mask for every square, keyed by square.Square.
var Squares [square.N]Board

// Files holds a full-file mask for every file, keyed by square.File.
var Files [square.FileN]Board

// Ranks holds a full-rank mask for every rank, keyed by square.Rank.
var Ranks [square.RankN]Board

// Diagonals holds a full-diagonal mask for every a1-h8-direction diagonal,
// keyed by square.Diagonal.
var Diagonals [square.DiagonalN]Board

// AntiDiagonals holds a full-diagonal mask for every h1-a8-direction
// diagonal, keyed by square.AntiDiagonal.
var AntiDiagonals [square.AntiDiagonalN]Board

// named single-file masks, used below to build up the Files table and
// referenced directly by the pawn double-push and promotion-rank logic.
const (
	FileA Board = 0x0101010101010101
	FileB Board = FileA << 1
	FileC Board = FileA << 2
	FileD Board = FileA << 3
	FileE Board = FileA << 4
	FileF Board = FileA << 5
	FileG Board = FileA << 6
	FileH Board = FileA << 7
)

// named single-rank masks, used below to build up the Ranks table.
const (
	Rank1 Board = 0x00000000000000ff
	Rank2 Board = Rank1 << (8 * 1)
	Rank3 Board = Rank1 << (8 * 2)
	Rank4 Board = Rank1 << (8 * 3)
	Rank5 Board = Rank1 << (8 * 4)
	Rank6 Board = Rank1 << (8 * 5)
	Rank7 Board = Rank1 << (8 * 6)
	Rank8 Board = Rank1 << (8 * 7)
)

// castling occupancy masks: the squares that must be empty for the
// corresponding castle to be possible, ignoring attacks.
const (
	F1G1   Board = 0x0000000000000060
	B1C1D1 Board = 0x000000000000000e
	C1D1   Board = 0x000000000000000c
	F8G8   Board = F1G1 << (8 * 7)
	B8C8D8 Board = B1C1D1 << (8 * 7)
	C8D8   Board = C1D1 << (8 * 7)
)

func init() {
	mask := Board(1)
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = mask
		mask <<= 1
	}

	Files = [square.FileN]Board{
		square.FileA: FileA, square.FileB: FileB, square.FileC: FileC, square.FileD: FileD,
		square.FileE: FileE, square.FileF: FileF, square.FileG: FileG, square.FileH: FileH,
	}

	Ranks = [square.RankN]Board{
		square.Rank1: Rank1, square.Rank2: Rank2, square.Rank3: Rank3, square.Rank4: Rank4,
		square.Rank5: Rank5, square.Rank6: Rank6, square.Rank7: Rank7, square.Rank8: Rank8,
	}

	for s := square.A1; s <= square.H8; s++ {
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}
}
