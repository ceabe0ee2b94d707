// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Between holds, for every pair of squares lying on a common rank, file,
// or diagonal, the bitboard of squares strictly between them (excluding
// both endpoints). For pairs not on a common line, the mask is Empty.
var Between [square.N][square.N]Board

// BetweenInclusive is Between but including the to-square, which is the
// shape the checkmask/pinmask algorithm wants: the squares a piece may
// move to in order to block or capture a particular checker or pinner.
var BetweenInclusive [square.N][square.N]Board

func init() {
	for from := square.A1; from <= square.H8; from++ {
		for to := square.A1; to <= square.H8; to++ {
			if from == to {
				continue
			}

			line, ok := lineBetween(from, to)
			if !ok {
				continue
			}

			Between[from][to] = line
			BetweenInclusive[from][to] = line | Board(1)<<uint(to)
		}
	}
}

// lineBetween returns the squares strictly between from and to if they
// share a rank, file, or diagonal, and whether such a line exists.
func lineBetween(from, to square.Square) (Board, bool) {
	switch {
	case from.Rank() == to.Rank():
		return rayBetween(from, to, 1), true
	case from.File() == to.File():
		return rayBetween(from, to, 8), true
	case from.Diagonal() == to.Diagonal():
		return rayBetween(from, to, 9), true
	case from.AntiDiagonal() == to.AntiDiagonal():
		return rayBetween(from, to, 7), true
	default:
		return Empty, false
	}
}

// rayBetween walks from the lower of from/to towards the higher in steps
// of stride, collecting every square strictly in between. It builds the
// single-square masks itself because this file's init runs before the
// one in useful.go that fills Squares.
func rayBetween(from, to square.Square, stride square.Square) Board {
	if from > to {
		from, to = to, from
	}

	var bb Board
	for s := from + stride; s < to; s += stride {
		bb |= Board(1) << uint(s)
	}

	return bb
}
