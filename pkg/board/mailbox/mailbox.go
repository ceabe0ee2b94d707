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

// Package mailbox implements an 8x8 mailbox chessboard representation,
// indexed directly by square.Square, kept alongside the bitboards for
// cheap single-square piece lookup.
package mailbox

import (
	"fmt"
	"strconv"

	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// Board represents an 8x8 chessboard of pieces, indexed by square.Square.
type Board [square.N]piece.Piece

// String converts a Board into a human readable string, rank 8 first.
func (b Board) String() string {
	s := "+---+---+---+---+---+---+---+---+\n"

	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		s += "| "

		for file := square.FileA; file <= square.FileH; file++ {
			s += b[square.From(file, rank)].String() + " | "
		}

		s += fmt.Sprintln(int(rank) + 1)
		s += "+---+---+---+---+---+---+---+---+\n"
	}

	s += "  a   b   c   d   e   f   g   h\n"
	return s
}

// FEN generates the piece-placement field of a FEN string for the Board.
func (b *Board) FEN() string {
	var fen string

	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			p := b[square.From(file, rank)]
			if p == piece.NoPiece {
				empty++
				continue
			}

			if empty > 0 {
				fen += strconv.Itoa(empty)
				empty = 0
			}
			fen += p.String()
		}

		if empty > 0 {
			fen += strconv.Itoa(empty)
		}

		if rank != square.Rank1 {
			fen += "/"
		}
	}

	return fen
}
