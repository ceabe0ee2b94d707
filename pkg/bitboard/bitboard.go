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

// Package bitboard implements a 64-bit bitboard and other related
// functions for manipulating them.
package bitboard

import (
	"math/bits"

	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// Board is a 64-bit bitboard. Bit i corresponds to square.Square(i), so
// bit 0 is a1 and bit 63 is h8.
type Board uint64

// String returns a string representation of the given Board, rank 8
// first, to match how a board is conventionally printed.
func (b Board) String() string {
	var str string
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.IsSet(square.From(f, r)) {
				str += "1"
			} else {
				str += "0"
			}

			if f == square.FileH {
				str += "\n"
			} else {
				str += " "
			}
		}
	}

	return str
}

// Up shifts the given Board up relative to the given color.
func (b Board) Up(c piece.Color) Board {
	switch c {
	case piece.White:
		return b.North()
	case piece.Black:
		return b.South()
	default:
		panic("bad color")
	}
}

// Down shifts the given Board down relative to the given color.
func (b Board) Down(c piece.Color) Board {
	switch c {
	case piece.White:
		return b.South()
	case piece.Black:
		return b.North()
	default:
		panic("bad color")
	}
}

// North shifts the given Board to the north, i.e. towards rank 8.
func (b Board) North() Board {
	return b << 8
}

// South shifts the given Board to the south, i.e. towards rank 1.
func (b Board) South() Board {
	return b >> 8
}

// East shifts the given Board to the east.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the given Board to the west.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Pop returns the LSB of the given Board and removes it.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set bits in the given Board.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the LSB of the given Board.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet checks whether the given Square is set in the bitboard.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set sets the given Square in the bitboard.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}

	*b |= Squares[s]
}

// Unset clears the given Square in the bitboard.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}

	*b &^= Squares[s]
}
