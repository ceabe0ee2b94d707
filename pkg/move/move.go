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

// Package move implements Move, a small tagged value representing a
// chess move, packed into a single uint32 so it is cheap to copy, store
// in a move list, and stash in a transposition table entry.
package move

import (
	"fmt"

	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// Tag classifies what kind of move a Move represents.
type Tag uint32

const (
	Quiet Tag = iota
	Capture
	EnPassant
	Castle
	Promotion
)

func (t Tag) String() string {
	switch t {
	case Quiet:
		return "quiet"
	case Capture:
		return "capture"
	case EnPassant:
		return "en-passant"
	case Castle:
		return "castle"
	case Promotion:
		return "promotion"
	default:
		return "invalid"
	}
}

// bit layout (lsb to msb): from:6 to:6 piece:3 tag:3 promo:3 capture:1
const (
	fromShift    = 0
	toShift      = 6
	pieceShift   = 12
	tagShift     = 15
	promoShift   = 18
	captureShift = 21

	mask1 = 0x1
	mask3 = 0x7
	mask6 = 0x3f
)

// Move is a packed representation of a chess move: the origin and target
// squares, the kind of piece moving, a Tag classifying the move, and, for
// promotions, the kind being promoted to.
type Move uint32

// Null is the zero value, representing the absence of a move.
const Null Move = 0

// New creates a non-promotion Move from its from-square, to-square,
// moving piece kind, and Tag.
func New(from, to square.Square, p piece.Type, tag Tag) Move {
	return Move(from)<<fromShift |
		Move(to)<<toShift |
		Move(p)<<pieceShift |
		Move(tag)<<tagShift
}

// NewPromotion creates a promotion Move to the given piece kind, which
// may also capture the piece on the target square.
func NewPromotion(from, to square.Square, promo piece.Type, capture bool) Move {
	m := New(from, to, piece.Pawn, Promotion) | Move(promo)<<promoShift
	if capture {
		m |= 1 << captureShift
	}
	return m
}

// From returns the move's origin square.
func (m Move) From() square.Square {
	return square.Square((m >> fromShift) & mask6)
}

// To returns the move's target square.
func (m Move) To() square.Square {
	return square.Square((m >> toShift) & mask6)
}

// Piece returns the kind of piece making the move.
func (m Move) Piece() piece.Type {
	return piece.Type((m >> pieceShift) & mask3)
}

// Tag returns the move's classification.
func (m Move) Tag() Tag {
	return Tag((m >> tagShift) & mask3)
}

// Promotion returns the kind of piece a promotion move promotes to. It
// is only meaningful when Tag() == Promotion.
func (m Move) Promotion() piece.Type {
	return piece.Type((m >> promoShift) & mask3)
}

// IsCapture reports whether the move captures a piece, including
// en-passant captures and capturing promotions.
func (m Move) IsCapture() bool {
	switch m.Tag() {
	case Capture, EnPassant:
		return true
	case Promotion:
		return (m>>captureShift)&mask1 != 0
	default:
		return false
	}
}

// IsQuiet reports whether the move is tagged Quiet: not a capture, en
// passant, castle, or promotion.
func (m Move) IsQuiet() bool {
	return m.Tag() == Quiet
}

// IsReversible reports whether the move does not reset the fifty-move
// (halfmove) clock, i.e. is neither a capture nor a pawn move.
func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.Piece() != piece.Pawn
}

// String renders the move in long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a queen promotion.
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	str := fmt.Sprintf("%s%s", m.From(), m.To())
	if m.Tag() == Promotion {
		// black pieces print in lowercase
		str += piece.New(m.Promotion(), piece.Black).String()
	}
	return str
}
