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

// Package piece implements representations of all the chess pieces and
// colors, and related utility functions.
//
// The King, Queen, Rook, Knight, Bishop, and Pawn are represented by the
// K, Q, R, N, B, and P strings respectively, with uppercase for white and
// lower case for black.
//
// The strings w, and b are used for representing the White and Black
// colors respectively.
package piece

// NewColor creates an instance of color from the given id.
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("new color: invalid color id")
	}
}

// Color represents the color of a Piece.
type Color int

// various piece colors
const (
	White Color = iota
	Black

	NColor = 2
)

// Other returns the opposing Color.
func (c Color) Other() Color {
	return c ^ Black
}

// String converts a Color to it's string representation.
func (c Color) String() string {
	switch c {
	case Black:
		return "b"
	case White:
		return "w"
	default:
		panic("new color: invalid color id")
	}
}

// New creates an instance of Piece from the given Type and Color.
func New(t Type, c Color) Piece {
	if t == NoType {
		return NoPiece
	}

	return Piece(c)*6 + Piece(t)
}

// NewFromString creates an instance of Piece from the given piece id.
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		panic("new piece: invalid piece id")
	}
}

// Type represents a chess piece's kind, independent of color. The six
// playing kinds occupy the stable, contiguous indices 0..5; NoType is an
// out-of-band sentinel for the empty square.
type Type int

// various chess piece kinds
const (
	Pawn Type = iota
	Knight
	Bishop
	Rook
	Queen
	King

	NType = 6

	NoType Type = -1
)

// String converts a Type into it's white-piece string representation.
func (t Type) String() string {
	return New(t, White).String()
}

// Piece represents a colored chess piece. The 12 playing pieces occupy
// the stable, contiguous indices 0..11 (White Pawn..King, then Black
// Pawn..King); NoPiece is the empty-square sentinel.
type Piece int

const (
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) + 6
	BlackKnight Piece = Piece(Knight) + 6
	BlackBishop Piece = Piece(Bishop) + 6
	BlackRook   Piece = Piece(Rook) + 6
	BlackQueen  Piece = Piece(Queen) + 6
	BlackKing   Piece = Piece(King) + 6

	NoPiece Piece = 12

	N = 13
)

// Promotions lists the piece kinds a pawn may promote to, in the order
// they are tried during move generation.
var Promotions = []Type{
	Queen, Rook, Bishop, Knight,
}

// String converts a Piece into it's string representation.
func (p Piece) String() string {
	pieces := [...]string{
		WhitePawn:   "P",
		WhiteKnight: "N",
		WhiteBishop: "B",
		WhiteRook:   "R",
		WhiteQueen:  "Q",
		WhiteKing:   "K",
		BlackPawn:   "p",
		BlackKnight: "n",
		BlackBishop: "b",
		BlackRook:   "r",
		BlackQueen:  "q",
		BlackKing:   "k",
		NoPiece:     " ",
	}

	return pieces[p]
}

// Type returns the piece kind of the given Piece.
func (p Piece) Type() Type {
	if p == NoPiece {
		return NoType
	}

	return Type(p % 6)
}

// Color returns the piece color of the given Piece.
func (p Piece) Color() Color {
	if p == NoPiece {
		panic("color of piece: can't find color of NoPiece")
	}

	return Color(p / 6)
}

// Is checks if the kind of the given Piece matches the given Type.
func (p Piece) Is(target Type) bool {
	return p.Type() == target
}

// IsColor checks if the color of the given Piece matches the given Color.
func (p Piece) IsColor(target Color) bool {
	return p != NoPiece && p.Color() == target
}
