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

// Package board implements a complete chess board representation along
// with legal move generation, FEN (de)serialization, and make/unmake.
package board

import (
	"fmt"

	"github.com/kestrelchess/kestrel/pkg/attacks"
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/board/mailbox"
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// Board represents the state of a chessboard at a given position.
type Board struct {
	Hash     zobrist.Key
	Position mailbox.Board // 8x8 for fast single-square lookup
	PieceBBs [piece.NType]bitboard.Board
	ColorBBs [piece.NColor]bitboard.Board

	Kings [piece.NColor]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	// move counters
	Plys      int
	FullMoves int
	DrawClock int // plys since the last pawn push or capture

	// game history, indexed by Plys, used to unmake moves
	History [256]Undo
}

// Undo holds the position information necessary to reverse a single
// MakeMove call, recorded onto Board.History before the move is played.
type Undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	CapturedPiece   piece.Piece
	EnPassantTarget square.Square
	DrawClock       int
	Hash            zobrist.Key
}

// String converts a Board into a human readable string.
func (b *Board) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %X\n", b.Position, b.FEN(), b.Hash)
}

// Occupied returns the bitboard of every occupied square.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

// ClearSquare removes whatever piece sits on s from every board record.
func (b *Board) ClearSquare(s square.Square) {
	p := b.Position[s]

	b.ColorBBs[p.Color()].Unset(s)
	b.PieceBBs[p.Type()].Unset(s)
	b.Position[s] = piece.NoPiece
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// FillSquare places p on s in every board record.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c := p.Color()
	t := p.Type()

	b.ColorBBs[c].Set(s)
	if t == piece.King {
		b.Kings[c] = s
	}

	b.PieceBBs[t].Set(s)
	b.Position[s] = p
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// IsInCheck reports whether the king of color c is currently attacked.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// IsAttacked reports whether s is attacked by any piece of color them.
func (b *Board) IsAttacked(s square.Square, them piece.Color) bool {
	occ := b.Occupied()

	if attacks.PawnAttacks(s, them.Other())&b.Pawns(them) != bitboard.Empty {
		return true
	}

	if attacks.KnightAttacks(s)&b.Knights(them) != bitboard.Empty {
		return true
	}

	if attacks.KingAttacks(s)&b.King(them) != bitboard.Empty {
		return true
	}

	queens := b.Queens(them)

	if attacks.Bishop(s, bitboard.Empty, occ)&(b.Bishops(them)|queens) != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, bitboard.Empty, occ)&(b.Rooks(them)|queens) != bitboard.Empty
}

func (b *Board) Pawns(c piece.Color) bitboard.Board   { return b.PieceBBs[piece.Pawn] & b.ColorBBs[c] }
func (b *Board) Knights(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Knight] & b.ColorBBs[c] }
func (b *Board) Bishops(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Bishop] & b.ColorBBs[c] }
func (b *Board) Rooks(c piece.Color) bitboard.Board   { return b.PieceBBs[piece.Rook] & b.ColorBBs[c] }
func (b *Board) Queens(c piece.Color) bitboard.Board  { return b.PieceBBs[piece.Queen] & b.ColorBBs[c] }
func (b *Board) King(c piece.Color) bitboard.Board    { return b.PieceBBs[piece.King] & b.ColorBBs[c] }
