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

package board

import (
	"strings"

	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/attacks"
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// MakeMove plays a legal move on the Board. m must have been produced by
// GenerateMoves/GenerateCaptures for this exact position, or be move.Null.
func (b *Board) MakeMove(m move.Move) {
	b.History[b.Plys] = Undo{
		Move:            m,
		CastlingRights:  b.CastlingRights,
		CapturedPiece:   piece.NoPiece,
		EnPassantTarget: b.EnPassantTarget,
		DrawClock:       b.DrawClock,
		Hash:            b.Hash,
	}
	b.DrawClock++

	if m == move.Null {
		b.makeNullMove()
		return
	}

	from := m.From()
	to := m.To()
	pieceType := m.Piece()
	mover := b.Position[from]

	if pieceType == piece.Pawn {
		b.DrawClock = 0
	}

	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	switch m.Tag() {
	case move.EnPassant:
		capturedSq := to + down(b.SideToMove)
		b.History[b.Plys].CapturedPiece = b.Position[capturedSq]
		b.DrawClock = 0
		b.ClearSquare(capturedSq)

	case move.Castle:
		rookInfo := castling.Rooks[to]
		b.ClearSquare(rookInfo.From)
		b.FillSquare(rookInfo.To, rookInfo.RookType)

	default:
		if m.IsCapture() {
			b.History[b.Plys].CapturedPiece = b.Position[to]
			b.DrawClock = 0
			b.ClearSquare(to)
		}
	}

	// a pawn double push sets a new en passant target, but only if an
	// enemy pawn is actually positioned to capture it; otherwise leaving
	// it set would wrongly change the Zobrist hash of an otherwise
	// identical position.
	if pieceType == piece.Pawn && util.Abs(int(to)-int(from)) == 16 {
		target := from + (to-from)/2
		if b.Pawns(b.SideToMove.Other())&attacks.PawnAttacks(target, b.SideToMove) != 0 {
			b.EnPassantTarget = target
			b.Hash ^= zobrist.EnPassant[target.File()]
		}
	}

	b.ClearSquare(from)

	placed := mover
	if m.Tag() == move.Promotion {
		placed = piece.New(m.Promotion(), b.SideToMove)
	}
	b.FillSquare(to, placed)

	b.Hash ^= zobrist.Castling[b.CastlingRights]
	b.CastlingRights &^= castling.RightUpdates[from]
	b.CastlingRights &^= castling.RightUpdates[to]
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.Plys++
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

func (b *Board) makeNullMove() {
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	b.Plys++
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

// UnmakeMove reverses the last move played on the Board.
func (b *Board) UnmakeMove() {
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.Black {
		b.FullMoves--
	}
	b.Plys--

	undo := b.History[b.Plys]
	b.EnPassantTarget = undo.EnPassantTarget
	b.DrawClock = undo.DrawClock
	b.CastlingRights = undo.CastlingRights

	m := undo.Move
	if m == move.Null {
		b.Hash = undo.Hash
		return
	}

	from := m.From()
	to := m.To()
	fromPiece := b.Position[to]
	if m.Tag() == move.Promotion {
		fromPiece = piece.New(piece.Pawn, b.SideToMove)
	}

	b.ClearSquare(to)
	b.FillSquare(from, fromPiece)

	switch m.Tag() {
	case move.EnPassant:
		capturedSq := to + down(b.SideToMove)
		b.FillSquare(capturedSq, undo.CapturedPiece)

	case move.Castle:
		rookInfo := castling.Rooks[to]
		b.ClearSquare(rookInfo.To)
		b.FillSquare(rookInfo.From, rookInfo.RookType)

	default:
		if m.IsCapture() {
			b.FillSquare(to, undo.CapturedPiece)
		}
	}

	b.Hash = undo.Hash
}

// down returns the offset from a destination square to the square behind
// it (towards c's own back rank), used to locate the captured pawn in an
// en passant capture.
func down(c piece.Color) square.Square {
	if c == piece.White {
		return -8
	}
	return 8
}

// NewMove builds the move.Move corresponding to moving the piece on from
// to to, inferring capture/promotion context from the current position.
// The caller must set a promotion kind with move.NewPromotion if needed.
func (b *Board) NewMove(from, to square.Square) move.Move {
	p := b.Position[from]
	tag := move.Quiet
	switch {
	case p.Type() == piece.Pawn && to == b.EnPassantTarget && b.EnPassantTarget != square.None:
		tag = move.EnPassant
	case p.Type() == piece.King && util.Abs(int(to)-int(from)) == 2:
		tag = move.Castle
	case b.Position[to] != piece.NoPiece:
		tag = move.Capture
	}
	return move.New(from, to, p.Type(), tag)
}

// MoveFromUCI parses a move in UCI's long algebraic form (source square,
// destination square, optional lowercase promotion letter, e.g. "e2e4"
// or "e7e8q") and returns the matching move from GenerateMoves. The
// second return value is false if s is malformed or names no legal move
// in the current position; the front end is expected to reject it and
// leave the board untouched.
func (b *Board) MoveFromUCI(s string) (move.Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return move.Null, false
	}
	for i := 0; i < 4; i += 2 {
		if s[i] < 'a' || s[i] > 'h' || s[i+1] < '1' || s[i+1] > '8' {
			return move.Null, false
		}
	}

	from := square.New(s[0:2])
	to := square.New(s[2:4])

	var promo piece.Type
	if len(s) == 5 {
		if !strings.ContainsAny(s[4:5], "nbrq") {
			return move.Null, false
		}
		promo = piece.NewFromString(strings.ToUpper(s[4:5])).Type()
	}

	for _, m := range b.GenerateMoves() {
		if m.From() == from && m.To() == to {
			if m.Tag() != move.Promotion {
				return m, true
			}
			if m.Promotion() == promo {
				return m, true
			}
		}
	}
	return move.Null, false
}
