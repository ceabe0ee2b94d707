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

package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// StartFEN is the FEN string of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// errMalformedFEN is wrapped with details on the specific field that
// failed to parse.
var errMalformedFEN = errors.New("board: malformed fen")

// New creates a Board from a FEN string.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func New(fen string) (Board, error) {
	var b Board
	b.EnPassantTarget = square.None
	for s := range b.Position {
		b.Position[s] = piece.NoPiece
	}

	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Board{}, fmt.Errorf("%w: want 6 space-separated fields, got %d", errMalformedFEN, len(fields))
	}

	if err := b.parsePlacement(fields[0]); err != nil {
		return Board{}, err
	}

	switch fields[1] {
	case "w":
		b.SideToMove = piece.White
	case "b":
		b.SideToMove = piece.Black
		b.Hash ^= zobrist.SideToMove
	default:
		return Board{}, fmt.Errorf("%w: bad side to move %q", errMalformedFEN, fields[1])
	}

	b.CastlingRights = castling.NewRights(fields[2])
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	if fields[3] != "-" {
		ep := fields[3]
		if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' || ep[1] < '1' || ep[1] > '8' {
			return Board{}, fmt.Errorf("%w: bad en passant square %q", errMalformedFEN, fields[3])
		}
		b.EnPassantTarget = square.New(fields[3])
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}

	drawClock, err := strconv.Atoi(fields[4])
	if err != nil {
		return Board{}, fmt.Errorf("%w: bad halfmove clock %q", errMalformedFEN, fields[4])
	}
	b.DrawClock = drawClock

	fullMoves, err := strconv.Atoi(fields[5])
	if err != nil {
		return Board{}, fmt.Errorf("%w: bad fullmove number %q", errMalformedFEN, fields[5])
	}
	b.FullMoves = fullMoves

	return b, nil
}

// parsePlacement fills in the Board's piece placement from the first
// field of a FEN string, which lists ranks from 8 down to 1.
func (b *Board) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: want 8 ranks, got %d", errMalformedFEN, len(ranks))
	}

	for i, rankData := range ranks {
		rank := square.Rank(7 - i)
		file := square.FileA

		for _, id := range rankData {
			if file > square.FileH {
				return fmt.Errorf("%w: rank %q overflows the board", errMalformedFEN, rankData)
			}

			if id >= '1' && id <= '8' {
				file += square.File(id - '0')
				continue
			}

			p, ok := pieceFromRune(id)
			if !ok {
				return fmt.Errorf("%w: bad piece id %q", errMalformedFEN, id)
			}
			b.FillSquare(square.From(file, rank), p)
			file++
		}

		if file != square.FileH+1 {
			return fmt.Errorf("%w: rank %q does not cover 8 files", errMalformedFEN, rankData)
		}
	}

	return nil
}

// pieceFromRune converts a FEN piece letter to a piece.Piece without
// panicking on an invalid one, unlike piece.NewFromString.
func pieceFromRune(id rune) (piece.Piece, bool) {
	switch id {
	case 'K':
		return piece.WhiteKing, true
	case 'Q':
		return piece.WhiteQueen, true
	case 'R':
		return piece.WhiteRook, true
	case 'B':
		return piece.WhiteBishop, true
	case 'N':
		return piece.WhiteKnight, true
	case 'P':
		return piece.WhitePawn, true
	case 'k':
		return piece.BlackKing, true
	case 'q':
		return piece.BlackQueen, true
	case 'r':
		return piece.BlackRook, true
	case 'b':
		return piece.BlackBishop, true
	case 'n':
		return piece.BlackKnight, true
	case 'p':
		return piece.BlackPawn, true
	default:
		return piece.NoPiece, false
	}
}

// FEN returns the FEN string of the current Board position.
func (b *Board) FEN() string {
	return fmt.Sprintf("%s %s %s %s %d %d",
		b.Position.FEN(),
		b.SideToMove,
		b.CastlingRights,
		b.EnPassantTarget,
		b.DrawClock,
		b.FullMoves,
	)
}
