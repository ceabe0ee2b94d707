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

package board_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
)

// positions exercised by the universal-property tests below: the start
// position plus every perft reference position, which between them cover
// castling, promotion, en passant, and pinned/checked kings.
func universalTestFENs() []string {
	fens := make([]string, len(perftCases))
	for i, c := range perftCases {
		fens[i] = c.fen
	}
	return fens
}

// TestGenerateMovesNoDuplicatesAndOwnership walks every legal move in every
// reference position and checks that no move repeats and that each move's
// from-square is occupied by a friendly piece of the kind the move claims.
func TestGenerateMovesNoDuplicatesAndOwnership(t *testing.T) {
	for _, fen := range universalTestFENs() {
		b, err := board.New(fen)
		if err != nil {
			t.Fatalf("New(%q): %v", fen, err)
		}

		moves := b.GenerateMoves()
		seen := make(map[string]bool, len(moves))

		for _, m := range moves {
			key := m.String()
			if seen[key] {
				t.Errorf("%s: duplicate move %s", fen, m)
			}
			seen[key] = true

			from := m.From()
			mover := b.Position[from]
			if mover == piece.NoPiece {
				t.Errorf("%s: move %s originates from empty square", fen, m)
				continue
			}
			if mover.Color() != b.SideToMove {
				t.Errorf("%s: move %s moves a %s piece but it is %s to move", fen, m, mover.Color(), b.SideToMove)
			}
			if mover.Type() != m.Piece() {
				t.Errorf("%s: move %s claims piece %s but square holds %s", fen, m, m.Piece(), mover.Type())
			}
		}
	}
}

// TestMakeUnmakeRestoresHash checks that MakeMove followed by UnmakeMove
// restores the exact Zobrist key, for every legal move in every reference
// position, i.e. that move application is a reversible group action on
// the position's hash.
func TestMakeUnmakeRestoresHash(t *testing.T) {
	for _, fen := range universalTestFENs() {
		b, err := board.New(fen)
		if err != nil {
			t.Fatalf("New(%q): %v", fen, err)
		}

		before := b.Hash
		for _, m := range b.GenerateMoves() {
			b.MakeMove(m)
			b.UnmakeMove()
			if b.Hash != before {
				t.Fatalf("%s: move %s did not round-trip the hash: got %X, want %X", fen, m, b.Hash, before)
			}
		}
	}
}

// TestMakeUnmakeRestoresFEN checks that MakeMove followed by UnmakeMove
// restores the exact FEN string, catching any field MakeMove/UnmakeMove
// might leave desynchronized despite the hash matching by coincidence.
func TestMakeUnmakeRestoresFEN(t *testing.T) {
	for _, fen := range universalTestFENs() {
		b, err := board.New(fen)
		if err != nil {
			t.Fatalf("New(%q): %v", fen, err)
		}

		before := b.FEN()
		for _, m := range b.GenerateMoves() {
			b.MakeMove(m)
			b.UnmakeMove()
			if got := b.FEN(); got != before {
				t.Fatalf("%s: move %s did not round-trip the fen: got %q, want %q", fen, m, got, before)
			}
		}
	}
}

// TestMoverNeverLeftInCheck verifies that after playing any move
// GenerateMoves returns, the side that just moved is never in check; a
// generator that let a king move into or stay in check would fail this.
func TestMoverNeverLeftInCheck(t *testing.T) {
	for _, fen := range universalTestFENs() {
		b, err := board.New(fen)
		if err != nil {
			t.Fatalf("New(%q): %v", fen, err)
		}

		for _, m := range b.GenerateMoves() {
			mover := b.SideToMove
			b.MakeMove(m)
			if b.IsInCheck(mover) {
				t.Errorf("%s: move %s leaves %s's own king in check", fen, m, mover)
			}
			b.UnmakeMove()
		}
	}
}

// TestGenerateCapturesSubsetOfGenerateMoves checks that every move
// GenerateCaptures returns also appears in GenerateMoves, and that every
// move it returns is in fact a capture, a promotion, or a move that
// gives check, the move kinds quiescence search cares about.
func TestGenerateCapturesSubsetOfGenerateMoves(t *testing.T) {
	for _, fen := range universalTestFENs() {
		b, err := board.New(fen)
		if err != nil {
			t.Fatalf("New(%q): %v", fen, err)
		}

		full := make(map[string]bool)
		for _, m := range b.GenerateMoves() {
			full[m.String()] = true
		}

		for _, m := range b.GenerateCaptures() {
			if !full[m.String()] {
				t.Errorf("%s: GenerateCaptures returned %s, not in GenerateMoves", fen, m)
			}

			if m.IsCapture() || m.Tag() == move.Promotion {
				continue
			}

			b.MakeMove(m)
			inCheck := b.IsInCheck(b.SideToMove)
			b.UnmakeMove()
			if !inCheck {
				t.Errorf("%s: GenerateCaptures returned %s, which is neither a capture/promotion nor gives check", fen, m)
			}
		}
	}
}
