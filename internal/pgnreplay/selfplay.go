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

package pgnreplay

import (
	"fmt"
	"math/rand"

	"github.com/notnil/chess"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// SelfPlayMismatch records a position where the own board's legal move
// list disagreed with the oracle's.
type SelfPlayMismatch struct {
	Game int
	Ply  int
	FEN  string
}

// SelfPlay plays n random legal games move-by-move in lockstep between
// board's own move generator and github.com/notnil/chess acting as an
// independent legality oracle, using rng to pick each game's moves.
// Every ply, the own board's generated move count must match the
// oracle's; any disagreement is recorded rather than treated as fatal,
// so a single divergence doesn't hide how long the engine stayed in
// sync afterwards.
func SelfPlay(n int, rng *rand.Rand) ([]SelfPlayMismatch, error) {
	var mismatches []SelfPlayMismatch

	for g := 0; g < n; g++ {
		oracle := chess.NewGame()
		b, err := board.New(board.StartFEN)
		if err != nil {
			return mismatches, err
		}

		for ply := 0; ; ply++ {
			oracleMoves := oracle.ValidMoves()
			ownMoves := b.GenerateMoves()

			if len(oracleMoves) != len(ownMoves) {
				mismatches = append(mismatches, SelfPlayMismatch{Game: g, Ply: ply, FEN: b.FEN()})
				break
			}
			if len(oracleMoves) == 0 {
				break
			}

			chosen := oracleMoves[rng.Intn(len(oracleMoves))]
			m, ok := ownMoveFor(ownMoves, chosen)
			if !ok {
				mismatches = append(mismatches, SelfPlayMismatch{Game: g, Ply: ply, FEN: b.FEN()})
				break
			}

			if err := oracle.Move(chosen); err != nil {
				return mismatches, fmt.Errorf("pgnreplay: oracle rejected its own move: %w", err)
			}
			b.MakeMove(m)
		}
	}

	return mismatches, nil
}

// ownMoveFor translates a notnil/chess move, whose Square numbering
// shares this board's a1=0..h8=63 convention, into the matching
// move.Move from ownMoves.
func ownMoveFor(ownMoves []move.Move, oracle *chess.Move) (move.Move, bool) {
	from := square.Square(oracle.S1())
	to := square.Square(oracle.S2())

	var promo piece.Type
	switch oracle.Promo() {
	case chess.Knight:
		promo = piece.Knight
	case chess.Bishop:
		promo = piece.Bishop
	case chess.Rook:
		promo = piece.Rook
	case chess.Queen:
		promo = piece.Queen
	}

	for _, m := range ownMoves {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Tag() == move.Promotion && m.Promotion() != promo {
			continue
		}
		return m, true
	}
	return move.Null, false
}
