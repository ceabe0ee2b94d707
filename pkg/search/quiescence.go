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

package search

import (
	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/move"
)

// quiescence extends the search past the nominal horizon along tactical
// lines (captures, promotions and checks, plus every evasion when in
// check), so negamax's leaf evaluation never judges a position in the
// middle of an unresolved material exchange. At MaxPly from the root it
// returns the static evaluation without extending further.
// https://www.chessprogramming.org/Quiescence_Search
func (s *Context) quiescence(ply int, alpha, beta eval.Score) eval.Score {
	s.nodes++

	if s.shouldStop() {
		return 0
	}

	if ply >= MaxPly {
		return eval.PeSTO(s.board)
	}

	inCheck := s.board.IsInCheck(s.board.SideToMove)

	var moves []move.Move
	if inCheck {
		// a check can only be answered by a legal move, not necessarily
		// a capture, so every legal move is an evasion candidate here.
		moves = s.board.GenerateMoves()
		if len(moves) == 0 {
			// quiescence has no depth budget of its own to encode a
			// distance-to-mate adjustment with, unlike negamax's
			// MatedIn; a checkmate found here is reported flat.
			return -eval.Mate
		}
		s.orderMoves(moves, move.Null, ply)
	} else {
		moves = s.board.GenerateCaptures()
		s.orderCaptures(moves)
	}

	standPat := eval.PeSTO(s.board)
	if !inCheck {
		if standPat >= beta {
			return beta
		}
		alpha = util.Max(alpha, standPat)
	}

	for _, m := range moves {
		s.board.MakeMove(m)
		score := -s.quiescence(ply+1, -beta, -alpha)
		s.board.UnmakeMove()

		if score >= beta {
			return beta
		}
		alpha = util.Max(alpha, score)
	}

	return alpha
}
