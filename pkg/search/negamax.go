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
	"github.com/kestrelchess/kestrel/pkg/search/tt"
)

// negamax is alpha-beta pruned minimax specialized for a zero-sum game:
// a single function serves both sides by negating the score (and the
// window) across each recursive call.
// https://www.chessprogramming.org/Negamax
// https://www.chessprogramming.org/Alpha-Beta
func (s *Context) negamax(ply, depth int, alpha, beta eval.Score, pv *move.Variation) eval.Score {
	s.nodes++

	if s.shouldStop() {
		// this iteration's result will be discarded; the value
		// returned here only needs to unwind the recursion cleanly.
		return 0
	}

	if ply > 0 && s.posHistory.isRepetition(s.board.Hash) {
		return eval.Draw
	}

	var ttMove move.Move
	if entry, hit := s.tt.Probe(s.board.Hash); hit {
		ttMove = entry.Move

		if entry.Depth >= depth {
			score := entry.Score
			switch entry.Bound {
			case tt.Exact:
				return score
			case tt.LowerBound:
				alpha = util.Max(alpha, score)
			case tt.UpperBound:
				beta = util.Min(beta, score)
			}
			if alpha >= beta {
				return score
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(ply, alpha, beta)
	}

	moves := s.board.GenerateMoves()
	if len(moves) == 0 {
		if s.board.IsInCheck(s.board.SideToMove) {
			// closer mates score higher: depth is what remains of this
			// iteration's budget, so a mate found with more of it left
			// (i.e. nearer the root) beats one found deeper in the tree.
			return eval.MatedIn(depth)
		}
		return eval.Draw
	}

	s.orderMoves(moves, ttMove, ply)

	originalAlpha := alpha
	bestMove := moves[0]
	bestScore := -eval.Inf

	for _, m := range moves {
		var childPV move.Variation

		s.board.MakeMove(m)
		s.posHistory.push(s.board.Hash)
		score := -s.negamax(ply+1, depth-1, -beta, -alpha, &childPV)
		s.posHistory.pop()
		s.board.UnmakeMove()

		if score > bestScore {
			bestScore = score
			bestMove = m

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					if !m.IsCapture() {
						s.killers.store(ply, m)
						s.history.recordCutoff(m, depth)
					}
					break
				}
			}
		}
	}

	if !s.stopped {
		var bound tt.Bound
		switch {
		case bestScore <= originalAlpha:
			bound = tt.UpperBound
		case bestScore >= beta:
			bound = tt.LowerBound
		default:
			bound = tt.Exact
		}

		s.tt.Store(tt.Entry{
			Hash:  s.board.Hash,
			Move:  bestMove,
			Score: bestScore,
			Depth: depth,
			Bound: bound,
		})
	}

	return bestScore
}
