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
	"math"
	"sort"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
)

// mvvLva[victim][attacker] scores a capture by most-valuable-victim,
// least-valuable-attacker: a queen falls to anything before a rook does,
// and among equal victims a pawn attacker ranks above a queen attacker.
var mvvLva = [piece.NType][piece.NType]int{
	piece.Pawn:   {10, 9, 8, 7, 6, 5},
	piece.Knight: {20, 19, 18, 17, 16, 15},
	piece.Bishop: {30, 29, 28, 27, 26, 25},
	piece.Rook:   {40, 39, 38, 37, 36, 35},
	piece.Queen:  {50, 49, 48, 47, 46, 45},
	piece.King:   {0, 0, 0, 0, 0, 0}, // the king is never a legal victim
}

// ordering tiers: smaller sorts earlier, i.e. is searched first.
const (
	scoreTTMove      = math.MinInt32
	scoreCaptureBase = -1000
	scoreKiller      = -500
	scorePromotion   = -400
	scoreOther       = 0
)

// orderMoves sorts moves in place so the move most likely to cause an
// early beta cutoff is searched first: the transposition table's best
// move, then captures by MVV-LVA, then this ply's killer moves, then
// promotions, then everything else.
func (s *Context) orderMoves(moves []move.Move, ttMove move.Move, ply int) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = s.orderingScore(m, ttMove, ply)
	}

	sort.Sort(&moveSorter{moves: moves, scores: scores})
}

func (s *Context) orderingScore(m move.Move, ttMove move.Move, ply int) int {
	switch {
	case m == ttMove:
		return scoreTTMove

	case m.IsCapture():
		victim := capturedType(s.board, m)
		return scoreCaptureBase - mvvLva[victim][m.Piece()]

	case m == s.killers[ply][0], m == s.killers[ply][1]:
		return scoreKiller

	case m.Tag() == move.Promotion:
		return scorePromotion

	default:
		// break ties among ordinary quiet moves with the history score:
		// a move that has caused more cutoffs elsewhere sorts earlier,
		// capped so that no quiet move sorts ahead of a promotion.
		return scoreOther - min(int(s.history.score(m)), -scorePromotion-1)
	}
}

// capturedType returns the type of piece a capturing move takes, which
// for an en passant capture is the pawn on the capture rank rather than
// whatever (nothing) sits on the destination square.
func capturedType(b *board.Board, m move.Move) piece.Type {
	if m.Tag() == move.EnPassant {
		return piece.Pawn
	}
	return b.Position[m.To()].Type()
}

// moveSorter sorts a move slice and its parallel ordering-score slice
// together by ascending score.
type moveSorter struct {
	moves  []move.Move
	scores []int
}

func (s *moveSorter) Len() int { return len(s.moves) }
func (s *moveSorter) Less(i, j int) bool {
	return s.scores[i] < s.scores[j]
}
func (s *moveSorter) Swap(i, j int) {
	s.moves[i], s.moves[j] = s.moves[j], s.moves[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}

// orderCaptures sorts quiescence's tactical move list (GenerateCaptures)
// by MVV-LVA alone, with en passant given a small fixed bonus since it has
// no meaningful victim/attacker value pairing of its own. The list's
// non-capturing moves (quiet promotions and checks) sort after every
// capture.
func (s *Context) orderCaptures(moves []move.Move) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		if m.Tag() == move.EnPassant {
			scores[i] = -mvvLva[piece.Pawn][piece.Pawn] - 1
			continue
		}
		if !m.IsCapture() {
			scores[i] = 0
			continue
		}
		victim := capturedType(s.board, m)
		scores[i] = -mvvLva[victim][m.Piece()]
	}

	sort.Sort(&moveSorter{moves: moves, scores: scores})
}
