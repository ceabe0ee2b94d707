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

// Package search implements iterative-deepening negamax with alpha-beta
// pruning, quiescence search, and the move-ordering, transposition, and
// time-management machinery that support it.
package search

import (
	"time"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/search/tt"
)

// MaxDepth is the largest iterative-deepening depth FindBestMove accepts.
const MaxDepth = 64

// Limits bounds a single FindBestMove call: search stops at whichever of
// Depth or Time is hit first. A zero Time means unlimited; Depth is
// clamped to MaxDepth.
type Limits struct {
	Depth int
	Time  time.Duration
}

// Info is emitted once per completed iterative-deepening iteration, in
// the shape a UCI front-end prints directly as an "info" line.
type Info struct {
	Depth int
	Score eval.Score
	Nodes int
	Time  time.Duration
	PV    move.Variation
}

// Context holds everything a search invocation owns: the board under
// search, the transposition table, move-ordering heuristics, timer, and
// bookkeeping. It is not safe for concurrent use.
type Context struct {
	board *board.Board
	tt    *tt.Table

	killers killerTable
	history historyTable

	posHistory positionHistory
	timer      Timer

	nodes   int
	stopped bool

	limits Limits

	// OnIteration, if set, is called after every completed
	// iterative-deepening iteration with that iteration's Info.
	OnIteration func(Info)
}

// NewContext creates a search Context operating on b, sharing table as
// its transposition table. table may be shared across successive
// searches on the same board to carry over cached work; pass a fresh
// tt.NewTable(0) to start cold.
func NewContext(b *board.Board, table *tt.Table) *Context {
	if table == nil {
		table = tt.NewTable(0)
	}
	return &Context{board: b, tt: table}
}

// NewGame resets state that must not leak across unrelated games: the
// transposition table is cleared, and the history heuristic's scores are
// aged (halved) rather than cleared outright, since a halved history is
// still a reasonable prior for the next game's move ordering.
func (s *Context) NewGame() {
	s.tt.Clear()
	s.history.age()
}

// shouldStop reports whether the current iteration must abandon its
// recursion: either the time budget has elapsed, polled cooperatively at
// every node, the way the brief's cancellation model requires.
func (s *Context) shouldStop() bool {
	if s.stopped {
		return true
	}
	if s.timer.Expired() {
		s.stopped = true
	}
	return s.stopped
}

// Stop requests that the current or next FindBestMove call return at its
// next cooperative check point. Safe to call from another goroutine
// while a search is in progress.
func (s *Context) Stop() {
	s.stopped = true
}

// FindBestMove runs iterative deepening from depth 1 up to limits.Depth
// (or MaxDepth if unset), returning the best (score, move) found by the
// deepest iteration that completed before the time budget, if any,
// expired. A position with no legal moves returns a zero move alongside
// a checkmate or stalemate score.
func (s *Context) FindBestMove(limits Limits) (eval.Score, move.Move) {
	s.nodes = 0
	s.stopped = false
	s.limits = limits
	s.timer.Start(limits.Time)

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	var (
		bestScore eval.Score
		bestMove  move.Move
		pv        move.Variation
	)

	start := time.Now()
	for depth := 1; depth <= maxDepth; depth++ {
		var iterationPV move.Variation

		s.posHistory.push(s.board.Hash)
		score := s.negamax(0, depth, -eval.Inf, eval.Inf, &iterationPV)
		s.posHistory.pop()

		if s.stopped && depth > 1 {
			// this iteration's result is partial; the previous
			// iteration's is the best complete information available.
			break
		}

		bestScore = score
		pv = iterationPV
		if pv.Len() > 0 {
			bestMove = pv.Move(0)
		}

		s.tt.Store(tt.Entry{
			Hash:  s.board.Hash,
			Move:  bestMove,
			Score: bestScore,
			Depth: depth,
			Bound: tt.Exact,
		})

		if s.OnIteration != nil {
			s.OnIteration(Info{
				Depth: depth,
				Score: bestScore,
				Nodes: s.nodes,
				Time:  time.Since(start),
				PV:    pv,
			})
		}

		if s.stopped {
			break
		}
	}

	return bestScore, bestMove
}
