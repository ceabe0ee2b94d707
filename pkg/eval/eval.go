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

// Package eval scores chess positions in centipawns from the
// side-to-move's perspective, for use as the leaf heuristic of the
// search package.
package eval

import (
	"fmt"
	"math"
)

// Score is a relative centipawn evaluation: positive favors the side to
// move, negative favors the opponent.
type Score int32

// useful relative evaluations
const (
	// Mate leaves room below math.MaxInt32 for depth-adjusted mate
	// scores (MatedIn) to still fit in a Score.
	Mate Score = math.MaxInt32 - 1000
	Inf  Score = Mate + 1
	Draw Score = 0

	// WinInMaxPly/LoseInMaxPly bound the regular evaluation range so
	// mate scores near +-Mate can be told apart from large material
	// scores produced by the evaluator.
	WinInMaxPly  Score = Mate - 2*10000
	LoseInMaxPly Score = -WinInMaxPly
)

// MatedIn returns the score for being checkmated with depth remaining
// of the current iteration's search budget. Scoring it relative to the
// remaining depth, rather than a fixed constant, means a mate reached
// nearer the root outscores one reached deeper in the tree once the
// surrounding recursion negates it back up.
func MatedIn(depth int) Score {
	return -Mate + Score(depth)
}

// String renders the score in UCI's "cp <x>" or "mate <n>" form.
func (s Score) String() string {
	switch {
	case s > WinInMaxPly:
		plies := Mate - s
		n := (plies + 1) / 2
		return fmt.Sprintf("mate %d", n)
	case s < LoseInMaxPly:
		plies := -Mate - s
		n := (plies + 1) / 2
		return fmt.Sprintf("mate %d", -n)
	default:
		return fmt.Sprintf("cp %d", s)
	}
}
