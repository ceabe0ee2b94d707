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

package search_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/search"
)

// these six positions each have a single forced mating continuation
// reachable by depth 6; every named engine since Paul Morphy's day is
// expected to find them.
var tacticalCases = []struct {
	name string
	fen  string
	best string
}{
	{"opera mate", "4k3/5p2/8/6B1/8/8/8/3R2K1 w - - 0 1", "d1d8"},
	{"anderssen's mate", "6k1/6P1/5K1R/8/8/8/8/8 w - - 0 1", "h6h8"},
	{"dovetail mate", "1r6/pk6/4Q3/3P4/8/8/8/6K1 w - - 0 1", "e6c6"},
	{"epaulette mate", "3rkr2/8/5Q2/8/8/8/8/6K1 w - - 0 1", "f6e6"},
	{"pawn mate", "8/7R/1pkp4/2p5/1PP5/8/8/6K1 w - - 0 1", "b4b5"},
	{"queen sacrifice mate", "r1b3nr/ppp3qp/1bnpk3/4p1BQ/3PP3/2P5/PP3PPP/RN3RK1 w - - 0 11", "h5e8"},
}

func TestFindBestMoveTacticalScenarios(t *testing.T) {
	for _, tc := range tacticalCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := board.New(tc.fen)
			if err != nil {
				t.Fatalf("board.New(%q): %v", tc.fen, err)
			}

			ctx := search.NewContext(&b, nil)
			_, best := ctx.FindBestMove(search.Limits{Depth: 6})

			if got := best.String(); got != tc.best {
				t.Errorf("FindBestMove(%q) = %s, want %s", tc.fen, got, tc.best)
			}
		})
	}
}
