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

	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// historyTable scores quiet moves by how often they have caused a beta
// cutoff in the past, indexed by (from, to) only; it is not split by side
// to move or piece kind.
type historyTable [square.N][square.N]int32

// recordCutoff credits m for causing a cutoff at the given depth. The
// increment is depth squared, clamped so repeated cutoffs at high depth
// cannot overflow the int32 backing the table.
func (h *historyTable) recordCutoff(m move.Move, depth int) {
	bonus := int32(depth * depth)
	entry := &h[m.From()][m.To()]

	if int64(*entry)+int64(bonus) > math.MaxInt32 {
		*entry = math.MaxInt32
		return
	}
	*entry += bonus
}

// score returns m's accumulated history score.
func (h *historyTable) score(m move.Move) int32 {
	return h[m.From()][m.To()]
}

// age halves every entry. It is not called during a single search; the
// front-end calls it between games (e.g. on a UCI "ucinewgame") so old
// history does not bias move ordering in an unrelated position forever.
func (h *historyTable) age() {
	for from := range h {
		for to := range h[from] {
			h[from][to] /= 2
		}
	}
}
