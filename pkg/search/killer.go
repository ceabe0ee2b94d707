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

import "github.com/kestrelchess/kestrel/pkg/move"

// MaxPly bounds the killer table and the position history stack: no
// search this engine runs goes deeper than this many plies from the root.
const MaxPly = 64

// killerTable holds, for every ply, the two most recent quiet moves that
// caused a beta cutoff there. It is a per-ply FIFO of depth 2: storing a
// third move evicts the oldest.
type killerTable [MaxPly][2]move.Move

// store records killer as the newest killer move at ply, shifting the
// previous primary slot into the secondary slot. A move already sitting
// in the primary slot is not re-added.
func (k *killerTable) store(ply int, killer move.Move) {
	if k[ply][0] == killer {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = killer
}
