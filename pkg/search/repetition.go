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

import "github.com/kestrelchess/kestrel/pkg/zobrist"

// positionHistory is a stack of Zobrist hashes of the positions visited
// on the path from the search root to the current node, used to detect
// repetitions the static board state alone cannot see. Positions played
// before the search root are not on the stack.
type positionHistory struct {
	hashes []zobrist.Key
}

func (h *positionHistory) push(key zobrist.Key) {
	h.hashes = append(h.hashes, key)
}

func (h *positionHistory) pop() {
	h.hashes = h.hashes[:len(h.hashes)-1]
}

// isRepetition reports whether current has occurred at least three
// times among the positions pushed so far, i.e. a threefold repetition.
// The caller is expected to have already pushed the position being
// queried, so "three times" includes that push.
func (h *positionHistory) isRepetition(current zobrist.Key) bool {
	count := 0
	for _, key := range h.hashes {
		if key == current {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}
