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
	"testing"

	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

func TestPositionHistoryIsRepetition(t *testing.T) {
	var h positionHistory

	const key zobrist.Key = 0xdeadbeef

	h.push(1)
	h.push(key)
	h.push(2)
	h.push(key)

	if h.isRepetition(key) {
		t.Fatal("reported repetition after only two occurrences")
	}

	h.push(3)
	h.push(key)

	if !h.isRepetition(key) {
		t.Fatal("expected repetition after a third occurrence of the same hash")
	}
}

func TestPositionHistoryPushPop(t *testing.T) {
	var h positionHistory

	h.push(1)
	h.push(2)
	h.pop()

	if h.isRepetition(2) {
		t.Fatal("popped hash should no longer count toward a repetition")
	}
	if len(h.hashes) != 1 {
		t.Fatalf("len = %d, want 1", len(h.hashes))
	}
}
