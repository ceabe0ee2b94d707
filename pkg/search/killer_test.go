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

	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

func TestKillerTableFIFO(t *testing.T) {
	var k killerTable

	a := move.New(square.A2, square.A3, piece.Pawn, move.Quiet)
	b := move.New(square.B2, square.B3, piece.Pawn, move.Quiet)
	c := move.New(square.C2, square.C3, piece.Pawn, move.Quiet)

	k.store(0, a)
	k.store(0, b)
	k.store(0, c)

	if k[0][0] != c {
		t.Errorf("primary slot = %v, want %v", k[0][0], c)
	}
	if k[0][1] != b {
		t.Errorf("secondary slot = %v, want %v", k[0][1], b)
	}
	if k[0][0] == a || k[0][1] == a {
		t.Errorf("killer table still holds evicted move %v", a)
	}
}

func TestKillerTableIgnoresRepeatOfPrimary(t *testing.T) {
	var k killerTable

	a := move.New(square.A2, square.A3, piece.Pawn, move.Quiet)
	b := move.New(square.B2, square.B3, piece.Pawn, move.Quiet)

	k.store(0, a)
	k.store(0, b)
	k.store(0, b) // re-storing the primary slot must be a no-op

	if k[0][0] != b || k[0][1] != a {
		t.Errorf("killers = %v, want [%v %v]", k[0], b, a)
	}
}

func TestHistoryTableRecordCutoffAndScore(t *testing.T) {
	var h historyTable

	m := move.New(square.D2, square.D4, piece.Pawn, move.Quiet)
	h.recordCutoff(m, 3)
	h.recordCutoff(m, 4)

	want := int32(3*3 + 4*4)
	if got := h.score(m); got != want {
		t.Errorf("score = %d, want %d", got, want)
	}

	h.age()
	if got := h.score(m); got != want/2 {
		t.Errorf("score after age = %d, want %d", got, want/2)
	}
}
