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

package pgnreplay

import (
	"strings"
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
)

func TestMatchSANOpeningMoves(t *testing.T) {
	b, err := board.New(board.StartFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, san := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5"} {
		m, ok := matchSAN(&b, san)
		if !ok {
			t.Fatalf("matchSAN(%q): no match found at %s", san, b.FEN())
		}
		b.MakeMove(m)
	}
}

func TestMatchSANCastling(t *testing.T) {
	b, err := board.New("r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/2NP1N2/PPP2PPP/R1BQK2R w KQkq - 0 6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, ok := matchSAN(&b, "O-O")
	if !ok {
		t.Fatal("matchSAN(O-O): no match found")
	}
	if !strings.HasSuffix(m.String(), "g1") {
		t.Errorf("expected castle to g1, got %s", m.String())
	}
}
