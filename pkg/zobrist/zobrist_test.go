// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package zobrist

import (
	"testing"

	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// seen collects every key value generated so duplicates (hash collisions
// between distinct random keys) can be flagged; a collision here would
// silently corrupt repetition detection and the transposition table.
func TestKeysAreDistinct(t *testing.T) {
	seen := map[Key]string{}
	record := func(k Key, label string) {
		if other, ok := seen[k]; ok {
			t.Errorf("key collision between %q and %q", label, other)
		}
		seen[k] = label
	}

	for p := piece.WhitePawn; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			record(PieceSquare[p][s], "piece-square")
		}
	}
	for f := square.FileA; f <= square.FileH; f++ {
		record(EnPassant[f], "en-passant")
	}
	for r := castling.None; r <= castling.All; r++ {
		record(Castling[r], "castling")
	}
	record(SideToMove, "side-to-move")
}

func TestSeedIsDeterministic(t *testing.T) {
	if PieceSquare[piece.WhitePawn][square.A1] == 0 {
		t.Errorf("zobrist keys should not be the zero value")
	}

	var rng util.PRNG
	rng.Seed(1070372)
	if want := Key(rng.Uint64()); PieceSquare[piece.WhitePawn][square.A1] != want {
		t.Errorf("first piece-square key = %X, want %X from the fixed seed", PieceSquare[piece.WhitePawn][square.A1], want)
	}
}
