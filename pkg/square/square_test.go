// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package square

import "testing"

func TestConstants(t *testing.T) {
	if A1 != 0 {
		t.Errorf("A1 = %d, want 0", A1)
	}
	if H8 != 63 {
		t.Errorf("H8 = %d, want 63", H8)
	}
	if E4 != From(FileE, Rank4) {
		t.Errorf("E4 = %d, want From(FileE, Rank4) = %d", E4, From(FileE, Rank4))
	}
}

func TestFileRank(t *testing.T) {
	cases := []struct {
		sq   Square
		file File
		rank Rank
	}{
		{A1, FileA, Rank1},
		{H1, FileH, Rank1},
		{A8, FileA, Rank8},
		{H8, FileH, Rank8},
		{E4, FileE, Rank4},
	}

	for _, c := range cases {
		if got := c.sq.File(); got != c.file {
			t.Errorf("%v.File() = %v, want %v", c.sq, got, c.file)
		}
		if got := c.sq.Rank(); got != c.rank {
			t.Errorf("%v.Rank() = %v, want %v", c.sq, got, c.rank)
		}
	}
}

func TestNewRoundTrip(t *testing.T) {
	for s := A1; s <= H8; s++ {
		if got := New(s.String()); got != s {
			t.Errorf("New(%q) = %v, want %v", s.String(), got, s)
		}
	}

	if New("-") != None {
		t.Errorf("New(\"-\") = %v, want None", New("-"))
	}
}

func TestDiagonal(t *testing.T) {
	if A1.Diagonal() != H8.Diagonal() {
		t.Errorf("A1 and H8 should share the long diagonal")
	}
	if A1.Diagonal() != DiagonalA1H8 {
		t.Errorf("A1.Diagonal() = %v, want DiagonalA1H8", A1.Diagonal())
	}
	if E4.Diagonal() != D3.Diagonal() {
		t.Errorf("E4 and D3 should share a diagonal")
	}
}

func TestAntiDiagonal(t *testing.T) {
	if A8.AntiDiagonal() != H1.AntiDiagonal() {
		t.Errorf("A8 and H1 should share the long anti-diagonal")
	}
	if A8.AntiDiagonal() != DiagonalH1A8 {
		t.Errorf("A8.AntiDiagonal() = %v, want DiagonalH1A8", A8.AntiDiagonal())
	}
}

func TestFlip(t *testing.T) {
	if A1.Flip() != A8 {
		t.Errorf("A1.Flip() = %v, want A8", A1.Flip())
	}
	if E4.Flip() != E5 {
		t.Errorf("E4.Flip() = %v, want E5", E4.Flip())
	}
	if H8.Flip() != H1 {
		t.Errorf("H8.Flip() = %v, want H1", H8.Flip())
	}
}
