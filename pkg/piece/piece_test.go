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

package piece

import "testing"

func TestTypeIndices(t *testing.T) {
	types := []Type{Pawn, Knight, Bishop, Rook, Queen, King}
	for i, tp := range types {
		if int(tp) != i {
			t.Errorf("type %v has index %d, want %d", tp, tp, i)
		}
	}
}

func TestNewRoundTrip(t *testing.T) {
	for c := White; c <= Black; c++ {
		for tp := Pawn; tp <= King; tp++ {
			p := New(tp, c)
			if p.Type() != tp {
				t.Errorf("New(%v, %v).Type() = %v, want %v", tp, c, p.Type(), tp)
			}
			if p.Color() != c {
				t.Errorf("New(%v, %v).Color() = %v, want %v", tp, c, p.Color(), c)
			}
		}
	}
}

func TestNoPiece(t *testing.T) {
	if NoPiece.Type() != NoType {
		t.Errorf("NoPiece.Type() = %v, want NoType", NoPiece.Type())
	}
	if New(NoType, White) != NoPiece {
		t.Errorf("New(NoType, White) = %v, want NoPiece", New(NoType, White))
	}
}

func TestStringRoundTrip(t *testing.T) {
	for p := WhitePawn; p <= BlackKing; p++ {
		if got := NewFromString(p.String()); got != p {
			t.Errorf("NewFromString(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black {
		t.Errorf("White.Other() = %v, want Black", White.Other())
	}
	if Black.Other() != White {
		t.Errorf("Black.Other() = %v, want White", Black.Other())
	}
}
