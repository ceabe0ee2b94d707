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

package move

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

func TestRoundTrip(t *testing.T) {
	m := New(square.E2, square.E4, piece.Pawn, Quiet)
	if m.From() != square.E2 || m.To() != square.E4 || m.Piece() != piece.Pawn || m.Tag() != Quiet {
		t.Errorf("round trip failed for %v", m)
	}
	if m.IsCapture() || !m.IsQuiet() {
		t.Errorf("e2e4 should be quiet, non-capturing")
	}
	if m.String() != "e2e4" {
		t.Errorf("String() = %q, want e2e4", m.String())
	}
}

func TestCapture(t *testing.T) {
	m := New(square.E4, square.D5, piece.Pawn, Capture)
	if !m.IsCapture() {
		t.Errorf("capture move should report IsCapture")
	}
}

func TestPromotion(t *testing.T) {
	m := NewPromotion(square.E7, square.E8, piece.Queen, false)
	if m.Tag() != Promotion || m.Promotion() != piece.Queen {
		t.Errorf("promotion fields wrong for %v", m)
	}
	if m.IsCapture() {
		t.Errorf("non-capturing promotion should not report IsCapture")
	}
	if m.String() != "e7e8q" {
		t.Errorf("String() = %q, want e7e8q", m.String())
	}

	cm := NewPromotion(square.E7, square.D8, piece.Knight, true)
	if !cm.IsCapture() {
		t.Errorf("capturing promotion should report IsCapture")
	}
	if cm.Promotion() != piece.Knight {
		t.Errorf("Promotion() = %v, want Knight", cm.Promotion())
	}
}

func TestNullMove(t *testing.T) {
	if Null.String() != "0000" {
		t.Errorf("Null.String() = %q, want 0000", Null.String())
	}
}

func TestIsReversible(t *testing.T) {
	pawn := New(square.E2, square.E4, piece.Pawn, Quiet)
	if pawn.IsReversible() {
		t.Errorf("pawn push should not be reversible")
	}

	knight := New(square.G1, square.F3, piece.Knight, Quiet)
	if !knight.IsReversible() {
		t.Errorf("quiet knight move should be reversible")
	}

	capture := New(square.E4, square.D5, piece.Pawn, Capture)
	if capture.IsReversible() {
		t.Errorf("capture should not be reversible")
	}
}
