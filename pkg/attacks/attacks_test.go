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

package attacks

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

func TestKnightCornerCount(t *testing.T) {
	if n := Knight(square.A1, bitboard.Empty).Count(); n != 2 {
		t.Errorf("knight on a1: got %d targets, want 2", n)
	}
	if n := Knight(square.D5, bitboard.Empty).Count(); n != 8 {
		t.Errorf("knight on d5: got %d targets, want 8", n)
	}
}

func TestKingCornerCount(t *testing.T) {
	if n := King(square.A1, bitboard.Empty, bitboard.Empty, castling.None).Count(); n != 3 {
		t.Errorf("king on a1: got %d targets, want 3", n)
	}
	if n := King(square.D5, bitboard.Empty, bitboard.Empty, castling.None).Count(); n != 8 {
		t.Errorf("king on d5: got %d targets, want 8", n)
	}
}

func TestKingCastling(t *testing.T) {
	rights := castling.WhiteKingside | castling.WhiteQueenside
	moves := King(square.E1, bitboard.Empty, bitboard.Empty, rights)

	if !moves.IsSet(square.G1) {
		t.Error("white kingside castle target g1 missing")
	}
	if !moves.IsSet(square.C1) {
		t.Error("white queenside castle target c1 missing")
	}

	var occ bitboard.Board
	occ.Set(square.B1)
	blocked := King(square.E1, bitboard.Empty, occ, rights)
	if blocked.IsSet(square.C1) {
		t.Error("queenside castle should be blocked when b1 is occupied")
	}
}

func TestKingNoCastlingRights(t *testing.T) {
	moves := King(square.E1, bitboard.Empty, bitboard.Empty, castling.None)
	if moves.IsSet(square.G1) || moves.IsSet(square.C1) {
		t.Error("castle targets should not appear without rights")
	}
}

func TestPawnSinglePush(t *testing.T) {
	moves := Pawn(square.E3, square.None, piece.White, bitboard.Empty, bitboard.Empty)
	if !moves.IsSet(square.E4) {
		t.Error("white pawn on e3 should be able to push to e4")
	}
	if moves.IsSet(square.E5) {
		t.Error("white pawn not on home rank should not double-push")
	}
}

func TestPawnDoublePush(t *testing.T) {
	moves := Pawn(square.E2, square.None, piece.White, bitboard.Empty, bitboard.Empty)
	if !moves.IsSet(square.E3) || !moves.IsSet(square.E4) {
		t.Error("white pawn on e2 should be able to single- and double-push")
	}

	var occ bitboard.Board
	occ.Set(square.E3)
	blocked := Pawn(square.E2, square.None, piece.White, bitboard.Empty, occ)
	if blocked.IsSet(square.E4) {
		t.Error("double push should be blocked when the intermediate square is occupied")
	}
}

func TestPawnCaptures(t *testing.T) {
	var enemies bitboard.Board
	enemies.Set(square.D5)
	enemies.Set(square.F5)

	moves := Pawn(square.E4, square.None, piece.White, bitboard.Empty, enemies)
	if !moves.IsSet(square.D5) || !moves.IsSet(square.F5) {
		t.Error("white pawn on e4 should capture on both d5 and f5")
	}
}

func TestPawnEnPassant(t *testing.T) {
	moves := Pawn(square.E5, square.D6, piece.White, bitboard.Empty, bitboard.Empty)
	if !moves.IsSet(square.D6) {
		t.Error("white pawn on e5 should be able to capture en passant on d6")
	}
}

func TestBlackPawnDirection(t *testing.T) {
	moves := Pawn(square.E7, square.None, piece.Black, bitboard.Empty, bitboard.Empty)
	if !moves.IsSet(square.E6) || !moves.IsSet(square.E5) {
		t.Error("black pawn on e7 should push towards rank 1")
	}
}

// bruteRook computes a rook's attack set by walking each of the four rays
// one square at a time, stopping at the first blocker (inclusive). It is
// the reference implementation magic-table lookups are checked against.
func bruteRook(s square.Square, occ bitboard.Board) bitboard.Board {
	var bb bitboard.Board
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	walk(s, occ, dirs[:], &bb)
	return bb
}

func bruteBishop(s square.Square, occ bitboard.Board) bitboard.Board {
	var bb bitboard.Board
	dirs := [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	walk(s, occ, dirs[:], &bb)
	return bb
}

func walk(s square.Square, occ bitboard.Board, dirs [][2]int, bb *bitboard.Board) {
	file, rank := int(s.File()), int(s.Rank())
	for _, d := range dirs {
		f, r := file+d[0], rank+d[1]
		for f >= int(square.FileA) && f <= int(square.FileH) && r >= int(square.Rank1) && r <= int(square.Rank8) {
			target := square.From(square.File(f), square.Rank(r))
			bb.Set(target)
			if occ.IsSet(target) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
}

func TestMagicRookMatchesBruteForce(t *testing.T) {
	occupancies := []bitboard.Board{
		bitboard.Empty,
		bitboard.Squares[square.D4] | bitboard.Squares[square.D6] | bitboard.Squares[square.B4] | bitboard.Squares[square.F4],
		bitboard.Squares[square.A1] | bitboard.Squares[square.H8] | bitboard.Squares[square.A8] | bitboard.Squares[square.H1],
	}

	for _, s := range []square.Square{square.A1, square.D4, square.H8, square.E5} {
		for _, occ := range occupancies {
			got := RookMagics[s].attacks(occ)
			want := bruteRook(s, occ)
			if got != want {
				t.Errorf("rook magic at %s with occ %b: got %064b, want %064b", s, occ, got, want)
			}
		}
	}
}

func TestMagicBishopMatchesBruteForce(t *testing.T) {
	occupancies := []bitboard.Board{
		bitboard.Empty,
		bitboard.Squares[square.C3] | bitboard.Squares[square.E3] | bitboard.Squares[square.C5] | bitboard.Squares[square.E5],
	}

	for _, s := range []square.Square{square.A1, square.D4, square.H8, square.E5} {
		for _, occ := range occupancies {
			got := BishopMagics[s].attacks(occ)
			want := bruteBishop(s, occ)
			if got != want {
				t.Errorf("bishop magic at %s with occ %b: got %064b, want %064b", s, occ, got, want)
			}
		}
	}
}

func TestQueenIsRookUnionBishop(t *testing.T) {
	var occ bitboard.Board
	occ.Set(square.D6)
	occ.Set(square.B4)

	got := Queen(square.D4, bitboard.Empty, occ)
	want := Rook(square.D4, bitboard.Empty, occ) | Bishop(square.D4, bitboard.Empty, occ)
	if got != want {
		t.Error("queen attacks should equal the union of rook and bishop attacks")
	}
}

func TestMagicExcludesFriends(t *testing.T) {
	var friends bitboard.Board
	friends.Set(square.D5)

	moves := Rook(square.D4, friends, friends)
	if moves.IsSet(square.D5) {
		t.Error("rook attacks should exclude friendly-occupied squares")
	}
}

func TestRawAttackTablesMatchFilteredHelpers(t *testing.T) {
	if KnightAttacks(square.D5) != Knight(square.D5, bitboard.Empty) {
		t.Error("KnightAttacks should match Knight with no friends to exclude")
	}
	if KingAttacks(square.D5) != King(square.D5, bitboard.Empty, bitboard.Empty, castling.None) {
		t.Error("KingAttacks should match King with no friends/castling rights")
	}
}

func TestPawnAttacksSymmetry(t *testing.T) {
	// a white pawn attacking from e4 reaches d5 and f5; a black pawn
	// sitting on d5 or f5 attacks back towards e4 by the same tables.
	white := PawnAttacks(square.E4, piece.White)
	if !white.IsSet(square.D5) || !white.IsSet(square.F5) {
		t.Error("white pawn attacks from e4 should include d5 and f5")
	}
	for _, from := range []square.Square{square.D5, square.F5} {
		if !PawnAttacks(from, piece.Black).IsSet(square.E4) {
			t.Errorf("black pawn attacks from %s should include e4", from)
		}
	}
}

func TestEnumerateSubsetsCount(t *testing.T) {
	mask := bitboard.Squares[square.B1] | bitboard.Squares[square.C1] | bitboard.Squares[square.D1]
	subsets := enumerateSubsets(mask)
	if len(subsets) != 1<<mask.Count() {
		t.Errorf("got %d subsets, want %d", len(subsets), 1<<mask.Count())
	}
}
