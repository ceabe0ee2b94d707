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

// Package attacks precomputes attack bitboards for every piece kind and
// square, using magic bitboards for the sliding pieces (rook, bishop,
// queen) and plain lookup tables for the leapers (knight, king, pawn).
package attacks

import (
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// rookAttacks computes the rook's attack set from s given a full board
// occupancy, via hyperbola quintessence along the rook's file and rank.
// Used both to seed the magic tables and as their ground truth during
// magic-number search.
func rookAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	file := bitboard.Hyperbola(s, occ, bitboard.Files[s.File()])
	rank := bitboard.Hyperbola(s, occ, bitboard.Ranks[s.Rank()])
	return file | rank
}

// bishopAttacks computes the bishop's attack set from s given a full
// board occupancy, via hyperbola quintessence along both diagonals.
func bishopAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	diag := bitboard.Hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()])
	anti := bitboard.Hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])
	return diag | anti
}

// Rook returns the rook's attack set from s given the full board
// occupancy, excluding friendly-occupied squares.
func Rook(s square.Square, friends, occ bitboard.Board) bitboard.Board {
	return RookMagics[s].attacks(occ) &^ friends
}

// Bishop returns the bishop's attack set from s given the full board
// occupancy, excluding friendly-occupied squares.
func Bishop(s square.Square, friends, occ bitboard.Board) bitboard.Board {
	return BishopMagics[s].attacks(occ) &^ friends
}

// Queen returns the queen's attack set from s, the union of the rook's
// and the bishop's.
func Queen(s square.Square, friends, occ bitboard.Board) bitboard.Board {
	return Rook(s, friends, occ) | Bishop(s, friends, occ)
}
