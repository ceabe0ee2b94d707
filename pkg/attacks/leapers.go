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
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// lookup tables for precalculated attack boards of non-sliding pieces
var (
	knightAttacks [square.N]bitboard.Board
	kingAttacks   [square.N]bitboard.Board

	pawnPushes  [piece.NColor][square.N]bitboard.Board
	pawnCaptures [piece.NColor][square.N]bitboard.Board
)

func init() {
	for s := square.A1; s <= square.H8; s++ {
		knightAttacks[s] = raysFrom(s,
			offset{2, 1}, offset{1, 2}, offset{-1, 2}, offset{-2, 1},
			offset{-2, -1}, offset{-1, -2}, offset{1, -2}, offset{2, -1},
		)

		kingAttacks[s] = raysFrom(s,
			offset{1, 0}, offset{1, 1}, offset{0, 1}, offset{-1, 1},
			offset{-1, 0}, offset{-1, -1}, offset{0, -1}, offset{1, -1},
		)

		pawnPushes[piece.White][s] = raysFrom(s, offset{0, 1})
		pawnPushes[piece.Black][s] = raysFrom(s, offset{0, -1})

		pawnCaptures[piece.White][s] = raysFrom(s, offset{1, 1}, offset{-1, 1})
		pawnCaptures[piece.Black][s] = raysFrom(s, offset{1, -1}, offset{-1, -1})
	}
}

// offset is a (file, rank) displacement used to build leaper attack sets.
type offset struct {
	file, rank int
}

// raysFrom builds a bitboard.Board containing every in-bounds square
// reachable by adding each offset to the origin.
func raysFrom(origin square.Square, offsets ...offset) bitboard.Board {
	var bb bitboard.Board

	originFile, originRank := int(origin.File()), int(origin.Rank())
	for _, o := range offsets {
		file := originFile + o.file
		rank := originRank + o.rank

		if file < int(square.FileA) || file > int(square.FileH) || rank < int(square.Rank1) || rank > int(square.Rank8) {
			continue
		}

		bb.Set(square.From(square.File(file), square.Rank(rank)))
	}

	return bb
}

// KnightAttacks returns the raw knight attack set from s, independent of
// any occupancy or side to move.
func KnightAttacks(s square.Square) bitboard.Board {
	return knightAttacks[s]
}

// KingAttacks returns the raw king attack set from s (excluding castling),
// independent of any occupancy or side to move.
func KingAttacks(s square.Square) bitboard.Board {
	return kingAttacks[s]
}

// PawnAttacks returns the raw capture attack set of a pawn of color c
// from s, independent of occupancy. Also doubles, by swapping colors, as
// the standard "which squares attack s" reverse pawn-attack lookup.
func PawnAttacks(s square.Square, c piece.Color) bitboard.Board {
	return pawnCaptures[c][s]
}

// Knight returns a knight's attack set from s, excluding friendly pieces.
func Knight(s square.Square, friends bitboard.Board) bitboard.Board {
	return knightAttacks[s] &^ friends
}

// King returns a king's attack set from s, excluding friendly pieces, and
// including castling moves available given the occupancy and rights.
func King(s square.Square, friends, occupied bitboard.Board, cr castling.Rights) bitboard.Board {
	base := kingAttacks[s] &^ friends

	switch s {
	case square.E1:
		if cr&castling.WhiteKingside != 0 && occupied&bitboard.F1G1 == 0 {
			base.Set(square.G1)
		}
		if cr&castling.WhiteQueenside != 0 && occupied&bitboard.B1C1D1 == 0 {
			base.Set(square.C1)
		}
	case square.E8:
		if cr&castling.BlackKingside != 0 && occupied&bitboard.F8G8 == 0 {
			base.Set(square.G8)
		}
		if cr&castling.BlackQueenside != 0 && occupied&bitboard.B8C8D8 == 0 {
			base.Set(square.C8)
		}
	}

	return base
}

// Pawn returns a pawn's full move set (pushes, double pushes, and
// captures, including en-passant) from s for the given color.
func Pawn(s, ep square.Square, c piece.Color, friends, enemies bitboard.Board) bitboard.Board {
	occupied := friends | enemies
	enemies.Set(ep)

	moves := pawnPushes[c][s] &^ occupied
	if moves != bitboard.Empty && isPawnHomeRank(s, c) {
		moves |= moves.Up(c) &^ occupied
	}
	moves |= pawnCaptures[c][s] & enemies

	return moves
}

// isPawnHomeRank reports whether s is the starting rank a pawn of color
// c may double-push from.
func isPawnHomeRank(s square.Square, c piece.Color) bool {
	if c == piece.White {
		return s.Rank() == square.Rank2
	}
	return s.Rank() == square.Rank7
}
