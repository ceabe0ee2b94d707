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
	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// MagicSeeds are per-rank seeds for the magic-number search PRNG, chosen
// (by the engine this was ported from) to terminate the search quickly.
var MagicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

// Magic holds the magic-multiplication constant and relevant-occupancy
// mask used to index a sliding piece's precomputed attack table from an
// arbitrary board occupancy.
// https://www.chessprogramming.org/Magic_Bitboards
type Magic struct {
	Number uint64
	Mask   bitboard.Board
	Shift  uint

	table []bitboard.Board
}

// attacks looks up the attack set for the given full board occupancy.
func (m *Magic) attacks(occ bitboard.Board) bitboard.Board {
	blockers := uint64(occ) & uint64(m.Mask)
	index := (blockers * m.Number) >> m.Shift
	return m.table[index]
}

// RookMagics and BishopMagics hold the per-square magic constants and
// attack tables for the rook and bishop, generated once at startup.
var RookMagics [square.N]Magic
var BishopMagics [square.N]Magic

func init() {
	generateMagics(RookMagics[:], rookAttacks)
	generateMagics(BishopMagics[:], bishopAttacks)
}

// generateMagics fills in magics for every square, given the function
// computing a sliding piece's true attack set from an occupancy.
func generateMagics(magics []Magic, trueAttacks func(square.Square, bitboard.Board) bitboard.Board) {
	for s := square.A1; s <= square.H8; s++ {
		magic := &magics[s]

		magic.Mask = trueAttacks(s, bitboard.Empty)
		bitCount := magic.Mask.Count()
		magic.Shift = uint(64 - bitCount)

		blockerSets := enumerateSubsets(magic.Mask)
		attackSets := make([]bitboard.Board, len(blockerSets))
		for i, blockers := range blockerSets {
			attackSets[i] = trueAttacks(s, blockers)
		}

		var rng util.PRNG
		rng.Seed(MagicSeeds[s.Rank()])

		table := make([]bitboard.Board, 1<<bitCount)

	search:
		for {
			candidate := rng.SparseUint64()
			for i := range table {
				table[i] = bitboard.Empty
			}

			for i, blockers := range blockerSets {
				index := (uint64(blockers) * candidate) >> magic.Shift
				if table[index] != bitboard.Empty && table[index] != attackSets[i] {
					continue search
				}
				table[index] = attackSets[i]
			}

			magic.Number = candidate
			magic.table = table
			break
		}
	}
}

// enumerateSubsets returns every subset of the set bits of mask, via the
// classic "carry-rippler" trick.
func enumerateSubsets(mask bitboard.Board) []bitboard.Board {
	subsets := make([]bitboard.Board, 0, 1<<mask.Count())
	subset := bitboard.Empty
	for {
		subsets = append(subsets, subset)
		subset = (subset - mask) & mask
		if subset == bitboard.Empty {
			break
		}
	}
	return subsets
}
