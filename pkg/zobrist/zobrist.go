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

// Package zobrist implements Zobrist hashing: a random, incrementally
// updatable key used to identify chess positions for the transposition
// table and repetition detection.
package zobrist

import (
	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// Key is a Zobrist hash key.
type Key uint64

// PieceSquare holds a random key for every (piece, square) pair.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds a random key for every file an en-passant target may
// sit on.
var EnPassant [square.FileN]Key

// Castling holds a random key for every castling rights bitset.
var Castling [castling.N]Key

// SideToMove is XORed into the key whenever it is Black's move.
var SideToMove Key

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used by Stockfish

	// piece square numbers
	for p := 0; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	// en passant file numbers
	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	// castling right numbers
	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	// black to move number
	SideToMove = Key(rng.Uint64())
}
