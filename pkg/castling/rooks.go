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

package castling

import (
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// RookInfo describes how a rook moves when its king castles.
type RookInfo struct {
	From, To square.Square
	RookType piece.Piece
}

// Rooks is a lookup table, indexed by the king's destination square during
// a castle, giving the corresponding rook move. Squares that are not a
// king's castling destination hold the zero RookInfo and are never read.
var Rooks = [square.N]RookInfo{
	square.G1: {From: square.H1, To: square.F1, RookType: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, RookType: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, RookType: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, RookType: piece.BlackRook},
}

// RightUpdates maps each square to the castling rights that must be
// cleared when a piece moves from or to it: moving the king forfeits both
// of its side's rights, moving either rook (or having it captured)
// forfeits that rook's side's right.
var RightUpdates = [square.N]Rights{
	square.A1: WhiteQueenside,
	square.E1: White,
	square.H1: WhiteKingside,

	square.A8: BlackQueenside,
	square.E8: Black,
	square.H8: BlackKingside,
}
