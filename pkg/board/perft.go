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

package board

// Perft counts the leaf nodes of the full game tree rooted at fen, to the
// given depth, as a correctness check on move generation and make/unmake.
// https://www.chessprogramming.org/Perft
func Perft(fen string, depth int) (int, error) {
	b, err := New(fen)
	if err != nil {
		return 0, err
	}
	return b.Perft(depth), nil
}

// Perft counts the leaf nodes of the game tree rooted at the current
// position, to the given depth.
func (b *Board) Perft(depth int) int {
	if depth == 0 {
		return 1
	}

	var nodes int
	for _, m := range b.GenerateMoves() {
		mover := b.SideToMove
		b.MakeMove(m)

		// move generation already resolves pins and checks, including the
		// en passant double-pin along the capture rank (appendEnPassant);
		// this check of the mover's own king is a safety net on top of it.
		if !b.IsInCheck(mover) {
			nodes += b.Perft(depth - 1)
		}

		b.UnmakeMove()
	}

	return nodes
}
