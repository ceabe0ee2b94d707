// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package pgnreplay cross-validates the board package's move generator
// against two independent sources of truth: real game databases in PGN
// form, and randomly-played games arbitrated by an external legality
// oracle. Neither source feeds the evaluator or the search; this is
// strictly a move-generation correctness harness.
package pgnreplay

import (
	"fmt"
	"io"
	"os"
	"strings"

	pgn "gopkg.in/freeeve/pgn.v1"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
)

// Stats summarizes the outcome of a replay run.
type Stats struct {
	Games     int
	Plies     int
	Mismatches []Mismatch
}

// Mismatch records a single ply where a database move could not be
// matched against GenerateMoves's own legal move list.
type Mismatch struct {
	Game int
	Ply  int
	FEN  string
	SAN  string
}

func (s Stats) String() string {
	return fmt.Sprintf("pgnreplay: %d games, %d plies, %d mismatches", s.Games, s.Plies, len(s.Mismatches))
}

// ReplayFile walks every game in a PGN database file, replaying its
// mainline through a fresh board and asserting that every recorded SAN
// move names a move GenerateMoves also considers legal.
func ReplayFile(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer f.Close()
	return Replay(f)
}

// Replay is ReplayFile without the filesystem dependency, for testing.
func Replay(r io.Reader) (Stats, error) {
	var stats Stats

	scanner := pgn.NewPGNScanner(r)
	for scanner.Next() {
		game, err := scanner.Scan()
		if err != nil {
			return stats, fmt.Errorf("pgnreplay: decoding game %d: %w", stats.Games, err)
		}
		stats.Games++

		b, err := board.New(board.StartFEN)
		if err != nil {
			return stats, err
		}

		for ply, san := range game.Moves {
			m, ok := matchSAN(&b, san)
			if !ok {
				stats.Mismatches = append(stats.Mismatches, Mismatch{
					Game: stats.Games, Ply: ply + 1, FEN: b.FEN(), SAN: san,
				})
				break
			}
			b.MakeMove(m)
			stats.Plies++
		}
	}

	return stats, nil
}

// matchSAN finds the move among b's legal moves that standard algebraic
// notation san refers to. It strips check/mate/annotation suffixes and
// disambiguates by destination square, piece kind, and, when more than
// one candidate remains, the source file or rank given in san.
func matchSAN(b *board.Board, san string) (move.Move, bool) {
	san = strings.TrimRight(san, "+#!?")
	san = strings.TrimSuffix(san, "e.p.")

	moves := b.GenerateMoves()

	if san == "O-O" || san == "0-0" {
		return pickCastle(moves, false)
	}
	if san == "O-O-O" || san == "0-0-0" {
		return pickCastle(moves, true)
	}

	var promo piece.Type
	if i := strings.IndexByte(san, '='); i >= 0 {
		promo = piece.NewFromString(san[i+1 : i+2]).Type()
		san = san[:i]
	}

	dest := san[len(san)-2:]
	body := san[:len(san)-2]
	body = strings.ReplaceAll(body, "x", "")

	pt := piece.Pawn
	disambiguator := body
	if body != "" && strings.ContainsAny(body[0:1], "KQRBN") {
		pt = piece.NewFromString(body[0:1]).Type()
		disambiguator = body[1:]
	}

	var candidates []move.Move
	for _, m := range moves {
		if m.Piece() != pt || m.To().String() != dest {
			continue
		}
		if m.Tag() == move.Promotion && m.Promotion() != promo {
			continue
		}
		candidates = append(candidates, m)
	}

	switch len(candidates) {
	case 0:
		return move.Null, false
	case 1:
		return candidates[0], true
	}

	for _, m := range candidates {
		from := m.From().String()
		if strings.Contains(disambiguator, from[0:1]) || strings.Contains(disambiguator, from[1:2]) {
			return m, true
		}
	}
	return move.Null, false
}

func pickCastle(moves []move.Move, queenside bool) (move.Move, bool) {
	for _, m := range moves {
		if m.Tag() != move.Castle {
			continue
		}
		isQueenside := m.To() < m.From()
		if isQueenside == queenside {
			return m, true
		}
	}
	return move.Null, false
}
