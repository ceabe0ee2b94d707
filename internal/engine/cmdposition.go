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

package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
	"github.com/kestrelchess/kestrel/pkg/uci/flag"
)

// fenFields is the number of space-separated fields in a FEN string:
// placement, side to move, castling rights, en-passant target, halfmove
// clock, fullmove number.
const fenFields = 6

// newCmdPosition implements "position [fen <fenstring> | startpos]
// [moves <move>...]": it sets up the named base position and plays the
// given moves, in long algebraic notation, on top of it.
func newCmdPosition(e *Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Array("fen", fenFields)
	schema.Button("startpos")
	schema.Variadic("moves")

	return cmd.Command{
		Name: "position",
		Run: func(i cmd.Interaction) error {
			b, err := parsePosition(i.Values)
			if err != nil {
				return err
			}
			e.Board = b
			return nil
		},
		Flags: schema,
	}
}

func parsePosition(values flag.Values) (board.Board, error) {
	var b board.Board
	var err error

	switch {
	case values["startpos"].Set && values["fen"].Set:
		return board.Board{}, errors.New("position: both startpos and fen given")

	case values["startpos"].Set:
		b, err = board.New(board.StartFEN)

	case values["fen"].Set:
		fields := values["fen"].Value.([]string)
		b, err = board.New(strings.Join(fields, " "))

	default:
		return board.Board{}, errors.New("position: neither startpos nor fen given")
	}
	if err != nil {
		return board.Board{}, err
	}

	if moves := values["moves"]; moves.Set {
		for _, ucified := range moves.Value.([]string) {
			m, ok := b.MoveFromUCI(ucified)
			if !ok {
				return board.Board{}, fmt.Errorf("position: illegal move %q", ucified)
			}
			b.MakeMove(m)
		}
	}

	return b, nil
}
