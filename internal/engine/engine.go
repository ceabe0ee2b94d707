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

// Package engine wires the search and board core to the UCI front end:
// it owns the position being searched and the one search.Context used
// to search it, and registers the command set a GUI can drive them with.
package engine

import (
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/search/tt"
	"github.com/kestrelchess/kestrel/pkg/uci"
)

// NewClient builds a uci.Client with the engine's full command set
// registered, starting from the standard chess position.
func NewClient() uci.Client {
	client := uci.NewClient()

	b, err := board.New(board.StartFEN)
	if err != nil {
		// StartFEN is a constant; this can only fail if the constant
		// itself is malformed.
		panic(err)
	}

	e := &Engine{Board: b}
	e.Search = search.NewContext(&e.Board, tt.NewTable(tt.DefaultSize))

	client.AddCommand(newCmdUci())
	client.AddCommand(newCmdUciNewGame(e))
	client.AddCommand(newCmdPosition(e))
	client.AddCommand(newCmdGo(e))
	client.AddCommand(newCmdStop(e))

	return client
}

// Engine is the shared state backing the UCI command set: the board the
// GUI has set up and the search.Context searching it.
type Engine struct {
	Board  board.Board
	Search *search.Context

	// Searching is set for the duration of a "go" command's search, so
	// "stop" and a second "go" can tell whether one is in progress.
	Searching bool
}
