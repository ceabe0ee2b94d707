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

package engine

import (
	"errors"
	"strconv"
	"time"

	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
	"github.com/kestrelchess/kestrel/pkg/uci/flag"
)

// newCmdGo implements "go [depth <d>] [movetime <ms>] [wtime <ms> btime
// <ms> [winc <ms> binc <ms>]]": it starts a search on the position set
// up by the most recent "position" command. Only a depth limit, a flat
// per-move time budget, or a clock-derived budget are supported; the
// ponder/searchmoves/mate/nodes options the full protocol defines are
// not implemented.
func newCmdGo(e *Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Single("depth")
	schema.Single("movetime")
	schema.Single("wtime")
	schema.Single("btime")
	schema.Single("winc")
	schema.Single("binc")
	schema.Button("infinite")

	return cmd.Command{
		Name:     "go",
		Parallel: true,
		Run: func(i cmd.Interaction) error {
			if e.Searching {
				return errors.New("go: search already in progress")
			}

			limits, err := parseSearchLimits(e, i.Values)
			if err != nil {
				return err
			}

			e.Searching = true
			defer func() { e.Searching = false }()

			e.Search.OnIteration = func(info search.Info) {
				nps := uint64(0)
				if info.Time > 0 {
					nps = uint64(info.Nodes) * uint64(time.Second) / uint64(info.Time)
				}
				i.Replyf("info depth %d score %s nodes %d time %d nps %d pv %s",
					info.Depth, info.Score, info.Nodes, info.Time.Milliseconds(), nps, info.PV.String())
			}

			_, best := e.Search.FindBestMove(limits)
			if best == move.Null {
				i.Reply("bestmove 0000")
			} else {
				i.Replyf("bestmove %s", best)
			}
			return nil
		},
		Flags: schema,
	}
}

func parseSearchLimits(e *Engine, values flag.Values) (search.Limits, error) {
	var limits search.Limits

	if depth, set := values["depth"]; set {
		d, err := strconv.Atoi(depth.Value.(string))
		if err != nil {
			return limits, err
		}
		limits.Depth = d
	}

	switch {
	case values["movetime"].Set:
		ms, err := strconv.Atoi(values["movetime"].Value.(string))
		if err != nil {
			return limits, err
		}
		limits.Time = time.Duration(ms) * time.Millisecond

	case values["wtime"].Set && values["btime"].Set:
		wtime, err := strconv.Atoi(values["wtime"].Value.(string))
		if err != nil {
			return limits, err
		}
		btime, err := strconv.Atoi(values["btime"].Value.(string))
		if err != nil {
			return limits, err
		}

		our := wtime
		if e.Board.SideToMove == piece.Black {
			our = btime
		}

		// a simple fixed fraction of our remaining clock, the way a
		// move budget is carved out without tracking moves-to-go.
		limits.Time = time.Duration(our/20) * time.Millisecond

	case values["infinite"].Set:
		limits.Depth = search.MaxDepth
	}

	return limits, nil
}
