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

// Command kestrel-watch is a terminal dashboard that runs a search on a
// given position and live-renders the board alongside the iterative
// deepening progress (depth, score, nodes, nps), for interactively
// watching what the search core is doing without parsing raw UCI info
// lines.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/search"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "position to search, in FEN")
	depth := flag.Int("depth", search.MaxDepth, "maximum depth to search to")
	movetime := flag.Duration("movetime", 0, "time budget; 0 searches to -depth only")
	flag.Parse()

	if err := run(*fen, *depth, *movetime); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fen string, depth int, movetime time.Duration) error {
	b, err := board.New(fen)
	if err != nil {
		return err
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("watch: failed to initialize terminal: %w", err)
	}
	defer ui.Close()

	boardView := widgets.NewParagraph()
	boardView.Title = "board"
	boardView.SetRect(0, 0, 34, 13)

	infoView := widgets.NewTable()
	infoView.Title = "search"
	infoView.Rows = [][]string{{"depth", "score", "nodes", "nps", "pv"}}
	infoView.SetRect(34, 0, 120, 13)

	boardView.Text = renderBoard(&b)
	ui.Render(boardView, infoView)

	ctx := search.NewContext(&b, nil)
	ctx.OnIteration = func(info search.Info) {
		nps := 0
		if info.Time > 0 {
			nps = int(int64(info.Nodes) * int64(time.Second) / int64(info.Time))
		}
		infoView.Rows = append(infoView.Rows, []string{
			fmt.Sprintf("%d", info.Depth),
			info.Score.String(),
			fmt.Sprintf("%d", info.Nodes),
			fmt.Sprintf("%d", nps),
			info.PV.String(),
		})
		ui.Render(boardView, infoView)
	}

	done := make(chan struct{})
	go func() {
		ctx.FindBestMove(search.Limits{Depth: depth, Time: movetime})
		close(done)
	}()

	events := ui.PollEvents()
	for {
		select {
		case e := <-events:
			switch e.ID {
			case "q", "<C-c>":
				ctx.Stop()
				return nil
			}
		case <-done:
			return waitForQuit(events)
		}
	}
}

// waitForQuit keeps the dashboard on screen after the search finishes,
// until the user explicitly dismisses it.
func waitForQuit(events <-chan ui.Event) error {
	for e := range events {
		switch e.ID {
		case "q", "<C-c>":
			return nil
		}
	}
	return nil
}

// renderBoard draws an 8x8 ASCII diagram of b's current position.
func renderBoard(b *board.Board) string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			p := b.Position[rank*8+file]
			if p == piece.NoPiece {
				s += ". "
			} else {
				s += p.String() + " "
			}
		}
		s += "\n"
	}
	return s
}
