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

// Command kestrel-bench runs the fixed perft and tactical-search
// benchmark suites and writes an HTML nodes/sec report.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/search"
)

// perftSuite is the standard six-position reference table, at a depth
// shallow enough to finish in a few seconds per position.
var perftSuite = []struct {
	name  string
	fen   string
	depth int
}{
	{"startpos", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 5},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4},
	{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5},
	{"promotion", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4},
	{"talkchess", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4},
	{"steven", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 1", 4},
}

// tacticalSuite is the mate-finding suite, run to a fixed search depth.
var tacticalSuite = []struct {
	name  string
	fen   string
	depth int
}{
	{"opera mate", "4k3/5p2/8/6B1/8/8/8/3R2K1 w - - 0 1", 6},
	{"anderssen's mate", "6k1/6P1/5K1R/8/8/8/8/8 w - - 0 1", 6},
	{"dovetail mate", "1r6/pk6/4Q3/3P4/8/8/8/6K1 w - - 0 1", 6},
	{"epaulette mate", "3rkr2/8/5Q2/8/8/8/8/6K1 w - - 0 1", 6},
	{"pawn mate", "8/7R/1pkp4/2p5/1PP5/8/8/6K1 w - - 0 1", 6},
	{"queen sacrifice mate", "r1b3nr/ppp3qp/1bnpk3/4p1BQ/3PP3/2P5/PP3PPP/RN3RK1 w - - 0 11", 6},
}

type result struct {
	name  string
	nps   []float64 // indexed by depth-1
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("perft suite")
	perftResults := runPerftSuite()

	fmt.Println("tactical suite")
	searchResults := runTacticalSuite()

	return writeReport("kestrel-bench.html", append(perftResults, searchResults...))
}

func runPerftSuite() []result {
	bar := progressbar.Default(int64(len(perftSuite)), "perft")
	results := make([]result, 0, len(perftSuite))

	for _, c := range perftSuite {
		b, err := board.New(c.fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft %s: %v\n", c.name, err)
			continue
		}

		var nps []float64
		for d := 1; d <= c.depth; d++ {
			start := time.Now()
			nodes := b.Perft(d)
			elapsed := time.Since(start)
			nps = append(nps, float64(nodes)/elapsed.Seconds())
		}

		results = append(results, result{name: "perft:" + c.name, nps: nps})
		bar.Add(1)
	}
	bar.Close()
	return results
}

func runTacticalSuite() []result {
	bar := progressbar.Default(int64(len(tacticalSuite)), "tactical")
	results := make([]result, 0, len(tacticalSuite))

	for _, c := range tacticalSuite {
		b, err := board.New(c.fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tactical %s: %v\n", c.name, err)
			continue
		}

		ctx := search.NewContext(&b, nil)

		var nps []float64
		ctx.OnIteration = func(info search.Info) {
			if info.Time <= 0 {
				nps = append(nps, 0)
				return
			}
			nps = append(nps, float64(info.Nodes)/info.Time.Seconds())
		}
		ctx.FindBestMove(search.Limits{Depth: c.depth})

		results = append(results, result{name: "tactical:" + c.name, nps: nps})
		bar.Add(1)
	}
	bar.Close()
	return results
}

func writeReport(path string, results []result) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "kestrel-bench: nodes/sec by depth"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "depth"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "nodes/sec"}),
	)

	maxDepth := 0
	for _, r := range results {
		if len(r.nps) > maxDepth {
			maxDepth = len(r.nps)
		}
	}
	depths := make([]string, maxDepth)
	for i := range depths {
		depths[i] = fmt.Sprintf("%d", i+1)
	}
	line.SetXAxis(depths)

	for _, r := range results {
		points := make([]opts.LineData, len(r.nps))
		for i, v := range r.nps {
			points[i] = opts.LineData{Value: v}
		}
		line.AddSeries(r.name, points)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
