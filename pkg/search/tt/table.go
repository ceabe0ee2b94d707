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

// Package tt implements the transposition table: a fixed-capacity cache
// of previously searched positions, keyed by Zobrist hash, that lets
// iterative deepening reuse the previous iteration's work.
package tt

import (
	"math/bits"

	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// DefaultSize is the table's default entry count, 2^20.
const DefaultSize = 1 << 20

// NewTable creates a transposition table with the given number of
// entries, which need not be a power of two.
func NewTable(size int) *Table {
	if size <= 0 {
		size = DefaultSize
	}
	return &Table{table: make([]Entry, size)}
}

// Table is a fixed-capacity, replace-always transposition table. It is
// not safe for concurrent use; search is single-threaded.
type Table struct {
	table []Entry
}

// Clear empties every entry in the table.
func (tt *Table) Clear() {
	clear(tt.table)
}

// Store records entry in the table, unconditionally overwriting
// whatever previously occupied its slot.
func (tt *Table) Store(entry Entry) {
	tt.table[tt.indexOf(entry.Hash)] = entry
}

// Probe looks up hash in the table. The second return value is false if
// the slot is empty or holds a different position (a hash collision on
// the index), in which case the Entry should not be used.
func (tt *Table) Probe(hash zobrist.Key) (Entry, bool) {
	entry := tt.table[tt.indexOf(hash)]
	return entry, entry.Bound != NoBound && entry.Hash == hash
}

// indexOf maps a Zobrist key onto a table slot using the fast-range
// reduction from Daniel Lemire's "A fast alternative to the modulo
// reduction": https://lemire.me/blog/2016/06/27/
func (tt *Table) indexOf(hash zobrist.Key) uint64 {
	hi, _ := bits.Mul64(uint64(hash), uint64(len(tt.table)))
	return hi
}

// Bound classifies what an Entry's Score represents relative to the
// search window it was stored from.
type Bound uint8

const (
	NoBound    Bound = iota // empty slot
	Exact                   // Score is the position's exact value
	LowerBound              // Score is a lower bound (failed high, beta cutoff)
	UpperBound              // Score is an upper bound (failed low)
)

// Entry is one transposition table record: a cached search result for a
// single position.
type Entry struct {
	Hash  zobrist.Key // full Zobrist key, guards against index collisions
	Move  move.Move   // best move found, used for move ordering
	Score eval.Score  // mate scores are already relative to this entry's Depth
	Depth int         // depth this entry was searched to
	Bound Bound
}
