// Package fmindex provides a compressed self-index over byte-alphabet texts
// (DNA, protein, or any other small finite alphabet), supporting exact
// substring counting/locating and approximate search within a bounded edit
// distance.
//
// fmindex builds two compressed suffix arrays under the hood — one over the
// text, one over its reversal — and exposes them as a single bidirectional
// index that can extend a query to the left or right one character at a
// time (see package index). Exact queries walk that index directly;
// approximate queries are dispatched through package meta, which picks
// between a plain recursive backtracker (package search/trivial) and a
// precomputed search scheme (package search/scheme) depending on the error
// budget.
//
// Basic usage:
//
//	idx, err := fmindex.Compile([]byte("ACGTACGT"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	positions := idx.Locate([]byte("ACGT")) // [0 4]
//
// Approximate usage:
//
//	cfg := fmindex.DefaultConfig()
//	cfg.MaxErrorTotal = 1
//	hits, _ := idx.SearchWithConfig([][]byte{[]byte("ACGGACG")}, cfg)
package fmindex

import (
	"fmt"
	"os"

	"github.com/coregx/fmindex/alphabet"
	"github.com/coregx/fmindex/csa"
	"github.com/coregx/fmindex/index"
	"github.com/coregx/fmindex/meta"
)

// Index is a compiled self-index over one text. An Index is immutable after
// Compile/Open returns and safe for concurrent read-only use: Count, Locate,
// Search and SearchWithConfig may all be called concurrently from multiple
// goroutines, each spawning its own cursors and engine state.
type Index struct {
	bi         *index.Bi
	text       []byte
	defaultEng *meta.Engine
}

// Compile builds an Index over text. text is copied; the caller's slice may
// be reused or discarded afterward.
//
// Compile fails only when text is empty — that's a fatal contract
// violation at the index-traversal layer, but the public constructor
// recovers it into a plain error rather than letting a
// programmer-error panic escape a top-level API entry point.
func Compile(text []byte) (ix *Index, err error) {
	defer func() {
		if r := recover(); r != nil {
			ix = nil
			err = fmt.Errorf("fmindex: Compile: %v", r)
		}
	}()

	if len(text) == 0 {
		return nil, fmt.Errorf("fmindex: Compile: text must not be empty")
	}

	extText := make([]int, len(text))
	counts := make([]int, 256)
	for i, b := range text {
		extText[i] = int(b)
		counts[b]++
	}

	present := 0
	for _, n := range counts {
		if n > 0 {
			present++
		}
	}

	var m *alphabet.Mapping
	if present == 256 {
		m = alphabet.NewIdentity(counts)
	} else {
		m = alphabet.NewReduced(counts)
	}

	reversed := make([]int, len(extText))
	for i, r := range extText {
		reversed[len(extText)-1-i] = r
	}

	csaFwd := csa.BuildFromText(extText, m)
	csaRev := csa.BuildFromText(reversed, m)
	bi := index.NewBi(csaFwd, csaRev, m, extText)

	eng, err := meta.NewEngine(bi, meta.DefaultConfig())
	if err != nil {
		return nil, err
	}

	return &Index{
		bi:         bi,
		text:       append([]byte(nil), text...),
		defaultEng: eng,
	}, nil
}

// Open reads the file at path and compiles an Index over its full contents.
// It is a convenience wrapper around Compile for text sourced from disk;
// persisting the compressed index itself to disk remains out of this
// module's scope — Open only ever reads a plain source text, never a
// persisted index blob.
func Open(path string) (*Index, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fmindex: Open: %w", err)
	}
	return Compile(text)
}

// DefaultConfig returns an exact-match configuration (no edits allowed),
// reporting all matches as positions. Callers customize the returned value
// and pass it to SearchWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Len returns the length of the indexed text.
func (ix *Index) Len() int { return len(ix.text) }

// Text returns the text the Index was built over. The returned slice must
// not be modified.
func (ix *Index) Text() []byte { return ix.text }

// Count returns the number of occurrences of query in the indexed text.
func (ix *Index) Count(query []byte) int {
	c := ix.bi.Root()
	if !c.ExtendRightSeq(toRanks(query)) {
		return 0
	}
	return c.Count()
}

// Locate returns every text position at which query occurs, as an exact
// substring match.
func (ix *Index) Locate(query []byte) []int {
	c := ix.bi.Root()
	if !c.ExtendRightSeq(toRanks(query)) {
		return nil
	}
	return c.Locate()
}

// Search runs every query against the index with the default configuration
// (exact match, all hits, positions) and returns, for each query, its
// matching text positions in discovery order with duplicates removed.
func (ix *Index) Search(queries [][]byte) [][]int {
	out := make([][]int, len(queries))
	for i, q := range queries {
		hits := ix.defaultEng.Search(toRanks(q))
		positions := make([]int, len(hits))
		for j, h := range hits {
			positions[j] = h.Position
		}
		out[i] = positions
	}
	return out
}

// SearchWithConfig runs every query against the index under config and
// returns, for each query, the Hits config.Mode selects.
// A fresh meta.Engine is built for the call, so distinct calls never share
// Config.OnHit state or Stats with each other or with Search's default
// engine; use Stats if per-call accounting on the default engine is enough.
func (ix *Index) SearchWithConfig(queries [][]byte, config meta.Config) ([][]meta.Hit, error) {
	eng, err := meta.NewEngine(ix.bi, config)
	if err != nil {
		return nil, err
	}
	out := make([][]meta.Hit, len(queries))
	for i, q := range queries {
		out[i] = eng.Search(toRanks(q))
	}
	return out, nil
}

// Stats returns execution statistics accumulated by Search (the default,
// exact-match engine). SearchWithConfig calls build their own ephemeral
// engine and do not contribute here.
func (ix *Index) Stats() meta.Stats { return ix.defaultEng.Stats() }

// ResetStats zeroes the statistics Stats reports.
func (ix *Index) ResetStats() { ix.defaultEng.ResetStats() }

// toRanks converts a byte string to the external symbol ranks the index
// traversal primitives operate on (one rank per byte value).
func toRanks(s []byte) []int {
	ranks := make([]int, len(s))
	for i, b := range s {
		ranks[i] = int(b)
	}
	return ranks
}
