package meta

import (
	"sync"

	"github.com/coregx/fmindex/internal/conv"
	"github.com/coregx/fmindex/internal/sparse"
)

// SearchState holds per-search mutable state: the hit buffer a search
// accumulates into and, for position output, the sparse set that
// deduplicates text positions reached via more than one edit script. Obtain
// it from the Engine's pool rather than constructing it directly, so
// concurrent callers of the same Engine never share one.
type SearchState struct {
	seen       *sparse.SparseSet
	seenCursor map[cursorKey]bool
	hits       []Hit
}

// cursorKey identifies a BiCursor node for dedup purposes under
// OutputCursors, where there's no single text position to key on the way
// OutputPositions does: depth plus the node's first occurrence (in SA
// order) is unique to the node, since distinct nodes at the same depth
// never share a first occurrence.
type cursorKey struct {
	depth int
	pos   int
}

func newSearchState(textLen int) *SearchState {
	return &SearchState{
		seen: sparse.NewSparseSet(conv.IntToUint32(textLen)),
		hits: make([]Hit, 0, 16),
	}
}

func (s *SearchState) reset() {
	s.seen.Clear()
	s.seenCursor = nil
	s.hits = s.hits[:0]
}

// searchStatePool pools SearchState instances keyed by the text length they
// were sized for, following the sync.Pool-per-engine pattern.
type searchStatePool struct {
	pool    sync.Pool
	textLen int
}

func newSearchStatePool(textLen int) *searchStatePool {
	p := &searchStatePool{textLen: textLen}
	p.pool = sync.Pool{
		New: func() any { return newSearchState(p.textLen) },
	}
	return p
}

func (p *searchStatePool) get() *SearchState {
	return p.pool.Get().(*SearchState)
}

func (p *searchStatePool) put(s *SearchState) {
	if s == nil {
		return
	}
	s.reset()
	p.pool.Put(s)
}
