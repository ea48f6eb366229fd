// Package index implements the unidirectional and bidirectional traversal
// structures over a compressed suffix array: the index wrappers, the
// cursors that walk their implicit suffix/affix trees, and the
// backward_search / bidirectional_search primitives that drive every
// extension.
package index

import (
	"github.com/coregx/fmindex/alphabet"
	"github.com/coregx/fmindex/csa"
)

// Uni wraps a single CSA and exposes the implicit suffix tree it encodes via
// Cursor. Depending on which text the CSA was built over, Uni plays one of
// two roles:
//
//   - The standalone unidirectional index: built over the *reverse* of the
//     external text, so that extend_right — a backward_search prepend in
//     the CSA's own orientation — corresponds to extending the external
//     query to the right.
//   - One half of a Bi index: Bi.Fwd wraps a CSA built directly over the
//     external text (extend_right there means "prepend in T", i.e. extend
//     the matched range to the left); Bi.Rev wraps a CSA built over the
//     reversed text, exactly like the standalone case.
//
// Both roles reuse the identical backward_search-driven Cursor; only the
// locate() position formula differs, which reversed captures.
type Uni struct {
	csa      csa.CSA
	alpha    *alphabet.Mapping
	text     []int // borrowed external-rank text, for query() reconstruction
	textLen  int   // |T|, the external text's length without any sentinel
	reversed bool  // true: CSA built over reverse(T); false: built over T directly
}

// NewUni builds a Uni index. text is the external-rank text this index's
// positions are reported against (not necessarily the text the CSA itself
// was built over — see reversed). The index does not take ownership of
// text; the caller must keep it alive for the index's lifetime.
func NewUni(c csa.CSA, alpha *alphabet.Mapping, text []int, reversed bool) *Uni {
	if len(text) == 0 {
		panic("index: cannot build a Uni index over an empty text")
	}
	return &Uni{csa: c, alpha: alpha, text: text, textLen: len(text), reversed: reversed}
}

// Size returns the number of suffixes in the underlying CSA (including the
// sentinel).
func (u *Uni) Size() int { return u.csa.Size() }

// Empty reports whether the underlying index is empty.
func (u *Uni) Empty() bool { return u.csa.Size() == 0 }

// Root returns a cursor at the root of the implicit suffix tree: the empty
// query, matching every suffix.
func (u *Uni) Root() Cursor {
	return Cursor{idx: u, lb: 0, rb: u.csa.Size() - 1, hasParent: false, lastChar: -1, depth: 0}
}

// locatePos converts an SA entry and the current query depth to an external
// text position.
func (u *Uni) locatePos(sa, depth int) int {
	if u.reversed {
		return u.textLen - depth - sa
	}
	return sa
}

// Cursor is a unidirectional cursor: a position in the implicit suffix tree
// of a Uni index.
type Cursor struct {
	idx                 *Uni
	lb, rb              int
	parentLB, parentRB  int
	hasParent           bool
	lastChar            int // compact code of the edge from parent to this node; -1 at the root
	depth               int
}

// Count returns the number of suffixes the current query matches.
func (c Cursor) Count() int { return c.rb - c.lb + 1 }

// Depth returns the number of characters in the current query.
func (c Cursor) Depth() int { return c.depth }

// Equal reports whether two cursors over the same index describe the same
// node: equal SA intervals and equal depth.
func (c Cursor) Equal(o Cursor) bool {
	return c.idx == o.idx && c.lb == o.lb && c.rb == o.rb && c.depth == o.depth
}

// LastChar returns the external symbol on the edge from this node's parent.
// Undefined at depth 0.
func (c Cursor) LastChar() int {
	if c.depth == 0 {
		panic("index: LastChar is undefined at the root")
	}
	return c.idx.alpha.ToExt(c.lastChar)
}

// ExtendRight extends the query by the smallest external symbol for which
// the extension succeeds. Reports whether any symbol worked; the cursor is
// unchanged on failure.
func (c *Cursor) ExtendRight() bool {
	sigma := c.idx.csa.Sigma()
	for code := 1; code < sigma; code++ {
		if c.extendCompact(code) {
			return true
		}
	}
	return false
}

// ExtendRightChar extends the query by the given external symbol.
func (c *Cursor) ExtendRightChar(extRank int) bool {
	code := c.idx.alpha.ToCompact(extRank)
	if code == 0 {
		return false
	}
	return c.extendCompact(code)
}

// ExtendRightSeq extends the query by every symbol in seq, in order. On any
// failure the cursor is rolled back to its state before the call.
func (c *Cursor) ExtendRightSeq(seq []int) bool {
	saved := *c
	for _, r := range seq {
		if !c.ExtendRightChar(r) {
			*c = saved
			return false
		}
	}
	return true
}

// extendCompact performs the actual backward_search step for a compact code
// and, on success, commits the new interval/parent/lastChar/depth.
func (c *Cursor) extendCompact(code int) bool {
	l, r, ok := backwardSearch(c.idx.csa, c.lb, c.rb, code)
	if !ok {
		return false
	}
	c.parentLB, c.parentRB = c.lb, c.rb
	c.hasParent = true
	c.lb, c.rb = l, r
	c.lastChar = code
	c.depth++
	return true
}

// CycleBack moves the cursor to the next lexicographically larger sibling
// edge from the same parent. Undefined (and asserted against) at depth 0.
func (c *Cursor) CycleBack() bool {
	if c.depth == 0 {
		panic("index: CycleBack is undefined at the root")
	}
	if !c.hasParent || c.parentLB > c.parentRB {
		panic("index: CycleBack called on a cursor with no valid parent interval")
	}
	sigma := c.idx.csa.Sigma()
	for code := c.lastChar + 1; code < sigma; code++ {
		l, r, ok := backwardSearch(c.idx.csa, c.parentLB, c.parentRB, code)
		if ok {
			c.lb, c.rb = l, r
			c.lastChar = code
			return true
		}
	}
	return false
}

// Query reconstructs the external-rank query the cursor currently
// represents, by reading depth symbols of the borrowed text starting at the
// text position of the cursor's first SA entry.
func (c Cursor) Query() []int {
	pos := c.idx.locatePos(c.idx.csa.SA(c.lb), c.depth)
	out := make([]int, c.depth)
	copy(out, c.idx.text[pos:pos+c.depth])
	return out
}

// Locate eagerly materializes every text position the current query
// matches.
func (c Cursor) Locate() []int {
	n := c.Count()
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = c.idx.locatePos(c.idx.csa.SA(c.lb+i), c.depth)
	}
	return out
}

// LocateIter is a cheap, pull-based deferred sequence over the same
// positions Locate() would eagerly collect.
type LocateIter struct {
	idx       *Uni
	lb, depth int
	i, n      int
}

// LazyLocate returns a LocateIter over the cursor's matches without
// materializing them.
func (c Cursor) LazyLocate() *LocateIter {
	return &LocateIter{idx: c.idx, lb: c.lb, depth: c.depth, i: 0, n: c.Count()}
}

// Next returns the next text position and true, or (0, false) once
// exhausted.
func (it *LocateIter) Next() (int, bool) {
	if it.i >= it.n {
		return 0, false
	}
	pos := it.idx.locatePos(it.idx.csa.SA(it.lb+it.i), it.depth)
	it.i++
	return pos, true
}

// Children returns, for every compact code other than the sentinel, the
// cursor reached by extending with that code; slot i holds the child for
// compact code i+1, which is external rank i only under an identity mapping.
// Under a reduced mapping the slots follow the dense compact numbering, and
// external ranks absent from the text get no slot. Codes with no matching
// edge get a root cursor of the index.
func (c Cursor) Children() []Cursor {
	sigma := c.idx.csa.Sigma()
	out := make([]Cursor, sigma-1)
	for code := 1; code < sigma; code++ {
		child := c
		if child.extendCompact(code) {
			out[code-1] = child
		} else {
			out[code-1] = c.idx.Root()
		}
	}
	return out
}
