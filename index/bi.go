package index

import (
	"github.com/coregx/fmindex/alphabet"
	"github.com/coregx/fmindex/csa"
)

// dirNone, dirRight and dirLeft tag which direction a BiCursor last
// extended in, so cycling and projection can validate against it.
const (
	dirNone = iota
	dirRight
	dirLeft
)

// Bi is the bidirectional index: it owns two unidirectional indices that
// together encode an implicit affix tree.
//
//   - Fwd wraps a CSA built directly over the external text T. Its
//     backward_search prepend corresponds to extending the matched range
//     to the *left* of the external query, so it is the primary CSA for
//     extend_left / cycle_front.
//   - Rev wraps a CSA built over the reverse of T (exactly like the
//     standalone Uni index, for the identical reason: prepending in
//     reversed-text space is appending in T). It is the primary CSA for
//     extend_right / cycle_back.
type Bi struct {
	Fwd   *Uni
	Rev   *Uni
	alpha *alphabet.Mapping
}

// NewBi builds a bidirectional index from a CSA over T and a CSA over
// reverse(T), sharing one alphabet mapping (T and reverse(T) have identical
// character histograms, so one mapping — and one C table — serves both).
func NewBi(csaFwd, csaRev csa.CSA, alpha *alphabet.Mapping, text []int) *Bi {
	reversed := make([]int, len(text))
	for i, r := range text {
		reversed[len(text)-1-i] = r
	}
	return &Bi{
		Fwd:   NewUni(csaFwd, alpha, text, false),
		Rev:   NewUni(csaRev, alpha, reversed, true),
		alpha: alpha,
	}
}

// Sigma returns sigma', the number of compact codes in use including the
// sentinel (shared by both sides: T and reverse(T) have the same alphabet).
func (b *Bi) Sigma() int { return b.Fwd.csa.Sigma() }

// Alphabet returns the mapping shared by both sides of the index, so callers
// can enumerate external symbols without reaching into package-private state.
func (b *Bi) Alphabet() *alphabet.Mapping { return b.alpha }

// Root returns a bidirectional cursor at the root of the implicit affix
// tree: the empty query, matching every suffix on both sides.
func (b *Bi) Root() BiCursor {
	return BiCursor{
		idx:      b,
		fwdLB:    0, fwdRB: b.Fwd.Size() - 1,
		revLB: 0, revRB: b.Rev.Size() - 1,
		lastChar: -1, lastDir: dirNone,
	}
}

// BiCursor is a bidirectional cursor: a position in the implicit affix tree
// of a Bi index.
type BiCursor struct {
	idx                *Bi
	fwdLB, fwdRB       int
	revLB, revRB       int
	parentLB, parentRB int
	hasParent          bool
	lastChar           int // compact code of the last extension's edge
	lastDir            int
	depth              int
}

// Count returns the number of suffixes (equal on both sides by invariant)
// the current query matches.
func (c BiCursor) Count() int { return c.fwdRB - c.fwdLB + 1 }

// Depth returns the number of characters in the current query.
func (c BiCursor) Depth() int { return c.depth }

// Equal reports whether two cursors over the same index describe the same
// node.
func (c BiCursor) Equal(o BiCursor) bool {
	return c.idx == o.idx && c.fwdLB == o.fwdLB && c.fwdRB == o.fwdRB &&
		c.revLB == o.revLB && c.revRB == o.revRB && c.depth == o.depth
}

// LastChar returns the external symbol on the edge from this node's parent.
// Undefined at depth 0.
func (c BiCursor) LastChar() int {
	if c.depth == 0 {
		panic("index: LastChar is undefined at the root")
	}
	return c.idx.alpha.ToExt(c.lastChar)
}

// ExtendRight extends the query by the smallest external symbol for which
// the extension succeeds.
func (c *BiCursor) ExtendRight() bool {
	sigma := c.idx.Rev.csa.Sigma()
	for code := 1; code < sigma; code++ {
		if c.extendRightCompact(code) {
			return true
		}
	}
	return false
}

// ExtendRightChar extends the query to the right by the given external
// symbol.
func (c *BiCursor) ExtendRightChar(extRank int) bool {
	code := c.idx.alpha.ToCompact(extRank)
	if code == 0 {
		return false
	}
	return c.extendRightCompact(code)
}

// ExtendRightSeq extends the query to the right by every symbol in seq, in
// order, rolling back on any failure.
func (c *BiCursor) ExtendRightSeq(seq []int) bool {
	saved := *c
	for _, r := range seq {
		if !c.ExtendRightChar(r) {
			*c = saved
			return false
		}
	}
	return true
}

// ExtendLeft extends the query by the smallest external symbol for which
// the extension succeeds, on the left.
func (c *BiCursor) ExtendLeft() bool {
	sigma := c.idx.Fwd.csa.Sigma()
	for code := 1; code < sigma; code++ {
		if c.extendLeftCompact(code) {
			return true
		}
	}
	return false
}

// ExtendLeftChar extends the query to the left by the given external
// symbol.
func (c *BiCursor) ExtendLeftChar(extRank int) bool {
	code := c.idx.alpha.ToCompact(extRank)
	if code == 0 {
		return false
	}
	return c.extendLeftCompact(code)
}

// ExtendLeftSeq extends the query to the left by every symbol in seq, in
// order, rolling back on any failure.
func (c *BiCursor) ExtendLeftSeq(seq []int) bool {
	saved := *c
	for _, r := range seq {
		if !c.ExtendLeftChar(r) {
			*c = saved
			return false
		}
	}
	return true
}

func (c *BiCursor) extendRightCompact(code int) bool {
	lRevP, rRevP, lFwdP, rFwdP, ok := bidirectionalSearch(
		c.idx.Rev.csa, c.revLB, c.revRB, c.fwdLB, c.fwdRB, code)
	if !ok {
		return false
	}
	c.parentLB, c.parentRB = c.revLB, c.revRB
	c.hasParent = true
	c.revLB, c.revRB = lRevP, rRevP
	c.fwdLB, c.fwdRB = lFwdP, rFwdP
	c.lastChar = code
	c.lastDir = dirRight
	c.depth++
	return true
}

func (c *BiCursor) extendLeftCompact(code int) bool {
	lFwdP, rFwdP, lRevP, rRevP, ok := bidirectionalSearch(
		c.idx.Fwd.csa, c.fwdLB, c.fwdRB, c.revLB, c.revRB, code)
	if !ok {
		return false
	}
	c.parentLB, c.parentRB = c.fwdLB, c.fwdRB
	c.hasParent = true
	c.fwdLB, c.fwdRB = lFwdP, rFwdP
	c.revLB, c.revRB = lRevP, rRevP
	c.lastChar = code
	c.lastDir = dirLeft
	c.depth++
	return true
}

// CycleBack moves the cursor to the next lexicographically larger sibling
// edge from the same parent, on the right. Defined only if the last
// extension was to the right.
func (c *BiCursor) CycleBack() bool {
	c.assertCycle(dirRight, "CycleBack")
	sigma := c.idx.Rev.csa.Sigma()
	for code := c.lastChar + 1; code < sigma; code++ {
		lRevP, rRevP, lFwdP, rFwdP, ok := bidirectionalCycle(
			c.idx.Rev.csa, c.parentLB, c.parentRB, c.fwdLB, c.fwdRB, code)
		if ok {
			c.revLB, c.revRB = lRevP, rRevP
			c.fwdLB, c.fwdRB = lFwdP, rFwdP
			c.lastChar = code
			return true
		}
	}
	return false
}

// CycleFront moves the cursor to the next lexicographically larger sibling
// edge from the same parent, on the left. Defined only if the last
// extension was to the left.
func (c *BiCursor) CycleFront() bool {
	c.assertCycle(dirLeft, "CycleFront")
	sigma := c.idx.Fwd.csa.Sigma()
	for code := c.lastChar + 1; code < sigma; code++ {
		lFwdP, rFwdP, lRevP, rRevP, ok := bidirectionalCycle(
			c.idx.Fwd.csa, c.parentLB, c.parentRB, c.revLB, c.revRB, code)
		if ok {
			c.fwdLB, c.fwdRB = lFwdP, rFwdP
			c.revLB, c.revRB = lRevP, rRevP
			c.lastChar = code
			return true
		}
	}
	return false
}

func (c *BiCursor) assertCycle(want int, op string) {
	if c.depth == 0 {
		panic("index: " + op + " is undefined at the root")
	}
	if !c.hasParent || c.lastDir != want {
		panic("index: " + op + " called when the last extension was not in this direction")
	}
}

// Query reconstructs the external-rank query the cursor currently
// represents. The Fwd side's CSA is built directly over the text, so its
// first SA entry is a text position where the query occurs, and depth
// symbols of the borrowed text from there spell the query out.
func (c BiCursor) Query() []int {
	pos := c.idx.Fwd.csa.SA(c.fwdLB)
	out := make([]int, c.depth)
	copy(out, c.idx.Fwd.text[pos:pos+c.depth])
	return out
}

// Locate eagerly materializes every text position the current query
// matches, read off the Rev side (built in the reversed-text convention
// that makes locate a direct formula).
func (c BiCursor) Locate() []int {
	n := c.Count()
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = c.idx.Rev.locatePos(c.idx.Rev.csa.SA(c.revLB+i), c.depth)
	}
	return out
}

// LazyLocate returns a deferred sequence over the same positions Locate()
// would eagerly collect.
func (c BiCursor) LazyLocate() *LocateIter {
	return &LocateIter{idx: c.idx.Rev, lb: c.revLB, depth: c.depth, i: 0, n: c.Count()}
}

// ToFwdCursor projects the bidirectional cursor onto a unidirectional
// cursor over the Fwd (T) side. If the last extension was to the right —
// the opposite direction from Fwd's associated extend_left — the projected
// cursor's parent interval is marked invalid, so a later CycleBack on it
// panics rather than silently misbehaving.
func (c BiCursor) ToFwdCursor() Cursor {
	out := Cursor{idx: c.idx.Fwd, lb: c.fwdLB, rb: c.fwdRB, lastChar: c.lastChar, depth: c.depth}
	if c.depth > 0 && c.lastDir == dirLeft {
		out.parentLB, out.parentRB = c.parentLB, c.parentRB
		out.hasParent = true
	} else if c.depth > 0 {
		out.parentLB, out.parentRB = 1, 0 // invalid sentinel range
		out.hasParent = true
	}
	return out
}

// ToRevCursor projects the bidirectional cursor onto a unidirectional
// cursor over the Rev (T^R) side, with the symmetric invalidation rule.
func (c BiCursor) ToRevCursor() Cursor {
	out := Cursor{idx: c.idx.Rev, lb: c.revLB, rb: c.revRB, lastChar: c.lastChar, depth: c.depth}
	if c.depth > 0 && c.lastDir == dirRight {
		out.parentLB, out.parentRB = c.parentLB, c.parentRB
		out.hasParent = true
	} else if c.depth > 0 {
		out.parentLB, out.parentRB = 1, 0 // invalid sentinel range
		out.hasParent = true
	}
	return out
}
