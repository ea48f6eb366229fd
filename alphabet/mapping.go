// Package alphabet translates between external symbol ranks and the compact
// character codes a compressed suffix array uses internally.
//
// Two strategies are provided: Identity, a fast-path translation used when
// every byte code in the external alphabet is actually present in the text,
// and Reduced, a dense renumbering built from the symbols the text actually
// contains. Both are served by the one Mapping type, so the index cursors
// translate a symbol with a single ToCompact call before handing the compact
// code to backward_search or bidirectional_search, which work on compact
// codes only.
package alphabet

import "fmt"

// Mapping translates between external symbol ranks (0-based, as reported by
// the caller's text) and compact character codes (0-based, with code 0
// reserved for the sentinel appended to every indexed text).
type Mapping struct {
	reduced bool

	// toExt maps compact code -> external rank. toExt[0] is unused (sentinel).
	toExt []int

	// toCompact maps external rank -> compact code. Under the reduced
	// strategy, ranks absent from the text map to 0 (the sentinel code),
	// which callers must treat as a failed extension.
	toCompact []int

	// c holds the cumulative occurrence table: c[k] = number of symbols in
	// the indexed text (sentinel included) with compact code strictly less
	// than k. len(c) == Sigma()+1.
	c []int
}

// NewIdentity builds an Identity mapping over counts, where counts[r] is the
// number of occurrences of external rank r in the text (sentinel excluded).
// Identity requires that every rank is meaningful input (code = rank + 1);
// unused ranks still get a compact code but will simply count zero.
func NewIdentity(counts []int) *Mapping {
	sigma := len(counts) + 1
	m := &Mapping{
		reduced:   false,
		toExt:     make([]int, sigma),
		toCompact: make([]int, len(counts)),
		c:         make([]int, sigma+1),
	}
	m.toExt[0] = -1
	for r := range counts {
		m.toExt[r+1] = r
		m.toCompact[r] = r + 1
	}
	m.buildCumulative(counts)
	return m
}

// NewReduced builds a dense renumbering of only the ranks that actually
// occur in the text (counts[r] > 0), assigning compact codes in ascending
// rank order so the compact order still matches the external lexicographic
// order the CSA relies on.
func NewReduced(counts []int) *Mapping {
	var present []int
	for r, n := range counts {
		if n > 0 {
			present = append(present, r)
		}
	}
	sigma := len(present) + 1
	m := &Mapping{
		reduced:   true,
		toExt:     make([]int, sigma),
		toCompact: make([]int, len(counts)),
		c:         make([]int, sigma+1),
	}
	m.toExt[0] = -1
	reducedCounts := make([]int, len(present))
	for i, r := range present {
		m.toExt[i+1] = r
		m.toCompact[r] = i + 1
		reducedCounts[i] = counts[r]
	}
	m.buildCumulative(reducedCounts)
	return m
}

// buildCumulative fills c[] given per-real-symbol counts in compact order
// (codes 1..sigma-1); the sentinel (code 0) always occurs exactly once.
func (m *Mapping) buildCumulative(countsByCompactOrder []int) {
	m.c[0] = 0
	m.c[1] = 1 // one sentinel
	for i, n := range countsByCompactOrder {
		m.c[i+2] = m.c[i+1] + n
	}
}

// Sigma returns sigma', the number of compact codes in use including the
// sentinel.
func (m *Mapping) Sigma() int {
	return len(m.toExt)
}

// IsReduced reports whether this mapping uses the dense renumbering
// strategy rather than the identity fast path.
func (m *Mapping) IsReduced() bool {
	return m.reduced
}

// ToCompact translates an external rank to its compact code. Under the
// reduced strategy, a rank that never occurs in the indexed text returns 0 —
// the sentinel code — which callers must treat as "this extension fails".
func (m *Mapping) ToCompact(extRank int) int {
	if extRank < 0 || extRank >= len(m.toCompact) {
		return 0
	}
	return m.toCompact[extRank]
}

// ToExt translates a compact code back to its external rank. The sentinel
// code (0) has no external rank and returns -1.
func (m *Mapping) ToExt(compact int) int {
	if compact < 0 || compact >= len(m.toExt) {
		return -1
	}
	return m.toExt[compact]
}

// C returns the cumulative occurrence count: the number of symbols in the
// indexed text with compact code strictly less than c. C(Sigma()) equals the
// size of the indexed text (including its sentinel).
func (m *Mapping) C(c int) int {
	if c < 0 || c >= len(m.c) {
		panic(fmt.Sprintf("alphabet: C(%d) out of range [0,%d]", c, len(m.c)-1))
	}
	return m.c[c]
}
