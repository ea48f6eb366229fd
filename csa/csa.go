// Package csa provides the compressed-suffix-array dependency the index
// traversal primitives are built against, along with an in-memory
// implementation of it.
//
// The traversal machinery treats the CSA as an external collaborator:
// construction of a production rank-select structure (wavelet tree, RRR
// bitvectors, sampled suffix arrays) is not this module's concern. The CSA
// interface below is that collaborator's contract; memCSA is a
// correctness-focused in-memory implementation of it, with dense prefix
// counts standing in for the space-optimized representation a production
// provider would use.
package csa

// CSA is the interface the index-traversal primitives require from any
// compressed-suffix-array provider.
type CSA interface {
	// Size returns the indexed sequence's length, including its sentinel.
	Size() int

	// Sigma returns the alphabet size, including the sentinel code.
	Sigma() int

	// C returns the cumulative occurrence count for compact code c: the
	// number of symbols with a strictly smaller compact code. C(Sigma())
	// equals Size().
	C(c int) int

	// Comp2Char translates a compact code to its external rank (-1 for the
	// sentinel).
	Comp2Char(c int) int

	// Char2Comp translates an external rank to its compact code (0 if the
	// rank never occurs under a reduced alphabet strategy).
	Char2Comp(extRank int) int

	// SA returns the suffix array entry at position i: the starting offset,
	// within the indexed sequence, of the suffix ranked i.
	SA(i int) int

	// BWTRank returns the number of occurrences of compact code c in
	// BWT[0:i).
	BWTRank(i, c int) int

	// WaveletLexCount returns, for the half-open BWT range [l, r): the
	// count of c, the count of codes strictly less than c, and the count of
	// codes strictly greater than c.
	WaveletLexCount(l, r, c int) (rankC, less, greater int)
}
