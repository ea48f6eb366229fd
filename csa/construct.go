package csa

import "golang.org/x/exp/slices"

// memCSA is the in-memory CSA implementation. It is built once by
// ConstructIM and never mutated afterward.
type memCSA struct {
	size      int
	sigma     int
	c         []int
	comp2char []int
	char2comp []int
	sa        []int
	bwt       *waveletTree
}

// ConstructIM builds a CSA in memory from a compact-coded sequence (codes in
// [0, sigma), with code 0 reserved for a sentinel that must appear exactly
// once, at the end of seq). comp2char, char2comp and c come from the
// alphabet.Mapping used to produce seq, so the CSA's translation and
// cumulative tables stay consistent with it.
//
// The suffix array is built by directly sorting suffix start offsets
// (slices.SortFunc over a suffix comparator, rather than a linear SA-IS
// construction) — adequate for small-to-moderate texts, and the compressed
// construction itself is not this module's concern.
func ConstructIM(seq []int, sigma int, comp2char, char2comp []int, c []int) CSA {
	n := len(seq)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	slices.SortFunc(sa, func(i, j int) int {
		return cmpSuffix(seq, i, j)
	})

	bwt := make([]int, n)
	for rank, start := range sa {
		bwt[rank] = seq[(start-1+n)%n]
	}

	return &memCSA{
		size:      n,
		sigma:     sigma,
		c:         append([]int(nil), c...),
		comp2char: append([]int(nil), comp2char...),
		char2comp: append([]int(nil), char2comp...),
		sa:        sa,
		bwt:       newWaveletTree(bwt, sigma),
	}
}

// cmpSuffix compares the suffixes of seq starting at i and j. seq's
// sentinel (code 0) occurs exactly once, at the final position, and is
// strictly smaller than every other code, so this terminates without
// needing an explicit tie-break: the shorter suffix always reaches the
// sentinel at a position where the longer suffix has a real, larger code.
func cmpSuffix(seq []int, i, j int) int {
	n := len(seq)
	for k := 0; ; k++ {
		pi, pj := i+k, j+k
		if pi >= n || pj >= n {
			// Unreachable for i != j: the unique sentinel at n-1 forces a
			// difference before either suffix runs out. Kept as a safe,
			// consistent fallback rather than an out-of-bounds read.
			return j - i
		}
		a, b := seq[pi], seq[pj]
		if a != b {
			return a - b
		}
	}
}

func (m *memCSA) Size() int  { return m.size }
func (m *memCSA) Sigma() int { return m.sigma }

func (m *memCSA) C(c int) int {
	return m.c[c]
}

func (m *memCSA) Comp2Char(c int) int {
	return m.comp2char[c]
}

func (m *memCSA) Char2Comp(extRank int) int {
	if extRank < 0 || extRank >= len(m.char2comp) {
		return 0
	}
	return m.char2comp[extRank]
}

func (m *memCSA) SA(i int) int {
	return m.sa[i]
}

func (m *memCSA) BWTRank(i, c int) int {
	return m.bwt.Rank(c, i)
}

func (m *memCSA) WaveletLexCount(l, r, c int) (rankC, less, greater int) {
	return m.bwt.LexCount(l, r, c)
}
