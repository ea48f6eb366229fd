package csa

// waveletTree is the rank structure backing the BWT column of an in-memory
// CSA. It exposes a wavelet tree's Rank/Access shape but is implemented as
// dense per-symbol prefix counts rather than a bitvector hierarchy — only
// the Rank / WaveletLexCount contract the traversal primitives call
// matters here.
type waveletTree struct {
	seq    []int
	prefix [][]int // prefix[c][i] = count of compact code c in seq[0:i]
	sigma  int
}

// newWaveletTree builds a wavelet tree over a sequence of compact codes in
// [0, sigma).
func newWaveletTree(seq []int, sigma int) *waveletTree {
	prefix := make([][]int, sigma)
	for c := 0; c < sigma; c++ {
		prefix[c] = make([]int, len(seq)+1)
	}
	for i, s := range seq {
		for c := 0; c < sigma; c++ {
			prefix[c][i+1] = prefix[c][i]
		}
		prefix[s][i+1]++
	}
	return &waveletTree{seq: seq, prefix: prefix, sigma: sigma}
}

// Access returns the compact code at position i.
func (w *waveletTree) Access(i int) int {
	return w.seq[i]
}

// Rank returns the number of occurrences of compact code c in seq[0:i).
func (w *waveletTree) Rank(c, i int) int {
	return w.prefix[c][i]
}

// LexCount returns, for the half-open range [l, r): the count of c, the
// count of codes strictly less than c, and the count of codes strictly
// greater than c.
func (w *waveletTree) LexCount(l, r, c int) (rankC, less, greater int) {
	rankC = w.prefix[c][r] - w.prefix[c][l]
	total := r - l
	lessCount := 0
	for cc := 0; cc < c; cc++ {
		lessCount += w.prefix[cc][r] - w.prefix[cc][l]
	}
	greater = total - rankC - lessCount
	return rankC, lessCount, greater
}

// reconstruct rebuilds the full sequence of compact codes the tree was
// built from, used only for debugging/testing.
func (w *waveletTree) reconstruct() []int {
	out := make([]int, len(w.seq))
	copy(out, w.seq)
	return out
}
