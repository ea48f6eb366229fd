package csa

import "github.com/coregx/fmindex/alphabet"

// BuildFromText maps extText (external symbol ranks, sentinel-free) through
// mapping, appends the sentinel, and constructs an in-memory CSA over the
// result. It is the construct_im(text, 0) entry point callers actually use;
// ConstructIM is the lower-level primitive it's built from.
func BuildFromText(extText []int, mapping *alphabet.Mapping) CSA {
	n := len(extText)
	seq := make([]int, n+1)
	for i, r := range extText {
		seq[i] = mapping.ToCompact(r)
	}
	seq[n] = 0 // sentinel

	sigma := mapping.Sigma()
	comp2char := make([]int, sigma)
	c := make([]int, sigma+1)
	for code := 0; code < sigma; code++ {
		comp2char[code] = mapping.ToExt(code)
		c[code] = mapping.C(code)
	}
	c[sigma] = mapping.C(sigma)

	maxExt := 0
	for _, r := range extText {
		if r+1 > maxExt {
			maxExt = r + 1
		}
	}
	char2comp := make([]int, maxExt)
	for r := 0; r < maxExt; r++ {
		char2comp[r] = mapping.ToCompact(r)
	}

	return ConstructIM(seq, sigma, comp2char, char2comp, c)
}
