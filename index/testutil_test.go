package index

import (
	"github.com/coregx/fmindex/alphabet"
	"github.com/coregx/fmindex/csa"
)

// acgt encodes a string over {A,C,G,T} into external ranks 0..3.
func acgt(s string) []int {
	out := make([]int, len(s))
	for i, c := range s {
		switch c {
		case 'A':
			out[i] = 0
		case 'C':
			out[i] = 1
		case 'G':
			out[i] = 2
		case 'T':
			out[i] = 3
		default:
			panic("acgt: unexpected symbol " + string(c))
		}
	}
	return out
}

// decodeACGT is acgt's inverse, for turning a reconstructed Query() back
// into a readable string in test failure messages.
func decodeACGT(ranks []int) string {
	out := make([]byte, len(ranks))
	for i, r := range ranks {
		out[i] = "ACGT"[r]
	}
	return string(out)
}

// buildUni builds a standalone unidirectional index over the reverse of
// text.
func buildUni(text []int) *Uni {
	reversed := make([]int, len(text))
	for i, r := range text {
		reversed[len(text)-1-i] = r
	}
	counts := make([]int, 4)
	for _, r := range text {
		counts[r]++
	}
	m := alphabet.NewIdentity(counts)
	c := csa.BuildFromText(reversed, m)
	return NewUni(c, m, text, true)
}

// buildBi builds a bidirectional index over text, exactly as fmindex.Compile
// does for a fully-populated small alphabet.
func buildBi(text []int) *Bi {
	reversed := make([]int, len(text))
	for i, r := range text {
		reversed[len(text)-1-i] = r
	}
	counts := make([]int, 4)
	for _, r := range text {
		counts[r]++
	}
	m := alphabet.NewIdentity(counts)
	csaFwd := csa.BuildFromText(text, m)
	csaRev := csa.BuildFromText(reversed, m)
	return NewBi(csaFwd, csaRev, m, text)
}

// bruteForceLocate returns every position in text at which query occurs, as
// a multiset (duplicates can't happen since query doesn't overlap itself
// trivially, but returning all matches including overlapping ones matters).
func bruteForceLocate(text, query []int) []int {
	var out []int
	if len(query) == 0 || len(query) > len(text) {
		return out
	}
	for i := 0; i+len(query) <= len(text); i++ {
		match := true
		for j := range query {
			if text[i+j] != query[j] {
				match = false
				break
			}
		}
		if match {
			out = append(out, i)
		}
	}
	return out
}
