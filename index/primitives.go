package index

import "github.com/coregx/fmindex/csa"

// backwardSearch prepends one compact code to a matched suffix-array
// interval: given the interval [l, r] for some matched string ω, returns the
// interval for c·ω, or ok=false if that extension doesn't occur.
func backwardSearch(c csa.CSA, l, r, compact int) (lp, rp int, ok bool) {
	cBegin := c.C(compact)
	if l == 0 && r == c.Size()-1 {
		lp = cBegin
		rp = c.C(compact+1) - 1
	} else {
		lp = cBegin + c.BWTRank(l, compact)
		rp = cBegin + c.BWTRank(r+1, compact) - 1
	}
	if rp < lp {
		return 0, 0, false
	}
	return lp, rp, true
}

// bidirectionalSearch extends a matched pair of intervals by one compact
// code: given matched intervals for ω on the primary CSA's side and the
// mirror side, returns the matched intervals for c·ω on the primary side and
// ω·c on the mirror side.
func bidirectionalSearch(primary csa.CSA, lPrim, rPrim, lMirr, rMirr, compact int) (lPrimP, rPrimP, lMirrP, rMirrP int, ok bool) {
	_, s, b := primary.WaveletLexCount(lPrim, rPrim+1, compact)
	rankL := primary.BWTRank(lPrim, compact)
	rankR := (rPrim - lPrim - s - b) + rankL
	cBegin := primary.C(compact)

	lPrimP = cBegin + rankL
	rPrimP = cBegin + rankR
	lMirrP = lMirr + s
	rMirrP = rMirr - b

	if rPrimP < lPrimP {
		return 0, 0, 0, 0, false
	}
	return lPrimP, rPrimP, lMirrP, rMirrP, true
}

// bidirectionalCycle is the variant used when cycling to the next
// lexicographically larger sibling edge from the same parent interval. The
// primary-side update is identical to bidirectionalSearch; the mirror
// interval is derived differently — it sits immediately to the right of the
// previous mirror interval rather than inside it, so repeated cycling
// enumerates mirror sub-ranges left to right in step with the primary side's
// ascending compact-code order. The cursor tests exercise this placement
// through cycle_back / cycle_front followed by query reconstruction.
func bidirectionalCycle(primary csa.CSA, lPrim, rPrim, lMirr, rMirr, compact int) (lPrimP, rPrimP, lMirrP, rMirrP int, ok bool) {
	_, s, b := primary.WaveletLexCount(lPrim, rPrim+1, compact)
	rankL := primary.BWTRank(lPrim, compact)
	rankR := (rPrim - lPrim - s - b) + rankL
	cBegin := primary.C(compact)

	lPrimP = cBegin + rankL
	rPrimP = cBegin + rankR
	if rPrimP < lPrimP {
		return 0, 0, 0, 0, false
	}

	lMirrP = rMirr + 1
	rMirrP = rMirr + 1 + (rankR - rankL)
	return lPrimP, rPrimP, lMirrP, rMirrP, true
}
