package scheme

// Optimum returns a precomputed Scheme for the given error window — every
// match with at least minErrors and at most maxErrors edits — and true if one
// exists; callers should fall back to Trivial when it doesn't. Schemes are
// precomputed for 0 <= minErrors <= maxErrors <= 3, which covers the
// (0,0), (0,1), (1,1), (0,2) and (0,3) windows approximate callers actually
// ask for, plus the remaining windows in that range.
//
// The construction here is the pigeonhole scheme: split the query into
// maxErrors+1 blocks, and for every block s build one Search that visits s
// first under a zero-error bound, then expands outward (right to the last
// block, then left back to the first) under the full error budget. Since
// maxErrors errors spread across maxErrors+1 blocks must leave at least one
// block error-free, the union of these Searches is guaranteed to find every
// match — the same pigeonhole argument behind the classic "01*0"-style
// schemes, though without the extra per-step bound tightening those use for
// additional pruning. minErrors becomes the lower bound on the final step,
// so a search rejects any alignment that finishes under the window.
func Optimum(minErrors, maxErrors int) (Scheme, bool) {
	if minErrors < 0 || minErrors > maxErrors || maxErrors > 3 {
		return nil, false
	}
	return pigeonhole(minErrors, maxErrors), true
}

func pigeonhole(minErrors, maxErrors int) Scheme {
	k := maxErrors + 1
	sch := make(Scheme, k)
	for s := 0; s < k; s++ {
		pi := make([]int, k)
		pi[0] = s
		idx := 1
		for b := s + 1; b < k; b++ {
			pi[idx] = b
			idx++
		}
		for b := s - 1; b >= 0; b-- {
			pi[idx] = b
			idx++
		}
		l := make([]int, k)
		l[k-1] = minErrors
		u := make([]int, k)
		u[0] = 0
		for i := 1; i < k; i++ {
			u[i] = maxErrors
		}
		sch[s] = Search{Pi: pi, L: l, U: u}
	}
	return sch
}

// Trivial returns the single-Search fallback scheme: one pass over k blocks
// in order, with the full error budget available throughout and minErrors
// required by the end. It is the scheme-driver equivalent of package
// trivial's backtracking, used when no Optimum scheme is precomputed for the
// requested window.
func Trivial(blocks, minErrors, maxErrors int) Scheme {
	pi := make([]int, blocks)
	l := make([]int, blocks)
	l[blocks-1] = minErrors
	u := make([]int, blocks)
	for i := range pi {
		pi[i] = i
		u[i] = maxErrors
	}
	return Scheme{{Pi: pi, L: l, U: u}}
}
