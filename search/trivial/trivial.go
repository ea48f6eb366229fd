// Package trivial implements the unoptimized recursive backtracking
// approximate-search driver: a direct translation of the edit-distance
// recurrence (exact extension, substitution, insertion, deletion) onto a
// bidirectional index, used as the semantics reference the search-scheme
// driver in package scheme must reproduce exactly, and as the driver
// meta.Engine runs when schemes are disabled or the per-kind budgets differ.
package trivial

import "github.com/coregx/fmindex/index"

// Budget bounds the edits a search may spend, mirroring the max_error
// option group on the facade. Total caps the sum of substitutions,
// insertions and deletions; the per-kind fields additionally cap each kind
// on its own, and a kind with its field at 0 is disabled outright
// regardless of Total.
type Budget struct {
	Total        int
	Substitution int
	Insertion    int
	Deletion     int
}

// Exhausted reports whether no further edits of any kind can be spent.
func (b Budget) Exhausted() bool { return b.Total <= 0 }

// SpendSub, SpendIns and SpendDel return the budget left after charging one
// edit of the named kind, and whether that kind was available to charge —
// shared by this package's own backtracker and by package scheme, so both
// drivers enforce identical per-kind exhaustion.
func (b Budget) SpendSub() (Budget, bool) {
	if b.Total <= 0 || b.Substitution <= 0 {
		return b, false
	}
	b.Total--
	b.Substitution--
	return b, true
}

func (b Budget) SpendIns() (Budget, bool) {
	if b.Total <= 0 || b.Insertion <= 0 {
		return b, false
	}
	b.Total--
	b.Insertion--
	return b, true
}

func (b Budget) SpendDel() (Budget, bool) {
	if b.Total <= 0 || b.Deletion <= 0 {
		return b, false
	}
	b.Total--
	b.Deletion--
	return b, true
}

// Delegate is invoked once per match found at the end of a root-to-node walk
// that consumed the whole query within budget, along with the number of
// edits actually spent getting there. Returning true tells the driver to
// stop searching immediately.
type Delegate func(c index.BiCursor, errorsSpent int) bool

// Search runs the trivial backtracking driver over idx's root, matching
// query (external symbol ranks) within errs edits, right-extending the
// cursor one query position — or one deleted text symbol — at a time. It
// reports whether the delegate aborted the search early.
func Search(idx *index.Bi, query []int, errs Budget, hit Delegate) bool {
	return step(idx, idx.Root(), query, 0, errs, 0, hit)
}

// step advances the cursor by one edit operation and recurses. q is the next
// unconsumed position in query; spent is the number of edits charged so far.
func step(idx *index.Bi, c index.BiCursor, query []int, q int, errs Budget, spent int, hit Delegate) bool {
	if q == len(query) {
		return hit(c, spent)
	}

	// Exact extension: always tried first, free of charge.
	exact := c
	if exact.ExtendRightChar(query[q]) {
		if step(idx, exact, query, q+1, errs, spent, hit) {
			return true
		}
	}

	if errs.Exhausted() {
		return false
	}

	sigma := idx.Sigma()
	alpha := idx.Alphabet()

	// Substitution: consume one query position under a different symbol.
	if subErrs, ok := errs.SpendSub(); ok {
		for code := 1; code < sigma; code++ {
			extRank := alpha.ToExt(code)
			if extRank == query[q] {
				continue
			}
			cand := c
			if cand.ExtendRightChar(extRank) {
				if step(idx, cand, query, q+1, subErrs, spent+1, hit) {
					return true
				}
			}
		}
	}

	// Insertion: the query holds a symbol absent from the text; consume the
	// query position without extending the cursor.
	if insErrs, ok := errs.SpendIns(); ok {
		if step(idx, c, query, q+1, insErrs, spent+1, hit) {
			return true
		}
	}

	// Deletion: the text holds a symbol absent from the query; extend the
	// cursor without consuming a query position.
	if delErrs, ok := errs.SpendDel(); ok {
		for code := 1; code < sigma; code++ {
			extRank := alpha.ToExt(code)
			cand := c
			if cand.ExtendRightChar(extRank) {
				if step(idx, cand, query, q, delErrs, spent+1, hit) {
					return true
				}
			}
		}
	}

	return false
}
