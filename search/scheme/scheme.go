// Package scheme implements the search-scheme driver: a query is split into
// contiguous blocks, and each block is searched in an order and under a
// per-block error budget prescribed by a Search, so that exact stretches of
// the query prune the traversal far more aggressively than the trivial
// driver in package trivial ever can. Package trivial remains the semantics
// reference both the driver here and the precomputed schemes in optimum.go
// are checked against.
package scheme

import (
	"github.com/coregx/fmindex/index"
	"github.com/coregx/fmindex/search/trivial"
)

// Search is one entry of a Scheme: a permutation Pi of block indices giving
// the order blocks are visited in, and parallel L/U arrays bounding the
// cumulative edits spent by the time each step of Pi finishes (the
// (π, L, U) triple).
type Search struct {
	Pi []int
	L  []int
	U  []int
}

// Scheme is a set of Searches whose union must cover every way the allowed
// edits can be distributed across the query's blocks.
type Scheme []Search

// Delegate is invoked once per match found, with the number of edits spent;
// returning true aborts the search early, exactly like trivial.Delegate.
type Delegate func(c index.BiCursor, errorsSpent int) bool

// partition splits query into exactly k contiguous, near-equal blocks. The
// first len(query)%k blocks get one extra character, matching how the
// literature's search schemes balance block sizes.
func partition(query []int, k int) [][]int {
	blocks := make([][]int, k)
	base := len(query) / k
	extra := len(query) % k
	pos := 0
	for i := 0; i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		blocks[i] = query[pos : pos+size]
		pos += size
	}
	return blocks
}

// Run runs every Search in sch against query under budget (the same
// {total, substitution, insertion, deletion} split package trivial
// enforces), and reports whether the delegate aborted the search
// early. All Searches in a Scheme must share the same block count; Run
// panics if they don't, since mixing block counts isn't meaningful for one
// query.
func Run(idx *index.Bi, sch Scheme, query []int, budget trivial.Budget, hit Delegate) bool {
	if len(sch) == 0 {
		return false
	}
	k := len(sch[0].Pi)
	blocks := partition(query, k)
	for _, srch := range sch {
		if len(srch.Pi) != k {
			panic("scheme: all Searches in a Scheme must partition the query into the same number of blocks")
		}
		if runSearch(idx, blocks, srch, budget, hit) {
			return true
		}
	}
	return false
}

// runSearch walks the blocks in srch.Pi order, maintaining the contiguous
// range of block indices already covered so each step's direction (extend
// right to grow the covered range's high end, extend left to grow its low
// end) is determined by the requested block order.
func runSearch(idx *index.Bi, blocks [][]int, srch Search, budget trivial.Budget, hit Delegate) bool {
	return walkStep(idx, idx.Root(), blocks, srch, 0, -1, -1, 0, budget, hit)
}

// walkStep begins block step i of srch.Pi. lo/hi is the contiguous block
// range already matched (both -1 before the first block).
func walkStep(idx *index.Bi, c index.BiCursor, blocks [][]int, srch Search, i, lo, hi, errors int, budget trivial.Budget, hit Delegate) bool {
	if i == len(srch.Pi) {
		return hit(c, errors)
	}
	blockIdx := srch.Pi[i]
	var dir int
	switch {
	case lo == -1 && hi == -1:
		dir = 1
	case blockIdx == hi+1:
		dir = 1
	case blockIdx == lo-1:
		dir = -1
	default:
		panic("scheme: Pi must extend the covered block range by exactly one block at each step")
	}
	return walkBlock(idx, c, blocks[blockIdx], 0, dir, errors, srch.U[i], budget, func(next index.BiCursor, finalErrors int, finalBudget trivial.Budget) bool {
		if finalErrors < srch.L[i] {
			return false
		}
		newLo, newHi := lo, hi
		if dir == 1 {
			newHi = blockIdx
			if newLo == -1 {
				newLo = blockIdx
			}
		} else {
			newLo = blockIdx
		}
		return walkStep(idx, next, blocks, srch, i+1, newLo, newHi, finalErrors, finalBudget, hit)
	})
}

// walkBlock backtracks through one block's characters in the given
// direction (1 = left to right via ExtendRight, -1 = right to left via
// ExtendLeft, so the block's content always ends up adjacent to what's
// already matched in the correct reading order), pruning any path whose
// error count exceeds upper or whose edit kind is out of budget. done is
// called once the whole block has been consumed.
func walkBlock(idx *index.Bi, c index.BiCursor, block []int, pos, dir, errors, upper int, budget trivial.Budget, done func(index.BiCursor, int, trivial.Budget) bool) bool {
	if errors > upper {
		return false
	}
	if pos == len(block) {
		return done(c, errors, budget)
	}

	sigma := idx.Sigma()
	alpha := idx.Alphabet()
	extend := directedExtend(dir)
	want := blockCharAt(block, pos, dir)

	// Exact extension, free of charge.
	exact := c
	if extend(&exact, want) {
		if walkBlock(idx, exact, block, pos+1, dir, errors, upper, budget, done) {
			return true
		}
	}

	if errors >= upper || budget.Exhausted() {
		return false
	}

	// Substitution: consume one block position under a different symbol.
	if subBudget, ok := budget.SpendSub(); ok {
		for code := 1; code < sigma; code++ {
			extRank := alpha.ToExt(code)
			if extRank == want {
				continue
			}
			cand := c
			if extend(&cand, extRank) {
				if walkBlock(idx, cand, block, pos+1, dir, errors+1, upper, subBudget, done) {
					return true
				}
			}
		}
	}

	// Insertion: the query holds a symbol absent from the text; consume the
	// block position without extending the cursor.
	if insBudget, ok := budget.SpendIns(); ok {
		if walkBlock(idx, c, block, pos+1, dir, errors+1, upper, insBudget, done) {
			return true
		}
	}

	// Deletion: the text holds a symbol absent from the query; extend the
	// cursor without consuming a block position.
	if delBudget, ok := budget.SpendDel(); ok {
		for code := 1; code < sigma; code++ {
			extRank := alpha.ToExt(code)
			cand := c
			if extend(&cand, extRank) {
				if walkBlock(idx, cand, block, pos, dir, errors+1, upper, delBudget, done) {
					return true
				}
			}
		}
	}

	return false
}

// blockCharAt returns the block character the given traversal position
// corresponds to: forward order for dir==1, reversed for dir==-1 so a
// left-extended block reads in the same left-to-right order once matched.
func blockCharAt(block []int, pos, dir int) int {
	if dir == 1 {
		return block[pos]
	}
	return block[len(block)-1-pos]
}

// directedExtend returns the BiCursor extension method to use for this
// traversal direction.
func directedExtend(dir int) func(*index.BiCursor, int) bool {
	if dir == 1 {
		return (*index.BiCursor).ExtendRightChar
	}
	return (*index.BiCursor).ExtendLeftChar
}
