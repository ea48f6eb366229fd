package scheme

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/coregx/fmindex/alphabet"
	"github.com/coregx/fmindex/csa"
	"github.com/coregx/fmindex/index"
	"github.com/coregx/fmindex/search/trivial"
)

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
			panic("acgt: unexpected symbol")
		}
	}
	return out
}

func buildBi(text []int) *index.Bi {
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
	return index.NewBi(csaFwd, csaRev, m, text)
}

// TestPartitionCoversWholeQuery checks partition splits a query into exactly
// k contiguous blocks whose lengths sum back to the query and whose sizes
// differ by at most one, with the longer blocks first.
func TestPartitionCoversWholeQuery(t *testing.T) {
	q := acgt("ACGTACGTA") // length 9
	blocks := partition(q, 4)
	if len(blocks) != 4 {
		t.Fatalf("got %d blocks, want 4", len(blocks))
	}
	total := 0
	for i, b := range blocks {
		total += len(b)
		if i > 0 && len(blocks[i-1]) < len(b) {
			t.Errorf("block %d (len %d) is longer than block %d (len %d); earlier blocks should not be shorter", i, len(b), i-1, len(blocks[i-1]))
		}
	}
	if total != len(q) {
		t.Errorf("blocks sum to %d elements, want %d", total, len(q))
	}
	// Reassembled blocks must equal the original query in order.
	var reassembled []int
	for _, b := range blocks {
		reassembled = append(reassembled, b...)
	}
	for i := range q {
		if reassembled[i] != q[i] {
			t.Fatalf("reassembled query differs from original at %d", i)
			break
		}
	}
}

// TestOptimumRange checks Optimum only has a precomputed scheme for budgets
// 0 through 3.
func TestOptimumRange(t *testing.T) {
	for _, total := range []int{0, 1, 2, 3} {
		sch, ok := Optimum(0, total)
		if !ok {
			t.Errorf("Optimum(%d) should exist", total)
		}
		if len(sch) != total+1 {
			t.Errorf("Optimum(%d) has %d searches, want %d (pigeonhole blocks)", total, len(sch), total+1)
		}
	}
	for _, total := range []int{-1, 4, 10} {
		if _, ok := Optimum(0, total); ok {
			t.Errorf("Optimum(%d) should not exist", total)
		}
	}
	if _, ok := Optimum(2, 1); ok {
		t.Error("Optimum with minErrors > maxErrors should not exist")
	}
	if _, ok := Optimum(1, 1); !ok {
		t.Error("Optimum(1, 1) should exist")
	}
}

// TestOptimumLowerBoundExcludesExactMatches checks the (1,1) window: a query
// occurring exactly in the text is rejected (zero edits is below the lower
// bound), while its one-substitution neighbors still match.
func TestOptimumLowerBoundExcludesExactMatches(t *testing.T) {
	bi := buildBi(acgt("ACGTACGT"))
	sch, ok := Optimum(1, 1)
	if !ok {
		t.Fatal("Optimum(1, 1) should exist")
	}
	budget := trivial.Budget{Total: 1, Substitution: 1}

	run := func(query []int) []int {
		var got []int
		Run(bi, sch, query, budget, func(c index.BiCursor, errors int) bool {
			if errors != 1 {
				t.Errorf("window (1,1) reported a hit with %d errors", errors)
			}
			got = append(got, c.Locate()...)
			return false
		})
		sort.Ints(got)
		return got
	}

	if got := run(acgt("ACGT")); len(got) != 0 {
		t.Errorf("exact occurrences must fall below the (1,1) window, got %v", got)
	}
	if got := run(acgt("AGGT")); len(got) == 0 {
		t.Error("a one-substitution query should match within the (1,1) window")
	}
}

// TestRunPanicsOnMismatchedBlockCounts checks Run's documented panic when a
// Scheme mixes Searches over different block counts.
func TestRunPanicsOnMismatchedBlockCounts(t *testing.T) {
	bi := buildBi(acgt("ACGTACGT"))
	bad := Scheme{
		{Pi: []int{0, 1}, L: []int{0, 0}, U: []int{0, 1}},
		{Pi: []int{0, 1, 2}, L: []int{0, 0, 0}, U: []int{0, 0, 1}},
	}
	defer func() {
		if recover() == nil {
			t.Error("Run should panic when Searches disagree on block count")
		}
	}()
	budget := trivial.Budget{Total: 1, Substitution: 1, Insertion: 1, Deletion: 1}
	Run(bi, bad, acgt("ACGTACGT"), budget, func(c index.BiCursor, errors int) bool { return false })
}

// TestTrivialFallbackSchemeFindsExactMatch checks the single-Search fallback
// scheme behaves like an ordinary left-to-right exact search when maxErrors
// is 0.
func TestTrivialFallbackSchemeFindsExactMatch(t *testing.T) {
	bi := buildBi(acgt("ACGTACGT"))
	sch := Trivial(2, 0, 0)
	var got []int
	Run(bi, sch, acgt("ACGT"), trivial.Budget{}, func(c index.BiCursor, errors int) bool {
		got = append(got, c.Locate()...)
		return false
	})
	sort.Ints(got)
	want := []int{0, 4}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("positions = %v, want %v", got, want)
	}
}

// TestSchemeEquivalenceToTrivial checks the scheme-driver equivalence
// property: for a query with up to two edits against a repetitive text, the
// precomputed Optimum(2) search scheme finds exactly the same position set
// as the trivial backtracking driver run with an equally permissive budget.
func TestSchemeEquivalenceToTrivial(t *testing.T) {
	text := acgt("ACGTACGTACGT")
	bi := buildBi(text)
	query := acgt("AGGTACTT") // two substitutions from the "ACGTACGT" window at position 0

	budget := trivial.Budget{Total: 2, Substitution: 2, Insertion: 2, Deletion: 2}
	trivialPositions := map[int]bool{}
	trivial.Search(bi, query, budget,
		func(c index.BiCursor, errors int) bool {
			for _, p := range c.Locate() {
				trivialPositions[p] = true
			}
			return false
		})

	sch, ok := Optimum(0, 2)
	if !ok {
		t.Fatal("Optimum(2) should exist")
	}
	schemePositions := map[int]bool{}
	Run(bi, sch, query, budget, func(c index.BiCursor, errors int) bool {
		for _, p := range c.Locate() {
			schemePositions[p] = true
		}
		return false
	})

	if len(trivialPositions) == 0 {
		t.Fatal("test setup produced no matches under either driver; pick a query with fewer edits from the text")
	}
	if len(trivialPositions) != len(schemePositions) {
		t.Fatalf("trivial found %v, scheme found %v: position sets differ in size", trivialPositions, schemePositions)
	}
	for p := range trivialPositions {
		if !schemePositions[p] {
			t.Errorf("position %d found by trivial driver but not by scheme driver", p)
		}
	}
}

// TestSchemeEquivalenceRandomText sweeps every length-5 query over a fixed
// pseudo-random 100-character text with up to two substitutions allowed,
// checking the Optimum(2) scheme and the trivial driver agree on the
// position set for each — the drivers' central cross-validation property.
func TestSchemeEquivalenceRandomText(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	text := make([]int, 100)
	for i := range text {
		text[i] = rng.Intn(4)
	}
	bi := buildBi(text)

	sch, ok := Optimum(0, 2)
	if !ok {
		t.Fatal("Optimum(2) should exist")
	}
	budget := trivial.Budget{Total: 2, Substitution: 2}

	query := make([]int, 5)
	for n := 0; n < 1024; n++ {
		v := n
		for i := range query {
			query[i] = v % 4
			v /= 4
		}

		trivialPositions := map[int]bool{}
		trivial.Search(bi, query, budget, func(c index.BiCursor, errors int) bool {
			for _, p := range c.Locate() {
				trivialPositions[p] = true
			}
			return false
		})

		schemePositions := map[int]bool{}
		Run(bi, sch, query, budget, func(c index.BiCursor, errors int) bool {
			for _, p := range c.Locate() {
				schemePositions[p] = true
			}
			return false
		})

		if len(trivialPositions) != len(schemePositions) {
			t.Fatalf("query %v: trivial found %v, scheme found %v", query, trivialPositions, schemePositions)
		}
		for p := range trivialPositions {
			if !schemePositions[p] {
				t.Fatalf("query %v: position %d found by trivial driver only", query, p)
			}
		}
	}
}

// TestAsymmetricBudgetDistinguishesInsertionFromDeletion checks that Run
// threads the per-kind budget through block traversal correctly: a single
// Search with an asymmetric Budget reproduces the same per-kind gating
// package trivial enforces, for both an insertion-shaped query mismatch and
// a deletion-shaped one.
func TestAsymmetricBudgetDistinguishesInsertionFromDeletion(t *testing.T) {
	bi := buildBi(acgt("ACGT"))
	sch := Trivial(1, 0, 1)

	run := func(query []int, budget trivial.Budget) []int {
		var got []int
		Run(bi, sch, query, budget, func(c index.BiCursor, errors int) bool {
			got = append(got, c.Locate()...)
			return false
		})
		sort.Ints(got)
		return got
	}

	// "AACGT" has an extra leading 'A' the text doesn't: matching it needs
	// an insertion, not a deletion or substitution.
	insQuery := acgt("AACGT")
	if got := run(insQuery, trivial.Budget{Total: 1, Insertion: 1}); len(got) == 0 || got[0] != 0 {
		t.Errorf("insertion-only budget: positions = %v, want to contain 0", got)
	}
	if got := run(insQuery, trivial.Budget{Total: 1, Deletion: 1}); len(got) != 0 {
		t.Errorf("deletion-only budget should not satisfy an insertion case, got %v", got)
	}

	// "AGT" is missing the 'C' the text has: matching it at position 0
	// needs a deletion. An insertion-only budget instead matches only "GT"
	// at 2 (the query's leading 'A' inserted).
	delQuery := acgt("AGT")
	if got := run(delQuery, trivial.Budget{Total: 1, Deletion: 1}); len(got) == 0 || got[0] != 0 {
		t.Errorf("deletion-only budget: positions = %v, want to contain 0", got)
	}
	if got := run(delQuery, trivial.Budget{Total: 1, Insertion: 1}); len(got) != 1 || got[0] != 2 {
		t.Errorf("insertion-only budget should not satisfy the deletion case at 0: positions = %v, want [2]", got)
	}
}

// TestAbortOnFirstHit checks Run stops and reports true as soon as the
// delegate returns true.
func TestAbortOnFirstHit(t *testing.T) {
	bi := buildBi(acgt("ACGTACGT"))
	sch := Trivial(2, 0, 0)
	calls := 0
	aborted := Run(bi, sch, acgt("ACGT"), trivial.Budget{}, func(c index.BiCursor, errors int) bool {
		calls++
		return true
	})
	if !aborted {
		t.Error("Run should report the delegate aborted")
	}
	if calls != 1 {
		t.Errorf("delegate should be called exactly once before stopping, got %d", calls)
	}
}
