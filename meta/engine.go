package meta

import (
	"golang.org/x/exp/slices"

	"github.com/coregx/fmindex/index"
	"github.com/coregx/fmindex/search/scheme"
	"github.com/coregx/fmindex/search/trivial"
)

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	Searches        uint64
	SchemeSearches  uint64
	TrivialSearches uint64
	HitsFound       uint64
}

// Engine orchestrates approximate search over a bidirectional index: it
// resolves a Config's error budget for a given query, picks the trivial
// driver or a precomputed search scheme to run it, and collects the results
// per the configured Mode and Output.
//
// Engine is safe for concurrent use; per-search mutable state is drawn from
// a sync.Pool, the same pattern the regex meta-engine this package is
// modeled on uses for its own SearchState.
type Engine struct {
	idx       *index.Bi
	config    Config
	stats     Stats
	statePool *searchStatePool
}

// NewEngine builds an Engine over idx with the given config.
func NewEngine(idx *index.Bi, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		idx:       idx,
		config:    config,
		statePool: newSearchStatePool(idx.Fwd.Size()),
	}, nil
}

// Config returns the configuration this engine runs searches with.
func (e *Engine) Config() Config { return e.config }

// Stats returns execution statistics.
func (e *Engine) Stats() Stats { return e.stats }

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() { e.stats = Stats{} }

// Search finds every match of query within the configured error budget and
// returns the hits selected by Config.Mode.
//
// ModeBest, ModeAllBest and ModeStrata don't need the full configured budget
// spent up front: they incrementally raise the total
// error budget from 0 until a hit turns up (ModeBest/ModeAllBest) or until
// Config.Strata distinct error levels have been seen (ModeStrata), so a
// query with a cheap exact or near-exact match never pays for the highest
// configured error level's backtracking. ModeAll always runs the configured
// budget directly, since it wants every hit within it regardless.
func (e *Engine) Search(query []int) []Hit {
	e.stats.Searches++

	maxTotal := budgetFor(len(query), e.config.MaxErrorTotal, e.config.MaxErrorRateTotal)

	state := e.statePool.get()
	defer e.statePool.put(state)

	switch e.config.Mode {
	case ModeBest, ModeAllBest:
		for t := 0; t <= maxTotal; t++ {
			e.runBudget(state, query, t, t)
			if len(state.hits) > 0 {
				break
			}
		}
	case ModeStrata:
		for t := 0; t <= maxTotal; t++ {
			e.runBudget(state, query, t, t)
			if len(distinctErrorLevels(state.hits)) >= e.config.Strata {
				break
			}
		}
	default:
		e.runBudget(state, query, 0, maxTotal)
	}

	e.stats.HitsFound += uint64(len(state.hits))
	return selectByMode(state.hits, e.config.Mode, e.config.Strata)
}

// runBudget runs one search pass over query with the total error budget
// capped at total (and every per-kind budget capped to at most total),
// appending newly discovered hits into state. minTotal is a lower bound the
// scheme driver prunes with — the incremental Mode loops pass the level
// they're on, so each pass only enumerates that level's alignments instead of
// re-walking everything below it. Calling runBudget repeatedly with a
// growing window on the same state is safe either way: state.seen already
// recorded positions are skipped, so a hit's Errors field always holds the
// smallest total at which it was first found.
func (e *Engine) runBudget(state *SearchState, query []int, minTotal, total int) {
	budget := trivial.Budget{
		Total:        total,
		Substitution: minInt(total, resolveKindBudget(len(query), e.config.MaxErrorSub, e.config.MaxErrorRateSub, e.config.MaxErrorTotal, e.config.MaxErrorRateTotal)),
		Insertion:    minInt(total, resolveKindBudget(len(query), e.config.MaxErrorIns, e.config.MaxErrorRateIns, e.config.MaxErrorTotal, e.config.MaxErrorRateTotal)),
		Deletion:     minInt(total, resolveKindBudget(len(query), e.config.MaxErrorDel, e.config.MaxErrorRateDel, e.config.MaxErrorTotal, e.config.MaxErrorRateTotal)),
	}

	handler := func(c index.BiCursor, errors int) bool {
		return e.record(state, c, errors)
	}

	// The precomputed schemes in package scheme/optimum.go are built for a
	// single uniform error budget spread freely across substitution,
	// insertion and deletion; a caller that restricts one kind below the
	// others (e.g. MaxErrorIns = 0 with substitutions still allowed) asks
	// for an edit-type mix the scheme's block structure wasn't derived for,
	// so that case always runs through the trivial driver instead,
	// regardless of Config.UseSchemes.
	mixedEditTypes := budget.Substitution != budget.Insertion || budget.Insertion != budget.Deletion

	if e.config.UseSchemes && !mixedEditTypes {
		e.stats.SchemeSearches++
		sch, ok := scheme.Optimum(minTotal, budget.Total)
		if !ok {
			blocks := budget.Total + 1
			if blocks > len(query) {
				blocks = len(query)
			}
			if blocks < 1 {
				blocks = 1
			}
			sch = scheme.Trivial(blocks, minTotal, budget.Total)
		}
		scheme.Run(e.idx, sch, query, budget, handler)
	} else {
		e.stats.TrivialSearches++
		trivial.Search(e.idx, query, budget, handler)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// record adds every new hit the cursor c (found with the given error count)
// produces to state, notifying Config.OnHit for each, and reports whether
// the search should stop.
func (e *Engine) record(state *SearchState, c index.BiCursor, errors int) bool {
	if e.config.Output == OutputCursors {
		positions := c.Locate()
		if len(positions) == 0 {
			return false
		}
		key := cursorKey{depth: c.Depth(), pos: positions[0]}
		if state.seenCursor == nil {
			state.seenCursor = make(map[cursorKey]bool)
		}
		if state.seenCursor[key] {
			return false
		}
		state.seenCursor[key] = true
		h := Hit{Cursor: c, Errors: errors}
		state.hits = append(state.hits, h)
		return e.notify(h)
	}

	for _, pos := range c.Locate() {
		p := uint32(pos)
		if state.seen.Contains(p) {
			continue
		}
		state.seen.Insert(p)
		h := Hit{Position: pos, Errors: errors}
		state.hits = append(state.hits, h)
		if e.notify(h) {
			return true
		}
	}
	return false
}

// notify calls Config.OnHit if set and translates its "keep going" return
// value into the driver's "abort" convention.
func (e *Engine) notify(h Hit) bool {
	if e.config.OnHit == nil {
		return false
	}
	return !e.config.OnHit(h)
}

// selectByMode filters a search's full hit list down to what Mode asks for.
func selectByMode(hits []Hit, mode Mode, strata int) []Hit {
	if len(hits) == 0 {
		return hits
	}
	switch mode {
	case ModeAll:
		return hits
	case ModeBest:
		best := hits[0]
		for _, h := range hits {
			if h.Errors < best.Errors {
				best = h
			}
		}
		return []Hit{best}
	case ModeAllBest:
		best := hits[0].Errors
		for _, h := range hits {
			if h.Errors < best {
				best = h.Errors
			}
		}
		return filterErrors(hits, func(e int) bool { return e == best })
	case ModeStrata:
		levels := distinctErrorLevels(hits)
		if strata < len(levels) {
			levels = levels[:strata]
		}
		allowed := make(map[int]bool, len(levels))
		for _, l := range levels {
			allowed[l] = true
		}
		return filterErrors(hits, func(e int) bool { return allowed[e] })
	default:
		return hits
	}
}

func filterErrors(hits []Hit, keep func(int) bool) []Hit {
	out := make([]Hit, 0, len(hits))
	for _, h := range hits {
		if keep(h.Errors) {
			out = append(out, h)
		}
	}
	return out
}

func distinctErrorLevels(hits []Hit) []int {
	seen := make(map[int]bool)
	var levels []int
	for _, h := range hits {
		if !seen[h.Errors] {
			seen[h.Errors] = true
			levels = append(levels, h.Errors)
		}
	}
	slices.Sort(levels)
	return levels
}

// resolveKindBudget resolves one per-kind edit budget. An unset per-kind
// field (both its absolute and rate form at zero) imposes no restriction of
// its own beyond the overall total — only an explicitly set per-kind field
// narrows a kind below Total. The result is always clamped to Total, since
// a per-kind cap wider than it is meaningless.
func resolveKindBudget(queryLen, absolute int, rate float64, totalAbsolute int, totalRate float64) int {
	total := budgetFor(queryLen, totalAbsolute, totalRate)
	if absolute == 0 && rate == 0 {
		return total
	}
	kind := budgetFor(queryLen, absolute, rate)
	if kind > total {
		return total
	}
	return kind
}
