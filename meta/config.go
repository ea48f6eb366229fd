// Package meta implements the meta-engine orchestrator that dispatches an
// approximate search to the trivial backtracking driver or a precomputed
// search scheme, collects hits per the configured Mode, and exposes
// execution Stats.
package meta

import "fmt"

// Mode controls which subset of matches a search reports.
type Mode int

const (
	// ModeAll reports every match within the error budget.
	ModeAll Mode = iota
	// ModeBest reports a single match with the fewest edits.
	ModeBest
	// ModeAllBest reports every match tied for the fewest edits, where
	// ModeBest reports a single representative of them.
	ModeAllBest
	// ModeStrata reports every match whose edit count falls within the
	// Config.Strata lowest distinct error levels found.
	ModeStrata
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeBest:
		return "best"
	case ModeAllBest:
		return "all_best"
	case ModeStrata:
		return "strata"
	default:
		return "unknown"
	}
}

// Output controls what a Hit carries.
type Output int

const (
	// OutputPositions reports only the text positions of each match.
	OutputPositions Output = iota
	// OutputCursors reports the full BiCursor for each match, so callers
	// can inspect its depth, query, or extend it further.
	OutputCursors
)

func (o Output) String() string {
	switch o {
	case OutputPositions:
		return "positions"
	case OutputCursors:
		return "cursors"
	default:
		return "unknown"
	}
}

// OnHitFunc is an optional observer invoked for every match as it's found,
// independent of what Engine.Search ultimately returns. Returning false
// tells the engine to abandon the search immediately (useful for a caller
// that only wants to know whether any match exists).
type OnHitFunc func(h Hit) bool

// Config controls Engine search behavior.
type Config struct {
	// MaxErrorTotal, MaxErrorSub, MaxErrorIns and MaxErrorDel bound the
	// absolute number of edits a search may spend, each per-kind field
	// capping its kind on top of the shared Total cap. A per-kind field
	// left at 0 (with its rate field also 0) is unset and caps its kind at
	// Total; see resolveKindBudget.
	MaxErrorTotal int
	MaxErrorSub   int
	MaxErrorIns   int
	MaxErrorDel   int

	// MaxErrorRateTotal, MaxErrorRateSub, MaxErrorRateIns and
	// MaxErrorRateDel express the same bounds as a fraction of the query
	// length instead of an absolute count. When a rate field is > 0 it
	// takes precedence over the matching absolute field for that search —
	// rate-relative bounds are the more generally useful of the two when
	// query length varies across calls, so they win when set.
	MaxErrorRateTotal float64
	MaxErrorRateSub   float64
	MaxErrorRateIns   float64
	MaxErrorRateDel   float64

	// Mode selects which subset of matches Search reports.
	Mode Mode

	// Strata bounds the number of distinct error levels reported when
	// Mode is ModeStrata. Ignored otherwise.
	Strata int

	// Output selects what a Hit carries.
	Output Output

	// OnHit, if set, is called for every match as it is found.
	OnHit OnHitFunc

	// UseSchemes enables dispatch through a precomputed search scheme
	// (falling back to scheme.Trivial when none is precomputed) instead of
	// always using package trivial's driver. A budget whose per-kind limits
	// differ still runs through package trivial's driver.
	// Default: true.
	UseSchemes bool
}

// DefaultConfig returns an exact-match configuration (no edits allowed),
// reporting all matches as positions.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeAll,
		Output:     OutputPositions,
		UseSchemes: true,
	}
}

// Validate reports whether c is self-consistent.
func (c Config) Validate() error {
	if c.MaxErrorTotal < 0 {
		return &ConfigError{Field: "MaxErrorTotal", Message: "must be >= 0"}
	}
	if c.MaxErrorSub < 0 || c.MaxErrorIns < 0 || c.MaxErrorDel < 0 {
		return &ConfigError{Field: "MaxErrorSub/MaxErrorIns/MaxErrorDel", Message: "must be >= 0"}
	}
	for name, rate := range map[string]float64{
		"MaxErrorRateTotal": c.MaxErrorRateTotal,
		"MaxErrorRateSub":   c.MaxErrorRateSub,
		"MaxErrorRateIns":   c.MaxErrorRateIns,
		"MaxErrorRateDel":   c.MaxErrorRateDel,
	} {
		if rate < 0 || rate > 1 {
			return &ConfigError{Field: name, Message: "must be within [0, 1]"}
		}
	}
	switch c.Mode {
	case ModeAll, ModeBest, ModeAllBest, ModeStrata:
	default:
		return &ConfigError{Field: "Mode", Message: "must be one of ModeAll, ModeBest, ModeAllBest, ModeStrata"}
	}
	if c.Mode == ModeStrata && c.Strata < 1 {
		return &ConfigError{Field: "Strata", Message: "must be >= 1 when Mode is ModeStrata"}
	}
	switch c.Output {
	case OutputPositions, OutputCursors:
	default:
		return &ConfigError{Field: "Output", Message: "must be OutputPositions or OutputCursors"}
	}
	return nil
}

// ConfigError represents an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("meta: invalid config: %s: %s", e.Field, e.Message)
}

// budgetFor resolves the absolute edit budget for one error dimension,
// preferring the rate form when set.
func budgetFor(queryLen int, absolute int, rate float64) int {
	if rate > 0 {
		return int(rate * float64(queryLen))
	}
	return absolute
}
