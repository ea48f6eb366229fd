// Package conv provides safe integer narrowing for the index engine.
//
// IntToUint32 bounds-checks before narrowing to prevent silent overflow,
// and panics on failure since an out-of-range value indicates a programming
// error (e.g., a text or SA interval larger than the compact code space the
// CSA tables use).
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
