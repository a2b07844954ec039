// Package dice provides the core randomness abstraction and sampling helpers
// for the idle RPG simulation engine.
package dice

// Source is the randomness provider for the simulation.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Between returns a uniform random int in [min, max] inclusive.
//
// Precondition: src must be non-nil; min <= max.
// Postcondition: min <= result <= max.
func Between(src Source, min, max int) int {
	if min > max {
		panic("dice: Between called with min > max")
	}
	if min == max {
		return min
	}
	return min + src.Intn(max-min+1)
}

// Chance reports whether a probability-p event occurred.
//
// Precondition: src must be non-nil.
// Postcondition: Always false for p <= 0; always true for p >= 1.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Intn(1_000_000) < int(p*1_000_000)
}

// Pick returns a uniformly chosen element of items.
//
// Precondition: src must be non-nil; items must be non-empty.
func Pick[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("dice: Pick called with empty slice")
	}
	return items[src.Intn(len(items))]
}
