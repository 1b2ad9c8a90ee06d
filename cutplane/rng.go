// Package cutplane: deterministic RNG shared by separation and rounding.
//
// Goals:
//   - Determinism: same seed ⇒ identical cores and rounded assignments.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Safety: no panics, no logging.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe; the solver is
// single-threaded and owns exactly one stream per solve.
package cutplane

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var (
		n = len(a)
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a fresh permutation of 0..n-1 drawn from rng.
// Contract: n >= 0, rng != nil (internal helper; callers guarantee both).
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	var p = make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)

	return p
}
