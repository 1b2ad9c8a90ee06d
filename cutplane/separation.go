// Package cutplane: the PSD-violation separation oracle.
package cutplane

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// oracle searches the current relaxation point for a minimal index subset
// whose induced correlation submatrix is not positive semidefinite.
//
// Two phases:
//  1. Growth: visit the n indices in a fresh random order, appending each to
//     a growing core and eigen-testing the induced submatrix. Stop at the
//     first non-PSD core; if all indices are exhausted while PSD, the full
//     matrix is PSD and the empty core is returned.
//  2. Minimization: exactly len(core) times, drop the earliest-inserted
//     element and retest. If the remainder turned PSD the element was
//     necessary — restore it (appended to the end); otherwise leave it out.
//     The survivors form a minimal (not necessarily minimum) non-PSD core:
//     removing any single element restores PSD-ness.
//
// The same tolerance governs both phases (violation = eigenvalue < -tol).
type oracle struct {
	tol float64
	rng *rand.Rand
}

// isPSD eigen-tests a symmetric matrix against the oracle tolerance using a
// symmetric-specialized decomposition (reproducible eigenvalue ordering).
// A failed factorization is treated as a violation: the growth phase then
// hands the offending submatrix to the generator instead of looping blind.
func (o *oracle) isPSD(s *mat.SymDense) bool {
	var eig mat.EigenSym
	if !eig.Factorize(s, false) {
		return false
	}
	var (
		vals = eig.Values(nil)
		v    float64
	)
	for _, v = range vals {
		if v < -o.tol {
			return false
		}
	}

	return true
}

// findCore runs both phases against the relaxation's cached point and returns
// the core's original-variable indices, or nil when the full matrix is PSD.
//
// Complexity: O(n) eigendecompositions of size up to the grown core, i.e.
// O(n · k³) worst case for the final core size k.
func (o *oracle) findCore(r *relaxation) []int {
	var (
		n         = r.prob.N()
		notInCore = permRange(n, o.rng)
		core      = make([]int, 0, n)
		violated  = false
	)

	// Phase 1 — growth.
	var last int
	for len(notInCore) > 0 {
		last = len(notInCore) - 1
		core = append(core, notInCore[last])
		notInCore = notInCore[:last]

		if !o.isPSD(r.submatrix(core)) {
			violated = true

			break
		}
	}
	if !violated {
		return nil // PSD everywhere: the relaxation point is exact.
	}

	// Phase 2 — minimization.
	var (
		rounds  = len(core)
		iter    int
		removed int
	)
	for iter = 0; iter < rounds; iter++ {
		removed = core[0]
		core = core[1:]
		if o.isPSD(r.submatrix(core)) {
			// Removal restored PSD-ness: the element is necessary, keep it.
			core = append(core, removed)
		}
	}

	return core
}
