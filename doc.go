// Package clqo is a cutting-plane solver for binary quadratic optimization:
// maximize a pairwise quadratic objective over assignments in {+1, -1}ⁿ.
//
// 🚀 What is clqo?
//
//	A linear-programming relaxation of the quadratic problem is iteratively
//	tightened by semidefinite separation: whenever the implied correlation
//	matrix of the relaxation point has a negative eigenvalue, a violated
//	linear inequality is derived and installed as a cutting plane. The loop
//	either certifies an exact combinatorial optimum or falls back to
//	randomized Gaussian hyperplane rounding.
//
// ✨ Why choose clqo?
//
//   - Certified bounds – a feasible lower bound and a monotone relaxation
//     upper bound are tracked through the whole solve
//   - Deterministic – every random choice flows from one seedable stream
//   - Pluggable LP backends – pure-Go simplex (gonum) out of the box,
//     HiGHS (cgo) for heavier instances
//
// Everything is organized under two subpackages:
//
//	cutplane/ — pair indexing, relaxation model, separation oracle,
//	            constraint generation, rounding, and the solve loop
//	lpengine/ — the LP-engine abstraction with its two backends
//
// Quick start:
//
//	p, _ := cutplane.NewDense(coeffs, 0)
//	res, err := cutplane.Solve(p, cutplane.DefaultOptions())
//
//	go get github.com/katalvlaran/clqo/cutplane
package clqo
