// Package cutplane solves binary quadratic optimization problems — every
// variable in {+1, -1}, the objective a symmetric pairwise coefficient
// matrix plus a constant — by LP-based semidefinite separation.
//
// The relaxation replaces each product x_i·x_j with a continuous variable in
// [-1, 1]; the implied correlation matrix (unit diagonal, pair values off
// the diagonal) must be positive semidefinite at any point realizable by an
// actual ±1 vector. The solver therefore alternates:
//
//  1. solve the linear relaxation (package lpengine);
//  2. hunt for a minimal index subset whose induced correlation submatrix
//     has a negative eigenvalue (the separation oracle);
//  3. turn the violation into a valid linear inequality (the constraint
//     generator) and install it as a cutting plane, pruning slack rows.
//
// The loop certifies an exact optimum when no PSD violation exists anywhere;
// on repeated generator failure it falls back to randomized Gaussian
// hyperplane rounding of the PSD-corrected correlation matrix, keeping the
// best-scoring trial. Lower and upper bounds are tracked throughout:
// lowerBound <= optimum <= upperBound, with a non-increasing upper bound.
//
// Entry points:
//
//   - Solve            — default stack (pure-Go simplex + eigenvector cuts).
//   - SolveWithEngine  — caller-supplied lpengine.Engine and ConstraintGenerator.
//
// Determinism: all randomness (core growth order, Gaussian sampling) flows
// from the single seedable stream configured by Options.Seed.
//
// Use this package for small-to-medium instances (the relaxation carries
// n·(n-1)/2 variables); the HiGHS engine is available for larger ones.
package cutplane
