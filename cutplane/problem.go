// Package cutplane: problem contract and the dense reference implementation.
package cutplane

import "math"

// structTol is the structural tolerance for symmetry/diagonal checks on
// coefficient matrices. Independent from Options.EigenTol, which governs
// PSD violation detection.
const structTol = 1e-12

// Problem defines a binary quadratic maximization instance: n variables in
// {+1, -1}, a symmetric pairwise coefficient matrix with zero diagonal, and
// a constant offset. Implementations must be immutable for the lifetime of
// a solve.
type Problem interface {
	// N returns the number of binary variables (>= 1 for a solvable instance).
	N() int

	// Coefficient returns the pairwise objective weight of variables i and j.
	// Symmetric: Coefficient(i, j) == Coefficient(j, i); the diagonal is zero.
	Coefficient(i, j int) float64

	// ConstantTerm returns the scalar objective offset.
	ConstantTerm() float64

	// Score evaluates a concrete ±1 assignment:
	//
	//	ConstantTerm + sum over i < j of Coefficient(i, j) * a[i] * a[j].
	//
	// Contract: len(assignment) == N(); otherwise NaN is returned.
	Score(assignment []float64) float64
}

// Dense is the canonical Problem implementation over an explicit coefficient
// matrix. Construct with NewDense; the matrix is copied and never mutated.
type Dense struct {
	n        int
	coeffs   [][]float64
	constant float64
}

// NewDense validates and copies a coefficient matrix.
//
// Contracts:
//   - coeffs is non-empty and square (n >= 1).
//   - all entries and constant are finite (ErrNaNInf).
//   - |coeffs[i][i]| <= 1e-12 (ErrNonZeroDiagonal).
//   - |coeffs[i][j] - coeffs[j][i]| <= 1e-12 (ErrAsymmetry).
//
// Complexity: O(n²) time and space.
func NewDense(coeffs [][]float64, constant float64) (*Dense, error) {
	// Stage 1: shape.
	var n = len(coeffs)
	if n == 0 {
		return nil, ErrInvalidProblem
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(coeffs[i]) != n {
			return nil, ErrInvalidProblem
		}
	}
	if math.IsNaN(constant) || math.IsInf(constant, 0) {
		return nil, ErrNaNInf
	}

	// Stage 2: values — finiteness, ~zero diagonal, symmetry within tolerance.
	var a, d float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a = coeffs[i][j]
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return nil, ErrNaNInf
			}
		}
		if math.Abs(coeffs[i][i]) > structTol {
			return nil, ErrNonZeroDiagonal
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = coeffs[i][j] - coeffs[j][i]
			if math.Abs(d) > structTol {
				return nil, ErrAsymmetry
			}
		}
	}

	// Stage 3: defensive copy.
	var cp = make([][]float64, n)
	for i = 0; i < n; i++ {
		cp[i] = append([]float64(nil), coeffs[i]...)
	}

	return &Dense{n: n, coeffs: cp, constant: constant}, nil
}

// N returns the number of variables.
func (d *Dense) N() int { return d.n }

// Coefficient returns the pairwise weight of (i, j); out-of-range indices
// read as 0 (read accessors are total, misuse is caught at construction).
func (d *Dense) Coefficient(i, j int) float64 {
	if i < 0 || j < 0 || i >= d.n || j >= d.n {
		return 0
	}

	return d.coeffs[i][j]
}

// ConstantTerm returns the scalar offset.
func (d *Dense) ConstantTerm() float64 { return d.constant }

// Score evaluates a ±1 assignment against the stored coefficients.
//
// Complexity: O(n²).
func (d *Dense) Score(assignment []float64) float64 {
	if len(assignment) != d.n {
		return math.NaN()
	}
	var (
		s    = d.constant
		i, j int
	)
	for i = 0; i < d.n; i++ {
		for j = i + 1; j < d.n; j++ {
			s += d.coeffs[i][j] * assignment[i] * assignment[j]
		}
	}

	return s
}
