// Package cutplane: sentinel error set and result types.
//
// All user-triggered failures are reported through the sentinels below and
// matched with errors.Is; the package never panics on user input. Messages
// are prefixed with "cutplane:" for grep-ability across logs.
package cutplane

import "errors"

var (
	// ErrInvalidIndex signals malformed pair/flat-index arguments — a
	// programmer error surfaced fast, never silently corrected.
	ErrInvalidIndex = errors.New("cutplane: invalid pair or flat index")

	// ErrInvalidProblem rejects degenerate or malformed problem definitions
	// (nil problem, n == 0, ragged coefficient matrix).
	ErrInvalidProblem = errors.New("cutplane: invalid problem definition")

	// ErrAsymmetry rejects coefficient matrices violating symmetry within eps.
	ErrAsymmetry = errors.New("cutplane: coefficient matrix is not symmetric within eps")

	// ErrNonZeroDiagonal rejects coefficient matrices with a non-zero diagonal.
	ErrNonZeroDiagonal = errors.New("cutplane: coefficient diagonal not zero within eps")

	// ErrNaNInf rejects NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("cutplane: NaN or Inf encountered")

	// ErrBadOptions rejects inconsistent Options (non-positive tolerance,
	// zero rounding trials, negative thresholds, ...).
	ErrBadOptions = errors.New("cutplane: invalid options")

	// ErrNilEngine rejects a nil LP engine passed to SolveWithEngine.
	ErrNilEngine = errors.New("cutplane: nil LP engine")

	// ErrNilGenerator rejects a nil constraint generator.
	ErrNilGenerator = errors.New("cutplane: nil constraint generator")

	// ErrEngineFatal surfaces a fatal LP-engine status (infeasible, unbounded
	// or otherwise failed). The solve aborts; wrap with context at the caller.
	ErrEngineFatal = errors.New("cutplane: LP engine reported a fatal status")

	// ErrEigenFailed indicates that a symmetric eigendecomposition did not
	// converge where one is strictly required (rounding correction).
	ErrEigenFailed = errors.New("cutplane: eigendecomposition failed")
)

// Result is the outcome of a cutting-plane solve.
type Result struct {
	// Assignment is the final ±1 vector, one entry per original variable.
	// Exclusively owned by the caller once returned.
	Assignment []float64

	// Score is Problem.Score(Assignment), recomputed at termination.
	Score float64

	// LowerBound is the best certified feasible objective value seen
	// (always <= the true optimum's certified interval top).
	LowerBound float64

	// UpperBound is the best relaxation value seen; non-increasing across
	// iterations and always >= the true optimum.
	UpperBound float64

	// Exact reports whether the relaxation point was accepted as a certified
	// combinatorial optimum (no PSD violation anywhere). When false the
	// Assignment comes from randomized hyperplane rounding.
	Exact bool

	// Iterations counts completed Solving passes.
	Iterations int

	// CutsApplied counts accepted cutting-plane rows over the whole solve.
	CutsApplied int
}
