// SPDX-License-Identifier: MIT
// Package lpengine: Engine interface, Status enumeration, sentinel errors.
package lpengine

import "errors"

// Sentinel errors. All index-shaped misuse returns these; backends never
// panic on caller input (matching lvlath-style error discipline).
var (
	// ErrColOutOfRange is returned when a column index is outside [0, cols).
	ErrColOutOfRange = errors.New("lpengine: column index out of range")

	// ErrRowOutOfRange is returned when a row index is outside [0, RowCount()).
	ErrRowOutOfRange = errors.New("lpengine: row index out of range")
)

// Status is the outcome of a Solve call.
type Status int

const (
	// StatusOptimal: an optimal primal point was found and is readable.
	StatusOptimal Status = iota

	// StatusInfeasible: the model admits no feasible point. Fatal.
	StatusInfeasible

	// StatusUnbounded: the objective is unbounded over the feasible set. Fatal.
	StatusUnbounded

	// StatusNumericalInstability: the backend failed to converge cleanly but
	// the previously obtained primal point (if any) remains readable.
	// Recoverable by policy: callers may proceed with the last iterate.
	StatusNumericalInstability

	// StatusFailed: any other backend failure. Fatal.
	StatusFailed
)

// String implements fmt.Stringer for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusNumericalInstability:
		return "numerical instability"
	default:
		return "failed"
	}
}

// Fatal reports whether the status must abort the consumer's solve.
// StatusOptimal proceeds normally; StatusNumericalInstability proceeds on the
// last available iterate; everything else is unrecoverable.
func (s Status) Fatal() bool {
	return s != StatusOptimal && s != StatusNumericalInstability
}

// Nonzero is one sparse coefficient of a row: Val multiplies column Col.
type Nonzero struct {
	Col int
	Val float64
}

// Engine is the LP service contract consumed by the cutting-plane solver.
//
// Contracts:
//   - Reset(cols) discards all prior state and creates cols continuous
//     columns with free bounds and zero objective weights.
//   - Rows are ">=" rows identified positionally: DeleteRow(r) shifts every
//     row above r down by one (positional identity, not content-addressed).
//   - ColumnValue/RowPrimal/RowLowerBound are defined after the first Solve
//     that returned StatusOptimal; after StatusNumericalInstability they
//     reflect the last successful iterate.
//
// Implementations are single-threaded; see package doc.
type Engine interface {
	// Reset re-initializes the model with cols columns and no rows.
	Reset(cols int)

	// SetMaximize selects the objective sense (true = maximize).
	SetMaximize(maximize bool)

	// SetColumnBounds restricts column col to [lo, hi].
	SetColumnBounds(col int, lo, hi float64) error

	// SetObjectiveCoef sets the objective weight of column col.
	SetObjectiveCoef(col int, c float64) error

	// AddRow appends an empty ">=" row (lower bound -Inf) and returns its index.
	AddRow() int

	// DeleteRow removes the row at index row, shifting subsequent rows down.
	DeleteRow(row int) error

	// SetRowCoefs replaces the sparse coefficients of row.
	SetRowCoefs(row int, nz []Nonzero) error

	// SetRowLowerBound sets the ">=" bound of row.
	SetRowLowerBound(row int, lo float64) error

	// Solve optimizes the current model and reports the outcome.
	Solve() Status

	// ColumnValue returns the primal value of column col at the last iterate.
	ColumnValue(col int) float64

	// RowPrimal returns the activity (coefficient dot point) of row.
	RowPrimal(row int) float64

	// RowLowerBound returns the ">=" bound of row.
	RowLowerBound(row int) float64

	// RowCount returns the current number of rows.
	RowCount() int
}
