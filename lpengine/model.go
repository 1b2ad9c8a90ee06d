// SPDX-License-Identifier: MIT
// Package lpengine: shared dense bookkeeping embedded by both backends.
package lpengine

import "math"

// row is one ">=" constraint: coefs · x >= lower.
type row struct {
	coefs []Nonzero
	lower float64
}

// model holds the declarative LP state plus the last successful primal point.
// Backends embed it and implement Solve on top; everything else is common.
//
// Invariants:
//   - len(objCoef) == len(colLo) == len(colHi) == cols.
//   - len(rowAct) == len(rows); rowAct[r] is row r's activity at the cached
//     point (0 for rows added after the last solve).
type model struct {
	cols     int
	maximize bool
	objCoef  []float64
	colLo    []float64
	colHi    []float64
	rows     []row

	// Last successful iterate. Retained across failed solves so that a
	// StatusNumericalInstability outcome still leaves a readable point.
	colPrimal []float64
	rowAct    []float64
}

// Reset re-initializes the model with cols free continuous columns.
func (m *model) Reset(cols int) {
	if cols < 0 {
		cols = 0
	}
	m.cols = cols
	m.maximize = false
	m.objCoef = make([]float64, cols)
	m.colLo = make([]float64, cols)
	m.colHi = make([]float64, cols)
	var i int
	for i = 0; i < cols; i++ {
		m.colLo[i] = math.Inf(-1)
		m.colHi[i] = math.Inf(1)
	}
	m.rows = nil
	m.colPrimal = make([]float64, cols)
	m.rowAct = nil
}

// SetMaximize selects the objective sense.
func (m *model) SetMaximize(maximize bool) { m.maximize = maximize }

// SetColumnBounds restricts column col to [lo, hi].
func (m *model) SetColumnBounds(col int, lo, hi float64) error {
	if col < 0 || col >= m.cols {
		return ErrColOutOfRange
	}
	m.colLo[col] = lo
	m.colHi[col] = hi

	return nil
}

// SetObjectiveCoef sets the objective weight of column col.
func (m *model) SetObjectiveCoef(col int, c float64) error {
	if col < 0 || col >= m.cols {
		return ErrColOutOfRange
	}
	m.objCoef[col] = c

	return nil
}

// AddRow appends an empty ">=" row with a free (-Inf) bound.
// The new row's cached activity is 0 until the next successful solve.
func (m *model) AddRow() int {
	m.rows = append(m.rows, row{lower: math.Inf(-1)})
	m.rowAct = append(m.rowAct, 0)

	return len(m.rows) - 1
}

// DeleteRow removes the row at index r, shifting subsequent rows down by one.
// The cached activity slice is compacted in lockstep to preserve positional
// identity of the surviving rows.
func (m *model) DeleteRow(r int) error {
	if r < 0 || r >= len(m.rows) {
		return ErrRowOutOfRange
	}
	m.rows = append(m.rows[:r], m.rows[r+1:]...)
	m.rowAct = append(m.rowAct[:r], m.rowAct[r+1:]...)

	return nil
}

// SetRowCoefs replaces the sparse coefficients of row r (defensive copy).
func (m *model) SetRowCoefs(r int, nz []Nonzero) error {
	if r < 0 || r >= len(m.rows) {
		return ErrRowOutOfRange
	}
	var v Nonzero
	for _, v = range nz {
		if v.Col < 0 || v.Col >= m.cols {
			return ErrColOutOfRange
		}
	}
	m.rows[r].coefs = append([]Nonzero(nil), nz...)

	return nil
}

// SetRowLowerBound sets the ">=" bound of row r.
func (m *model) SetRowLowerBound(r int, lo float64) error {
	if r < 0 || r >= len(m.rows) {
		return ErrRowOutOfRange
	}
	m.rows[r].lower = lo

	return nil
}

// ColumnValue returns the cached primal value of column col (0 if col is
// out of range; misuse of read accessors is not error-mapped by contract).
func (m *model) ColumnValue(col int) float64 {
	if col < 0 || col >= len(m.colPrimal) {
		return 0
	}

	return m.colPrimal[col]
}

// RowPrimal returns the cached activity of row r.
func (m *model) RowPrimal(r int) float64 {
	if r < 0 || r >= len(m.rowAct) {
		return 0
	}

	return m.rowAct[r]
}

// RowLowerBound returns the ">=" bound of row r (-Inf if out of range).
func (m *model) RowLowerBound(r int) float64 {
	if r < 0 || r >= len(m.rows) {
		return math.Inf(-1)
	}

	return m.rows[r].lower
}

// RowCount returns the current number of rows.
func (m *model) RowCount() int { return len(m.rows) }

// commitPoint stores a fresh primal point and recomputes row activities.
func (m *model) commitPoint(cols []float64) {
	copy(m.colPrimal, cols)
	var (
		r  int
		nz Nonzero
		a  float64
	)
	for r = 0; r < len(m.rows); r++ {
		a = 0
		for _, nz = range m.rows[r].coefs {
			a += nz.Val * m.colPrimal[nz.Col]
		}
		m.rowAct[r] = a
	}
}
