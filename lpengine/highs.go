// SPDX-License-Identifier: MIT
// Package lpengine: HiGHS-backed Engine (cgo).

//go:build cgo

package lpengine

import (
	"math"

	"github.com/lanl/highs"
)

// HiGHS is an Engine backed by github.com/lanl/highs (cgo bindings to the
// HiGHS solver). The declarative model is rebuilt into a highs.Model on every
// Solve; HiGHS presolves from scratch, which is acceptable at the row counts
// the cutting-plane loop maintains (slack pruning keeps the model compact).
type HiGHS struct {
	model
}

// NewHiGHS returns an empty HiGHS engine. Call Reset before use.
func NewHiGHS() *HiGHS { return &HiGHS{} }

var _ Engine = (*HiGHS)(nil)

// Solve rebuilds and solves the model through HiGHS.
//
// Status mapping:
//   - highs.Optimal                 -> StatusOptimal (point committed)
//   - highs.Infeasible              -> StatusInfeasible
//   - highs.Unbounded / ambiguous   -> StatusUnbounded
//   - solve error or other statuses -> StatusFailed
func (e *HiGHS) Solve() Status {
	if e.cols == 0 {
		e.commitPoint(nil)

		return StatusOptimal
	}

	var lp = new(highs.Model)
	lp.Maximize = e.maximize
	lp.ColCosts = append([]float64(nil), e.objCoef...)
	lp.ColLower = append([]float64(nil), e.colLo...)
	lp.ColUpper = append([]float64(nil), e.colHi...)

	var (
		r  int
		nz Nonzero
	)
	for r = 0; r < len(e.rows); r++ {
		for _, nz = range e.rows[r].coefs {
			lp.ConstMatrix = append(lp.ConstMatrix, highs.Nonzero{Row: r, Col: nz.Col, Val: nz.Val})
		}
		lp.RowLower = append(lp.RowLower, e.rows[r].lower)
		lp.RowUpper = append(lp.RowUpper, math.Inf(1))
	}

	sol, err := lp.Solve()
	if err != nil {
		return StatusFailed
	}
	switch sol.Status {
	case highs.Optimal:
		e.commitPoint(sol.ColumnPrimal)

		return StatusOptimal
	case highs.Infeasible:
		return StatusInfeasible
	case highs.Unbounded, highs.UnboundedOrInfeasible:
		return StatusUnbounded
	default:
		return StatusFailed
	}
}
