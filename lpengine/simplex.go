// SPDX-License-Identifier: MIT
// Package lpengine: pure-Go backend on top of gonum's dense simplex.
package lpengine

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Anti-cycling parameters. The standard form is exactly degenerate at box
// vertices — every tight box equality meets the binding cut rows there — and
// gonum's dense simplex can cycle forever on such bases. A nonzero pivot
// tolerance plus a tiny fixed-stream perturbation of b breaks the ties.
// The perturbation is drawn from a constant seed, so equal models still
// solve identically; it is subtracted, which keeps ">=" rows valid (looser
// by at most simplexPerturbScale) and free-row surpluses nonnegative.
const (
	simplexPivotTol     = 1e-9
	simplexPerturbScale = 1e-9
	simplexPerturbSeed  = 1
)

// Simplex is the default, cgo-free Engine backed by
// gonum.org/v1/gonum/optimize/convex/lp.
//
// The declarative model (bounded columns, ">=" rows, max/min sense) is
// converted to gonum's standard form — minimize cᵀz subject to Az = b,
// z >= 0 — on every Solve:
//
//   - each column x_i with finite bounds [lo_i, hi_i] becomes the shifted
//     variable u_i = x_i − lo_i plus a slack s_i with u_i + s_i = hi_i − lo_i;
//   - each row a·x >= L becomes a·u − t = L − a·lo with surplus t >= 0;
//   - a maximization objective is negated.
//
// Columns must carry finite bounds before Solve (the cutting-plane relaxation
// always boxes its variables to [-1, 1]); a column left unbounded yields
// StatusFailed.
type Simplex struct {
	model
}

// NewSimplex returns an empty Simplex engine. Call Reset before use.
func NewSimplex() *Simplex { return &Simplex{} }

var _ Engine = (*Simplex)(nil)

// Solve converts the model to standard form and runs gonum's simplex.
//
// Status mapping:
//   - nil error            -> StatusOptimal (point committed)
//   - lp.ErrInfeasible     -> StatusInfeasible
//   - lp.ErrUnbounded      -> StatusUnbounded
//   - anything else        -> StatusNumericalInstability (last point kept)
//
// Complexity: standard-form assembly is O((m+k)·(2m+k)) for m columns and
// k rows; the simplex itself is backend-dependent.
func (e *Simplex) Solve() Status {
	var m = e.cols
	var k = len(e.rows)

	// Degenerate model without columns: trivially optimal at the empty point.
	if m == 0 {
		e.commitPoint(nil)

		return StatusOptimal
	}

	// Reject unbounded columns up front; the conversion requires finite boxes.
	var i int
	for i = 0; i < m; i++ {
		if math.IsInf(e.colLo[i], 0) || math.IsInf(e.colHi[i], 0) || e.colHi[i] < e.colLo[i] {
			return StatusFailed
		}
	}

	// Standard-form dimensions: u (m) | s (m) | t (k).
	var (
		total = 2*m + k
		a     = mat.NewDense(m+k, total, nil)
		b     = make([]float64, m+k)
		c     = make([]float64, total)
	)

	// Column boxes: u_i + s_i = hi_i − lo_i.
	for i = 0; i < m; i++ {
		a.Set(i, i, 1)
		a.Set(i, m+i, 1)
		b[i] = e.colHi[i] - e.colLo[i]
	}

	// ">=" rows: a·u − t_r = lower − a·lo.
	var (
		r   int
		nz  Nonzero
		rhs float64
	)
	for r = 0; r < k; r++ {
		rhs = e.rows[r].lower
		if math.IsInf(rhs, -1) {
			// A free row constrains nothing; keep the surplus alone (t_r = anything >= 0).
			rhs = 0
			a.Set(m+r, 2*m+r, -1)
			b[m+r] = 0

			continue
		}
		for _, nz = range e.rows[r].coefs {
			a.Set(m+r, nz.Col, nz.Val)
			rhs -= nz.Val * e.colLo[nz.Col]
		}
		a.Set(m+r, 2*m+r, -1)
		b[m+r] = rhs
	}

	// Objective over u only; constants from the shift are irrelevant here.
	for i = 0; i < m; i++ {
		if e.maximize {
			c[i] = -e.objCoef[i]
		} else {
			c[i] = e.objCoef[i]
		}
	}

	// Anti-cycling perturbation (see the constants above).
	var prng = rand.New(rand.NewSource(simplexPerturbSeed))
	for i = 0; i < len(b); i++ {
		b[i] -= simplexPerturbScale * prng.Float64()
	}

	var (
		optX []float64
		err  error
	)
	_, optX, err = lp.Simplex(c, a, b, simplexPivotTol, nil)
	switch {
	case err == nil:
		// Un-shift back to the original coordinates and commit.
		var point = make([]float64, m)
		for i = 0; i < m; i++ {
			point[i] = optX[i] + e.colLo[i]
		}
		e.commitPoint(point)

		return StatusOptimal
	case errors.Is(err, lp.ErrInfeasible):
		return StatusInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return StatusUnbounded
	default:
		// Singular bases, Bland cycling guards, etc.: treat as a warning and
		// let the caller continue on the last committed iterate.
		return StatusNumericalInstability
	}
}
