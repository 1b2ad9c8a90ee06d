// Package cutplane: the linear relaxation model and bound bookkeeping.
package cutplane

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/clqo/lpengine"
)

// relaxation owns the LP side of a solve: one continuous column per variable
// pair boxed to [-1, 1], the fixed linear objective, the dynamic set of
// cutting-plane rows, the cached relaxation point, and the bound tracker.
//
// Ownership: the orchestrator is the sole mutator; no other component touches
// the engine's row set or the cached point (single-threaded by design).
type relaxation struct {
	prob Problem
	px   PairIndex
	eng  lpengine.Engine

	// point[v-1] is the current value of flat relaxation variable v.
	point []float64

	// pruneable counts the leading rows whose cached activity reflects a
	// committed optimal point. Rows appended after that point read activity 0
	// until the next optimal solve and must never be judged by their slack.
	pruneable int

	// Bound tracker. Invariant: lowerBound <= true optimum <= upperBound;
	// upperBound is non-increasing across iterations.
	lowerBound float64
	upperBound float64
}

// newRelaxation builds the initial model:
//   - columns boxed to [-1, 1] with objective weight Coefficient(x, y);
//   - lowerBound = score of the all-ones assignment (trivially feasible);
//   - upperBound = constant + sum |Coefficient(i, j)| over i < j (valid since
//     every relaxation variable's magnitude is capped at 1).
//
// Complexity: O(n²).
func newRelaxation(p Problem, eng lpengine.Engine) (*relaxation, error) {
	var (
		n  = p.N()
		px = NewPairIndex(n)
		m  = px.Count()
	)
	eng.Reset(m)
	eng.SetMaximize(true)

	var (
		v    int
		x, y int
		err  error
	)
	for v = 1; v <= m; v++ {
		x, y, err = px.ToPair(v)
		if err != nil {
			return nil, err
		}
		if err = eng.SetColumnBounds(v-1, -1, 1); err != nil {
			return nil, err
		}
		if err = eng.SetObjectiveCoef(v-1, p.Coefficient(x, y)); err != nil {
			return nil, err
		}
	}

	var r = &relaxation{
		prob:  p,
		px:    px,
		eng:   eng,
		point: make([]float64, m),
	}

	// Initial lower bound: the naive all-ones vector.
	var ones = make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		ones[i] = 1
	}
	r.lowerBound = p.Score(ones)

	// Initial upper bound: constant plus the absolute coefficient mass.
	var ub = p.ConstantTerm()
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			ub += math.Abs(p.Coefficient(i, j))
		}
	}
	r.upperBound = ub

	return r, nil
}

// solve runs the engine and refreshes the cached point. On StatusOptimal the
// upper bound is tightened monotonically; on StatusNumericalInstability the
// last available iterate stays readable but the bound is left untouched
// (a non-optimal iterate certifies nothing). Fatal statuses pass through.
func (r *relaxation) solve() lpengine.Status {
	var st = r.eng.Solve()
	if st.Fatal() {
		return st
	}

	var v int
	for v = 0; v < len(r.point); v++ {
		r.point[v] = r.eng.ColumnValue(v)
	}
	if st == lpengine.StatusOptimal {
		r.upperBound = math.Min(r.upperBound, r.objective())
		r.pruneable = r.eng.RowCount()
	}

	return st
}

// objective recomputes the relaxation objective at the cached point.
//
// Complexity: O(n²).
func (r *relaxation) objective() float64 {
	var (
		s    = r.prob.ConstantTerm()
		v    int
		x, y int
		err  error
	)
	for v = 1; v <= len(r.point); v++ {
		x, y, err = r.px.ToPair(v)
		if err != nil {
			continue // unreachable for maintained invariants
		}
		s += r.point[v-1] * r.prob.Coefficient(x, y)
	}

	return s
}

// value returns the cached relaxation value of the pair (x, y).
func (r *relaxation) value(x, y int) (float64, error) {
	var v, err = r.px.ToFlat(x, y)
	if err != nil {
		return 0, err
	}

	return r.point[v-1], nil
}

// submatrix materializes the correlation submatrix induced by core: unit
// diagonal, entry (i, j) = cached value of the pair (core[i], core[j]).
//
// Complexity: O(k²) for k = len(core).
func (r *relaxation) submatrix(core []int) *mat.SymDense {
	var (
		k   = len(core)
		sub = mat.NewSymDense(k, nil)
		i   int
		j   int
		val float64
	)
	for i = 0; i < k; i++ {
		sub.SetSym(i, i, 1)
		for j = i + 1; j < k; j++ {
			val, _ = r.value(core[i], core[j])
			sub.SetSym(i, j, val)
		}
	}

	return sub
}

// fullMatrix materializes the complete n×n correlation matrix on demand.
func (r *relaxation) fullMatrix() *mat.SymDense {
	var (
		n    = r.prob.N()
		full = make([]int, n)
		i    int
	)
	for i = 0; i < n; i++ {
		full[i] = i
	}

	return r.submatrix(full)
}

// pruneSlack deletes every row whose slack (activity − lower bound) exceeds
// threshold, iterating top-down so surviving indices stay valid. Returns the
// number of rows removed. A heuristic bound-size control: it trades a small
// risk of discarding a marginally useful row for keeping the model compact.
//
// Only the pruneable prefix is examined: a row installed after the last
// optimal solve has no committed activity yet (it reads 0), and judging it by
// that placeholder would delete fresh cuts whenever a solve in between failed
// to commit.
func (r *relaxation) pruneSlack(threshold float64) int {
	var (
		removed int
		i       int
		slack   float64
		limit   = r.pruneable
	)
	if n := r.eng.RowCount(); limit > n {
		limit = n
	}
	for i = limit - 1; i >= 0; i-- {
		slack = r.eng.RowPrimal(i) - r.eng.RowLowerBound(i)
		if slack > threshold {
			if r.eng.DeleteRow(i) == nil {
				removed++
			}
		}
	}
	r.pruneable = limit - removed

	return removed
}

// addCut installs a generated inequality. coefs are indexed by the core's
// *local* pair indices (1-based flat order over k = len(core)); each local
// pair (i, j) is mapped back to the global relaxation variable of
// (core[i], core[j]) before the row is appended with bound rhs.
//
// Complexity: O(k²).
func (r *relaxation) addCut(core []int, coefs []float64, rhs float64) error {
	var (
		sub  = NewPairIndex(len(core))
		nz   = make([]lpengine.Nonzero, 0, len(coefs))
		v    int
		i, j int
		g    int
		err  error
	)
	if len(coefs) != sub.Count() {
		return ErrInvalidIndex
	}
	for v = 1; v <= len(coefs); v++ {
		i, j, err = sub.ToPair(v)
		if err != nil {
			return err
		}
		g, err = r.px.ToFlat(core[i], core[j])
		if err != nil {
			return err
		}
		nz = append(nz, lpengine.Nonzero{Col: g - 1, Val: coefs[v-1]})
	}

	var row = r.eng.AddRow()
	if err = r.eng.SetRowCoefs(row, nz); err != nil {
		return err
	}

	return r.eng.SetRowLowerBound(row, rhs)
}

// recordFeasible folds a certified feasible objective value into the tracker.
func (r *relaxation) recordFeasible(score float64) {
	if score > r.lowerBound {
		r.lowerBound = score
	}
}
