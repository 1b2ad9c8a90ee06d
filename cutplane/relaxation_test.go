// Package cutplane (internal tests): relaxation model + bound tracker —
// initial bounds, monotone upper bound across solves and cuts, slack pruning,
// and local-to-global cut mapping.
package cutplane

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clqo/lpengine"
)

// newFrustrated3 builds the all-(-1) triangle problem and its relaxation over
// a fresh simplex engine.
func newFrustrated3(t *testing.T) (*Dense, *relaxation) {
	t.Helper()
	p, err := NewDense([][]float64{
		{0, -1, -1},
		{-1, 0, -1},
		{-1, -1, 0},
	}, 0)
	require.NoError(t, err)

	rel, err := newRelaxation(p, lpengine.NewSimplex())
	require.NoError(t, err)

	return p, rel
}

func TestRelaxation_InitialBounds(t *testing.T) {
	_, rel := newFrustrated3(t)

	// Lower bound: all-ones assignment scores -3.
	require.InDelta(t, -3.0, rel.lowerBound, 1e-12)
	// Upper bound: sum of |coefficients| over i<j = 3.
	require.InDelta(t, 3.0, rel.upperBound, 1e-12)
	require.LessOrEqual(t, rel.lowerBound, rel.upperBound)
}

func TestRelaxation_SolveTightensUpperBound(t *testing.T) {
	_, rel := newFrustrated3(t)

	st := rel.solve()
	require.Equal(t, lpengine.StatusOptimal, st)

	// The unconstrained box optimum drives every pair to -1, objective 3:
	// exactly the naive bound, so no tightening yet — but never an increase.
	require.InDelta(t, 3.0, rel.upperBound, 1e-8)

	// Every pair value must sit at the lower box bound.
	for i := 1; i < 3; i++ {
		for j := 0; j < i; j++ {
			v, err := rel.value(i, j)
			require.NoError(t, err)
			require.InDelta(t, -1.0, v, 1e-8)
		}
	}
}

func TestRelaxation_CutDecreasesUpperBound(t *testing.T) {
	_, rel := newFrustrated3(t)
	require.Equal(t, lpengine.StatusOptimal, rel.solve())

	// The eigenvector cut for the frustrated triangle: (2/3)·(sum of pairs)
	// >= -1, i.e. sum >= -3/2, cutting off the all-(-1) vertex.
	core := []int{0, 1, 2}
	coefs := []float64{2.0 / 3.0, 2.0 / 3.0, 2.0 / 3.0}
	require.NoError(t, rel.addCut(core, coefs, -1))

	before := rel.upperBound
	require.Equal(t, lpengine.StatusOptimal, rel.solve())

	// Monotone and strictly below the naive 3 (the constrained optimum is 1.5).
	require.Less(t, rel.upperBound, before)
	require.InDelta(t, 1.5, rel.upperBound, 1e-6)
	require.LessOrEqual(t, rel.lowerBound, rel.upperBound)
}

func TestRelaxation_AddCutMapsLocalPairs(t *testing.T) {
	// 4 variables; install a cut over the core {1, 3} only. The single local
	// pair (1, 0) must land on the global relaxation variable of (1, 3).
	p, err := NewDense(zeroCoeffs(4), 0)
	require.NoError(t, err)
	eng := lpengine.NewSimplex()
	rel, err := newRelaxation(p, eng)
	require.NoError(t, err)

	require.NoError(t, rel.addCut([]int{1, 3}, []float64{1}, 0.25))
	require.Equal(t, 1, eng.RowCount())
	require.Equal(t, 0.25, eng.RowLowerBound(0))

	// Solving must now keep the (1, 3) pair at or above 0.25.
	require.Equal(t, lpengine.StatusOptimal, rel.solve())
	v, err := rel.value(1, 3)
	require.NoError(t, err)
	require.GreaterOrEqual(t, v, 0.25-1e-8)
}

func TestRelaxation_AddCutRejectsWrongArity(t *testing.T) {
	_, rel := newFrustrated3(t)

	// A 3-element core carries 3 local pairs; 2 coefficients is malformed.
	err := rel.addCut([]int{0, 1, 2}, []float64{1, 1}, 0)
	require.ErrorIs(t, err, ErrInvalidIndex)
}

func TestRelaxation_PruneSlack(t *testing.T) {
	_, rel := newFrustrated3(t)

	// A deliberately loose row: sum of pairs >= -30. At the box optimum the
	// activity is -3, so slack = 27 — far above any sane threshold.
	require.NoError(t, rel.addCut([]int{0, 1, 2}, []float64{1, 1, 1}, -30))
	require.Equal(t, lpengine.StatusOptimal, rel.solve())

	removed := rel.pruneSlack(DefaultSlackThreshold)
	require.Equal(t, 1, removed)
	require.Equal(t, 0, rel.eng.RowCount())

	// Binding rows survive: sum >= -3 is tight at the same optimum.
	require.NoError(t, rel.addCut([]int{0, 1, 2}, []float64{1, 1, 1}, -3))
	require.Equal(t, lpengine.StatusOptimal, rel.solve())
	require.Equal(t, 0, rel.pruneSlack(DefaultSlackThreshold))
	require.Equal(t, 1, rel.eng.RowCount())
}

// flakyEngine answers the first solve through the real simplex and reports
// numerical instability for every solve after it, leaving the cached iterate
// in place.
type flakyEngine struct {
	*lpengine.Simplex
	solves int
}

func (f *flakyEngine) Solve() lpengine.Status {
	f.solves++
	if f.solves == 1 {
		return f.Simplex.Solve()
	}

	return lpengine.StatusNumericalInstability
}

func TestRelaxation_InstabilityKeepsLastIterate(t *testing.T) {
	p, err := NewDense([][]float64{
		{0, -1, -1},
		{-1, 0, -1},
		{-1, -1, 0},
	}, 0)
	require.NoError(t, err)

	eng := &flakyEngine{Simplex: lpengine.NewSimplex()}
	rel, err := newRelaxation(p, eng)
	require.NoError(t, err)

	require.Equal(t, lpengine.StatusOptimal, rel.solve())
	ubBefore := rel.upperBound
	pointBefore := append([]float64(nil), rel.point...)

	// The failed solve is a warning, not an abort: the previous iterate stays
	// readable and the bound certifies nothing new.
	st := rel.solve()
	require.Equal(t, lpengine.StatusNumericalInstability, st)
	require.False(t, st.Fatal())
	require.Equal(t, pointBefore, rel.point)
	require.Equal(t, ubBefore, rel.upperBound)
}

func TestRelaxation_PruneSparesUncommittedCut(t *testing.T) {
	p, err := NewDense([][]float64{
		{0, -1, -1},
		{-1, 0, -1},
		{-1, -1, 0},
	}, 0)
	require.NoError(t, err)

	eng := &flakyEngine{Simplex: lpengine.NewSimplex()}
	rel, err := newRelaxation(p, eng)
	require.NoError(t, err)
	require.Equal(t, lpengine.StatusOptimal, rel.solve())

	// Install a tight cut after the committed solve; its activity is cached
	// as 0 until the next optimal solve, which here never comes.
	require.NoError(t, rel.addCut([]int{0, 1, 2}, []float64{2.0 / 3.0, 2.0 / 3.0, 2.0 / 3.0}, -1))
	require.Equal(t, lpengine.StatusNumericalInstability, rel.solve())

	// The placeholder activity reads slack 1 against rhs -1; pruning must not
	// mistake the never-exercised row for a loose one.
	require.Equal(t, 0, rel.pruneSlack(DefaultSlackThreshold))
	require.Equal(t, 1, rel.eng.RowCount())
}

func TestRelaxation_SubmatrixShape(t *testing.T) {
	rel := pointRelaxation(t, [][]float64{
		{},
		{-0.5},
		{0.25, 0.75},
	})

	sub := rel.submatrix([]int{2, 0})
	require.Equal(t, 2, sub.SymmetricDim())
	require.Equal(t, 1.0, sub.At(0, 0))
	require.Equal(t, 1.0, sub.At(1, 1))
	require.Equal(t, 0.25, sub.At(0, 1)) // pair (2, 0)
	require.Equal(t, 0.25, sub.At(1, 0))

	full := rel.fullMatrix()
	require.Equal(t, 3, full.SymmetricDim())
	require.Equal(t, -0.5, full.At(0, 1))
	require.Equal(t, 0.75, full.At(1, 2))
}
