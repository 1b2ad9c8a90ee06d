// Package cutplane_test validates the eigenvector-cut generator: the derived
// inequality must hold for every ±1 assignment while strictly cutting off the
// violating relaxation point.
package cutplane_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/clqo/cutplane"
)

// unitDiag builds a k×k unit-diagonal SymDense with the given strict upper
// triangle listed row-by-row.
func unitDiag(k int, upper ...float64) *mat.SymDense {
	s := mat.NewSymDense(k, nil)
	idx := 0
	for i := 0; i < k; i++ {
		s.SetSym(i, i, 1)
		for j := i + 1; j < k; j++ {
			s.SetSym(i, j, upper[idx])
			idx++
		}
	}

	return s
}

// evalCut computes sum(coefs[v-1] * X_v) at the correlation matrix induced by
// a ±1 assignment (X_{(i,j)} = a[i]*a[j], local flat order).
func evalCut(t *testing.T, coefs []float64, a []float64) float64 {
	t.Helper()
	px := cutplane.NewPairIndex(len(a))
	require.Len(t, coefs, px.Count())

	sum := 0.0
	for v := 1; v <= px.Count(); v++ {
		i, j, err := px.ToPair(v)
		require.NoError(t, err)
		sum += coefs[v-1] * a[i] * a[j]
	}

	return sum
}

func TestEigenCut_PSDInputYieldsNoConstraint(t *testing.T) {
	gen := cutplane.EigenCut{Tol: cutplane.DefaultEigenTol}

	// Rank-1 all-ones correlation: PSD, nothing to separate.
	_, _, ok := gen.FindConstraint(unitDiag(3, 1, 1, 1))
	require.False(t, ok)

	// Identity, likewise.
	_, _, ok = gen.FindConstraint(unitDiag(4, 0, 0, 0, 0, 0, 0))
	require.False(t, ok)

	// 1×1 unit diagonal cannot violate.
	_, _, ok = gen.FindConstraint(unitDiag(1))
	require.False(t, ok)
}

func TestEigenCut_FrustratedTriangle(t *testing.T) {
	gen := cutplane.EigenCut{Tol: cutplane.DefaultEigenTol}
	sub := unitDiag(3, -1, -1, -1) // eigenvalues {2, 2, -1}

	coefs, rhs, ok := gen.FindConstraint(sub)
	require.True(t, ok)
	require.Len(t, coefs, 3)

	// Validity: every one of the 8 ±1 assignments satisfies the inequality.
	for mask := 0; mask < 8; mask++ {
		a := make([]float64, 3)
		for i := 0; i < 3; i++ {
			if mask&(1<<i) != 0 {
				a[i] = 1
			} else {
				a[i] = -1
			}
		}
		require.GreaterOrEqual(t, evalCut(t, coefs, a)+1e-9, rhs, "assignment %v", a)
	}

	// Separation: the violating point itself sits strictly below the bound.
	px := cutplane.NewPairIndex(3)
	lhs := 0.0
	for v := 1; v <= px.Count(); v++ {
		i, j, err := px.ToPair(v)
		require.NoError(t, err)
		lhs += coefs[v-1] * sub.At(i, j)
	}
	require.Less(t, lhs, rhs-1e-6)
}

func TestEigenCut_ValidityOnRandomViolations(t *testing.T) {
	// Sweep random non-PSD unit-diagonal matrices (sizes 3..6); every derived
	// cut must be satisfied by all 2^k sign assignments and violated by the
	// generating matrix.
	gen := cutplane.EigenCut{Tol: cutplane.DefaultEigenTol}

	seeds := []int64{5, 17, 23, 101}
	sizes := []int{3, 4, 5, 6}
	for si, k := range sizes {
		px := cutplane.NewPairIndex(k)
		upper := make([]float64, px.Count())

		// Deterministic pseudo-random fill, biased low to force violations.
		x := seeds[si]
		for v := range upper {
			x = x*6364136223846793005 + 1442695040888963407
			upper[v] = -1 + 0.35*float64((x>>33)%100)/100.0
		}
		sub := unitDiag(k, upper...)

		coefs, rhs, ok := gen.FindConstraint(sub)
		if !ok {
			continue // this draw happened to be PSD; nothing to check
		}

		for mask := 0; mask < 1<<k; mask++ {
			a := make([]float64, k)
			for i := 0; i < k; i++ {
				if mask&(1<<i) != 0 {
					a[i] = 1
				} else {
					a[i] = -1
				}
			}
			require.GreaterOrEqual(t, evalCut(t, coefs, a)+1e-9, rhs, "k=%d assignment %v", k, a)
		}

		lhs := 0.0
		for v := 1; v <= px.Count(); v++ {
			i, j, err := px.ToPair(v)
			require.NoError(t, err)
			lhs += coefs[v-1] * sub.At(i, j)
		}
		require.Less(t, lhs, rhs, "k=%d must strictly violate", k)
	}
}
