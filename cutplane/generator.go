// Package cutplane: the constraint-generation contract and the default
// eigenvector-cut generator.
package cutplane

import "gonum.org/v1/gonum/mat"

// ConstraintGenerator turns a violating correlation submatrix into a valid
// cutting inequality, or reports that none was derived.
//
// Contract (consumed by the orchestrator):
//   - sub is a k×k symmetric unit-diagonal matrix, the pairwise relaxation
//     values induced by a core of k original variables.
//   - On success, coefs has length k*(k-1)/2, indexed by the submatrix's own
//     1-based flat pair order (coefs[v-1] multiplies local pair v), and the
//     inequality  sum(coefs[v-1] * X_v) >= rhs  must hold for every
//     unit-diagonal PSD matrix X — hence for every true ±1 assignment.
//   - ok == false means "no constraint found"; the orchestrator counts
//     consecutive failures and eventually falls back to rounding.
//
// Implementations must not retain sub.
type ConstraintGenerator interface {
	FindConstraint(sub *mat.SymDense) (coefs []float64, rhs float64, ok bool)
}

// EigenCut derives a separating inequality from the most negative eigenpair
// of the violating submatrix. For a unit eigenvector u with eigenvalue
// λ < -Tol, every unit-diagonal PSD matrix X satisfies uᵀXu >= 0, i.e.
//
//	sum over pairs (i, j) of 2*u_i*u_j * X_ij >= -|u|²,
//
// while the violating submatrix M attains (λ-1)*|u|² < -|u|² on the left
// side — so the inequality is valid for the original problem and strictly
// cuts off the current relaxation point.
type EigenCut struct {
	// Tol is the eigenvalue threshold below which a cut is derived;
	// align it with Options.EigenTol.
	Tol float64
}

var _ ConstraintGenerator = EigenCut{}

// FindConstraint implements ConstraintGenerator.
//
// Complexity: one k×k symmetric eigendecomposition, O(k³).
func (g EigenCut) FindConstraint(sub *mat.SymDense) ([]float64, float64, bool) {
	var k = sub.SymmetricDim()
	if k < 2 {
		// A 1×1 unit-diagonal matrix cannot violate PSD-ness.
		return nil, 0, false
	}

	var eig mat.EigenSym
	if !eig.Factorize(sub, true) {
		return nil, 0, false
	}

	// gonum returns eigenvalues in ascending order: index 0 is the minimum.
	var vals = eig.Values(nil)
	if vals[0] >= -g.Tol {
		return nil, 0, false
	}

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	var (
		px    = NewPairIndex(k)
		coefs = make([]float64, px.Count())
		norm  float64
		i, j  int
		v     int
		err   error
	)
	for i = 0; i < k; i++ {
		norm += vecs.At(i, 0) * vecs.At(i, 0)
	}
	for v = 1; v <= px.Count(); v++ {
		i, j, err = px.ToPair(v)
		if err != nil {
			return nil, 0, false
		}
		coefs[v-1] = 2 * vecs.At(i, 0) * vecs.At(j, 0)
	}

	return coefs, -norm, true
}
