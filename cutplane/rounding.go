// Package cutplane: randomized hyperplane rounding with PSD correction.
package cutplane

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// psdMargin is the safety margin subtracted from the minimum eigenvalue
// before the identity blend, so the corrected matrix is strictly positive
// definite and Cholesky-factorizable.
const psdMargin = 1e-5

// rounder derives a concrete ±1 assignment from a (possibly non-PSD)
// correlation matrix: correct the matrix toward the identity until PSD,
// factorize it, then sample Gaussian hyperplanes and keep the best-scoring
// sign pattern.
type rounder struct {
	trials int
	rng    *rand.Rand
}

// psdCorrect blends corr toward the identity so that the minimum eigenvalue
// minEig (< margin) is lifted to ≈ margin while the unit diagonal is
// preserved exactly:
//
//	s  = -1 / (m - 1),  m = minEig - margin  (so s ∈ (0, 1))
//	M' = s*M + (1-s)*I
//
// Eigenvalues map to λ' = s*(λ-1) + 1; for λ = minEig this gives
// λ' = margin / (1 - m) > 0.
func psdCorrect(corr *mat.SymDense, minEig, margin float64) *mat.SymDense {
	var (
		n   = corr.SymmetricDim()
		m   = minEig - margin
		s   = -1.0 / (m - 1.0)
		out = mat.NewSymDense(n, nil)
		i   int
		j   int
	)
	for i = 0; i < n; i++ {
		out.SetSym(i, i, 1)
		for j = i + 1; j < n; j++ {
			out.SetSym(i, j, s*corr.At(i, j))
		}
	}

	return out
}

// round performs the full PSD-correction + hyperplane-sampling procedure and
// returns the best-scoring assignment across rd.trials independent draws.
//
// Contracts:
//   - corr is symmetric with unit diagonal; n >= 1 (guarded by the solver).
//   - never fails for valid inputs: if Cholesky keeps rejecting, the margin
//     is widened geometrically, degenerating toward the identity (uniform
//     random signs) in the limit — sampling always proceeds.
//
// Complexity: O(n³) for the factorization plus O(trials · n²) sampling.
func (rd *rounder) round(p Problem, corr *mat.SymDense) ([]float64, float64, error) {
	var n = corr.SymmetricDim()

	var eig mat.EigenSym
	if !eig.Factorize(corr, false) {
		return nil, 0, ErrEigenFailed
	}
	var minEig = eig.Values(nil)[0] // ascending order: the minimum

	// Correct, then factorize; widen the margin on numerical rejection.
	var (
		chol   mat.Cholesky
		work   = corr
		margin = psdMargin
		ok     bool
	)
	for attempt := 0; attempt < 8; attempt++ {
		if minEig < margin {
			work = psdCorrect(corr, minEig, margin)
		}
		if ok = chol.Factorize(work); ok {
			break
		}
		margin *= 10
	}
	if !ok {
		// Any correlation structure is lost at this point; fall back to
		// independent uniform signs (identity factor).
		work = mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			work.SetSym(i, i, 1)
		}
		if !chol.Factorize(work) {
			return nil, 0, ErrEigenFailed // unreachable for n >= 1
		}
	}

	var l mat.TriDense
	chol.LTo(&l)

	// Hyperplane sampling: y = L·v for standard Gaussian v, bits = sign(y).
	// The first coordinate's sign is forced positive — it fixes the global
	// reflection symmetry without changing the distribution of sign patterns.
	var (
		bestScore  = math.Inf(-1)
		bestAssign []float64
		assign     = make([]float64, n)
		v          = make([]float64, n)
		y          float64
		score      float64
		t, i, j    int
	)
	for t = 0; t < rd.trials; t++ {
		for i = 0; i < n; i++ {
			v[i] = rd.rng.NormFloat64()
		}
		v[0] = math.Abs(v[0])

		for i = 0; i < n; i++ {
			y = 0
			for j = 0; j <= i; j++ {
				y += l.At(i, j) * v[j]
			}
			if y >= 0 {
				assign[i] = 1
			} else {
				assign[i] = -1
			}
		}

		score = p.Score(assign)
		if score > bestScore {
			bestScore = score
			bestAssign = append([]float64(nil), assign...)
		}
	}

	return bestAssign, bestScore, nil
}
