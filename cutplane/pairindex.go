// Package cutplane: triangular pair indexing.
package cutplane

import "math"

// PairIndex is the bijection between ordered variable pairs (x, y), x != y,
// of an n-variable problem and the 1-based flat indices 1..n*(n-1)/2 of the
// relaxation variables. Flat index v corresponds to the canonicalized pair
// x > y via v = 1 + y + x*(x-1)/2.
//
// The zero value is unusable; construct with NewPairIndex.
type PairIndex struct {
	n int
}

// NewPairIndex returns the pair index for an n-variable problem (n >= 0).
func NewPairIndex(n int) PairIndex {
	if n < 0 {
		n = 0
	}

	return PairIndex{n: n}
}

// Count returns the number of relaxation variables, n*(n-1)/2.
func (px PairIndex) Count() int { return px.n * (px.n - 1) / 2 }

// ToFlat maps a variable pair to its flat index.
//
// Contracts:
//   - x != y, both in [0, n); violations fail with ErrInvalidIndex.
//   - Order-insensitive: the pair is canonicalized to x > y by swapping.
//
// Complexity: O(1).
func (px PairIndex) ToFlat(x, y int) (int, error) {
	if x == y {
		return 0, ErrInvalidIndex
	}
	if x < 0 || y < 0 || x >= px.n || y >= px.n {
		return 0, ErrInvalidIndex
	}
	if y > x {
		x, y = y, x
	}

	return 1 + y + x*(x-1)/2, nil
}

// ToPair recovers the canonical pair (x, y), x > y, from a flat index.
//
// Contracts:
//   - 1 <= v <= Count(); violations fail with ErrInvalidIndex.
//   - The closed-form inverse x = floor(sqrt(2v) + 1/2) can misround near
//     perfect squares; the y < x re-check below guards that case and fails
//     with ErrInvalidIndex instead of returning a corrupted pair.
//
// Round-trip with ToFlat is exact for all valid inputs.
//
// Complexity: O(1).
func (px PairIndex) ToPair(v int) (int, int, error) {
	if v < 1 || v > px.Count() {
		return 0, 0, ErrInvalidIndex
	}
	var (
		x = int(math.Floor(math.Sqrt(float64(2*v)) + 0.5))
		y = v - 1 - x*(x-1)/2
	)
	if y < 0 || y >= x {
		return 0, 0, ErrInvalidIndex
	}

	return x, y, nil
}
