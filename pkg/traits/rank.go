package traits

import (
	"math"
	"sort"
)

// Top returns the n highest-scoring dimensions of v, highest first.
// Equal scores keep declaration order (A, O, C, E, X, P).
func (v Vector) Top(n int) (top []Dimension) {
	dims := Dimensions()
	sort.SliceStable(dims, func(i, j int) bool {
		return v.Get(dims[i]) > v.Get(dims[j])
	})

	if n > len(dims) {
		n = len(dims)
	}
	if n < 0 {
		n = 0
	}

	top = dims[:n]
	return top
}

// Contains reports whether dim is in dims.
func Contains(dims []Dimension, dim Dimension) (found bool) {
	for _, d := range dims {
		if d == dim {
			found = true
			return found
		}
	}
	return found
}

// RoundHalfUp rounds x to the nearest integer, with .5 going toward positive infinity.
// math.Round sends -2.5 to -3; scores need -2.5 to -2.
func RoundHalfUp(x float64) (n int) {
	n = int(math.Floor(x + 0.5))
	return n
}

// Clamp limits score to [MinScore, MaxScore].
func Clamp(score int) (clamped int) {
	clamped = score
	if clamped < MinScore {
		clamped = MinScore
	}
	if clamped > MaxScore {
		clamped = MaxScore
	}
	return clamped
}
