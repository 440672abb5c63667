package beziercurve

import (
	"fmt"
	"slices"
)

// SolveTridiagonal solves A*x = d for a tridiagonal A with sub-diagonal a,
// diagonal b and super-diagonal c (Thomas algorithm).
//
// b and d must have the same length n >= 1, a and c length n-1.
// The inputs are never modified and the result does not alias them.
//
// There is no pivoting: a zero or tiny pivot yields Inf/NaN in the result
// instead of an error, so A should be diagonally dominant.
func SolveTridiagonal(a, b, c, d []float64) ([]float64, error) {
	n := len(d)
	if n == 0 || len(b) != n || len(a) != n-1 || len(c) != n-1 {
		return nil, fmt.Errorf("%w: len(a)=%d len(b)=%d len(c)=%d len(d)=%d",
			ErrDimension, len(a), len(b), len(c), len(d))
	}

	bc, dc := slices.Clone(b), slices.Clone(d)

	for i := 1; i < n; i++ {
		m := a[i-1] / bc[i-1]
		bc[i] -= m * c[i-1]
		dc[i] -= m * dc[i-1]
	}

	// bc is private to this call, reuse it for the solution
	x := bc
	x[n-1] = dc[n-1] / bc[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = (dc[i] - c[i]*x[i+1]) / bc[i]
	}

	return x, nil
}
