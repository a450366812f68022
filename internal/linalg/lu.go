package linalg

import (
	"fmt"
	"math"

	"github.com/nd-ml/nd/internal/array"
	"github.com/nd-ml/nd/internal/stats"
)

// LU is the factorization P*A = L*U of a square matrix, computed with
// partial (row) pivoting. L is unit lower triangular, U upper
// triangular; both are packed into one dense array.
type LU struct {
	lu   *array.Dense[float64]
	piv  []int
	sign int
}

// checkSquare validates a rank-2 square expression and returns n.
func checkSquare(a array.Expr[float64], op string) (int, error) {
	s := a.Shape()
	if len(s) != 2 {
		return 0, fmt.Errorf("%s: rank %d expression, want 2: %w", op, len(s), array.ErrInvalidArgument)
	}
	if s[0] != s[1] {
		return 0, fmt.Errorf("%s: %d×%d matrix is not square: %w", op, s[0], s[1], array.ErrShape)
	}
	return s[0], nil
}

// FactorizeLU computes the pivoted factorization P*A = L*U.
// Fails on non-square input or an exactly singular matrix.
func FactorizeLU(a array.Expr[float64]) (*LU, error) {
	n, err := checkSquare(a, "lu")
	if err != nil {
		return nil, err
	}
	// The elimination loop addresses the buffer as d[i*n+j], so the
	// working copy must be row-major regardless of the input's layout.
	lu := array.MaterializeLayout(a, array.RowMajor)
	d := lu.Data()
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	sign := 1

	for k := 0; k < n; k++ {
		// Partial pivot: largest magnitude in column k at or below row k.
		p := k
		best := math.Abs(d[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(d[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return nil, fmt.Errorf("lu: matrix is singular at column %d: %w", k, array.ErrInvalidArgument)
		}
		if p != k {
			for j := 0; j < n; j++ {
				d[k*n+j], d[p*n+j] = d[p*n+j], d[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
			sign = -sign
		}
		pivot := d[k*n+k]
		for i := k + 1; i < n; i++ {
			m := d[i*n+k] / pivot
			d[i*n+k] = m
			for j := k + 1; j < n; j++ {
				d[i*n+j] -= m * d[k*n+j]
			}
		}
	}
	return &LU{lu: lu, piv: piv, sign: sign}, nil
}

// L returns the unit lower triangular factor.
func (f *LU) L() *array.Dense[float64] {
	n := len(f.piv)
	return array.Materialize(array.Add(array.TriL(f.lu, -1), array.EyeExpr[float64](n, n, 0)))
}

// U returns the upper triangular factor.
func (f *LU) U() *array.Dense[float64] {
	return array.Materialize(array.TriU(f.lu, 0))
}

// Pivots returns the row permutation: row i of L*U is row Pivots()[i]
// of the original matrix.
func (f *LU) Pivots() []int {
	return append([]int(nil), f.piv...)
}

// Det returns the determinant: the pivot sign times the product of
// U's diagonal.
func (f *LU) Det() float64 {
	p := stats.Prod(array.Values(array.Diag(f.lu, 0), array.RowMajor))
	return float64(f.sign) * p
}

// Solve solves A*x = b for a 1-D right-hand side.
// b's length must equal the matrix order.
func (f *LU) Solve(b array.Expr[float64]) (*array.Dense[float64], error) {
	n := len(f.piv)
	bs := b.Shape()
	if len(bs) != 1 || bs[0] != n {
		return nil, fmt.Errorf("lu solve: rhs shape %v, want (%d): %w", []int(bs), n, array.ErrShape)
	}
	x := array.Zeros[float64](array.Shape{n})
	xd := x.Data()
	d := f.lu.Data()
	// Apply the permutation, then forward- and back-substitute.
	for i := 0; i < n; i++ {
		xd[i] = b.At(f.piv[i])
	}
	for i := 1; i < n; i++ {
		s := xd[i]
		for j := 0; j < i; j++ {
			s -= d[i*n+j] * xd[j]
		}
		xd[i] = s
	}
	for i := n - 1; i >= 0; i-- {
		s := xd[i]
		for j := i + 1; j < n; j++ {
			s -= d[i*n+j] * xd[j]
		}
		xd[i] = s / d[i*n+i]
	}
	return x, nil
}
