package linalg

import (
	"fmt"
	"math"

	"github.com/nd-ml/nd/internal/array"
)

// Cholesky is the factorization A = L*Lᵀ of a symmetric positive
// definite matrix, with L lower triangular.
type Cholesky struct {
	l *array.Dense[float64]
}

// symTol is the relative tolerance for the symmetry check.
const symTol = 1e-12

// FactorizeCholesky computes A = L*Lᵀ. Fails on non-square or
// asymmetric input and on matrices that are not positive definite.
func FactorizeCholesky(a array.Expr[float64]) (*Cholesky, error) {
	n, err := checkSquare(a, "cholesky")
	if err != nil {
		return nil, err
	}
	if err := checkSymmetric(a, n, "cholesky"); err != nil {
		return nil, err
	}
	l := array.Zeros[float64](array.Shape{n, n})
	ld := l.Data()
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			s := a.At(i, j)
			for k := 0; k < j; k++ {
				s -= ld[i*n+k] * ld[j*n+k]
			}
			if i == j {
				if s <= 0 {
					return nil, fmt.Errorf("cholesky: matrix is not positive definite at pivot %d: %w",
						i, array.ErrInvalidArgument)
				}
				ld[i*n+i] = math.Sqrt(s)
			} else {
				ld[i*n+j] = s / ld[j*n+j]
			}
		}
	}
	return &Cholesky{l: l}, nil
}

func checkSymmetric(a array.Expr[float64], n int, op string) error {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x, y := a.At(i, j), a.At(j, i)
			if math.Abs(x-y) > symTol*math.Max(1, math.Max(math.Abs(x), math.Abs(y))) {
				return fmt.Errorf("%s: matrix is not symmetric at (%d, %d): %w",
					op, i, j, array.ErrInvalidArgument)
			}
		}
	}
	return nil
}

// L returns the lower triangular factor.
func (c *Cholesky) L() *array.Dense[float64] {
	return c.l.Clone()
}

// Det returns the determinant: the squared product of L's diagonal.
func (c *Cholesky) Det() float64 {
	d := 1.0
	for v := range array.Values(array.Diag(c.l, 0), array.RowMajor) {
		d *= v * v
	}
	return d
}

// Solve solves A*x = b via the two triangular systems
// L*y = b and Lᵀ*x = y.
func (c *Cholesky) Solve(b array.Expr[float64]) (*array.Dense[float64], error) {
	n := c.l.Shape()[0]
	bs := b.Shape()
	if len(bs) != 1 || bs[0] != n {
		return nil, fmt.Errorf("cholesky solve: rhs shape %v, want (%d): %w", []int(bs), n, array.ErrShape)
	}
	x := array.Zeros[float64](array.Shape{n})
	xd := x.Data()
	ld := c.l.Data()
	for i := 0; i < n; i++ {
		s := b.At(i)
		for j := 0; j < i; j++ {
			s -= ld[i*n+j] * xd[j]
		}
		xd[i] = s / ld[i*n+i]
	}
	for i := n - 1; i >= 0; i-- {
		s := xd[i]
		for j := i + 1; j < n; j++ {
			s -= ld[j*n+i] * xd[j]
		}
		xd[i] = s / ld[i*n+i]
	}
	return x, nil
}
