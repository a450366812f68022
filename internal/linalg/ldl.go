package linalg

import (
	"fmt"

	"github.com/nd-ml/nd/internal/array"
)

// LDL is the factorization A = L*D*Lᵀ of a symmetric matrix, with L
// unit lower triangular and D diagonal. Unlike Cholesky it does not
// require positive definiteness, only nonzero pivots.
type LDL struct {
	l *array.Dense[float64]
	d []float64
}

// FactorizeLDL computes A = L*D*Lᵀ. Fails on non-square or asymmetric
// input and on a zero pivot.
func FactorizeLDL(a array.Expr[float64]) (*LDL, error) {
	n, err := checkSquare(a, "ldl")
	if err != nil {
		return nil, err
	}
	if err := checkSymmetric(a, n, "ldl"); err != nil {
		return nil, err
	}
	l := array.Materialize(array.EyeExpr[float64](n, n, 0))
	ld := l.Data()
	d := make([]float64, n)
	for j := 0; j < n; j++ {
		s := a.At(j, j)
		for k := 0; k < j; k++ {
			s -= ld[j*n+k] * ld[j*n+k] * d[k]
		}
		if s == 0 {
			return nil, fmt.Errorf("ldl: zero pivot at column %d: %w", j, array.ErrInvalidArgument)
		}
		d[j] = s
		for i := j + 1; i < n; i++ {
			s := a.At(i, j)
			for k := 0; k < j; k++ {
				s -= ld[i*n+k] * ld[j*n+k] * d[k]
			}
			ld[i*n+j] = s / d[j]
		}
	}
	return &LDL{l: l, d: d}, nil
}

// L returns the unit lower triangular factor.
func (f *LDL) L() *array.Dense[float64] {
	return f.l.Clone()
}

// D returns the diagonal factor as a full matrix, built through the
// diagonal-construction view.
func (f *LDL) D() *array.Dense[float64] {
	dv, err := array.FromSlice(f.d, array.Shape{len(f.d)})
	if err != nil {
		panic(err) // lengths match by construction
	}
	return array.Materialize(array.DiagMatrix(dv, 0))
}

// Diag returns the diagonal of D.
func (f *LDL) Diag() []float64 {
	return append([]float64(nil), f.d...)
}

// Det returns the determinant: the product of D's diagonal.
func (f *LDL) Det() float64 {
	det := 1.0
	for _, v := range f.d {
		det *= v
	}
	return det
}

// Solve solves A*x = b via L*y = b, D*z = y, Lᵀ*x = z.
func (f *LDL) Solve(b array.Expr[float64]) (*array.Dense[float64], error) {
	n := len(f.d)
	bs := b.Shape()
	if len(bs) != 1 || bs[0] != n {
		return nil, fmt.Errorf("ldl solve: rhs shape %v, want (%d): %w", []int(bs), n, array.ErrShape)
	}
	x := array.Zeros[float64](array.Shape{n})
	xd := x.Data()
	ld := f.l.Data()
	for i := 0; i < n; i++ {
		s := b.At(i)
		for j := 0; j < i; j++ {
			s -= ld[i*n+j] * xd[j]
		}
		xd[i] = s
	}
	for i := 0; i < n; i++ {
		xd[i] /= f.d[i]
	}
	for i := n - 1; i >= 0; i-- {
		s := xd[i]
		for j := i + 1; j < n; j++ {
			s -= ld[j*n+i] * xd[j]
		}
		xd[i] = s
	}
	return x, nil
}
