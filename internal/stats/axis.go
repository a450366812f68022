package stats

import (
	"fmt"

	"github.com/nd-ml/nd/internal/array"
)

// Axis reductions: each folds along one axis of an expression, driven
// by the axes iterator, and materializes a result of the remaining
// sub-shape without ever materializing the per-slice views.

// checkAxis validates an axis against an expression's rank.
func checkAxis[T array.Value](e array.Expr[T], axis int) error {
	if axis < 0 || axis >= len(e.Shape()) {
		return fmt.Errorf("axis %d out of range for rank %d: %w",
			axis, len(e.Shape()), array.ErrOutOfRange)
	}
	return nil
}

// ReduceAxis folds f along the given axis of e starting from init,
// producing an array whose shape is e's shape with that axis removed.
func ReduceAxis[T array.Value, A array.Value](e array.Expr[T], axis int, init A, f func(A, T) A) (*array.Dense[A], error) {
	if err := checkAxis(e, axis); err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}
	shape := e.Shape()
	out := array.Zeros[A](outShape(shape, axis))
	for ix := range array.Indexes(out.Shape(), array.RowMajor) {
		acc := init
		for v := range array.AxisValues(e, axis, ix) {
			acc = f(acc, v)
		}
		out.Set(acc, ix...)
	}
	return out, nil
}

// SumAxis sums along one axis.
func SumAxis[T array.Elem](e array.Expr[T], axis int) (*array.Dense[T], error) {
	out, err := ReduceAxis(e, axis, T(0), func(a, v T) T { return a + v })
	if err != nil {
		return nil, fmt.Errorf("sum: %w", err)
	}
	return out, nil
}

// ProdAxis multiplies along one axis.
func ProdAxis[T array.Elem](e array.Expr[T], axis int) (*array.Dense[T], error) {
	out, err := ReduceAxis(e, axis, T(1), func(a, v T) T { return a * v })
	if err != nil {
		return nil, fmt.Errorf("prod: %w", err)
	}
	return out, nil
}

// MeanAxis averages along one axis. The axis extent must be nonzero.
func MeanAxis[T array.Float](e array.Expr[T], axis int) (*array.Dense[T], error) {
	if err := checkAxis(e, axis); err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	n := e.Shape()[axis]
	if n == 0 {
		return nil, fmt.Errorf("mean: empty axis %d: %w", axis, array.ErrInvalidArgument)
	}
	sum, err := SumAxis(e, axis)
	if err != nil {
		return nil, err
	}
	return array.Materialize(array.Scale(sum, T(1)/T(n))), nil
}

// ArgMaxAxis returns, for each position of the remaining axes, the
// coordinate along the reduced axis of the largest element, earliest
// coordinate on ties. The axis extent must be nonzero.
func ArgMaxAxis[T array.Num](e array.Expr[T], axis int) (*array.Dense[int], error) {
	return argAxis(e, axis, "argmax", func(v, best T) bool { return v > best })
}

// ArgMinAxis is ArgMaxAxis for the smallest element.
func ArgMinAxis[T array.Num](e array.Expr[T], axis int) (*array.Dense[int], error) {
	return argAxis(e, axis, "argmin", func(v, best T) bool { return v < best })
}

func argAxis[T array.Num](e array.Expr[T], axis int, op string, better func(v, best T) bool) (*array.Dense[int], error) {
	if err := checkAxis(e, axis); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	shape := e.Shape()
	if shape[axis] == 0 {
		return nil, fmt.Errorf("%s: empty axis %d: %w", op, axis, array.ErrInvalidArgument)
	}
	out := array.Zeros[int](outShape(shape, axis))
	for ix := range array.Indexes(out.Shape(), array.RowMajor) {
		best := 0
		var bv T
		i := 0
		for v := range array.AxisValues(e, axis, ix) {
			if i == 0 || better(v, bv) {
				best, bv = i, v
			}
			i++
		}
		out.Set(best, ix...)
	}
	return out, nil
}

// outShape removes one axis from a shape.
func outShape(s array.Shape, axis int) array.Shape {
	out := make(array.Shape, 0, len(s)-1)
	for a, d := range s {
		if a != axis {
			out = append(out, d)
		}
	}
	return out
}
