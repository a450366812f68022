// Copyright 2026 The nd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stats is the public API of the reduction and statistics
// routines. Everything is parametrized over element sequences
// (iter.Seq), so the same algorithm runs over a plain slice, a dense
// array, a strided view, or a lazy expression through array.Values.
//
// Example:
//
//	a := array.Ones[float64](array.Shape{3, 4})
//	total := stats.Sum(array.Values[float64](a, array.RowMajor)) // 12
package stats

import (
	"iter"

	"github.com/nd-ml/nd/array"
	"github.com/nd-ml/nd/internal/stats"
)

// Method selects how Quantile interpolates between bracketing ranks.
type Method = stats.Method

// Quantile interpolation methods.
const (
	Lower    Method = stats.Lower
	Higher   Method = stats.Higher
	Nearest  Method = stats.Nearest
	Midpoint Method = stats.Midpoint
	Linear   Method = stats.Linear
)

// Reduce left-folds f over seq starting from init.
func Reduce[T, A any](seq iter.Seq[T], init A, f func(A, T) A) A {
	return stats.Reduce(seq, init, f)
}

// Accumulate writes the running fold of f over seq into out (prefix
// scan); the first output equals the first input. Returns the number
// of outputs written.
func Accumulate[T any](seq iter.Seq[T], out []T, f func(T, T) T) int {
	return stats.Accumulate(seq, out, f)
}

// Sum folds addition; an empty sequence yields 0.
func Sum[T array.Elem](seq iter.Seq[T]) T { return stats.Sum(seq) }

// Prod folds multiplication; an empty sequence yields 1.
func Prod[T array.Elem](seq iter.Seq[T]) T { return stats.Prod(seq) }

// All reports whether every element is true; vacuously true when empty.
func All(seq iter.Seq[bool]) bool { return stats.All(seq) }

// Any reports whether any element is true; false when empty.
func Any(seq iter.Seq[bool]) bool { return stats.Any(seq) }

// CountNonzero counts elements differing from the zero value.
func CountNonzero[T array.Value](seq iter.Seq[T]) int { return stats.CountNonzero(seq) }

// Mean returns the arithmetic mean; fails on an empty sequence.
func Mean[T array.Float](seq iter.Seq[T]) (T, error) { return stats.Mean(seq) }

// MeanComplex returns the arithmetic mean of a complex sequence.
func MeanComplex[T array.Complex](seq iter.Seq[T]) (T, error) { return stats.MeanComplex(seq) }

// Variance returns the variance with the given delta degrees of
// freedom; fails on an empty sequence or ddof >= n.
func Variance[T array.Float](seq iter.Seq[T], ddof int) (T, error) {
	return stats.Variance(seq, ddof)
}

// Std returns the standard deviation with the given delta degrees of
// freedom.
func Std[T array.Float](seq iter.Seq[T], ddof int) (T, error) {
	return stats.Std(seq, ddof)
}

// VarianceComplex returns the variance of a complex sequence, reduced
// over the magnitude of each deviation from the mean.
func VarianceComplex[T array.Complex](seq iter.Seq[T], ddof int) (float64, error) {
	return stats.VarianceComplex(seq, ddof)
}

// Median returns the 0.5 quantile with linear interpolation.
func Median[T array.Float](seq iter.Seq[T]) (T, error) { return stats.Median(seq) }

// Quantile returns the q-th quantile, 0 <= q <= 1, under the given
// interpolation method (empty means Linear).
func Quantile[T array.Float](seq iter.Seq[T], q float64, method Method) (T, error) {
	return stats.Quantile(seq, q, method)
}

// ArgMax returns the flat position of the largest element, earliest
// position on ties; fails on an empty sequence.
func ArgMax[T array.Num](seq iter.Seq[T]) (int, error) { return stats.ArgMax(seq) }

// ArgMin returns the flat position of the smallest element, earliest
// position on ties; fails on an empty sequence.
func ArgMin[T array.Num](seq iter.Seq[T]) (int, error) { return stats.ArgMin(seq) }

// MinMax returns the smallest and largest elements in one pass.
func MinMax[T array.Num](seq iter.Seq[T]) (lo, hi T, err error) { return stats.MinMax(seq) }

// Axis reductions.

// ReduceAxis folds f along one axis of e, producing an array with
// that axis removed.
func ReduceAxis[T, A array.Value](e array.Expr[T], axis int, init A, f func(A, T) A) (*array.Dense[A], error) {
	return stats.ReduceAxis(e, axis, init, f)
}

// SumAxis sums along one axis.
func SumAxis[T array.Elem](e array.Expr[T], axis int) (*array.Dense[T], error) {
	return stats.SumAxis(e, axis)
}

// ProdAxis multiplies along one axis.
func ProdAxis[T array.Elem](e array.Expr[T], axis int) (*array.Dense[T], error) {
	return stats.ProdAxis(e, axis)
}

// MeanAxis averages along one axis; the axis extent must be nonzero.
func MeanAxis[T array.Float](e array.Expr[T], axis int) (*array.Dense[T], error) {
	return stats.MeanAxis(e, axis)
}

// ArgMaxAxis returns the per-slice coordinate of the largest element
// along one axis, earliest coordinate on ties.
func ArgMaxAxis[T array.Num](e array.Expr[T], axis int) (*array.Dense[int], error) {
	return stats.ArgMaxAxis(e, axis)
}

// ArgMinAxis returns the per-slice coordinate of the smallest element
// along one axis, earliest coordinate on ties.
func ArgMinAxis[T array.Num](e array.Expr[T], axis int) (*array.Dense[int], error) {
	return stats.ArgMinAxis(e, axis)
}
