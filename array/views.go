// Copyright 2026 The nd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/nd-ml/nd/internal/array"
)

// Structural and selection views. Views never own elements: they
// reference the expression they were built from, and writes through a
// mutable view land in the referent's storage.

// Rng selects elements along one axis; see All, Rev, NewRng,
// NewRngStep for construction.
type Rng = array.Rng

// All selects every index of an axis.
func All() Rng { return array.All() }

// Rev selects every index of an axis in reverse order.
func Rev() Rng { return array.Rev() }

// NewRng selects [start, stop) with step 1.
func NewRng(start, stop int) Rng { return array.NewRng(start, stop) }

// NewRngStep selects [start, stop) with the given nonzero step.
func NewRngStep(start, stop, step int) Rng { return array.NewRngStep(start, stop, step) }

// Sel selects elements along one axis of a selection view.
type Sel = array.Sel

// SelAll selects the whole axis.
func SelAll() Sel { return array.SelAll() }

// SelAt selects a single coordinate and drops the axis.
func SelAt(i int) Sel { return array.SelAt(i) }

// SelRange selects a strided range of the axis.
func SelRange(r Rng) Sel { return array.SelRange(r) }

// SelList selects explicit coordinates, in order, possibly repeated.
func SelList(idxs ...int) Sel { return array.SelList(idxs...) }

// Diag returns a 1-D view of the k-offset diagonal of a 2-D
// expression.
func Diag[T Elem](e Expr[T], k int) Expr[T] { return array.Diag(e, k) }

// DiagMatrix returns a 2-D view placing a 1-D source on the k-offset
// diagonal, with the additive identity elsewhere.
func DiagMatrix[T Elem](v Expr[T], k int) Expr[T] { return array.DiagMatrix(v, k) }

// TriL keeps elements on or below the k-offset diagonal of a 2-D
// expression and masks the rest to the additive identity.
func TriL[T Elem](e Expr[T], k int) Expr[T] { return array.TriL(e, k) }

// TriU keeps elements on or above the k-offset diagonal of a 2-D
// expression and masks the rest to the additive identity.
func TriU[T Elem](e Expr[T], k int) Expr[T] { return array.TriU(e, k) }

// EyeExpr returns a storage-free rows×cols matrix with ones on the
// k-offset diagonal.
func EyeExpr[T Elem](rows, cols, k int) Expr[T] { return array.EyeExpr[T](rows, cols, k) }

// Seq returns a storage-free 1-D expression of n evenly spaced values
// from start to stop inclusive.
func Seq[T Float](start, stop T, n int) Expr[T] { return array.Seq(start, stop, n) }

// LogSeq returns a storage-free 1-D expression of base^e for n evenly
// spaced exponents.
func LogSeq[T Float](start, stop T, n int, base T) Expr[T] {
	return array.LogSeq(start, stop, n, base)
}

// Select builds a selection view from one selector per leading axis;
// scalar selectors drop their axis. Bounds are validated eagerly.
func Select[T Value](e Expr[T], sels ...Sel) Mutable[T] { return array.Select(e, sels...) }

// Take selects the given coordinates along one axis (fancy indexing).
func Take[T Value](e Expr[T], axis int, idxs []int) Mutable[T] {
	return array.Take(e, axis, idxs)
}

// Pick returns a 1-D view of a 2-D expression selecting the
// coordinate pairs (rows[i], cols[i]).
func Pick[T Value](e Expr[T], rows, cols []int) Mutable[T] {
	return array.Pick(e, rows, cols)
}

// MaskSelect returns a 1-D view of the elements of e where mask is
// true, in row-major order; the mask shape must equal e's shape.
func MaskSelect[T Value](e Expr[T], mask Expr[bool]) Mutable[T] {
	return array.MaskSelect(e, mask)
}

// MaskAxis selects the coordinates along one axis where mask is true;
// the mask length must equal the axis extent.
func MaskAxis[T Value](e Expr[T], axis int, mask []bool) Mutable[T] {
	return array.MaskAxis(e, axis, mask)
}
