// Copyright 2026 The nd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"iter"

	"github.com/nd-ml/nd/internal/array"
)

// Lazy expression composition. Every function here returns a node
// that defers all computation to element-access time; materialize
// with Materialize or assign into a Dense to evaluate.

// Len returns the total element count of an expression.
func Len[T Value](e Expr[T]) int {
	return array.Len(e)
}

// Materialize evaluates an expression once per element into a new
// owning Dense, in the expression's own layout.
func Materialize[T Value](e Expr[T]) *Dense[T] {
	return array.Materialize(e)
}

// MaterializeLayout evaluates into a new Dense with the given layout,
// which is also the evaluation order.
func MaterializeLayout[T Value](e Expr[T], layout Layout) *Dense[T] {
	return array.MaterializeLayout(e, layout)
}

// BroadcastTo returns a view of e stretched to the given shape.
func BroadcastTo[T Value](e Expr[T], shape Shape) Expr[T] {
	return array.BroadcastTo(e, shape)
}

// Map returns a lazy expression applying f to each element of e.
func Map[T, U Value](e Expr[T], f func(T) U) Expr[U] {
	return array.Map(e, f)
}

// Zip returns a lazy expression applying f pairwise to a and b after
// broadcasting them to their common shape.
func Zip[T, U Value](a, b Expr[T], f func(T, T) U) Expr[U] {
	return array.Zip(a, b, f)
}

// Add is the lazy elementwise sum a + b with broadcasting.
func Add[T Elem](a, b Expr[T]) Expr[T] { return array.Add(a, b) }

// Sub is the lazy elementwise difference a - b with broadcasting.
func Sub[T Elem](a, b Expr[T]) Expr[T] { return array.Sub(a, b) }

// Mul is the lazy elementwise product a * b with broadcasting.
func Mul[T Elem](a, b Expr[T]) Expr[T] { return array.Mul(a, b) }

// Div is the lazy elementwise quotient a / b with broadcasting.
func Div[T Elem](a, b Expr[T]) Expr[T] { return array.Div(a, b) }

// Neg is the lazy elementwise negation.
func Neg[T Elem](e Expr[T]) Expr[T] { return array.Neg(e) }

// Scale is the lazy elementwise product with a scalar.
func Scale[T Elem](e Expr[T], s T) Expr[T] { return array.Scale(e, s) }

// Shift is the lazy elementwise sum with a scalar.
func Shift[T Elem](e Expr[T], s T) Expr[T] { return array.Shift(e, s) }

// Equal is the lazy elementwise a == b with broadcasting.
func Equal[T Elem](a, b Expr[T]) Expr[bool] { return array.Equal(a, b) }

// NotEqual is the lazy elementwise a != b with broadcasting.
func NotEqual[T Elem](a, b Expr[T]) Expr[bool] { return array.NotEqual(a, b) }

// Greater is the lazy elementwise a > b with broadcasting.
func Greater[T Num](a, b Expr[T]) Expr[bool] { return array.Greater(a, b) }

// GreaterEqual is the lazy elementwise a >= b with broadcasting.
func GreaterEqual[T Num](a, b Expr[T]) Expr[bool] { return array.GreaterEqual(a, b) }

// Less is the lazy elementwise a < b with broadcasting.
func Less[T Num](a, b Expr[T]) Expr[bool] { return array.Less(a, b) }

// LessEqual is the lazy elementwise a <= b with broadcasting.
func LessEqual[T Num](a, b Expr[T]) Expr[bool] { return array.LessEqual(a, b) }

// Where selects x where cond is true and y elsewhere, broadcasting
// all three operands.
func Where[T Value](cond Expr[bool], x, y Expr[T]) Expr[T] {
	return array.Where(cond, x, y)
}

// IsClose is the lazy elementwise tolerance comparison
// |a-b| <= atol + rtol*|b|, false wherever either side is NaN.
func IsClose[T Float](a, b Expr[T], rtol, atol T) Expr[bool] {
	return array.IsClose(a, b, rtol, atol)
}

// Assignment. Each validates shape compatibility before mutating any
// element, so a failure leaves the target unmodified.

// Assign evaluates src once per element into dst, broadcasting src to
// dst's shape.
func Assign[T Value](dst Mutable[T], src Expr[T]) { array.Assign(dst, src) }

// AssignSlice copies the given elements into dst in dst's layout
// order; the count must match exactly.
func AssignSlice[T Value](dst Mutable[T], data []T) { array.AssignSlice(dst, data) }

// Fill broadcasts a scalar to every position of dst.
func Fill[T Value](dst Mutable[T], v T) { array.Fill(dst, v) }

// AddAssign is dst += src with broadcasting.
func AddAssign[T Elem](dst Mutable[T], src Expr[T]) { array.AddAssign(dst, src) }

// SubAssign is dst -= src with broadcasting.
func SubAssign[T Elem](dst Mutable[T], src Expr[T]) { array.SubAssign(dst, src) }

// MulAssign is dst *= src with broadcasting.
func MulAssign[T Elem](dst Mutable[T], src Expr[T]) { array.MulAssign(dst, src) }

// DivAssign is dst /= src with broadcasting.
func DivAssign[T Elem](dst Mutable[T], src Expr[T]) { array.DivAssign(dst, src) }

// Iterators.

// FlatIter walks an expression's flat positions in a chosen layout.
type FlatIter[T Value] = array.FlatIter[T]

// AxesIter holds a fixed multi-index on a subset of axes and iterates
// the remaining axes over their own sub-shape.
type AxesIter[T Value] = array.AxesIter[T]

// NewFlatIter returns an iterator over e's elements in the given
// layout order.
func NewFlatIter[T Value](e Expr[T], layout Layout) *FlatIter[T] {
	return array.NewFlatIter(e, layout)
}

// NewAxesIter fixes coordinate fixedIx[i] on axis fixed[i] of e and
// iterates the remaining axes.
func NewAxesIter[T Value](e Expr[T], fixed []int, fixedIx Index) *AxesIter[T] {
	return array.NewAxesIter(e, fixed, fixedIx)
}

// Values yields every element of e in the given layout order; the
// sequence is restartable.
func Values[T Value](e Expr[T], layout Layout) iter.Seq[T] {
	return array.Values(e, layout)
}

// Indexes yields every multi-index covering shape in the given layout
// order.
func Indexes(shape Shape, layout Layout) iter.Seq[Index] {
	return array.Indexes(shape, layout)
}
