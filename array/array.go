// Copyright 2026 The nd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array is the public API of the n-dimensional array engine.
//
// The package re-exports the core types and operations:
//   - Dense[T]: owning n-dimensional array with strided views
//   - Expr[T]: uniform capability set over arrays, views, and lazy nodes
//   - Broadcasting, lazy elementwise arithmetic, structural views
//   - Flat, index, and axes iterators over any expression
//
// Example:
//
//	a := array.Ones[float64](array.Shape{3, 1})
//	b := array.Ones[float64](array.Shape{1, 4})
//	c := array.Materialize(array.Add(a, b)) // shape (3, 4), all 2s
package array

import (
	"github.com/nd-ml/nd/internal/array"
)

// Core type aliases.

// Shape is the ordered sequence of per-axis extents of an array.
type Shape = array.Shape

// Index is a multi-index: one coordinate per axis of a Shape.
type Index = array.Index

// Layout selects the axis traversal order mapping flat positions to
// multi-indices.
type Layout = array.Layout

// Layout constants.
const (
	RowMajor Layout = array.RowMajor
	ColMajor Layout = array.ColMajor
)

// Dense is an owning n-dimensional array; structural methods return
// strided views sharing its buffer.
type Dense[T Value] = array.Dense[T]

// Expr is any tensor expression: an owning Dense, a view, or a lazy
// operation node.
type Expr[T Value] = array.Expr[T]

// Mutable is an expression whose elements can be written.
type Mutable[T Value] = array.Mutable[T]

// Element type constraints.
type (
	// Value is the constraint for storable element types.
	Value = array.Value
	// Elem is the constraint for arithmetic element types.
	Elem = array.Elem
	// Num is the constraint for real numeric element types.
	Num = array.Num
	// Float is the constraint for floating-point element types.
	Float = array.Float
	// Complex is the constraint for complex element types.
	Complex = array.Complex
)

// Error kinds. Classify failures (returned or recovered from panics)
// with errors.Is.
var (
	ErrOutOfRange      = array.ErrOutOfRange
	ErrShape           = array.ErrShape
	ErrInvalidArgument = array.ErrInvalidArgument
)

// Shape/index primitives.

// Ravel maps a multi-index to its flat position under a layout.
func Ravel(ix Index, s Shape, layout Layout) int {
	return array.Ravel(ix, s, layout)
}

// Unravel maps a flat position back to a multi-index; the inverse of
// Ravel for any in-bounds index.
func Unravel(flat int, s Shape, layout Layout) Index {
	return array.Unravel(flat, s, layout)
}

// Broadcast combines two shapes under NumPy broadcasting rules.
func Broadcast(a, b Shape) (Shape, error) {
	return array.Broadcast(a, b)
}

// Creation functions.

// Zeros creates an array filled with the additive identity.
func Zeros[T Value](shape Shape) *Dense[T] {
	return array.Zeros[T](shape)
}

// Ones creates an array filled with the multiplicative identity.
func Ones[T Elem](shape Shape) *Dense[T] {
	return array.Ones[T](shape)
}

// Full creates an array filled with a specific value.
func Full[T Value](shape Shape, v T) *Dense[T] {
	return array.Full(shape, v)
}

// FromSlice creates a row-major array copying the given elements.
func FromSlice[T Value](data []T, shape Shape) (*Dense[T], error) {
	return array.FromSlice(data, shape)
}

// FromFunc creates an array whose element at each index is f(index).
func FromFunc[T Value](shape Shape, f func(ix Index) T) (*Dense[T], error) {
	return array.FromFunc(shape, f)
}

// Arange creates a 1-D array of values from start below stop in
// increments of step.
func Arange[T Num](start, stop, step T) (*Dense[T], error) {
	return array.Arange(start, stop, step)
}

// Linspace creates a 1-D array of n evenly spaced values from start
// to stop inclusive.
func Linspace[T Float](start, stop T, n int) (*Dense[T], error) {
	return array.Linspace(start, stop, n)
}

// Logspace creates a 1-D array of n values base^e for exponents
// evenly spaced from start to stop inclusive.
func Logspace[T Float](start, stop T, n int, base T) (*Dense[T], error) {
	return array.Logspace(start, stop, n, base)
}

// Eye creates an n×n identity matrix.
func Eye[T Elem](n int) *Dense[T] {
	return array.Eye[T](n)
}

// Rand creates an array of uniform values in [0, 1).
func Rand[T Float](shape Shape) *Dense[T] {
	return array.Rand[T](shape)
}

// Randn creates an array of standard normal values.
func Randn[T Float](shape Shape) *Dense[T] {
	return array.Randn[T](shape)
}

// NewDense allocates a zeroed array with the given shape and layout.
func NewDense[T Value](shape Shape, layout Layout) (*Dense[T], error) {
	return array.NewDenseLayout[T](shape, layout)
}
