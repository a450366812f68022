// Package array implements the core n-dimensional array engine:
// shapes and layouts, owning dense storage, strided and structural
// views, lazy elementwise expressions with NumPy-style broadcasting,
// selection (slice / boolean-mask / integer-array) views, and flat
// and axes iterators.
//
// The public facade for this package is github.com/nd-ml/nd/array.
package array
