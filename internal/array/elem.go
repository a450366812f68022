package array

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Complex is the constraint for complex element types.
type Complex interface {
	~complex64 | ~complex128
}

// Num is the constraint for real numeric element types, which support
// the full set of arithmetic and ordering operators.
type Num interface {
	~int | ~int32 | ~int64 | Float
}

// Elem is the constraint for arithmetic element types (real or complex).
type Elem interface {
	Num | Complex
}

// Value is the constraint for storable element types. It adds bool,
// which can be stored and compared but not used in arithmetic.
type Value interface {
	Elem | ~bool
}

// zero returns the additive identity of T.
func zero[T Value]() T {
	var z T
	return z
}

// one returns the multiplicative identity of T.
func one[T Elem]() T {
	return T(1)
}

// isNaN reports whether a float element is NaN, dispatching to the
// math32 kernel for 32-bit elements.
func isNaN[T Float](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return math32.IsNaN(x)
	default:
		return math.IsNaN(float64(v))
	}
}

// isFinite reports whether a float element is finite (not NaN or Inf).
func isFinite[T Float](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return !math32.IsInf(x, 0) && !math32.IsNaN(x)
	default:
		f := float64(v)
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	}
}

// fabs returns |v| without leaving the element type.
func fabs[T Float](v T) T {
	switch x := any(v).(type) {
	case float32:
		return T(math32.Abs(x))
	default:
		return T(math.Abs(float64(v)))
	}
}
