package array

import (
	"fmt"
	"math"
	"math/rand"
)

// Zeros creates an array filled with the additive identity.
func Zeros[T Value](shape Shape) *Dense[T] {
	d, err := NewDense[T](shape)
	if err != nil {
		panic(err)
	}
	return d
}

// Ones creates an array filled with the multiplicative identity.
func Ones[T Elem](shape Shape) *Dense[T] {
	d := Zeros[T](shape)
	d.Fill(one[T]())
	return d
}

// Full creates an array filled with a specific value.
func Full[T Value](shape Shape, v T) *Dense[T] {
	d := Zeros[T](shape)
	d.Fill(v)
	return d
}

// FromSlice creates a row-major array that copies the given elements.
// The element count must match the shape.
func FromSlice[T Value](data []T, shape Shape) (*Dense[T], error) {
	if shape.NumElements() != len(data) {
		return nil, shapeErrf("from slice: shape %v requires %d elements, got %d",
			[]int(shape), shape.NumElements(), len(data))
	}
	d, err := NewDense[T](shape)
	if err != nil {
		return nil, err
	}
	copy(d.buf.data, data)
	return d, nil
}

// Arange creates a 1-D array with values start, start+step, ... below
// stop (above stop for negative steps). A zero step is invalid.
func Arange[T Num](start, stop, step T) (*Dense[T], error) {
	if step == 0 {
		return nil, invalidArgf("arange: zero step")
	}
	n := 0
	switch {
	case step > 0 && stop > start:
		n = int(math.Ceil(float64(stop-start) / float64(step)))
	case step < 0 && stop < start:
		n = int(math.Ceil(float64(start-stop) / float64(-step)))
	}
	d := Zeros[T](Shape{n})
	data := d.Data()
	v := start
	for i := range data {
		data[i] = v
		v += step
	}
	return d, nil
}

// Linspace creates a 1-D array of n evenly spaced values from start to
// stop inclusive.
func Linspace[T Float](start, stop T, n int) (*Dense[T], error) {
	if n < 0 {
		return nil, invalidArgf("linspace: negative count %d", n)
	}
	return Materialize(Seq(start, stop, n)), nil
}

// Logspace creates a 1-D array of n values base^e for e evenly spaced
// from start to stop inclusive.
func Logspace[T Float](start, stop T, n int, base T) (*Dense[T], error) {
	if n < 0 {
		return nil, invalidArgf("logspace: negative count %d", n)
	}
	return Materialize(LogSeq(start, stop, n, base)), nil
}

// Eye creates an n×n identity matrix.
func Eye[T Elem](n int) *Dense[T] {
	return Materialize(EyeExpr[T](n, n, 0))
}

// Rand creates an array of uniform values in [0, 1).
func Rand[T Float](shape Shape) *Dense[T] {
	d := Zeros[T](shape)
	data := d.Data()
	for i := range data {
		data[i] = T(rand.Float64())
	}
	return d
}

// Randn creates an array of standard normal values.
func Randn[T Float](shape Shape) *Dense[T] {
	d := Zeros[T](shape)
	data := d.Data()
	for i := range data {
		data[i] = T(rand.NormFloat64())
	}
	return d
}

// FromFunc creates a row-major array whose element at each multi-index
// is f(index).
func FromFunc[T Value](shape Shape, f func(ix Index) T) (*Dense[T], error) {
	d, err := NewDense[T](shape)
	if err != nil {
		return nil, fmt.Errorf("from func: %w", err)
	}
	data := d.Data()
	n := d.Len()
	ix := make(Index, len(shape))
	for i := 0; i < n; i++ {
		UnravelInto(ix, i, shape, RowMajor)
		data[i] = f(ix)
	}
	return d, nil
}
