package stats

import (
	"fmt"
	"iter"
	"math"
	"math/cmplx"

	"github.com/nd-ml/nd/internal/array"
)

// Mean returns the arithmetic mean of seq. An empty sequence is an
// ErrInvalidArgument failure.
func Mean[T array.Float](seq iter.Seq[T]) (T, error) {
	var sum T
	n := 0
	for v := range seq {
		sum += v
		n++
	}
	if n == 0 {
		return 0, fmt.Errorf("mean: empty range: %w", array.ErrInvalidArgument)
	}
	return sum / T(n), nil
}

// MeanComplex returns the arithmetic mean of a complex sequence.
func MeanComplex[T array.Complex](seq iter.Seq[T]) (T, error) {
	var sum T
	n := 0
	for v := range seq {
		sum += v
		n++
	}
	if n == 0 {
		return 0, fmt.Errorf("mean: empty range: %w", array.ErrInvalidArgument)
	}
	return sum / T(complex(float64(n), 0)), nil
}

// Variance returns the variance of seq with the given delta degrees
// of freedom: the sum of squared deviations from the mean divided by
// (n - ddof). Fails on an empty sequence, a negative ddof, or
// ddof >= n.
func Variance[T array.Float](seq iter.Seq[T], ddof int) (T, error) {
	if ddof < 0 {
		return 0, fmt.Errorf("variance: negative ddof %d: %w", ddof, array.ErrInvalidArgument)
	}
	mean, err := Mean(seq)
	if err != nil {
		return 0, fmt.Errorf("variance: %w", err)
	}
	var sq T
	n := 0
	for v := range seq {
		d := v - mean
		sq += d * d
		n++
	}
	if n-ddof <= 0 {
		return 0, fmt.Errorf("variance: ddof %d with %d elements: %w", ddof, n, array.ErrInvalidArgument)
	}
	return sq / T(n-ddof), nil
}

// Std returns the standard deviation: the square root of Variance.
func Std[T array.Float](seq iter.Seq[T], ddof int) (T, error) {
	v, err := Variance(seq, ddof)
	if err != nil {
		return 0, err
	}
	return T(math.Sqrt(float64(v))), nil
}

// VarianceComplex returns the variance of a complex sequence, reducing
// over the magnitude of each deviation from the mean. The result is
// real and non-negative.
func VarianceComplex[T array.Complex](seq iter.Seq[T], ddof int) (float64, error) {
	if ddof < 0 {
		return 0, fmt.Errorf("variance: negative ddof %d: %w", ddof, array.ErrInvalidArgument)
	}
	mean, err := MeanComplex(seq)
	if err != nil {
		return 0, fmt.Errorf("variance: %w", err)
	}
	sq := 0.0
	n := 0
	for v := range seq {
		d := cmplx.Abs(complex128(v - mean))
		sq += d * d
		n++
	}
	if n-ddof <= 0 {
		return 0, fmt.Errorf("variance: ddof %d with %d elements: %w", ddof, n, array.ErrInvalidArgument)
	}
	return sq / float64(n-ddof), nil
}

// ArgMax returns the flat position of the largest element, resolving
// ties by the earliest position. Fails on an empty sequence.
func ArgMax[T array.Num](seq iter.Seq[T]) (int, error) {
	best := -1
	var bv T
	i := 0
	for v := range seq {
		if best < 0 || v > bv {
			best, bv = i, v
		}
		i++
	}
	if best < 0 {
		return 0, fmt.Errorf("argmax: empty range: %w", array.ErrInvalidArgument)
	}
	return best, nil
}

// ArgMin returns the flat position of the smallest element, resolving
// ties by the earliest position. Fails on an empty sequence.
func ArgMin[T array.Num](seq iter.Seq[T]) (int, error) {
	best := -1
	var bv T
	i := 0
	for v := range seq {
		if best < 0 || v < bv {
			best, bv = i, v
		}
		i++
	}
	if best < 0 {
		return 0, fmt.Errorf("argmin: empty range: %w", array.ErrInvalidArgument)
	}
	return best, nil
}

// MinMax returns the smallest and largest elements in one pass.
// Fails on an empty sequence.
func MinMax[T array.Num](seq iter.Seq[T]) (lo, hi T, err error) {
	n := 0
	for v := range seq {
		if n == 0 {
			lo, hi = v, v
		} else {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		n++
	}
	if n == 0 {
		return lo, hi, fmt.Errorf("minmax: empty range: %w", array.ErrInvalidArgument)
	}
	return lo, hi, nil
}
