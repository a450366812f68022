package stats

import (
	"fmt"
	"iter"

	"github.com/nd-ml/nd/internal/array"
)

// Reduce left-folds f over seq starting from init. No identity is
// required of f; the caller supplies init.
func Reduce[T, A any](seq iter.Seq[T], init A, f func(A, T) A) A {
	acc := init
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}

// Accumulate writes the running fold of f over seq into out: one
// output per input, the first output equal to the first input. It
// returns the number of outputs written. Panics if out is shorter
// than seq.
func Accumulate[T any](seq iter.Seq[T], out []T, f func(T, T) T) int {
	n := 0
	for v := range seq {
		if n >= len(out) {
			panic(fmt.Errorf("accumulate: output length %d too short: %w", len(out), array.ErrShape))
		}
		if n == 0 {
			out[n] = v
		} else {
			out[n] = f(out[n-1], v)
		}
		n++
	}
	return n
}

// Sum folds addition over seq; an empty sequence yields the additive
// identity.
func Sum[T array.Elem](seq iter.Seq[T]) T {
	var acc T
	for v := range seq {
		acc += v
	}
	return acc
}

// Prod folds multiplication over seq; an empty sequence yields the
// multiplicative identity.
func Prod[T array.Elem](seq iter.Seq[T]) T {
	acc := T(1)
	for v := range seq {
		acc *= v
	}
	return acc
}

// All reports whether every element of seq is true; vacuously true on
// an empty sequence.
func All(seq iter.Seq[bool]) bool {
	for v := range seq {
		if !v {
			return false
		}
	}
	return true
}

// Any reports whether any element of seq is true; false on an empty
// sequence.
func Any(seq iter.Seq[bool]) bool {
	for v := range seq {
		if v {
			return true
		}
	}
	return false
}

// CountNonzero counts the elements of seq that differ from the zero
// value of T.
func CountNonzero[T array.Value](seq iter.Seq[T]) int {
	var zero T
	n := 0
	for v := range seq {
		if v != zero {
			n++
		}
	}
	return n
}
