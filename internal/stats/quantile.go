package stats

import (
	"fmt"
	"iter"
	"math"

	"github.com/nd-ml/nd/internal/array"
)

// Method selects how Quantile interpolates between the two ranks
// bracketing the requested quantile.
type Method string

const (
	// Lower takes the value at the floor rank.
	Lower Method = "lower"
	// Higher takes the value at the ceiling rank.
	Higher Method = "higher"
	// Nearest takes the value at the closer rank; a tie at the exact
	// midpoint rounds up to the ceiling rank.
	Nearest Method = "nearest"
	// Midpoint averages the two bracketing values.
	Midpoint Method = "midpoint"
	// Linear interpolates between the two bracketing values by the
	// fractional rank. This is the default.
	Linear Method = "linear"
)

// Quantile returns the q-th quantile of seq, 0 <= q <= 1, using the
// given interpolation method (empty means Linear). It fails on an
// empty sequence, a q outside [0, 1], or an unrecognized method.
// Quantile(q=0) is the minimum and Quantile(q=1) the maximum.
//
// The selection is done with one partial quickselect pass at the floor
// rank plus a minimum scan of the tail for the ceiling rank, not a
// full sort.
func Quantile[T array.Float](seq iter.Seq[T], q float64, method Method) (T, error) {
	if method == "" {
		method = Linear
	}
	switch method {
	case Lower, Higher, Nearest, Midpoint, Linear:
	default:
		return 0, fmt.Errorf("quantile: unrecognized method %q: %w", method, array.ErrInvalidArgument)
	}
	if q < 0 || q > 1 || math.IsNaN(q) {
		return 0, fmt.Errorf("quantile: q=%v outside [0, 1]: %w", q, array.ErrInvalidArgument)
	}
	var vals []T
	for v := range seq {
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return 0, fmt.Errorf("quantile: empty range: %w", array.ErrInvalidArgument)
	}

	h := q * float64(len(vals)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	vlo := selectNth(vals, lo)
	vhi := vlo
	if hi != lo {
		// After the first selection everything above rank lo is >= vlo,
		// so the ceiling rank is the minimum of the tail.
		vhi = vals[lo+1]
		for _, v := range vals[lo+2:] {
			if v < vhi {
				vhi = v
			}
		}
	}

	switch method {
	case Lower:
		return vlo, nil
	case Higher:
		return vhi, nil
	case Nearest:
		if h-float64(lo) < 0.5 {
			return vlo, nil
		}
		return vhi, nil
	case Midpoint:
		return (vlo + vhi) / 2, nil
	default: // Linear
		frac := T(h - float64(lo))
		return vlo + frac*(vhi-vlo), nil
	}
}

// Median returns the 0.5 quantile with linear interpolation.
func Median[T array.Float](seq iter.Seq[T]) (T, error) {
	m, err := Quantile(seq, 0.5, Linear)
	if err != nil {
		return 0, fmt.Errorf("median: empty range: %w", array.ErrInvalidArgument)
	}
	return m, nil
}

// selectNth partially partitions vals so that vals[k] holds the
// element of rank k, everything before it is <= and everything after
// is >=. Returns vals[k]. Hoare-style quickselect with
// median-of-three pivoting.
func selectNth[T array.Float](vals []T, k int) T {
	left, right := 0, len(vals)-1
	for left < right {
		mid := left + (right-left)/2
		medianOfThree(vals, left, mid, right)
		pivot := vals[mid]
		i, j := left, right
		for i <= j {
			for vals[i] < pivot {
				i++
			}
			for vals[j] > pivot {
				j--
			}
			if i <= j {
				vals[i], vals[j] = vals[j], vals[i]
				i++
				j--
			}
		}
		if k <= j {
			right = j
		} else if k >= i {
			left = i
		} else {
			break
		}
	}
	return vals[k]
}

func medianOfThree[T array.Float](vals []T, a, b, c int) {
	if vals[b] < vals[a] {
		vals[a], vals[b] = vals[b], vals[a]
	}
	if vals[c] < vals[b] {
		vals[b], vals[c] = vals[c], vals[b]
	}
	if vals[b] < vals[a] {
		vals[a], vals[b] = vals[b], vals[a]
	}
}
