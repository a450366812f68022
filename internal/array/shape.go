package array

// Layout selects the axis traversal order that maps a flat position
// to a multi-index.
type Layout int

const (
	// RowMajor iterates the last axis fastest (C order).
	RowMajor Layout = iota
	// ColMajor iterates the first axis fastest (Fortran order).
	ColMajor
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// Shape is the ordered sequence of per-axis extents of an array.
type Shape []int

// Index is a multi-index: one coordinate per axis of a Shape.
type Index []int

// Clone returns a copy of the index.
func (ix Index) Clone() Index {
	c := make(Index, len(ix))
	copy(c, ix)
	return c
}

// NumElements returns the total number of elements: the product of the
// extents, 1 for a rank-0 (scalar) shape, 0 if any extent is 0.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is non-negative.
// Zero extents are legal and yield an empty array.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return invalidArgf("shape: negative extent %d at axis %d", dim, i)
		}
	}
	return nil
}

// Equal checks if two shapes are equal axis-wise.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides computes contiguous strides for the shape under the given
// layout: stride[a] is the flat distance between neighbors along axis a.
func (s Shape) Strides(layout Layout) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	if layout == RowMajor {
		strides[len(s)-1] = 1
		for i := len(s) - 2; i >= 0; i-- {
			strides[i] = strides[i+1] * s[i+1]
		}
	} else {
		strides[0] = 1
		for i := 1; i < len(s); i++ {
			strides[i] = strides[i-1] * s[i-1]
		}
	}
	return strides
}

// CheckBounds validates a multi-index against the shape. The returned
// error wraps ErrOutOfRange (or ErrShape on a rank mismatch).
func (s Shape) CheckBounds(ix Index) error {
	if len(ix) != len(s) {
		return shapeErrf("index rank %d does not match shape rank %d", len(ix), len(s))
	}
	for a, c := range ix {
		if c < 0 || c >= s[a] {
			return outOfRangef("index %d out of range for axis %d with extent %d", c, a, s[a])
		}
	}
	return nil
}

// Ravel maps a multi-index to its flat position under the given layout.
// The index must be in bounds; callers bounds-check first.
func Ravel(ix Index, s Shape, layout Layout) int {
	flat := 0
	if layout == RowMajor {
		for a := 0; a < len(s); a++ {
			flat = flat*s[a] + ix[a]
		}
	} else {
		for a := len(s) - 1; a >= 0; a-- {
			flat = flat*s[a] + ix[a]
		}
	}
	return flat
}

// Unravel maps a flat position in [0, NumElements) back to a multi-index.
// It is the inverse of Ravel for any in-bounds index.
func Unravel(flat int, s Shape, layout Layout) Index {
	ix := make(Index, len(s))
	UnravelInto(ix, flat, s, layout)
	return ix
}

// UnravelInto is Unravel without the allocation; ix must have the
// shape's rank.
func UnravelInto(ix Index, flat int, s Shape, layout Layout) {
	if layout == RowMajor {
		for a := len(s) - 1; a >= 0; a-- {
			ix[a] = flat % s[a]
			flat /= s[a]
		}
	} else {
		for a := 0; a < len(s); a++ {
			ix[a] = flat % s[a]
			flat /= s[a]
		}
	}
}

// Broadcast combines two shapes under NumPy broadcasting rules:
// right-align the axes, pad the shorter shape with size-1 axes on the
// left, and take the larger of each compatible pair of extents. Two
// extents are compatible if equal or if either is 1.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(5)    + (3, 5) → (3, 5)
//	(3, 4) + (3, 5) → error
func Broadcast(a, b Shape) (Shape, error) {
	n := max(len(a), len(b))
	result := make(Shape, n)
	for i := 0; i < n; i++ {
		ad, bd := 1, 1
		if j := len(a) - 1 - i; j >= 0 {
			ad = a[j]
		}
		if j := len(b) - 1 - i; j >= 0 {
			bd = b[j]
		}
		switch {
		case ad == bd:
			result[n-1-i] = ad
		case ad == 1:
			result[n-1-i] = bd
		case bd == 1:
			result[n-1-i] = ad
		default:
			return nil, shapeErrf("shapes %v and %v are not broadcast-compatible at axis %d (%d vs %d)",
				[]int(a), []int(b), n-1-i, ad, bd)
		}
	}
	return result, nil
}
