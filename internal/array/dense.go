package array

import "fmt"

// Dense is an owning n-dimensional array: a reference-counted
// contiguous buffer plus shape, per-axis strides, base offset, and
// layout. Structural methods (Slice, Transpose, Reshape) return
// strided views that share the buffer; element writes through a view
// are visible to every other view of the same buffer.
type Dense[T Value] struct {
	buf     *buffer[T]
	shape   Shape
	strides []int
	offset  int
	layout  Layout
}

// NewDense allocates a zeroed dense array with the given shape in
// row-major layout.
func NewDense[T Value](shape Shape) (*Dense[T], error) {
	return NewDenseLayout[T](shape, RowMajor)
}

// NewDenseLayout allocates a zeroed dense array with the given shape
// and layout.
func NewDenseLayout[T Value](shape Shape, layout Layout) (*Dense[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("new dense: %w", err)
	}
	return &Dense[T]{
		buf:     newBuffer[T](shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.Strides(layout),
		layout:  layout,
	}, nil
}

// Shape returns the array's shape.
func (d *Dense[T]) Shape() Shape { return d.shape }

// Layout returns the array's layout tag.
func (d *Dense[T]) Layout() Layout { return d.layout }

// Strides returns the array's per-axis strides.
func (d *Dense[T]) Strides() []int { return d.strides }

// Len returns the total number of elements.
func (d *Dense[T]) Len() int { return d.shape.NumElements() }

// flatOffset computes the buffer position of a bounds-checked index.
func (d *Dense[T]) flatOffset(ix Index) int {
	off := d.offset
	for a, c := range ix {
		off += c * d.strides[a]
	}
	return off
}

// At returns the element at the given multi-index.
// Panics with an ErrOutOfRange-wrapped error on a bad index.
func (d *Dense[T]) At(ix ...int) T {
	if err := d.shape.CheckBounds(ix); err != nil {
		panic(err)
	}
	return d.buf.data[d.flatOffset(ix)]
}

// Set writes the element at the given multi-index.
// Panics with an ErrOutOfRange-wrapped error on a bad index.
func (d *Dense[T]) Set(v T, ix ...int) {
	if err := d.shape.CheckBounds(ix); err != nil {
		panic(err)
	}
	d.buf.data[d.flatOffset(ix)] = v
}

// IsContiguous reports whether the elements are stored densely in the
// array's own layout order.
func (d *Dense[T]) IsContiguous() bool {
	want := d.shape.Strides(d.layout)
	for a := range want {
		// Zero-extent and size-1 axes have no addressable stride.
		if d.shape[a] > 1 && d.strides[a] != want[a] {
			return false
		}
	}
	return true
}

// Data returns the contiguous element slice backing the array.
// Panics for non-contiguous views; materialize with Copy first.
func (d *Dense[T]) Data() []T {
	if !d.IsContiguous() {
		panic(invalidArgf("data: array is not contiguous"))
	}
	return d.buf.data[d.offset : d.offset+d.Len()]
}

// Fill sets every element to v.
func (d *Dense[T]) Fill(v T) {
	if d.IsContiguous() {
		data := d.Data()
		for i := range data {
			data[i] = v
		}
		return
	}
	n := d.Len()
	ix := make(Index, len(d.shape))
	for i := 0; i < n; i++ {
		UnravelInto(ix, i, d.shape, d.layout)
		d.buf.data[d.flatOffset(ix)] = v
	}
}

// Clone returns a shallow view of the whole array: same buffer, one
// more reference. Cheap; mutations are shared.
func (d *Dense[T]) Clone() *Dense[T] {
	d.buf.addRef()
	return &Dense[T]{
		buf:     d.buf,
		shape:   d.shape.Clone(),
		strides: append([]int(nil), d.strides...),
		offset:  d.offset,
		layout:  d.layout,
	}
}

// Copy materializes a deep, contiguous copy in the array's own layout.
func (d *Dense[T]) Copy() *Dense[T] {
	out, err := NewDenseLayout[T](d.shape, d.layout)
	if err != nil {
		panic(err) // shape already validated
	}
	data := out.Data()
	n := d.Len()
	ix := make(Index, len(d.shape))
	for i := 0; i < n; i++ {
		UnravelInto(ix, i, d.shape, d.layout)
		data[i] = d.buf.data[d.flatOffset(ix)]
	}
	return out
}

// Release drops this holder's reference to the buffer, freeing it when
// no views remain.
func (d *Dense[T]) Release() {
	d.buf.release()
}

// Transpose returns a view with permuted axes. An empty permutation
// reverses all axes. Panics if the permutation is not a valid
// rearrangement of the axes.
func (d *Dense[T]) Transpose(axes ...int) *Dense[T] {
	n := len(d.shape)
	if len(axes) == 0 {
		axes = make([]int, n)
		for a := range axes {
			axes[a] = n - 1 - a
		}
	}
	if len(axes) != n {
		panic(invalidArgf("transpose: %d axes for rank-%d array", len(axes), n))
	}
	seen := make([]bool, n)
	v := d.Clone()
	for a, src := range axes {
		if src < 0 || src >= n {
			panic(outOfRangef("transpose: axis %d out of range for rank %d", src, n))
		}
		if seen[src] {
			panic(invalidArgf("transpose: axis %d repeated", src))
		}
		seen[src] = true
		v.shape[a] = d.shape[src]
		v.strides[a] = d.strides[src]
	}
	return v
}

// T is the 2-D transpose shortcut. Panics for non-2-D arrays.
func (d *Dense[T]) T() *Dense[T] {
	if len(d.shape) != 2 {
		panic(invalidArgf("T: rank %d array, want 2", len(d.shape)))
	}
	return d.Transpose(1, 0)
}

// Reshape returns a view with the same elements and a new shape.
// The element count must match. Non-contiguous views are materialized
// first, so the result of reshaping a strided view does not alias it.
func (d *Dense[T]) Reshape(sizes ...int) *Dense[T] {
	ns := Shape(sizes)
	if err := ns.Validate(); err != nil {
		panic(fmt.Errorf("reshape: %w", err))
	}
	if ns.NumElements() != d.Len() {
		panic(shapeErrf("reshape: %v has %d elements, %v has %d",
			[]int(d.shape), d.Len(), sizes, ns.NumElements()))
	}
	src := d
	if !d.IsContiguous() {
		src = d.Copy()
	} else {
		src = d.Clone()
	}
	src.shape = ns.Clone()
	src.strides = ns.Strides(src.layout)
	return src
}

// Rng selects elements along one axis: for i := Start; i != Stop; i += Step.
// Stop is exclusive. The zero value selects the whole axis. Step 0 means 1.
// For a positive step, Stop 0 means the axis extent. A negative step walks
// downward; there Stop may be -1 to include index 0, and Start 0 means the
// last index. Negative positions do not wrap around.
type Rng struct {
	Start int
	Stop  int
	Step  int
}

// All selects every index of an axis.
func All() Rng { return Rng{} }

// Rev selects every index of an axis in reverse order.
func Rev() Rng { return Rng{Stop: -1, Step: -1} }

// NewRng selects [start, stop) with step 1.
func NewRng(start, stop int) Rng { return Rng{Start: start, Stop: stop, Step: 1} }

// NewRngStep selects [start, stop) with the given nonzero step.
func NewRngStep(start, stop, step int) Rng { return Rng{Start: start, Stop: stop, Step: step} }

// normalize resolves defaults against an axis extent and returns the
// concrete (start, step, count). Errors wrap ErrOutOfRange or
// ErrInvalidArgument.
func (r Rng) normalize(size int) (start, step, count int, err error) {
	step = r.Step
	if step == 0 {
		step = 1
	}
	if step > 0 {
		start = r.Start
		stop := r.Stop
		if stop == 0 {
			stop = size // 0 default = whole extent
		}
		if start < 0 || start > size || stop < 0 || stop > size {
			return 0, 0, 0, outOfRangef("slice: range [%d:%d) out of range for extent %d", r.Start, r.Stop, size)
		}
		if stop > start {
			count = (stop - start + step - 1) / step
		}
		return start, step, count, nil
	}
	if size == 0 {
		return 0, step, 0, nil
	}
	start = r.Start
	if start == 0 {
		start = size - 1
	}
	stop := r.Stop
	if start < 0 || start >= size || stop < -1 || stop > size {
		return 0, 0, 0, outOfRangef("slice: range [%d:%d) out of range for extent %d", r.Start, r.Stop, size)
	}
	if start > stop {
		count = (start - stop - 1) / (-step) + 1
	}
	return start, step, count, nil
}

// Slice returns a strided view selecting the given range along each
// axis; axes beyond the provided ranges are included whole. Steps may
// be greater than one or negative. Panics on out-of-range bounds.
func (d *Dense[T]) Slice(rs ...Rng) *Dense[T] {
	if len(rs) > len(d.shape) {
		panic(invalidArgf("slice: %d ranges for rank-%d array", len(rs), len(d.shape)))
	}
	v := d.Clone()
	for a, r := range rs {
		start, step, count, err := r.normalize(d.shape[a])
		if err != nil {
			panic(fmt.Errorf("axis %d: %w", a, err))
		}
		v.offset += start * d.strides[a]
		v.strides[a] = d.strides[a] * step
		v.shape[a] = count
	}
	return v
}
