package array

import "iter"

// FlatIter walks an expression's flat positions in a chosen layout.
// Position arithmetic is O(1); the multi-index is decoded only on
// dereference. The usual pattern is
//
//	for it := NewFlatIter(e, layout); it.Next(); {
//		v := it.Value()
//	}
type FlatIter[T Value] struct {
	e      Expr[T]
	shape  Shape
	layout Layout
	ix     Index
	pos    int
	n      int
}

// NewFlatIter returns an iterator over e's elements in the given
// layout order, positioned before the first element.
func NewFlatIter[T Value](e Expr[T], layout Layout) *FlatIter[T] {
	shape := e.Shape()
	return &FlatIter[T]{
		e:      e,
		shape:  shape,
		layout: layout,
		ix:     make(Index, len(shape)),
		pos:    -1,
		n:      shape.NumElements(),
	}
}

// Next advances by one and reports whether a current element exists.
func (it *FlatIter[T]) Next() bool {
	it.pos++
	return it.pos < it.n
}

// Seek positions the iterator at the given flat position; the next
// Value reads that element. Panics when out of range.
func (it *FlatIter[T]) Seek(pos int) {
	if pos < 0 || pos >= it.n {
		panic(outOfRangef("seek: position %d out of range for %d elements", pos, it.n))
	}
	it.pos = pos
}

// Pos returns the current flat position.
func (it *FlatIter[T]) Pos() int { return it.pos }

// Len returns the total number of positions.
func (it *FlatIter[T]) Len() int { return it.n }

// Value dereferences the current position: the multi-index is decoded
// with Unravel and delegated to the expression's accessor.
func (it *FlatIter[T]) Value() T {
	UnravelInto(it.ix, it.pos, it.shape, it.layout)
	return it.e.At(it.ix...)
}

// Index returns the multi-index of the current position. The returned
// slice is reused by the iterator; clone it to retain.
func (it *FlatIter[T]) Index() Index {
	UnravelInto(it.ix, it.pos, it.shape, it.layout)
	return it.ix
}

// Values yields every element of e in the given layout order. The
// sequence is restartable: ranging again replays from position 0.
func Values[T Value](e Expr[T], layout Layout) iter.Seq[T] {
	return func(yield func(T) bool) {
		shape := e.Shape()
		n := shape.NumElements()
		ix := make(Index, len(shape))
		for i := 0; i < n; i++ {
			UnravelInto(ix, i, shape, layout)
			if !yield(e.At(ix...)) {
				return
			}
		}
	}
}

// Indexes yields every multi-index covering shape in the given layout
// order. Each yielded index is freshly allocated and safe to retain.
func Indexes(shape Shape, layout Layout) iter.Seq[Index] {
	return func(yield func(Index) bool) {
		n := shape.NumElements()
		for i := 0; i < n; i++ {
			if !yield(Unravel(i, shape, layout)) {
				return
			}
		}
	}
}

// AxesIter holds a fixed multi-index on a subset of axes and iterates
// the remaining ("free") axes over their own sub-shape. It drives
// per-slice reductions without materializing each slice.
type AxesIter[T Value] struct {
	e     Expr[T]
	free  []int
	sub   Shape
	full  Index
	subIx Index
	pos   int
	n     int
}

// NewAxesIter fixes coordinate fixedIx[i] on axis fixed[i] of e and
// iterates the remaining axes in row-major order of their sub-shape.
// Panics on repeated axes or out-of-range coordinates.
func NewAxesIter[T Value](e Expr[T], fixed []int, fixedIx Index) *AxesIter[T] {
	shape := e.Shape()
	rank := len(shape)
	if len(fixed) != len(fixedIx) {
		panic(invalidArgf("axes iter: %d fixed axes with %d coordinates", len(fixed), len(fixedIx)))
	}
	isFixed := make([]bool, rank)
	full := make(Index, rank)
	for i, a := range fixed {
		if a < 0 || a >= rank {
			panic(outOfRangef("axes iter: axis %d out of range for rank %d", a, rank))
		}
		if isFixed[a] {
			panic(invalidArgf("axes iter: axis %d repeated", a))
		}
		if fixedIx[i] < 0 || fixedIx[i] >= shape[a] {
			panic(outOfRangef("axes iter: index %d out of range for axis %d with extent %d",
				fixedIx[i], a, shape[a]))
		}
		isFixed[a] = true
		full[a] = fixedIx[i]
	}
	var free []int
	var sub Shape
	for a := 0; a < rank; a++ {
		if !isFixed[a] {
			free = append(free, a)
			sub = append(sub, shape[a])
		}
	}
	return &AxesIter[T]{
		e:     e,
		free:  free,
		sub:   sub,
		full:  full,
		subIx: make(Index, len(free)),
		pos:   -1,
		n:     sub.NumElements(),
	}
}

// SubShape returns the extents of the free axes.
func (it *AxesIter[T]) SubShape() Shape { return it.sub }

// Next advances to the next combination of free-axis coordinates.
func (it *AxesIter[T]) Next() bool {
	it.pos++
	return it.pos < it.n
}

// Value dereferences the expression at the fixed coordinates combined
// with the current free-axis coordinates.
func (it *AxesIter[T]) Value() T {
	UnravelInto(it.subIx, it.pos, it.sub, RowMajor)
	for i, a := range it.free {
		it.full[a] = it.subIx[i]
	}
	return it.e.At(it.full...)
}

// Reset rewinds the iterator before the first combination.
func (it *AxesIter[T]) Reset() { it.pos = -1 }

// AxisValues yields the elements along one axis of e with all other
// coordinates held at ix (which must omit the iterated axis).
func AxisValues[T Value](e Expr[T], axis int, ix Index) iter.Seq[T] {
	return func(yield func(T) bool) {
		shape := e.Shape()
		full := make(Index, len(shape))
		for a, i := 0, 0; a < len(shape); a++ {
			if a == axis {
				continue
			}
			full[a] = ix[i]
			i++
		}
		for i := 0; i < shape[axis]; i++ {
			full[axis] = i
			if !yield(e.At(full...)) {
				return
			}
		}
	}
}
