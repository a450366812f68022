package array

import "fmt"

// Selection views. Every combination of per-axis selectors (whole
// axis, range, scalar, integer list) is a single view type over a
// tagged selector union, with one generic accessor translating view
// coordinates to referent coordinates. When the referent is mutable,
// the view is too: writes land directly in the referent's storage,
// which is how fancy indexing works as an lvalue.

type selKind int

const (
	selAll selKind = iota
	selScalar
	selRange
	selList
)

// Sel selects elements along one axis of a selection view.
type Sel struct {
	kind selKind
	at   int
	rng  Rng
	list []int
}

// SelAll selects the whole axis.
func SelAll() Sel { return Sel{kind: selAll} }

// SelAt selects a single coordinate and drops the axis from the view.
func SelAt(i int) Sel { return Sel{kind: selScalar, at: i} }

// SelRange selects a strided range of the axis.
func SelRange(r Rng) Sel { return Sel{kind: selRange, rng: r} }

// SelList selects explicit coordinates, in order, possibly repeated.
func SelList(idxs ...int) Sel { return Sel{kind: selList, list: idxs} }

// axisSel is a validated, normalized per-axis selector.
type axisSel struct {
	kind  selKind
	at    int   // selScalar
	start int   // selRange
	step  int   // selRange
	count int   // view extent (unused for selScalar)
	list  []int // selList
}

// selExpr is the generic selection view.
type selExpr[T Value] struct {
	src   Expr[T]
	sels  []axisSel
	shape Shape
	mut   Mutable[T] // non-nil when writes are permitted
}

func (s *selExpr[T]) Shape() Shape   { return s.shape }
func (s *selExpr[T]) Layout() Layout { return s.src.Layout() }

// srcIndex translates a bounds-checked view index to a referent index.
func (s *selExpr[T]) srcIndex(ix Index) Index {
	src := make(Index, len(s.sels))
	v := 0
	for a, sel := range s.sels {
		switch sel.kind {
		case selScalar:
			src[a] = sel.at
			continue
		case selAll:
			src[a] = ix[v]
		case selRange:
			src[a] = sel.start + ix[v]*sel.step
		case selList:
			src[a] = sel.list[ix[v]]
		}
		v++
	}
	return src
}

func (s *selExpr[T]) At(ix ...int) T {
	if err := s.shape.CheckBounds(ix); err != nil {
		panic(err)
	}
	return s.src.At(s.srcIndex(ix)...)
}

func (s *selExpr[T]) Set(v T, ix ...int) {
	if s.mut == nil {
		panic(invalidArgf("selection: referent is not writable"))
	}
	if err := s.shape.CheckBounds(ix); err != nil {
		panic(err)
	}
	s.mut.Set(v, s.srcIndex(ix)...)
}

// Select builds a selection view of e from one selector per leading
// axis; axes beyond the selectors are included whole. Scalar selectors
// drop their axis from the view's shape. All bounds are validated
// here, eagerly. Panics on any violation.
func Select[T Value](e Expr[T], sels ...Sel) Mutable[T] {
	shape := e.Shape()
	if len(sels) > len(shape) {
		panic(invalidArgf("select: %d selectors for rank-%d expression", len(sels), len(shape)))
	}
	as := make([]axisSel, len(shape))
	var vshape Shape
	for a := range shape {
		sel := Sel{kind: selAll}
		if a < len(sels) {
			sel = sels[a]
		}
		switch sel.kind {
		case selAll:
			as[a] = axisSel{kind: selAll, count: shape[a]}
			vshape = append(vshape, shape[a])
		case selScalar:
			if sel.at < 0 || sel.at >= shape[a] {
				panic(outOfRangef("select: index %d out of range for axis %d with extent %d",
					sel.at, a, shape[a]))
			}
			as[a] = axisSel{kind: selScalar, at: sel.at}
		case selRange:
			start, step, count, err := sel.rng.normalize(shape[a])
			if err != nil {
				panic(fmt.Errorf("select: axis %d: %w", a, err))
			}
			as[a] = axisSel{kind: selRange, start: start, step: step, count: count}
			vshape = append(vshape, count)
		case selList:
			for _, i := range sel.list {
				if i < 0 || i >= shape[a] {
					panic(outOfRangef("select: index %d out of range for axis %d with extent %d",
						i, a, shape[a]))
				}
			}
			as[a] = axisSel{kind: selList, count: len(sel.list),
				list: append([]int(nil), sel.list...)}
			vshape = append(vshape, len(sel.list))
		}
	}
	mut, _ := e.(Mutable[T])
	return &selExpr[T]{src: e, sels: as, shape: vshape, mut: mut}
}

// Take returns a view selecting the given coordinates along one axis,
// NumPy fancy indexing. The result has the source shape with the
// indexed axis extent replaced by len(idxs).
func Take[T Value](e Expr[T], axis int, idxs []int) Mutable[T] {
	rank := len(e.Shape())
	if axis < 0 || axis >= rank {
		panic(outOfRangef("take: axis %d out of range for rank %d", axis, rank))
	}
	sels := make([]Sel, axis+1)
	for a := range sels {
		sels[a] = SelAll()
	}
	sels[axis] = SelList(idxs...)
	return Select(e, sels...)
}

// pickExpr is the coordinate-pair view: element i of the view is the
// referent element at (rows[i], cols[i]).
type pickExpr[T Value] struct {
	src        Expr[T]
	rows, cols []int
	mut        Mutable[T]
}

func (p *pickExpr[T]) Shape() Shape   { return Shape{len(p.rows)} }
func (p *pickExpr[T]) Layout() Layout { return p.src.Layout() }

func (p *pickExpr[T]) At(ix ...int) T {
	if err := p.Shape().CheckBounds(ix); err != nil {
		panic(err)
	}
	return p.src.At(p.rows[ix[0]], p.cols[ix[0]])
}

func (p *pickExpr[T]) Set(v T, ix ...int) {
	if p.mut == nil {
		panic(invalidArgf("pick: referent is not writable"))
	}
	if err := p.Shape().CheckBounds(ix); err != nil {
		panic(err)
	}
	p.mut.Set(v, p.rows[ix[0]], p.cols[ix[0]])
}

// Pick returns a 1-D view of a 2-D expression selecting the
// coordinate pairs (rows[i], cols[i]). The index arrays must have
// equal length. Panics on length or bounds violations.
func Pick[T Value](e Expr[T], rows, cols []int) Mutable[T] {
	s := e.Shape()
	if len(s) != 2 {
		panic(invalidArgf("pick: rank %d expression, want 2", len(s)))
	}
	if len(rows) != len(cols) {
		panic(shapeErrf("pick: %d row indices vs %d column indices", len(rows), len(cols)))
	}
	for i := range rows {
		if rows[i] < 0 || rows[i] >= s[0] {
			panic(outOfRangef("pick: index %d out of range for axis 0 with extent %d", rows[i], s[0]))
		}
		if cols[i] < 0 || cols[i] >= s[1] {
			panic(outOfRangef("pick: index %d out of range for axis 1 with extent %d", cols[i], s[1]))
		}
	}
	mut, _ := e.(Mutable[T])
	return &pickExpr[T]{
		src:  e,
		rows: append([]int(nil), rows...),
		cols: append([]int(nil), cols...),
		mut:  mut,
	}
}

// maskExpr is the boolean-mask view: a 1-D gather of the referent
// positions where the mask was true, in row-major order.
type maskExpr[T Value] struct {
	src  Expr[T]
	idxs []Index
	mut  Mutable[T]
}

func (m *maskExpr[T]) Shape() Shape   { return Shape{len(m.idxs)} }
func (m *maskExpr[T]) Layout() Layout { return m.src.Layout() }

func (m *maskExpr[T]) At(ix ...int) T {
	if err := m.Shape().CheckBounds(ix); err != nil {
		panic(err)
	}
	return m.src.At(m.idxs[ix[0]]...)
}

func (m *maskExpr[T]) Set(v T, ix ...int) {
	if m.mut == nil {
		panic(invalidArgf("mask: referent is not writable"))
	}
	if err := m.Shape().CheckBounds(ix); err != nil {
		panic(err)
	}
	m.mut.Set(v, m.idxs[ix[0]]...)
}

// MaskSelect returns a 1-D view of the elements of e where mask is
// true, in row-major order. The mask shape must equal e's shape
// exactly. Panics with an ErrShape-wrapped error otherwise.
func MaskSelect[T Value](e Expr[T], mask Expr[bool]) Mutable[T] {
	if !mask.Shape().Equal(e.Shape()) {
		panic(shapeErrf("mask: shape %v does not match indexed shape %v",
			[]int(mask.Shape()), []int(e.Shape())))
	}
	var idxs []Index
	for ix := range Indexes(e.Shape(), RowMajor) {
		if mask.At(ix...) {
			idxs = append(idxs, ix)
		}
	}
	mut, _ := e.(Mutable[T])
	return &maskExpr[T]{src: e, idxs: idxs, mut: mut}
}

// MaskAxis returns a view selecting the coordinates along one axis
// where mask is true. The mask length must equal the axis extent.
func MaskAxis[T Value](e Expr[T], axis int, mask []bool) Mutable[T] {
	rank := len(e.Shape())
	if axis < 0 || axis >= rank {
		panic(outOfRangef("mask: axis %d out of range for rank %d", axis, rank))
	}
	if len(mask) != e.Shape()[axis] {
		panic(shapeErrf("mask: length %d does not match extent %d of axis %d",
			len(mask), e.Shape()[axis], axis))
	}
	var idxs []int
	for i, keep := range mask {
		if keep {
			idxs = append(idxs, i)
		}
	}
	return Take(e, axis, idxs)
}
