package array

import "fmt"

// Expr is any tensor expression: an owning Dense, a structural or
// selection view, or a lazy operation node. Every expression exposes
// its shape, a preferred layout, and O(1) element access by
// multi-index; flat iteration in any layout is provided uniformly by
// the iterators in this package.
type Expr[T Value] interface {
	Shape() Shape
	Layout() Layout
	At(ix ...int) T
}

// Mutable is an expression whose elements can be written: an owning
// Dense or a selection view into one. Writes through a view land in
// the referent's storage.
type Mutable[T Value] interface {
	Expr[T]
	Set(v T, ix ...int)
}

// Len returns the total element count of an expression.
func Len[T Value](e Expr[T]) int {
	return e.Shape().NumElements()
}

// Materialize evaluates an expression once per element into a new
// owning Dense, in the expression's own layout.
func Materialize[T Value](e Expr[T]) *Dense[T] {
	return MaterializeLayout(e, e.Layout())
}

// MaterializeLayout evaluates an expression once per element into a
// new owning Dense with the given layout, which is also the
// evaluation order.
func MaterializeLayout[T Value](e Expr[T], layout Layout) *Dense[T] {
	if d, ok := e.(*Dense[T]); ok && d.layout == layout {
		return d.Copy()
	}
	shape := e.Shape()
	out, err := NewDenseLayout[T](shape, layout)
	if err != nil {
		panic(fmt.Errorf("materialize: %w", err))
	}
	data := out.Data()
	n := out.Len()
	ix := make(Index, len(shape))
	for i := 0; i < n; i++ {
		UnravelInto(ix, i, shape, layout)
		data[i] = e.At(ix...)
	}
	return out
}

// broadcastExpr stretches an expression to a larger shape with
// zero-stride semantics: size-1 axes and axes missing on the left
// always read coordinate 0 of the referent.
type broadcastExpr[T Value] struct {
	src   Expr[T]
	shape Shape
}

func (b *broadcastExpr[T]) Shape() Shape   { return b.shape }
func (b *broadcastExpr[T]) Layout() Layout { return b.src.Layout() }

func (b *broadcastExpr[T]) At(ix ...int) T {
	if err := b.shape.CheckBounds(ix); err != nil {
		panic(err)
	}
	ss := b.src.Shape()
	src := make(Index, len(ss))
	pad := len(b.shape) - len(ss)
	for a := range ss {
		c := ix[pad+a]
		if ss[a] == 1 {
			c = 0
		}
		src[a] = c
	}
	return b.src.At(src...)
}

// BroadcastTo returns a view of e stretched to the given shape.
// Panics with an ErrShape-wrapped error if e's shape does not
// broadcast to it.
func BroadcastTo[T Value](e Expr[T], shape Shape) Expr[T] {
	es := e.Shape()
	if es.Equal(shape) {
		return e
	}
	bs, err := Broadcast(es, shape)
	if err != nil {
		panic(err)
	}
	if !bs.Equal(shape) {
		panic(shapeErrf("broadcast: shape %v does not broadcast to %v", []int(es), []int(shape)))
	}
	return &broadcastExpr[T]{src: e, shape: shape.Clone()}
}

// mapExpr is a lazy unary node: f applied per element on access.
type mapExpr[T, U Value] struct {
	src Expr[T]
	f   func(T) U
}

func (m *mapExpr[T, U]) Shape() Shape   { return m.src.Shape() }
func (m *mapExpr[T, U]) Layout() Layout { return m.src.Layout() }
func (m *mapExpr[T, U]) At(ix ...int) U { return m.f(m.src.At(ix...)) }

// Map returns a lazy expression applying f to each element of e.
// No storage is allocated; every access recomputes f.
func Map[T, U Value](e Expr[T], f func(T) U) Expr[U] {
	return &mapExpr[T, U]{src: e, f: f}
}

// zipExpr is a lazy binary node over broadcast-aligned operands.
type zipExpr[T, U Value] struct {
	a, b  Expr[T]
	f     func(T, T) U
	shape Shape
}

func (z *zipExpr[T, U]) Shape() Shape   { return z.shape }
func (z *zipExpr[T, U]) Layout() Layout { return z.a.Layout() }
func (z *zipExpr[T, U]) At(ix ...int) U { return z.f(z.a.At(ix...), z.b.At(ix...)) }

// Zip returns a lazy expression applying f pairwise to a and b after
// broadcasting them to their common shape. Panics with an
// ErrShape-wrapped error if the shapes are incompatible.
func Zip[T, U Value](a, b Expr[T], f func(T, T) U) Expr[U] {
	shape, err := Broadcast(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}
	return &zipExpr[T, U]{
		a:     BroadcastTo(a, shape),
		b:     BroadcastTo(b, shape),
		f:     f,
		shape: shape,
	}
}

// Elementwise arithmetic. All of these are lazy: they compose nodes
// without touching element storage until materialized or iterated.

// Add is the lazy elementwise sum a + b with broadcasting.
func Add[T Elem](a, b Expr[T]) Expr[T] {
	return Zip(a, b, func(x, y T) T { return x + y })
}

// Sub is the lazy elementwise difference a - b with broadcasting.
func Sub[T Elem](a, b Expr[T]) Expr[T] {
	return Zip(a, b, func(x, y T) T { return x - y })
}

// Mul is the lazy elementwise product a * b with broadcasting.
func Mul[T Elem](a, b Expr[T]) Expr[T] {
	return Zip(a, b, func(x, y T) T { return x * y })
}

// Div is the lazy elementwise quotient a / b with broadcasting.
func Div[T Elem](a, b Expr[T]) Expr[T] {
	return Zip(a, b, func(x, y T) T { return x / y })
}

// Neg is the lazy elementwise negation.
func Neg[T Elem](e Expr[T]) Expr[T] {
	return Map(e, func(x T) T { return -x })
}

// Scale is the lazy elementwise product with a scalar.
func Scale[T Elem](e Expr[T], s T) Expr[T] {
	return Map(e, func(x T) T { return x * s })
}

// Shift is the lazy elementwise sum with a scalar.
func Shift[T Elem](e Expr[T], s T) Expr[T] {
	return Map(e, func(x T) T { return x + s })
}

// Comparisons. Each yields a lazy boolean expression.

// Equal is the lazy elementwise a == b with broadcasting.
func Equal[T Elem](a, b Expr[T]) Expr[bool] {
	return Zip(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the lazy elementwise a != b with broadcasting.
func NotEqual[T Elem](a, b Expr[T]) Expr[bool] {
	return Zip(a, b, func(x, y T) bool { return x != y })
}

// Greater is the lazy elementwise a > b with broadcasting.
func Greater[T Num](a, b Expr[T]) Expr[bool] {
	return Zip(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual is the lazy elementwise a >= b with broadcasting.
func GreaterEqual[T Num](a, b Expr[T]) Expr[bool] {
	return Zip(a, b, func(x, y T) bool { return x >= y })
}

// Less is the lazy elementwise a < b with broadcasting.
func Less[T Num](a, b Expr[T]) Expr[bool] {
	return Zip(a, b, func(x, y T) bool { return x < y })
}

// LessEqual is the lazy elementwise a <= b with broadcasting.
func LessEqual[T Num](a, b Expr[T]) Expr[bool] {
	return Zip(a, b, func(x, y T) bool { return x <= y })
}

// whereExpr selects between two aligned operands per element.
type whereExpr[T Value] struct {
	cond  Expr[bool]
	x, y  Expr[T]
	shape Shape
}

func (w *whereExpr[T]) Shape() Shape   { return w.shape }
func (w *whereExpr[T]) Layout() Layout { return w.x.Layout() }

func (w *whereExpr[T]) At(ix ...int) T {
	if w.cond.At(ix...) {
		return w.x.At(ix...)
	}
	return w.y.At(ix...)
}

// Where returns a lazy expression selecting x where cond is true and y
// elsewhere, broadcasting all three operands to a common shape.
func Where[T Value](cond Expr[bool], x, y Expr[T]) Expr[T] {
	shape, err := Broadcast(x.Shape(), y.Shape())
	if err != nil {
		panic(err)
	}
	shape, err = Broadcast(shape, cond.Shape())
	if err != nil {
		panic(err)
	}
	return &whereExpr[T]{
		cond:  BroadcastTo(cond, shape),
		x:     BroadcastTo(x, shape),
		y:     BroadcastTo(y, shape),
		shape: shape,
	}
}

// IsClose is the lazy elementwise tolerance comparison
// |a-b| <= atol + rtol*|b|, false wherever either side is NaN.
// Panics with an ErrInvalidArgument-wrapped error on negative
// tolerances.
func IsClose[T Float](a, b Expr[T], rtol, atol T) Expr[bool] {
	if rtol < 0 || atol < 0 {
		panic(invalidArgf("isclose: negative tolerance rtol=%v atol=%v", rtol, atol))
	}
	return Zip(a, b, func(x, y T) bool {
		if isNaN(x) || isNaN(y) {
			return false
		}
		if !isFinite(x) || !isFinite(y) {
			return x == y
		}
		return fabs(x-y) <= atol+rtol*fabs(y)
	})
}
