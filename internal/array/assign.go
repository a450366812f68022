package array

// Assign evaluates src once per element into dst, in dst's layout
// order, broadcasting src to dst's shape. The shape check runs before
// any element is written, so a mismatch leaves dst unmodified. Panics
// with an ErrShape-wrapped error on incompatible shapes.
func Assign[T Value](dst Mutable[T], src Expr[T]) {
	shape := dst.Shape()
	e := BroadcastTo(src, shape) // validates compatibility up front
	n := shape.NumElements()
	ix := make(Index, len(shape))
	for i := 0; i < n; i++ {
		UnravelInto(ix, i, shape, dst.Layout())
		dst.Set(e.At(ix...), ix...)
	}
}

// AssignSlice copies the given elements into dst in dst's layout
// order. The element count must match exactly; no broadcasting.
func AssignSlice[T Value](dst Mutable[T], data []T) {
	shape := dst.Shape()
	if shape.NumElements() != len(data) {
		panic(shapeErrf("assign: shape %v requires %d elements, got %d",
			[]int(shape), shape.NumElements(), len(data)))
	}
	n := len(data)
	ix := make(Index, len(shape))
	for i := 0; i < n; i++ {
		UnravelInto(ix, i, shape, dst.Layout())
		dst.Set(data[i], ix...)
	}
}

// Fill broadcasts a scalar to every position of dst, unconditionally.
func Fill[T Value](dst Mutable[T], v T) {
	shape := dst.Shape()
	n := shape.NumElements()
	ix := make(Index, len(shape))
	for i := 0; i < n; i++ {
		UnravelInto(ix, i, shape, dst.Layout())
		dst.Set(v, ix...)
	}
}

// Compound assignment. Each validates broadcast compatibility before
// mutating anything and evaluates in dst's layout order. When src
// aliases dst the per-element read happens before the write at the
// same position, matching in-place semantics.

// AddAssign is dst += src with broadcasting.
func AddAssign[T Elem](dst Mutable[T], src Expr[T]) {
	compound(dst, src, func(x, y T) T { return x + y })
}

// SubAssign is dst -= src with broadcasting.
func SubAssign[T Elem](dst Mutable[T], src Expr[T]) {
	compound(dst, src, func(x, y T) T { return x - y })
}

// MulAssign is dst *= src with broadcasting.
func MulAssign[T Elem](dst Mutable[T], src Expr[T]) {
	compound(dst, src, func(x, y T) T { return x * y })
}

// DivAssign is dst /= src with broadcasting.
func DivAssign[T Elem](dst Mutable[T], src Expr[T]) {
	compound(dst, src, func(x, y T) T { return x / y })
}

func compound[T Elem](dst Mutable[T], src Expr[T], f func(T, T) T) {
	shape := dst.Shape()
	e := BroadcastTo(src, shape)
	n := shape.NumElements()
	ix := make(Index, len(shape))
	for i := 0; i < n; i++ {
		UnravelInto(ix, i, shape, dst.Layout())
		dst.Set(f(dst.At(ix...), e.At(ix...)), ix...)
	}
}
