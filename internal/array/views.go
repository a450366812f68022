package array

import "math"

// diagExpr extracts the k-offset diagonal of a 2-D expression as a
// 1-D view.
type diagExpr[T Elem] struct {
	src Expr[T]
	k   int
	n   int
}

func (d *diagExpr[T]) Shape() Shape   { return Shape{d.n} }
func (d *diagExpr[T]) Layout() Layout { return d.src.Layout() }

func (d *diagExpr[T]) At(ix ...int) T {
	if err := (Shape{d.n}).CheckBounds(ix); err != nil {
		panic(err)
	}
	i := ix[0]
	if d.k >= 0 {
		return d.src.At(i, i+d.k)
	}
	return d.src.At(i-d.k, i)
}

// diagLen is the length of the k-offset diagonal of a rows×cols matrix.
func diagLen(rows, cols, k int) int {
	var n int
	if k >= 0 {
		n = min(rows, cols-k)
	} else {
		n = min(rows+k, cols)
	}
	return max(n, 0)
}

// Diag returns a 1-D view of the k-offset diagonal of a 2-D
// expression: element i maps to (i, i+k) for k >= 0, (i-k, i) for
// k < 0. The view may be empty when the offset falls outside the
// matrix. Panics for non-2-D sources.
func Diag[T Elem](e Expr[T], k int) Expr[T] {
	s := e.Shape()
	if len(s) != 2 {
		panic(invalidArgf("diag: rank %d expression, want 2", len(s)))
	}
	return &diagExpr[T]{src: e, k: k, n: diagLen(s[0], s[1], k)}
}

// diagMatExpr builds a square matrix with a 1-D source on the
// k-offset diagonal and the additive identity elsewhere.
type diagMatExpr[T Elem] struct {
	src Expr[T]
	k   int
	n   int
}

func (d *diagMatExpr[T]) Shape() Shape   { return Shape{d.n, d.n} }
func (d *diagMatExpr[T]) Layout() Layout { return d.src.Layout() }

func (d *diagMatExpr[T]) At(ix ...int) T {
	if err := d.Shape().CheckBounds(ix); err != nil {
		panic(err)
	}
	i, j := ix[0], ix[1]
	if j-i == d.k {
		if d.k >= 0 {
			return d.src.At(i)
		}
		return d.src.At(j)
	}
	return zero[T]()
}

// DiagMatrix returns a 2-D view placing a 1-D source of length n on
// the k-offset diagonal of an (n+|k|)×(n+|k|) matrix, with the
// additive identity elsewhere. Panics for non-1-D sources.
func DiagMatrix[T Elem](v Expr[T], k int) Expr[T] {
	s := v.Shape()
	if len(s) != 1 {
		panic(invalidArgf("diag matrix: rank %d expression, want 1", len(s)))
	}
	n := s[0] + k
	if k < 0 {
		n = s[0] - k
	}
	return &diagMatExpr[T]{src: v, k: k, n: n}
}

// triExpr masks a 2-D source outside a lower or upper triangle.
type triExpr[T Elem] struct {
	src   Expr[T]
	k     int
	lower bool
}

func (t *triExpr[T]) Shape() Shape   { return t.src.Shape() }
func (t *triExpr[T]) Layout() Layout { return t.src.Layout() }

func (t *triExpr[T]) At(ix ...int) T {
	if err := t.src.Shape().CheckBounds(ix); err != nil {
		panic(err)
	}
	i, j := ix[0], ix[1]
	if t.lower {
		if j <= i+t.k {
			return t.src.At(i, j)
		}
	} else if j >= i+t.k {
		return t.src.At(i, j)
	}
	return zero[T]()
}

func tri[T Elem](e Expr[T], k int, lower bool) Expr[T] {
	if len(e.Shape()) != 2 {
		panic(invalidArgf("triangular: rank %d expression, want 2", len(e.Shape())))
	}
	return &triExpr[T]{src: e, k: k, lower: lower}
}

// TriL returns a view of a 2-D expression keeping elements on or
// below the k-offset diagonal (j <= i+k) and masking the rest to the
// additive identity.
func TriL[T Elem](e Expr[T], k int) Expr[T] { return tri(e, k, true) }

// TriU returns a view of a 2-D expression keeping elements on or
// above the k-offset diagonal (j >= i+k) and masking the rest to the
// additive identity.
func TriU[T Elem](e Expr[T], k int) Expr[T] { return tri(e, k, false) }

// eyeExpr is a storage-free identity-like matrix.
type eyeExpr[T Elem] struct {
	rows, cols, k int
}

func (e *eyeExpr[T]) Shape() Shape   { return Shape{e.rows, e.cols} }
func (e *eyeExpr[T]) Layout() Layout { return RowMajor }

func (e *eyeExpr[T]) At(ix ...int) T {
	if err := e.Shape().CheckBounds(ix); err != nil {
		panic(err)
	}
	if ix[1]-ix[0] == e.k {
		return one[T]()
	}
	return zero[T]()
}

// EyeExpr returns a storage-free rows×cols matrix with the
// multiplicative identity on the k-offset diagonal and the additive
// identity elsewhere.
func EyeExpr[T Elem](rows, cols, k int) Expr[T] {
	if rows < 0 || cols < 0 {
		panic(invalidArgf("eye: negative size %d×%d", rows, cols))
	}
	return &eyeExpr[T]{rows: rows, cols: cols, k: k}
}

// seqExpr is a storage-free arithmetic progression; logBase != 0
// raises each term as base^term.
type seqExpr[T Float] struct {
	start, step T
	n           int
	base        T
	log         bool
}

func (s *seqExpr[T]) Shape() Shape   { return Shape{s.n} }
func (s *seqExpr[T]) Layout() Layout { return RowMajor }

func (s *seqExpr[T]) At(ix ...int) T {
	if err := s.Shape().CheckBounds(ix); err != nil {
		panic(err)
	}
	v := s.start + T(ix[0])*s.step
	if s.log {
		return T(math.Pow(float64(s.base), float64(v)))
	}
	return v
}

// Seq returns a storage-free 1-D expression of n evenly spaced values
// from start to stop inclusive.
func Seq[T Float](start, stop T, n int) Expr[T] {
	var step T
	if n > 1 {
		step = (stop - start) / T(n-1)
	}
	return &seqExpr[T]{start: start, step: step, n: n}
}

// LogSeq returns a storage-free 1-D expression of base^e for n
// exponents evenly spaced from start to stop inclusive.
func LogSeq[T Float](start, stop T, n int, base T) Expr[T] {
	var step T
	if n > 1 {
		step = (stop - start) / T(n-1)
	}
	return &seqExpr[T]{start: start, step: step, n: n, base: base, log: true}
}
