package array

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyEqualsEager(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	b, err := FromSlice([]float64{10, 20, 30, 40, 50, 60}, Shape{2, 3})
	require.NoError(t, err)

	sum := Materialize(Add[float64](a, b))
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.At(i, j)+b.At(i, j), sum.At(i, j))
		}
	}
}

func TestArithmetic(t *testing.T) {
	a, _ := FromSlice([]float64{6, 8}, Shape{2})
	b, _ := FromSlice([]float64{2, 4}, Shape{2})

	assert.Equal(t, []float64{4, 4}, Materialize(Sub[float64](a, b)).Data())
	assert.Equal(t, []float64{12, 32}, Materialize(Mul[float64](a, b)).Data())
	assert.Equal(t, []float64{3, 2}, Materialize(Div[float64](a, b)).Data())
	assert.Equal(t, []float64{-6, -8}, Materialize(Neg[float64](a)).Data())
	assert.Equal(t, []float64{18, 24}, Materialize(Scale[float64](a, 3)).Data())
	assert.Equal(t, []float64{7, 9}, Materialize(Shift[float64](a, 1)).Data())
}

func TestBroadcastAdd(t *testing.T) {
	col, _ := FromSlice([]float64{0, 10, 20}, Shape{3, 1})
	row, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{1, 4})

	grid := Materialize(Add[float64](col, row))
	require.True(t, grid.Shape().Equal(Shape{3, 4}))
	assert.Equal(t, 1.0, grid.At(0, 0))
	assert.Equal(t, 24.0, grid.At(2, 3))
	assert.Equal(t, 12.0, grid.At(1, 1))
}

func TestBroadcastScalarOperand(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	s := Full[float64](Shape{}, 10)

	out := Materialize(Mul[float64](a, s))
	assert.Equal(t, []float64{10, 20, 30}, out.Data())
}

func TestZipShapeMismatchPanics(t *testing.T) {
	a := Zeros[float64](Shape{3, 2})
	b := Zeros[float64](Shape{4, 2})
	assert.Panics(t, func() { Add[float64](a, b) })
}

func TestBroadcastTo(t *testing.T) {
	v, _ := FromSlice([]int{1, 2, 3}, Shape{3})
	e := BroadcastTo[int](v, Shape{2, 3})
	require.True(t, e.Shape().Equal(Shape{2, 3}))
	assert.Equal(t, 2, e.At(0, 1))
	assert.Equal(t, 2, e.At(1, 1))

	// Broadcasting never widens a real axis.
	assert.Panics(t, func() { BroadcastTo[int](v, Shape{6}) })
}

func TestLazyViewReflectsWrites(t *testing.T) {
	a := Zeros[float64](Shape{2})
	doubled := Scale[float64](a, 2)
	assert.Equal(t, 0.0, doubled.At(1))
	a.Set(5, 1)
	assert.Equal(t, 10.0, doubled.At(1))
}

func TestMap(t *testing.T) {
	a, _ := FromSlice([]float64{1, 4, 9}, Shape{3})
	roots := Materialize(Map[float64, float64](a, math.Sqrt))
	assert.InDeltaSlice(t, []float64{1, 2, 3}, roots.Data(), 1e-12)

	big := Materialize(Map[float64, bool](a, func(x float64) bool { return x > 3 }))
	assert.Equal(t, []bool{false, true, true}, big.Data())
}

func TestComparisons(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]float64{3, 2, 1}, Shape{3})

	assert.Equal(t, []bool{false, true, false}, Materialize(Equal[float64](a, b)).Data())
	assert.Equal(t, []bool{true, false, true}, Materialize(NotEqual[float64](a, b)).Data())
	assert.Equal(t, []bool{false, false, true}, Materialize(Greater[float64](a, b)).Data())
	assert.Equal(t, []bool{false, true, true}, Materialize(GreaterEqual[float64](a, b)).Data())
	assert.Equal(t, []bool{true, false, false}, Materialize(Less[float64](a, b)).Data())
	assert.Equal(t, []bool{true, true, false}, Materialize(LessEqual[float64](a, b)).Data())
}

func TestWhere(t *testing.T) {
	a, _ := FromSlice([]float64{1, -2, 3, -4}, Shape{4})
	zeroes := Zeros[float64](Shape{4})

	pos := Materialize(Where(Greater[float64](a, zeroes), a, zeroes))
	assert.Equal(t, []float64{1, 0, 3, 0}, pos.Data())
}

func TestIsClose(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, math.NaN(), math.Inf(1)}, Shape{4})
	b, _ := FromSlice([]float64{1 + 1e-12, 2.5, math.NaN(), math.Inf(1)}, Shape{4})

	got := Materialize(IsClose[float64](a, b, 1e-9, 1e-9)).Data()
	assert.Equal(t, []bool{true, false, false, true}, got)

	assert.Panics(t, func() { IsClose[float64](a, b, -1, 0) })
}

func TestMaterializeLayout(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	c := MaterializeLayout[float64](a, ColMajor)
	require.Equal(t, ColMajor, c.Layout())
	// Same logical content, different flat order.
	assert.Equal(t, a.At(1, 2), c.At(1, 2))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, c.Data())
}

func TestCompoundAssign(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]float64{10, 20, 30}, Shape{3})

	AddAssign[float64](a, b)
	assert.Equal(t, []float64{11, 22, 33}, a.Data())
	SubAssign[float64](a, b)
	assert.Equal(t, []float64{1, 2, 3}, a.Data())
	MulAssign[float64](a, b)
	assert.Equal(t, []float64{10, 40, 90}, a.Data())
	DivAssign[float64](a, b)
	assert.Equal(t, []float64{1, 2, 3}, a.Data())
}

func TestAssignBroadcasts(t *testing.T) {
	dst := Zeros[float64](Shape{2, 3})
	row, _ := FromSlice([]float64{1, 2, 3}, Shape{3})

	Assign[float64](dst, row)
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, dst.Data())

	bad := Zeros[float64](Shape{4})
	assert.Panics(t, func() { Assign[float64](dst, bad) })
	// A failed assignment leaves the destination untouched.
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, dst.Data())
}
