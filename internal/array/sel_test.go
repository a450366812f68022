package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid34(t *testing.T) *Dense[float64] {
	t.Helper()
	d, err := FromSlice([]float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}, Shape{3, 4})
	require.NoError(t, err)
	return d
}

func TestSelectScalarDropsAxis(t *testing.T) {
	a := grid34(t)

	row := Select[float64](a, SelAt(1))
	require.True(t, row.Shape().Equal(Shape{4}))
	assert.Equal(t, 6.0, row.At(2))

	cell := Select[float64](a, SelAt(2), SelAt(3))
	require.True(t, cell.Shape().Equal(Shape{}))
	assert.Equal(t, 11.0, cell.At())
}

func TestSelectMixed(t *testing.T) {
	a := grid34(t)

	v := Select[float64](a, SelRange(NewRng(1, 3)), SelList(3, 0, 0))
	require.True(t, v.Shape().Equal(Shape{2, 3}))
	assert.Equal(t, 7.0, v.At(0, 0))
	assert.Equal(t, 4.0, v.At(0, 1))
	assert.Equal(t, 8.0, v.At(1, 2))
}

func TestSelectTrailingAxesWhole(t *testing.T) {
	a := grid34(t)
	v := Select[float64](a, SelList(2, 0))
	require.True(t, v.Shape().Equal(Shape{2, 4}))
	assert.Equal(t, 9.0, v.At(0, 1))
	assert.Equal(t, 1.0, v.At(1, 1))
}

func TestSelectEagerValidation(t *testing.T) {
	a := grid34(t)
	assert.Panics(t, func() { Select[float64](a, SelAt(3)) })
	assert.Panics(t, func() { Select[float64](a, SelAll(), SelList(0, 4)) })
	assert.Panics(t, func() { Select[float64](a, SelAll(), SelAll(), SelAll()) })
	assert.Panics(t, func() { Select[float64](a, SelRange(NewRng(0, 5))) })
}

func TestSelectionLvalue(t *testing.T) {
	a := grid34(t)

	v := Select[float64](a, SelList(0, 2), SelAt(1))
	v.Set(-1, 0)
	v.Set(-2, 1)
	assert.Equal(t, -1.0, a.At(0, 1))
	assert.Equal(t, -2.0, a.At(2, 1))

	// Assignment broadcasts into the selection.
	col := Select[float64](a, SelAll(), SelAt(0))
	Assign[float64](col, Full[float64](Shape{}, 100))
	assert.Equal(t, 100.0, a.At(0, 0))
	assert.Equal(t, 100.0, a.At(1, 0))
	assert.Equal(t, 100.0, a.At(2, 0))
}

func TestSelectionOfImmutablePanicsOnWrite(t *testing.T) {
	e := EyeExpr[float64](3, 3, 0)
	v := Select[float64](e, SelAt(0))
	assert.Equal(t, 1.0, v.At(0))
	assert.Panics(t, func() { v.Set(5, 0) })
}

func TestTake(t *testing.T) {
	a := grid34(t)

	rows := Take[float64](a, 0, []int{2, 2, 0})
	require.True(t, rows.Shape().Equal(Shape{3, 4}))
	assert.Equal(t, 8.0, rows.At(0, 0))
	assert.Equal(t, 8.0, rows.At(1, 0))
	assert.Equal(t, 0.0, rows.At(2, 0))

	cols := Take[float64](a, 1, []int{3, 1})
	require.True(t, cols.Shape().Equal(Shape{3, 2}))
	assert.Equal(t, 3.0, cols.At(0, 0))
	assert.Equal(t, 5.0, cols.At(1, 1))

	assert.Panics(t, func() { Take[float64](a, 2, []int{0}) })
	assert.Panics(t, func() { Take[float64](a, 0, []int{3}) })
}

func TestPick(t *testing.T) {
	a := grid34(t)

	p := Pick[float64](a, []int{0, 1, 2}, []int{0, 2, 3})
	require.True(t, p.Shape().Equal(Shape{3}))
	assert.Equal(t, 0.0, p.At(0))
	assert.Equal(t, 6.0, p.At(1))
	assert.Equal(t, 11.0, p.At(2))

	p.Set(-7, 1)
	assert.Equal(t, -7.0, a.At(1, 2))

	assert.Panics(t, func() { Pick[float64](a, []int{0}, []int{0, 1}) })
	assert.Panics(t, func() { Pick[float64](a, []int{3}, []int{0}) })
}

func TestMaskSelect(t *testing.T) {
	a, _ := FromSlice([]float64{1, -2, 3, -4, 5}, Shape{5})
	mask := Materialize(Greater[float64](a, Zeros[float64](Shape{5})))

	pos := MaskSelect[float64](a, mask)
	require.True(t, pos.Shape().Equal(Shape{3}))
	assert.Equal(t, []float64{1, 3, 5}, Materialize[float64](pos).Data())

	// Masked assignment writes through to the referent.
	Fill[float64](pos, 0)
	assert.Equal(t, []float64{0, -2, 0, -4, 0}, a.Data())

	badMask := Zeros[bool](Shape{4})
	assert.Panics(t, func() { MaskSelect[float64](a, badMask) })
}

func TestMaskSelectRowMajorOrder(t *testing.T) {
	a := grid34(t)
	mask := Materialize(Greater[float64](a, Full[float64](Shape{}, 8)))
	got := Materialize[float64](MaskSelect[float64](a, mask)).Data()
	assert.Equal(t, []float64{9, 10, 11}, got)
}

func TestMaskAxis(t *testing.T) {
	a := grid34(t)

	v := MaskAxis[float64](a, 0, []bool{true, false, true})
	require.True(t, v.Shape().Equal(Shape{2, 4}))
	assert.Equal(t, 8.0, v.At(1, 0))

	assert.Panics(t, func() { MaskAxis[float64](a, 1, []bool{true}) })
	assert.Panics(t, func() { MaskAxis[float64](a, 2, []bool{true}) })
}
