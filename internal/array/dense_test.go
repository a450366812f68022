package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreation(t *testing.T) {
	z := Zeros[float64](Shape{2, 3})
	assert.True(t, z.Shape().Equal(Shape{2, 3}))
	assert.Equal(t, 6, z.Len())
	assert.Equal(t, 0.0, z.At(1, 2))

	o := Ones[int](Shape{4})
	for _, v := range o.Data() {
		assert.Equal(t, 1, v)
	}

	f := Full[float32](Shape{2, 2}, 3.5)
	assert.Equal(t, float32(3.5), f.At(0, 1))

	c := Full[complex128](Shape{2}, 1+2i)
	assert.Equal(t, 1+2i, c.At(1))
}

func TestFromSlice(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6.0, d.At(1, 2))
	assert.Equal(t, 2.0, d.At(0, 1))

	_, err = FromSlice([]float64{1, 2, 3}, Shape{2, 3})
	assert.ErrorIs(t, err, ErrShape)
}

func TestArange(t *testing.T) {
	d, err := Arange(0, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, d.Len())
	assert.Equal(t, 7, d.At(7))

	rev, err := Arange(5.0, 0.0, -2.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, 1}, rev.Data())

	_, err = Arange(0, 5, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLinspace(t *testing.T) {
	d, err := Linspace(0.0, 1.0, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, d.Data(), 1e-12)
}

func TestLogspace(t *testing.T) {
	d, err := Logspace(0.0, 3.0, 4, 10.0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 10, 100, 1000}, d.Data(), 1e-9)
}

func TestAtSetPanics(t *testing.T) {
	d := Zeros[float64](Shape{2, 3})
	assert.Panics(t, func() { d.At(2, 0) })
	assert.Panics(t, func() { d.At(0) })
	assert.Panics(t, func() { d.Set(1, 0, 3) })
}

func TestSetAliasing(t *testing.T) {
	a := Zeros[float64](Shape{5})
	v := a.Slice(NewRng(1, 4))
	require.True(t, v.Shape().Equal(Shape{3}))

	AssignSlice[float64](v, []float64{10, 20, 30})
	assert.Equal(t, []float64{0, 10, 20, 30, 0}, a.Data())

	// Writes through the base are visible in the view.
	a.Set(99, 2)
	assert.Equal(t, 99.0, v.At(1))
}

func TestSliceStep(t *testing.T) {
	a, err := Arange(0, 10, 1)
	require.NoError(t, err)

	ev := a.Slice(NewRngStep(0, 10, 2))
	assert.True(t, ev.Shape().Equal(Shape{5}))
	assert.Equal(t, 6, ev.At(3))

	rev := a.Slice(Rev())
	assert.Equal(t, 9, rev.At(0))
	assert.Equal(t, 0, rev.At(9))

	down := a.Slice(NewRngStep(8, 2, -3))
	assert.True(t, down.Shape().Equal(Shape{2}))
	assert.Equal(t, 8, down.At(0))
	assert.Equal(t, 5, down.At(1))

	assert.Panics(t, func() { a.Slice(NewRng(0, 11)) })

	// Reversing an empty axis yields an empty view, not a panic.
	empty := Zeros[float64](Shape{0})
	assert.NotPanics(t, func() {
		v := empty.Slice(Rev())
		assert.True(t, v.Shape().Equal(Shape{0}))
	})
}

func TestSlice2D(t *testing.T) {
	a, err := FromSlice([]int{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}, Shape{3, 4})
	require.NoError(t, err)

	v := a.Slice(NewRng(1, 3), NewRngStep(1, 4, 2))
	require.True(t, v.Shape().Equal(Shape{2, 2}))
	assert.Equal(t, 5, v.At(0, 0))
	assert.Equal(t, 7, v.At(0, 1))
	assert.Equal(t, 9, v.At(1, 0))
	assert.Equal(t, 11, v.At(1, 1))

	v.Set(-1, 1, 1)
	assert.Equal(t, -1, a.At(2, 3))
}

func TestTranspose(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	tr := a.T()
	require.True(t, tr.Shape().Equal(Shape{3, 2}))
	assert.Equal(t, a.At(1, 2), tr.At(2, 1))

	// A transposed view aliases the base.
	tr.Set(42, 0, 1)
	assert.Equal(t, 42, a.At(1, 0))

	b := Zeros[int](Shape{2, 3, 4})
	p := b.Transpose(2, 0, 1)
	assert.True(t, p.Shape().Equal(Shape{4, 2, 3}))

	assert.Panics(t, func() { a.Transpose(0, 0) })
	assert.Panics(t, func() { a.Transpose(0, 2) })
	assert.Panics(t, func() { b.T() })
}

func TestReshape(t *testing.T) {
	a, err := Arange(0, 12, 1)
	require.NoError(t, err)

	m := a.Reshape(3, 4)
	require.True(t, m.Shape().Equal(Shape{3, 4}))
	assert.Equal(t, 7, m.At(1, 3))

	// A contiguous reshape aliases the base.
	m.Set(-5, 0, 1)
	assert.Equal(t, -5, a.At(1))

	assert.Panics(t, func() { a.Reshape(5, 3) })
}

func TestCopyDetaches(t *testing.T) {
	a := Zeros[float64](Shape{4})
	c := a.Copy()
	c.Set(1, 0)
	assert.Equal(t, 0.0, a.At(0))
}

func TestColMajorDense(t *testing.T) {
	d, err := NewDenseLayout[float64](Shape{2, 3}, ColMajor)
	require.NoError(t, err)
	d.Set(7, 1, 0)
	// Col-major: first axis fastest, so (1,0) is flat position 1.
	assert.Equal(t, 7.0, d.Data()[1])
}

func TestDataNonContiguousPanics(t *testing.T) {
	a, err := Arange(0, 10, 1)
	require.NoError(t, err)
	v := a.Slice(NewRngStep(0, 10, 2))
	assert.Panics(t, func() { v.Data() })
	assert.NotPanics(t, func() { v.Copy().Data() })
}

func TestFillStrided(t *testing.T) {
	a := Zeros[int](Shape{6})
	v := a.Slice(NewRngStep(1, 6, 2))
	v.Fill(9)
	assert.Equal(t, []int{0, 9, 0, 9, 0, 9}, a.Data())
}
