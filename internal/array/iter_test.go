package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatIter(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	var got []int
	for it := NewFlatIter[int](a, RowMajor); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)

	got = got[:0]
	for it := NewFlatIter[int](a, ColMajor); it.Next(); {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, got)
}

func TestFlatIterSeek(t *testing.T) {
	a, _ := FromSlice([]int{10, 20, 30, 40}, Shape{4})
	it := NewFlatIter[int](a, RowMajor)
	it.Seek(2)
	assert.Equal(t, 30, it.Value())
	assert.Equal(t, 2, it.Pos())
	assert.Equal(t, 4, it.Len())
	require.True(t, it.Next())
	assert.Equal(t, 40, it.Value())
	assert.False(t, it.Next())

	assert.Panics(t, func() { it.Seek(4) })
	assert.Panics(t, func() { it.Seek(-1) })
}

func TestFlatIterIndex(t *testing.T) {
	a := Zeros[int](Shape{2, 2})
	it := NewFlatIter[int](a, RowMajor)
	it.Seek(3)
	assert.Equal(t, Index{1, 1}, it.Index())
}

func TestValuesOverView(t *testing.T) {
	a, _ := FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, Shape{10})
	v := a.Slice(NewRngStep(9, -1, -3))

	var got []int
	for x := range Values[int](v, RowMajor) {
		got = append(got, x)
	}
	assert.Equal(t, []int{9, 6, 3, 0}, got)
}

func TestValuesEarlyBreak(t *testing.T) {
	a, _ := FromSlice([]int{1, 2, 3, 4}, Shape{4})
	var got []int
	for x := range Values[int](a, RowMajor) {
		got = append(got, x)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestIndexesOrder(t *testing.T) {
	var got []Index
	for ix := range Indexes(Shape{2, 2}, RowMajor) {
		got = append(got, ix)
	}
	// Each yielded index is a fresh allocation; retaining is safe.
	assert.Equal(t, []Index{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, got)

	got = got[:0]
	for ix := range Indexes(Shape{2, 2}, ColMajor) {
		got = append(got, ix)
	}
	assert.Equal(t, []Index{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, got)
}

func TestAxesIter(t *testing.T) {
	a, _ := FromSlice([]int{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}, Shape{3, 4})

	// Fix row 1, iterate the columns.
	it := NewAxesIter[int](a, []int{0}, Index{1})
	require.True(t, it.SubShape().Equal(Shape{4}))
	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{4, 5, 6, 7}, got)

	it.Reset()
	require.True(t, it.Next())
	assert.Equal(t, 4, it.Value())

	// Fix column 2, iterate the rows.
	it = NewAxesIter[int](a, []int{1}, Index{2})
	got = got[:0]
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{2, 6, 10}, got)
}

func TestAxesIterAllFixed(t *testing.T) {
	a, _ := FromSlice([]int{1, 2, 3, 4}, Shape{2, 2})
	it := NewAxesIter[int](a, []int{0, 1}, Index{1, 0})
	require.True(t, it.Next())
	assert.Equal(t, 3, it.Value())
	assert.False(t, it.Next())
}

func TestAxesIterValidation(t *testing.T) {
	a := Zeros[int](Shape{2, 3})
	assert.Panics(t, func() { NewAxesIter[int](a, []int{0, 0}, Index{0, 0}) })
	assert.Panics(t, func() { NewAxesIter[int](a, []int{2}, Index{0}) })
	assert.Panics(t, func() { NewAxesIter[int](a, []int{1}, Index{3}) })
	assert.Panics(t, func() { NewAxesIter[int](a, []int{0}, Index{0, 1}) })
}

func TestAxisValues(t *testing.T) {
	a, _ := FromSlice([]int{
		0, 1, 2,
		3, 4, 5,
	}, Shape{2, 3})

	var got []int
	for v := range AxisValues[int](a, 1, Index{1}) {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 4, 5}, got)

	got = got[:0]
	for v := range AxisValues[int](a, 0, Index{2}) {
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 5}, got)
}
