package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nd-ml/nd/internal/array"
)

func grid23(t *testing.T) *array.Dense[float64] {
	t.Helper()
	d, err := array.FromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
	}, array.Shape{2, 3})
	require.NoError(t, err)
	return d
}

func TestSumAxis(t *testing.T) {
	a := grid23(t)

	cols, err := SumAxis[float64](a, 0)
	require.NoError(t, err)
	require.True(t, cols.Shape().Equal(array.Shape{3}))
	assert.Equal(t, []float64{5, 7, 9}, cols.Data())

	rows, err := SumAxis[float64](a, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, rows.Data())

	_, err = SumAxis[float64](a, 2)
	assert.ErrorIs(t, err, array.ErrOutOfRange)
}

func TestProdAxis(t *testing.T) {
	a := grid23(t)
	rows, err := ProdAxis[float64](a, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 120}, rows.Data())
}

func TestMeanAxis(t *testing.T) {
	a := grid23(t)

	rows, err := MeanAxis[float64](a, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, rows.Data())

	empty := array.Zeros[float64](array.Shape{0, 3})
	_, err = MeanAxis[float64](empty, 0)
	assert.ErrorIs(t, err, array.ErrInvalidArgument)
}

func TestArgAxis(t *testing.T) {
	a, err := array.FromSlice([]float64{
		3, 9, 9,
		7, 1, 8,
	}, array.Shape{2, 3})
	require.NoError(t, err)

	// Ties resolve to the earliest coordinate.
	rows, err := ArgMaxAxis[float64](a, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, rows.Data())

	cols, err := ArgMaxAxis[float64](a, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0}, cols.Data())

	mins, err := ArgMinAxis[float64](a, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, mins.Data())

	_, err = ArgMaxAxis[float64](a, 5)
	assert.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = ArgMaxAxis[float64](array.Zeros[float64](array.Shape{2, 0}), 1)
	assert.ErrorIs(t, err, array.ErrInvalidArgument)
}

func TestReduceAxis3D(t *testing.T) {
	a, err := array.FromFunc(array.Shape{2, 3, 4}, func(ix array.Index) int {
		return ix[0]*100 + ix[1]*10 + ix[2]
	})
	require.NoError(t, err)

	out, err := ReduceAxis(a, 1, 0, func(acc, v int) int { return acc + v })
	require.NoError(t, err)
	require.True(t, out.Shape().Equal(array.Shape{2, 4}))
	// Sum over the middle axis at (0, 0): 0 + 10 + 20.
	assert.Equal(t, 30, out.At(0, 0))
	assert.Equal(t, 30+3*3, out.At(0, 3))
	assert.Equal(t, 330, out.At(1, 0))
}

func TestSumAxisLazyOperand(t *testing.T) {
	a := grid23(t)
	doubled := array.Scale[float64](a, 2)
	rows, err := SumAxis[float64](doubled, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 30}, rows.Data())
}
