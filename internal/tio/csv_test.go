package tio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nd-ml/nd/internal/array"
)

func TestCSVRoundTrip(t *testing.T) {
	a, err := array.FromSlice([]float64{1.5, 2, -3, 4.25, 0, 6}, array.Shape{2, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, a, nil))

	got, header, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Nil(t, header)
	require.True(t, got.Shape().Equal(array.Shape{2, 3}))
	assert.Equal(t, a.Data(), got.Data())
}

func TestCSVHeaderRoundTrip(t *testing.T) {
	a, err := array.FromSlice([]float64{1, 2, 3, 4}, array.Shape{2, 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, a, []string{"x", "y"}))

	got, header, err := ReadCSVHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, header)
	assert.Equal(t, a.Data(), got.Data())
}

func TestCSVHeaderMismatch(t *testing.T) {
	a := array.Zeros[float64](array.Shape{2, 3})
	var buf bytes.Buffer
	err := WriteCSV(&buf, a, []string{"only-one"})
	assert.ErrorIs(t, err, array.ErrShape)
}

func TestCSVRankValidation(t *testing.T) {
	v := array.Zeros[float64](array.Shape{3})
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteCSV(&buf, v, nil), array.ErrInvalidArgument)
}

func TestCSVReadRagged(t *testing.T) {
	in := "1,2,3\n4,5\n"
	_, _, err := ReadCSV(strings.NewReader(in))
	assert.Error(t, err)
}

func TestCSVReadBadFloat(t *testing.T) {
	in := "1,2\n3,abc\n"
	_, _, err := ReadCSV(strings.NewReader(in))
	assert.Error(t, err)
}

func TestCSVReadEmpty(t *testing.T) {
	got, header, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, header)
	assert.Equal(t, 0, got.Len())

	_, _, err = ReadCSVHeader(strings.NewReader(""))
	assert.ErrorIs(t, err, array.ErrInvalidArgument)
}

func TestCSVWritesLazyExpr(t *testing.T) {
	e := array.EyeExpr[float64](2, 2, 0)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, e, nil))
	assert.Equal(t, "1,0\n0,1\n", buf.String())
}
