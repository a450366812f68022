package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/nd-ml/nd/internal/array"
)

// Matrix adapts a rank-2 expression to gonum's mat.Matrix, so any
// dense array, view, or lazy node can flow into gonum routines
// without copying.
type Matrix struct {
	e array.Expr[float64]
}

// AsMatrix wraps a rank-2 expression as a gonum mat.Matrix.
func AsMatrix(e array.Expr[float64]) (Matrix, error) {
	if len(e.Shape()) != 2 {
		return Matrix{}, fmt.Errorf("as matrix: rank %d expression, want 2: %w",
			len(e.Shape()), array.ErrInvalidArgument)
	}
	return Matrix{e: e}, nil
}

// Dims returns the number of rows and columns.
func (m Matrix) Dims() (r, c int) {
	s := m.e.Shape()
	return s[0], s[1]
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 {
	return m.e.At(i, j)
}

// T returns the transpose, implementing the mat.Matrix contract.
func (m Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// FromMat copies a gonum matrix into a new row-major dense array.
func FromMat(src mat.Matrix) *array.Dense[float64] {
	r, c := src.Dims()
	out := array.Zeros[float64](array.Shape{r, c})
	data := out.Data()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = src.At(i, j)
		}
	}
	return out
}
