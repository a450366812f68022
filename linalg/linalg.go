// Copyright 2026 The nd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg is the public API of the dense factorizations:
// LU with partial pivoting, Cholesky, and LDL. Factors come back as
// plain dense arrays; any rank-2 expression adapts to gonum's
// mat.Matrix through AsMatrix.
//
// Example:
//
//	a, _ := array.FromSlice([]float64{4, 2, 2, 3}, array.Shape{2, 2})
//	ch, err := linalg.FactorizeCholesky(a)
//	x, err := ch.Solve(b) // solves a*x = b
package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/nd-ml/nd/array"
	"github.com/nd-ml/nd/internal/linalg"
)

// LU is the factorization P*A = L*U with partial pivoting.
type LU = linalg.LU

// Cholesky is the factorization A = L*Lᵀ of a symmetric positive
// definite matrix.
type Cholesky = linalg.Cholesky

// LDL is the factorization A = L*D*Lᵀ of a symmetric matrix.
type LDL = linalg.LDL

// Matrix adapts a rank-2 expression to gonum's mat.Matrix.
type Matrix = linalg.Matrix

// FactorizeLU computes P*A = L*U; fails on non-square or singular
// input.
func FactorizeLU(a array.Expr[float64]) (*LU, error) {
	return linalg.FactorizeLU(a)
}

// FactorizeCholesky computes A = L*Lᵀ; fails unless a is symmetric
// positive definite.
func FactorizeCholesky(a array.Expr[float64]) (*Cholesky, error) {
	return linalg.FactorizeCholesky(a)
}

// FactorizeLDL computes A = L*D*Lᵀ; fails on asymmetric input or a
// zero pivot.
func FactorizeLDL(a array.Expr[float64]) (*LDL, error) {
	return linalg.FactorizeLDL(a)
}

// AsMatrix wraps a rank-2 expression as a gonum mat.Matrix.
func AsMatrix(e array.Expr[float64]) (Matrix, error) {
	return linalg.AsMatrix(e)
}

// FromMat copies a gonum matrix into a new row-major dense array.
func FromMat(src mat.Matrix) *array.Dense[float64] {
	return linalg.FromMat(src)
}
