// Package linalg implements dense factorizations (LU with partial
// pivoting, Cholesky, LDL) on top of the core array engine: the
// factors are plain dense arrays, extracted through the engine's
// diagonal and triangular views, and any rank-2 expression adapts to
// gonum's mat.Matrix for interoperation.
//
// The public facade for this package is github.com/nd-ml/nd/linalg.
package linalg
