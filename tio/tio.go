// Copyright 2026 The nd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tio is the public API of the serialization and printing
// collaborators: raw little-endian binary, delimited text with an
// optional header row, and configurable truncated rendering of any
// expression.
//
// Example:
//
//	a := array.Ones[float64](array.Shape{2, 3})
//	fmt.Println(tio.Sprint[float64](a, tio.DefaultFormat()))
package tio

import (
	"io"

	"github.com/nd-ml/nd/array"
	"github.com/nd-ml/nd/internal/tio"
)

// FormatOptions configures the printer; start from DefaultFormat.
type FormatOptions = tio.FormatOptions

// FloatMode selects the rendering of floating-point elements.
type FloatMode = tio.FloatMode

// Float rendering modes.
const (
	ModeDefault    FloatMode = tio.ModeDefault
	ModeFixed      FloatMode = tio.ModeFixed
	ModeScientific FloatMode = tio.ModeScientific
)

// Fixed is the constraint for elements with a fixed-size binary wire
// representation.
type Fixed = tio.Fixed

// DefaultFormat mirrors the conventional printing defaults.
func DefaultFormat() FormatOptions { return tio.DefaultFormat() }

// Sprint renders an expression under the given options, summarizing
// axes longer than the threshold to their edge items.
func Sprint[T array.Value](e array.Expr[T], o FormatOptions) string {
	return tio.Sprint(e, o)
}

// WriteBinary1D writes a 1-D expression as a little-endian element
// count followed by raw elements.
func WriteBinary1D[T Fixed](w io.Writer, e array.Expr[T]) error {
	return tio.WriteBinary1D(w, e)
}

// WriteBinary2D writes a 2-D expression as little-endian rows and
// columns followed by raw elements row-major.
func WriteBinary2D[T Fixed](w io.Writer, e array.Expr[T]) error {
	return tio.WriteBinary2D(w, e)
}

// ReadBinary1D reads a 1-D array written by WriteBinary1D.
func ReadBinary1D[T Fixed](r io.Reader) (*array.Dense[T], error) {
	return tio.ReadBinary1D[T](r)
}

// ReadBinary2D reads a 2-D array written by WriteBinary2D.
func ReadBinary2D[T Fixed](r io.Reader) (*array.Dense[T], error) {
	return tio.ReadBinary2D[T](r)
}

// WriteCSV writes a 2-D float expression as delimited text with an
// optional header record of column names.
func WriteCSV(w io.Writer, e array.Expr[float64], header []string) error {
	return tio.WriteCSV(w, e, header)
}

// ReadCSV reads delimited text into a 2-D array.
func ReadCSV(r io.Reader) (*array.Dense[float64], []string, error) {
	return tio.ReadCSV(r)
}

// ReadCSVHeader is ReadCSV treating the first record as a header row.
func ReadCSVHeader(r io.Reader) (*array.Dense[float64], []string, error) {
	return tio.ReadCSVHeader(r)
}
