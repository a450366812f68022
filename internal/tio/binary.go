package tio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/nd-ml/nd/internal/array"
)

// Fixed is the constraint for elements with a fixed-size wire
// representation; plain int is excluded because its width is
// platform-dependent.
type Fixed interface {
	~int32 | ~int64 | ~float32 | ~float64 | ~complex64 | ~complex128
}

// Binary wire format, little endian throughout:
//
//	1-D: uint64 element count, then raw elements.
//	2-D: uint64 rows, uint64 cols, then raw elements row-major.

// WriteBinary1D writes a 1-D expression.
func WriteBinary1D[T Fixed](w io.Writer, e array.Expr[T]) error {
	s := e.Shape()
	if len(s) != 1 {
		return fmt.Errorf("write binary: rank %d expression, want 1: %w",
			len(s), array.ErrInvalidArgument)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(s[0])); err != nil {
		return fmt.Errorf("write binary: %w", err)
	}
	return writeElems(w, e)
}

// WriteBinary2D writes a 2-D expression row-major.
func WriteBinary2D[T Fixed](w io.Writer, e array.Expr[T]) error {
	s := e.Shape()
	if len(s) != 2 {
		return fmt.Errorf("write binary: rank %d expression, want 2: %w",
			len(s), array.ErrInvalidArgument)
	}
	if err := binary.Write(w, binary.LittleEndian, []uint64{uint64(s[0]), uint64(s[1])}); err != nil {
		return fmt.Errorf("write binary: %w", err)
	}
	return writeElems(w, e)
}

func writeElems[T Fixed](w io.Writer, e array.Expr[T]) error {
	data := make([]T, 0, array.Len(e))
	for v := range array.Values(e, array.RowMajor) {
		data = append(data, v)
	}
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("write binary: %w", err)
	}
	return nil
}

// ReadBinary1D reads a 1-D array written by WriteBinary1D.
func ReadBinary1D[T Fixed](r io.Reader) (*array.Dense[T], error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("read binary: %w", err)
	}
	return readElems[T](r, array.Shape{int(n)})
}

// ReadBinary2D reads a 2-D array written by WriteBinary2D.
func ReadBinary2D[T Fixed](r io.Reader) (*array.Dense[T], error) {
	var dims [2]uint64
	if err := binary.Read(r, binary.LittleEndian, dims[:]); err != nil {
		return nil, fmt.Errorf("read binary: %w", err)
	}
	return readElems[T](r, array.Shape{int(dims[0]), int(dims[1])})
}

func readElems[T Fixed](r io.Reader, shape array.Shape) (*array.Dense[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("read binary: %w", err)
	}
	data := make([]T, shape.NumElements())
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("read binary: %w", err)
	}
	return array.FromSlice(data, shape)
}
