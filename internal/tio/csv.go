package tio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nd-ml/nd/internal/array"
)

// WriteCSV writes a 2-D float expression as delimited text, one row
// per record, with an optional header record of column names. An
// empty header writes no header; otherwise its length must match the
// column count.
func WriteCSV(w io.Writer, e array.Expr[float64], header []string) error {
	s := e.Shape()
	if len(s) != 2 {
		return fmt.Errorf("write csv: rank %d expression, want 2: %w",
			len(s), array.ErrInvalidArgument)
	}
	rows, cols := s[0], s[1]
	if len(header) != 0 && len(header) != cols {
		return fmt.Errorf("write csv: %d header names for %d columns: %w",
			len(header), cols, array.ErrShape)
	}
	cw := csv.NewWriter(w)
	if len(header) != 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(e.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// ReadCSV reads delimited text into a 2-D array. With hasHeader the
// first record is returned as the column names. All records must have
// the same number of fields and every field must parse as a float.
func ReadCSV(r io.Reader) (*array.Dense[float64], []string, error) {
	return readCSV(r, false)
}

// ReadCSVHeader is ReadCSV treating the first record as a header row.
func ReadCSVHeader(r io.Reader) (*array.Dense[float64], []string, error) {
	return readCSV(r, true)
}

func readCSV(r io.Reader, hasHeader bool) (*array.Dense[float64], []string, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	var header []string
	if hasHeader {
		if len(records) == 0 {
			return nil, nil, fmt.Errorf("read csv: missing header record: %w", array.ErrInvalidArgument)
		}
		header = records[0]
		records = records[1:]
	}
	rows := len(records)
	cols := 0
	if rows > 0 {
		cols = len(records[0])
	} else if hasHeader {
		cols = len(header)
	}
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		if len(rec) != cols {
			return nil, nil, fmt.Errorf("read csv: record %d has %d fields, want %d: %w",
				i, len(rec), cols, array.ErrShape)
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("read csv: record %d field %d: %w", i, j, err)
			}
			data = append(data, v)
		}
	}
	d, err := array.FromSlice(data, array.Shape{rows, cols})
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	return d, header, nil
}
