package tio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nd-ml/nd/internal/array"
)

// FloatMode selects the rendering of floating-point elements.
type FloatMode int

const (
	// ModeDefault renders with the shortest exact representation.
	ModeDefault FloatMode = iota
	// ModeFixed renders with fixed-point notation.
	ModeFixed
	// ModeScientific renders with scientific notation.
	ModeScientific
)

// FormatOptions configures the printer. The zero value is unusable;
// start from DefaultFormat.
type FormatOptions struct {
	// Precision is the number of digits after the decimal point for
	// float elements (ignored by ModeDefault).
	Precision int

	// Threshold is the element count above which an axis is summarized
	// with its first and last EdgeItems entries.
	Threshold int

	// EdgeItems is the number of leading and trailing entries shown
	// for a summarized axis.
	EdgeItems int

	// Sign prints an explicit + for non-negative float elements.
	Sign bool

	// Mode selects fixed, scientific, or default float rendering.
	Mode FloatMode
}

// DefaultFormat mirrors the conventional printing defaults.
func DefaultFormat() FormatOptions {
	return FormatOptions{
		Precision: 8,
		Threshold: 1000,
		EdgeItems: 3,
		Mode:      ModeDefault,
	}
}

// formatElem renders one element under the options.
func formatElem[T array.Value](v T, o FormatOptions) string {
	switch x := any(v).(type) {
	case float64:
		return formatFloat(x, o)
	case float32:
		return formatFloat(float64(x), o)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64, o FormatOptions) string {
	var s string
	switch o.Mode {
	case ModeFixed:
		s = strconv.FormatFloat(f, 'f', o.Precision, 64)
	case ModeScientific:
		s = strconv.FormatFloat(f, 'e', o.Precision, 64)
	default:
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}
	if o.Sign && f >= 0 && !strings.HasPrefix(s, "+") {
		s = "+" + s
	}
	return s
}

// Sprint renders an expression under the given options: nested
// bracketed axes, with axes longer than Threshold summarized to their
// first and last EdgeItems entries.
func Sprint[T array.Value](e array.Expr[T], o FormatOptions) string {
	var b strings.Builder
	writeDim(&b, e, o, nil, o.Threshold > 0 && array.Len(e) > o.Threshold)
	return b.String()
}

func writeDim[T array.Value](b *strings.Builder, e array.Expr[T], o FormatOptions, prefix array.Index, summarize bool) {
	shape := e.Shape()
	if len(prefix) == len(shape) {
		b.WriteString(formatElem(e.At(prefix...), o))
		return
	}
	axis := len(prefix)
	n := shape[axis]
	b.WriteByte('[')
	indent := strings.Repeat(" ", axis+1)
	sep := " "
	if axis < len(shape)-1 {
		sep = "\n" + indent
	}
	elide := summarize && n > 2*o.EdgeItems
	for i := 0; i < n; i++ {
		if elide && i == o.EdgeItems {
			b.WriteString("...")
			b.WriteString(sep)
			i = n - o.EdgeItems - 1
			continue
		}
		writeDim(b, e, o, append(prefix, i), summarize)
		if i < n-1 {
			b.WriteString(sep)
		}
	}
	b.WriteByte(']')
}
