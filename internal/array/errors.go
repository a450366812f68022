package array

import (
	"errors"
	"fmt"
)

// The three error kinds raised by the engine. Every failure wraps
// exactly one of these, so callers can classify with errors.Is.
var (
	// ErrOutOfRange reports a scalar or multi-index outside its axis extent.
	ErrOutOfRange = errors.New("index out of range")

	// ErrShape reports two shapes that are not broadcast-compatible, or an
	// assignment target whose shape disagrees with its source.
	ErrShape = errors.New("shape mismatch")

	// ErrInvalidArgument reports a parameter outside its valid domain.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Indexing and expression composition fail by panicking with one of the
// wrapped sentinels; fallible constructors and algorithms return them.

func outOfRangef(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrOutOfRange)...)
}

func shapeErrf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrShape)...)
}

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidArgument)...)
}
