package convert

import (
	"errors"
	"fmt"

	"isis-core/kind"
)

var (
	ErrUnsupported   = errors.New("conversion not supported")
	ErrOverflow      = errors.New("value out of range")
	ErrAmbiguous     = errors.New("ambiguous value")
	ErrEmptyProperty = errors.New("property is empty")
	ErrNoProperty    = errors.New("no such property")
)

//go:generate go tool stringer -type=Status -trimprefix=Status -output=status_string.go

// Status is the outcome of a single conversion.
type Status int

const (
	StatusOK Status = iota
	StatusUnsupported
	StatusOverflow
	StatusAmbiguous
	StatusInvalid
)

// ConversionError reports a failed conversion of one value. The destination
// of the conversion was left unchanged.
type ConversionError struct {
	Src, Dst kind.KindEnum
	Input    string // labeled rendering of the source value
	Err      error
}

func (e *ConversionError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("converting %s: %v", e.Pair(), e.Err)
	}

	return fmt.Sprintf("converting %s to %s: %v", e.Input, e.Dst.TypeName(), e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Pair() ConversionPair {
	return ConversionPair{From: e.Src, To: e.Dst}
}

// StatusOf classifies the error returned by a conversion.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrUnsupported):
		return StatusUnsupported
	case errors.Is(err, ErrOverflow):
		return StatusOverflow
	case errors.Is(err, ErrAmbiguous):
		return StatusAmbiguous
	default:
		return StatusInvalid
	}
}
