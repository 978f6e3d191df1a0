package binfloat

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDigit is returned when a digit string contains a symbol other than '0' or '1'.
	ErrMalformedDigit = errors.New("binfloat: malformed digit")
	// ErrEmptyWhole is returned when the whole part of a number is empty.
	ErrEmptyWhole = errors.New("binfloat: empty whole part")
	// ErrEmptyMantissa is returned by Normalize when the digits contain no '1',
	// so there is no leading bit to normalize around.
	ErrEmptyMantissa = errors.New("binfloat: no significant digits")
	// ErrUnknownMode is returned for an unsupported or zero Mode.
	ErrUnknownMode = errors.New("binfloat: unknown mode")
	// ErrMalformedSign is returned for a sign other than 0/1/+/-.
	ErrMalformedSign = errors.New("binfloat: malformed sign")
	// ErrRange is returned when a bit pattern does not fit the mode.
	ErrRange = errors.New("binfloat: value out of range")
)

// posError points at a bad symbol in one of the input fields.
type posError struct {
	field string
	pos   int
	r     rune
}

func newPosError(field string, r rune, pos int) *posError {
	return &posError{field: field, r: r, pos: pos}
}

func (pe posError) Error() string {
	return fmt.Sprintf("%v: unexpected symbol %q in %s at pos %d", ErrMalformedDigit, pe.r, pe.field, pe.pos)
}

func (pe posError) Unwrap() error {
	return ErrMalformedDigit
}

// Pos returns the 1-based position of the offending symbol, if err has one.
func Pos(err error) (field string, pos int, ok bool) {
	var pe *posError
	if !errors.As(err, &pe) {
		return "", 0, false
	}
	return pe.field, pe.pos, true
}
