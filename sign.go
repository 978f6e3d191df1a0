package binfloat

import "fmt"

// Sign is the sign bit of a number.
type Sign uint8

const (
	// Positive is a cleared sign bit.
	Positive Sign = 0
	// Negative is a set sign bit.
	Negative Sign = 1
)

// ParseSign accepts "0", "1", "+" and "-".
func ParseSign(s string) (Sign, error) {
	switch s {
	case "0", "+":
		return Positive, nil
	case "1", "-":
		return Negative, nil
	}
	return Positive, fmt.Errorf("%w: %q", ErrMalformedSign, s)
}

// Neg returns true for a set sign bit.
func (s Sign) Neg() bool {
	return s == Negative
}

// Symbol returns "+" or "-".
func (s Sign) Symbol() string {
	if s.Neg() {
		return "-"
	}
	return "+"
}

// String returns the sign bit as "0" or "1".
func (s Sign) String() string {
	if s.Neg() {
		return "1"
	}
	return "0"
}

func (s Sign) valid() bool {
	return s == Positive || s == Negative
}
