// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"strings"

	mu "github.com/avdva/binfloat/internal/mathutil"
)

// Mode is a binary interchange format: the widths of the exponent and
// significand fields and the exponent bias.
// The zero Mode is invalid.
type Mode struct {
	name     string
	bias     int
	expBits  uint
	mantBits uint
	// maxExponent is the advisory upper bound for a user supplied exponent.
	maxExponent int
}

var (
	// Half is IEEE-754 binary16: 1 sign bit, 5 exponent bits, 10 significand bits.
	Half = newMode("half", 5, 10)
	// Single is IEEE-754 binary32: 1 sign bit, 8 exponent bits, 23 significand bits.
	Single = newMode("single", 8, 23)
	// Double is IEEE-754 binary64: 1 sign bit, 11 exponent bits, 52 significand bits.
	Double = newMode("double", 11, 52)

	modes = [...]Mode{Half, Single, Double}
)

func newMode(name string, expBits, mantBits uint) Mode {
	bias := 1<<(expBits-1) - 1
	return Mode{
		name:        name,
		bias:        bias,
		expBits:     expBits,
		mantBits:    mantBits,
		maxExponent: bias,
	}
}

// Modes returns all supported modes, narrowest first.
func Modes() []Mode {
	result := make([]Mode, len(modes))
	copy(result, modes[:])
	return result
}

// ParseMode returns a mode by its name or total width in bits.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "half", "16", "binary16":
		return Half, nil
	case "single", "32", "binary32":
		return Single, nil
	case "double", "64", "binary64":
		return Double, nil
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Bias returns the value added to an exponent before it is stored.
func (m Mode) Bias() int {
	return m.bias
}

// ExponentWidth returns the width of the exponent field in bits.
func (m Mode) ExponentWidth() int {
	return int(m.expBits)
}

// SignificandWidth returns the width of the significand field in bits,
// not counting the implicit leading 1.
func (m Mode) SignificandWidth() int {
	return int(m.mantBits)
}

// MaxBiasedExponent returns the largest biased exponent of a normal value.
// All ones in the exponent field is reserved for infinities and NaNs.
func (m Mode) MaxBiasedExponent() int {
	return 1<<m.expBits - 2
}

// Width returns the total number of bits in the encoding.
func (m Mode) Width() int {
	return 1 + int(m.expBits) + int(m.mantBits)
}

// MaxExponent returns an advisory upper bound for the exponent a user
// should enter in this mode. It is never enforced.
func (m Mode) MaxExponent() int {
	return m.maxExponent
}

func (m Mode) valid() bool {
	return m.expBits > 0 && m.mantBits > 0
}

func (m Mode) expMask() uint64 {
	return mu.Mask(m.expBits)
}

func (m Mode) mantMask() uint64 {
	return mu.Mask(m.mantBits)
}

func (m Mode) signShift() uint {
	return m.expBits + m.mantBits
}

func (m Mode) String() string {
	if !m.valid() {
		return "invalid"
	}
	return m.name
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, ErrUnknownMode
	}
	return []byte(m.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
