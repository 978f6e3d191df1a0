// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"strconv"
	"strings"

	mu "github.com/avdva/binfloat/internal/mathutil"
)

// Decode splits a bit pattern into its fields and classifies it the same way
// Encode does. An all-ones exponent is an infinity or a NaN, a zero exponent
// is a zero or a denormalized value.
func Decode(m Mode, bits uint64) (Result, error) {
	if !m.valid() {
		return Result{}, ErrUnknownMode
	}
	if mu.BinaryDigits(bits) > m.Width() {
		return Result{}, fmt.Errorf("%w: %d bits for %s", ErrRange, mu.BinaryDigits(bits), m)
	}
	r := Result{
		mode: m,
		sign: Sign(bits >> m.signShift() & 1),
		exp:  bits >> m.mantBits & m.expMask(),
		mant: bits & m.mantMask(),
	}
	switch {
	case r.exp == 0 && r.mant == 0:
		r.kind = signed(r.sign, PositiveZero, NegativeZero)
	case r.exp == 0:
		r.kind = Denormalized
	case r.exp == m.expMask() && r.mant == 0:
		r.kind = signed(r.sign, PositiveInfinity, NegativeInfinity)
	case r.exp == m.expMask():
		r.kind = NaN
	default:
		return r, nil
	}
	r.exp, r.mant = 0, 0
	return r, nil
}

// ParseBits parses a bit pattern for mode m. Accepted forms are hex ("0x40A00000"),
// binary ("0b0100...") and the output of Result.Binary ("0 10000001 0100...").
func ParseBits(m Mode, s string) (uint64, error) {
	if !m.valid() {
		return 0, ErrUnknownMode
	}
	s = strings.TrimSpace(s)
	var (
		v   uint64
		err error
	)
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseUint(s[2:], 16, 64)
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		v, err = parseBinary(s[2:])
	default:
		fields := strings.Fields(s)
		if len(fields) != 3 ||
			len(fields[0]) != 1 ||
			len(fields[1]) != m.ExponentWidth() ||
			len(fields[2]) != m.SignificandWidth() {
			return 0, fmt.Errorf("%q is not a %s bit pattern", s, m)
		}
		v, err = parseBinary(strings.Join(fields, ""))
	}
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	if mu.BinaryDigits(v) > m.Width() {
		return 0, fmt.Errorf("%w: %q for %s", ErrRange, s, m)
	}
	return v, nil
}

func parseBinary(s string) (uint64, error) {
	if err := checkDigits("bit pattern", s); err != nil {
		return 0, err
	}
	return strconv.ParseUint(s, 2, 64)
}
