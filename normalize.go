// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"strings"

	mu "github.com/avdva/binfloat/internal/mathutil"
)

// Normalized is a number in the form 1.Significand * 2^Exponent.
// Significand holds the bits after the implicit leading 1 and may be
// longer than any mode can store.
type Normalized struct {
	Significand string
	Exponent    int
}

// Normalize moves the binary point of r right after its leading 1
// and adjusts the exponent accordingly. No bits are dropped.
// The first digit of a multi-digit whole part always becomes the implicit 1.
// If the whole part is "0" and the fraction has no '1' digits,
// ErrEmptyMantissa is returned.
// The adjusted exponent saturates at the bounds of int.
func Normalize(r Raw) (Normalized, error) {
	if err := r.Validate(); err != nil {
		return Normalized{}, err
	}
	if whole := r.Whole; len(whole) > 1 {
		// every digit after the first one is one more power of two.
		return Normalized{
			Significand: whole[1:] + r.Fraction,
			Exponent:    mu.AddInt(r.Exponent, len(whole)-1),
		}, nil
	}
	if r.Whole == "1" {
		return Normalized{Significand: r.Fraction, Exponent: r.Exponent}, nil
	}
	// the whole part is zero, so the leading 1 is somewhere in the fraction.
	// each zero before it moves the binary point one position to the right.
	i := strings.IndexByte(r.Fraction, '1')
	if i < 0 {
		return Normalized{}, fmt.Errorf("normalizing %s: %w", r, ErrEmptyMantissa)
	}
	return Normalized{
		Significand: r.Fraction[i+1:],
		Exponent:    mu.AddInt(r.Exponent, -i-1),
	}, nil
}

// String returns n in the form "1.01 * 2^2".
func (n Normalized) String() string {
	s := "1"
	if len(n.Significand) > 0 {
		s += "." + n.Significand
	}
	return fmt.Sprintf("%s * 2^%d", s, n.Exponent)
}
