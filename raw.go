// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"

	su "github.com/avdva/binfloat/internal/strutil"
)

const (
	fieldWhole    = "whole part"
	fieldFraction = "fraction"
)

// Raw is an un-normalized binary number: (Whole.Fraction)_2 * 2^Exponent.
type Raw struct {
	Sign     Sign
	Whole    string
	Fraction string
	Exponent int
}

// ParseRaw validates the fields and returns them as a Raw value.
// Whole must not be empty, Fraction may be.
func ParseRaw(sign Sign, whole, fraction string, exponent int) (Raw, error) {
	r := Raw{Sign: sign, Whole: whole, Fraction: fraction, Exponent: exponent}
	if err := r.Validate(); err != nil {
		return Raw{}, err
	}
	return r, nil
}

// Validate checks that r holds only binary digits and a valid sign.
func (r Raw) Validate() error {
	if !r.Sign.valid() {
		return fmt.Errorf("%w: %d", ErrMalformedSign, r.Sign)
	}
	if len(r.Whole) == 0 {
		return ErrEmptyWhole
	}
	if err := checkDigits(fieldWhole, r.Whole); err != nil {
		return err
	}
	return checkDigits(fieldFraction, r.Fraction)
}

// String returns r in the form "-101.01 * 2^-3".
func (r Raw) String() string {
	s := r.Sign.Symbol() + r.Whole
	if len(r.Fraction) > 0 {
		s += "." + r.Fraction
	}
	return fmt.Sprintf("%s * 2^%d", s, r.Exponent)
}

func checkDigits(field, s string) error {
	if i := su.IndexNonBinary(s); i >= 0 {
		// +1 to start indices from 1.
		return newPosError(field, []rune(s[i:])[0], i+1)
	}
	return nil
}
