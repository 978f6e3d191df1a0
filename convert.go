// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package binfloat encodes binary numbers, written as sign, whole part,
// fraction and a power-of-two exponent, into IEEE-754 style bit patterns.
//
// A conversion normalizes the number to the 1.f * 2^e form, applies the bias
// of the chosen Mode, and classifies the result either as a normal value, or
// as one of the special values: zeros, infinities, NaN, or denormalized.
// Denormalized values are only recognized, their bit patterns aren't computed.
// Significands longer than the mode allows are truncated, not rounded.
package binfloat

import "errors"

// Convert encodes (whole.fraction)_2 * 2^exponent with the given sign in mode m.
// A number without any '1' digits is a signed zero.
func Convert(m Mode, sign Sign, whole, fraction string, exponent int) (Result, error) {
	r, err := ParseRaw(sign, whole, fraction, exponent)
	if err != nil {
		return Result{}, err
	}
	return ConvertRaw(m, r)
}

// ConvertRaw is Convert for a Raw value.
func ConvertRaw(m Mode, r Raw) (Result, error) {
	if !m.valid() {
		return Result{}, ErrUnknownMode
	}
	n, err := Normalize(r)
	if errors.Is(err, ErrEmptyMantissa) {
		return Result{mode: m, sign: r.Sign, kind: signed(r.Sign, PositiveZero, NegativeZero)}, nil
	}
	if err != nil {
		return Result{}, err
	}
	return Encode(n, r.Sign, m)
}

// MustConvert is Convert, that panics on error.
func MustConvert(m Mode, sign Sign, whole, fraction string, exponent int) Result {
	r, err := Convert(m, sign, whole, fraction, exponent)
	if err != nil {
		panic(err)
	}
	return r
}
