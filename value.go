// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/x448/float16"

	mu "github.com/avdva/binfloat/internal/mathutil"
)

// Decimal returns the exact value of a normal or zero result.
// Returns false for infinities, NaNs, and denormalized values.
func (r Result) Decimal() (decimal.Decimal, bool) {
	switch r.kind {
	case PositiveZero, NegativeZero:
		return decimal.Zero, true
	case Normal:
	default:
		return decimal.Zero, false
	}
	// value = 1.mant * 2^(exp-bias) = (2^w + mant) * 2^(exp-bias-w)
	w := r.mode.SignificandWidth()
	mant, exp := mu.ScaleBinary(1<<uint(w)|r.mant, int(r.exp)-r.mode.bias-w)
	d := decimal.NewFromBigInt(mant, exp)
	if r.sign.Neg() {
		d = d.Neg()
	}
	return d, true
}

// Float64 returns the value of r as a host float.
// Returns false for denormalized values, whose bits are unknown.
func (r Result) Float64() (float64, bool) {
	switch r.kind {
	case Normal:
	case PositiveZero:
		return 0, true
	case NegativeZero:
		return math.Copysign(0, -1), true
	case PositiveInfinity:
		return math.Inf(1), true
	case NegativeInfinity:
		return math.Inf(-1), true
	case NaN:
		return math.NaN(), true
	default:
		return 0, false
	}
	bits := r.bits()
	switch r.mode {
	case Half:
		return float64(float16.Frombits(uint16(bits)).Float32()), true
	case Single:
		return float64(math.Float32frombits(uint32(bits))), true
	case Double:
		return math.Float64frombits(bits), true
	}
	return 0, false
}
