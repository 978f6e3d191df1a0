// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"strconv"
	"strings"

	mu "github.com/avdva/binfloat/internal/mathutil"
	su "github.com/avdva/binfloat/internal/strutil"
)

// Kind classifies an encoded value.
type Kind int

const (
	// Normal is a value with a regular exponent and significand.
	Normal Kind = iota
	// PositiveZero is +0.
	PositiveZero
	// NegativeZero is -0.
	NegativeZero
	// Denormalized is a value too small for a normal exponent.
	// Its bit pattern is not computed.
	Denormalized
	// PositiveInfinity is +Inf.
	PositiveInfinity
	// NegativeInfinity is -Inf.
	NegativeInfinity
	// NaN is not-a-number.
	NaN
)

var kindInfo = [...]struct {
	name, label string
}{
	Normal:           {"normal", "normal"},
	PositiveZero:     {"positive-zero", "+0 (Positive Zero)"},
	NegativeZero:     {"negative-zero", "-0 (Negative Zero)"},
	Denormalized:     {"denormalized", "Denormalized"},
	PositiveInfinity: {"positive-infinity", "+ Infinity"},
	NegativeInfinity: {"negative-infinity", "- Infinity"},
	NaN:              {"nan", "NaN"},
}

// ParseKind returns a kind by its name, see Kind.Name.
func ParseKind(s string) (Kind, error) {
	for k, info := range kindInfo {
		if info.name == s {
			return Kind(k), nil
		}
	}
	return Normal, fmt.Errorf("unknown kind %q", s)
}

func (k Kind) valid() bool {
	return k >= Normal && int(k) < len(kindInfo)
}

// Name returns a stable identifier, like "positive-zero".
func (k Kind) Name() string {
	if !k.valid() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindInfo[k].name
}

// String returns a human readable label, like "+0 (Positive Zero)".
// This is what Result.Binary and Result.Hex show for special values.
func (k Kind) String() string {
	if !k.valid() {
		return k.Name()
	}
	return kindInfo[k].label
}

// IsSpecial returns true for every kind but Normal.
func (k Kind) IsSpecial() bool {
	return k != Normal
}

// Result is an encoded number.
// For special kinds only the mode, the kind and the sign are meaningful.
type Result struct {
	mode Mode
	kind Kind
	sign Sign
	exp  uint64 // biased exponent
	mant uint64 // significand field, without the implicit 1
}

// Encode applies the bias of the mode to n, fits its significand into the
// significand field and classifies the result.
// Significand bits that do not fit are dropped without rounding.
// Exponents too large or too small for int arithmetic classify as
// out of range, never wrap around.
func Encode(n Normalized, sign Sign, mode Mode) (Result, error) {
	if !mode.valid() {
		return Result{}, ErrUnknownMode
	}
	if !sign.valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrMalformedSign, sign)
	}
	if err := checkDigits("significand", n.Significand); err != nil {
		return Result{}, err
	}
	r := Result{mode: mode, sign: sign}
	biased := mu.AddInt(n.Exponent, mode.bias)
	noSignificand := su.AllZeros(n.Significand)
	switch {
	case biased < 1 && noSignificand:
		r.kind = signed(sign, PositiveZero, NegativeZero)
	case biased < 1:
		r.kind = Denormalized
	case biased > mode.MaxBiasedExponent() && noSignificand:
		r.kind = signed(sign, PositiveInfinity, NegativeInfinity)
	case biased > mode.MaxBiasedExponent():
		r.kind = NaN
	default:
		field := su.FitRight(n.Significand, mode.SignificandWidth())
		mant, err := strconv.ParseUint(field, 2, 64)
		if err != nil {
			return Result{}, err
		}
		r.kind, r.exp, r.mant = Normal, uint64(biased), mant
	}
	return r, nil
}

func signed(s Sign, pos, neg Kind) Kind {
	if s.Neg() {
		return neg
	}
	return pos
}

// Mode returns the mode r was encoded with.
func (r Result) Mode() Mode {
	return r.mode
}

// Kind returns the classification of r.
func (r Result) Kind() Kind {
	return r.kind
}

// Sign returns the sign bit of r.
func (r Result) Sign() Sign {
	return r.sign
}

// BiasedExponent returns the value of the exponent field. Only valid for Normal results.
func (r Result) BiasedExponent() int {
	return int(r.exp)
}

// ExponentField returns the exponent field, zero-padded to the mode's exponent width.
func (r Result) ExponentField() string {
	return su.PadLeft(strconv.FormatUint(r.exp, 2), r.mode.ExponentWidth())
}

// SignificandField returns the significand field, zero-padded to the mode's significand width.
func (r Result) SignificandField() string {
	return su.PadLeft(strconv.FormatUint(r.mant, 2), r.mode.SignificandWidth())
}

// Bits returns the packed bit pattern of a Normal result.
func (r Result) Bits() (uint64, bool) {
	if r.kind != Normal {
		return 0, false
	}
	return r.bits(), true
}

func (r Result) bits() uint64 {
	return uint64(r.sign)<<r.mode.signShift() | r.exp<<r.mode.mantBits | r.mant
}

// Binary returns "<sign> <exponent> <significand>" for a Normal result,
// and the kind's label otherwise.
func (r Result) Binary() string {
	if r.kind != Normal {
		return r.kind.String()
	}
	var builder strings.Builder
	builder.WriteString(r.sign.String())
	builder.WriteByte(' ')
	builder.WriteString(r.ExponentField())
	builder.WriteByte(' ')
	builder.WriteString(r.SignificandField())
	return builder.String()
}

// Hex returns the bit pattern as an uppercase hex number with the "0x" prefix
// for a Normal result, and the kind's label otherwise.
// The number is not padded with leading zeros.
func (r Result) Hex() string {
	if r.kind != Normal {
		return r.kind.String()
	}
	return "0x" + strings.ToUpper(strconv.FormatUint(r.bits(), 16))
}

// String returns the binary form of r.
func (r Result) String() string {
	return r.Binary()
}
