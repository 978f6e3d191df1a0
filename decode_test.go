// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	su "github.com/avdva/binfloat/internal/strutil"
)

func TestDecode(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m      Mode
		bits   uint64
		kind   Kind
		sign   Sign
		binary string
	}{
		{Single, 0x40A00000, Normal, Positive, "0 10000001 01000000000000000000000"},
		{Single, 0xC0400000, Normal, Negative, "1 10000000 10000000000000000000000"},
		{Single, 0x00800000, Normal, Positive, "0 00000001 00000000000000000000000"},
		{Single, 0, PositiveZero, Positive, "+0 (Positive Zero)"},
		{Single, 0x80000000, NegativeZero, Negative, "-0 (Negative Zero)"},
		{Single, 1, Denormalized, Positive, "Denormalized"},
		{Single, 0x7F800000, PositiveInfinity, Positive, "+ Infinity"},
		{Single, 0xFF800000, NegativeInfinity, Negative, "- Infinity"},
		{Single, 0x7FC00000, NaN, Positive, "NaN"},
		{Half, 0x3C00, Normal, Positive, "0 01111 0000000000"},
		{Half, 0xFC00, NegativeInfinity, Negative, "- Infinity"},
		{Double, 0x4014000000000000, Normal, Positive,
			"0 10000000001 0100000000000000000000000000000000000000000000000000"},
		{Double, 0xFFF8000000000000, NaN, Negative, "NaN"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, err := Decode(test.m, test.bits)
			if !a.NoError(err) {
				return
			}
			a.Equal(test.kind, r.Kind())
			a.Equal(test.sign, r.Sign())
			a.Equal(test.binary, r.Binary())
		})
	}
	_, err := Decode(Single, 1<<32)
	a.ErrorIs(err, ErrRange)
	_, err = Decode(Half, 0x10000)
	a.ErrorIs(err, ErrRange)
	_, err = Decode(Mode{}, 0)
	a.ErrorIs(err, ErrUnknownMode)
}

// TestRoundTrip encodes random normal values and decodes the produced bits back.
func TestRoundTrip(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(1))
	for _, m := range Modes() {
		for i := 0; i < 500; i++ {
			sigLen := 1 + rnd.Intn(m.SignificandWidth())
			sig := make([]byte, sigLen)
			for j := range sig {
				sig[j] = byte('0' + rnd.Intn(2))
			}
			exp := 1 - m.Bias() + rnd.Intn(m.MaxBiasedExponent())
			sign := Sign(rnd.Intn(2))
			encoded, err := Encode(Normalized{string(sig), exp}, sign, m)
			if !a.NoError(err) || !a.Equal(Normal, encoded.Kind()) {
				return
			}
			bits, ok := encoded.Bits()
			a.True(ok)
			decoded, err := Decode(m, bits)
			if a.NoError(err) {
				a.Equal(encoded, decoded)
				a.Equal(sign, decoded.Sign())
				a.Equal(exp+m.Bias(), decoded.BiasedExponent())
				a.Equal(string(sig)+su.Zeros(m.SignificandWidth()-sigLen), decoded.SignificandField())
			}
		}
	}
}

func TestParseBits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m    Mode
		s    string
		bits uint64
		err  bool
	}{
		{Single, "0x40A00000", 0x40A00000, false},
		{Single, " 0X40a00000 ", 0x40A00000, false},
		{Single, "0b1", 1, false},
		{Single, "0 10000001 01000000000000000000000", 0x40A00000, false},
		{Half, "1 11110 1000000000", 0xFA00, false},
		{Double, "0x4014000000000000", 0x4014000000000000, false},
		{Single, "0x1FFFFFFFF", 0, true},
		{Half, "0b11111111111111111", 0, true},
		{Single, "0xZZ", 0, true},
		{Single, "0b102", 0, true},
		{Single, "0 1000 01", 0, true},
		{Single, "0 10000001 0100000000000000000000", 0, true},
		{Single, "2 10000001 01000000000000000000000", 0, true},
		{Single, "", 0, true},
		{Mode{}, "0x1", 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			bits, err := ParseBits(test.m, test.s)
			if test.err {
				a.Error(err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.bits, bits)
			}
		})
	}
}
