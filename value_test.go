// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"math"
	"testing"

	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		r   Result
		s   string
		def bool
	}{
		{MustConvert(Single, Positive, "1", "01", 2), "5", true},
		{MustConvert(Single, Positive, "101", "1", -3), "0.6875", true},
		{MustConvert(Single, Negative, "1", "1", 1), "-3", true},
		{MustConvert(Double, Positive, "1", "1", -1), "0.75", true},
		{MustConvert(Single, Positive, "1", "", -10), "0.0009765625", true},
		{MustConvert(Half, Negative, "1", "1", 15), "-49152", true},
		{MustConvert(Single, Positive, "1", "", 100), "1267650600228229401496703205376", true},
		{MustConvert(Double, Positive, "1", "", -1022), "", true},
		{MustConvert(Single, Positive, "0", "0", 0), "0", true},
		{MustConvert(Single, Negative, "0", "0", 0), "0", true},
		{MustConvert(Single, Positive, "1", "0", 200), "", false},
		{MustConvert(Single, Positive, "1", "1", 200), "", false},
		{MustConvert(Single, Positive, "1", "1", -200), "", false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, ok := test.r.Decimal()
			a.Equal(test.def, ok)
			if !ok || test.s == "" {
				return
			}
			a.Equal(test.s, d.String())
		})
	}
}

func TestDecimalMatchesFloat(t *testing.T) {
	a := assert.New(t)
	for _, m := range Modes() {
		for _, exp := range []int{-m.Bias() + 1, -m.Bias() / 2, -3, 0, 7, m.Bias() / 2, m.Bias()} {
			r := MustConvert(m, Negative, "1", "1011", exp)
			d, ok := r.Decimal()
			if !a.True(ok) {
				continue
			}
			f, ok := r.Float64()
			if !a.True(ok) {
				continue
			}
			expected := -1.6875 * math.Pow(2, float64(exp))
			a.Equal(expected, f)
			df, _ := d.Float64()
			a.InEpsilon(expected, df, 1e-15)
			a.True(d.LessThan(decimal.Zero), "%s %d: %s", m, exp, d)
		}
	}
}

func TestFloat64(t *testing.T) {
	a := assert.New(t)
	f, ok := MustConvert(Single, Negative, "0", "0", 0).Float64()
	a.True(ok)
	a.True(math.Signbit(f))
	a.Equal(0.0, f)

	f, ok = MustConvert(Single, Positive, "0", "0", 0).Float64()
	a.True(ok)
	a.False(math.Signbit(f))

	f, ok = MustConvert(Double, Positive, "1", "0", 2000).Float64()
	a.True(ok)
	a.True(math.IsInf(f, 1))

	f, ok = MustConvert(Half, Negative, "1", "0", 16).Float64()
	a.True(ok)
	a.True(math.IsInf(f, -1))

	f, ok = MustConvert(Half, Positive, "1", "1", 16).Float64()
	a.True(ok)
	a.True(math.IsNaN(f))

	_, ok = MustConvert(Single, Positive, "1", "1", -127).Float64()
	a.False(ok)

	f, ok = MustConvert(Half, Positive, "1", "01", 2).Float64()
	a.True(ok)
	a.Equal(5.0, f)
}

func BenchmarkResultDecimal(b *testing.B) {
	r := MustConvert(Double, Positive, "1", "0110101", -300)
	for i := 0; i < b.N; i++ {
		r.Decimal()
	}
}

func BenchmarkResultFloat64(b *testing.B) {
	r := MustConvert(Double, Positive, "1", "0110101", -300)
	for i := 0; i < b.N; i++ {
		r.Float64()
	}
}

func BenchmarkResultFixed(b *testing.B) {
	r := MustConvert(Single, Positive, "101", "0110101", 3)
	for i := 0; i < b.N; i++ {
		f, _ := r.Float64()
		fixed.NewF(f)
	}
}
