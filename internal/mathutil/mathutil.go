package mathutil

import (
	"math"
	"math/big"
	"math/bits"
	"unsafe"
)

var (
	bigFive = big.NewInt(5)
)

// BinaryDigits returns the number of binary digits needed to represent 'value'.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// Pow5 returns 5^pow as a new big.Int. pow must not be negative.
func Pow5(pow int) *big.Int {
	return new(big.Int).Exp(bigFive, big.NewInt(int64(pow)), nil)
}

// ScaleBinary returns such (mant, exp), that mant*10^exp == m*2^e exactly.
// For e < 0 this uses 2^e = 5^-e * 10^e.
func ScaleBinary(m uint64, e int) (mant *big.Int, exp int32) {
	mant = new(big.Int).SetUint64(m)
	if m == 0 {
		return mant, 0
	}
	if e >= 0 {
		return mant.Lsh(mant, uint(e)), 0
	}
	return mant.Mul(mant, Pow5(-e)), int32(e)
}

// Mask returns a value with the lowest n bits set.
func Mask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<n - 1
}

// AddInt returns a+b, saturated to [math.MinInt, math.MaxInt].
func AddInt(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}
