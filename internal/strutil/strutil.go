// Package strutil has helpers for strings of binary digits.
package strutil

import "strings"

var manyZeros = strings.Repeat("0", 64)

// IndexNonBinary returns the byte index of the first symbol in s,
// that is neither '0' nor '1', or -1.
func IndexNonBinary(s string) int {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' {
			return i
		}
	}
	return -1
}

// AllZeros returns true if s has no '1' digits. An empty string is all zeros.
func AllZeros(s string) bool {
	return strings.IndexByte(s, '1') < 0
}

// Zeros returns a string of n '0' symbols.
func Zeros(n int) string {
	if n <= 0 {
		return ""
	}
	if n <= len(manyZeros) {
		return manyZeros[:n]
	}
	return strings.Repeat("0", n)
}

// PadLeft prepends zeros to s until it is width symbols long.
// Longer strings are returned as is.
func PadLeft(s string, width int) string {
	return Zeros(width-len(s)) + s
}

// FitRight returns exactly width symbols: the first width symbols of s,
// followed by zeros if s is shorter.
func FitRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + Zeros(width-len(s))
}
