// Package modmath implements modular arithmetic on uint64 operands without
// intermediate overflow.
package modmath

import "math/bits"

// MulMod returns a*b mod m using a 128-bit intermediate product.
// m must be non-zero.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi >= m {
		hi %= m
	}
	return bits.Rem64(hi, lo, m)
}

// SquareMod returns x*x mod m.
func SquareMod(x, m uint64) uint64 {
	return MulMod(x, x, m)
}

// AddMod returns (a+b) mod m for any a, b.
func AddMod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum >= m {
		// true sum is below 2m; wrapping subtraction is exact on carry
		sum -= m
	}
	return sum
}

// MulChecked returns a*b and whether the product fit in 64 bits.
func MulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
