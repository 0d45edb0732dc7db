// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements division, exponentiation, GCD/LCM, integer
// square root, and factorial on SignedInt. Grounded directly on
// math/big's int.go Quo/Rem/QuoRem (truncated, T-division) and
// Div/Mod/DivMod (Euclidean, with a remainder always in [0, |y|));
// this package exposes Div/Mod under those
// names and Quo/Rem as the truncating pair, matching math/big's own
// naming split.

package hugeint

import "math"

// QuoRem returns the quotient and remainder of truncated division:
// q = x/y rounded toward zero, r = x - y*q. Panics on division by zero
// via ErrDivisionByZero, since dividing by the literal zero value is a
// programmer error rather than a data error.
func (x SignedInt) QuoRem(y SignedInt) (q, r SignedInt) {
	if y.IsZero() {
		panic(newErr(KindDivisionByZero, "division by zero"))
	}
	qm, rm := Magia(nil).divMod(nil, x.mag, y.mag)
	return normalizeSign(x.neg != y.neg, qm), normalizeSign(x.neg, rm)
}

// Quo returns x/y truncated toward zero.
func (x SignedInt) Quo(y SignedInt) SignedInt {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns x%y with the sign of x (truncated modulus).
func (x SignedInt) Rem(y SignedInt) SignedInt {
	_, r := x.QuoRem(y)
	return r
}

// DivMod returns Euclidean division: q = x div y such that
// m = x - y*q with 0 <= m < |y|. Grounded on math/big's Int.DivMod.
func (x SignedInt) DivMod(y SignedInt) (q, m SignedInt) {
	q, m = x.QuoRem(y)
	if m.IsNegative() {
		if y.IsNegative() {
			q = q.Add(One)
			m = m.Sub(y)
		} else {
			q = q.Sub(One)
			m = m.Add(y)
		}
	}
	return q, m
}

// Div returns the Euclidean quotient x div y.
func (x SignedInt) Div(y SignedInt) SignedInt {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns the Euclidean remainder x mod y, always in [0, |y|).
func (x SignedInt) Mod(y SignedInt) SignedInt {
	_, m := x.DivMod(y)
	return m
}

// Pow returns x raised to the non-negative integer power n, via binary
// exponentiation (square-and-multiply). Pow(0) is defined as 1,
// matching math/big's Int.Exp(x, y, nil) convention.
func (x SignedInt) Pow(n uint) SignedInt {
	if n == 0 {
		return One
	}
	result := One
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Sqr()
		}
	}
	return result
}

// Isqrt returns floor(sqrt(x)) for a non-negative x, panicking (via
// ErrOutOfRange) if x is negative: integer square root of a negative
// number is a programmer-contract violation, not a recoverable data
// error, mirroring how math/big's Int.Sqrt panics on a negative
// receiver.
func (x SignedInt) Isqrt() SignedInt {
	if x.IsNegative() {
		panic(newErr(KindOutOfRange, "isqrt of a negative value"))
	}
	return SignedInt{mag: Magia(nil).isqrt(x.mag)}
}

// Gcd returns the greatest common divisor of |x| and |y|, always
// non-negative. gcd(0, 0) is 0; gcd(0, y) is |y|.
func (x SignedInt) Gcd(y SignedInt) SignedInt {
	return SignedInt{mag: Magia(nil).gcd(x.mag, y.mag)}
}

// Lcm returns the least common multiple of |x| and |y|, via
// |x|/gcd(|x|,|y|)*|y|. lcm(0, y) and lcm(x, 0) are 0, falling out of
// the formula for free since gcd(0, y) == |y|.
func (x SignedInt) Lcm(y SignedInt) SignedInt {
	return SignedInt{mag: Magia(nil).lcm(x.mag, y.mag)}
}

// factorialStirlingBitLenBound returns a conservative upper bound on the
// bit length of n!, using Stirling's approximation, so Factorial can
// reject absurdly large n before attempting to allocate.
func factorialStirlingBitLenBound(n uint64) uint64 {
	if n < 2 {
		return 1
	}
	// log2(n!) ~= n*log2(n) - n*log2(e) + 0.5*log2(2*pi*n); inflate by a
	// small constant factor to stay conservative across the float
	// approximation's own rounding.
	const log2e = 1.4426950408889634
	const log2_2pi = 2.6514961294723187
	nf := float64(n)
	bits := nf*math.Log2(nf) - nf*log2e + 0.5*(log2_2pi+math.Log2(nf)) + 8
	if bits < 1 {
		bits = 1
	}
	return uint64(bits)
}

// factorialBitLenCeiling bounds how large a factorial this package will
// compute, guarding against an n so large the result could never fit in
// memory. Chosen generously above any n a real caller would need.
const factorialBitLenCeiling = 1 << 24

// Factorial returns n! as a SignedInt. Panics (data error via
// ErrOverflow) if n is large enough that n! would be implausibly huge,
// per the Stirling-bound overflow check above.
func Factorial(n uint64) SignedInt {
	if factorialStirlingBitLenBound(n) > factorialBitLenCeiling {
		panic(newErr(KindOverflow, "factorial(%d) exceeds the configured size ceiling", n))
	}
	result := One
	for i := uint64(2); i <= n; i++ {
		result = result.Mul(fromUint64(i))
	}
	return result
}
