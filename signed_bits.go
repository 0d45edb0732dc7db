// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements bitwise and shift operations on SignedInt.
// Grounded on math/big's Int.Lsh/Rsh/And/Or/Xor/AndNot/Not/Bit/SetBit,
// which convert to/from two's-complement semantics around the
// underlying sign-magnitude nat the same way this file does around
// Magia.

package hugeint

// BitLen returns x's bit length under the same convention used to size
// a two's-complement encoding: the magnitude's bit length, minus 1 when
// x is negative and its magnitude is an exact power of two. So -1 has
// bit length 0 and -128 has bit length 7, matching the number of bits
// below the sign bit in x's two's-complement form.
func (x SignedInt) BitLen() int {
	return bitLenBigIntStyle(x.neg, x.mag)
}

// bitLenBigIntStyle implements the two's-complement-compatible bit
// length convention: bit_len(mag) for non-negative values, and
// bit_len(mag)-1 for negative magnitudes that are themselves an exact
// power of two (where the two's-complement negation does not carry
// past the magnitude's top bit).
func bitLenBigIntStyle(neg bool, mag Magia) int {
	n := mag.bitLen()
	if neg && mag.isPowerOfTwo() {
		return n - 1
	}
	return n
}

// TrailingZeros returns the number of trailing zero bits in |x|, or -1
// for zero.
func (x SignedInt) TrailingZeros() int {
	return x.mag.trailingZeroCount()
}

// PopCount returns the number of set bits in |x|'s magnitude.
func (x SignedInt) PopCount() int {
	return x.mag.popCount()
}

// Lsh returns x << n.
func (x SignedInt) Lsh(n uint) SignedInt {
	return normalizeSign(x.neg, Magia(nil).shiftLeft(x.mag, n))
}

// Rsh returns x >> n, arithmetic (sign-extending): for a negative x this
// rounds toward negative infinity, not toward zero, matching math/big's
// Int.Rsh (which operates on the implicit two's-complement form rather
// than truncating the magnitude).
func (x SignedInt) Rsh(n uint) SignedInt {
	if !x.neg {
		return SignedInt{mag: Magia(nil).shiftRight(x.mag, n)}
	}
	// For negative x, x >> n == -((|x| + (2^n - 1)) >> n), i.e. shifting
	// the magnitude right and then rounding away from zero (up) whenever
	// any of the discarded low bits were set.
	shifted := Magia(nil).shiftRight(x.mag, n)
	if x.mag.testAnyBitInLowerN(n) {
		shifted = shifted.add(shifted, magiaOne)
	}
	return normalizeSign(true, shifted)
}

// twosComplementView returns x's value reinterpreted through a
// two's-complement lens at a working width of exactly width limbs
// (callers pass one limb of headroom above the magnitude), used to implement And/Or/Xor/AndNot/Not without
// materializing a full infinite-precision two's-complement image.
// Grounded on math/big's approach in int.go, which widens both
// operands to a common length and simulates the borrow/complement
// arithmetic directly on the nat magnitudes.
func twosComplementView(x SignedInt, width int) Magia {
	if !x.neg {
		z := Magia(nil).make(width)
		copy(z, x.mag)
		return z
	}
	z := Magia(nil).make(width)
	copy(z, x.mag)
	for i := range z {
		z[i] = ^z[i]
	}
	z = z.add(z, magiaOne)
	return z
}

func fromTwosComplementView(z Magia, negativeHint bool) SignedInt {
	topBitSet := len(z) > 0 && z[len(z)-1]&(1<<(limbBits-1)) != 0
	if !topBitSet {
		return normalizeSign(false, z)
	}
	neg := make(Magia, len(z))
	for i := range z {
		neg[i] = ^z[i]
	}
	neg = neg.add(neg, magiaOne)
	return normalizeSign(true, neg)
}

func bitwiseWidth(x, y SignedInt) int {
	n := len(x.mag)
	if len(y.mag) > n {
		n = len(y.mag)
	}
	return n + 1
}

// And returns the bitwise AND of x and y's two's-complement
// representations.
func (x SignedInt) And(y SignedInt) SignedInt {
	w := bitwiseWidth(x, y)
	return fromTwosComplementView(Magia(nil).and(twosComplementView(x, w), twosComplementView(y, w)), false)
}

// Or returns the bitwise OR of x and y's two's-complement
// representations.
func (x SignedInt) Or(y SignedInt) SignedInt {
	w := bitwiseWidth(x, y)
	return fromTwosComplementView(Magia(nil).or(twosComplementView(x, w), twosComplementView(y, w)), false)
}

// Xor returns the bitwise XOR of x and y's two's-complement
// representations.
func (x SignedInt) Xor(y SignedInt) SignedInt {
	w := bitwiseWidth(x, y)
	return fromTwosComplementView(Magia(nil).xor(twosComplementView(x, w), twosComplementView(y, w)), false)
}

// AndNot returns x &^ y under two's-complement semantics.
func (x SignedInt) AndNot(y SignedInt) SignedInt {
	w := bitwiseWidth(x, y)
	return fromTwosComplementView(Magia(nil).andNot(twosComplementView(x, w), twosComplementView(y, w)), false)
}

// Not returns ^x, i.e. -(x+1).
func (x SignedInt) Not() SignedInt {
	return x.Neg().Sub(One)
}

// Bit returns the value of bit i (0 or 1) of x's two's-complement
// representation, with bit 0 the least significant.
func (x SignedInt) Bit(i uint) uint {
	w := int(i/limbBits) + 2
	return twosComplementView(x, w).testBit(i)
}

// SetBit returns x with bit i set to b (0 or 1) under two's-complement
// semantics.
func (x SignedInt) SetBit(i uint, b uint) SignedInt {
	w := int(i/limbBits) + 2
	if n := len(x.mag) + 1; n > w {
		w = n
	}
	z := twosComplementView(x, w)
	z = z.setBit(z, i, b)
	return fromTwosComplementView(z, false)
}
