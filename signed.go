// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements SignedInt, the sign-magnitude signed integer
// layer built on top of Magia. Grounded on math/big's int.go
// (Int{neg bool; abs nat}), generalized from nat's 32/64-bit
// machine-word special cases to the fixed 32-bit Limb this package
// uses throughout.

package hugeint

// SignedInt is an arbitrary-precision signed integer, represented as a
// sign flag plus a Magia magnitude. The zero value is 0. SignedInt
// values are immutable: every operation returns a new value rather than
// mutating a receiver (the mutable counterpart is Accumulator, in
// accumulator.go).
type SignedInt struct {
	neg bool
	mag Magia
}

// Zero is the SignedInt value 0.
var Zero = SignedInt{}

// One is the SignedInt value 1.
var One = SignedInt{mag: Magia{1}}

// NegativeOne is the SignedInt value -1.
var NegativeOne = SignedInt{neg: true, mag: Magia{1}}

// normalizeSign clears the sign of a zero magnitude, so SignedInt never
// represents a "negative zero".
func normalizeSign(neg bool, mag Magia) SignedInt {
	mag = mag.norm()
	if len(mag) == 0 {
		neg = false
	}
	return SignedInt{neg: neg, mag: mag}
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x SignedInt) Sign() int {
	switch {
	case len(x.mag) == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether x is zero.
func (x SignedInt) IsZero() bool {
	return len(x.mag) == 0
}

// IsNegative reports whether x is strictly less than zero.
func (x SignedInt) IsNegative() bool {
	return x.neg && len(x.mag) != 0
}

// Neg returns -x.
func (x SignedInt) Neg() SignedInt {
	return normalizeSign(!x.neg, x.mag)
}

// Abs returns |x|.
func (x SignedInt) Abs() SignedInt {
	return SignedInt{mag: x.mag}
}

// CmpAbs compares |x| and |y|, returning -1, 0, or +1.
func (x SignedInt) CmpAbs(y SignedInt) int {
	return cmp(x.mag, y.mag)
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x SignedInt) Cmp(y SignedInt) int {
	switch {
	case x.neg == y.neg:
		c := cmp(x.mag, y.mag)
		if x.neg {
			return -c
		}
		return c
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Equal reports whether x and y represent the same value.
func (x SignedInt) Equal(y SignedInt) bool {
	return x.Cmp(y) == 0
}

// Add returns x + y.
func (x SignedInt) Add(y SignedInt) SignedInt {
	if x.neg == y.neg {
		return normalizeSign(x.neg, Magia(nil).add(x.mag, y.mag))
	}
	// Opposite signs: subtract the smaller magnitude from the larger,
	// taking the sign of whichever operand had the larger magnitude.
	switch cmp(x.mag, y.mag) {
	case 0:
		return Zero
	case 1:
		return normalizeSign(x.neg, Magia(nil).sub(x.mag, y.mag))
	default:
		return normalizeSign(y.neg, Magia(nil).sub(y.mag, x.mag))
	}
}

// Sub returns x - y.
func (x SignedInt) Sub(y SignedInt) SignedInt {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x SignedInt) Mul(y SignedInt) SignedInt {
	resultNeg := maskFromBool(x.neg).xor(maskFromBool(y.neg)).negative()
	return normalizeSign(resultNeg, Magia(nil).mul(x.mag, y.mag))
}

// Sqr returns x * x.
func (x SignedInt) Sqr() SignedInt {
	return SignedInt{mag: Magia(nil).sqr(x.mag)}
}
