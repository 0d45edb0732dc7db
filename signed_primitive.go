// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements primitive-operand overloads (
// "fast paths for a machine-integer right-hand side"): Add/Sub/Mul/Cmp
// and truncated/Euclidean division against an int64 or uint64 without
// first materializing the operand as a heap-allocated Magia. Grounded
// on math/big's own int.go SetInt64/SetUint64 decomposition, but where
// math/big always builds a throwaway *Int, these operate on a
// stack-resident (sign, magnitude) pair directly, using word.go's
// carry-propagating primitives.

package hugeint

// decomposeInt64 splits a signed 64-bit value into a sign flag and an
// unsigned magnitude, via the branch-free mask negate of sign.go rather
// than an explicit comparison; this also sidesteps the overflow trap of
// negating math.MinInt64 directly, since (x^mask)-mask negates correctly
// even at that boundary.
func decomposeInt64(y int64) (neg bool, mag uint64) {
	mask := Sign(y >> 63) // arithmetic shift: all-ones if y < 0, else 0
	return mask.negative(), negateIfNegative(uint64(y), mask)
}

// addLimb computes z = x + y for a single extra limb y, without
// allocating storage for y itself.
func (z Magia) addLimb(x Magia, y Limb) Magia {
	if len(x) == 0 {
		return z.setLimb(y)
	}
	z = z.make(len(x) + 1)
	c := addVW(z[:len(x)], x, y)
	z[len(x)] = c
	return z.norm()
}

// addUint64Magnitude computes z = x + y for a 64-bit scalar y, holding y
// in a two-limb stack array rather than a heap-allocated Magia.
func (z Magia) addUint64Magnitude(x Magia, y uint64) Magia {
	lo := Limb(y)
	hi := Limb(y >> limbBits)
	if hi == 0 {
		return z.addLimb(x, lo)
	}
	yArr := [2]Limb{lo, hi}
	return z.add(x, yArr[:])
}

// subLimb computes z = x - y for a single extra limb y; x must be >= y.
func (z Magia) subLimb(x Magia, y Limb) Magia {
	z = z.make(len(x))
	subVW(z, x, y)
	return z.norm()
}

// subUint64Magnitude computes z = x - y for a 64-bit scalar y (x >= y).
func (z Magia) subUint64Magnitude(x Magia, y uint64) Magia {
	lo := Limb(y)
	hi := Limb(y >> limbBits)
	if hi == 0 {
		return z.subLimb(x, lo)
	}
	yArr := [2]Limb{lo, hi}
	return z.sub(x, yArr[:])
}

// cmpUint64Magnitude compares x against the magnitude of a 64-bit
// scalar y without allocating.
func cmpUint64Magnitude(x Magia, y uint64) int {
	lo := Limb(y)
	hi := Limb(y >> limbBits)
	var yArr [2]Limb
	n := 1
	yArr[0] = lo
	if hi != 0 {
		yArr[1] = hi
		n = 2
	}
	return cmp(x, Magia(yArr[:n]))
}

// AddInt64 returns x + y.
func (x SignedInt) AddInt64(y int64) SignedInt {
	yNeg, yMag := decomposeInt64(y)
	return x.addMagnitudeSigned(yNeg, yMag)
}

// AddUint64 returns x + y.
func (x SignedInt) AddUint64(y uint64) SignedInt {
	return x.addMagnitudeSigned(false, y)
}

func (x SignedInt) addMagnitudeSigned(yNeg bool, yMag uint64) SignedInt {
	if x.neg == yNeg {
		return normalizeSign(x.neg, Magia(nil).addUint64Magnitude(x.mag, yMag))
	}
	switch cmpUint64Magnitude(x.mag, yMag) {
	case 0:
		return Zero
	case 1:
		return normalizeSign(x.neg, Magia(nil).subUint64Magnitude(x.mag, yMag))
	default:
		yArr := [2]Limb{Limb(yMag), Limb(yMag >> limbBits)}
		return normalizeSign(yNeg, Magia(nil).sub(Magia(yArr[:]).norm(), x.mag))
	}
}

// SubInt64 returns x - y.
func (x SignedInt) SubInt64(y int64) SignedInt {
	yNeg, yMag := decomposeInt64(y)
	return x.addMagnitudeSigned(!yNeg, yMag)
}

// SubUint64 returns x - y.
func (x SignedInt) SubUint64(y uint64) SignedInt {
	return x.addMagnitudeSigned(true, y)
}

// MulInt64 returns x * y.
func (x SignedInt) MulInt64(y int64) SignedInt {
	yNeg, yMag := decomposeInt64(y)
	return normalizeSign(x.neg != yNeg, Magia(nil).mulLimb64(x.mag, yMag))
}

// MulUint64 returns x * y.
func (x SignedInt) MulUint64(y uint64) SignedInt {
	return normalizeSign(x.neg, Magia(nil).mulLimb64(x.mag, y))
}

// CmpInt64 compares x to y, returning -1, 0, or +1.
func (x SignedInt) CmpInt64(y int64) int {
	yNeg, yMag := decomposeInt64(y)
	switch {
	case x.neg != yNeg:
		if x.neg {
			return -1
		}
		return 1
	case x.neg:
		return -cmpUint64Magnitude(x.mag, yMag)
	default:
		return cmpUint64Magnitude(x.mag, yMag)
	}
}

// CmpUint64 compares x to y, returning -1, 0, or +1.
func (x SignedInt) CmpUint64(y uint64) int {
	if x.neg {
		return -1 // x.neg implies x is strictly negative; y is non-negative
	}
	return cmpUint64Magnitude(x.mag, y)
}

// EqualInt64 reports whether x equals y.
func (x SignedInt) EqualInt64(y int64) bool {
	return x.CmpInt64(y) == 0
}

// EqualUint64 reports whether x equals y.
func (x SignedInt) EqualUint64(y uint64) bool {
	return x.CmpUint64(y) == 0
}

// QuoRemInt64 returns the truncated quotient and remainder of x / y:
// q = x/y rounded toward zero, r = x - y*q. Panics via
// ErrDivisionByZero if y is zero.
func (x SignedInt) QuoRemInt64(y int64) (q, r SignedInt) {
	if y == 0 {
		panic(newErr(KindDivisionByZero, "division by zero"))
	}
	yNeg, yMag := decomposeInt64(y)
	qm, rm := Magia(nil).divModUint64(x.mag, yMag)
	return normalizeSign(x.neg != yNeg, qm), normalizeSign(x.neg, Magia(nil).setUint64(rm))
}

// QuoInt64 returns x/y truncated toward zero.
func (x SignedInt) QuoInt64(y int64) SignedInt {
	q, _ := x.QuoRemInt64(y)
	return q
}

// RemInt64 returns x%y with the sign of x. The sign of y is ignored:
// the truncated remainder's magnitude depends only on x's magnitude and
// |y|, never on y's sign.
func (x SignedInt) RemInt64(y int64) SignedInt {
	_, r := x.QuoRemInt64(y)
	return r
}

// QuoRemUint64 returns the truncated quotient and remainder of x / y.
func (x SignedInt) QuoRemUint64(y uint64) (q, r SignedInt) {
	if y == 0 {
		panic(newErr(KindDivisionByZero, "division by zero"))
	}
	qm, rm := Magia(nil).divModUint64(x.mag, y)
	return normalizeSign(x.neg, qm), normalizeSign(x.neg, Magia(nil).setUint64(rm))
}

// QuoUint64 returns x/y truncated toward zero.
func (x SignedInt) QuoUint64(y uint64) SignedInt {
	q, _ := x.QuoRemUint64(y)
	return q
}

// RemUint64 returns x%y with the sign of x.
func (x SignedInt) RemUint64(y uint64) SignedInt {
	_, r := x.QuoRemUint64(y)
	return r
}

// DivModInt64 returns Euclidean division: q = x div y such that
// m = x - y*q with 0 <= m < |y|.
func (x SignedInt) DivModInt64(y int64) (q, m SignedInt) {
	q, m = x.QuoRemInt64(y)
	if m.IsNegative() {
		if y < 0 {
			q = q.AddInt64(1)
			m = m.SubInt64(y)
		} else {
			q = q.SubInt64(1)
			m = m.AddInt64(y)
		}
	}
	return q, m
}

// DivInt64 returns the Euclidean quotient x div y.
func (x SignedInt) DivInt64(y int64) SignedInt {
	q, _ := x.DivModInt64(y)
	return q
}

// ModInt64 returns the Euclidean remainder x mod y, always in [0, |y|).
func (x SignedInt) ModInt64(y int64) SignedInt {
	_, m := x.DivModInt64(y)
	return m
}

// DivModUint64 returns Euclidean division against a non-negative
// divisor: q = x div y such that m = x - y*q with 0 <= m < y.
func (x SignedInt) DivModUint64(y uint64) (q, m SignedInt) {
	q, m = x.QuoRemUint64(y)
	if m.IsNegative() {
		q = q.SubInt64(1)
		m = m.AddUint64(y)
	}
	return q, m
}

// DivUint64 returns the Euclidean quotient x div y.
func (x SignedInt) DivUint64(y uint64) SignedInt {
	q, _ := x.DivModUint64(y)
	return q
}

// ModUint64 returns the Euclidean remainder x mod y, always in [0, y).
func (x SignedInt) ModUint64(y uint64) SignedInt {
	_, m := x.DivModUint64(y)
	return m
}
