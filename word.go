// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides elementary arithmetic on single 32-bit limbs, with
// 64-bit intermediates. It is the Go-native rendering of
// math/big/arith.go's word-vector primitives: math/big splits every
// operation into machine-word halves (_W2, _B2, _M2) because its Word
// type is platform-sized (32 or 64 bits) and must be built from portable
// half-word pieces on machines without a wider multiply. This package's
// Limb is fixed at 32 bits, so the halving trick is unnecessary:
// every widened intermediate fits in a native uint64, and math/bits
// supplies the carry-aware primitives directly.

package hugeint

import "math/bits"

// Limb is a single digit of a little-endian base-2^32 magnitude.
type Limb = uint32

const (
	limbBits = 32
	limbBase = 1 << limbBits // 2^32, as a uint64
	limbMax  = limbBase - 1
)

// addWW computes z1:z0 = x + y + c, with c == 0 or 1.
// Grounded on arith.go's addWW_g, rewritten over bits.Add32.
func addWW(x, y, c Limb) (z1, z0 Limb) {
	sum, carry := bits.Add32(x, y, c)
	return carry, sum
}

// subWW computes z1:z0 = x - y - c, with c == 0 or 1.
func subWW(x, y, c Limb) (z1, z0 Limb) {
	diff, borrow := bits.Sub32(x, y, c)
	return borrow, diff
}

// mulWW computes z1:z0 = x*y.
func mulWW(x, y Limb) (z1, z0 Limb) {
	hi, lo := bits.Mul32(x, y)
	return hi, lo
}

// mulAddWWW computes z1:z0 = x*y + c.
func mulAddWWW(x, y, c Limb) (z1, z0 Limb) {
	hi, lo := bits.Mul32(x, y)
	var carry uint32
	lo, carry = bits.Add32(lo, c, 0)
	hi += carry
	return hi, lo
}

// bitLen32 returns the number of bits required to represent x, or 0 for x == 0.
func bitLen32(x Limb) int {
	return bits.Len32(x)
}

// leadingZeros32 returns the number of leading zero bits in x.
func leadingZeros32(x Limb) uint {
	return uint(bits.LeadingZeros32(x))
}

// divWW64 computes q, r = (u1<<32 + u0) / v, given u1 < v (so the
// quotient fits in 32 bits). Grounded on arith.go's divWW_g, simplified
// to a direct 64-bit division since Limb is fixed at 32 bits and Go
// natively divides 64 bits by 32.
func divWW64(u1, u0, v Limb) (q, r Limb) {
	quo, rem := bits.Div32(u1, u0, v)
	return quo, rem
}

// mulHi64 returns the upper 64 bits of the unsigned 128-bit product of
// x and y. math/bits.Mul64 is exactly this mul-hi primitive on every
// platform Go supports, so it is used here directly rather than through
// a separate shim.
func mulHi64(x, y uint64) uint64 {
	hi, _ := bits.Mul64(x, y)
	return hi
}

// addVV computes z = x + y for equal-length x, y, returning the carry
// out of the top limb. Grounded on arith.go's addVV_g.
func addVV(z, x, y []Limb) (c Limb) {
	for i := range z {
		c, z[i] = addWW(x[i], y[i], c)
	}
	return
}

// subVV computes z = x - y for equal-length x, y, returning the borrow
// out of the top limb. Grounded on arith.go's subVV_g.
func subVV(z, x, y []Limb) (c Limb) {
	for i := range z {
		c, z[i] = subWW(x[i], y[i], c)
	}
	return
}

// addVW adds the single limb y into x, propagating carry, per arith.go's
// addVW_g. Used to extend a carry chain through the high limbs of a
// longer operand, as in mutateAdd's tail.
func addVW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := range z {
		c, z[i] = addWW(x[i], c, 0)
	}
	return
}

// subVW subtracts the single limb y from x, propagating borrow.
func subVW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := range z {
		c, z[i] = subWW(x[i], c, 0)
	}
	return
}

// shlVU shifts x left by 0 <= s < 32 bits into z, returning the bits
// shifted out the top. Grounded on arith.go's shlVU_g.
func shlVU(z, x []Limb, s uint) (c Limb) {
	if n := len(z); n > 0 {
		if s == 0 {
			copy(z, x)
			return 0
		}
		sInv := limbBits - s
		w1 := x[n-1]
		c = w1 >> sInv
		for i := n - 1; i > 0; i-- {
			w := w1
			w1 = x[i-1]
			z[i] = w<<s | w1>>sInv
		}
		z[0] = w1 << s
	}
	return
}

// shrVU shifts x right by 0 <= s < 32 bits into z, returning the bits
// shifted out the bottom (left-justified in the returned limb).
// Grounded on arith.go's shrVU_g.
func shrVU(z, x []Limb, s uint) (c Limb) {
	if n := len(z); n > 0 {
		if s == 0 {
			copy(z, x)
			return 0
		}
		sInv := limbBits - s
		w1 := x[0]
		c = w1 << sInv
		for i := 0; i < n-1; i++ {
			w := w1
			w1 = x[i+1]
			z[i] = w>>s | w1<<sInv
		}
		z[n-1] = w1 >> s
	}
	return
}

// mulAddVWW computes z = x*y + r (r a carry-in limb), returning the
// carry out. Grounded on arith.go's mulAddVWW_g.
func mulAddVWW(z, x []Limb, y, r Limb) (c Limb) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW computes z += x*y in place, returning the carry out.
// Grounded on arith.go's addMulVVW_g; this is the inner step of
// schoolbook multiplication.
func addMulVVW(z, x []Limb, y Limb) (c Limb) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		c, z[i] = addWW(z0, c, 0)
		c += z1
	}
	return
}

// divWVW computes z[i] = (xn:x[i])/y for i from the top down, returning
// the final remainder. Grounded on arith.go's divWVW_g; this is the
// single-pass scalar division loop divModLimb drives.
func divWVW(z []Limb, xn Limb, x []Limb, y Limb) (r Limb) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW64(r, x[i], y)
	}
	return
}
