// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements schoolbook multiplication and in-place squaring.
// Grounded on nat.go's basicMul, with the Karatsuba dispatch in
// nat.cmul dropped entirely (schoolbook only).

package hugeint

// mul computes z = x * y by schoolbook outer product. Grounded on
// nat.go's basicMul / cmul (Karatsuba path removed).
func (z Magia) mul(x, y Magia) Magia {
	x = x.norm()
	y = y.norm()
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return z.make(0)
	}
	if n == 1 {
		return z.mulAddLimb(x, y[0], 0)
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m + n)
	basicMul(z, x, y)
	return z.norm()
}

// basicMul writes the product of x and y (non-normalized, length
// len(x)+len(y)) into z. z is cleared first; the carry out of each row
// is written into z[i+len(x)] whether or not it is zero.
func basicMul(z, x, y Magia) {
	for i := range z[:len(x)+len(y)] {
		z[i] = 0
	}
	for i, yi := range y {
		if yi != 0 {
			z[i+len(x)] = addMulVVW(z[i:i+len(x)], x, yi)
		}
	}
}

// mulAddLimb computes z = x*y + r for a single-limb y, with r a
// carry-in. Grounded on nat.go's cmulAddWW.
func (z Magia) mulAddLimb(x Magia, y, r Limb) Magia {
	if len(x) == 0 || y == 0 {
		return z.setLimb(r)
	}
	z = z.make(len(x) + 1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, y, r)
	return z.norm()
}

// mulLimb64 computes z = x*y for a 64-bit scalar y. When y's high 32 bits
// are non-zero it forms x*lo and x*hi as two separate single-limb
// products and adds the second one limb up; the two partial products are
// not interleaved on a single carry chain.
func (z Magia) mulLimb64(x Magia, y uint64) Magia {
	lo := Limb(y)
	hi := Limb(y >> limbBits)
	if hi == 0 {
		return z.mulAddLimb(x, lo, 0)
	}
	lowPart := Magia(nil).mulAddLimb(x, lo, 0)
	highPart := Magia(nil).mulAddLimb(x, hi, 0)
	// z = lowPart + (highPart << 32)
	z = z.make(len(x) + 3)
	copy(z, lowPart)
	for i := len(lowPart); i < len(z); i++ {
		z[i] = 0
	}
	addAt(z, highPart, 1)
	return z.norm()
}

// addAt implements z += x << (limbBits*i) in place; z must already be
// long enough. Grounded on nat.go's addAt.
func addAt(z, x Magia, i int) {
	if n := len(x); n > 0 {
		c := addVV(z[i:i+n], z[i:i+n], x)
		if c != 0 {
			j := i + n
			if j < len(z) {
				addVW(z[j:], z[j:], c)
			}
		}
	}
}

// sqr computes z = x*x, exploiting the symmetry of partial products:
// cross terms x[i]*x[j] for i<j are computed once and added twice; the
// diagonal terms x[i]^2 are added once. No direct nat.go analogue
// survives without Karatsuba, so the cross/diagonal split below is
// this package's own.
func (z Magia) sqr(x Magia) Magia {
	x = x.norm()
	n := len(x)
	if n == 0 {
		return z.make(0)
	}
	if alias(z, x) {
		z = nil
	}
	z = z.make(2 * n)
	for i := range z {
		z[i] = 0
	}

	// Cross terms: for each i, add x[i] * x[i+1:] into z[2i+1:] once
	// (columns i+1..n-1); the one-bit shift below then doubles the sum,
	// so each pair (i,j) with i<j is counted exactly twice.
	for i := 0; i < n-1; i++ {
		if x[i] == 0 {
			continue
		}
		c := addMulVVW(z[2*i+1:2*i+1+(n-i-1)], x[i+1:], x[i])
		propagateCarry(z[2*i+1+(n-i-1):], c)
	}

	// The cross-term sum computed above counts each pair once; double it
	// by shifting left one bit before adding the diagonal terms.
	shlVU(z, z, 1)

	// Diagonal terms: x[i]^2 added at column 2i, independent carry chain.
	var carry Limb
	for i := 0; i < n; i++ {
		hi, lo := mulWW(x[i], x[i])
		var c0, c1 Limb
		c0, z[2*i] = addWW(z[2*i], lo, carry)
		c1, z[2*i+1] = addWW(z[2*i+1], hi, c0)
		carry = c1
	}
	propagateCarry(z[2*n:], carry)

	return z.norm()
}

// propagateCarry adds carry into z[0], rippling into z[1], z[2], ...
// only as long as each addition keeps producing a further carry out.
func propagateCarry(z []Limb, carry Limb) {
	for i := 0; carry != 0 && i < len(z); i++ {
		var c Limb
		c, z[i] = addWW(z[i], carry, 0)
		carry = c
	}
}
