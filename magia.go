// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Magia, the multi-limb unsigned magnitude engine.
// Magia is a little-endian []Limb; "active length" is simply
// len(Magia), and routines that need an explicit (buffer, length) pair
// take a reslice Magia[:n] rather than a copy, exactly as math/big's
// nat passes x[:n] between routines.
//
// Grounded on _examples/bford-go/src/math/big/nat.go (cadd/csub/cmp/
// basicMul/cmake/norm), with the Karatsuba, Montgomery, and
// constant-time selection machinery dropped entirely: schoolbook
// multiplication only, no modular inverse, no constant-time guarantee.

package hugeint

// Magia is an unsigned multi-precision magnitude: a little-endian
// sequence of 32-bit limbs. Canonical zero is the empty slice. A Magia
// is normalized when its top limb is non-zero (or its length is 0);
// most routines accept non-normalized inputs but normalize their output.
type Magia []Limb

var (
	magiaZero = Magia{}
	magiaOne  = Magia{1}
	magiaTwo  = Magia{2}
)

// norm trims leading (high) zero limbs.
func (z Magia) norm() Magia {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// normalized reports whether z's top limb is non-zero, or z is empty.
func (z Magia) normalized() bool {
	i := len(z)
	return i == 0 || z[i-1] != 0
}

// growCapacity rounds n up to a multiple of 4 limbs; Magia-level
// factories and Accumulator both use this rounding so a fresh buffer
// handed to an Accumulator doesn't immediately need to regrow.
func growCapacity(n int) int {
	const group = 4
	return (n + group - 1) / group * group
}

// make returns a Magia of length n, reusing z's backing array when it
// has enough capacity (and clearing any newly-exposed limbs), or
// allocating a new one with a little extra headroom otherwise.
// Grounded on nat.go's cmake.
func (z Magia) make(n int) Magia {
	if n <= cap(z) {
		out := z[:n]
		if n > len(z) {
			for i := len(z); i < n; i++ {
				out[i] = 0
			}
		}
		return out
	}
	return make(Magia, n, growCapacity(n))
}

// clone returns an independent copy of x.
func (x Magia) clone() Magia {
	out := make(Magia, len(x))
	copy(out, x)
	return out
}

// set copies x into z, reusing z's backing array if possible.
func (z Magia) set(x Magia) Magia {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// setLimb sets z to the single-limb value x.
func (z Magia) setLimb(x Limb) Magia {
	if x == 0 {
		return z.make(0)
	}
	z = z.make(1)
	z[0] = x
	return z
}

// setUint64 sets z to the uint64 value x.
func (z Magia) setUint64(x uint64) Magia {
	if x == 0 {
		return z.make(0)
	}
	if hi := Limb(x >> limbBits); hi != 0 {
		z = z.make(2)
		z[0] = Limb(x)
		z[1] = hi
		return z
	}
	z = z.make(1)
	z[0] = Limb(x)
	return z
}

// uint64 returns the low 64 bits of x (zero-extended if shorter).
func (x Magia) uint64() uint64 {
	switch len(x) {
	case 0:
		return 0
	case 1:
		return uint64(x[0])
	default:
		return uint64(x[0]) | uint64(x[1])<<limbBits
	}
}

// alias reports whether x and y share the same backing array, the
// condition under which a routine must not write its result in place.
func alias(x, y Magia) bool {
	return cap(x) > 0 && cap(y) > 0 && &(x[:cap(x)])[cap(x)-1] == &(y[:cap(y)])[cap(y)-1]
}

// cmp compares x and y as unsigned magnitudes (non-normalized inputs are
// tolerated: leading zero limbs are skipped conceptually by comparing
// normalized lengths first). Returns -1, 0, or +1.
func cmp(x, y Magia) int {
	x = x.norm()
	y = y.norm()
	switch {
	case len(x) != len(y):
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// isZero reports whether x is the canonical (or any non-normalized) zero.
func (x Magia) isZero() bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// add computes z = x + y. Grounded on nat.go's cadd.
func (z Magia) add(x, y Magia) Magia {
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	if m == 0 {
		return z.make(0)
	}
	if n == 0 {
		return z.set(x)
	}
	z = z.make(m + 1)
	c := addVV(z[:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// mutateAdd adds y into x in place: len(x) >= len(y) is required; the
// lower len(y) limbs are added pairwise and the carry is propagated
// through x's remaining high limbs. Returns the carry out of the top
// limb.
func mutateAdd(x []Limb, y []Limb) (carryOut Limb) {
	n := len(y)
	c := addVV(x[:n], x[:n], y)
	if len(x) > n {
		c = addVW(x[n:], x[n:], c)
	}
	return c
}

// sub computes z = x - y. Precondition: x >= y (unsigned). Grounded on
// nat.go's csub.
func (z Magia) sub(x, y Magia) Magia {
	m, n := len(x), len(y)
	switch {
	case n == 0:
		return z.set(x)
	case m == n:
		z = z.make(m)
		subVV(z, x, y)
	default:
		// m > n, since x >= y is a precondition.
		z = z.make(m)
		c := subVV(z[:n], x, y)
		subVW(z[n:], x[n:], c)
	}
	return z.norm()
}

// mutateReverseSub computes x's buffer := y - x in place, for the case
// where the caller has already established y > x. x must have length
// >= len(y).
func mutateReverseSub(x []Limb, y Magia) {
	n := len(y)
	subVV(x[:n], y, x[:n])
	for i := n; i < len(x); i++ {
		x[i] = 0
	}
}
