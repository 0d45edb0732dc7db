// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements bit-level operations on Magia: bit length, trailing zeros, population count, individual bit
// test/set, wide-window extraction, logical and/or/xor, shifts, and mask
// constructors. Grounded on _examples/bford-go/src/math/big/nat.go
// (bitLen/trailingZeroBits/bit/setBit/and/andNot/or/xor/shl/shr).

package hugeint

import "math/bits"

// bitLen returns the number of bits required to represent x; 0 for zero.
func (x Magia) bitLen() int {
	x = x.norm()
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*limbBits + bitLen32(x[len(x)-1])
}

// trailingZeroCount returns the number of trailing zero bits, or -1 for
// a zero value.
func (x Magia) trailingZeroCount() int {
	for i, w := range x {
		if w != 0 {
			return i*limbBits + bits.TrailingZeros32(w)
		}
	}
	return -1
}

// popCount returns the number of set bits in x.
func (x Magia) popCount() int {
	n := 0
	for _, w := range x {
		n += bits.OnesCount32(w)
	}
	return n
}

// isPowerOfTwo reports whether x is nonzero and has exactly one bit
// set.
func (x Magia) isPowerOfTwo() bool {
	return x.popCount() == 1
}

// testBit returns the value of bit i (0 or 1), with bit 0 the least
// significant. i must be >= 0.
func (x Magia) testBit(i uint) uint {
	j := i / limbBits
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % limbBits) & 1)
}

// testAnyBitInLowerN reports whether any of the low n bits of x are set,
// used by the round-toward-negative-infinity correction on signed right
// shift.
func (x Magia) testAnyBitInLowerN(n uint) bool {
	j := n / limbBits
	if j >= uint(len(x)) {
		for _, w := range x {
			if w != 0 {
				return true
			}
		}
		return false
	}
	for i := uint(0); i < j; i++ {
		if x[i] != 0 {
			return true
		}
	}
	if r := n % limbBits; r != 0 && x[j]&(1<<r-1) != 0 {
		return true
	}
	return false
}

// setBit returns x with bit i set to b (0 or 1). b must be 0 or 1.
func (z Magia) setBit(x Magia, i uint, b uint) Magia {
	j := int(i / limbBits)
	m := Limb(1) << (i % limbBits)
	switch b {
	case 0:
		z = z.make(len(x))
		copy(z, x)
		if j >= len(x) {
			return z
		}
		z[j] &^= m
		return z.norm()
	case 1:
		n := len(x)
		if j >= n {
			z = z.make(j + 1)
		} else {
			z = z.make(n)
		}
		copy(z, x)
		z[j] |= m
		return z
	}
	panic("hugeint: bit value must be 0 or 1")
}

// extractU64AtBitIndex reads up to three consecutive limbs and assembles
// a 64-bit window starting at bitIndex, zero-extending past the end of
// the magnitude.
func (x Magia) extractU64AtBitIndex(bitIndex uint) uint64 {
	limbAt := func(i int) uint64 {
		if i < 0 || i >= len(x) {
			return 0
		}
		return uint64(x[i])
	}
	j := int(bitIndex / limbBits)
	shift := bitIndex % limbBits
	lo := limbAt(j) | limbAt(j+1)<<limbBits
	if shift == 0 {
		return lo
	}
	hi := limbAt(j + 2)
	return (lo >> shift) | (hi << (limbBits*2 - shift))
}

// withSetBit returns a Magia with exactly bit n set.
func withSetBit(n uint) Magia {
	return Magia(nil).setBit(nil, n, 1)
}

// withBitMask returns a Magia equal to 2^w - 1 (w contiguous low bits set).
func withBitMask(w uint) Magia {
	if w == 0 {
		return Magia{}
	}
	z := Magia(nil).setBit(nil, w, 1)
	return z.sub(z, magiaOne)
}

// withIndexedBitMask returns a Magia with a contiguous run of w ones
// starting at bit index i.
func withIndexedBitMask(i, w uint) Magia {
	return Magia(nil).shiftLeft(withBitMask(w), i)
}

// newWithUint64AtBitIndex returns a Magia equal to x << bitIndex, used
// by isqrt to seed a Newton iteration at an arbitrary limb-unaligned bit
// position.
func newWithUint64AtBitIndex(x uint64, bitIndex uint) Magia {
	return Magia(nil).shiftLeft(Magia(nil).setUint64(x), bitIndex)
}

// shiftLeft returns z = x << n, allocating. Grounded on nat.go's shl.
func (z Magia) shiftLeft(x Magia, n uint) Magia {
	x = x.norm()
	m := len(x)
	if m == 0 {
		return z.make(0)
	}
	limbShift := int(n / limbBits)
	bitShift := n % limbBits
	out := m + limbShift
	z = z.make(out + 1)
	z[out] = shlVU(z[limbShift:out], x, bitShift)
	for i := 0; i < limbShift; i++ {
		z[i] = 0
	}
	return z.norm()
}

// shiftRight returns z = x >> n, allocating. Grounded on nat.go's shr.
// Low bits are discarded; callers needing the "round toward -inf"
// correction for negative signed values do so at the SignedInt layer
// using testAnyBitInLowerN.
func (z Magia) shiftRight(x Magia, n uint) Magia {
	m := len(x)
	limbShift := int(n / limbBits)
	out := m - limbShift
	if out <= 0 {
		return z.make(0)
	}
	bitShift := n % limbBits
	z = z.make(out)
	shrVU(z, x[limbShift:], bitShift)
	return z.norm()
}

// and computes z = x & y (magnitudes only; result is non-negative).
func (z Magia) and(x, y Magia) Magia {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	z = z.make(n)
	for i := 0; i < n; i++ {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

// andNot computes z = x &^ y.
func (z Magia) andNot(x, y Magia) Magia {
	m, n := len(x), len(y)
	if n > m {
		n = m
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] &^ y[i]
	}
	copy(z[n:m], x[n:m])
	return z.norm()
}

// or computes z = x | y.
func (z Magia) or(x, y Magia) Magia {
	m, n, s := len(x), len(y), x
	if m < n {
		m, n, s = n, m, y
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], s[n:m])
	return z.norm()
}

// xor computes z = x ^ y.
func (z Magia) xor(x, y Magia) Magia {
	m, n, s := len(x), len(y), x
	if m < n {
		m, n, s = n, m, y
	}
	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], s[n:m])
	return z.norm()
}
