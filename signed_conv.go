// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements SignedInt factories and machine-integer
// conversions. Grounded on
// math/big's Int.SetInt64/SetUint64/Int64/Uint64/IsInt64/IsUint64,
// generalized with truncating, exact, and clamped conversion modes.

package hugeint

import "math/rand"

func fromInt32(x int32) SignedInt {
	if x < 0 {
		return normalizeSign(true, Magia(nil).setUint64(uint64(-int64(x))))
	}
	return normalizeSign(false, Magia(nil).setUint64(uint64(x)))
}

func fromUint32(x uint32) SignedInt {
	return normalizeSign(false, Magia(nil).setUint64(uint64(x)))
}

func fromInt64(x int64) SignedInt {
	if x < 0 {
		// Handle math.MinInt64 without overflowing -x.
		return normalizeSign(true, Magia(nil).setUint64(uint64(-(x + 1)) + 1))
	}
	return normalizeSign(false, Magia(nil).setUint64(uint64(x)))
}

func fromUint64(x uint64) SignedInt {
	return normalizeSign(false, Magia(nil).setUint64(x))
}

// FromInt32 returns the SignedInt value of x.
func FromInt32(x int32) SignedInt { return fromInt32(x) }

// FromUint32 returns the SignedInt value of x.
func FromUint32(x uint32) SignedInt { return fromUint32(x) }

// FromInt64 returns the SignedInt value of x.
func FromInt64(x int64) SignedInt { return fromInt64(x) }

// FromUint64 returns the SignedInt value of x.
func FromUint64(x uint64) SignedInt { return fromUint64(x) }

// FromLimbsLittleEndian builds a non-negative SignedInt directly from a
// caller-supplied little-endian limb sequence. The slice is copied.
func FromLimbsLittleEndian(limbs []uint32) SignedInt {
	mag := make(Magia, len(limbs))
	copy(mag, limbs)
	return normalizeSign(false, mag.norm())
}

// FromTwosComplementBytes builds a SignedInt from minimal-length
// two's-complement bytes in the given byte order.
func FromTwosComplementBytes(b []byte, bigEndian bool) SignedInt {
	mag, neg := fromTwosComplementBytes(b, bigEndian)
	return normalizeSign(neg, mag)
}

// ToTwosComplementBytes renders x as minimal-length two's-complement
// bytes in the given byte order.
func (x SignedInt) ToTwosComplementBytes(bigEndian bool) []byte {
	return toTwosComplementBytes(x.mag, x.neg, bigEndian)
}

// WithSetBit returns the SignedInt with exactly bit n set (a
// non-negative power of two).
func WithSetBit(n uint) SignedInt {
	return SignedInt{mag: withSetBit(n)}
}

// WithBitMask returns the SignedInt equal to 2^w - 1.
func WithBitMask(w uint) SignedInt {
	return SignedInt{mag: withBitMask(w)}
}

// WithIndexedBitMask returns the SignedInt with a contiguous run of w
// one-bits starting at bit index i.
func WithIndexedBitMask(i, w uint) SignedInt {
	return SignedInt{mag: withIndexedBitMask(i, w)}
}

// Random returns a uniformly distributed SignedInt in [0, bound) if
// signed is false, or in (-bound, bound) with an independently random
// sign if signed is true. bound must be positive.
func Random(r *rand.Rand, bound SignedInt, signed bool) SignedInt {
	if bound.IsZero() || bound.IsNegative() {
		panic(newErr(KindInvalidArgument, "random bound must be positive"))
	}
	mag := randomBelow(r, bound.mag)
	neg := signed && mag.bitLen() > 0 && r.Intn(2) == 1
	return normalizeSign(neg, mag)
}

// Int32 returns x truncated to an int32 (low 32 bits, two's-complement
// wraparound).
func (x SignedInt) Int32() int32 {
	v := uint32(x.mag.uint64())
	if x.neg {
		return -int32(v)
	}
	return int32(v)
}

// Uint32 returns x truncated to a uint32.
func (x SignedInt) Uint32() uint32 {
	v := uint32(x.mag.uint64())
	if x.neg {
		return -v
	}
	return v
}

// Int64 returns x truncated to an int64.
func (x SignedInt) Int64() int64 {
	v := x.mag.uint64()
	if x.neg {
		return -int64(v)
	}
	return int64(v)
}

// Uint64 returns x truncated to a uint64.
func (x SignedInt) Uint64() uint64 {
	v := x.mag.uint64()
	if x.neg {
		return -v
	}
	return v
}

// fitsBits reports whether x's magnitude fits in the given number of
// bits, with one extra bit of headroom allowed for a negative value
// whose magnitude is exactly 2^(bits-1) (the two's-complement minimum).
func (x SignedInt) fitsBits(bits uint) bool {
	bl := uint(x.mag.bitLen())
	if bl < bits {
		return true
	}
	return bl == bits && x.neg && x.mag.trailingZeroCount() == int(bits-1)
}

// ExactInt32 returns x as an int32 and true if x fits exactly, or
// (0, false) otherwise.
func (x SignedInt) ExactInt32() (int32, bool) {
	if !x.fitsBits(32) {
		return 0, false
	}
	return x.Int32(), true
}

// ExactUint32 returns x as a uint32 and true if x fits exactly (x must
// be non-negative and fit in 32 bits).
func (x SignedInt) ExactUint32() (uint32, bool) {
	if x.neg || x.mag.bitLen() > 32 {
		return 0, false
	}
	return x.Uint32(), true
}

// ExactInt64 returns x as an int64 and true if x fits exactly.
func (x SignedInt) ExactInt64() (int64, bool) {
	if !x.fitsBits(64) {
		return 0, false
	}
	return x.Int64(), true
}

// ExactUint64 returns x as a uint64 and true if x fits exactly.
func (x SignedInt) ExactUint64() (uint64, bool) {
	if x.neg || x.mag.bitLen() > 64 {
		return 0, false
	}
	return x.Uint64(), true
}

// ClampedInt32 returns x clamped into the int32 range.
func (x SignedInt) ClampedInt32() int32 {
	if v, ok := x.ExactInt32(); ok {
		return v
	}
	if x.neg {
		return -1 << 31
	}
	return 1<<31 - 1
}

// ClampedUint32 returns x clamped into the uint32 range.
func (x SignedInt) ClampedUint32() uint32 {
	if x.neg {
		return 0
	}
	if v, ok := x.ExactUint32(); ok {
		return v
	}
	return 1<<32 - 1
}

// ClampedInt64 returns x clamped into the int64 range.
func (x SignedInt) ClampedInt64() int64 {
	if v, ok := x.ExactInt64(); ok {
		return v
	}
	if x.neg {
		return -1 << 63
	}
	return 1<<63 - 1
}

// ClampedUint64 returns x clamped into the uint64 range.
func (x SignedInt) ClampedUint64() uint64 {
	if x.neg {
		return 0
	}
	if v, ok := x.ExactUint64(); ok {
		return v
	}
	return 1<<64 - 1
}
