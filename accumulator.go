// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Accumulator, the mutable counterpart to
// SignedInt: a buffer-reusing running total meant
// for tight loops that would otherwise allocate a fresh SignedInt per
// step. Grounded on math/big's own receiver-mutation convention
// (every *Int method writes into its receiver and returns it for
// chaining) and on magia.go's make/growCapacity buffer-reuse discipline.

package hugeint

// Accumulator is a mutable arbitrary-precision signed integer. Unlike
// SignedInt, its methods mutate the receiver in place and return it for
// chaining, reusing its backing limb storage across operations rather
// than allocating a new one each time. An Accumulator is not safe for
// concurrent use; each goroutine needing one should hold its own.
type Accumulator struct {
	neg    bool
	mag    Magia
	scratch Magia // reusable scratch buffer for operations needing one
}

// NewAccumulator returns an Accumulator initialized to zero, with
// storage pre-sized in groups of 4 limbs as magia.go's growCapacity
// describes.
func NewAccumulator() *Accumulator {
	return &Accumulator{mag: make(Magia, 0, growCapacity(4))}
}

// SetZero resets the accumulator to zero, keeping its storage.
func (a *Accumulator) SetZero() *Accumulator {
	a.neg = false
	a.mag = a.mag.make(0)
	return a
}

// Set sets the accumulator to the value of x.
func (a *Accumulator) Set(x SignedInt) *Accumulator {
	a.neg = x.neg
	a.mag = a.mag.set(x.mag)
	return a
}

// SetAccumulator sets the accumulator to the current value of other.
func (a *Accumulator) SetAccumulator(other *Accumulator) *Accumulator {
	a.neg = other.neg
	a.mag = a.mag.set(other.mag)
	return a
}

// SetInt64 sets the accumulator to x.
func (a *Accumulator) SetInt64(x int64) *Accumulator {
	neg, mag := decomposeInt64(x)
	a.neg = neg
	a.mag = a.mag.setUint64(mag)
	return a
}

// SetUint64 sets the accumulator to x.
func (a *Accumulator) SetUint64(x uint64) *Accumulator {
	a.neg = false
	a.mag = a.mag.setUint64(x)
	return a
}

// ToSignedInt returns an immutable snapshot of the accumulator's
// current value; the snapshot does not alias the accumulator's storage,
// so subsequent mutation of a does not affect it.
func (a *Accumulator) ToSignedInt() SignedInt {
	return normalizeSign(a.neg, a.mag.clone())
}

// Sign returns -1, 0, or +1 according to the accumulator's current sign.
func (a *Accumulator) Sign() int {
	switch {
	case len(a.mag) == 0:
		return 0
	case a.neg:
		return -1
	default:
		return 1
	}
}

// addSignedMagnitude implements the shared sign-aware add/sub logic
// used by both Add and Sub, mirroring SignedInt.Add.
func (a *Accumulator) addSignedMagnitude(yNeg bool, yMag Magia) *Accumulator {
	if a.neg == yNeg {
		a.mag = a.mag.add(a.mag, yMag)
		return a
	}
	switch cmp(a.mag, yMag) {
	case 0:
		a.neg = false
		a.mag = a.mag.make(0)
	case 1:
		a.mag = a.mag.sub(a.mag, yMag)
	default:
		// a.mag < yMag: grow in place (preserving and zero-extending the
		// current value) then flip it against yMag.
		a.mag = a.mag.make(len(yMag))
		mutateReverseSub(a.mag, yMag)
		a.neg = yNeg
		a.mag = a.mag.norm()
	}
	if len(a.mag) == 0 {
		a.neg = false
	}
	return a
}

// Add adds x into the accumulator in place.
func (a *Accumulator) Add(x SignedInt) *Accumulator {
	return a.addSignedMagnitude(x.neg, x.mag)
}

// Sub subtracts x from the accumulator in place.
func (a *Accumulator) Sub(x SignedInt) *Accumulator {
	return a.addSignedMagnitude(!x.neg, x.mag)
}

// AddInt64 adds the int64 y into the accumulator in place.
func (a *Accumulator) AddInt64(y int64) *Accumulator {
	neg, mag := decomposeInt64(y)
	return a.addSignedMagnitude(neg, Magia(nil).setUint64(mag))
}

// Mul multiplies the accumulator by x in place. Dispatches between a
// scalar multiply (x fits in one limb), a multi-limb multiply, and an
// in-place squaring when x aliases the accumulator's own current value.
func (a *Accumulator) Mul(x SignedInt) *Accumulator {
	switch {
	case alias(a.mag, x.mag):
		a.mag = a.scratch.sqr(a.mag)
		a.scratch = a.mag
	case len(x.mag) <= 1:
		y := Limb(0)
		if len(x.mag) == 1 {
			y = x.mag[0]
		}
		a.mag = a.mag.mulAddLimb(a.mag, y, 0)
	default:
		a.mag = a.mag.mul(a.mag, x.mag)
	}
	a.neg = a.neg != x.neg
	if len(a.mag) == 0 {
		a.neg = false
	}
	return a
}

// MulInt64 multiplies the accumulator by the int64 y in place.
func (a *Accumulator) MulInt64(y int64) *Accumulator {
	neg, mag := decomposeInt64(y)
	a.mag = a.mag.mulLimb64(a.mag, mag)
	a.neg = a.neg != neg
	if len(a.mag) == 0 {
		a.neg = false
	}
	return a
}

// AddSquareOf adds x*x into the accumulator in place, without negating
// the accumulator's sign (a square is always non-negative).
func (a *Accumulator) AddSquareOf(x SignedInt) *Accumulator {
	sq := Magia(nil).sqr(x.mag)
	return a.addSignedMagnitude(false, sq)
}

// AddAbsValueOf adds |x| into the accumulator in place.
func (a *Accumulator) AddAbsValueOf(x SignedInt) *Accumulator {
	return a.addSignedMagnitude(false, x.mag)
}
