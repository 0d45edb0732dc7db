// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements scalar division and Knuth Algorithm D.
// Grounded on nat.go's divW/div/divLarge.

package hugeint

// divModLimb computes q, r = x / y, x % y for a single-limb divisor.
// Grounded on nat.go's divW (single sweep high-to-low via divWVW).
func (z Magia) divModLimb(x Magia, y Limb) (q Magia, r Limb) {
	if y == 0 {
		panic("hugeint: division by zero") // caller-level guards panic with a proper *Error first
	}
	x = x.norm()
	if y == 1 {
		return z.set(x), 0
	}
	if len(x) == 0 {
		return z.make(0), 0
	}
	z = z.make(len(x))
	r = divWVW(z, 0, x, y)
	return z.norm(), r
}

// divModUint64 dispatches to the 32-bit scalar path when the divisor
// fits in 32 bits, else to the multi-limb Knuth path.
func (z Magia) divModUint64(x Magia, y uint64) (q Magia, r uint64) {
	if lo := Limb(y); uint64(lo) == y {
		qq, rr := z.divModLimb(x, lo)
		return qq, uint64(rr)
	}
	var rMag Magia
	yArr := [2]Limb{Limb(y), Limb(y >> limbBits)}
	qq, rMag := z.divMod(nil, x, yArr[:])
	return qq, rMag.uint64()
}

// divMod computes q = floor(x/y), r = x mod y (both non-negative
// magnitudes), using z for q's storage and rbuf for r's. Grounded on
// nat.go's div, dispatching between the trivial, single-limb, and
// Knuth Algorithm D paths.
func (z Magia) divMod(rbuf, x, y Magia) (q, r Magia) {
	y = y.norm()
	if len(y) == 0 {
		panic("hugeint: division by zero")
	}
	x = x.norm()
	if cmp(x, y) < 0 {
		return z.make(0), rbuf.set(x)
	}
	if len(y) == 1 {
		qq, rr := z.divModLimb(x, y[0])
		return qq, rbuf.setLimb(rr)
	}
	return z.divKnuth(rbuf, x, y)
}

// divKnuth implements Knuth Algorithm D. u (length
// m+n) and v (length n >= 2, v's top limb non-zero) are both already
// normalized by the caller. Grounded on nat.go's divLarge.
func (z Magia) divKnuth(rbuf, u, v Magia) (q, r Magia) {
	n := len(v)
	m := len(u) - n

	if alias(z, u) || alias(z, v) {
		z = nil
	}

	// D1. Normalize so the divisor's top bit is set.
	shift := uint(leadingZeros32(v[n-1]))
	vn := Magia(nil)
	if shift > 0 {
		vn = vn.make(n)
		shlVU(vn, v, shift)
	} else {
		vn = v
	}
	un := Magia(nil).make(len(u) + 1)
	un[len(u)] = shlVU(un[:len(u)], u, shift)

	q = z.make(m + 1)
	qhatv := Magia(nil).make(n + 1)

	// D2/D7: main loop, j from m down to 0.
	for j := m; j >= 0; j-- {
		// D3. Trial quotient q-hat, capped at limbMax. When the top
		// dividend limb equals the divisor's top limb, q-hat stays at
		// limbMax and the correction loop is skipped (testing it would
		// require a 33-bit rhat); q-hat may then be one too high, which
		// the D6 add-back corrects. Grounded on nat.go's divLarge, which
		// skips the correction in exactly this case.
		qhat := Limb(limbMax)
		if top := un[j+n]; top != vn[n-1] {
			var rhat Limb
			qhat, rhat = divWW64(top, un[j+n-1], vn[n-1])

			// Correct q-hat by testing q-hat*v[n-2] > rhat*B + u[j+n-2],
			// repeating the decrement-and-retest, and stopping once rhat
			// would overflow 32 bits.
			hi, lo := mulWW(qhat, vn[n-2])
			ujn2 := un[j+n-2]
			for hi > rhat || (hi == rhat && lo > ujn2) {
				qhat--
				prev := rhat
				rhat += vn[n-1]
				if rhat < prev { // rhat overflowed 32 bits: no further correction needed
					break
				}
				hi, lo = mulWW(qhat, vn[n-2])
			}
		}

		// D4. Multiply-subtract u[j..j+n] -= qhat*v.
		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		borrow := subVV(un[j:j+n+1], un[j:j+n+1], qhatv)

		// D6. If the subtraction borrowed, qhat was one too high: add v
		// back and decrement.
		if borrow != 0 {
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	// D8. Denormalize the remainder.
	shrVU(un, un, shift)
	return q.norm(), un[:n].norm()
}
