// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the binary GCD (Stein's algorithm). Grounded on
// _examples/bford-go/src/math/big/nat.go's binaryGCD shape (the
// Go-zh-go.old mirror's big.Int.GCD delegates to the same nat-level
// algorithm), operating purely on magnitudes.

package hugeint

// gcd computes z = gcd(x, y) for non-negative magnitudes x, y, at least
// one of which is non-zero. Uses Stein's binary GCD: factor out common
// powers of two, then repeatedly replace the larger of a reduced pair
// with their difference, stripped of all its factors of two, until the
// difference is zero.
func (z Magia) gcd(x, y Magia) Magia {
	x = x.clone()
	y = y.clone()

	if x.isZero() {
		return z.set(y)
	}
	if y.isZero() {
		return z.set(x)
	}

	xz := uint(x.trailingZeroCount())
	yz := uint(y.trailingZeroCount())
	shift := xz
	if yz < shift {
		shift = yz
	}
	x = x.shiftRight(x, xz)
	y = y.shiftRight(y, yz)

	for {
		if cmp(x, y) > 0 {
			x, y = y, x
		}
		// Invariant: x <= y, both odd.
		y = y.sub(y, x)
		if y.isZero() {
			break
		}
		y = y.shiftRight(y, uint(y.trailingZeroCount()))
	}

	return z.shiftLeft(x, shift)
}

// lcm computes z = x*y / gcd(x,y) for non-negative magnitudes; the
// result is zero when either operand is zero.
// Divides by the gcd before multiplying to keep the intermediate small,
// per the usual lcm identity.
func (z Magia) lcm(x, y Magia) Magia {
	if x.isZero() && y.isZero() {
		return z.set(nil)
	}
	g := Magia(nil).gcd(x, y)
	reduced, _ := Magia(nil).divMod(nil, x, g)
	return z.mul(reduced, y)
}
