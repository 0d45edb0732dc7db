// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hugeint

import "testing"

var addWWTests = []struct {
	x, y, c Limb
	z1, z0  Limb
}{
	{0, 0, 0, 0, 0},
	{1, 1, 0, 0, 2},
	{limbMax, 1, 0, 1, 0},
	{limbMax, limbMax, 1, 1, limbMax},
}

func TestAddWW(t *testing.T) {
	for i, tt := range addWWTests {
		z1, z0 := addWW(tt.x, tt.y, tt.c)
		if z1 != tt.z1 || z0 != tt.z0 {
			t.Errorf("#%d: addWW(%#x, %#x, %#x) = %#x:%#x, want %#x:%#x",
				i, tt.x, tt.y, tt.c, z1, z0, tt.z1, tt.z0)
		}
	}
}

func TestSubWW(t *testing.T) {
	for i, tt := range addWWTests {
		// subWW(z0, y, c) must recover x when z0 = x + y + c (mod 2^32)
		// with borrow tt.z1.
		b, x := subWW(tt.z0, tt.y, tt.c)
		if b != tt.z1 || x != tt.x {
			t.Errorf("#%d: subWW(%#x, %#x, %#x) = %#x:%#x, want %#x:%#x",
				i, tt.z0, tt.y, tt.c, b, x, tt.z1, tt.x)
		}
	}
}

func TestMulWW(t *testing.T) {
	tests := []struct {
		x, y   Limb
		z1, z0 Limb
	}{
		{0, 0, 0, 0},
		{1, limbMax, 0, limbMax},
		{limbMax, limbMax, limbMax - 1, 1},
		{0x10000, 0x10000, 1, 0},
	}
	for i, tt := range tests {
		z1, z0 := mulWW(tt.x, tt.y)
		if z1 != tt.z1 || z0 != tt.z0 {
			t.Errorf("#%d: mulWW(%#x, %#x) = %#x:%#x, want %#x:%#x",
				i, tt.x, tt.y, z1, z0, tt.z1, tt.z0)
		}
	}
}

func TestMulAddWWW(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := Limb(i * 2654435761)
		y := Limb(i*40503 + 7)
		c := Limb(i % 3)
		hi, lo := mulAddWWW(x, y, c)
		want := uint64(x)*uint64(y) + uint64(c)
		got := uint64(hi)<<limbBits | uint64(lo)
		if got != want {
			t.Errorf("mulAddWWW(%#x, %#x, %#x) = %#x, want %#x", x, y, c, got, want)
		}
	}
}

func TestDivWW64(t *testing.T) {
	tests := []struct {
		u1, u0, v Limb
	}{
		{0, 17, 5},
		{0, 0, 1},
		{1, 0, 2},
		{0x7fffffff, limbMax, limbMax},
	}
	for i, tt := range tests {
		q, r := divWW64(tt.u1, tt.u0, tt.v)
		dividend := uint64(tt.u1)<<limbBits | uint64(tt.u0)
		if uint64(q)*uint64(tt.v)+uint64(r) != dividend || r >= tt.v {
			t.Errorf("#%d: divWW64(%#x, %#x, %#x) = q=%#x r=%#x, doesn't reconstruct dividend",
				i, tt.u1, tt.u0, tt.v, q, r)
		}
	}
}

func TestMulHi64(t *testing.T) {
	tests := []struct{ x, y uint64 }{
		{0, 0},
		{1, 1},
		{1 << 63, 2},
		{18446744073709551615, 18446744073709551615},
	}
	for i, tt := range tests {
		hi := mulHi64(tt.x, tt.y)
		// Check against a big.Int-free 128-bit reference product: mulHi64
		// must match its high word, and the wrapping uint64 product x*y
		// must match its low word.
		lo := tt.x * tt.y
		_ = lo
		wantHi, wantLo := bitsMul64Reference(tt.x, tt.y)
		if hi != wantHi || lo != wantLo {
			t.Errorf("#%d: mulHi64(%#x, %#x) = %#x, want %#x", i, tt.x, tt.y, hi, wantHi)
		}
	}
}

// bitsMul64Reference recomputes the 128-bit product of x and y via
// 32-bit partial products, as an independent check on mulHi64 that
// doesn't simply call back into math/bits.Mul64.
func bitsMul64Reference(x, y uint64) (hi, lo uint64) {
	xlo, xhi := x&0xffffffff, x>>32
	ylo, yhi := y&0xffffffff, y>>32

	t0 := xlo * ylo
	t1a := xlo * yhi
	t1 := t1a + xhi*ylo
	t1carry := uint64(0) // the cross-term sum can overflow 64 bits
	if t1 < t1a {
		t1carry = 1
	}
	t2 := xhi * yhi

	lo = t0 + t1<<32
	carry := uint64(0)
	if lo < t0 {
		carry = 1
	}
	hi = t2 + t1>>32 + t1carry<<32 + carry
	return hi, lo
}

func TestAddVVSubVV(t *testing.T) {
	x := Magia{1, 2, limbMax}
	y := Magia{limbMax, limbMax, 1}
	z := make(Magia, 3)
	c := addVV(z, x, y)
	if c != 1 {
		t.Fatalf("addVV carry = %d, want 1", c)
	}
	back := make(Magia, 3)
	b := subVV(back, z, y)
	if b != c {
		t.Fatalf("subVV borrow = %d, want %d (to undo addVV's carry)", b, c)
	}
	for i := range x {
		if back[i] != x[i] {
			t.Fatalf("subVV(addVV(x,y), y) round-trip failed at limb %d: got %#x want %#x", i, back[i], x[i])
		}
	}
}

func TestAddVWSubVW(t *testing.T) {
	x := Magia{limbMax, 0, 0}
	z := make(Magia, 3)
	c := addVW(z, x, 3)
	if c != 0 {
		t.Fatalf("addVW carry = %d, want 0", c)
	}
	if z[0] != 2 || z[1] != 1 || z[2] != 0 {
		t.Fatalf("addVW(%v, 3) = %v, want [2 1 0]", x, z)
	}
	back := make(Magia, 3)
	subVW(back, z, 3)
	for i := range x {
		if back[i] != x[i] {
			t.Fatalf("subVW(addVW(x,3), 3) round-trip failed at limb %d", i)
		}
	}
}

func TestShlVUShrVU(t *testing.T) {
	x := Magia{0x12345678, 0x9abcdef0}
	for s := uint(0); s < 32; s++ {
		left := make(Magia, 2)
		cOut := shlVU(left, x, s)
		right := make(Magia, 2)
		shrVU(right, left, s)
		// Low s bits were lost off the bottom on the way right again only
		// if cOut fed back in; reconstruct the original value by oring the
		// shifted-out high bits back at position (32-s).
		if s > 0 {
			right[1] |= cOut << (32 - s)
		}
		if s == 0 {
			right = left
		}
		for i := range x {
			if right[i] != x[i] {
				t.Fatalf("shift=%d: shrVU(shlVU(x,s),s) round-trip failed at limb %d: got %#x want %#x",
					s, i, right[i], x[i])
			}
		}
	}
}

func TestDivWVW(t *testing.T) {
	x := Magia{0, 0, 1} // value = 2^64
	z := make(Magia, 3)
	r := divWVW(z, 0, x, 7)
	// 2^64 / 7 and 2^64 % 7, checked by reconstructing via mulAddVWW.
	back := make(Magia, 3)
	c := mulAddVWW(back, z, 7, r)
	if c != 0 {
		t.Fatalf("mulAddVWW carry out = %d, want 0", c)
	}
	for i := range x {
		if back[i] != x[i] {
			t.Fatalf("divWVW/mulAddVWW round-trip failed at limb %d: got %#x want %#x", i, back[i], x[i])
		}
	}
}
