// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hugeint

import "testing"

func TestBitLenTrailingZerosPopCountSigned(t *testing.T) {
	tests := []struct {
		s            string
		bitLen       int
		trailingZero int
		popCount     int
	}{
		{"0", 0, -1, 0},
		{"1", 1, 0, 1},
		{"-1", 0, 0, 1},
		{"8", 4, 3, 1},
		{"-128", 7, 7, 1},
		{"255", 8, 0, 8},
	}
	for i, tt := range tests {
		x := mustFromDecimal(t, tt.s)
		if got := x.BitLen(); got != tt.bitLen {
			t.Errorf("#%d: BitLen(%s) = %d, want %d", i, tt.s, got, tt.bitLen)
		}
		if got := x.TrailingZeros(); got != tt.trailingZero {
			t.Errorf("#%d: TrailingZeros(%s) = %d, want %d", i, tt.s, got, tt.trailingZero)
		}
		if got := x.PopCount(); got != tt.popCount {
			t.Errorf("#%d: PopCount(%s) = %d, want %d", i, tt.s, got, tt.popCount)
		}
	}
}

func TestLshRsh(t *testing.T) {
	x := mustFromDecimal(t, "5")
	if got := x.Lsh(3).String(); got != "40" {
		t.Errorf("5 << 3 = %s, want 40", got)
	}
	if got := x.Lsh(3).Rsh(3).String(); got != "5" {
		t.Errorf("(5 << 3) >> 3 = %s, want 5", got)
	}
}

func TestRshRoundsTowardNegativeInfinity(t *testing.T) {
	tests := []struct {
		s    string
		n    uint
		want string
	}{
		{"-1", 1, "-1"},
		{"-7", 1, "-4"},
		{"-8", 1, "-4"},
		{"7", 1, "3"},
	}
	for i, tt := range tests {
		x := mustFromDecimal(t, tt.s)
		if got := x.Rsh(tt.n).String(); got != tt.want {
			t.Errorf("#%d: %s >> %d = %s, want %s", i, tt.s, tt.n, got, tt.want)
		}
	}
}

func TestAndOrXorAndNotSigned(t *testing.T) {
	a := mustFromDecimal(t, "12") // 0b1100
	b := mustFromDecimal(t, "10") // 0b1010
	if got := a.And(b).String(); got != "8" {
		t.Errorf("12 & 10 = %s, want 8", got)
	}
	if got := a.Or(b).String(); got != "14" {
		t.Errorf("12 | 10 = %s, want 14", got)
	}
	if got := a.Xor(b).String(); got != "6" {
		t.Errorf("12 ^ 10 = %s, want 6", got)
	}
	if got := a.AndNot(b).String(); got != "4" {
		t.Errorf("12 &^ 10 = %s, want 4", got)
	}
}

func TestNot(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"0", "-1"},
		{"-1", "0"},
		{"5", "-6"},
		{"-6", "5"},
	}
	for i, tt := range tests {
		x := mustFromDecimal(t, tt.s)
		if got := x.Not().String(); got != tt.want {
			t.Errorf("#%d: Not(%s) = %s, want %s", i, tt.s, got, tt.want)
		}
	}
}

func TestBitSetBit(t *testing.T) {
	x := mustFromDecimal(t, "5") // 0b101
	if x.Bit(0) != 1 || x.Bit(1) != 0 || x.Bit(2) != 1 {
		t.Errorf("Bit pattern of 5 incorrect: bit0=%d bit1=%d bit2=%d", x.Bit(0), x.Bit(1), x.Bit(2))
	}
	y := x.SetBit(1, 1)
	if got := y.String(); got != "7" {
		t.Errorf("SetBit(5, 1, 1) = %s, want 7", got)
	}
	z := x.SetBit(0, 0)
	if got := z.String(); got != "4" {
		t.Errorf("SetBit(5, 0, 0) = %s, want 4", got)
	}
}

func TestBitOfNegative(t *testing.T) {
	// -1 in two's complement is all ones at every bit position.
	x := mustFromDecimal(t, "-1")
	for _, i := range []uint{0, 1, 31, 32, 100} {
		if v := x.Bit(i); v != 1 {
			t.Errorf("Bit(%d) of -1 = %d, want 1", i, v)
		}
	}
}
