// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hugeint

import "testing"

func TestQuoRemTruncating(t *testing.T) {
	tests := []struct {
		a, b, wantQ, wantR string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "3", "-1"},
		{"0", "5", "0", "0"},
	}
	for i, tt := range tests {
		a := mustFromDecimal(t, tt.a)
		b := mustFromDecimal(t, tt.b)
		q, r := a.QuoRem(b)
		if got := q.String(); got != tt.wantQ {
			t.Errorf("#%d: QuoRem(%s, %s) q = %s, want %s", i, tt.a, tt.b, got, tt.wantQ)
		}
		if got := r.String(); got != tt.wantR {
			t.Errorf("#%d: QuoRem(%s, %s) r = %s, want %s", i, tt.a, tt.b, got, tt.wantR)
		}
		// q*b + r must recover a.
		if got := q.Mul(b).Add(r).String(); got != a.String() {
			t.Errorf("#%d: q*b+r = %s, want %s", i, got, tt.a)
		}
	}
}

func TestQuoRemPanicsOnZeroDivisor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("QuoRem(x, 0) did not panic")
		}
	}()
	mustFromDecimal(t, "5").QuoRem(Zero)
}

func TestDivModEuclidean(t *testing.T) {
	tests := []struct {
		a, b, wantQ, wantM string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-4", "1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "4", "1"},
	}
	for i, tt := range tests {
		a := mustFromDecimal(t, tt.a)
		b := mustFromDecimal(t, tt.b)
		q, m := a.DivMod(b)
		if got := q.String(); got != tt.wantQ {
			t.Errorf("#%d: DivMod(%s, %s) q = %s, want %s", i, tt.a, tt.b, got, tt.wantQ)
		}
		if got := m.String(); got != tt.wantM {
			t.Errorf("#%d: DivMod(%s, %s) m = %s, want %s", i, tt.a, tt.b, got, tt.wantM)
		}
		if m.IsNegative() {
			t.Errorf("#%d: DivMod(%s, %s) remainder %s is negative, want [0, |b|)", i, tt.a, tt.b, m.String())
		}
		if got := q.Mul(b).Add(m).String(); got != a.String() {
			t.Errorf("#%d: q*b+m = %s, want %s", i, got, tt.a)
		}
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		base string
		n    uint
		want string
	}{
		{"2", 0, "1"},
		{"2", 10, "1024"},
		{"-2", 3, "-8"},
		{"-2", 4, "16"},
		{"10", 20, "100000000000000000000"},
	}
	for i, tt := range tests {
		x := mustFromDecimal(t, tt.base)
		if got := x.Pow(tt.n).String(); got != tt.want {
			t.Errorf("#%d: (%s)^%d = %s, want %s", i, tt.base, tt.n, got, tt.want)
		}
	}
}

func TestIsqrtSignedBounds(t *testing.T) {
	values := []string{"0", "1", "2", "1000000", "123456789012345678901234567890"}
	for _, s := range values {
		x := mustFromDecimal(t, s)
		root := x.Isqrt()
		if root.Sqr().Cmp(x) > 0 {
			t.Errorf("Isqrt(%s) = %s, but its square exceeds x", s, root.String())
		}
		if root.Add(One).Sqr().Cmp(x) <= 0 {
			t.Errorf("Isqrt(%s) = %s, but (Isqrt+1)^2 <= x", s, root.String())
		}
	}
}

func TestIsqrtPanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Isqrt(-1) did not panic")
		}
	}()
	mustFromDecimal(t, "-1").Isqrt()
}

func TestGcdLcmSigned(t *testing.T) {
	a := mustFromDecimal(t, "-48")
	b := mustFromDecimal(t, "18")
	if got := a.Gcd(b).String(); got != "6" {
		t.Errorf("Gcd(-48, 18) = %s, want 6", got)
	}
	if got := a.Lcm(b).String(); got != "144" {
		t.Errorf("Lcm(-48, 18) = %s, want 144", got)
	}
}

func TestLcmWithZero(t *testing.T) {
	if got := mustFromDecimal(t, "5").Lcm(Zero); !got.IsZero() {
		t.Errorf("Lcm(5, 0) = %s, want 0", got.String())
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "1"},
		{1, "1"},
		{5, "120"},
		{10, "3628800"},
		{20, "2432902008176640000"},
	}
	for i, tt := range tests {
		if got := Factorial(tt.n).String(); got != tt.want {
			t.Errorf("#%d: Factorial(%d) = %s, want %s", i, tt.n, got, tt.want)
		}
	}
}

func TestFactorialPanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Factorial(huge) did not panic")
		}
	}()
	Factorial(1 << 40)
}
