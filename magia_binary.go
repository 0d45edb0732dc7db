// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements two's-complement and plain-magnitude binary
// serialization, with independent endianness and
// encoding-mode flags. Grounded on bford-go's nat.go bytes/setBytes
// (big-endian magnitude byte packing) and on math/big's Int.Bytes /
// Int.SetBytes for the magnitude convention, generalized to the four
// endian/encoding combinations this package names.

package hugeint

// byteLen returns the minimum number of bytes needed to hold x's
// magnitude (0 for zero).
func (x Magia) byteLen() int {
	bl := x.bitLen()
	return (bl + 7) / 8
}

// toMagnitudeBytes renders x's magnitude as big-endian bytes, then
// reorders to little-endian if requested. The output is exactly
// byteLen() bytes; this is the plain-magnitude encoding, with no sign
// handling.
func (x Magia) toMagnitudeBytes(bigEndian bool) []byte {
	n := x.byteLen()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		limb := x[i/4]
		out[n-1-i] = byte(limb >> (uint(i%4) * 8))
	}
	if !bigEndian {
		reverseBytes(out)
	}
	return out
}

// fromMagnitudeBytes parses big-endian (or little-endian, if
// bigEndian is false) magnitude bytes into a Magia.
func (z Magia) fromMagnitudeBytes(b []byte, bigEndian bool) Magia {
	if !bigEndian {
		b2 := make([]byte, len(b))
		copy(b2, b)
		reverseBytes(b2)
		b = b2
	}
	n := len(b)
	z = z.make((n + 3) / 4)
	for i := range z {
		z[i] = 0
	}
	for i := 0; i < n; i++ {
		limb := n - 1 - i
		z[limb/4] |= Limb(b[i]) << (uint(limb%4) * 8)
	}
	return z.norm()
}

// toTwosComplementBytes renders a signed value (magnitude x, sign
// negative) as minimal-length two's-complement bytes in the requested
// byte order. The zero value always renders as a single zero byte.
func toTwosComplementBytes(x Magia, negative bool, bigEndian bool) []byte {
	x = x.norm()
	if len(x) == 0 {
		return []byte{0}
	}

	mag := x.toMagnitudeBytes(true) // work big-endian internally
	out := make([]byte, len(mag))
	copy(out, mag)

	// A positive value whose top bit is already set needs an extra
	// leading zero byte so it isn't misread as negative.
	if !negative && out[0]&0x80 != 0 {
		out = append([]byte{0}, out...)
	}

	if negative {
		twosComplementNegateInPlace(out)
		// If negating didn't produce a set sign bit (e.g. 0x80 staying
		// 0x80, already correct), no extra byte is needed; but if the
		// magnitude's top byte had its high bit clear, the negation may
		// leave the result looking positive, so guard with a leading
		// 0xff byte in that case.
		if out[0]&0x80 == 0 {
			out = append([]byte{0xff}, out...)
		}
	}

	if !bigEndian {
		reverseBytes(out)
	}
	return out
}

// fromTwosComplementBytes parses minimal-length two's-complement bytes
// (already oriented per bigEndian) back into a sign and magnitude.
func fromTwosComplementBytes(b []byte, bigEndian bool) (z Magia, negative bool) {
	if len(b) == 0 {
		return Magia{}, false
	}
	work := make([]byte, len(b))
	copy(work, b)
	if !bigEndian {
		reverseBytes(work)
	}

	negative = work[0]&0x80 != 0
	if negative {
		twosComplementNegateInPlace(work)
	}
	return Magia(nil).fromMagnitudeBytes(work, true), negative
}

// twosComplementNegateInPlace replaces a big-endian byte slice with its
// two's-complement negation: invert every byte, then add one.
func twosComplementNegateInPlace(b []byte) {
	for i := range b {
		b[i] = ^b[i]
	}
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			break
		}
	}
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
