// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements SignedInt's text and encoding interfaces:
// String/GoString/Format/Scan, encoding.TextMarshaler/TextUnmarshaler,
// and gob.GobEncoder/GobDecoder. Grounded directly on math/big's
// intconv.go (String/Format/Scan) and intmarsh.go
// (GobEncode/GobDecode/MarshalText/UnmarshalText), narrowed to decimal
// and hexadecimal bases (math/big's full base 2..62 support is out
// of scope here).

package hugeint

import (
	"bytes"
	"fmt"
)

// FromDecimalString parses a signed decimal literal (an optional
// leading '+' or '-', then digits with optional '_' separators).
func FromDecimalString(s string) (SignedInt, error) {
	neg, rest, err := splitSign(s)
	if err != nil {
		return SignedInt{}, err
	}
	mag, err := parseDecimal([]byte(rest))
	if err != nil {
		return SignedInt{}, err
	}
	return normalizeSign(neg, mag), nil
}

// FromHexString parses a signed hexadecimal literal (an optional
// leading '+' or '-', then an optional "0x"/"0X" prefix and hex digits).
func FromHexString(s string) (SignedInt, error) {
	neg, rest, err := splitSign(s)
	if err != nil {
		return SignedInt{}, err
	}
	mag, err := parseHex([]byte(rest))
	if err != nil {
		return SignedInt{}, err
	}
	return normalizeSign(neg, mag), nil
}

func splitSign(s string) (neg bool, rest string, err error) {
	if len(s) == 0 {
		return false, "", newErr(KindParseError, "empty literal")
	}
	switch s[0] {
	case '-':
		return true, s[1:], nil
	case '+':
		return false, s[1:], nil
	default:
		return false, s, nil
	}
}

// String renders x in decimal
func (x SignedInt) String() string {
	if x.neg {
		return "-" + x.mag.formatDecimal()
	}
	return x.mag.formatDecimal()
}

// GoString renders x as a Go-syntax expression, for %#v and debugging.
func (x SignedInt) GoString() string {
	return fmt.Sprintf("hugeint.SignedInt{%s}", x.String())
}

// HexString renders x as a signed hexadecimal literal with a "0x"/"-0x"
// prefix and uppercase digits
func (x SignedInt) HexString() string {
	if x.neg {
		return "-0x" + x.mag.formatHex()
	}
	return "0x" + x.mag.formatHex()
}

// Format implements fmt.Formatter, supporting 'd' (decimal, the
// default for %v and %s) and 'x'/'X' (hexadecimal).
func (x SignedInt) Format(s fmt.State, ch rune) {
	var digits string
	switch ch {
	case 'd', 's', 'v':
		digits = x.mag.formatDecimal()
	case 'x':
		digits = toLowerHex(x.mag.formatHex())
	case 'X':
		digits = x.mag.formatHex()
	default:
		fmt.Fprintf(s, "%%!%c(hugeint.SignedInt=%s)", ch, x.String())
		return
	}

	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	prefix := ""
	if s.Flag('#') {
		switch ch {
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}

	out := sign + prefix + digits
	if width, ok := s.Width(); ok && len(out) < width {
		pad := width - len(out)
		padByte := byte(' ')
		if s.Flag('0') {
			padByte = '0'
		}
		padding := bytes.Repeat([]byte{padByte}, pad)
		if s.Flag('-') {
			out = out + string(padding)
		} else if padByte == '0' {
			out = sign + prefix + string(padding) + digits
		} else {
			out = string(padding) + out
		}
	}
	fmt.Fprint(s, out)
}

// Scan implements fmt.Scanner for the 'd', 'x', 'X', 's', and 'v' verbs.
func (x *SignedInt) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	tok, err := s.Token(false, func(r rune) bool {
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') ||
			r == '-' || r == '+' || r == 'x' || r == 'X' || r == '_'
	})
	if err != nil {
		return err
	}
	var v SignedInt
	switch ch {
	case 'x', 'X':
		v, err = FromHexString(string(tok))
	default:
		v, err = FromDecimalString(string(tok))
	}
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// intGobVersion tags the gob wire format so future layout changes can be
// detected on decode, per math/big's intmarsh.go.
const intGobVersion byte = 1

// GobEncode implements gob.GobEncoder.
func (x SignedInt) GobEncode() ([]byte, error) {
	body := x.mag.toMagnitudeBytes(true)
	buf := make([]byte, 1+len(body))
	b := intGobVersion << 1
	if x.neg {
		b |= 1
	}
	buf[0] = b
	copy(buf[1:], body)
	return buf, nil
}

// GobDecode implements gob.GobDecoder.
func (x *SignedInt) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		*x = Zero
		return nil
	}
	b := buf[0]
	if b>>1 != intGobVersion {
		return newErr(KindParseError, "SignedInt.GobDecode: unsupported encoding version %d", b>>1)
	}
	mag := Magia(nil).fromMagnitudeBytes(buf[1:], true)
	*x = normalizeSign(b&1 != 0, mag)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x SignedInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *SignedInt) UnmarshalText(text []byte) error {
	v, err := FromDecimalString(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func toLowerHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
