// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the error kinds surfaced to callers. Errors are
// never recovered locally and never collapse to a sentinel zero value.
// Parse failures and Barrett failures are returned as *Error values;
// division by zero, isqrt of a negative value, an oversized factorial
// and a non-positive random bound panic with an *Error instead.

package hugeint

import (
	"errors"
	"fmt"
)

// Kind discriminates the error conditions this package can signal. Test
// against a specific kind with errors.Is(err, hugeint.ErrDivisionByZero)
// and friends, or recover the offending value with errors.As.
type Kind int

const (
	// KindDivisionByZero: any division or modulus with a zero divisor.
	KindDivisionByZero Kind = iota
	// KindOutOfRange: an exact conversion out of the target's range,
	// isqrt of a negative value, pow/factorial with a negative exponent.
	KindOutOfRange
	// KindOverflow: factorial(n) whose estimated result exceeds what the
	// implementation is willing to allocate.
	KindOverflow
	// KindParseError: empty or malformed text input.
	KindParseError
	// KindInvalidArgument: negative bit width/index, bad byte-slice
	// offset/length, or NewBarrett(m) with m <= 1.
	KindInvalidArgument
	// KindBarrettPrecondition: Barrett.Remainder(x) with x < 0 or x >= m^2.
	KindBarrettPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindDivisionByZero:
		return "division by zero"
	case KindOutOfRange:
		return "out of range"
	case KindOverflow:
		return "overflow"
	case KindParseError:
		return "parse error"
	case KindInvalidArgument:
		return "invalid argument"
	case KindBarrettPrecondition:
		return "barrett precondition violated"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type for every error this package
// signals, whether returned or carried by a panic. Kind is always set; Msg carries the diagnostic
// (offending string or value) where one is useful.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is the sentinel for e's Kind, so that
// errors.Is(err, hugeint.ErrDivisionByZero) works against a wrapped
// *Error without callers needing to unwrap by hand.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*sentinelError)
	return ok && sentinel.kind == e.Kind
}

// sentinelError lets errors.Is match by Kind alone, independent of Msg.
type sentinelError struct{ kind Kind }

func (s *sentinelError) Error() string { return s.kind.String() }

var (
	// ErrDivisionByZero matches any *Error with Kind == KindDivisionByZero.
	ErrDivisionByZero error = &sentinelError{KindDivisionByZero}
	// ErrOutOfRange matches any *Error with Kind == KindOutOfRange.
	ErrOutOfRange error = &sentinelError{KindOutOfRange}
	// ErrOverflow matches any *Error with Kind == KindOverflow.
	ErrOverflow error = &sentinelError{KindOverflow}
	// ErrParseError matches any *Error with Kind == KindParseError.
	ErrParseError error = &sentinelError{KindParseError}
	// ErrInvalidArgument matches any *Error with Kind == KindInvalidArgument.
	ErrInvalidArgument error = &sentinelError{KindInvalidArgument}
	// ErrBarrettPrecondition matches any *Error with Kind == KindBarrettPrecondition.
	ErrBarrettPrecondition error = &sentinelError{KindBarrettPrecondition}
)

func newErr(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is, or wraps, a hugeint error of the given
// Kind. It's a thin errors.Is wrapper so callers don't need to reference
// the package-level Err* sentinels by name.
func IsKind(err error, kind Kind) bool {
	return errors.Is(err, &sentinelError{kind})
}
