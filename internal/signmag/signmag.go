// Package signmag represents possibly negative quantities as a magnitude
// plus a sign, so that differences and running sums can be carried in
// integer types that have no negative values at all.
//
// The only subtraction performed on the underlying type is in DiffOf,
// which always takes the smaller operand from the larger.
package signmag

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/voidshard/gridline/internal/numeric"
)

// Sign of a Value. Zero is always Positive.
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

// String returns "+" or "-"
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Value is a signed quantity stored as (Magnitude, Sign).
// Sign is Negative only when Magnitude > 0.
type Value[T numeric.Integer] struct {
	Magnitude T
	Sign      Sign
}

// DiffOf returns a-b.
func DiffOf[T numeric.Integer](a, b T) Value[T] {
	if a >= b {
		return Value[T]{Magnitude: a - b, Sign: Positive}
	}
	return Value[T]{Magnitude: b - a, Sign: Negative}
}

// CheckedDiffOf is DiffOf that reports numeric.ErrRangeOverflow when |a-b|
// does not fit in T. This can only happen for signed T.
func CheckedDiffOf[T numeric.Integer](a, b T) (Value[T], error) {
	hi, lo, sign := a, b, Positive
	if a < b {
		hi, lo, sign = b, a, Negative
	}
	mag, err := numeric.SubChecked(hi, lo)
	if err != nil {
		return Value[T]{}, errors.Wrapf(err, "difference of %v and %v", a, b)
	}
	return Value[T]{Magnitude: mag, Sign: sign}, nil
}

// From classifies the sign of a plain value.
func From[T numeric.Integer](v T) Value[T] {
	return DiffOf(v, numeric.Zero[T]())
}

// Add returns v + rhs.
func (v Value[T]) Add(rhs T) Value[T] {
	r := From(rhs)
	if r.Sign == Negative {
		return v.Sub(r.Magnitude)
	}
	if v.Sign == Negative {
		// -a + b == b - a
		return r.Sub(v.Magnitude)
	}
	return Value[T]{Magnitude: v.Magnitude + rhs, Sign: Positive}
}

// Sub returns v - rhs.
func (v Value[T]) Sub(rhs T) Value[T] {
	r := From(rhs)
	if r.Sign == Negative {
		return v.Add(r.Magnitude)
	}
	if v.Sign == Negative {
		return Value[T]{Magnitude: v.Magnitude + rhs, Sign: Negative}
	}
	return DiffOf(v.Magnitude, rhs)
}

// IsNegative reports whether v < 0.
func (v Value[T]) IsNegative() bool {
	return v.Sign == Negative
}

// IsZero reports whether v == 0.
func (v Value[T]) IsZero() bool {
	return v.Magnitude == numeric.Zero[T]()
}

func (v Value[T]) String() string {
	if v.Sign == Negative {
		return fmt.Sprintf("-%d", v.Magnitude)
	}
	return fmt.Sprintf("%d", v.Magnitude)
}
