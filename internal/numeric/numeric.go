// Package numeric holds the minimal integer contract the line code is
// written against, plus checked arithmetic for callers that would rather
// see an error than a wrapped value.
package numeric

import (
	"golang.org/x/exp/constraints"
)

// Integer is any signed or unsigned integer type, of any width.
// Nothing here assumes T can hold a negative value.
type Integer interface {
	constraints.Integer
}

// Zero returns 0 as a T.
func Zero[T Integer]() T {
	return 0
}

// One returns 1 as a T.
func One[T Integer]() T {
	return 1
}

// Two returns 2 as a T.
func Two[T Integer]() T {
	return 2
}

// IsSigned reports whether T can represent negative values.
func IsSigned[T Integer]() bool {
	return ^T(0) < 0
}
