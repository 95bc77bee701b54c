package numeric

import (
	"github.com/pkg/errors"
)

// ErrRangeOverflow is returned when a result does not fit in the operand type.
var ErrRangeOverflow = errors.New("integer range overflow")

// AddChecked returns a+b, or ErrRangeOverflow if the sum wraps.
func AddChecked[T Integer](a, b T) (T, error) {
	r := a + b
	if (b > 0 && r < a) || (b < 0 && r > a) {
		return 0, ErrRangeOverflow
	}
	return r, nil
}

// SubChecked returns a-b, or ErrRangeOverflow if the difference wraps.
// For unsigned T this includes any b > a.
func SubChecked[T Integer](a, b T) (T, error) {
	r := a - b
	if (b > 0 && r > a) || (b < 0 && r < a) {
		return 0, ErrRangeOverflow
	}
	return r, nil
}

// DoubleChecked returns 2*a, or ErrRangeOverflow.
func DoubleChecked[T Integer](a T) (T, error) {
	return AddChecked(a, a)
}
