package signmag

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidshard/gridline/internal/numeric"
)

// toInt converts back to a native signed value so results can be compared
// against plain arithmetic.
func toInt[T numeric.Integer](v Value[T]) int64 {
	if v.Sign == Negative {
		return -int64(v.Magnitude)
	}
	return int64(v.Magnitude)
}

func TestDiffOf(t *testing.T) {
	cases := []struct {
		a, b uint8
		want Value[uint8]
	}{
		{5, 3, Value[uint8]{2, Positive}},
		{3, 5, Value[uint8]{2, Negative}},
		{4, 4, Value[uint8]{0, Positive}},
		{0, 255, Value[uint8]{255, Negative}},
		{255, 0, Value[uint8]{255, Positive}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DiffOf(c.a, c.b), "DiffOf(%d, %d)", c.a, c.b)
	}
}

func TestDiffOfSigned(t *testing.T) {
	assert.Equal(t, Value[int]{7, Negative}, DiffOf(-3, 4))
	assert.Equal(t, Value[int]{7, Positive}, DiffOf(4, -3))
	assert.Equal(t, Value[int]{0, Positive}, DiffOf(-2, -2))
}

func TestFrom(t *testing.T) {
	assert.Equal(t, Value[int16]{9, Negative}, From[int16](-9))
	assert.Equal(t, Value[int16]{0, Positive}, From[int16](0))
	assert.Equal(t, Value[uint16]{9, Positive}, From[uint16](9))
}

func TestCheckedDiffOf(t *testing.T) {
	v, err := CheckedDiffOf[int8](100, -27)
	require.NoError(t, err)
	assert.Equal(t, Value[int8]{127, Positive}, v)

	v, err = CheckedDiffOf[int8](-27, 100)
	require.NoError(t, err)
	assert.Equal(t, Value[int8]{127, Negative}, v)

	_, err = CheckedDiffOf[int8](100, -28)
	assert.Equal(t, numeric.ErrRangeOverflow, errors.Cause(err))

	_, err = CheckedDiffOf[int8](math.MinInt8, math.MaxInt8)
	assert.Equal(t, numeric.ErrRangeOverflow, errors.Cause(err))

	u, err := CheckedDiffOf[uint8](0, 255)
	require.NoError(t, err)
	assert.Equal(t, Value[uint8]{255, Negative}, u)
}

func TestAddSubMatchNativeArithmetic(t *testing.T) {
	// exhaustive over a small signed range; every result must agree with
	// int64 arithmetic and never produce a negative zero
	for a := int64(-20); a <= 20; a++ {
		for rhs := int64(-20); rhs <= 20; rhs++ {
			v := From(a)

			sum := v.Add(rhs)
			assert.Equal(t, a+rhs, toInt(sum), "%d + %d", a, rhs)
			assert.False(t, sum.IsNegative() && sum.IsZero(), "negative zero from %d + %d", a, rhs)

			diff := v.Sub(rhs)
			assert.Equal(t, a-rhs, toInt(diff), "%d - %d", a, rhs)
			assert.False(t, diff.IsNegative() && diff.IsZero(), "negative zero from %d - %d", a, rhs)
		}
	}
}

func TestAddSubUnsigned(t *testing.T) {
	for a := int64(-40); a <= 40; a++ {
		for rhs := uint8(0); rhs <= 40; rhs++ {
			var v Value[uint8]
			if a < 0 {
				v = DiffOf(uint8(0), uint8(-a))
			} else {
				v = From(uint8(a))
			}
			assert.Equal(t, a+int64(rhs), toInt(v.Add(rhs)), "%d + %d", a, rhs)
			assert.Equal(t, a-int64(rhs), toInt(v.Sub(rhs)), "%d - %d", a, rhs)
		}
	}
}

func TestDecisionChain(t *testing.T) {
	// the update used by the line code: d = d - 2*major + 2*minor
	d := DiffOf[uint32](4, 8)
	require.Equal(t, "-4", d.String())

	d = d.Add(4)
	assert.True(t, d.IsZero())
	assert.False(t, d.IsNegative())
	assert.Equal(t, "0", d.String())

	d = d.Sub(16).Add(4)
	assert.Equal(t, Value[uint32]{12, Negative}, d)
	assert.Equal(t, "-12", d.String())
}

func TestSignString(t *testing.T) {
	assert.Equal(t, "+", Positive.String())
	assert.Equal(t, "-", Negative.String())
}
