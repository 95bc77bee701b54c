// Package gridline computes the grid points of a straight line between two
// integer endpoints (Bresenham), over any signed or unsigned integer type.
package gridline

import (
	"math"

	"github.com/pkg/errors"
	"github.com/voidshard/gridline/internal/numeric"
	"github.com/voidshard/gridline/internal/signmag"
)

// ErrRangeOverflow is the cause of any CheckedLine error.
var ErrRangeOverflow = numeric.ErrRangeOverflow

// CalculateLine returns the Bresenham approximation of the segment p1 -> p2,
// from p1 to p2 inclusive, with max(|dx|, |dy|) + 1 points.
//
// T may be signed or unsigned. The caller must size T so that |dx|, |dy|
// and 2*max(|dx|, |dy|) are all representable; this is not checked and
// values outside that range wrap. See CheckedLine.
func CalculateLine[T Integer](p1, p2 Point[T]) []Point[T] {
	return rasterize(p1, signmag.DiffOf(p2.X, p1.X), signmag.DiffOf(p2.Y, p1.Y))
}

// CheckedLine is CalculateLine, but returns an error (with cause
// ErrRangeOverflow) instead of wrapping when p1 and p2 are too far apart
// for T.
func CheckedLine[T Integer](p1, p2 Point[T]) ([]Point[T], error) {
	pts, err := checkedLine(p1, p2)
	if err != nil {
		Logger().Debug("gridline: line rejected", "from", p1, "to", p2, "err", err)
		return nil, err
	}
	return pts, nil
}

func checkedLine[T Integer](p1, p2 Point[T]) ([]Point[T], error) {
	xDiff, err := signmag.CheckedDiffOf(p2.X, p1.X)
	if err != nil {
		return nil, errors.Wrapf(err, "x delta %v -> %v", p1, p2)
	}
	yDiff, err := signmag.CheckedDiffOf(p2.Y, p1.Y)
	if err != nil {
		return nil, errors.Wrapf(err, "y delta %v -> %v", p1, p2)
	}

	major := max(xDiff.Magnitude, yDiff.Magnitude)
	if _, err := numeric.DoubleChecked(major); err != nil {
		return nil, errors.Wrapf(err, "decision term %v -> %v", p1, p2)
	}
	if uint64(major) >= math.MaxInt {
		return nil, errors.Wrapf(ErrRangeOverflow, "line length %v -> %v", p1, p2)
	}

	return rasterize(p1, xDiff, yDiff), nil
}

// rasterize walks the line from p1 given its signed run (xDiff) and rise
// (yDiff). Steep lines are handled by swapping the axes so that x is always
// the dominant axis inside the loop.
func rasterize[T Integer](p1 Point[T], xDiff, yDiff signmag.Value[T]) []Point[T] {
	x, y := p1.X, p1.Y

	swap := xDiff.Magnitude < yDiff.Magnitude
	if swap {
		xDiff, yDiff = yDiff, xDiff
		x, y = y, x
	}

	two := numeric.Two[T]()
	major, minor := xDiff.Magnitude, yDiff.Magnitude
	twoMajor, twoMinor := major*two, minor*two

	d := signmag.DiffOf(twoMinor, major)

	line := make([]Point[T], 0, int(major)+1)
	line = append(line, p1)

	for i := numeric.Zero[T](); i < major; i++ {
		x = advance(x, xDiff)
		if d.IsNegative() {
			d = d.Add(twoMinor)
		} else {
			y = advance(y, yDiff)
			// d + 2*minor - 2*major; subtracting first keeps |d| <= 2*major
			d = d.Sub(twoMajor).Add(twoMinor)
		}

		if swap {
			line = append(line, Point[T]{X: y, Y: x})
		} else {
			line = append(line, Point[T]{X: x, Y: y})
		}
	}

	return line
}

// advance moves v one unit in the direction of dir, or not at all if dir is zero.
func advance[T Integer](v T, dir signmag.Value[T]) T {
	if dir.IsNegative() {
		return v - numeric.One[T]()
	}
	if dir.Magnitude > numeric.Zero[T]() {
		return v + numeric.One[T]()
	}
	return v
}
