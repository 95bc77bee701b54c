package gridline

import (
	"fmt"
	"image"

	"github.com/voidshard/gridline/internal/numeric"
)

// Integer is the set of coordinate types lines can be computed over:
// every signed and unsigned integer type, of any width.
type Integer = numeric.Integer

// Point is a grid coordinate.
type Point[T Integer] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Integer](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// FromImagePoint converts an image.Point.
func FromImagePoint(p image.Point) Point[int] {
	return Point[int]{X: p.X, Y: p.Y}
}

// ImagePoint converts p to an image.Point. Values that do not fit in an
// int are truncated.
func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
