package gridline

import (
	"image"
	"image/color"
)

// Draw plots the line a -> b onto p in order, starting at a.
func Draw(p Plotter, a, b image.Point, col color.Color) {
	for _, pt := range CalculateLine(FromImagePoint(a), FromImagePoint(b)) {
		p.Set(pt.X, pt.Y, col)
	}
}

// listPlot meets the Plotter interface,
// In our case we just append the x,y to a list,
type listPlot struct {
	pts []image.Point
}

// Set records a new point on the line
func (l *listPlot) Set(x, y int, c color.Color) {
	l.pts = append(l.pts, image.Pt(x, y))
}

// PointsBetween returns all points on a line between a,b (inclusive)
func PointsBetween(a, b image.Point) []image.Point {
	lp := &listPlot{pts: []image.Point{}}
	Draw(lp, a, b, color.Black)
	return lp.pts
}

// Polyline joins the lines between consecutive points. Each shared vertex
// appears once, so a closed shape (first == last) repeats only its start.
func Polyline[T Integer](pts ...Point[T]) []Point[T] {
	if len(pts) == 0 {
		return nil
	}
	if len(pts) == 1 {
		return []Point[T]{pts[0]}
	}

	out := []Point[T]{pts[0]}
	for i := 1; i < len(pts); i++ {
		seg := CalculateLine(pts[i-1], pts[i])
		out = append(out, seg[1:]...)
	}
	return out
}
