package gridline

import (
	"image/color"
)

// Plotter is anything that wants each point of a line as it is drawn,
// eg. an image, a terminal buffer, or a list of points.
type Plotter interface {
	Set(x int, y int, c color.Color)
}
