// Package canvas is a small bounded grid that lines can be plotted onto,
// then printed as text or saved as a PNG.
package canvas

import (
	"image"
	"image/color"
	"strings"

	"github.com/boljen/go-bitmap"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/voidshard/gridline/internal/encoding"
	"golang.org/x/image/colornames"
)

const (
	// bit numbers for our bitmap
	bitLine     = 0
	bitEndpoint = 1
)

// Canvas records which cells lines pass through. It meets gridline.Plotter.
// Not safe for concurrent use.
type Canvas struct {
	// cells is an RGBA64 image where only A is used:
	//
	// A [16 bits]
	//   16-9 [8 bits] -> number of times the cell was plotted (saturates at 255)
	//    8-1 [8 bits] -> bitmap
	//       bit 0 -> isLine
	//       bit 1 -> isEndpoint
	//       bit 2-7 -> unused
	cells *image.RGBA64

	// ink holds the colour each cell was last plotted with. We let the
	// drawing lib own this so saving out is trivial.
	ink *gg.Context
}

// Glyphs defines which characters are used when rendering as text.
type Glyphs struct {
	Empty    rune
	Line     rune
	Endpoint rune
	Crossing rune // cell visited more than once
}

// DefaultGlyphs returns a reasonable default Glyphs.
func DefaultGlyphs() *Glyphs {
	return &Glyphs{
		Empty:    '.',
		Line:     '#',
		Endpoint: 'o',
		Crossing: 'x',
	}
}

// ColourScheme defines how cells are coloured when rendering as an image.
// A nil Lines uses the colour each cell was plotted with.
type ColourScheme struct {
	Background color.Color
	Lines      color.Color
	Endpoints  color.Color
	Crossings  color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.White,
		Endpoints:  colornames.Crimson,
		Crossings:  colornames.Gold,
	}
}

// New returns an empty canvas covering bounds.
func New(bounds image.Rectangle) *Canvas {
	ctx := gg.NewContextForRGBA(image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy())))
	ctx.SetRGBA(0, 0, 0, 0)
	ctx.Clear()

	return &Canvas{
		cells: image.NewRGBA64(bounds),
		ink:   ctx,
	}
}

// Bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.cells.Bounds()
}

// Set marks x,y as on a line, painted with col. Points outside the canvas
// are dropped.
func (c *Canvas) Set(x, y int, col color.Color) {
	if c.isOutOfBounds(x, y) {
		return
	}

	hits, bm := c.getCell(x, y)
	bm.Set(bitLine, true)
	if hits < 255 {
		hits++
	}
	c.setCell(x, y, hits, bm)

	origin := c.cells.Bounds().Min
	c.ink.SetColor(col)
	c.ink.SetPixel(x-origin.X, y-origin.Y)
}

// MarkEndpoint flags p as the end of a line. It does not count as a hit.
func (c *Canvas) MarkEndpoint(p image.Point) {
	if c.isOutOfBounds(p.X, p.Y) {
		return
	}
	hits, bm := c.getCell(p.X, p.Y)
	bm.Set(bitEndpoint, true)
	c.setCell(p.X, p.Y, hits, bm)
}

// IsLine returns if any line passes through x,y
func (c *Canvas) IsLine(x, y int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	_, bm := c.getCell(x, y)
	return bm.Get(bitLine)
}

// IsEndpoint returns if x,y was marked as an endpoint
func (c *Canvas) IsEndpoint(x, y int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	_, bm := c.getCell(x, y)
	return bm.Get(bitEndpoint)
}

// Hits returns how many times x,y was plotted.
func (c *Canvas) Hits(x, y int) (int, error) {
	if c.isOutOfBounds(x, y) {
		return -1, errors.Errorf("(%d,%d) is out of bounds", x, y)
	}
	hits, _ := c.getCell(x, y)
	return int(hits), nil
}

// String renders with DefaultGlyphs.
func (c *Canvas) String() string {
	return c.Render(DefaultGlyphs())
}

// Render the canvas as text, one line per row, top row first.
func (c *Canvas) Render(glyphs *Glyphs) string {
	bnds := c.cells.Bounds()
	b := &strings.Builder{}

	for dy := bnds.Min.Y; dy < bnds.Max.Y; dy++ {
		if dy > bnds.Min.Y {
			b.WriteByte('\n')
		}
		for dx := bnds.Min.X; dx < bnds.Max.X; dx++ {
			hits, bm := c.getCell(dx, dy)
			switch {
			case bm.Get(bitEndpoint):
				b.WriteRune(glyphs.Endpoint)
			case hits > 1:
				b.WriteRune(glyphs.Crossing)
			case bm.Get(bitLine):
				b.WriteRune(glyphs.Line)
			default:
				b.WriteRune(glyphs.Empty)
			}
		}
	}

	return b.String()
}

// Image returns the canvas coloured with the given scheme.
func (c *Canvas) Image(scheme *ColourScheme) *image.RGBA {
	bnds := c.cells.Bounds()
	im := image.NewRGBA(image.Rect(0, 0, bnds.Dx(), bnds.Dy()))
	ink := c.ink.Image()

	for dy := bnds.Min.Y; dy < bnds.Max.Y; dy++ {
		for dx := bnds.Min.X; dx < bnds.Max.X; dx++ {
			px, py := dx-bnds.Min.X, dy-bnds.Min.Y
			hits, bm := c.getCell(dx, dy)

			if bm.Get(bitEndpoint) && scheme.Endpoints != nil {
				im.Set(px, py, scheme.Endpoints)
				continue
			} else if hits > 1 && scheme.Crossings != nil {
				im.Set(px, py, scheme.Crossings)
				continue
			} else if bm.Get(bitLine) {
				if scheme.Lines != nil {
					im.Set(px, py, scheme.Lines)
				} else {
					im.Set(px, py, ink.At(px, py))
				}
				continue
			}

			if scheme.Background != nil {
				im.Set(px, py, scheme.Background)
			}
		}
	}

	return im
}

// SavePNG writes the canvas, coloured with the given scheme, to fpath.
func (c *Canvas) SavePNG(fpath string, scheme *ColourScheme) error {
	ctx := gg.NewContextForRGBA(c.Image(scheme))
	return errors.Wrapf(ctx.SavePNG(fpath), "saving canvas to %s", fpath)
}

// getCell returns the hit count & 8 bit bitmap at x,y
func (c *Canvas) getCell(x, y int) (uint8, bitmap.Bitmap) {
	hits, flags := encoding.UnpackCell(c.cells.RGBA64At(x, y).A)
	return hits, bitmap.Bitmap(encoding.FlagBytes(flags))
}

// setCell stores the hit count & bitmap at x,y
func (c *Canvas) setCell(x, y int, hits uint8, bm bitmap.Bitmap) {
	v := c.cells.RGBA64At(x, y)
	v.A = encoding.PackCell(hits, encoding.FlagByte(bm.Data(true)))
	c.cells.SetRGBA64(x, y, v)
}

// isOutOfBounds determines if x,y is outside of the canvas
func (c *Canvas) isOutOfBounds(x, y int) bool {
	return !image.Pt(x, y).In(c.cells.Bounds())
}
