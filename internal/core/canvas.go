package core

import (
	"math"
	"strings"
)

// Label is a text overlay anchored at a logical pixel position. Text has no
// pixel font on the canvas; the platform decides how to draw it.
type Label struct {
	X, Y  float64
	Text  string
	Color ColorIndex
}

// Canvas is a fixed-resolution, palette-indexed pixel buffer. It is the only
// render surface the game draws to; the platform projects it onto the
// terminal with nearest-neighbor sampling.
type Canvas struct {
	width  int
	height int
	pixels []ColorIndex // Flat slice: [y*width + x]
	labels []Label
}

// NewCanvas creates a canvas cleared to the background color.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]ColorIndex, width*height),
	}
}

// Width returns the canvas width in logical pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in logical pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills every pixel with the given color and drops all labels.
func (c *Canvas) Clear(color ColorIndex) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
	c.labels = c.labels[:0]
}

// Set colors a single pixel. Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, color ColorIndex) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = color
}

// Get returns the color of a pixel, or the background for out-of-bounds
// coordinates.
func (c *Canvas) Get(x, y int) ColorIndex {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ColorBackground
	}
	return c.pixels[y*c.width+x]
}

// FillRect fills an axis-aligned rectangle given in logical coordinates.
// The rectangle is clipped to the canvas; empty or inverted rectangles draw
// nothing.
func (c *Canvas) FillRect(r Rect, color ColorIndex) {
	x0, y0, x1, y1 := r.Pixels()
	x0 = Clamp(x0, 0, c.width)
	x1 = Clamp(x1, 0, c.width)
	y0 = Clamp(y0, 0, c.height)
	y1 = Clamp(y1, 0, c.height)

	for y := y0; y < y1; y++ {
		row := c.pixels[y*c.width : (y+1)*c.width]
		for x := x0; x < x1; x++ {
			row[x] = color
		}
	}
}

// DrawText places a text label at (x, y).
func (c *Canvas) DrawText(x, y float64, text string, color ColorIndex) {
	c.labels = append(c.labels, Label{X: x, Y: y, Text: text, Color: color})
}

// Labels returns a copy of the text overlays in draw order.
func (c *Canvas) Labels() []Label {
	out := make([]Label, len(c.labels))
	copy(out, c.labels)
	return out
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	clone := NewCanvas(c.width, c.height)
	copy(clone.pixels, c.pixels)
	clone.labels = c.Labels()
	return clone
}

// debugRunes maps palette slots to characters for plain-text dumps.
var debugRunes = [PaletteSize]rune{' ', '█', '+', '▒'}

// Row returns one canvas row as plain text, with labels anchored on that row
// written over the pixels.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}

	row := make([]rune, c.width)
	for x := 0; x < c.width; x++ {
		idx := c.pixels[y*c.width+x]
		if int(idx) < len(debugRunes) {
			row[x] = debugRunes[idx]
		} else {
			row[x] = '?'
		}
	}

	for _, l := range c.labels {
		if int(math.Round(l.Y)) != y {
			continue
		}
		lx := int(math.Round(l.X))
		for i, r := range []rune(l.Text) {
			if lx+i >= 0 && lx+i < c.width {
				row[lx+i] = r
			}
		}
	}
	return string(row)
}

// String converts the canvas to plain text, one line per pixel row.
// Used for screenshots and test diagnostics.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.width + 1) * c.height * 3)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(c.Row(y))
	}
	return sb.String()
}
