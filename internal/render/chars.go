package render

import "image/color"

// CharSurface rasterises onto a grid of terminal character cells. Each
// character covers pxW*pxH surface pixels; a rectangle lights every
// character it touches, blending the fill colour over what is there.
type CharSurface struct {
	cols, rows int
	pxW, pxH   int

	bg    color.RGBA
	fill  color.RGBA
	alpha float64

	cells []color.RGBA
	lit   []bool
}

// NewCharSurface allocates a surface of cols*rows characters.
func NewCharSurface(cols, rows, pxW, pxH int) *CharSurface {
	if pxW <= 0 {
		pxW = 1
	}
	if pxH <= 0 {
		pxH = 1
	}
	c := &CharSurface{pxW: pxW, pxH: pxH, alpha: 1, bg: color.RGBA{A: 0xff}}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the character grid. Contents are discarded.
func (c *CharSurface) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]color.RGBA, cols*rows)
	c.lit = make([]bool, cols*rows)
	c.Clear()
}

// SetBackground sets the colour unlit characters blend against.
func (c *CharSurface) SetBackground(bg color.RGBA) { c.bg = bg }

// Background returns the background colour.
func (c *CharSurface) Background() color.RGBA { return c.bg }

// Cols returns the width in characters.
func (c *CharSurface) Cols() int { return c.cols }

// Rows returns the height in characters.
func (c *CharSurface) Rows() int { return c.rows }

// Size returns the pixel dimensions covered by the character grid.
func (c *CharSurface) Size() (int, int) { return c.cols * c.pxW, c.rows * c.pxH }

// Clear resets every character to the background.
func (c *CharSurface) Clear() {
	for i := range c.cells {
		c.cells[i] = c.bg
		c.lit[i] = false
	}
}

// SetFillColor sets the colour used by FillRect.
func (c *CharSurface) SetFillColor(col color.RGBA) { c.fill = col }

// SetGlobalAlpha sets the opacity applied by FillRect, clamped to [0,1].
func (c *CharSurface) SetGlobalAlpha(a float64) { c.alpha = clampAlpha(a) }

// GlobalAlpha returns the current opacity.
func (c *CharSurface) GlobalAlpha() float64 { return c.alpha }

// FillRect lights every character overlapped by the pixel rectangle.
func (c *CharSurface) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 || c.alpha <= 0 {
		return
	}
	x0, y0 := floorDiv(x, c.pxW), floorDiv(y, c.pxH)
	x1, y1 := floorDiv(x+w-1, c.pxW), floorDiv(y+h-1, c.pxH)
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= c.cols {
		x1 = c.cols - 1
	}
	if y1 >= c.rows {
		y1 = c.rows - 1
	}
	a := c.alpha * float64(c.fill.A) / 255
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			i := row*c.cols + col
			c.cells[i] = blend(c.cells[i], c.fill, a)
			c.lit[i] = true
		}
	}
}

// At returns the colour of the character at (col, row) and whether anything
// was drawn there since the last Clear.
func (c *CharSurface) At(col, row int) (color.RGBA, bool) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return c.bg, false
	}
	i := row*c.cols + col
	return c.cells[i], c.lit[i]
}

// blend composites src over an opaque dst with coverage a.
func blend(dst, src color.RGBA, a float64) color.RGBA {
	inv := 1 - a
	return color.RGBA{
		R: uint8(float64(src.R)*a + float64(dst.R)*inv + 0.5),
		G: uint8(float64(src.G)*a + float64(dst.G)*inv + 0.5),
		B: uint8(float64(src.B)*a + float64(dst.B)*inv + 0.5),
		A: 0xff,
	}
}

func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
