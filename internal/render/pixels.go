package render

import (
	"image"
	"image/color"
	"image/draw"

	"pixel-garden/internal/core"
)

var (
	_ core.Surface = (*PixelSurface)(nil)
	_ core.Surface = (*CharSurface)(nil)
)

// PixelSurface is an in-memory RGBA raster implementing core.Surface.
type PixelSurface struct {
	img   *image.RGBA
	bg    color.RGBA
	fill  color.RGBA
	alpha float64
}

// NewPixelSurface allocates a transparent w*h surface.
func NewPixelSurface(w, h int) *PixelSurface {
	p := &PixelSurface{alpha: 1}
	p.Resize(w, h)
	return p
}

// Resize reallocates the raster. Contents are discarded.
func (p *PixelSurface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	p.img = image.NewRGBA(image.Rect(0, 0, w, h))
	p.Clear()
}

// SetBackground sets the colour Clear fills with. The default is transparent.
func (p *PixelSurface) SetBackground(c color.RGBA) { p.bg = c }

// Size returns the raster dimensions.
func (p *PixelSurface) Size() (int, int) {
	b := p.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the raster with the background colour.
func (p *PixelSurface) Clear() {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(p.bg), image.Point{}, draw.Src)
}

// SetFillColor sets the colour used by FillRect.
func (p *PixelSurface) SetFillColor(c color.RGBA) { p.fill = c }

// SetGlobalAlpha sets the opacity applied by FillRect, clamped to [0,1].
func (p *PixelSurface) SetGlobalAlpha(a float64) { p.alpha = clampAlpha(a) }

// GlobalAlpha returns the current opacity.
func (p *PixelSurface) GlobalAlpha() float64 { return p.alpha }

// FillRect composites the fill colour over the rectangle, clipped to bounds.
func (p *PixelSurface) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 || p.alpha <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(p.img.Bounds())
	if r.Empty() {
		return
	}
	src := color.NRGBA{R: p.fill.R, G: p.fill.G, B: p.fill.B, A: uint8(float64(p.fill.A)*p.alpha + 0.5)}
	draw.Draw(p.img, r, image.NewUniform(src), image.Point{}, draw.Over)
}

// Image exposes the raster. Pixels are alpha-premultiplied RGBA.
func (p *PixelSurface) Image() *image.RGBA { return p.img }

func clampAlpha(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
