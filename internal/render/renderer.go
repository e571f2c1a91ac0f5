//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a PixelSurface into an ebiten image and draws it.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a w*h surface.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.ensure(w, h)
	return gp
}

func (gp *GridPainter) ensure(w, h int) {
	if w <= 0 || h <= 0 {
		gp.w, gp.h = 0, 0
		gp.img = nil
		return
	}
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
}

// Blit uploads the surface pixels and draws them onto dst at the given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, surface *PixelSurface, scale int) {
	w, h := surface.Size()
	gp.ensure(w, h)
	if gp.img == nil {
		return
	}
	gp.img.WritePixels(surface.Image().Pix)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
