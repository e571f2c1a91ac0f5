package render

import (
	"image/color"
	"testing"
)

func TestPixelSurfaceFillRect(t *testing.T) {
	p := NewPixelSurface(4, 4)
	if w, h := p.Size(); w != 4 || h != 4 {
		t.Fatalf("Size() = %dx%d", w, h)
	}
	red := color.RGBA{R: 0xff, A: 0xff}
	p.SetFillColor(red)
	p.FillRect(-2, -2, 4, 4)

	img := p.Image()
	if img.RGBAAt(0, 0) != red || img.RGBAAt(1, 1) != red {
		t.Fatal("clipped rectangle should cover the top-left corner")
	}
	if img.RGBAAt(2, 2) != (color.RGBA{}) {
		t.Fatalf("pixel outside the rectangle = %v", img.RGBAAt(2, 2))
	}
}

func TestPixelSurfaceGlobalAlpha(t *testing.T) {
	p := NewPixelSurface(2, 2)
	p.SetFillColor(color.RGBA{R: 0xff, A: 0xff})
	p.SetGlobalAlpha(0.5)
	p.FillRect(0, 0, 1, 1)
	got := p.Image().RGBAAt(0, 0)
	if got.A != 0x80 || got.R != 0x80 {
		t.Fatalf("half-alpha pixel = %v, want premultiplied 0x80", got)
	}

	p.SetGlobalAlpha(3)
	if p.GlobalAlpha() != 1 {
		t.Fatal("alpha should clamp to 1")
	}
	p.SetGlobalAlpha(0)
	p.FillRect(1, 1, 1, 1)
	if p.Image().RGBAAt(1, 1).A != 0 {
		t.Fatal("zero alpha must not paint")
	}
}

func TestPixelSurfaceClearAndResize(t *testing.T) {
	p := NewPixelSurface(3, 3)
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 0xff}
	p.SetBackground(bg)
	p.Clear()
	if p.Image().RGBAAt(2, 2) != bg {
		t.Fatal("Clear should fill with the background")
	}
	p.Resize(5, 1)
	if w, h := p.Size(); w != 5 || h != 1 {
		t.Fatalf("Size() after resize = %dx%d", w, h)
	}
	if p.Image().RGBAAt(4, 0) != bg {
		t.Fatal("resize should clear to the background")
	}
}
