package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// Surface is a 2D raster the animator paints onto. Size reports the current
// pixel dimensions of the surface's layout box.
type Surface interface {
	Size() (w, h int)
	Clear()
	SetFillColor(c color.RGBA)
	SetGlobalAlpha(a float64)
	FillRect(x, y, w, h int)
}

// Sim defines the minimal contract the hosts and HUD rely on.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Population() int
	Steps() int
}
