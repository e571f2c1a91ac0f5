package render

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
)

// WritePNG encodes the surface as a PNG.
func WritePNG(w io.Writer, p *PixelSurface) error {
	return png.Encode(w, p.Image())
}

// GIFRecorder collects surface frames into an animated GIF.
type GIFRecorder struct {
	anim  gif.GIF
	delay int
}

// NewGIFRecorder records frames shown for delay hundredths of a second.
func NewGIFRecorder(delay int) *GIFRecorder {
	if delay <= 0 {
		delay = 2
	}
	return &GIFRecorder{delay: delay}
}

// Add quantises the surface's current contents to the Plan 9 palette and
// appends it as a frame.
func (r *GIFRecorder) Add(p *PixelSurface) {
	src := p.Image()
	frame := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.Draw(frame, frame.Bounds(), src, src.Bounds().Min, draw.Src)
	r.anim.Image = append(r.anim.Image, frame)
	r.anim.Delay = append(r.anim.Delay, r.delay)
}

// Frames returns the number of recorded frames.
func (r *GIFRecorder) Frames() int { return len(r.anim.Image) }

// Encode writes the looping animation.
func (r *GIFRecorder) Encode(w io.Writer) error {
	return gif.EncodeAll(w, &r.anim)
}
