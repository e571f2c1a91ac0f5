//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"pixel-garden/internal/garden"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging masks over the garden: per-cell vitality
// (V) and age (G).
type Overlay struct {
	anim  *garden.Animator
	scale int

	showVitality bool
	showAge      bool

	maskImg *ebiten.Image
	maskBuf []byte
	maskW   int
	maskH   int
}

// NewOverlay constructs an overlay drawing at the window scale.
func NewOverlay(anim *garden.Animator, scale int) *Overlay {
	return &Overlay{anim: anim, scale: scale}
}

// Update toggles the masks.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.showVitality = !o.showVitality
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showAge = !o.showAge
	}
}

// Draw renders the enabled masks onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.anim.Active() || (!o.showVitality && !o.showAge) {
		return
	}
	world := o.anim.World()
	size := world.Size()
	if size.Area() == 0 {
		return
	}
	if o.maskImg == nil || o.maskW != size.W || o.maskH != size.H {
		if o.maskImg != nil {
			o.maskImg.Deallocate()
		}
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*size.Area())
		o.maskW, o.maskH = size.W, size.H
	}

	cells := world.Cells()
	if o.showVitality {
		o.drawMask(screen, func(i int) float64 { return cells[i].Vitality }, color.RGBA{R: 64, G: 164, B: 223})
	}
	if o.showAge {
		o.drawMask(screen, func(i int) float64 {
			if cells[i].Empty() {
				return 0
			}
			return math.Min(float64(cells[i].Age)/ageHorizon, 1)
		}, color.RGBA{R: 255, G: 120, B: 40})
	}
}

const ageHorizon = 64

func (o *Overlay) drawMask(screen *ebiten.Image, intensityAt func(int) float64, tint color.RGBA) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)

	total := o.maskW * o.maskH
	for i := 0; i < total; i++ {
		base := i * 4
		intensity := intensityAt(i)
		if intensity < 0 {
			intensity = 0
		}
		if intensity > 1 {
			intensity = 1
		}
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}

		alpha := math.Round(maxAlpha * math.Pow(intensity, intensityBias))
		glow := glowBase + glowRange*math.Sqrt(intensity)

		// WritePixels expects premultiplied alpha.
		o.maskBuf[base+0] = premultiply(tint.R, glow, alpha)
		o.maskBuf[base+1] = premultiply(tint.G, glow, alpha)
		o.maskBuf[base+2] = premultiply(tint.B, glow, alpha)
		o.maskBuf[base+3] = uint8(alpha)
	}
	o.maskImg.WritePixels(o.maskBuf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	cell := float64(o.anim.Tuning().CellSize * scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cell, cell)
	screen.DrawImage(o.maskImg, op)
}

func premultiply(c uint8, glow, alpha float64) uint8 {
	v := float64(c) * glow * alpha / 255
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(v))
}
