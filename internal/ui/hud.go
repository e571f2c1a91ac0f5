//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"pixel-garden/internal/core"
	"pixel-garden/internal/garden"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent status panel in the top-left corner: run stats,
// one parameter group at a time (Tab cycles) and the update interval with
// -/+ buttons.
type HUD struct {
	anim  *garden.Animator
	toast *core.Toast

	panel *ebiten.Image
	pixel *ebiten.Image

	group     int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the animator. toast may be nil.
func NewHUD(anim *garden.Animator, toast *core.Toast) *HUD {
	h := &HUD{anim: anim, toast: toast}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.layout()
	return h
}

// Update handles group cycling and the interval buttons.
func (h *HUD) Update() {
	if h == nil || !h.anim.Active() {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.group++
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	switch {
	case pointInRect(mx, my, h.minusRect):
		h.adjustInterval(-1)
	case pointInRect(mx, my, h.plusRect):
		h.adjustInterval(1)
	}
}

func (h *HUD) adjustInterval(direction int) {
	next := h.anim.UpdateInterval() + direction
	if next < 1 {
		return
	}
	h.anim.SetUpdateInterval(next)
	if h.toast != nil {
		h.toast.Show(fmt.Sprintf("interval %d", next))
	}
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.anim.Active() {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(panelWidth, panelHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	world := h.anim.World()
	y := panelPadding + headerBaseline
	text.Draw(h.panel, world.Name(), face, panelPadding, y, titleColor)
	y += lineHeight
	stats := []string{
		fmt.Sprintf("seed   %d", world.Seed()),
		fmt.Sprintf("grid   %dx%d", world.Size().W, world.Size().H),
		fmt.Sprintf("pop    %d", world.Population()),
		fmt.Sprintf("steps  %d", world.Steps()),
		fmt.Sprintf("tps    %.0f", ebiten.ActualTPS()),
	}
	if h.anim.Paused() {
		stats = append(stats, "paused")
	}
	for _, line := range stats {
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
		y += lineHeight
	}

	text.Draw(h.panel, fmt.Sprintf("interval %d", h.anim.UpdateInterval()), face, panelPadding, h.minusRect.Min.Y+labelBaseline, textColor)
	h.drawButton(h.minusRect, "-", h.anim.UpdateInterval() > 1)
	h.drawButton(h.plusRect, "+", true)

	tuning := h.anim.Tuning()
	snap := tuning.Parameters()
	if len(snap.Groups) > 0 {
		group := snap.Groups[h.group%len(snap.Groups)]
		y = h.minusRect.Max.Y + lineHeight
		text.Draw(h.panel, "["+group.Name+"]  tab", face, panelPadding, y, titleColor)
		y += lineHeight
		for _, p := range group.Params {
			if y > panelHeight-panelPadding {
				break
			}
			line := fmt.Sprintf("%-20s %s", p.Label, p.Value)
			text.Draw(h.panel, line, face, panelPadding, y, dimColor)
			y += lineHeight
		}
	}
	screen.DrawImage(h.panel, nil)

	if h.toast != nil && h.toast.Visible() {
		h.drawToast(screen)
	}
}

func (h *HUD) drawToast(screen *ebiten.Image) {
	face := basicfont.Face7x13
	msg := h.toast.Text()
	bounds := text.BoundString(face, msg)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (sw - bounds.Dx()) / 2
	y := sh - panelPadding*2
	a := uint8(255 * h.toast.Alpha())
	text.Draw(screen, msg, face, x, y, color.NRGBA{R: 0x39, G: 0xff, B: 0x14, A: a})
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	top := panelPadding + headerBaseline + 6*lineHeight + 4
	h.plusRect = image.Rect(panelWidth-panelPadding-buttonSize, top, panelWidth-panelPadding, top+buttonSize)
	h.minusRect = image.Rect(h.plusRect.Min.X-buttonGap-buttonSize, top, h.plusRect.Min.X-buttonGap, top+buttonSize)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelWidth     = 260
	panelHeight    = 380
	panelPadding   = 12
	lineHeight     = 16
	buttonSize     = 18
	buttonGap      = 6
	headerBaseline = 12
	labelBaseline  = 13
)
