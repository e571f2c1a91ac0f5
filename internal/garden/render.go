package garden

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Paint clears the surface and draws every visible cell as a square one pixel
// smaller than the cell size. Global alpha is restored to 1 afterwards.
func (a *Animator) Paint() {
	if !a.Active() {
		return
	}
	s := a.surface
	s.Clear()
	size := a.tuning.CellSize
	edge := size - 1
	cols := a.world.w
	for i, c := range a.world.Cells() {
		if c.Empty() {
			continue
		}
		alpha := a.Opacity(c)
		if alpha <= 0 {
			continue
		}
		x, y := i%cols, i/cols
		s.SetFillColor(c.Color())
		s.SetGlobalAlpha(alpha)
		s.FillRect(x*size, y*size, edge, edge)
	}
	s.SetGlobalAlpha(1)
}

// Opacity returns the paint opacity of c at the current frame.
func (a *Animator) Opacity(c Cell) float64 {
	if !a.Active() {
		return 0
	}
	return opacity(&a.tuning, a.curve, c, a.frames)
}

// opacity maps vitality through the curve, scales it by the kind's opacity
// and modulates it with the per-cell and global pulses. The result is
// clamped to [0,1].
func opacity(t *Tuning, curve ease.TweenFunc, c Cell, frame uint64) float64 {
	if c.Empty() || c.Vitality <= 0 {
		return 0
	}
	if curve == nil {
		curve = ease.Linear
	}
	alpha := float64(curve(float32(clamp01(c.Vitality)), 0, 1, 1))
	if c.Kind.Accent() {
		alpha *= t.AccentOpacity
	} else {
		alpha *= t.Opacity
	}
	f := float64(frame)
	if t.PulseAmplitude > 0 {
		alpha *= 1 + t.PulseAmplitude*math.Sin(f*t.PulseSpeed+c.Phase)
	}
	if t.GlobalPulseAmplitude > 0 {
		alpha *= 1 + t.GlobalPulseAmplitude*math.Sin(f*t.GlobalPulseSpeed)
	}
	return clamp01(alpha)
}
