package garden

import (
	"context"
	"image/color"
	"testing"

	"pixel-garden/internal/core"
)

type rect struct {
	x, y, w, h int
	fill        color.RGBA
	alpha       float64
}

type recordingSurface struct {
	w, h   int
	clears int
	fill   color.RGBA
	alpha  float64
	rects  []rect
}

func (s *recordingSurface) Size() (int, int)           { return s.w, s.h }
func (s *recordingSurface) SetFillColor(c color.RGBA)  { s.fill = c }
func (s *recordingSurface) SetGlobalAlpha(a float64)   { s.alpha = a }
func (s *recordingSurface) Clear()                     { s.clears++; s.rects = s.rects[:0] }
func (s *recordingSurface) FillRect(x, y, w, h int) {
	s.rects = append(s.rects, rect{x: x, y: y, w: w, h: h, fill: s.fill, alpha: s.alpha})
}

func TestAnimatorWithoutSurfaceIsInert(t *testing.T) {
	a := NewAnimator(nil, Classic(), 1)
	if a.Active() {
		t.Fatal("animator without a surface should be inert")
	}
	a.Frame()
	a.Resize()
	a.NotifyResize()
	a.Reseed(3)
	a.StepOnce()
	a.SetUpdateInterval(4)
	if a.Start(context.Background(), core.NewManualSource()) {
		t.Fatal("inert animator must not start a loop")
	}
	a.Stop()
	if a.World() != nil || a.Frames() != 0 || a.Opacity(live(KindMoss, 1)) != 0 {
		t.Fatal("inert animator should expose no state")
	}
}

func TestAnimatorWithTypedNilSurfaceIsInert(t *testing.T) {
	var surface *recordingSurface
	a := NewAnimator(surface, Classic(), 1)
	if a.Active() {
		t.Fatal("animator over a nil surface pointer should be inert")
	}
	a.Frame()
	a.Resize()
	a.Paint()
	if a.Start(context.Background(), core.NewManualSource()) {
		t.Fatal("inert animator must not start a loop")
	}
}

func TestAnimatorSizesGridFromSurface(t *testing.T) {
	surface := &recordingSurface{w: 100, h: 50}
	a := NewAnimator(surface, Classic(), 1)
	if got := a.World().Size(); got != (core.Size{W: 13, H: 7}) {
		t.Fatalf("grid size = %+v, want 13x7", got)
	}

	surface.w, surface.h = 81, 17
	a.Resize()
	if got := a.World().Size(); got != (core.Size{W: 11, H: 3}) {
		t.Fatalf("grid size after resize = %+v, want 11x3", got)
	}
	if a.World().Population() == 0 {
		t.Fatal("resize should reseed the grid")
	}
	if a.World().Steps() != 0 {
		t.Fatal("resize should discard simulation progress")
	}
}

func TestAnimatorStepsOnInterval(t *testing.T) {
	surface := &recordingSurface{w: 64, h: 64}
	a := NewAnimator(surface, Classic(), 1)
	steps := 0
	for i := 1; i <= 24; i++ {
		if a.Tick() {
			steps++
		}
	}
	if steps != 3 || a.World().Steps() != 3 {
		t.Fatalf("24 frames at interval 8 ran %d transitions (world %d), want 3", steps, a.World().Steps())
	}

	a.SetPaused(true)
	for i := 0; i < 16; i++ {
		a.Tick()
	}
	if a.World().Steps() != 3 {
		t.Fatal("paused animator must not advance the world")
	}
	if a.Frames() != 40 {
		t.Fatalf("Frames() = %d, want 40", a.Frames())
	}
	a.StepOnce()
	if a.World().Steps() != 4 {
		t.Fatal("StepOnce should advance even while paused")
	}
}

func TestPaintDrawsInsetSquares(t *testing.T) {
	surface := &recordingSurface{w: 40, h: 40}
	tune := quietClassic()
	a := NewAnimator(surface, tune, 1)
	a.World().Clear()
	a.World().Set(2, 3, live(KindAmber, 1))
	a.World().Set(4, 0, Cell{Kind: KindTerminal, Vitality: 0.5})

	a.Paint()

	if surface.clears != 1 {
		t.Fatalf("Paint should clear once, cleared %d", surface.clears)
	}
	if len(surface.rects) != 2 {
		t.Fatalf("painted %d rects, want 2", len(surface.rects))
	}
	first := surface.rects[0]
	if first.x != 32 || first.y != 0 || first.w != 7 || first.h != 7 {
		t.Fatalf("terminal rect = %+v, want 32,0 7x7", first)
	}
	if first.fill != KindTerminal.Color(0) || first.alpha != 0.5*tune.AccentOpacity {
		t.Fatalf("terminal rect colour/alpha = %v/%v", first.fill, first.alpha)
	}
	second := surface.rects[1]
	if second.x != 16 || second.y != 24 {
		t.Fatalf("amber rect at %d,%d, want 16,24", second.x, second.y)
	}
	if second.alpha != tune.Opacity {
		t.Fatalf("amber alpha = %v, want %v", second.alpha, tune.Opacity)
	}
	if surface.alpha != 1 {
		t.Fatalf("global alpha left at %v after paint, want 1", surface.alpha)
	}
}

func TestOpacityClamped(t *testing.T) {
	tune := Glow()
	tune.AccentOpacity = 1
	tune.PulseAmplitude = 1
	tune.GlobalPulseAmplitude = 1
	curve := curveFor(tune.OpacityCurve)

	sawCeiling := false
	for frame := uint64(0); frame < 2000; frame += 7 {
		for _, v := range []float64{0.01, 0.3, 0.7, 1} {
			for _, kind := range []Kind{KindGlow, KindMoss} {
				c := Cell{Kind: kind, Vitality: v, Phase: float64(frame%13) * 0.5}
				alpha := opacity(&tune, curve, c, frame)
				if alpha < 0 || alpha > 1 {
					t.Fatalf("opacity %v outside [0,1] (frame %d, vitality %v)", alpha, frame, v)
				}
				if alpha == 1 {
					sawCeiling = true
				}
			}
		}
	}
	if !sawCeiling {
		t.Fatal("overlaid pulses on a full-opacity accent should hit the clamp")
	}
	if opacity(&tune, curve, Cell{}, 0) != 0 {
		t.Fatal("empty cells are invisible")
	}
}

func TestAnimatorLoopCadenceWithVirtualClock(t *testing.T) {
	surface := &recordingSurface{w: 64, h: 48}
	a := NewAnimator(surface, Classic(), 1)
	src := core.NewManualSource()
	if !a.Start(context.Background(), src) {
		t.Fatal("Start failed")
	}
	defer a.Stop()

	for i := 0; i < 24; i++ {
		src.Fire()
	}
	a.Sync()

	var steps int
	var clears int
	a.Post(func() {
		steps = a.World().Steps()
		clears = surface.clears
	})
	a.Sync()
	if steps != 3 {
		t.Fatalf("steps = %d after 24 frames, want 3", steps)
	}
	if clears != 24 {
		t.Fatalf("painted %d frames, want 24", clears)
	}
}

func TestNotifyResizeRunsOnLoop(t *testing.T) {
	surface := &recordingSurface{w: 64, h: 48}
	a := NewAnimator(surface, Classic(), 1)
	src := core.NewManualSource()
	a.Start(context.Background(), src)

	src.Fire()
	a.Post(func() { surface.w, surface.h = 16, 16 })
	a.NotifyResize()
	a.Sync()

	var size core.Size
	a.Post(func() { size = a.World().Size() })
	a.Sync()
	a.Stop()
	if size != (core.Size{W: 2, H: 2}) {
		t.Fatalf("size after resize = %+v, want 2x2", size)
	}
	if a.Start(context.Background(), src) != true {
		t.Fatal("animator should restart after Stop")
	}
	a.Stop()
}
