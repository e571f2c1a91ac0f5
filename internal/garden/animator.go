package garden

import (
	"context"
	"reflect"

	"pixel-garden/internal/core"

	"github.com/tanema/gween/ease"
)

// Animator binds a World to a drawing surface. Every frame it optionally
// advances the world (once per update interval) and always repaints.
//
// An Animator built without a surface is inert: it owns no world and every
// method is a no-op.
type Animator struct {
	surface  core.Surface
	tuning   Tuning
	world    *World
	interval *core.Interval
	curve    ease.TweenFunc

	frames uint64
	paused bool

	loop  *core.Loop
	after func()
}

// NewAnimator sizes a world from the surface, seeds it and returns the
// animator. A nil surface, including a typed nil pointer, yields an inert
// animator.
func NewAnimator(surface core.Surface, t Tuning, seed int64) *Animator {
	if missing(surface) {
		return &Animator{}
	}
	a := &Animator{
		surface:  surface,
		tuning:   t.Clone(),
		interval: core.NewInterval(t.UpdateInterval),
		curve:    curveFor(t.OpacityCurve),
	}
	cols, rows := a.gridSize()
	a.world = NewWorld(cols, rows, a.tuning, seed)
	return a
}

func missing(s core.Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Active reports whether the animator is bound to a surface.
func (a *Animator) Active() bool { return a.world != nil }

// World exposes the simulation. Nil when inert.
func (a *Animator) World() *World { return a.world }

// Tuning returns a copy of the active tuning.
func (a *Animator) Tuning() Tuning { return a.tuning.Clone() }

// Frames reports how many frames have been ticked.
func (a *Animator) Frames() uint64 { return a.frames }

// Paused reports whether transitions are suspended.
func (a *Animator) Paused() bool { return a.paused }

// SetPaused suspends or resumes transitions. Painting continues.
func (a *Animator) SetPaused(p bool) { a.paused = p }

// UpdateInterval returns the number of frames between transitions.
func (a *Animator) UpdateInterval() int {
	if !a.Active() {
		return 0
	}
	return a.interval.Every()
}

// SetUpdateInterval changes the transition cadence.
func (a *Animator) SetUpdateInterval(n int) {
	if !a.Active() {
		return
	}
	a.interval.SetEvery(n)
	a.tuning.UpdateInterval = a.interval.Every()
}

func (a *Animator) gridSize() (cols, rows int) {
	w, h := a.surface.Size()
	return ceilDiv(w, a.tuning.CellSize), ceilDiv(h, a.tuning.CellSize)
}

func ceilDiv(n, d int) int {
	if n <= 0 || d <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

// Resize recomputes the grid from the surface's current size and reseeds.
func (a *Animator) Resize() {
	if !a.Active() {
		return
	}
	cols, rows := a.gridSize()
	a.world.Resize(cols, rows)
	a.interval.Reset()
}

// NotifyResize schedules Resize on the frame loop when one is running, or
// runs it immediately otherwise.
func (a *Animator) NotifyResize() {
	if !a.Active() {
		return
	}
	if a.loop != nil {
		a.loop.Post(a.Resize)
		return
	}
	a.Resize()
}

// Reseed restarts the world from seed without changing its size.
func (a *Animator) Reseed(seed int64) {
	if !a.Active() {
		return
	}
	a.world.Reset(seed)
	a.interval.Reset()
}

// Tick counts one frame and runs a transition when the interval is due.
// It reports whether a transition ran.
func (a *Animator) Tick() bool {
	if !a.Active() {
		return false
	}
	a.frames++
	if a.paused || !a.interval.Tick() {
		return false
	}
	a.world.Step()
	return true
}

// StepOnce runs a single transition regardless of the interval or pause.
func (a *Animator) StepOnce() {
	if !a.Active() {
		return
	}
	a.world.Step()
}

// OnFrame registers fn to run after every Frame's paint, typically to
// present the surface.
func (a *Animator) OnFrame(fn func()) { a.after = fn }

// Frame is one render-loop invocation: Tick followed by Paint.
func (a *Animator) Frame() {
	if !a.Active() {
		return
	}
	a.Tick()
	a.Paint()
	if a.after != nil {
		a.after()
	}
}

// Start runs Frame for every frame delivered by src until Stop is called or
// ctx is cancelled. It reports false when inert or already running.
func (a *Animator) Start(ctx context.Context, src core.FrameSource) bool {
	if !a.Active() {
		return false
	}
	if a.loop != nil && a.loop.Running() {
		return false
	}
	a.loop = core.NewLoop(src, a.Frame)
	return a.loop.Start(ctx)
}

// Stop halts the frame loop and waits for it to exit.
func (a *Animator) Stop() {
	if a.loop == nil {
		return
	}
	a.loop.Stop()
	a.loop = nil
}

// Post runs fn on the frame loop goroutine, or inline when no loop runs.
func (a *Animator) Post(fn func()) {
	if a.loop != nil {
		a.loop.Post(fn)
		return
	}
	fn()
}

// Sync waits until all queued frames and posted tasks have run.
func (a *Animator) Sync() {
	if a.loop != nil {
		a.loop.Sync()
	}
}
