package core

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultToastDuration is how long a toast stays visible.
const DefaultToastDuration = 2000 * time.Millisecond

// Toast is a transient status label. Its opacity holds at one for the first
// half of its lifetime and then eases out to zero.
type Toast struct {
	text     string
	duration time.Duration
	hold     float32
	tween    *gween.Tween
	alpha    float64
	visible  bool
}

// NewToast constructs a toast with the given lifetime.
func NewToast(d time.Duration) *Toast {
	if d <= 0 {
		d = DefaultToastDuration
	}
	return &Toast{duration: d}
}

// Show displays text and restarts the fade.
func (t *Toast) Show(text string) {
	secs := float32(t.duration.Seconds())
	t.text = text
	t.hold = secs / 2
	t.tween = gween.New(1, 0, secs-t.hold, ease.OutQuad)
	t.alpha = 1
	t.visible = true
}

// Update advances the toast by dt.
func (t *Toast) Update(dt time.Duration) {
	if !t.visible {
		return
	}
	step := float32(dt.Seconds())
	if t.hold > 0 {
		if step <= t.hold {
			t.hold -= step
			return
		}
		step -= t.hold
		t.hold = 0
	}
	v, finished := t.tween.Update(step)
	t.alpha = clamp01(float64(v))
	if finished {
		t.visible = false
		t.alpha = 0
		t.text = ""
	}
}

// Text returns the label, or "" when hidden.
func (t *Toast) Text() string { return t.text }

// Alpha returns the current opacity in [0, 1].
func (t *Toast) Alpha() float64 { return t.alpha }

// Visible reports whether the toast is showing.
func (t *Toast) Visible() bool { return t.visible }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
