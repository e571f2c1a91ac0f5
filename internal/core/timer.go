package core

import "time"

// Interval fires once every N ticks. It decouples the simulation cadence from
// the render cadence: the host ticks it every frame and steps the simulation
// only when Tick reports true.
type Interval struct {
	every int
	count int
}

// NewInterval constructs an Interval firing every n ticks.
func NewInterval(n int) *Interval {
	i := &Interval{}
	i.SetEvery(n)
	return i
}

// SetEvery changes the cadence. Values below one are treated as one.
func (i *Interval) SetEvery(n int) {
	if n <= 0 {
		n = 1
	}
	i.every = n
	if i.count >= n {
		i.count = 0
	}
}

// Every returns the configured cadence.
func (i *Interval) Every() int { return i.every }

// Tick advances the counter and reports whether this tick is due.
func (i *Interval) Tick() bool {
	i.count++
	if i.count >= i.every {
		i.count = 0
		return true
	}
	return false
}

// Reset restarts the count without changing the cadence.
func (i *Interval) Reset() { i.count = 0 }

// FrameSource delivers frame callbacks to a Loop.
type FrameSource interface {
	Frames() <-chan time.Time
	Stop()
}

// TickerSource is a FrameSource backed by a wall-clock ticker.
type TickerSource struct {
	t *time.Ticker
}

// NewTickerSource returns a source firing fps times per second.
func NewTickerSource(fps int) *TickerSource {
	if fps <= 0 {
		fps = 60
	}
	return &TickerSource{t: time.NewTicker(time.Second / time.Duration(fps))}
}

// Frames exposes the ticker channel.
func (s *TickerSource) Frames() <-chan time.Time { return s.t.C }

// Stop halts the ticker.
func (s *TickerSource) Stop() { s.t.Stop() }

// ManualSource is a virtual clock: frames are delivered only when Fire is
// called. Fire blocks until the loop has received the frame.
type ManualSource struct {
	ch  chan time.Time
	now time.Time
}

// NewManualSource constructs a ManualSource starting at the zero time.
func NewManualSource() *ManualSource {
	return &ManualSource{ch: make(chan time.Time)}
}

// Frames exposes the frame channel.
func (s *ManualSource) Frames() <-chan time.Time { return s.ch }

// Fire delivers one frame, advancing the virtual clock by one 60Hz period.
func (s *ManualSource) Fire() {
	s.now = s.now.Add(time.Second / 60)
	s.ch <- s.now
}

// Stop is a no-op; the channel stays open so a stray Fire cannot panic.
func (s *ManualSource) Stop() {}
