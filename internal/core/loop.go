package core

import (
	"context"
	"sync"
)

// Loop is a stoppable, self-rescheduling frame task. Frames and posted tasks
// run on a single goroutine, so state touched only from the frame callback
// and from posted tasks needs no locking.
type Loop struct {
	src   FrameSource
	frame func()
	tasks chan func()

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewLoop constructs a loop invoking frame for every frame delivered by src.
func NewLoop(src FrameSource, frame func()) *Loop {
	return &Loop{src: src, frame: frame, tasks: make(chan func(), 16)}
}

// Start launches the loop goroutine. It reports false if the loop is already
// running.
func (l *Loop) Start(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return false
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})
	l.running = true
	go l.run(ctx, l.done)
	return true
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
		close(done)
	}()
	frames := l.src.Frames()
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.tasks:
			fn()
		case _, ok := <-frames:
			if !ok {
				return
			}
			if l.frame != nil {
				l.frame()
			}
		}
	}
}

// Post schedules fn on the loop goroutine. When the loop is not running fn is
// executed immediately on the caller's goroutine.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	running, done := l.running, l.done
	l.mu.Unlock()
	if !running {
		fn()
		return
	}
	select {
	case l.tasks <- fn:
	case <-done:
	}
}

// Sync blocks until every frame and task queued before the call has run.
func (l *Loop) Sync() {
	l.mu.Lock()
	running, done := l.running, l.done
	l.mu.Unlock()
	if !running {
		return
	}
	ack := make(chan struct{})
	select {
	case l.tasks <- func() { close(ack) }:
	case <-done:
		return
	}
	select {
	case <-ack:
	case <-done:
	}
}

// Running reports whether the loop goroutine is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Done returns a channel closed when the current run ends. It is nil before
// the first Start.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Stop cancels the loop, waits for the goroutine to exit and stops the frame
// source. It is safe to call more than once.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel = nil
	l.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	l.src.Stop()
}
