// Package term hosts the garden in a terminal through tcell. Every character
// covers PixelsPerCol x PixelsPerRow surface pixels, so the default 8px cell
// is two characters wide and one tall.
package term

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"pixel-garden/internal/config"
	"pixel-garden/internal/core"
	"pixel-garden/internal/garden"
	"pixel-garden/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	PixelsPerCol = 4
	PixelsPerRow = 8
)

var (
	// ErrInert reports a host whose animator has no surface.
	ErrInert = errors.New("terminal host has nothing to draw on")
	// ErrRunning reports a second Run on a host whose loop is live.
	ErrRunning = errors.New("terminal host is already running")
)

// Display is the part of tcell.Screen the host uses.
type Display interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	Sync()
	PollEvent() tcell.Event
}

// Host drives an animator onto a terminal. The bottom row is a status line.
type Host struct {
	screen Display
	chars  *render.CharSurface
	anim   *garden.Animator
	toast  *core.Toast

	seed  int64
	frame time.Duration
}

// New sizes a character surface from the screen and builds the animator.
func New(screen Display, t garden.Tuning, seed int64, fps int) *Host {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	cols, rows := screen.Size()
	h := &Host{
		screen: screen,
		chars:  render.NewCharSurface(cols, rows-1, PixelsPerCol, PixelsPerRow),
		toast:  core.NewToast(core.DefaultToastDuration),
		seed:   seed,
		frame:  time.Second / time.Duration(fps),
	}
	h.anim = garden.NewAnimator(h.chars, t, seed)
	h.anim.OnFrame(h.draw)
	return h
}

// Animator exposes the animator driven by the host.
func (h *Host) Animator() *garden.Animator { return h.anim }

type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionStep
	actionReseed
	actionNewSeed
)

func actionFor(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
	default:
		return actionNone
	}
	switch r {
	case 'q':
		return actionQuit
	case ' ':
		return actionPause
	case 'n':
		return actionStep
	case 'r':
		return actionReseed
	case 's':
		return actionNewSeed
	}
	return actionNone
}

// apply runs an action on the frame loop. It reports false on quit.
func (h *Host) apply(a action) bool {
	switch a {
	case actionQuit:
		return false
	case actionPause:
		h.anim.Post(func() {
			h.anim.SetPaused(!h.anim.Paused())
			if h.anim.Paused() {
				h.toast.Show("paused")
			} else {
				h.toast.Show("running")
			}
		})
	case actionStep:
		h.anim.Post(h.anim.StepOnce)
	case actionReseed:
		h.anim.Post(func() { h.reseed(h.seed) })
	case actionNewSeed:
		h.anim.Post(func() { h.reseed(time.Now().UnixNano()) })
	}
	return true
}

func (h *Host) reseed(seed int64) {
	h.seed = seed
	h.anim.Reseed(seed)
	h.toast.Show(fmt.Sprintf("seed %d", seed))
}

// handle processes one terminal event. It reports false on quit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.apply(actionFor(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		h.screen.Sync()
		h.anim.Post(h.resizeSurface)
		h.anim.NotifyResize()
	}
	return true
}

func (h *Host) resizeSurface() {
	cols, rows := h.screen.Size()
	h.chars.Resize(cols, rows-1)
}

// Run starts the frame loop and processes events until quit or ctx ends.
func (h *Host) Run(ctx context.Context, fps int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if !h.anim.Active() {
		return ErrInert
	}
	if !h.anim.Start(ctx, core.NewTickerSource(fps)) {
		return ErrRunning
	}
	defer h.anim.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !h.handle(ev) {
				return nil
			}
		}
	}
}

func (h *Host) draw() {
	h.toast.Update(h.frame)
	bg := h.chars.Background()
	background := tcell.StyleDefault.Background(rgb(bg))
	for row := 0; row < h.chars.Rows(); row++ {
		for col := 0; col < h.chars.Cols(); col++ {
			c, lit := h.chars.At(col, row)
			if !lit {
				h.screen.SetContent(col, row, ' ', nil, background)
				continue
			}
			h.screen.SetContent(col, row, '█', nil, background.Foreground(rgb(c)))
		}
	}
	h.drawStatus()
	h.screen.Show()
}

func (h *Host) drawStatus() {
	cols, rows := h.screen.Size()
	if rows <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	line := []rune(h.status())
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(line) {
			r = line[col]
		}
		h.screen.SetContent(col, rows-1, r, nil, style)
	}
}

func (h *Host) status() string {
	world := h.anim.World()
	if world == nil {
		return ""
	}
	s := fmt.Sprintf(" %s  seed %d  pop %d  steps %d", world.Name(), world.Seed(), world.Population(), world.Steps())
	if h.anim.Paused() {
		s += "  [paused]"
	}
	if h.toast.Visible() {
		s += "  " + h.toast.Text()
	}
	return s
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run opens the terminal, hosts the garden until quit and restores the
// terminal.
func Run(ctx context.Context, cfg *config.Config) error {
	t, err := cfg.Resolve()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("garden: terminal %s seed %d", t.Name, seed)
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	h := New(screen, t, seed, cfg.FrameRate())
	return h.Run(ctx, cfg.FrameRate())
}
