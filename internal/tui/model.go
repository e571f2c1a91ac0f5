// Package tui hosts the garden inside a bubbletea program.
package tui

import (
	"fmt"
	"strings"
	"time"

	"pixel-garden/internal/config"
	"pixel-garden/internal/core"
	"pixel-garden/internal/garden"
	"pixel-garden/internal/render"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	PixelsPerCol = 4
	PixelsPerRow = 8

	defaultWidth  = 80
	defaultHeight = 24
	plotHeight    = 6
	historyLimit  = 240
	statusRows    = 1
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	toastStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#39ff14"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

type tickMsg time.Time

// Model is the bubbletea model wrapping an animator.
type Model struct {
	anim  *garden.Animator
	chars *render.CharSurface
	toast *core.Toast

	seed          int64
	fps           int
	width, height int

	showPlot  bool
	lastSteps int
	history   []float64
}

// NewModel builds a model sized for an 80x24 terminal until the first
// WindowSizeMsg arrives.
func NewModel(t garden.Tuning, seed int64, fps int) Model {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	m := Model{
		toast:  core.NewToast(core.DefaultToastDuration),
		seed:   seed,
		fps:    fps,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.chars = render.NewCharSurface(m.gridCols(), m.gridRows(), PixelsPerCol, PixelsPerRow)
	m.anim = garden.NewAnimator(m.chars, t, seed)
	return m
}

// Animator exposes the animator driven by the model.
func (m Model) Animator() *garden.Animator { return m.anim }

func (m Model) gridCols() int { return m.width }

func (m Model) gridRows() int {
	rows := m.height - statusRows
	if m.showPlot {
		rows -= plotHeight + 1
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys, terminal resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.anim.SetPaused(!m.anim.Paused())
			if m.anim.Paused() {
				m.toast.Show("paused")
			} else {
				m.toast.Show("running")
			}
		case "n":
			m.anim.StepOnce()
		case "r":
			m.reseed(m.seed)
		case "s":
			m.reseed(time.Now().UnixNano())
		case "p":
			m.showPlot = !m.showPlot
			m.resize()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
	case tickMsg:
		m.anim.Frame()
		m.toast.Update(time.Second / time.Duration(m.fps))
		m.record()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) resize() {
	m.chars.Resize(m.gridCols(), m.gridRows())
	m.anim.Resize()
	m.history = m.history[:0]
	m.lastSteps = 0
}

func (m *Model) reseed(seed int64) {
	m.seed = seed
	m.anim.Reseed(seed)
	m.history = m.history[:0]
	m.lastSteps = 0
	m.toast.Show(fmt.Sprintf("seed %d", seed))
}

// record appends the population once per transition.
func (m *Model) record() {
	world := m.anim.World()
	if world == nil || world.Steps() == m.lastSteps {
		return
	}
	m.lastSteps = world.Steps()
	m.history = append(m.history, float64(world.Population()))
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(render.Lipgloss(m.chars))
	if m.showPlot && len(m.history) > 1 {
		b.WriteByte('\n')
		plot := asciigraph.Plot(m.history,
			asciigraph.Height(plotHeight-1),
			asciigraph.Width(max(m.width-10, 10)),
			asciigraph.Caption("population"))
		b.WriteString(graphStyle.Render(plot))
	}
	b.WriteByte('\n')
	b.WriteString(m.status())
	return b.String()
}

func (m Model) status() string {
	world := m.anim.World()
	if world == nil {
		return ""
	}
	s := nameStyle.Render(world.Name()) +
		statusStyle.Render(fmt.Sprintf("  seed %d  pop %d  steps %d", world.Seed(), world.Population(), world.Steps()))
	if m.anim.Paused() {
		s += statusStyle.Render("  [paused]")
	}
	if m.toast.Visible() {
		s += "  " + toastStyle.Render(m.toast.Text())
	}
	return s
}

// Run starts the bubbletea program on the alternate screen.
func Run(cfg *config.Config) error {
	t, err := cfg.Resolve()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p := tea.NewProgram(NewModel(t, seed, cfg.FrameRate()), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
