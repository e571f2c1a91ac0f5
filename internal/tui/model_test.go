package tui

import (
	"strings"
	"testing"
	"time"

	"pixel-garden/internal/core"
	"pixel-garden/internal/garden"

	tea "github.com/charmbracelet/bubbletea"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestWindowSizeRebuildsGrid(t *testing.T) {
	m := NewModel(garden.Classic(), 1, 30)
	// 80 cols * 4px / 8 = 40, 23 rows * 8px / 8 = 23.
	if got := m.Animator().World().Size(); got != (core.Size{W: 40, H: 23}) {
		t.Fatalf("initial grid = %+v", got)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 41, Height: 12})
	if got := m.Animator().World().Size(); got != (core.Size{W: 21, H: 11}) {
		t.Fatalf("grid after resize = %+v, want 21x11", got)
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Fatalf("view has %d lines, want 12", len(lines))
	}
}

func TestTickAdvancesFrames(t *testing.T) {
	m := NewModel(garden.Classic(), 1, 30)
	var cmd tea.Cmd
	for i := 0; i < 16; i++ {
		m, cmd = update(t, m, tickMsg(time.Now()))
		if cmd == nil {
			t.Fatal("tick should schedule the next frame")
		}
	}
	if m.Animator().Frames() != 16 || m.Animator().World().Steps() != 2 {
		t.Fatalf("frames %d steps %d, want 16 and 2", m.Animator().Frames(), m.Animator().World().Steps())
	}
	if len(m.history) != 2 {
		t.Fatalf("recorded %d population samples, want 2", len(m.history))
	}
}

func TestKeys(t *testing.T) {
	m := NewModel(garden.Glow(), 4, 30)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.Animator().Paused() {
		t.Fatal("space should pause")
	}
	if !strings.Contains(m.View(), "paused") {
		t.Fatal("status should show the pause")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if m.Animator().World().Steps() != 1 {
		t.Fatal("n should single-step while paused")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.Animator().World().Steps() != 0 {
		t.Fatal("r should reseed")
	}
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestPlotTogglesAndShrinksGrid(t *testing.T) {
	m := NewModel(garden.Classic(), 1, 30)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if got := m.chars.Rows(); got != 20-1-plotHeight-1 {
		t.Fatalf("grid rows with plot = %d", got)
	}
	for i := 0; i < 24; i++ {
		m, _ = update(t, m, tickMsg(time.Now()))
	}
	if !strings.Contains(m.View(), "population") {
		t.Fatal("plot caption missing")
	}
}
