//go:build !ebiten

package ui

import (
	"pixel-garden/internal/core"
	"pixel-garden/internal/garden"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*garden.Animator, *core.Toast) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
