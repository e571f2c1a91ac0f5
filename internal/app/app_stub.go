//go:build !ebiten

package app

import (
	"errors"

	"pixel-garden/internal/config"
)

// ErrNoWindow reports a binary built without the window host.
var ErrNoWindow = errors.New("window host requires building with the 'ebiten' tag")

// Run always fails in the headless build.
func Run(*config.Config) error { return ErrNoWindow }
