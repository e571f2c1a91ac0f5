package main

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pixel-garden/internal/config"
	"pixel-garden/internal/garden"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSnapshotText(t *testing.T) {
	out, err := execute(t, "snapshot", "--tuning", "classic", "--seed", "3", "--width", "64", "--height", "32", "--steps", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "garden/classic seed 3 steps 2") {
		t.Fatalf("summary line missing:\n%s", out)
	}
	// 32px at 8px per row gives four text rows plus the summary.
	if lines := strings.Split(strings.TrimRight(out, "\n"), "\n"); len(lines) != 5 {
		t.Fatalf("snapshot has %d lines, want 5", len(lines))
	}
}

func TestSnapshotPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.png")
	if _, err := execute(t, "snapshot", "--seed", "2", "--width", "40", "--height", "24", "--png", path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 24 {
		t.Fatalf("png bounds %v", b)
	}
}

func TestTuningsListAndShow(t *testing.T) {
	out, err := execute(t, "tunings")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range garden.PresetNames() {
		if !strings.Contains(out, name) {
			t.Fatalf("listing misses %s:\n%s", name, out)
		}
	}

	out, err = execute(t, "tunings", "show", "glow", "--set", "jitter=0.5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "name: glow") || !strings.Contains(out, "jitter: 0.5") {
		t.Fatalf("show output:\n%s", out)
	}
}

func TestTuningsSaveRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meadow.yaml")
	if _, err := execute(t, "tunings", "save", "meadow", path, "--set", "cell_size=9"); err != nil {
		t.Fatal(err)
	}
	tune, err := garden.LoadTuning(path)
	if err != nil {
		t.Fatal(err)
	}
	if tune.Name != "meadow" || tune.CellSize != 9 {
		t.Fatalf("saved tuning %s cell %d", tune.Name, tune.CellSize)
	}
}

func TestStats(t *testing.T) {
	out, err := execute(t, "stats", "--seed", "1", "--steps", "20", "--cols", "20", "--rows", "10")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"population", "peak", "extinct steps"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats output misses %q:\n%s", want, out)
		}
	}
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "--seeds", "2", "--steps", "10", "--cols", "12", "--rows", "8",
		"--workers", "2", "--vary", "birth_chance=0.5,1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Sweeping 4 scenarios") || !strings.Contains(out, "birth_chance=0.5") {
		t.Fatalf("sweep output:\n%s", out)
	}
}

func TestConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.yaml")
	if _, err := execute(t, "config", "init", path, "--tuning", "meadow", "--seed", "5", "--set", "jitter=0.01"); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tuning != "meadow" || cfg.Seed != 5 || cfg.Overrides["jitter"] != "0.01" {
		t.Fatalf("written config %+v", cfg)
	}

	out, err := execute(t, "snapshot", "--config", path, "--width", "16", "--height", "8")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "garden/meadow seed 5") {
		t.Fatalf("config not applied:\n%s", out)
	}
	out, err = execute(t, "snapshot", "--config", path, "--seed", "8", "--width", "16", "--height", "8")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "seed 8") {
		t.Fatalf("--seed should win over the file:\n%s", out)
	}
}

func TestUnknownTuning(t *testing.T) {
	_, err := execute(t, "stats", "--tuning", "desert", "--steps", "1")
	if !errors.Is(err, garden.ErrUnknownTuning) {
		t.Fatalf("err = %v", err)
	}
	if _, err := execute(t, "stats", "--set", "cell_size"); err == nil {
		t.Fatal("malformed --set should fail")
	}
}
