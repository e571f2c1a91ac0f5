package garden

import (
	"pixel-garden/internal/core"
)

// World is the simulation state: a toroidal, double-buffered grid of cells
// evolved by the tuning's transition rule.
type World struct {
	tuning Tuning
	seed   int64

	w, h int
	cur  *core.Grid[Cell]
	nxt  *core.Grid[Cell]

	rng     *core.RNG
	steps   int
	scratch []int
}

var _ core.Sim = (*World)(nil)

// NewWorld returns a seeded world of w columns and h rows.
func NewWorld(w, h int, t Tuning, seed int64) *World {
	world := &World{
		tuning: t.Clone(),
		seed:   seed,
		cur:    core.NewGrid[Cell](w, h),
		nxt:    core.NewGrid[Cell](w, h),
		rng:    core.NewRNG(seed),
	}
	world.w, world.h = world.cur.W, world.cur.H
	world.populate()
	return world
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "garden/" + w.tuning.Name }

// Size reports the grid dimensions in cells.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Tuning returns a copy of the active tuning.
func (w *World) Tuning() Tuning { return w.tuning.Clone() }

// Seed returns the seed of the last Reset.
func (w *World) Seed() int64 { return w.seed }

// Steps reports how many transitions ran since the last reset.
func (w *World) Steps() int { return w.steps }

// Cells exposes the current buffer in row-major order. Callers must not
// retain it across Step, which swaps buffers.
func (w *World) Cells() []Cell { return w.cur.Cells() }

// At returns the cell at the wrapped coordinates.
func (w *World) At(x, y int) Cell {
	if w.cur.Empty() {
		return Cell{}
	}
	return w.cur.At(x, y)
}

// Set stores c at the wrapped coordinates. Vitality is clamped to [0,1] and
// the shade wrapped into the kind's palette; a cell whose vitality is at or
// below the removal threshold is stored as empty.
func (w *World) Set(x, y int, c Cell) {
	if w.cur.Empty() {
		return
	}
	w.cur.Set(x, y, w.normalize(c))
}

func (w *World) normalize(c Cell) Cell {
	if !c.Kind.Valid() {
		return Cell{}
	}
	c.Vitality = clamp01(c.Vitality)
	if c.Vitality <= w.tuning.RemovalThreshold || c.Vitality <= 0 {
		return Cell{}
	}
	c.Variant = uint8(int(c.Variant) % c.Kind.Shades())
	return c
}

// Clear empties the grid without reseeding.
func (w *World) Clear() {
	w.cur.Clear()
	w.nxt.Clear()
}

// Population counts occupied slots.
func (w *World) Population() int {
	n := 0
	for _, c := range w.cur.Cells() {
		if !c.Empty() {
			n++
		}
	}
	return n
}

// Census counts occupied slots per kind.
func (w *World) Census() map[Kind]int {
	out := map[Kind]int{}
	for _, c := range w.cur.Cells() {
		if !c.Empty() {
			out[c.Kind]++
		}
	}
	return out
}

// Reset reseeds the grid. A zero seed keeps the current one.
func (w *World) Reset(seed int64) {
	if seed != 0 {
		w.seed = seed
	}
	w.rng = core.NewRNG(w.seed)
	w.cur.Clear()
	w.nxt.Clear()
	w.populate()
}

// Resize rebuilds both buffers at the new dimensions and reseeds. Prior
// cells are discarded, not rescaled.
func (w *World) Resize(cols, rows int) {
	w.cur.Reset(cols, rows)
	w.nxt.Reset(cols, rows)
	w.w, w.h = w.cur.W, w.cur.H
	w.populate()
}

func (w *World) populate() {
	w.steps = 0
	if w.cur.Empty() {
		return
	}
	switch w.tuning.Seeding {
	case SeedDensity:
		w.seedDensity()
	default:
		w.seedClusters()
	}
	w.scatterAccents()
}

func (w *World) newCell(kind Kind, vitality float64) Cell {
	return w.normalize(Cell{
		Kind:     kind,
		Variant:  uint8(w.rng.IntN(kind.Shades())),
		Vitality: vitality,
		Phase:    w.rng.Phase(),
	})
}

func (w *World) pick(kinds []Kind) Kind {
	if len(kinds) == 0 {
		return w.tuning.FallbackKind
	}
	return kinds[w.rng.IntN(len(kinds))]
}
