package garden

// Pattern is a fixed set of cell offsets relative to an anchor.
type Pattern [][2]int

// Patterns is the shape library used by cluster seeding and pattern spawns.
var Patterns = []Pattern{
	// glider
	{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}},
	// small exploder fragment
	{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 1}},
	// block pair
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {3, 0}, {3, 1}},
	// line
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	// corner
	{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}},
	// scatter
	{{0, 0}, {2, 1}, {1, 2}, {3, 0}, {2, 3}},
}

// Stamp places p anchored at (cx, cy), clipping offsets that fall outside the
// grid. Every stamped cell shares one kind and one shade. It returns the
// number of cells written.
func (w *World) Stamp(p Pattern, cx, cy int, kind Kind) int {
	if !kind.Valid() {
		return 0
	}
	variant := uint8(w.rng.IntN(kind.Shades()))
	written := 0
	for _, off := range p {
		x, y := cx+off[0], cy+off[1]
		if !w.cur.In(x, y) {
			continue
		}
		w.cur.Cells()[w.cur.Index(x, y)] = Cell{
			Kind:     kind,
			Variant:  variant,
			Vitality: 1,
			Phase:    w.rng.Phase(),
		}
		written++
	}
	return written
}

func (w *World) stampRandom(kind Kind) {
	p := Patterns[w.rng.IntN(len(Patterns))]
	w.Stamp(p, w.rng.IntN(w.w), w.rng.IntN(w.h), kind)
}
