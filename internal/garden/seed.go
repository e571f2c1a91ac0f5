package garden

// ClusterCount returns the number of cluster centres seeded on the grid.
func (w *World) ClusterCount() int {
	if w.tuning.ClusterDivisor <= 0 {
		return 0
	}
	return (w.w * w.h) / w.tuning.ClusterDivisor
}

func (w *World) seedClusters() {
	for i, n := 0, w.ClusterCount(); i < n; i++ {
		cx := w.rng.IntN(w.w)
		cy := w.rng.IntN(w.h)
		w.Stamp(Patterns[w.rng.IntN(len(Patterns))], cx, cy, w.pick(w.tuning.ClusterKinds))
	}
}

func (w *World) seedDensity() {
	t := &w.tuning
	if t.Density <= 0 {
		return
	}
	cells := w.cur.Cells()
	for i := range cells {
		if !w.rng.Chance(t.Density) {
			continue
		}
		v := w.rng.Range(t.DensityVitalityMin, t.DensityVitalityMax)
		cells[i] = w.newCell(w.pick(t.DensityKinds), v)
	}
}

func (w *World) scatterAccents() {
	t := &w.tuning
	if !t.AccentKind.Valid() {
		return
	}
	cells := w.cur.Cells()
	for i := 0; i < t.AccentCount; i++ {
		x := w.rng.IntN(w.w)
		y := w.rng.IntN(w.h)
		cells[w.cur.Index(x, y)] = w.newCell(t.AccentKind, t.AccentVitality)
	}
}
