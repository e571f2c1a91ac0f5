package garden

// Step advances the world by one transition: every slot of the next buffer
// is computed from the current buffer, the buffers are swapped, and new life
// is injected according to the spawn mode.
func (w *World) Step() {
	w.steps++
	if w.cur.Empty() {
		return
	}
	t := &w.tuning
	cur := w.cur.Cells()
	nxt := w.nxt.Cells()
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			c := cur[idx]
			count, dominant, avg := w.Neighbors(x, y)
			if !c.Empty() && c.Vitality > t.AliveFloor {
				nxt[idx] = w.evolve(c, count)
				continue
			}
			nxt[idx] = w.birth(count, dominant, avg)
		}
	}
	w.cur, w.nxt = w.nxt, w.cur
	w.spawn()
}

func (w *World) evolve(c Cell, count int) Cell {
	t := &w.tuning
	v := clamp01(c.Vitality + t.Delta(count) + w.rng.Jitter(t.Jitter))
	if v <= t.RemovalThreshold || v <= 0 {
		return Cell{}
	}
	c.Vitality = v
	if t.Delta(count) > 0 {
		c.Age++
	}
	return c
}

func (w *World) birth(count int, dominant Kind, avg float64) Cell {
	t := &w.tuning
	if count == 0 || count < t.BirthMin || count > t.BirthMax {
		return Cell{}
	}
	if avg < t.BirthMinAvgVitality {
		return Cell{}
	}
	if !w.rng.Chance(t.BirthChance) {
		return Cell{}
	}
	kind := dominant
	if w.rng.Chance(t.MutationChance) {
		kind = w.pick(t.SpawnKinds)
	}
	return w.newCell(kind, t.BirthVitality)
}

func (w *World) spawn() {
	t := &w.tuning
	switch t.Spawn {
	case SpawnPattern:
		if w.rng.Chance(t.SpawnPatternChance) {
			w.stampRandom(w.pick(t.SpawnKinds))
		}
	case SpawnScatter:
		w.Scatter(w.rng.Between(t.SpawnMin, t.SpawnMax))
	}
}

// Scatter populates up to n distinct empty slots chosen uniformly at random
// and returns how many were filled.
func (w *World) Scatter(n int) int {
	if n <= 0 {
		return 0
	}
	t := &w.tuning
	cells := w.cur.Cells()
	empties := w.scratch[:0]
	for i, c := range cells {
		if c.Empty() {
			empties = append(empties, i)
		}
	}
	w.scratch = empties
	if n > len(empties) {
		n = len(empties)
	}
	for i := 0; i < n; i++ {
		j := i + w.rng.IntN(len(empties)-i)
		empties[i], empties[j] = empties[j], empties[i]
		v := w.rng.Range(t.SpawnVitalityMin, t.SpawnVitalityMax)
		cells[empties[i]] = w.newCell(w.pick(t.SpawnKinds), v)
	}
	return n
}
