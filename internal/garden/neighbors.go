package garden

// Neighbors inspects the eight toroidally adjacent slots of (x, y) in the
// current buffer. A neighbour counts when occupied with vitality above the
// liveness threshold. dominant is the most frequent counting kind, ties
// going to the kind met first in scan order; it is the fallback kind when
// nothing counts. avg is the mean vitality of counting neighbours.
func (w *World) Neighbors(x, y int) (count int, dominant Kind, avg float64) {
	dominant = w.tuning.FallbackKind
	if w.cur.Empty() {
		return 0, dominant, 0
	}
	var (
		tally [kindCount]int
		order [Neighborhood]Kind
		seen  int
		sum   float64
	)
	cells := w.cur.Cells()
	threshold := w.tuning.LivenessThreshold
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + w.h) % w.h
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w.w) % w.w
			c := cells[ny*w.w+nx]
			if c.Empty() || c.Vitality <= threshold {
				continue
			}
			count++
			sum += c.Vitality
			if tally[c.Kind] == 0 {
				order[seen] = c.Kind
				seen++
			}
			tally[c.Kind]++
		}
	}
	if count == 0 {
		return 0, dominant, 0
	}
	best := 0
	for _, k := range order[:seen] {
		if tally[k] > best {
			best = tally[k]
			dominant = k
		}
	}
	return count, dominant, sum / float64(count)
}
