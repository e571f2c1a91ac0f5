package garden

import "image/color"

// Cell is the value stored in every grid slot. The zero Cell is empty.
type Cell struct {
	Kind     Kind
	Variant  uint8
	Vitality float64
	// Age counts steps spent in a growing neighbourhood. Cosmetic only.
	Age uint32
	// Phase offsets the per-cell brightness pulse, in [0, 2π).
	Phase float64
}

// Empty reports whether the slot holds no cell.
func (c Cell) Empty() bool { return c.Kind == KindNone }

// Color returns the cell's fill colour.
func (c Cell) Color() color.RGBA { return c.Kind.Color(int(c.Variant)) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
