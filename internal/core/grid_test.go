package core

import "testing"

func TestGridWrap(t *testing.T) {
	g := NewGrid[uint8](5, 3)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, 0, 4, 0},
		{5, 0, 0, 0},
		{0, -1, 0, 2},
		{0, 3, 0, 0},
		{-6, -4, 4, 2},
		{2, 1, 2, 1},
	}
	for _, tc := range cases {
		x, y := g.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestGridSetAtAndReset(t *testing.T) {
	g := NewGrid[int](4, 4)
	g.Set(-1, -1, 7)
	if got := g.At(3, 3); got != 7 {
		t.Fatalf("At(3,3) = %d, want 7", got)
	}

	backing := &g.Cells()[0]
	g.Reset(2, 2)
	if g.W != 2 || g.H != 2 || len(g.Cells()) != 4 {
		t.Fatalf("unexpected shape after shrink: %dx%d len %d", g.W, g.H, len(g.Cells()))
	}
	if &g.Cells()[0] != backing {
		t.Fatal("Reset should reuse the backing array when shrinking")
	}
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Reset, want 0", i, v)
		}
	}

	g.Reset(-3, 2)
	if !g.Empty() {
		t.Fatal("negative width should produce an empty grid")
	}
}
