package garden

import (
	"image/color"
	"testing"
)

func TestKindNamesRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(" " + k.String() + " ")
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("none"); err == nil {
		t.Fatal("none is not a populated kind")
	}
	if Kind(42).String() != "kind(42)" {
		t.Fatalf("out of range kind = %q", Kind(42).String())
	}
}

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds("moss, Amber,,glow")
	if err != nil {
		t.Fatal(err)
	}
	if len(kinds) != 3 || kinds[1] != KindAmber || kinds[2] != KindGlow {
		t.Fatalf("ParseKinds = %v", kinds)
	}
	if _, err := ParseKinds("moss,fern"); err == nil {
		t.Fatal("unknown kind should fail")
	}
}

func TestKindColorWraps(t *testing.T) {
	moss := KindMoss.Palette()
	if KindMoss.Color(3) != moss[0] || KindMoss.Color(-1) != moss[2] {
		t.Fatal("variant should wrap around the palette")
	}
	if KindTerminal.Color(5) != (color.RGBA{R: 0x39, G: 0xff, B: 0x14, A: 0xff}) {
		t.Fatal("terminal has a single shade")
	}
	if KindNone.Shades() != 0 {
		t.Fatal("empty kind has no palette")
	}
	if !KindGlow.Accent() || KindMoss.Accent() {
		t.Fatal("accent kinds are terminal and glow")
	}
}

func TestCellColorFollowsVariant(t *testing.T) {
	c := Cell{Kind: KindGlow, Variant: 2, Vitality: 1}
	if c.Color() != KindGlow.Palette()[2] {
		t.Fatalf("cell colour = %v", c.Color())
	}
	if !(Cell{}).Empty() || (Cell{Kind: KindMoss}).Empty() {
		t.Fatal("only the zero kind marks an empty slot")
	}
}
