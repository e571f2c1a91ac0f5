package garden

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind is the categorical tag of a cell. KindNone marks an empty slot.
type Kind uint8

const (
	KindNone Kind = iota
	KindMoss
	KindAmber
	KindSoil
	KindTerminal
	KindMatrix
	KindGlow

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:     "none",
	KindMoss:     "moss",
	KindAmber:    "amber",
	KindSoil:     "soil",
	KindTerminal: "terminal",
	KindMatrix:   "matrix",
	KindGlow:     "glow",
}

var palettes = [kindCount][]color.RGBA{
	KindMoss:     {hex(0x2d5a3d), hex(0x4a7c59), hex(0x6b9b7a)},
	KindAmber:    {hex(0xb8864a), hex(0xd4a574), hex(0xe8c9a0)},
	KindSoil:     {hex(0x3d3225), hex(0x5a4a3a), hex(0x8b7355)},
	KindTerminal: {hex(0x39ff14)},
	KindMatrix:   {hex(0x003b00), hex(0x008f11), hex(0x00ff41)},
	KindGlow:     {hex(0x39c5bb), hex(0x7df9ff), hex(0xb4fffa), hex(0xe0fffd)},
}

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Kinds lists every non-empty kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindMoss; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k names a populated kind.
func (k Kind) Valid() bool { return k > KindNone && k < kindCount }

// Accent reports whether the kind renders with the accent opacity.
func (k Kind) Accent() bool { return k == KindTerminal || k == KindGlow }

// Palette returns the shades available to the kind. Empty for KindNone.
func (k Kind) Palette() []color.RGBA {
	if k >= kindCount {
		return nil
	}
	return palettes[k]
}

// Shades returns len(k.Palette()).
func (k Kind) Shades() int { return len(k.Palette()) }

// Color returns the shade at variant, wrapping out-of-range indices.
func (k Kind) Color(variant int) color.RGBA {
	p := k.Palette()
	if len(p) == 0 {
		return color.RGBA{}
	}
	variant %= len(p)
	if variant < 0 {
		variant += len(p)
	}
	return p[variant]
}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind resolves a kind by name.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := KindMoss; k < kindCount; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown kind %q", s)
}

// ParseKinds resolves a comma separated list of kind names.
func ParseKinds(s string) ([]Kind, error) {
	var out []Kind
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseKind(part)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func formatKinds(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
