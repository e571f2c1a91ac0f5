package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block is the glyph used for lit characters.
const Block = "█"

// Lipgloss renders the character surface as styled text, one line per row.
// Runs of identically coloured characters share one style.
func Lipgloss(cs *CharSurface) string {
	styles := map[color.RGBA]lipgloss.Style{}
	styleFor := func(c color.RGBA) lipgloss.Style {
		s, ok := styles[c]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(c)))
			styles[c] = s
		}
		return s
	}

	var b strings.Builder
	for row := 0; row < cs.Rows(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		col := 0
		for col < cs.Cols() {
			c, lit := cs.At(col, row)
			run := 1
			for col+run < cs.Cols() {
				nc, nlit := cs.At(col+run, row)
				if nlit != lit || (lit && nc != c) {
					break
				}
				run++
			}
			if lit {
				b.WriteString(styleFor(c).Render(strings.Repeat(Block, run)))
			} else {
				b.WriteString(strings.Repeat(" ", run))
			}
			col += run
		}
	}
	return b.String()
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
