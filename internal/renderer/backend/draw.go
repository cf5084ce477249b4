package backend

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/milli/internal/renderer/core"
)

// DrawString writes s at (x, y) one grapheme cluster per cell and returns
// the column after the last cell written. Wide clusters occupy a second
// continuation cell. Zero-width clusters are dropped and drawing stops at
// the right edge of the backend.
func DrawString(b Backend, x, y int, s string, style core.Style) int {
	width, _ := b.Size()

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if w <= 0 {
			continue
		}
		if x+w > width {
			break
		}
		runes := g.Runes()
		b.SetCell(x, y, core.Cell{
			Rune:      runes[0],
			Combining: runes[1:],
			Width:     w,
			Style:     style,
		})
		for i := 1; i < w; i++ {
			b.SetCell(x+i, y, core.Cell{Style: style})
		}
		x += w
	}
	return x
}

// ClearLine fills row y with blanks in the given style.
func ClearLine(b Backend, y int, style core.Style) {
	width, _ := b.Size()
	b.Fill(core.Row(y, width), core.NewStyledCell(' ', style))
}
