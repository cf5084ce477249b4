package app

import (
	"github.com/dshills/milli/internal/document"
	"github.com/dshills/milli/internal/renderer/backend"
	"github.com/dshills/milli/internal/renderer/viewport"
)

// navigate returns the cursor after applying key k. The second result is
// false when k is not a navigation key. Y stays within the document rows
// and X on a cluster boundary of the cursor's row, so the cursor never
// rests inside a wide character or an expanded tab.
func navigate(k backend.Key, cur viewport.Position, doc *document.Document, size viewport.Size) (viewport.Position, bool) {
	last := max(doc.Len()-1, 0)
	page := max(size.Height, 1)

	switch k {
	case backend.KeyUp:
		cur.Y = max(cur.Y-1, 0)
	case backend.KeyDown:
		cur.Y = min(cur.Y+1, last)
	case backend.KeyPageUp:
		cur.Y = max(cur.Y-page, 0)
	case backend.KeyPageDown:
		cur.Y = min(cur.Y+page, last)
	case backend.KeyLeft:
		cur.X = rowAt(doc, cur.Y).PrevColumn(cur.X)
	case backend.KeyRight:
		cur.X = rowAt(doc, cur.Y).NextColumn(cur.X)
	case backend.KeyHome:
		cur.X = 0
	case backend.KeyEnd:
		cur.X = rowAt(doc, cur.Y).Width()
	default:
		return cur, false
	}

	cur.X = rowAt(doc, cur.Y).ClusterStart(cur.X)
	return cur, true
}

// rowAt returns row y, or an empty row past the end.
func rowAt(doc *document.Document, y int) document.Row {
	row, ok := doc.Row(y)
	if !ok {
		return document.NewRow("", document.DefaultTabWidth)
	}
	return row
}
