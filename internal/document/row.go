package document

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop interval used when none is configured.
const DefaultTabWidth = 4

// Row is a single line of document text without its terminator.
type Row struct {
	text     string
	tabWidth int
}

// NewRow creates a row. Tab widths below 1 fall back to DefaultTabWidth.
func NewRow(text string, tabWidth int) Row {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return Row{text: text, tabWidth: tabWidth}
}

// String returns the row's raw content.
func (r Row) String() string {
	return r.text
}

// Len returns the length of the raw content in bytes.
func (r Row) Len() int {
	return len(r.text)
}

// Width returns the display width of the row with tabs expanded.
func (r Row) Width() int {
	width := 0
	r.walk(func(_ string, w int) bool {
		width += w
		return true
	})
	return width
}

// Render returns the part of the row visible between display columns
// start (inclusive) and end (exclusive). Tabs are expanded to spaces and
// control characters shown as '?'. A wide character cut by either edge
// contributes spaces for its visible half so columns stay aligned.
// Out-of-range windows yield "".
func (r Row) Render(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	var sb strings.Builder
	col := 0
	r.walk(func(cluster string, w int) bool {
		next := col + w
		switch {
		case next < start, next == start && w > 0:
			// Entirely left of the window.
		case col >= end:
			return false
		case col < start || next > end:
			sb.WriteString(strings.Repeat(" ", min(next, end)-max(col, start)))
		default:
			sb.WriteString(cluster)
		}
		col = next
		return col < end
	})
	return sb.String()
}

// NextColumn returns the first cluster boundary right of col, or Width()
// when col is at or past the end of the row.
func (r Row) NextColumn(col int) int {
	c := 0
	r.walk(func(_ string, w int) bool {
		c += w
		return c <= col
	})
	return c
}

// PrevColumn returns the last cluster boundary left of col, or 0.
func (r Row) PrevColumn(col int) int {
	c := 0
	r.walk(func(_ string, w int) bool {
		if c+w >= col {
			return false
		}
		c += w
		return true
	})
	return c
}

// ClusterStart returns the start column of the cluster covering col.
// Columns past the end map to Width().
func (r Row) ClusterStart(col int) int {
	c := 0
	r.walk(func(_ string, w int) bool {
		if c+w > col {
			return false
		}
		c += w
		return true
	})
	return c
}

// walk calls fn for each display cluster of the row with its expanded
// text and width, stopping early when fn returns false.
func (r Row) walk(fn func(cluster string, width int) bool) {
	col := 0
	g := uniseg.NewGraphemes(r.text)
	for g.Next() {
		cluster := g.Str()
		var w int
		switch {
		case cluster == "\t":
			w = r.tabWidth - col%r.tabWidth
			cluster = strings.Repeat(" ", w)
		case isControl(cluster):
			cluster, w = "?", 1
		default:
			w = g.Width()
		}
		if !fn(cluster, w) {
			return
		}
		col += w
	}
}

func isControl(cluster string) bool {
	for _, r := range cluster {
		return unicode.IsControl(r)
	}
	return false
}
