// Package statusline provides the status bar and message bar drawn below
// the document area.
package statusline

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/milli/internal/renderer/backend"
	"github.com/dshills/milli/internal/renderer/core"
)

// MaxFilenameWidth is the number of columns the file name may occupy.
const MaxFilenameWidth = 20

// NoName is shown in place of a file name for documents without one.
const NoName = "[No Name]"

// Default status bar colors.
var (
	DefaultForeground = core.ColorFromRGB(63, 63, 63)
	DefaultBackground = core.ColorFromRGB(239, 239, 239)
)

// DefaultStyle returns the default status bar style.
func DefaultStyle() core.Style {
	return core.DefaultStyle().
		WithForeground(DefaultForeground).
		WithBackground(DefaultBackground)
}

// StatusLine renders the file and position summary.
type StatusLine struct {
	filename   string
	line       int // 1-indexed
	totalLines int
	style      core.Style
}

// New creates a new status line with the default style.
func New() *StatusLine {
	return &StatusLine{
		line:  1,
		style: DefaultStyle(),
	}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetLine updates the cursor line (1-indexed).
func (s *StatusLine) SetLine(line int) {
	s.line = line
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetStyle sets the colors the bar is drawn with.
func (s *StatusLine) SetStyle(style core.Style) {
	s.style = style
}

// Style returns the bar style.
func (s *StatusLine) Style() core.Style {
	return s.style
}

// Text returns the bar content laid out for exactly width columns.
// The name and line count sit on the left and the line indicator is
// right-aligned; when both do not fit the right side is cut first.
func (s *StatusLine) Text(width int) string {
	if width <= 0 {
		return ""
	}

	name := s.filename
	if name == "" {
		name = NoName
	} else {
		name = runewidth.Truncate(name, MaxFilenameWidth, "")
	}

	left := name + " - " + strconv.Itoa(s.totalLines) + " lines"
	right := strconv.Itoa(s.line) + "/" + strconv.Itoa(s.totalLines)

	var sb strings.Builder
	sb.WriteString(left)
	if gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right); gap > 0 {
		sb.WriteString(strings.Repeat(" ", gap))
	}
	sb.WriteString(right)

	return runewidth.FillRight(runewidth.Truncate(sb.String(), width, ""), width)
}

// Render draws the status bar on the given row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	width, _ := b.Size()
	backend.ClearLine(b, row, s.style)
	backend.DrawString(b, 0, row, s.Text(width), s.style)
}
