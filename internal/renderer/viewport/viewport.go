// Package viewport maps document coordinates onto the visible screen area.
package viewport

// StatusRows is the number of terminal rows reserved below the document
// area for the status bar and the message bar.
const StatusRows = 2

// Position is a zero-based location in document space. X is a display
// column and Y is a row index. It is used for both the cursor and the
// scroll offset.
type Position struct {
	X, Y int
}

// Size is the extent of the document area in screen cells.
type Size struct {
	Width, Height int
}

// ForTerminal returns the document area for a terminal of the given size.
// The bottom StatusRows rows are reserved; dimensions never go negative.
func ForTerminal(width, height int) Size {
	return Size{
		Width:  max(width, 0),
		Height: max(height-StatusRows, 0),
	}
}

// IsEmpty reports whether the area has no cells.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// IsVisible reports whether pos falls inside the area scrolled to offset.
func IsVisible(pos Position, size Size, offset Position) bool {
	return pos.X >= offset.X && pos.X < offset.X+size.Width &&
		pos.Y >= offset.Y && pos.Y < offset.Y+size.Height
}

// ToScreen converts a document position to screen cell coordinates for
// the given offset.
func ToScreen(pos, offset Position) (x, y int) {
	return pos.X - offset.X, pos.Y - offset.Y
}
