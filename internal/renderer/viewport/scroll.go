package viewport

// Rescroll returns the offset that keeps cursor inside an area of the
// given size, moving as little as possible from offset. An axis whose
// size is zero pins that axis of the offset to the cursor.
func Rescroll(cursor Position, size Size, offset Position) Position {
	return Position{
		X: scrollAxis(cursor.X, size.Width, offset.X),
		Y: scrollAxis(cursor.Y, size.Height, offset.Y),
	}
}

func scrollAxis(cur, extent, off int) int {
	switch {
	case extent <= 0:
		return cur
	case cur < off:
		return cur
	case cur >= off+extent:
		return cur - extent + 1
	default:
		return off
	}
}
