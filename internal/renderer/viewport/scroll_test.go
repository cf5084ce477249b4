package viewport

import (
	"testing"
)

func TestRescroll(t *testing.T) {
	size := Size{Width: 10, Height: 5}

	tests := []struct {
		name   string
		cursor Position
		offset Position
		want   Position
	}{
		{"origin", Position{0, 0}, Position{0, 0}, Position{0, 0}},
		{"visible stays", Position{4, 3}, Position{0, 0}, Position{0, 0}},
		{"past bottom", Position{0, 5}, Position{0, 0}, Position{0, 1}},
		{"far past bottom", Position{0, 40}, Position{0, 0}, Position{0, 36}},
		{"above top", Position{0, 2}, Position{0, 7}, Position{0, 2}},
		{"past right", Position{10, 0}, Position{0, 0}, Position{1, 0}},
		{"left of view", Position{3, 0}, Position{8, 0}, Position{3, 0}},
		{"both axes", Position{25, 30}, Position{0, 0}, Position{16, 26}},
		{"last visible row", Position{9, 4}, Position{0, 0}, Position{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rescroll(tt.cursor, size, tt.offset); got != tt.want {
				t.Errorf("Rescroll(%+v, %+v) = %+v, expected %+v", tt.cursor, tt.offset, got, tt.want)
			}
		})
	}
}

func TestRescroll_Invariant(t *testing.T) {
	for w := 1; w <= 4; w++ {
		for h := 1; h <= 4; h++ {
			size := Size{Width: w, Height: h}
			for cx := 0; cx < 8; cx++ {
				for cy := 0; cy < 8; cy++ {
					for ox := 0; ox < 8; ox++ {
						for oy := 0; oy < 8; oy++ {
							cur := Position{cx, cy}
							off := Rescroll(cur, size, Position{ox, oy})
							if !IsVisible(cur, size, off) {
								t.Fatalf("cursor %+v not visible in %+v at %+v", cur, size, off)
							}
						}
					}
				}
			}
		}
	}
}

func TestRescroll_NoMoveWhenVisible(t *testing.T) {
	size := Size{Width: 6, Height: 4}
	for ox := 0; ox < 5; ox++ {
		for oy := 0; oy < 5; oy++ {
			off := Position{ox, oy}
			for cx := ox; cx < ox+size.Width; cx++ {
				for cy := oy; cy < oy+size.Height; cy++ {
					if got := Rescroll(Position{cx, cy}, size, off); got != off {
						t.Fatalf("offset moved from %+v to %+v for visible cursor (%d, %d)", off, got, cx, cy)
					}
				}
			}
		}
	}
}

func TestRescroll_ZeroSize(t *testing.T) {
	cur := Position{X: 4, Y: 9}
	got := Rescroll(cur, Size{}, Position{X: 1, Y: 1})
	if got != cur {
		t.Errorf("expected offset pinned to cursor %+v, got %+v", cur, got)
	}

	got = Rescroll(cur, Size{Width: 10}, Position{})
	if got.X != 0 || got.Y != 9 {
		t.Errorf("expected only the empty axis pinned, got %+v", got)
	}
}
