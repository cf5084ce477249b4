package viewport

import (
	"testing"
)

func TestForTerminal(t *testing.T) {
	tests := []struct {
		w, h int
		want Size
	}{
		{80, 24, Size{80, 22}},
		{10, 5, Size{10, 3}},
		{10, 2, Size{10, 0}},
		{10, 1, Size{10, 0}},
		{0, 0, Size{0, 0}},
		{-1, -1, Size{0, 0}},
	}

	for _, tt := range tests {
		if got := ForTerminal(tt.w, tt.h); got != tt.want {
			t.Errorf("ForTerminal(%d, %d) = %+v, expected %+v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestSizeIsEmpty(t *testing.T) {
	if (Size{80, 22}).IsEmpty() {
		t.Error("80x22 should not be empty")
	}
	if !(Size{80, 0}).IsEmpty() || !(Size{0, 5}).IsEmpty() {
		t.Error("zero dimension should be empty")
	}
}

func TestIsVisible(t *testing.T) {
	size := Size{10, 5}
	off := Position{X: 3, Y: 2}

	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{3, 2}, true},
		{Position{12, 6}, true},
		{Position{13, 6}, false},
		{Position{12, 7}, false},
		{Position{2, 2}, false},
		{Position{3, 1}, false},
	}

	for _, tt := range tests {
		if got := IsVisible(tt.pos, size, off); got != tt.want {
			t.Errorf("IsVisible(%+v) = %v, expected %v", tt.pos, got, tt.want)
		}
	}
}

func TestToScreen(t *testing.T) {
	x, y := ToScreen(Position{X: 7, Y: 12}, Position{X: 2, Y: 10})
	if x != 5 || y != 2 {
		t.Errorf("expected (5, 2), got (%d, %d)", x, y)
	}
}
