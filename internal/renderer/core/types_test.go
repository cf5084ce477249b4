package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if ColorDefault.String() != "default" {
		t.Errorf("expected 'default', got %q", ColorDefault.String())
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"#efefef", ColorFromRGB(239, 239, 239), false},
		{"#3f3f3f", ColorFromRGB(63, 63, 63), false},
		{"#fff", ColorFromRGB(255, 255, 255), false},
		{"#FF0000", ColorFromRGB(255, 0, 0), false},
		{"efefef", Color{}, true},
		{"#12", Color{}, true},
		{"not a color", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ColorFromHex(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("ColorFromHex(%q) = %s, expected %s", tt.input, got, tt.want)
		}
	}
}

func TestColorEquals(t *testing.T) {
	a := ColorFromRGB(1, 2, 3)
	if !a.Equals(ColorFromRGB(1, 2, 3)) {
		t.Error("identical colors should be equal")
	}
	if a.Equals(ColorFromRGB(1, 2, 4)) {
		t.Error("different colors should not be equal")
	}
	if a.Equals(ColorDefault) || ColorDefault.Equals(a) {
		t.Error("default should not equal a true color")
	}
	if !ColorDefault.Equals(Color{Default: true, R: 9}) {
		t.Error("default colors ignore components")
	}
}

func TestStyleBuilders(t *testing.T) {
	fg := ColorFromRGB(63, 63, 63)
	bg := ColorFromRGB(239, 239, 239)
	s := DefaultStyle().WithForeground(fg).WithBackground(bg)

	if !s.Foreground.Equals(fg) || !s.Background.Equals(bg) {
		t.Errorf("unexpected style colors: %+v", s)
	}
	if s.IsDefault() {
		t.Error("styled value should not be default")
	}
	if !DefaultStyle().IsDefault() {
		t.Error("DefaultStyle should be default")
	}
	if !DefaultStyle().Reverse().Attributes.Has(AttrReverse) {
		t.Error("Reverse should set AttrReverse")
	}
}

func TestCellEquals(t *testing.T) {
	a := NewCell('e')
	b := NewCell('e')
	if !a.Equals(b) {
		t.Error("identical cells should be equal")
	}

	b.Combining = []rune{'́'}
	if a.Equals(b) {
		t.Error("combining runes should affect equality")
	}
	a.Combining = []rune{'́'}
	if !a.Equals(b) {
		t.Error("cells with same combining runes should be equal")
	}
}

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()
	if !c.IsEmpty() || c.Width != 1 || !c.Style.IsDefault() {
		t.Errorf("unexpected empty cell: %+v", c)
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{' ', 1},
		{'\t', 0},
		{0x7F, 0},
		{'中', 2},
		{'한', 2},
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, expected %d", tt.r, got, tt.want)
		}
	}
}

func TestScreenRect(t *testing.T) {
	r := Row(3, 10)
	if r.Width() != 10 || r.Height() != 1 || r.Top != 3 {
		t.Errorf("unexpected row rect: %+v", r)
	}
	if NewScreenRect(0, 0, 0, 5).IsEmpty() != true {
		t.Error("zero-height rect should be empty")
	}
}
