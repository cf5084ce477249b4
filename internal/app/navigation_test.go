package app

import (
	"testing"

	"github.com/dshills/milli/internal/document"
	"github.com/dshills/milli/internal/renderer/backend"
	"github.com/dshills/milli/internal/renderer/viewport"
)

func TestNavigate(t *testing.T) {
	doc := document.New("t", []string{"abcdef", "ab", "", "日本語", "x"})
	size := viewport.Size{Width: 10, Height: 2}

	tests := []struct {
		name     string
		key      backend.Key
		cur      viewport.Position
		expected viewport.Position
	}{
		{"up at top", backend.KeyUp, viewport.Position{X: 0, Y: 0}, viewport.Position{X: 0, Y: 0}},
		{"up clamps x", backend.KeyUp, viewport.Position{X: 2, Y: 2}, viewport.Position{X: 2, Y: 1}},
		{"down clamps x", backend.KeyDown, viewport.Position{X: 5, Y: 0}, viewport.Position{X: 2, Y: 1}},
		{"down to empty row", backend.KeyDown, viewport.Position{X: 2, Y: 1}, viewport.Position{X: 0, Y: 2}},
		{"down at bottom", backend.KeyDown, viewport.Position{X: 0, Y: 4}, viewport.Position{X: 0, Y: 4}},
		{"left at edge", backend.KeyLeft, viewport.Position{X: 0, Y: 0}, viewport.Position{X: 0, Y: 0}},
		{"left", backend.KeyLeft, viewport.Position{X: 3, Y: 0}, viewport.Position{X: 2, Y: 0}},
		{"right", backend.KeyRight, viewport.Position{X: 1, Y: 1}, viewport.Position{X: 2, Y: 1}},
		{"right at end", backend.KeyRight, viewport.Position{X: 2, Y: 1}, viewport.Position{X: 2, Y: 1}},
		{"right on wide row", backend.KeyRight, viewport.Position{X: 4, Y: 3}, viewport.Position{X: 6, Y: 3}},
		{"right steps over wide char", backend.KeyRight, viewport.Position{X: 0, Y: 3}, viewport.Position{X: 2, Y: 3}},
		{"left steps over wide char", backend.KeyLeft, viewport.Position{X: 4, Y: 3}, viewport.Position{X: 2, Y: 3}},
		{"left from end of wide row", backend.KeyLeft, viewport.Position{X: 6, Y: 3}, viewport.Position{X: 4, Y: 3}},
		{"down onto wide row snaps to cluster", backend.KeyDown, viewport.Position{X: 3, Y: 2}, viewport.Position{X: 2, Y: 3}},
		{"up onto wide row snaps to cluster", backend.KeyUp, viewport.Position{X: 1, Y: 4}, viewport.Position{X: 0, Y: 3}},
		{"down from wide row keeps column", backend.KeyDown, viewport.Position{X: 4, Y: 3}, viewport.Position{X: 1, Y: 4}},
		{"home", backend.KeyHome, viewport.Position{X: 4, Y: 0}, viewport.Position{X: 0, Y: 0}},
		{"end", backend.KeyEnd, viewport.Position{X: 0, Y: 0}, viewport.Position{X: 6, Y: 0}},
		{"end on wide row", backend.KeyEnd, viewport.Position{X: 0, Y: 3}, viewport.Position{X: 6, Y: 3}},
		{"page down", backend.KeyPageDown, viewport.Position{X: 0, Y: 0}, viewport.Position{X: 0, Y: 2}},
		{"page down clamps", backend.KeyPageDown, viewport.Position{X: 0, Y: 3}, viewport.Position{X: 0, Y: 4}},
		{"page up clamps", backend.KeyPageUp, viewport.Position{X: 1, Y: 1}, viewport.Position{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := navigate(tt.key, tt.cur, doc, size)
			if !ok {
				t.Fatal("expected navigation key")
			}
			if got != tt.expected {
				t.Errorf("navigate() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestNavigate_NotNavigation(t *testing.T) {
	doc := document.New("t", []string{"abc"})
	cur := viewport.Position{X: 1}

	for _, k := range []backend.Key{backend.KeyRune, backend.KeyEnter, backend.KeyEscape, backend.KeyCtrlS} {
		got, ok := navigate(k, cur, doc, viewport.Size{Width: 10, Height: 3})
		if ok {
			t.Errorf("key %d should not navigate", k)
		}
		if got != cur {
			t.Errorf("key %d moved cursor to %+v", k, got)
		}
	}
}

func TestNavigate_SaturatesAtOrigin(t *testing.T) {
	docs := map[string]*document.Document{
		"empty":   document.New("", nil),
		"default": document.Default(),
	}
	keys := []backend.Key{backend.KeyUp, backend.KeyLeft, backend.KeyPageUp, backend.KeyHome}

	for name, doc := range docs {
		for _, k := range keys {
			got, _ := navigate(k, viewport.Position{}, doc, viewport.Size{Width: 10, Height: 3})
			if got != (viewport.Position{}) {
				t.Errorf("%s: key %d moved origin to %+v", name, k, got)
			}
		}
	}
}

func TestNavigate_EmptyDocument(t *testing.T) {
	doc := document.New("", nil)
	size := viewport.Size{Width: 10, Height: 0}

	for _, k := range []backend.Key{backend.KeyDown, backend.KeyPageDown, backend.KeyRight, backend.KeyEnd} {
		got, ok := navigate(k, viewport.Position{}, doc, size)
		if !ok || got != (viewport.Position{}) {
			t.Errorf("key %d on empty document = %+v, %v", k, got, ok)
		}
	}
}
