// Package renderer draws the viewer's screen.
//
// A frame is built from the document rows visible through the scroll
// offset, a status bar and a message bar, then flushed to the backend
// in a single Show:
//
//	┌─────────────────────────────────────────┐
//	│  document rows / "~" filler / banner    │  viewport.Size.Height rows
//	├─────────────────────────────────────────┤
//	│  status bar                             │  row H
//	│  message bar                            │  row H+1
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.DefaultOptions())
//	err := r.Render(renderer.Frame{Document: doc})
package renderer
