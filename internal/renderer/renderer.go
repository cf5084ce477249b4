package renderer

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/milli/internal/document"
	"github.com/dshills/milli/internal/renderer/backend"
	"github.com/dshills/milli/internal/renderer/core"
	"github.com/dshills/milli/internal/renderer/statusline"
	"github.com/dshills/milli/internal/renderer/viewport"
)

// ProductName is shown in the welcome banner.
const ProductName = "Milli Editor"

// Goodbye is drawn on the final frame before exit.
const Goodbye = "Goodbye."

// Options configures the renderer.
type Options struct {
	// Version is shown in the welcome banner.
	Version string

	// StatusStyle is the color pair of the status bar.
	StatusStyle core.Style

	// MessageTimeout is how long the message bar keeps a message.
	MessageTimeout time.Duration

	// Now returns the current time for message expiry. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Version:        "dev",
		StatusStyle:    statusline.DefaultStyle(),
		MessageTimeout: statusline.DefaultMessageTimeout,
		Now:            time.Now,
	}
}

// Frame is the state drawn by one Render call.
type Frame struct {
	Document *document.Document
	Cursor   viewport.Position
	Offset   viewport.Position
	Quitting bool
}

// Renderer is the single writer to the backend. It is not safe for
// concurrent use.
type Renderer struct {
	opts    Options
	backend backend.Backend

	status   *statusline.StatusLine
	messages *statusline.MessageBar

	fullRedraw bool
	frameCount uint64
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.StatusStyle == (core.Style{}) {
		opts.StatusStyle = statusline.DefaultStyle()
	}

	status := statusline.New()
	status.SetStyle(opts.StatusStyle)

	return &Renderer{
		opts:       opts,
		backend:    b,
		status:     status,
		messages:   statusline.NewMessageBar(opts.MessageTimeout),
		fullRedraw: true,
	}
}

// SetMessage replaces the message shown in the message bar.
func (r *Renderer) SetMessage(text string) {
	r.messages.SetMessage(statusline.NewMessage(text, r.opts.Now()))
}

// Message returns the current message.
func (r *Renderer) Message() statusline.Message {
	return r.messages.Message()
}

// Invalidate forces the next frame to clear the whole screen.
func (r *Renderer) Invalidate() {
	r.fullRedraw = true
}

// FrameCount returns the number of frames flushed.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Size returns the document area for the backend's current size.
func (r *Renderer) Size() viewport.Size {
	return viewport.ForTerminal(r.backend.Size())
}

// Render draws f and flushes it. The returned error comes from the
// backend flush and leaves the screen in an unknown state.
func (r *Renderer) Render(f Frame) error {
	b := r.backend
	b.HideCursor()

	if r.fullRedraw || f.Quitting {
		b.Clear()
		r.fullRedraw = false
	}

	if f.Quitting {
		backend.DrawString(b, 0, 0, Goodbye, core.DefaultStyle())
		// The cursor rests on the line below the goodbye text.
		b.ShowCursor(0, 1)
		return r.show()
	}

	size := r.Size()
	r.drawRows(f, size)
	r.drawStatusBar(f, size.Height)
	r.messages.Render(b, size.Height+1, r.opts.Now())

	b.ShowCursor(viewport.ToScreen(f.Cursor, f.Offset))
	return r.show()
}

func (r *Renderer) show() error {
	if err := r.backend.Show(); err != nil {
		return err
	}
	r.frameCount++
	return nil
}

func (r *Renderer) drawRows(f Frame, size viewport.Size) {
	doc := f.Document
	for y := 0; y < size.Height; y++ {
		backend.ClearLine(r.backend, y, core.DefaultStyle())

		var line string
		if row, ok := doc.Row(f.Offset.Y + y); ok {
			line = row.Render(f.Offset.X, f.Offset.X+size.Width)
		} else if doc.IsEmpty() && y == size.Height/3 {
			line = r.welcome(size.Width)
		} else {
			line = "~"
		}
		backend.DrawString(r.backend, 0, y, line, core.DefaultStyle())
	}
}

// welcome returns the banner line centered in width columns.
func (r *Renderer) welcome(width int) string {
	msg := ProductName + " -- version " + r.opts.Version
	pad := max(width-runewidth.StringWidth(msg), 0) / 2
	return "~" + strings.Repeat(" ", max(pad-1, 0)) + runewidth.Truncate(msg, width, "")
}

func (r *Renderer) drawStatusBar(f Frame, row int) {
	r.status.SetFilename(f.Document.FileName())
	r.status.SetTotalLines(f.Document.Len())
	r.status.SetLine(f.Cursor.Y + 1)
	r.status.Render(r.backend, row)
}
