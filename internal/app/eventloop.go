package app

import (
	"github.com/dshills/milli/internal/renderer"
	"github.com/dshills/milli/internal/renderer/backend"
	"github.com/dshills/milli/internal/renderer/viewport"
)

// eventLoop renders, then blocks for the next event, until the user
// quits. The goodbye frame is drawn before it returns.
func (app *Application) eventLoop() error {
	for {
		if err := app.render(); err != nil {
			return app.die("render", err)
		}
		if app.state == StateQuitting {
			return nil
		}

		ev := app.backend.PollEvent()
		if err := app.handleBackendEvent(ev); err != nil {
			return app.die("read event", err)
		}
	}
}

func (app *Application) render() error {
	timer := StartTimer()
	err := app.renderer.Render(renderer.Frame{
		Document: app.doc,
		Cursor:   app.cursor,
		Offset:   app.offset,
		Quitting: app.state == StateQuitting,
	})
	if err != nil {
		return err
	}
	app.metrics.RecordFrame(timer.Elapsed())
	app.logger.Debug("frame %d cursor=%d,%d offset=%d,%d",
		app.renderer.FrameCount(), app.cursor.X, app.cursor.Y, app.offset.X, app.offset.Y)
	return nil
}

// die makes a best-effort attempt to leave a blank screen and reports
// err as a fatal terminal failure.
func (app *Application) die(action string, err error) error {
	app.backend.Clear()
	_ = app.backend.Show()
	app.logger.Error("%s: %v", action, err)
	return NewComponentError("terminal", action, err)
}

// handleBackendEvent processes a backend event. A non-nil error is fatal.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		app.handleKeyEvent(ev)
		return nil
	case backend.EventResize:
		app.handleResize(ev)
		return nil
	case backend.EventError:
		if ev.Err == nil {
			return backend.ErrClosed
		}
		return ev.Err
	default:
		return nil
	}
}

// handleKeyEvent applies a key to the cursor and scroll state.
// Keys that are not bound leave the state unchanged.
func (app *Application) handleKeyEvent(ev backend.Event) {
	app.metrics.RecordKey()

	if ev.IsCtrl('q') {
		app.logger.Debug("quit requested")
		app.state = StateQuitting
		return
	}

	size := app.renderer.Size()
	cur, ok := navigate(ev.Key, app.cursor, app.doc, size)
	if !ok {
		return
	}
	app.cursor = cur
	app.offset = viewport.Rescroll(app.cursor, size, app.offset)
}

// handleResize redraws the whole screen and keeps the cursor in view at
// the new size.
func (app *Application) handleResize(ev backend.Event) {
	app.metrics.RecordResize()
	app.logger.Debug("resize %dx%d", ev.Width, ev.Height)

	app.renderer.Invalidate()
	app.offset = viewport.Rescroll(app.cursor, app.renderer.Size(), app.offset)
}
