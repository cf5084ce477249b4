// Package app provides the main application structure for the Milli
// viewer. It wires the document, renderer and terminal backend together
// and owns the input loop.
package app

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/dshills/milli/internal/config"
	"github.com/dshills/milli/internal/document"
	"github.com/dshills/milli/internal/renderer"
	"github.com/dshills/milli/internal/renderer/backend"
	"github.com/dshills/milli/internal/renderer/viewport"
)

// Startup messages shown in the message bar.
const (
	HelpMessage     = "HELP: Ctrl-Q = quit"
	OpenFailMessage = "ERR: Could not open file: "
)

// State is the application's lifecycle state.
type State int

const (
	// StateRunning is the state while the input loop accepts keys.
	StateRunning State = iota
	// StateQuitting is entered on Ctrl-Q. One more frame is drawn.
	StateQuitting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Application owns the document, cursor and scroll offset and drives
// the render and input loop on a single goroutine.
type Application struct {
	config   *config.Config
	logger   *Logger
	metrics  *Metrics
	renderer *renderer.Renderer
	backend  backend.Backend

	doc     *document.Document
	message string

	cursor viewport.Position
	offset viewport.Position
	state  State

	running atomic.Bool

	opts Options
}

// Options configures the application.
type Options struct {
	// File is the document to open. Empty shows the built-in document.
	File string

	// Version is shown in the welcome banner.
	Version string

	// Config supplies tab width and status bar settings. Nil uses defaults.
	Config *config.Config

	// Logger receives diagnostics. Nil disables logging.
	Logger *Logger

	// Now is the clock used for message expiry. Defaults to time.Now.
	Now func() time.Time
}

// New creates an Application and loads its document. A document that
// cannot be read is replaced by the built-in one and reported in the
// message bar.
func New(opts Options) *Application {
	if opts.Config == nil {
		opts.Config = config.New()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Version == "" {
		opts.Version = renderer.DefaultOptions().Version
	}

	app := &Application{
		config:  opts.Config,
		logger:  opts.Logger.WithComponent("app"),
		metrics: NewMetrics(),
		state:   StateRunning,
		opts:    opts,
	}
	app.loadDocument()
	return app
}

func (app *Application) loadDocument() {
	tabWidth := document.WithTabWidth(app.config.Editor().TabWidth)

	if app.opts.File == "" {
		app.doc = document.Default(tabWidth)
		app.message = HelpMessage
		return
	}

	doc, err := document.Open(app.opts.File, tabWidth)
	if err != nil {
		opErr := NewOperationError("open", app.opts.File, err)
		app.logger.Warn("%v", opErr)
		app.doc = document.Default(tabWidth)
		app.message = OpenFailMessage + app.opts.File
		return
	}

	app.logger.Info("opened %s (%d lines)", app.opts.File, doc.Len())
	app.doc = doc
	app.message = HelpMessage
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend and runs the input loop until the user
// quits or the terminal fails. The backend is shut down before Run
// returns.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.backend == nil {
		return ErrNoBackend
	}
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	ui := app.config.UI()
	app.renderer = renderer.New(app.backend, renderer.Options{
		Version:        app.opts.Version,
		StatusStyle:    app.config.StatusStyle(),
		MessageTimeout: ui.MessageTimeout,
		Now:            app.opts.Now,
	})
	app.renderer.SetMessage(app.message)
	app.logConfigErrors()

	w, h := app.backend.Size()
	app.logger.Debug("terminal %dx%d", w, h)

	err := app.eventLoop()
	app.logger.Debug("metrics: %s", app.metrics.Snapshot())
	return err
}

func (app *Application) logConfigErrors() {
	errs := app.config.ConfigErrors()
	paths := make([]string, 0, len(errs))
	for path := range errs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		app.logger.Warn("config %s: %v, using default", path, errs[path])
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// State returns the lifecycle state.
func (app *Application) State() State {
	return app.state
}

// Cursor returns the cursor position in document coordinates.
func (app *Application) Cursor() viewport.Position {
	return app.cursor
}

// Offset returns the scroll offset.
func (app *Application) Offset() viewport.Position {
	return app.offset
}

// Document returns the loaded document.
func (app *Application) Document() *document.Document {
	return app.doc
}

// Message returns the startup message.
func (app *Application) Message() string {
	return app.message
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the run's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Renderer returns the renderer. It is nil until Run starts.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}
