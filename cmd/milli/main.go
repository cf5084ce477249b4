// Package main is the entry point for the Milli viewer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/milli/internal/app"
	"github.com/dshills/milli/internal/config"
	"github.com/dshills/milli/internal/renderer"
	"github.com/dshills/milli/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// flags holds the parsed command line.
type flags struct {
	configPath string
	logLevel   string
	logFile    string
	tabWidth   int
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		return 1
	}

	cfg := config.New(config.WithFile(f.configPath))
	cfgErr := cfg.Load()
	if err := applyFlags(cfg, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logCfg := cfg.Logging()
	logger, closer, err := app.OpenLogFile(logCfg.File, app.ParseLogLevel(logCfg.Level))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()
	logger = logger.WithSession()
	logger.Info("milli %s (%s, %s) starting", version, commit, date)
	if cfgErr != nil {
		// A broken config file is not fatal: defaults and env still apply.
		logger.Warn("%v", cfgErr)
	}

	application := app.New(app.Options{
		File:    f.file,
		Version: version,
		Config:  cfg,
		Logger:  logger,
	})

	t, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// SIGTERM and SIGHUP quit the same way Ctrl-Q does.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			t.PostEvent(backend.KeyEvent(backend.KeyCtrlQ, 0, backend.ModCtrl))
		}
	}()

	if err := application.Run(); err != nil {
		logger.Error("exiting: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("exiting")
	fmt.Println(renderer.Goodbye)
	return 0
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cfg *config.Config, f flags) error {
	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	overrides := []struct {
		flag  string
		path  string
		value any
	}{
		{"log-level", "logging.level", f.logLevel},
		{"log-file", "logging.file", f.logFile},
		{"tab-width", "editor.tabWidth", f.tabWidth},
	}
	for _, o := range overrides {
		if !set[o.flag] {
			continue
		}
		if err := cfg.Set(o.path, o.value); err != nil {
			return fmt.Errorf("flag -%s: %w", o.flag, err)
		}
	}
	return nil
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	flag.IntVar(&f.tabWidth, "tab-width", 4, "Tab stop width")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		usage(os.Stderr)
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("%s %s\n", renderer.ProductName, version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch f.logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", f.logLevel)
		os.Exit(1)
	}

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one file may be given")
		os.Exit(1)
	}
	f.file = flag.Arg(0)

	return f
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "%s - a minimal terminal text viewer\n\n", renderer.ProductName)
	fmt.Fprintf(w, "Usage: milli [options] [file]\n\n")
	fmt.Fprintf(w, "Options:\n")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	fmt.Fprintf(w, "\nKeys:\n")
	fmt.Fprintf(w, "  Arrows, Home, End, PageUp, PageDown   Move the cursor\n")
	fmt.Fprintf(w, "  Ctrl-Q                                Quit\n")
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  %sLOG_LEVEL, %sLOG_FILE, %sTAB_WIDTH\n", config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
}
