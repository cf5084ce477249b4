package config

import (
	"errors"
	"strings"
	"time"

	"github.com/dshills/milli/internal/renderer/core"
)

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// EditorConfig provides type-safe access to document display settings.
type EditorConfig struct {
	// TabWidth is the tab stop interval used when rendering rows.
	TabWidth int
}

// UIConfig provides type-safe access to UI settings.
type UIConfig struct {
	// StatusForeground is the status bar text color as "#rrggbb".
	StatusForeground string

	// StatusBackground is the status bar fill color as "#rrggbb".
	StatusBackground string

	// MessageTimeout is how long a message bar notice stays visible.
	MessageTimeout time.Duration
}

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is the minimum level written ("debug", "info", "warn", "error").
	Level string

	// File is the log destination. Empty disables logging.
	File string
}

// Editor returns type-safe access to editor settings.
func (c *Config) Editor() EditorConfig {
	tabWidth := c.getIntOr("editor.tabWidth", 4)
	if tabWidth < 1 {
		c.recordConfigError("editor.tabWidth", &ValidationError{
			Path:    "editor.tabWidth",
			Message: "must be at least 1",
			Value:   tabWidth,
		})
		tabWidth = 4
	}
	return EditorConfig{TabWidth: tabWidth}
}

// UI returns type-safe access to UI settings.
func (c *Config) UI() UIConfig {
	timeout := c.getDurationOr("ui.messageTimeout", 5*time.Second)
	if timeout <= 0 {
		c.recordConfigError("ui.messageTimeout", &ValidationError{
			Path:    "ui.messageTimeout",
			Message: "must be positive",
			Value:   timeout,
		})
		timeout = 5 * time.Second
	}
	return UIConfig{
		StatusForeground: c.getStringOr("ui.statusForeground", "#3f3f3f"),
		StatusBackground: c.getStringOr("ui.statusBackground", "#efefef"),
		MessageTimeout:   timeout,
	}
}

// Logging returns type-safe access to logging settings.
// An unknown level falls back to "info" and records a config error.
func (c *Config) Logging() LoggingConfig {
	level := strings.ToLower(c.getStringOr("logging.level", "info"))
	switch level {
	case "debug", "info", "warn", "warning", "error":
	default:
		c.recordConfigError("logging.level", &ValidationError{
			Path:    "logging.level",
			Message: "must be debug, info, warn, or error",
			Value:   level,
		})
		level = "info"
	}
	return LoggingConfig{
		Level: level,
		File:  c.getStringOr("logging.file", ""),
	}
}

// StatusStyle returns the status bar style built from the UI colors.
// A color that does not parse keeps its default.
func (c *Config) StatusStyle() core.Style {
	ui := c.UI()
	return core.DefaultStyle().
		WithForeground(c.colorOr("ui.statusForeground", ui.StatusForeground, core.ColorFromRGB(63, 63, 63))).
		WithBackground(c.colorOr("ui.statusBackground", ui.StatusBackground, core.ColorFromRGB(239, 239, 239)))
}

func (c *Config) colorOr(path, hex string, defaultValue core.Color) core.Color {
	color, err := core.ColorFromHex(hex)
	if err != nil {
		c.recordConfigError(path, err)
		return defaultValue
	}
	return color
}

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			// Record type/parse errors - these indicate config problems
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getDurationOr(path string, defaultValue time.Duration) time.Duration {
	v, err := c.GetDuration(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) recordConfigError(path string, err error) {
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	// Only store the first error for each path to preserve original cause
	if _, exists := c.configErrors[path]; !exists {
		c.configErrors[path] = err
	}
}

// ConfigErrors returns any configuration errors encountered during access.
// This allows callers to check for misconfigurations after loading.
func (c *Config) ConfigErrors() map[string]error {
	if c.configErrors == nil {
		return nil
	}
	result := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		result[k] = v
	}
	return result
}
