package config

import (
	"fmt"
	"time"

	"github.com/dshills/milli/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "MILLI_"

// Config holds the merged settings from all layers.
// It is not safe for concurrent use.
type Config struct {
	values map[string]any

	fs     loader.FileSystem
	path   string
	useEnv bool

	// configErrors stores errors encountered during configuration access.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithFile sets the configuration file to load. The format is chosen by
// extension.
func WithFile(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithFileSystem sets the file system the configuration file is read from.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// WithEnv enables or disables the environment layer.
func WithEnv(enable bool) Option {
	return func(c *Config) {
		c.useEnv = enable
	}
}

// New creates a new Config holding only the built-in defaults.
func New(opts ...Option) *Config {
	c := &Config{
		values: defaultConfig(),
		fs:     loader.DefaultFS(),
		useEnv: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load rebuilds the configuration from defaults, the config file and the
// environment. A missing file is not an error. When the file cannot be
// read or parsed the error is returned and the remaining layers still
// apply.
func (c *Config) Load() error {
	merged := defaultConfig()
	c.configErrors = nil

	var fileErr error
	if c.path != "" {
		data, err := loader.ForFile(c.fs, c.path).Load()
		if err != nil {
			fileErr = fmt.Errorf("loading config file: %w", err)
		} else {
			merged = loader.DeepMerge(merged, data)
		}
	}

	if c.useEnv {
		env, err := loader.NewEnvLoader(EnvPrefix).Load()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, env)
	}

	c.values = merged
	return fileErr
}

// Path returns the configuration file path, if any.
func (c *Config) Path() string {
	return c.path
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	return getPath(c.values, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

// GetDuration returns a duration at the given path. Strings are parsed
// with time.ParseDuration and bare integers are read as seconds.
func (c *Config) GetDuration(path string) (time.Duration, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case string:
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, &ValidationError{Path: path, Message: "invalid duration", Value: val}
		}
		return d, nil
	case int:
		return time.Duration(val) * time.Second, nil
	case int64:
		return time.Duration(val) * time.Second, nil
	default:
		return 0, &TypeError{Path: path, Expected: "duration", Actual: typeName(v)}
	}
}

// Set overrides a value. It is used for command-line flags, which take
// precedence over every loaded layer.
func (c *Config) Set(path string, value any) error {
	return setPath(c.values, path, value)
}

// Merged returns the merged configuration map.
func (c *Config) Merged() map[string]any {
	return c.values
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"tabWidth": 4,
		},
		"ui": map[string]any{
			"statusForeground": "#3f3f3f",
			"statusBackground": "#efefef",
			"messageTimeout":   "5s",
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = cm[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return ErrInvalidPath
	}

	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// splitPath splits a dot-separated path into parts, ignoring empty segments.
func splitPath(path string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '.' {
			if i > start {
				parts = append(parts, path[start:i])
			}
			start = i + 1
		}
	}
	return parts
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case time.Duration:
		return "duration"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return "unknown"
	}
}
