// Package config provides layered settings for Milli.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (Set)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← MILLI_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← TOML or YAML
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg := config.New(config.WithFile("milli.toml"))
//	if err := cfg.Load(); err != nil {
//	    // Defaults and environment still apply.
//	}
//	tabWidth := cfg.Editor().TabWidth
//
// # Configuration Files
//
//	[editor]
//	tabWidth = 4
//
//	[ui]
//	statusForeground = "#3f3f3f"
//	statusBackground = "#efefef"
//	messageTimeout = "5s"
//
//	[logging]
//	level = "info"
//	file = "/tmp/milli.log"
//
// Section accessors never fail. A value of the wrong type or out of range
// falls back to its default and is reported by ConfigErrors.
package config
