// Package config loads application configuration from TOML files.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "keychord"

// Config holds the settings the shortcut engine's host boundary needs.
// Bindings themselves are not configurable.
type Config struct {
	// MacGlyphs overrides platform detection for shortcut display:
	// true forces ⌘⇧⌥ glyphs, false forces Ctrl/Shift/Alt words.
	// Unset means detect from the OS.
	MacGlyphs *bool `koanf:"mac_glyphs"`

	// ShortcutsEnabled sets the initial dispatch gate. Unset means
	// enabled.
	ShortcutsEnabled *bool `koanf:"shortcuts_enabled"`
}

// Load reads configuration from the known paths. Missing files are
// fine; later paths win.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/keychord/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// GlyphsEnabled resolves the platform flag for the formatter: explicit
// override first, otherwise Mac-like iff running on darwin.
func (c *Config) GlyphsEnabled() bool {
	if c.MacGlyphs != nil {
		return *c.MacGlyphs
	}
	return runtime.GOOS == "darwin"
}

// DispatchEnabled resolves the initial state of the dispatch gate.
func (c *Config) DispatchEnabled() bool {
	if c.ShortcutsEnabled != nil {
		return *c.ShortcutsEnabled
	}
	return true
}
