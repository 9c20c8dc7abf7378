package config

import (
	"runtime"
	"testing"
)

func boolPtr(v bool) *bool { return &v }

func TestGlyphsEnabled(t *testing.T) {
	tests := []struct {
		name     string
		override *bool
		expected bool
	}{
		{"explicit true", boolPtr(true), true},
		{"explicit false", boolPtr(false), false},
		{"unset detects from OS", nil, runtime.GOOS == "darwin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{MacGlyphs: tt.override}
			if got := cfg.GlyphsEnabled(); got != tt.expected {
				t.Errorf("GlyphsEnabled() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDispatchEnabled(t *testing.T) {
	tests := []struct {
		name     string
		override *bool
		expected bool
	}{
		{"unset defaults to enabled", nil, true},
		{"explicit true", boolPtr(true), true},
		{"explicit false", boolPtr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ShortcutsEnabled: tt.override}
			if got := cfg.DispatchEnabled(); got != tt.expected {
				t.Errorf("DispatchEnabled() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	// Local config.toml wins, so it must come last.
	if paths[len(paths)-1] != "config.toml" {
		t.Errorf("last path = %q, want %q", paths[len(paths)-1], "config.toml")
	}
}
