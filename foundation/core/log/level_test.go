// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level names, colors, ordering and parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial level tests
// - 2026-10-16 v0.2.0: Notice level and VT102 colors

package log

import (
	"testing"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
		short    string
	}{
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelNotice, "notice", "NOT"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{Level(99), "unknown", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
			if got := tt.level.ShortString(); got != tt.short {
				t.Errorf("Level.ShortString() = %v, want %v", got, tt.short)
			}
		})
	}
}

func TestLevelColor(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelNotice, "\033[0;35m"},
		{LevelError, "\033[0;31m"},
		{LevelWarn, "\033[0;33m"},
		{LevelInfo, ""},
	}

	for _, tt := range tests {
		if got := tt.level.Color(); got != tt.expected {
			t.Errorf("%v.Color() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if !levels[i].ShouldLog(levels[i-1]) {
			t.Errorf("%v should log at minimum %v", levels[i], levels[i-1])
		}
		if levels[i-1].ShouldLog(levels[i]) {
			t.Errorf("%v should not log at minimum %v", levels[i-1], levels[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" notice ", LevelNotice, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"trace", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if tt.wantErr && !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Errorf("ParseLevel(%q) error code = %v", tt.input, mdwerror.GetCode(err))
			}
		})
	}
}

func TestDefaultLevel(t *testing.T) {
	if DefaultLevel() != LevelInfo {
		t.Errorf("DefaultLevel() = %v, want info", DefaultLevel())
	}
}
