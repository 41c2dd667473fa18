// File: level.go
// Title: Log Level Definitions
// Description: Defines the five log levels, their console colors and their
//              mapping onto system log priorities.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Levels debug, info, warn and error
// - 2026-10-16 v0.2.0: Notice level and VT102 colors

package log

import (
	"strings"

	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelDebug carries the calling function and line
	LevelDebug Level = iota

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelNotice marks normal but significant events
	LevelNotice

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions
	LevelError
)

// VT102 escape sequences used by the console format
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorBrown  = "\033[0;33m"
	colorPurple = "\033[0;35m"
	colorGray   = "\033[1;30m"
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelNotice:
		return "notice"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ShortString returns a short string representation of the log level
func (l Level) ShortString() string {
	switch l {
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelNotice:
		return "NOT"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	default:
		return "???"
	}
}

// Color returns the VT102 color sequence for the level, or "" for plain output
func (l Level) Color() string {
	switch l {
	case LevelDebug:
		return colorGray
	case LevelNotice:
		return colorPurple
	case LevelWarn:
		return colorBrown
	case LevelError:
		return colorRed
	default:
		return ""
	}
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf":
		return LevelInfo, nil
	case "notice", "not":
		return LevelNotice, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	default:
		return LevelInfo, mdwerrors.InvalidInput(mdwerrors.ModuleLog, "parse_level", level, "debug, info, notice, warn or error")
	}
}

// AllLevels returns all available log levels
func AllLevels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelNotice, LevelWarn, LevelError}
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
