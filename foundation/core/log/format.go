// File: format.go
// Title: Log Format Definitions
// Description: Defines the text, JSON, console and logfmt output formats and
//              their formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: JSON, text, console and logfmt formatters
// - 2026-10-16 v0.2.0: Caller prefix and VT102 console colors

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatText outputs human-readable text logs
	FormatText Format = iota

	// FormatJSON outputs one JSON object per line
	FormatJSON

	// FormatConsole outputs text logs colored per level
	FormatConsole

	// FormatLogfmt outputs key=value pairs
	FormatLogfmt
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "console":
		return FormatConsole, nil
	case "logfmt":
		return FormatLogfmt, nil
	default:
		return FormatText, mdwerrors.InvalidInput(mdwerrors.ModuleLog, "parse_format", format, "text, json, console or logfmt")
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// callerPrefix renders caller info the way debug lines have always looked:
// "in function:0042 - "
func callerPrefix(c *CallerInfo) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("in %s:%04d - ", c.Function, c.Line)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Ident != "" {
		data["ident"] = entry.Ident
	}
	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}
	if entry.Caller != nil {
		data["caller"] = map[string]interface{}{
			"function": entry.Caller.Function,
			"file":     entry.Caller.File,
			"line":     entry.Caller.Line,
		}
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat string

	// DisableTimestamp drops the timestamp, for sinks that add their own
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "2006-01-02 15:04:05"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(f.line(entry) + "\n"), nil
}

func (f *TextFormatter) line(entry *Entry) string {
	var sb strings.Builder

	if !f.DisableTimestamp {
		sb.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		sb.WriteByte(' ')
	}
	sb.WriteString("[" + entry.Level.ShortString() + "] ")
	if entry.Ident != "" {
		sb.WriteString(entry.Ident)
		if entry.CorrelationID != "" {
			sb.WriteString("(" + entry.CorrelationID + ")")
		}
		sb.WriteString(": ")
	} else if entry.CorrelationID != "" {
		sb.WriteString("(" + entry.CorrelationID + ") ")
	}

	sb.WriteString(callerPrefix(entry.Caller))
	sb.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		sb.WriteString(" [")
		for i, k := range entry.Fields.Keys() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%s=%v", k, entry.Fields[k])
		}
		sb.WriteByte(']')
	}
	if entry.Error != nil {
		fmt.Fprintf(&sb, " error=%q", entry.Error.Error())
	}
	return sb.String()
}

// ConsoleFormatter formats text lines wrapped in the level's VT102 color
type ConsoleFormatter struct {
	DisableColors bool

	*TextFormatter
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: &TextFormatter{TimestampFormat: "15:04:05"}}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	line := f.line(entry)
	if color := entry.Level.Color(); color != "" && !f.DisableColors {
		line = color + line + colorReset
	}
	return []byte(line + "\n"), nil
}

// LogfmtFormatter formats log entries in logfmt format (key=value pairs)
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a new logfmt formatter
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry in logfmt format
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	parts := []string{
		"timestamp=" + entry.Timestamp.Format(f.TimestampFormat),
		"level=" + entry.Level.String(),
		fmt.Sprintf("message=%q", entry.Message),
	}

	if entry.Ident != "" {
		parts = append(parts, "ident="+entry.Ident)
	}
	if entry.CorrelationID != "" {
		parts = append(parts, "correlation_id="+entry.CorrelationID)
	}
	if entry.Caller != nil {
		parts = append(parts, fmt.Sprintf("caller=%s:%d", entry.Caller.Function, entry.Caller.Line))
	}

	for _, k := range entry.Fields.Keys() {
		switch v := entry.Fields[k].(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s=%q", k, v))
		case error:
			parts = append(parts, fmt.Sprintf("%s=%q", k, v.Error()))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewTextFormatter()
	}
}
