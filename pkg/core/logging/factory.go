// ============================================================================
// boundstr - Bounded String Toolkit
// ============================================================================
//
// Package:     logging
// Description: Builds the Foundation log handle from the log settings
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/msto63/boundstr/foundation/core/config"
	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
	mdwlog "github.com/msto63/boundstr/foundation/core/log"
)

// Logger is a Foundation log handle that also owns the log file, if any
type Logger struct {
	*mdwlog.Logger
	file *os.File
}

// Options tweak how the settings are turned into a logger
type Options struct {
	// Stdout and Stderr replace the process streams, mainly for tests
	Stdout io.Writer
	Stderr io.Writer

	// Verbose lowers the level to debug regardless of the settings
	Verbose bool
}

// New opens a logger as described by s. Output "stderr" and "stdout" use the
// process streams, "syslog" the system log, anything else is a file that is
// appended to. A text format on a terminal is upgraded to console colors.
func New(s config.LogSettings, opts Options) (*Logger, error) {
	level, err := mdwlog.ParseLevel(s.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = mdwlog.LevelDebug
	}
	format, err := mdwlog.ParseFormat(s.Format)
	if err != nil {
		return nil, err
	}

	cfg := mdwlog.Config{
		Level:        level,
		Format:       format,
		EnableCaller: s.Caller,
	}

	var file *os.File
	switch s.Output {
	case "", "stderr":
		cfg.Output = orDefault(opts.Stderr, os.Stderr)
	case "stdout":
		cfg.Output = orDefault(opts.Stdout, os.Stdout)
	case mdwlog.OutputSyslog:
		cfg.Syslog = true
	default:
		file, err = os.OpenFile(s.Output, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, mdwerrors.IOFailed(mdwerrors.ModuleLog, "open", err).WithDetail("path", s.Output)
		}
		cfg.Output = file
	}

	if cfg.Format == mdwlog.FormatText && IsTerminal(cfg.Output) {
		cfg.Format = mdwlog.FormatConsole
	}

	l, err := mdwlog.Open(s.Ident, cfg)
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, err
	}
	return &Logger{Logger: l, file: file}, nil
}

// NewSimpleLogger returns a text logger on w at the default level
func NewSimpleLogger(ident string, w io.Writer) *Logger {
	l, _ := mdwlog.Open(ident, mdwlog.Config{Level: mdwlog.DefaultLevel(), Output: w})
	return &Logger{Logger: l}
}

// Close closes the handle and the log file
func (l *Logger) Close() error {
	err := l.Logger.Close()
	if l.file != nil {
		if ferr := l.file.Close(); err == nil && ferr != nil {
			err = mdwerrors.IOFailed(mdwerrors.ModuleLog, "close", ferr)
		}
	}
	return err
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func orDefault(w, dfl io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return dfl
}

// KV converts alternating key-value pairs to mdwlog.Fields. Pairs with a
// non-string key and a trailing odd value are skipped.
func KV(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
