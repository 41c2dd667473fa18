// File: logger.go
// Title: Logger Handle
// Description: Implements the Logger handle returned by Open. A handle owns
//              its sink until Close; derived loggers share that sink.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Logger with contextual fields and formatters
// - 2026-10-16 v0.2.0: Open/Close lifecycle, syslog sink, debug caller info

package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
)

// OutputSyslog selects the system log as destination
const OutputSyslog = "syslog"

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format

	// Output receives formatted entries. nil means standard error.
	// Ignored when Syslog is set.
	Output io.Writer

	// Syslog routes entries to the system log under the logger's ident
	Syslog bool

	// EnableCaller adds caller info to every entry, not only debug ones
	EnableCaller bool
}

// Logger is a handle to an open log sink. It is safe for concurrent use.
type Logger struct {
	sink  *sink
	mutex sync.RWMutex

	level         Level
	formatter     Formatter
	ident         string
	correlationID string
	contextFields Fields
	enableCaller  bool
}

// sink is the destination shared by a logger and everything derived from it
type sink struct {
	mu     sync.Mutex
	w      io.Writer
	sys    syslogWriter
	closed bool
}

// syslogWriter is the subset of *syslog.Writer the sink needs
type syslogWriter interface {
	Debug(m string) error
	Info(m string) error
	Notice(m string) error
	Warning(m string) error
	Err(m string) error
	Close() error
}

// Open returns a logger that tags its entries with ident. Close it when done.
func Open(ident string, cfg Config) (*Logger, error) {
	s := &sink{w: cfg.Output}
	formatter := GetFormatter(cfg.Format)

	if cfg.Syslog {
		w, err := dialSyslog(ident)
		if err != nil {
			return nil, mdwerrors.IOFailed(mdwerrors.ModuleLog, "open", err).WithDetail("ident", ident)
		}
		s.sys = w
		// syslog stamps its own time and tag
		formatter = &TextFormatter{DisableTimestamp: true}
	} else if s.w == nil {
		s.w = os.Stderr
	}

	return &Logger{
		sink:          s,
		level:         cfg.Level,
		formatter:     formatter,
		ident:         ident,
		contextFields: make(Fields),
		enableCaller:  cfg.EnableCaller,
	}, nil
}

// Close releases the sink. Entries logged afterwards, through this logger or
// any logger derived from it, are dropped. Closing twice is harmless.
func (l *Logger) Close() error {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.sys != nil {
		if err := s.sys.Close(); err != nil {
			return mdwerrors.IOFailed(mdwerrors.ModuleLog, "close", err)
		}
	}
	return nil
}

// WithLevel returns a logger with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithCorrelationID sets the correlation ID context
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	clone := l.clone()
	clone.correlationID = correlationID
	return clone
}

// Debug logs a debug level message with the caller's function and line
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Notice logs a notice level message
func (l *Logger) Notice(message string, fields ...Fields) {
	l.log(LevelNotice, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// Logf formats a message and logs it at level
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	if !l.IsLevelEnabled(level) {
		return
	}
	l.log(level, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.IsLevelEnabled(LevelDebug) {
		l.log(LevelDebug, fmt.Sprintf(format, args...), nil)
	}
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.IsLevelEnabled(LevelInfo) {
		l.log(LevelInfo, fmt.Sprintf(format, args...), nil)
	}
}

// Noticef logs a formatted notice message
func (l *Logger) Noticef(format string, args ...interface{}) {
	if l.IsLevelEnabled(LevelNotice) {
		l.log(LevelNotice, fmt.Sprintf(format, args...), nil)
	}
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.IsLevelEnabled(LevelWarn) {
		l.log(LevelWarn, fmt.Sprintf(format, args...), nil)
	}
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.IsLevelEnabled(LevelError) {
		l.log(LevelError, fmt.Sprintf(format, args...), nil)
	}
}

// LogError logs err at a level derived from its severity. Truncation and
// other low severity errors are informational.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     string(mdwErr.Code()),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	switch mdwErr.Severity() {
	case mdwerror.SeverityLow:
		l.log(LevelInfo, err.Error(), err, fields)
	case mdwerror.SeverityMedium:
		l.log(LevelWarn, err.Error(), err, fields)
	default:
		l.log(LevelError, err.Error(), err, fields)
	}
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// SetLevel changes the minimum level of this logger in place
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.level = level
}

// Ident returns the identifier given to Open
func (l *Logger) Ident() string {
	return l.ident
}

// log builds the entry and hands it to the sink. It must be called directly
// from an exported method so the caller lookup lands on user code.
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Ident = l.ident
	entry.CorrelationID = l.correlationID
	entry.Error = err
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	formatter := l.formatter
	withCaller := l.enableCaller || level == LevelDebug
	l.mutex.RUnlock()

	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	if withCaller {
		if function, file, line, ok := getCaller(); ok {
			entry.WithCaller(function, file, line)
		}
	}

	formatted, formatErr := formatter.Format(entry)
	if formatErr != nil {
		return
	}
	l.sink.write(level, formatted)
}

// getCaller returns the function, file and line of the code that called the
// exported logging method
func getCaller() (function, file string, line int, ok bool) {
	// getCaller, log, exported method, user code
	pc, file, line, ok := runtime.Caller(3)
	if !ok {
		return "", "", 0, false
	}

	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}
	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}
	return function, file, line, true
}

func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := &Logger{
		sink:          l.sink,
		level:         l.level,
		formatter:     l.formatter,
		ident:         l.ident,
		correlationID: l.correlationID,
		enableCaller:  l.enableCaller,
		contextFields: make(Fields, len(l.contextFields)),
	}
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	return clone
}

func (s *sink) write(level Level, line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.sys == nil {
		_, _ = s.w.Write(line)
		return
	}

	m := strings.TrimSuffix(string(line), "\n")
	switch level {
	case LevelDebug:
		_ = s.sys.Debug(m)
	case LevelInfo:
		_ = s.sys.Info(m)
	case LevelNotice:
		_ = s.sys.Notice(m)
	case LevelWarn:
		_ = s.sys.Warning(m)
	default:
		_ = s.sys.Err(m)
	}
}
