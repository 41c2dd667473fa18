// File: syslog_unix.go
// Title: System Log Sink
// Description: Connects a logger to the local system log daemon.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

//go:build !windows && !plan9

package log

import "log/syslog"

// replaced in tests
var dialSyslog = func(ident string) (syslogWriter, error) {
	return syslog.New(syslog.LOG_DAEMON|syslog.LOG_INFO, ident)
}
