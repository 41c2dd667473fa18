// File: syslog_other.go
// Title: System Log Sink (unsupported platforms)
// Description: Reports that the system log is unavailable.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

//go:build windows || plan9

package log

import "errors"

var dialSyslog = func(ident string) (syslogWriter, error) {
	return nil, errors.New("syslog is not supported on this platform")
}
