// Package log provides the leveled message sink used by boundstr tools.
//
// Package: log
// Title: boundstr Structured Logging
// Description: A logger is a handle. Open creates it for an identifier and a
//              destination, Close releases the destination. There is no
//              package level logger.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Structured logger with text, JSON, console and logfmt
// - 2026-10-16 v0.2.0: Open/Close handle, notice level, syslog destination
//
// Features:
// - Levels debug, info, notice, warn and error
// - Debug entries name the calling function and line
// - Console format colors notice purple and error red (VT102)
// - System log destination via log/syslog
// - Correlation IDs and persistent fields on derived loggers
//
// Usage:
//   import mdwlog "github.com/msto63/boundstr/foundation/core/log"
//
//   logger, err := mdwlog.Open("boundstr", mdwlog.Config{
//     Level:  mdwlog.LevelInfo,
//     Format: mdwlog.FormatText,
//   })
//   if err != nil {
//     return err
//   }
//   defer logger.Close()
//
//   logger = logger.WithCorrelationID(id)
//   logger.Noticef("copied %d bytes", n)
//   logger.LogError(err)
package log
