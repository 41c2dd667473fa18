// File: doc.go
// Title: Package Documentation for numx
// Description: Package numx parses integers with a caller-supplied default
//              and strtol-compatible prefix scanning.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package numx parses integers out of text that may carry leading blanks and
// trailing garbage, falling back to a default instead of failing.
//
// Scanning rules
//
// Leading ASCII white space is skipped, then an optional '+' or '-'. For base
// 16 an optional "0x" or "0X" prefix follows. Base 0 picks the base from the
// prefix: "0x" means 16, a leading "0" means 8, anything else means 10. The
// longest run of valid digits is converted; whatever follows it is ignored.
//
//	numx.Int("13", 10, -1)         // 13
//	numx.Int("  42 apples", 10, -1) // 42
//	numx.Int("0x1F", 0, -1)        // 31
//	numx.Int("", 10, -1)           // -1
//	numx.Int("notanumber", 10, -1) // -1
//
// The default is returned for empty input, input without digits, a base
// outside 0 and 2..36, and values that do not fit the result type.
//
// Scan exposes the same scanner with the end position and the reason a value
// was rejected, for callers that need more than a default.
package numx
