// Package error provides the structured error type used across boundstr.
//
// Package: error
// Title: boundstr Error Handling
// Description: Errors carry a Code, a Severity, the failing operation and
//              details. The bounded buffer packages report truncation through
//              their return values; this type is used for the conditions that
//              are real failures (zero capacity, allocation budget exhausted,
//              I/O errors) and for the Replace truncation signal.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Usage:
//
//	import mdwerror "github.com/msto63/boundstr/foundation/core/error"
//
//	err := mdwerror.New("destination buffer has zero capacity").
//		WithCode(mdwerror.CodeInvalidCapacity).
//		WithOperation("bufx.copy")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidCapacity) {
//		// ...
//	}
package error
