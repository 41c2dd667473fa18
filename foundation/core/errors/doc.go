// Package errors provides the error constructors shared by all boundstr
// modules.
//
// Package: errors
// Title: Standard Error Constructors for boundstr
// Description: Wraps the core error type with module identifiers and a
//              fixed set of constructors (ZeroCapacity, Truncated,
//              AllocationFailed, InvalidInput, IOFailed, ...). Every error
//              records its module in the "module" detail and its operation as
//              "<module>.<operation>".
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Usage:
//
//	import mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
//
//	if len(dst) == 0 {
//		return 0, mdwerrors.ZeroCapacity(mdwerrors.ModuleBufx, "copy")
//	}
package errors
