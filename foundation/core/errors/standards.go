// File: standards.go
// Title: Error Standards for boundstr Modules
// Description: Module identifiers and the convenience constructors used by
//              bufx, stringx, strlist, numx and filex so that identical
//              conditions produce identical errors everywhere.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-16 v0.2.0: Truncation, capacity, allocation and I/O constructors

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleBufx    = "bufx"
	ModuleStringx = "stringx"
	ModuleStrlist = "strlist"
	ModuleNumx    = "numx"
	ModuleFilex   = "filex"
	ModuleConfig  = "config"
	ModuleLog     = "log"
)

// ZeroCapacity reports a destination buffer that cannot hold even a terminator
func ZeroCapacity(module, operation string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message("destination buffer has zero capacity").
		Code(mdwerror.CodeInvalidCapacity).
		Detail("capacity", 0).
		Build()
}

// Truncated reports content that did not fit in its destination.
// needed is the would-be length, capacity the size of the buffer.
func Truncated(module, operation string, needed, capacity int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("output truncated: %d bytes needed, room for %d", needed, capacity-1).
		Code(mdwerror.CodeTruncated).
		Detail("needed", needed).
		Detail("capacity", capacity).
		Build()
}

// Encoding reports a formatter failure
func Encoding(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message("formatting failed").
		Cause(cause).
		Code(mdwerror.CodeEncoding).
		Build()
}

// AllocationFailed reports an exhausted allocation budget
func AllocationFailed(module, operation string, limit string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("allocation failed: %s limit %v reached", limit, value).
		Code(mdwerror.CodeAllocationFailed).
		Detail("limit", limit).
		Detail("value", value).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s: expected %s", module, operation, expected)).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value out of range in %s.%s", module, operation).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s", module, operation).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// IOFailed wraps a system call failure
func IOFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s I/O failed", module, operation).
		Cause(cause).
		Code(mdwerror.CodeIOError).
		Build()
}
