// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across boundstr. Codes classify
//              failures so callers can react to truncation, capacity and
//              allocation problems without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Buffer, list and I/O codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Bounded buffer operations
	CodeTruncated       Code = "TRUNCATED"
	CodeInvalidCapacity Code = "INVALID_CAPACITY"
	CodeEncoding        Code = "ENCODING"

	// String list
	CodeAllocationFailed Code = "ALLOCATION_FAILED"

	// Numeric parsing
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// I/O collaborator
	CodeIOError     Code = "IO_ERROR"
	CodeInterrupted Code = "INTERRUPTED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeTruncated, CodeInvalidCapacity, CodeEncoding,
		CodeAllocationFailed,
		CodeInvalidFormat, CodeValueOutOfRange,
		CodeIOError, CodeInterrupted,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeTruncated, CodeInvalidCapacity, CodeEncoding:
		return "buffer"
	case CodeAllocationFailed:
		return "memory"
	case CodeInvalidFormat, CodeValueOutOfRange:
		return "parse"
	case CodeIOError, CodeInterrupted:
		return "io"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}
