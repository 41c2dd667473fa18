// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that callers and the
//              logger can decide how loudly to report a failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for buffer and I/O codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a local, expected condition such as truncation
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation the caller can recover from
	SeverityMedium

	// SeverityHigh indicates resource exhaustion or I/O failure
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeAllocationFailed, CodeIOError, CodeConfigError:
		return SeverityHigh

	case CodeTruncated, CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange,
		CodeValidationFailed, CodeNotFound, CodeInterrupted:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
