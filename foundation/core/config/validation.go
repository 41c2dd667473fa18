// File: validation.go
// Title: Settings Validation
// Description: Checks a Settings document and reports every violation at
//              once.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Rule based validation
// - 2026-10-16 v0.2.0: Validation of the typed Settings document

package config

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
	mdwlog "github.com/msto63/boundstr/foundation/core/log"
)

// MaxBufferCapacity bounds buffer.capacity
const MaxBufferCapacity = 1 << 20

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Check inspects every setting and collects the violations
func (s *Settings) Check() *ValidationResult {
	result := &ValidationResult{Valid: true}

	if s.Buffer.Capacity < 1 || s.Buffer.Capacity > MaxBufferCapacity {
		result.fail("buffer.capacity must be between 1 and %d, got %d", MaxBufferCapacity, s.Buffer.Capacity)
	}
	if s.Split.Delimiter == "" {
		result.fail("split.delimiter must not be empty")
	}
	if s.Split.MaxEntries < 0 {
		result.fail("split.max_entries must not be negative")
	}
	if s.Split.MaxBytes < 0 {
		result.fail("split.max_bytes must not be negative")
	}
	if b := s.Parse.Base; b != 0 && (b < 2 || b > 36) {
		result.fail("parse.base must be 0 or between 2 and 36, got %d", b)
	}
	if _, err := mdwlog.ParseLevel(s.Log.Level); err != nil {
		result.fail("log.level %q is not a level", s.Log.Level)
	}
	if _, err := mdwlog.ParseFormat(s.Log.Format); err != nil {
		result.fail("log.format %q is not a format", s.Log.Format)
	}
	if strings.TrimSpace(s.Log.Output) == "" {
		result.fail("log.output must not be empty")
	}
	if s.Log.Ident == "" {
		result.fail("log.ident must not be empty")
	}

	return result
}

// Validate returns an INVALID_CONFIG error listing every violation, or nil
func (s *Settings) Validate() error {
	result := s.Check()
	if result.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(result.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("violations", result.Errors)
}
