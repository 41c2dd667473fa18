// File: builder.go
// Title: Shared Error Builder
// Description: Fluent builder used by every boundstr package to produce
//              errors with a module, an operation, a code and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-16 v0.2.0: Builder keeps structured codes instead of module-prefixed strings

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: -1,
		code:     mdwerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	op := eb.module
	if eb.operation != "" {
		op = eb.module + "." + eb.operation
	}

	message := eb.message
	if message == "" {
		message = op + " failed"
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	err = err.WithOperation(op).WithDetails(eb.details).WithDetail("module", eb.module)
	if eb.code != mdwerror.CodeUnknown {
		err = err.WithSeverity(mdwerror.SeverityMedium).WithCode(eb.code)
	}
	if eb.severity >= 0 {
		err = err.WithSeverity(eb.severity)
	}
	return err
}

// ExtractModule extracts the module name from an error built by ErrorBuilder
func ExtractModule(err error) string {
	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		return ""
	}
	if module, ok := mdwErr.Detail("module"); ok {
		if s, ok := module.(string); ok {
			return s
		}
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}
