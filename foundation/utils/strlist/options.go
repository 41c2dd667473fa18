// File: options.go
// Title: List Options
// Description: Functional options that bound the size of a List.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package strlist

// Option configures a List
type Option func(*List)

// WithMaxEntries limits the number of entries. Zero or less means unlimited.
func WithMaxEntries(n int) Option {
	return func(l *List) {
		l.maxEntries = n
	}
}

// WithMaxBytes limits the total length of all entries. Zero or less means unlimited.
func WithMaxBytes(n int) Option {
	return func(l *List) {
		l.maxBytes = n
	}
}

// WithCapacity preallocates room for n entries
func WithCapacity(n int) Option {
	return func(l *List) {
		if n > 0 {
			l.entries = make([]string, 0, n)
		}
	}
}
