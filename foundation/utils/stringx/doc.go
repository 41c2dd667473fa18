// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides trimming, literal predicates and bounded
//              substitution on terminated byte buffers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Trim and predicate functions on bounded buffers
// - 2026-10-16 v0.2.0: Replace into a bounded destination

// Package stringx provides string operations on caller-owned bounded buffers.
//
// Package: stringx
// Title: Trim, Predicates and Replace for Bounded Buffers
// Description: The functions in this package work on the same buffer model as
//              package bufx: a []byte whose content ends at the first NUL byte,
//              or at the end of the slice when there is none.
//
// Overview
//
// A nil slice is the null string. The predicates never dereference it: Matches
// reports false for nil, IsEmpty reports true, and every other function treats
// nil as an empty buffer and hands it back unchanged.
//
// Views and in-place edits
//
// LTrim and CutPrefix return a view that starts later in the same buffer. They
// never write. RTrim and CutSuffix shorten the content by writing terminators
// into the caller's buffer, so the caller must own that storage:
//
//	buf := []byte(" \t Hello \n\x00")
//	s := stringx.Trim(buf, " \t\n")
//	// bufx.String(s) == "Hello"
//
// Replace
//
// Replace substitutes every non-overlapping occurrence of a pattern and writes
// the result into a bounded destination. When the result does not fit the
// function returns an error with code TRUNCATED; the destination then holds a
// terminated prefix that the caller must not rely on.
//
//	out := make([]byte, 64)
//	if err := stringx.Replace(out, "a-b-c", "-", "::"); err != nil {
//	    return err
//	}
//	// bufx.String(out) == "a::b::c"
//
// Thread Safety
//
// The functions keep no state. A buffer that one goroutine edits with RTrim,
// CutSuffix or Replace must not be read by another goroutine at the same time.
package stringx
