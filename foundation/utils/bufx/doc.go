// File: doc.go
// Title: Package Documentation for bufx
// Description: Package bufx implements truncation-aware copy, concatenation and
//              formatting into fixed-capacity, caller-owned byte buffers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package bufx provides bounded string-buffer operations.
//
// Package: bufx
// Title: Bounded Buffer Operations for boundstr Foundation
// Description: Safe replacements for strcpy, strcat and sprintf that work on a
//              caller-owned []byte whose length is its capacity. The buffer is
//              never grown or reallocated.
//
// Buffers
//
// A buffer is any []byte owned by the caller. Its capacity is len(buf). The
// content of a buffer is every byte before the first NUL (0x00), or the whole
// slice when it holds no NUL. Source strings follow the same rule: a NUL inside
// a source ends it.
//
// Truncation Contract
//
// Every mutating operation:
//   - writes at most len(dst)-1 content bytes and always writes a terminator;
//   - returns the would-be length, i.e. the length the content would have
//     without the capacity limit.
//
// Truncation happened if and only if the result is greater than len(dst)-1:
//
//	buf := make([]byte, 16)
//	n, err := bufx.Copy(buf, "0foobar1foobar2foobar3")
//	if err != nil {
//		// len(buf) == 0
//	}
//	if bufx.Truncated(n, len(buf)) {
//		// buf holds the first 15 bytes, n == 22
//	}
//
// A zero-capacity buffer cannot hold a terminator. Copy, Concat, Format,
// FormatAppend and NewBuilder reject it with an INVALID_CAPACITY error and
// write nothing.
//
// Concatenation
//
// Concat and FormatAppend find the current end of content without reading past
// len(dst). When the content already fills the buffer (no terminator inside
// the capacity) they return 0 and leave the buffer alone.
//
// Builder
//
// Builder chains appends into one buffer while tracking the content length, so
// repeated appends do not rescan the buffer. It implements io.Writer and can be
// handed to fmt.Fprintf.
//
// Thread Safety
//
// Functions hold no state. A buffer or Builder must not be mutated from more
// than one goroutine at a time.
package bufx
