// File: bufx.go
// Title: Buffer Inspection Helpers and Bounded Write Primitive
// Description: Length helpers shared by every bounded operation and the
//              single write primitive that copies, clamps and terminates.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package bufx

import (
	"bytes"
	"strings"
)

// Terminator ends the content of a buffer.
const Terminator byte = 0

// Len returns the content length of buf: the index of the first terminator,
// or len(buf) when there is none. It never reads past len(buf).
func Len(buf []byte) int {
	if i := bytes.IndexByte(buf, Terminator); i >= 0 {
		return i
	}
	return len(buf)
}

// String returns a copy of the content of buf.
func String(buf []byte) string {
	return string(buf[:Len(buf)])
}

// Content returns the part of s before its first NUL byte.
func Content(s string) string {
	if i := strings.IndexByte(s, Terminator); i >= 0 {
		return s[:i]
	}
	return s
}

// Truncated reports whether a would-be length n did not fit in a buffer of the
// given capacity.
func Truncated(n, capacity int) bool {
	return n > capacity-1
}

// Remaining returns how many more content bytes buf can take.
func Remaining(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	return max(len(buf)-1-Len(buf), 0)
}

// boundedWrite copies the content of src into dst, clamped to len(dst)-1
// bytes, and terminates it. dst must not be empty. It returns the full
// content length of src.
func boundedWrite(dst []byte, src string) int {
	src = Content(src)
	w := min(len(src), len(dst)-1)
	copy(dst, src[:w])
	dst[w] = Terminator
	return len(src)
}
