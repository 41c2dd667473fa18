// File: stringx.go
// Title: Literal Predicates on Bounded Buffers
// Description: Null-safe prefix, suffix, equality and emptiness tests plus
//              comparison helpers for terminated byte buffers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"bytes"

	"github.com/msto63/boundstr/foundation/utils/bufx"
)

// content returns the bytes of buf before its terminator. nil stays nil.
func content(buf []byte) []byte {
	if buf == nil {
		return nil
	}
	return buf[:bufx.Len(buf)]
}

// IsEmpty reports whether buf is nil or holds no content.
func IsEmpty(buf []byte) bool {
	return bufx.Len(buf) == 0
}

// Matches reports whether the content of buf equals literal byte for byte.
// A nil buffer never matches, not even the empty literal.
func Matches(buf []byte, literal string) bool {
	if buf == nil {
		return false
	}
	return string(content(buf)) == literal
}

// HasPrefix reports whether the content of buf begins with prefix.
func HasPrefix(buf []byte, prefix string) bool {
	c := content(buf)
	return len(c) >= len(prefix) && string(c[:len(prefix)]) == prefix
}

// HasSuffix reports whether the content of buf ends with suffix.
func HasSuffix(buf []byte, suffix string) bool {
	c := content(buf)
	return len(c) >= len(suffix) && string(c[len(c)-len(suffix):]) == suffix
}

// CutPrefix returns the view of buf that follows prefix, or buf itself when
// the content does not begin with prefix.
func CutPrefix(buf []byte, prefix string) []byte {
	if !HasPrefix(buf, prefix) {
		return buf
	}
	return buf[len(prefix):]
}

// CutSuffix terminates buf in front of suffix when the content ends with it.
// The buffer is modified in place and returned.
func CutSuffix(buf []byte, suffix string) []byte {
	if suffix == "" || !HasSuffix(buf, suffix) {
		return buf
	}
	buf[bufx.Len(buf)-len(suffix)] = bufx.Terminator
	return buf
}

// Compare compares the contents of a and b lexicographically and returns -1, 0
// or +1. nil compares like an empty buffer.
func Compare(a, b []byte) int {
	return bytes.Compare(content(a), content(b))
}

// CompareN is Compare limited to the first n bytes of each content.
func CompareN(a, b []byte, n int) int {
	if n <= 0 {
		return 0
	}
	ca, cb := content(a), content(b)
	return bytes.Compare(ca[:min(n, len(ca))], cb[:min(n, len(cb))])
}
