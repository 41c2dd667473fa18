// File: trim.go
// Title: Charset Trimming on Bounded Buffers
// Description: LTrim returns a view past a leading charset run, RTrim writes
//              terminators over a trailing run, Trim does both.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/boundstr/foundation/utils/bufx"
)

// DefaultCharset is the whitespace set trimmed when no charset is configured.
const DefaultCharset = " \t\n\r"

func inCharset(c byte, charset string) bool {
	return strings.IndexByte(charset, c) >= 0
}

// LTrim returns the view of buf starting at the first content byte not in
// charset. When every byte is in charset the view starts at the terminator.
// buf is never modified.
func LTrim(buf []byte, charset string) []byte {
	n := bufx.Len(buf)
	i := 0
	for i < n && inCharset(buf[i], charset) {
		i++
	}
	if i == 0 {
		return buf
	}
	return buf[i:]
}

// RTrim overwrites the trailing run of charset bytes in buf with terminators
// and returns buf.
func RTrim(buf []byte, charset string) []byte {
	n := bufx.Len(buf)
	end := n
	for end > 0 && inCharset(buf[end-1], charset) {
		end--
	}
	for i := end; i < n; i++ {
		buf[i] = bufx.Terminator
	}
	return buf
}

// Trim applies RTrim and then LTrim. The trailing run is removed from the
// caller's buffer; the returned view skips the leading run.
func Trim(buf []byte, charset string) []byte {
	return LTrim(RTrim(buf, charset), charset)
}
