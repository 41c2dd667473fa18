// File: format.go
// Title: Bounded Formatting
// Description: Format and FormatAppend, the snprintf replacements. Output goes
//              through a Builder so it is clamped to the buffer and always
//              terminated.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package bufx

import (
	"fmt"

	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
)

// Format formats args according to format (fmt verbs) into dst.
//
// dst is always terminated. The result is the full formatted length whether or
// not it fit; it is -1 together with an ENCODING error if the formatter fails,
// in which case dst holds the empty string.
func Format(dst []byte, format string, args ...interface{}) (int, error) {
	if len(dst) == 0 {
		return 0, mdwerrors.ZeroCapacity(mdwerrors.ModuleBufx, "format")
	}
	return formatAt(dst, 0, format, args...)
}

// FormatAppend formats args after the content already in dst. It returns the
// existing length plus the formatted length, or the existing length alone when
// formatting fails. A buffer with no room for a terminator is left unchanged
// and 0 is returned, as with Concat.
func FormatAppend(dst []byte, format string, args ...interface{}) (int, error) {
	if len(dst) == 0 {
		return 0, mdwerrors.ZeroCapacity(mdwerrors.ModuleBufx, "format_append")
	}

	dlen := Len(dst)
	if dlen == len(dst) {
		return 0, nil
	}
	n, err := formatAt(dst, dlen, format, args...)
	if err != nil {
		return dlen, err
	}
	return dlen + n, nil
}

// formatAt formats into dst starting at off and returns the formatted length.
func formatAt(dst []byte, off int, format string, args ...interface{}) (int, error) {
	b := &Builder{buf: dst, pos: off, n: off}
	dst[off] = Terminator

	// fmt reports an error only when the writer fails
	if _, err := fmt.Fprintf(b, format, args...); err != nil {
		dst[off] = Terminator
		return -1, mdwerrors.Encoding(mdwerrors.ModuleBufx, "format", err)
	}
	return b.n - off, nil
}
