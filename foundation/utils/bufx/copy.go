// File: copy.go
// Title: Safe Copy and Concatenation
// Description: Copy and Concat, the strcpy and strcat replacements. Both report
//              the would-be length so that callers can detect truncation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package bufx

import (
	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
)

// Copy copies src into dst. At most len(dst)-1 bytes are copied and dst is
// always terminated. The result is the full length of src; when it is greater
// than len(dst)-1 the copy was truncated.
//
// Only a zero-capacity dst is an error.
func Copy(dst []byte, src string) (int, error) {
	if len(dst) == 0 {
		return 0, mdwerrors.ZeroCapacity(mdwerrors.ModuleBufx, "copy")
	}
	return boundedWrite(dst, src), nil
}

// Concat appends src to the content already in dst. len(dst) is the total
// size of the buffer, not the space left.
//
// The result is the existing content length plus the full length of src. If
// the existing content leaves no room for a terminator, Concat changes nothing
// and returns 0.
func Concat(dst []byte, src string) (int, error) {
	if len(dst) == 0 {
		return 0, mdwerrors.ZeroCapacity(mdwerrors.ModuleBufx, "concat")
	}

	dlen := Len(dst)
	if dlen == len(dst) {
		return 0, nil
	}
	return dlen + boundedWrite(dst[dlen:], src), nil
}
