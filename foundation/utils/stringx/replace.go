// File: replace.go
// Title: Bounded Substitution
// Description: Replaces every non-overlapping occurrence of a pattern and
//              writes the result into a bounded destination buffer.
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

	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
	"github.com/msto63/boundstr/foundation/utils/bufx"
)

// Replace writes haystack into dst with every non-overlapping occurrence of
// from replaced by to, scanning left to right. An empty from copies haystack
// unchanged.
//
// If the result does not fit, Replace returns a TRUNCATED error carrying the
// needed length. dst is still terminated but its content is unspecified.
func Replace(dst []byte, haystack, from, to string) error {
	if len(dst) == 0 {
		return mdwerrors.ZeroCapacity(mdwerrors.ModuleStringx, "replace")
	}

	b, err := bufx.NewBuilder(dst)
	if err != nil {
		return err
	}

	haystack = bufx.Content(haystack)
	from = bufx.Content(from)
	if from != "" {
		for {
			i := strings.Index(haystack, from)
			if i < 0 {
				break
			}
			_, _ = b.WriteString(haystack[:i])
			_, _ = b.WriteString(to)
			haystack = haystack[i+len(from):]
		}
	}
	_, _ = b.WriteString(haystack)

	if b.Truncated() {
		return mdwerrors.Truncated(mdwerrors.ModuleStringx, "replace", b.Len(), len(dst))
	}
	return nil
}
