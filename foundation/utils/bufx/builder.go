// File: builder.go
// Title: Bounded Builder
// Description: Builder appends into one fixed buffer, remembers where the
//              content ends and accumulates the would-be length across calls.
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

// Builder appends to a caller-owned buffer without ever growing it.
//
// The buffer is terminated after every call. Len reports the would-be length
// of everything written so far; Truncated reports whether any of it was lost.
type Builder struct {
	buf []byte
	pos int // content bytes stored
	n   int // would-be length
}

// NewBuilder returns a Builder that starts with an empty buffer.
func NewBuilder(buf []byte) (*Builder, error) {
	if len(buf) == 0 {
		return nil, mdwerrors.ZeroCapacity(mdwerrors.ModuleBufx, "builder")
	}
	buf[0] = Terminator
	return &Builder{buf: buf}, nil
}

// AppendBuilder returns a Builder that continues after the content already in
// buf. A buffer without a terminator counts as full.
func AppendBuilder(buf []byte) (*Builder, error) {
	if len(buf) == 0 {
		return nil, mdwerrors.ZeroCapacity(mdwerrors.ModuleBufx, "builder")
	}
	dlen := Len(buf)
	return &Builder{buf: buf, pos: dlen, n: dlen}, nil
}

// Write appends p verbatim. It implements io.Writer and never fails; bytes
// that do not fit are counted but dropped.
func (b *Builder) Write(p []byte) (int, error) {
	if room := len(b.buf) - 1 - b.pos; room > 0 && b.pos == b.n {
		w := min(room, len(p))
		copy(b.buf[b.pos:], p[:w])
		b.pos += w
		b.buf[b.pos] = Terminator
	}
	b.n += len(p)
	return len(p), nil
}

// WriteString appends the content of s (up to its first NUL) with Concat
// semantics. It implements io.StringWriter and never fails.
func (b *Builder) WriteString(s string) (int, error) {
	s = Content(s)
	if b.pos == b.n && b.pos < len(b.buf) {
		w := boundedWrite(b.buf[b.pos:], s)
		b.pos += min(w, len(b.buf)-1-b.pos)
	}
	b.n += len(s)
	return len(s), nil
}

// Printf appends formatted output and returns the formatted length.
func (b *Builder) Printf(format string, args ...interface{}) int {
	n, _ := fmt.Fprintf(b, format, args...)
	return n
}

// Len returns the would-be length of the content.
func (b *Builder) Len() int {
	return b.n
}

// Cap returns the capacity of the underlying buffer.
func (b *Builder) Cap() int {
	return len(b.buf)
}

// Truncated reports whether any appended byte was dropped.
func (b *Builder) Truncated() bool {
	return Truncated(b.n, len(b.buf))
}

// Bytes returns the stored content, without the terminator.
func (b *Builder) Bytes() []byte {
	return b.buf[:b.pos]
}

// String returns a copy of the stored content.
func (b *Builder) String() string {
	return string(b.buf[:b.pos])
}

// Reset empties the buffer.
func (b *Builder) Reset() {
	b.pos, b.n = 0, 0
	b.buf[0] = Terminator
}
