// File: bufx_test.go
// Title: Unit Tests for Bounded Copy and Concatenation
// Description: Tests for Copy, Concat and the buffer helpers, including the
//              truncation contract for every capacity of a set of sources.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package bufx

import (
	"bytes"
	"strings"
	"testing"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
)

var sources = []string{
	"",
	"a",
	"0foobar1foobar2",
	"0foobar1foobar2foobar3foobar4",
}

// terminated reports whether buf holds a terminator within its capacity.
func terminated(buf []byte) bool {
	return bytes.IndexByte(buf, Terminator) >= 0
}

func TestCopyContract(t *testing.T) {
	for _, src := range sources {
		for c := 1; c <= 40; c++ {
			dst := bytes.Repeat([]byte{'#'}, c)
			n, err := Copy(dst, src)
			if err != nil {
				t.Fatalf("Copy(cap=%d, %q) error = %v", c, src, err)
			}
			if n != len(src) {
				t.Errorf("Copy(cap=%d, %q) = %d; want %d", c, src, n, len(src))
			}
			if !terminated(dst) {
				t.Errorf("Copy(cap=%d, %q) left buffer unterminated", c, src)
			}
			want := src[:min(len(src), c-1)]
			if got := String(dst); got != want {
				t.Errorf("Copy(cap=%d, %q) content = %q; want %q", c, src, got, want)
			}
			if Truncated(n, c) != (len(src) > c-1) {
				t.Errorf("Truncated(%d, %d) disagrees with content", n, c)
			}
		}
	}
}

func TestCopyIdempotent(t *testing.T) {
	for _, src := range sources {
		once := make([]byte, 8)
		twice := make([]byte, 8)
		_, _ = Copy(once, src)
		_, _ = Copy(twice, src)
		_, _ = Copy(twice, src)
		if !bytes.Equal(once, twice) {
			t.Errorf("Copy(%q) twice = %q; once = %q", src, twice, once)
		}
	}
}

func TestCopyEmptySource(t *testing.T) {
	buf := []byte("  d  \x00")
	n, err := Copy(buf, "")
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if n != 0 || String(buf) != "" {
		t.Errorf("Copy(\"\") = %d, %q; want 0, \"\"", n, String(buf))
	}
}

func TestCopyStopsAtNUL(t *testing.T) {
	buf := make([]byte, 16)
	n, _ := Copy(buf, "abc\x00def")
	if n != 3 || String(buf) != "abc" {
		t.Errorf("Copy(embedded NUL) = %d, %q; want 3, \"abc\"", n, String(buf))
	}
}

func TestCopyOnlyTouchesDestination(t *testing.T) {
	backing := bytes.Repeat([]byte{'#'}, 12)
	dst := backing[2:6]
	_, _ = Copy(dst, "abcdefgh")
	if string(backing[:2]) != "##" || string(backing[6:]) != "######" {
		t.Errorf("Copy wrote outside dst: %q", backing)
	}
	if string(dst) != "abc\x00" {
		t.Errorf("dst = %q; want %q", dst, "abc\x00")
	}
}

func TestZeroCapacity(t *testing.T) {
	var dst []byte
	ops := map[string]func() (int, error){
		"copy":          func() (int, error) { return Copy(dst, "x") },
		"concat":        func() (int, error) { return Concat(dst, "x") },
		"format":        func() (int, error) { return Format(dst, "%d", 1) },
		"format_append": func() (int, error) { return FormatAppend(dst, "%d", 1) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			n, err := op()
			if n != 0 {
				t.Errorf("n = %d; want 0", n)
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidCapacity) {
				t.Errorf("err = %v; want INVALID_CAPACITY", err)
			}
		})
	}

	if _, err := NewBuilder(make([]byte, 0, 8)); !mdwerror.HasCode(err, mdwerror.CodeInvalidCapacity) {
		t.Errorf("NewBuilder(zero) err = %v", err)
	}
}

func TestConcatContract(t *testing.T) {
	for _, prefix := range []string{"", "ab", "0123456"} {
		for _, src := range sources {
			for c := len(prefix) + 1; c <= 40; c++ {
				dst := bytes.Repeat([]byte{'#'}, c)
				_, _ = Copy(dst, prefix)

				n, err := Concat(dst, src)
				if err != nil {
					t.Fatalf("Concat() error = %v", err)
				}
				if n != len(prefix)+len(src) {
					t.Errorf("Concat(cap=%d, %q+%q) = %d; want %d", c, prefix, src, n, len(prefix)+len(src))
				}
				want := prefix + src[:min(len(src), c-1-len(prefix))]
				if got := String(dst); got != want {
					t.Errorf("Concat(cap=%d, %q+%q) content = %q; want %q", c, prefix, src, got, want)
				}
				if !terminated(dst) {
					t.Errorf("Concat(cap=%d) left buffer unterminated", c)
				}
			}
		}
	}
}

func TestConcatRepeatedScenario(t *testing.T) {
	buf := make([]byte, 16)
	wants := []struct {
		n       int
		content string
	}{
		{5, "12345"},
		{10, "1234512345"},
		{15, "123451234512345"},
		{20, "123451234512345"},
	}

	for i, w := range wants {
		n, err := Concat(buf, "12345")
		if err != nil {
			t.Fatalf("append %d: error = %v", i+1, err)
		}
		if n != w.n {
			t.Errorf("append %d: n = %d; want %d", i+1, n, w.n)
		}
		if got := String(buf); got != w.content {
			t.Errorf("append %d: content = %q; want %q", i+1, got, w.content)
		}
		if buf[15] != Terminator {
			t.Errorf("append %d: last byte %q is not a terminator", i+1, buf[15])
		}
	}
	if !Truncated(20, len(buf)) {
		t.Error("fourth append must be reported as truncated")
	}
}

func TestConcatFullBuffer(t *testing.T) {
	buf := []byte("abcd")
	n, err := Concat(buf, "x")
	if err != nil {
		t.Fatalf("Concat() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Concat(full) = %d; want 0", n)
	}
	if string(buf) != "abcd" {
		t.Errorf("Concat(full) changed buffer to %q", buf)
	}
}

func TestConcatEmptySource(t *testing.T) {
	buf := make([]byte, 16)
	_, _ = Copy(buf, "  d  ")
	n, err := Concat(buf, "")
	if err != nil || n != 5 || String(buf) != "  d  " {
		t.Errorf("Concat(\"\") = %d, %v, %q", n, err, String(buf))
	}
}

func TestLenAndRemaining(t *testing.T) {
	tests := []struct {
		name      string
		buf       []byte
		len       int
		remaining int
	}{
		{"nil", nil, 0, 0},
		{"no terminator", []byte("abc"), 3, 0},
		{"terminated", []byte("ab\x00\x00\x00"), 2, 2},
		{"empty content", []byte{0, 'x', 'y'}, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Len(tt.buf); got != tt.len {
				t.Errorf("Len() = %d; want %d", got, tt.len)
			}
			if got := Remaining(tt.buf); got != tt.remaining {
				t.Errorf("Remaining() = %d; want %d", got, tt.remaining)
			}
		})
	}
}

func TestContent(t *testing.T) {
	if got := Content("ab\x00cd"); got != "ab" {
		t.Errorf("Content() = %q; want %q", got, "ab")
	}
	if got := Content("abcd"); got != "abcd" {
		t.Errorf("Content() = %q; want %q", got, "abcd")
	}
}

func TestTruncated(t *testing.T) {
	tests := []struct {
		n, capacity int
		want        bool
	}{
		{0, 1, false},
		{1, 1, true},
		{15, 16, false},
		{16, 16, true},
		{20, 16, true},
	}
	for _, tt := range tests {
		if got := Truncated(tt.n, tt.capacity); got != tt.want {
			t.Errorf("Truncated(%d, %d) = %v; want %v", tt.n, tt.capacity, got, tt.want)
		}
	}
}

func TestCopyLargeSource(t *testing.T) {
	src := strings.Repeat("x", 4096)
	buf := make([]byte, 64)
	n, _ := Copy(buf, src)
	if n != 4096 || Len(buf) != 63 {
		t.Errorf("Copy(4096) = %d, len %d; want 4096, 63", n, Len(buf))
	}
}
