// File: replace_test.go
// Title: Unit Tests for Bounded Substitution
// Description: Tests for Replace covering substitution, overflow and
//              degenerate patterns.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package stringx

import (
	"strings"
	"testing"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
	"github.com/msto63/boundstr/foundation/utils/bufx"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		from     string
		to       string
		expected string
	}{
		{"single", "hello world", "world", "there", "hello there"},
		{"every occurrence", "a-b-c", "-", "::", "a::b::c"},
		{"non overlapping", "aaaa", "aa", "b", "bb"},
		{"no match", "abc", "x", "y", "abc"},
		{"delete", "a, b, c", ", ", "", "abc"},
		{"empty from copies", "abc", "", "x", "abc"},
		{"match at ends", "xabcx", "x", "[]", "[]abc[]"},
		{"empty haystack", "", "x", "y", ""},
		{"whole haystack", "abc", "abc", "z", "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 32)
			if err := Replace(dst, tt.haystack, tt.from, tt.to); err != nil {
				t.Fatalf("Replace() error = %v", err)
			}
			if got := bufx.String(dst); got != tt.expected {
				t.Errorf("Replace(%q, %q, %q) = %q; want %q", tt.haystack, tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestReplaceExactFit(t *testing.T) {
	dst := make([]byte, len("a::b::c")+1)
	if err := Replace(dst, "a-b-c", "-", "::"); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if got := bufx.String(dst); got != "a::b::c" {
		t.Errorf("Replace() = %q", got)
	}
}

func TestReplaceTruncated(t *testing.T) {
	dst := make([]byte, 8)
	err := Replace(dst, "a-b-c-d", "-", "<sep>")

	if !mdwerror.HasCode(err, mdwerror.CodeTruncated) {
		t.Fatalf("Replace() error = %v; want TRUNCATED", err)
	}
	if bufx.Len(dst) == len(dst) {
		t.Error("Replace() left destination unterminated")
	}

	var e *mdwerror.Error
	if !asError(err, &e) {
		t.Fatal("expected *error.Error")
	}
	if needed, _ := e.Detail("needed"); needed != len("a<sep>b<sep>c<sep>d") {
		t.Errorf("needed = %v; want %d", needed, len("a<sep>b<sep>c<sep>d"))
	}
}

func TestReplaceZeroCapacity(t *testing.T) {
	err := Replace(nil, "abc", "b", "x")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidCapacity) {
		t.Errorf("Replace(nil dst) error = %v; want INVALID_CAPACITY", err)
	}
}

func TestReplaceLongHaystack(t *testing.T) {
	haystack := strings.Repeat("ab", 500)
	dst := make([]byte, 1001)
	if err := Replace(dst, haystack, "b", "c"); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if got := bufx.String(dst); got != strings.Repeat("ac", 500) {
		t.Errorf("Replace() produced %d bytes", len(got))
	}
}

func asError(err error, target **mdwerror.Error) bool {
	e, ok := err.(*mdwerror.Error)
	if ok {
		*target = e
	}
	return ok
}
