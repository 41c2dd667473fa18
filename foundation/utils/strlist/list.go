// File: list.go
// Title: Owned String List
// Description: Implements List with Add, Remove, Split, ToArray and Clear,
//              including the allocation budget and split rollback.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package strlist

import (
	"iter"
	"slices"
	"strings"

	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
	"github.com/msto63/boundstr/foundation/utils/bufx"
)

// List is an ordered collection of owned strings. The zero value is an
// empty list without limits.
type List struct {
	entries    []string
	size       int // total bytes held
	maxEntries int
	maxBytes   int
}

// New returns an empty list configured by opts.
func New(opts ...Option) *List {
	l := &List{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Split returns a new list holding the pieces of source between occurrences
// of sep.
func Split(source, sep string, opts ...Option) (*List, error) {
	l := New(opts...)
	if _, err := l.Split(source, sep); err != nil {
		return nil, err
	}
	return l, nil
}

// Split clears the list and fills it with the pieces of source between
// occurrences of sep. It returns the number of entries produced.
//
// An empty source yields no entries. A source without sep yields one entry.
// If the budget runs out part way, the list is cleared and the error is
// returned with a count of zero.
func (l *List) Split(source, sep string) (int, error) {
	if sep == "" {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleStrlist, "split", sep, "non-empty delimiter")
	}

	l.Clear()
	source = bufx.Content(source)
	if source == "" {
		return 0, nil
	}

	for {
		piece, rest, found := strings.Cut(source, sep)
		if err := l.add("split", piece); err != nil {
			l.Clear()
			return 0, err
		}
		if !found {
			break
		}
		source = rest
	}
	return len(l.entries), nil
}

// Add appends an owned copy of value. When a budget would be exceeded the
// list is left unchanged and an ALLOCATION_FAILED error is returned.
func (l *List) Add(value string) error {
	return l.add("add", bufx.Content(value))
}

func (l *List) add(op, value string) error {
	if l.maxEntries > 0 && len(l.entries)+1 > l.maxEntries {
		return mdwerrors.AllocationFailed(mdwerrors.ModuleStrlist, op, "max_entries", l.maxEntries)
	}
	if l.maxBytes > 0 && l.size+len(value) > l.maxBytes {
		return mdwerrors.AllocationFailed(mdwerrors.ModuleStrlist, op, "max_bytes", l.maxBytes)
	}

	l.entries = append(l.entries, strings.Clone(value))
	l.size += len(value)
	return nil
}

// Remove deletes every entry equal to value and returns how many were removed.
func (l *List) Remove(value string) int {
	before := len(l.entries)
	l.entries = slices.DeleteFunc(l.entries, func(e string) bool {
		if e == value {
			l.size -= len(e)
			return true
		}
		return false
	})
	return before - len(l.entries)
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Size returns the total byte length of all entries.
func (l *List) Size() int {
	return l.size
}

// ToArray copies up to len(out) entries into out, in list order, and returns
// the number written. Entries beyond len(out) are skipped silently.
func (l *List) ToArray(out []string) int {
	return copy(out, l.entries)
}

// Values returns a copy of all entries.
func (l *List) Values() []string {
	return slices.Clone(l.entries)
}

// At returns the entry at index i.
func (l *List) At(i int) (string, bool) {
	if i < 0 || i >= len(l.entries) {
		return "", false
	}
	return l.entries[i], true
}

// Contains reports whether an entry equals value.
func (l *List) Contains(value string) bool {
	return slices.Contains(l.entries, value)
}

// All iterates over index and entry in list order.
func (l *List) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Clear releases every entry. Calling it on an empty list does nothing.
func (l *List) Clear() {
	clear(l.entries)
	l.entries = l.entries[:0]
	l.size = 0
}

// Join concatenates the entries with sep between them.
func (l *List) Join(sep string) string {
	return strings.Join(l.entries, sep)
}
