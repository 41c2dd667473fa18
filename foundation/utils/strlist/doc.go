// File: doc.go
// Title: Package Documentation for strlist
// Description: Package strlist provides an owned, ordered list of strings
//              built by splitting or by explicit insertion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package strlist provides an owned, ordered collection of strings.
//
// A List is either empty or populated. Add and Split populate it, Remove and
// Clear drain it. Every entry is an independent copy of the text it was made
// from, so the source of a Split may be reused as soon as the call returns.
//
// Splitting
//
// Split cuts a source at every occurrence of a multi-byte delimiter. Adjacent
// delimiters produce empty entries and a delimiter at the end produces a
// trailing empty entry:
//
//	Split("one two three", " ")  // ["one" "two" "three"]
//	Split("a,,b", ",")           // ["a" "" "b"]
//	Split("a,", ",")             // ["a" ""]
//	Split("abc", ",")            // ["abc"]
//	Split("", ",")               // []
//
// Budgets
//
// A List can be limited with WithMaxEntries and WithMaxBytes. An Add that
// would exceed a limit fails with ALLOCATION_FAILED and leaves the list as it
// was. A Split that hits a limit clears the list before it reports the error.
//
// Thread Safety
//
// A List is not safe for concurrent mutation. Callers that share one must
// synchronize access themselves.
package strlist
