// File: example_test.go
// Title: Example Tests for bufx Package Documentation
// Description: Executable examples for the bounded buffer operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package bufx_test

import (
	"fmt"

	"github.com/msto63/boundstr/foundation/utils/bufx"
)

func ExampleCopy() {
	buf := make([]byte, 8)
	n, _ := bufx.Copy(buf, "hello world")
	fmt.Println(n, bufx.String(buf), bufx.Truncated(n, len(buf)))
	// Output:
	// 11 hello w true
}

func ExampleConcat() {
	buf := make([]byte, 16)
	var n int
	for i := 0; i < 4; i++ {
		n, _ = bufx.Concat(buf, "12345")
	}
	fmt.Println(n, bufx.String(buf))
	// Output:
	// 20 123451234512345
}

func ExampleFormat() {
	buf := make([]byte, 6)
	n, _ := bufx.Format(buf, "%d-%d", 1234, 5678)
	fmt.Println(n, bufx.String(buf))
	// Output:
	// 9 1234-
}

func ExampleBuilder() {
	buf := make([]byte, 32)
	b, _ := bufx.NewBuilder(buf)
	b.WriteString("GET ")
	b.Printf("/items/%d", 7)
	fmt.Println(b.String(), b.Truncated())
	// Output:
	// GET /items/7 false
}
