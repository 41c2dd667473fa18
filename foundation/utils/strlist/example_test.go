// File: example_test.go
// Title: Example Tests for strlist Package Documentation
// Description: Executable examples for Split and Remove.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package strlist_test

import (
	"fmt"

	"github.com/msto63/boundstr/foundation/utils/strlist"
)

func ExampleSplit() {
	l, err := strlist.Split("a,,b", ",")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(l.Len())
	for i, v := range l.All() {
		fmt.Printf("%d:%q\n", i, v)
	}
	// Output:
	// 3
	// 0:"a"
	// 1:""
	// 2:"b"
}

func ExampleList_Remove() {
	l := strlist.New()
	for _, v := range []string{"allright", "x", "allright"} {
		_ = l.Add(v)
	}
	fmt.Println(l.Remove("allright"), l.Values())
	// Output:
	// 2 [x]
}
