//go:build !unix

package cmd

import "github.com/spf13/cobra"

// file I/O is built on unix descriptors
func addFileCommand(*cobra.Command, *app) {}
