package main

import (
	"os"

	"github.com/msto63/boundstr/cmd/boundstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
