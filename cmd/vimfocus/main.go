// Package main is the entry point for the vimfocus command.
package main

import (
	"fmt"
	"os"

	"github.com/dshills/vimfocus/internal/cli"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	cli.Version = version
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
