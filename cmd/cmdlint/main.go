// Package main is the entry point for the cmdlint CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/cmdlint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
