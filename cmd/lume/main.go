// Package main is the entry point for the lume CLI.
package main

import (
	"os"

	"github.com/runger/lume/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
