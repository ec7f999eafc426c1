// Package main is the entrypoint for the dirlist CLI.
package main

import (
	"os"

	"github.com/akfite/dirlist/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
