// Package main is the entry point for the loctok CLI tool.
package main

import (
	"os"

	"github.com/loctok/loctok/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
