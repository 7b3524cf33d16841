// Package main provides the freqtrade command-line interface.
package main

import (
	"os"

	"github.com/ownermz/freqtrade/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdout, os.Stderr, os.Args[1:]))
}
