// Package main provides the leapfmt command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/leapfmt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
