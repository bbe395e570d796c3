// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/wirepack/wirepack/cmd/wirepack/commands"
	"github.com/wirepack/wirepack/lib/version"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like digest --verify)
		// return an ExitError with the desired exit code. Don't print
		// a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Handle --version before dispatching, so it works without a
	// subcommand.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("wirepack %s\n", version.Info())
		return nil
	}
	return commands.Root().Execute(os.Args[1:])
}
