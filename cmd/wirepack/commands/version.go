// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/wirepack/wirepack/cmd/wirepack/cli"
	"github.com/wirepack/wirepack/lib/version"
)

func versionCommand() *cli.Command {
	var full bool

	return &cli.Command{
		Name:    "version",
		Summary: "print version information",
		Usage:   "wirepack version [--full]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("version", pflag.ContinueOnError)
			flags.BoolVar(&full, "full", false, "include Go version and platform")
			return flags
		},
		Run: func(args []string) error {
			if full {
				fmt.Println(version.Full())
			} else {
				fmt.Printf("wirepack %s\n", version.Info())
			}
			return nil
		},
	}
}
