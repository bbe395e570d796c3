// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/wirepack/wirepack/cmd/wirepack/cli"
	"github.com/wirepack/wirepack/lib/digest"
)

func digestCommand() *cli.Command {
	var inputPath string
	var verify string

	return &cli.Command{
		Name:    "digest",
		Summary: "compute the BLAKE3 digest of a wire payload",
		Description: "Digest prints the hex BLAKE3 digest of the input bytes. With\n" +
			"--verify it instead compares against an expected digest and exits 1\n" +
			"on mismatch, for integrity-checking encoded files in scripts.",
		Usage: "wirepack digest [--input FILE] [--verify HEX]",
		Examples: []cli.Example{
			{
				Description: "digest a file",
				Command:     "wirepack digest --input data.bin",
			},
			{
				Description: "verify a previously recorded digest",
				Command:     "wirepack digest --input data.bin --verify 9f86d08...",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("digest", pflag.ContinueOnError)
			flags.StringVar(&inputPath, "input", "-", "input file (\"-\" for stdin)")
			flags.StringVar(&verify, "verify", "", "expected hex digest to compare against")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			input, err := openInput(inputPath)
			if err != nil {
				return err
			}
			defer input.Close()

			computed, err := digest.SumReader(input)
			if err != nil {
				return err
			}

			if verify == "" {
				fmt.Println(digest.Format(computed))
				return nil
			}

			expected, err := digest.Parse(verify)
			if err != nil {
				return err
			}
			if computed != expected {
				fmt.Printf("mismatch: got %s, want %s\n", digest.Format(computed), digest.Format(expected))
				return &cli.ExitError{Code: 1}
			}
			fmt.Println("ok")
			return nil
		},
	}
}
