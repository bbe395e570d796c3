// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/wirepack/wirepack/cmd/wirepack/cli"
	"github.com/wirepack/wirepack/lib/schema"
	"github.com/wirepack/wirepack/lib/stream"
)

func encodeCommand() *cli.Command {
	var valuesPath string
	var outputPath string

	return &cli.Command{
		Name:    "encode",
		Summary: "encode a YAML value document to the binary wire format",
		Usage:   "wirepack encode --values FILE [--output FILE]",
		Examples: []cli.Example{
			{
				Description: "encode values to a file",
				Command:     "wirepack encode --values values.yaml --output data.bin",
			},
			{
				Description: "encode to stdout for piping",
				Command:     "wirepack encode --values values.yaml | wirepack digest",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flags.StringVar(&valuesPath, "values", "", "YAML value document to encode (required)")
			flags.StringVar(&outputPath, "output", "-", "output file (\"-\" for stdout)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			if valuesPath == "" {
				return fmt.Errorf("--values is required")
			}

			values, err := schema.LoadValues(valuesPath)
			if err != nil {
				return err
			}

			output, err := openOutput(outputPath)
			if err != nil {
				return err
			}
			defer output.Close()

			if err := schema.Encode(stream.NewWriter(output), values); err != nil {
				return fmt.Errorf("encoding %s: %w", valuesPath, err)
			}
			return output.Close()
		},
	}
}
