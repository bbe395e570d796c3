// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/wirepack/wirepack/cmd/wirepack/cli"
	"github.com/wirepack/wirepack/lib/codec"
	"github.com/wirepack/wirepack/lib/schema"
	"github.com/wirepack/wirepack/lib/stream"
)

func decodeCommand() *cli.Command {
	var schemaPath string
	var inputPath string
	var format string

	return &cli.Command{
		Name:    "decode",
		Summary: "decode a binary wire stream using a YAML schema",
		Description: "Decode reads a wire stream and applies the schema's operations in\n" +
			"order. Output is JSON by default; --format selects yaml for human\n" +
			"inspection or cbor for deterministic machine-readable bytes.",
		Usage: "wirepack decode --schema FILE [--input FILE] [--format json|yaml|cbor]",
		Examples: []cli.Example{
			{
				Description: "decode a file to JSON",
				Command:     "wirepack decode --schema schema.yaml --input data.bin",
			},
			{
				Description: "decode stdin to deterministic CBOR",
				Command:     "wirepack decode --schema schema.yaml --format cbor < data.bin",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flags.StringVar(&schemaPath, "schema", "", "YAML schema describing the value sequence (required)")
			flags.StringVar(&inputPath, "input", "-", "input file (\"-\" for stdin)")
			flags.StringVar(&format, "format", "json", "output format: json, yaml, or cbor")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			if schemaPath == "" {
				return fmt.Errorf("--schema is required")
			}

			loaded, err := schema.Load(schemaPath)
			if err != nil {
				return err
			}

			input, err := openInput(inputPath)
			if err != nil {
				return err
			}
			defer input.Close()

			values, err := schema.Decode(stream.NewReader(input), loaded)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", inputPath, err)
			}

			return writeValues(os.Stdout, values, format)
		},
	}
}

// writeValues emits the decoded values to w in the requested format.
func writeValues(w io.Writer, values []schema.Value, format string) error {
	switch format {
	case "json":
		encoded, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(encoded))
		return err
	case "yaml":
		encoded, err := yaml.Marshal(values)
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		_, err = w.Write(encoded)
		return err
	case "cbor":
		encoded, err := codec.Marshal(values)
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		if _, err := w.Write(encoded); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json, yaml, or cbor)", format)
	}
}
