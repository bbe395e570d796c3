// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the wirepack command tree.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/wirepack/wirepack/cmd/wirepack/cli"
)

// Root returns the root of the wirepack command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "wirepack",
		Summary: "encode, decode, and verify wirepack binary streams",
		Description: "wirepack works with a flat binary wire format of untagged primitives:\n" +
			"4-byte big-endian integers, 8-byte little-endian IEEE-754 doubles, and\n" +
			"length-prefixed text atoms. The format carries no type tags, so decoding\n" +
			"requires a YAML schema describing the value sequence.",
		Subcommands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
			digestCommand(),
			versionCommand(),
		},
	}
}

// openInput opens path for reading; "-" means stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return file, nil
}

// openOutput opens path for writing, truncating any existing file;
// "-" means stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	return file, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
