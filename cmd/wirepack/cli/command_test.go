// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "wirepack",
		Subcommands: []*Command{
			{
				Name: "encode",
				Run: func(args []string) error {
					called = "encode"
					return nil
				},
			},
			{
				Name: "decode",
				Run: func(args []string) error {
					called = "decode"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"decode"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "decode" {
		t.Errorf("dispatched to %q, want %q", called, "decode")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var schemaPath string
	var positional string

	command := &Command{
		Name: "decode",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flagSet.StringVar(&schemaPath, "schema", "", "schema path")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				positional = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--schema", "s.yaml", "extra"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if schemaPath != "s.yaml" {
		t.Errorf("schemaPath = %q, want %q", schemaPath, "s.yaml")
	}
	if positional != "extra" {
		t.Errorf("positional = %q, want %q", positional, "extra")
	}
}

func TestCommand_Execute_UnknownCommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "wirepack",
		Subcommands: []*Command{
			{Name: "encode", Run: func(args []string) error { return nil }},
			{Name: "decode", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"decoed"})
	if err == nil {
		t.Fatal("Execute() with unknown command should fail")
	}
	if !strings.Contains(err.Error(), `did you mean "decode"`) {
		t.Errorf("error %q does not suggest \"decode\"", err.Error())
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "decode",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flagSet.String("schema", "", "schema path")
			flagSet.String("format", "json", "output format")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--shcema", "s.yaml"})
	if err == nil {
		t.Fatal("Execute() with unknown flag should fail")
	}
	if !strings.Contains(err.Error(), "--schema") {
		t.Errorf("error %q does not suggest --schema", err.Error())
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name: "wirepack",
		Subcommands: []*Command{
			{Name: "encode", Run: func(args []string) error { return nil }},
		},
	}

	if err := root.Execute(nil); err == nil {
		t.Error("Execute() with no args and no Run should fail")
	}
}

func TestCommand_PrintHelp_ListsSubcommandsAndExamples(t *testing.T) {
	root := &Command{
		Name:    "wirepack",
		Summary: "binary codec tool",
		Subcommands: []*Command{
			{Name: "encode", Summary: "encode values"},
			{Name: "decode", Summary: "decode a stream"},
		},
	}

	var output bytes.Buffer
	root.PrintHelp(&output)

	help := output.String()
	for _, want := range []string{"encode", "decode", "wirepack <command> --help"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}

	command := &Command{
		Name:    "digest",
		Summary: "compute digest",
		Examples: []Example{
			{Description: "digest a file", Command: "wirepack digest --input data.bin"},
		},
	}
	output.Reset()
	command.PrintHelp(&output)
	if !strings.Contains(output.String(), "wirepack digest --input data.bin") {
		t.Errorf("help output missing example:\n%s", output.String())
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"decode", "decode", 0},
		{"decoed", "decode", 2},
		{"encde", "encode", 1},
		{"digest", "decode", 5},
	}

	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
