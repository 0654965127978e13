// Copyright 2026 The Bureau Authors
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
		Name: "ticket",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(args []string) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "inspect",
				Run: func(args []string) error {
					called = "inspect"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"inspect"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "inspect" {
		t.Errorf("dispatched to %q, want %q", called, "inspect")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "ticket",
		Subcommands: []*Command{
			{
				Name: "seal",
				Subcommands: []*Command{
					{
						Name: "keygen",
						Run: func(args []string) error {
							called = "seal keygen"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"seal", "keygen", "extra-arg"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "seal keygen" {
		t.Errorf("dispatched to %q, want %q", called, "seal keygen")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra-arg" {
		t.Errorf("args = %v, want [extra-arg]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var relay string
	var target string

	command := &Command{
		Name: "create",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flagSet.StringVar(&relay, "relay", "", "relay URL")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--relay", "https://relay.example", "positional"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if relay != "https://relay.example" {
		t.Errorf("relay = %q, want %q", relay, "https://relay.example")
	}
	if target != "positional" {
		t.Errorf("target = %q, want %q", target, "positional")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "create",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flagSet.String("identity", "", "endpoint identity")
			flagSet.String("relay", "", "relay URL")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--realy", "https://relay.example"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --relay") {
		t.Errorf("error = %q, want suggestion for '--relay'", errStr)
	}
	if !strings.Contains(errStr, "realy") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "create",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flagSet.String("identity", "", "endpoint identity")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "ticket",
		Subcommands: []*Command{
			{Name: "create"},
			{Name: "inspect"},
			{Name: "version"},
		},
	}

	err := root.Execute([]string{"inpsect"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"inspect\"") {
		t.Errorf("error = %q, want suggestion for 'inspect'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "ticket",
		Subcommands: []*Command{
			{Name: "create"},
			{Name: "inspect"},
		},
	}

	err := root.Execute([]string{"zzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "ticket",
				Summary: "Endpoint ticket operations",
				Subcommands: []*Command{
					{Name: "create", Summary: "Create an endpoint ticket"},
				},
			}

			err := root.Execute([]string{helpArg})
			if err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "ticket",
		Subcommands: []*Command{
			{Name: "create", Summary: "Create an endpoint ticket"},
		},
	}

	err := root.Execute([]string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "ticket",
		Description: "Create, inspect, and seal endpoint tickets.",
		Subcommands: []*Command{
			{Name: "create", Summary: "Create an endpoint ticket"},
			{Name: "inspect", Summary: "Decode and display a ticket"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Inspect a ticket from the command line",
				Command:     "ticket inspect endpointabc123",
			},
			{
				Description: "Create a ticket from a JSONC address file",
				Command:     "ticket create --from addr.jsonc",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	// Verify structural elements are present.
	for _, want := range []string{
		"Create, inspect, and seal endpoint tickets.",
		"Usage:",
		"ticket <command> [flags]",
		"Commands:",
		"create",
		"Create an endpoint ticket",
		"inspect",
		"Decode and display a ticket",
		"Examples:",
		"ticket inspect endpointabc123",
		"ticket create --from addr.jsonc",
		"Run 'ticket <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	command := &Command{
		Name:    "create",
		Summary: "Create an endpoint ticket",
		Usage:   "ticket create [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flagSet.String("identity", "", "endpoint identity")
			flagSet.String("relay", "", "relay URL")
			return flagSet
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"ticket create [flags]",
		"Flags:",
		"identity",
		"relay",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "ticket"}
	seal := &Command{Name: "seal", parent: root}
	keygen := &Command{Name: "keygen", parent: seal}

	if got := root.fullName(); got != "ticket" {
		t.Errorf("root.fullName() = %q, want %q", got, "ticket")
	}
	if got := seal.fullName(); got != "ticket seal" {
		t.Errorf("seal.fullName() = %q, want %q", got, "ticket seal")
	}
	if got := keygen.fullName(); got != "ticket seal keygen" {
		t.Errorf("keygen.fullName() = %q, want %q", got, "ticket seal keygen")
	}
}
