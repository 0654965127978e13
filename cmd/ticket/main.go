// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/tickets/cmd/ticket/cli"
	"github.com/bureau-foundation/tickets/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return rootCommand().Execute(os.Args[1:])
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name: "ticket",
		Description: `Ticket: create, inspect, and seal endpoint tickets.

Tickets are self-contained dialing instructions: a single copyable
token that names an endpoint and how to reach it (relay URL and direct
socket addresses). The token is a kind tag followed by the base32
encoding of a versioned binary payload.`,
		Subcommands: []*cli.Command{
			createCommand(),
			inspectCommand(),
			sealCommand(),
			openCommand(),
			keygenCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("ticket %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Create a ticket for an endpoint reachable via a relay",
				Command:     "ticket create --identity <base32-id> --relay https://relay.example",
			},
			{
				Description: "Create a ticket from a JSONC addressing file",
				Command:     "ticket create --from addr.jsonc",
			},
			{
				Description: "Inspect a ticket (any registered kind)",
				Command:     "ticket inspect endpointabc...",
			},
			{
				Description: "Seal a ticket to an age recipient",
				Command:     "ticket seal --recipient age1... endpointabc...",
			},
		},
	}
}
