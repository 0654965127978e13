// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tickets/cmd/ticket/cli"
	"github.com/bureau-foundation/tickets/lib/sealed"
	"github.com/bureau-foundation/tickets/lib/ticket"
)

// sealParams holds the flag values for "ticket seal".
type sealParams struct {
	recipients []string
}

func sealCommand() *cli.Command {
	var params sealParams

	return &cli.Command{
		Name:    "seal",
		Summary: "Encrypt a ticket to age recipients",
		Description: `Encrypt a ticket so only the named recipients can read it.

The ticket is parsed first, so a malformed ticket is rejected before
sealing rather than producing a sealed blob nobody can use. Multiple
--recipient flags seal to multiple keys; any one matching private key
can open the result.`,
		Usage: "ticket seal --recipient <age1...> <ticket>",
		Examples: []cli.Example{
			{
				Description: "Seal a ticket to one recipient",
				Command:     "ticket seal --recipient age1abc... endpointabc...",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("seal", pflag.ContinueOnError)
			flagSet.StringArrayVar(&params.recipients, "recipient", nil, "age public key (repeatable)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one ticket argument")
			}
			return runSeal(args[0], params)
		},
	}
}

func runSeal(serialized string, params sealParams) error {
	if len(params.recipients) == 0 {
		return fmt.Errorf("at least one --recipient is required")
	}

	parsed, err := ticket.Parse(strings.TrimSpace(serialized))
	if err != nil {
		return err
	}

	sealedTicket, err := sealed.Seal(parsed, params.recipients)
	if err != nil {
		return err
	}

	fmt.Println(sealedTicket)
	return nil
}

// openParams holds the flag values for "ticket open".
type openParams struct {
	keyFile string
}

func openCommand() *cli.Command {
	var params openParams

	return &cli.Command{
		Name:    "open",
		Summary: "Decrypt a sealed ticket",
		Description: `Decrypt a sealed ticket and print the ticket inside.

The private key is read from a file rather than the command line so it
never appears in shell history or the process list.`,
		Usage: "ticket open --key-file <path> <sealed-ticket>",
		Examples: []cli.Example{
			{
				Description: "Open a sealed ticket with a key saved by keygen",
				Command:     "ticket open --key-file ~/.config/ticket/key.txt <sealed>",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("open", pflag.ContinueOnError)
			flagSet.StringVar(&params.keyFile, "key-file", "", "file containing the age private key")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one sealed-ticket argument")
			}
			return runOpen(args[0], params)
		},
	}
}

func runOpen(sealedTicket string, params openParams) error {
	if params.keyFile == "" {
		return fmt.Errorf("--key-file is required")
	}

	keyData, err := os.ReadFile(params.keyFile)
	if err != nil {
		return fmt.Errorf("reading key file: %w", err)
	}
	privateKey := strings.TrimSpace(string(keyData))

	serialized, err := sealed.OpenString(strings.TrimSpace(sealedTicket), privateKey)
	if err != nil {
		return err
	}

	fmt.Println(serialized)
	return nil
}
