// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/tickets/cmd/ticket/cli"
	"github.com/bureau-foundation/tickets/lib/sealed"
)

func keygenCommand() *cli.Command {
	return &cli.Command{
		Name:    "keygen",
		Summary: "Generate an age keypair for sealed tickets",
		Description: `Generate a new age x25519 keypair.

The public key goes to stdout (share it with anyone who should seal
tickets to you). The private key goes to stderr so that redirecting
stdout captures only the shareable half:

  ticket keygen 2>key.txt`,
		Usage: "ticket keygen",
		Run: func(args []string) error {
			return runKeygen()
		},
	}
}

func runKeygen() error {
	keypair, err := sealed.GenerateKeypair()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "# Private key (keep this secret):\n")
	fmt.Fprintf(os.Stderr, "%s\n", keypair.PrivateKey)
	fmt.Fprintf(os.Stdout, "%s\n", keypair.PublicKey)
	return nil
}
