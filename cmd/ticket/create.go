// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/tickets/cmd/ticket/cli"
	"github.com/bureau-foundation/tickets/lib/endpoint"
	"github.com/bureau-foundation/tickets/lib/ticket"
)

// createParams holds the flag values for "ticket create".
type createParams struct {
	identity string
	relay    string
	addrs    []string
	fromFile string
}

func createCommand() *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create",
		Summary: "Create an endpoint ticket",
		Description: `Create an endpoint ticket from addressing information.

The endpoint identity is required. Relay URL and direct socket
addresses are optional, but a ticket with neither is not dialable by
anyone who does not already know the endpoint's location.

With --from, addressing is read from a JSONC file (JSON with comments
and trailing commas) instead of flags. The file uses the same field
names as the ticket's JSON form:

  {
    "id": "<52-char base32 identity>",
    "relay": "https://relay.example",
    "direct_addrs": ["192.0.2.1:4433"],
  }`,
		Usage: "ticket create [flags]",
		Examples: []cli.Example{
			{
				Description: "Relay-only ticket",
				Command:     "ticket create --identity <base32-id> --relay https://relay.example",
			},
			{
				Description: "Relay plus two direct addresses",
				Command:     "ticket create --identity <base32-id> --relay https://relay.example --addr 192.0.2.1:4433 --addr '[2001:db8::1]:4433'",
			},
			{
				Description: "From a JSONC addressing file",
				Command:     "ticket create --from addr.jsonc",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flagSet.StringVar(&params.identity, "identity", "", "endpoint identity (52-char base32)")
			flagSet.StringVar(&params.relay, "relay", "", "relay URL (http or https)")
			flagSet.StringArrayVar(&params.addrs, "addr", nil, "direct socket address (host:port, repeatable)")
			flagSet.StringVar(&params.fromFile, "from", "", "read addressing from a JSONC file")
			return flagSet
		},
		Run: func(args []string) error {
			return runCreate(params)
		},
	}
}

func runCreate(params createParams) error {
	var addr endpoint.Addr

	if params.fromFile != "" {
		if params.identity != "" || params.relay != "" || len(params.addrs) > 0 {
			return fmt.Errorf("--from cannot be combined with --identity, --relay, or --addr")
		}
		parsed, err := parseAddrFile(params.fromFile)
		if err != nil {
			return err
		}
		addr = parsed
	} else {
		if params.identity == "" {
			return fmt.Errorf("--identity is required (or use --from)")
		}
		id, err := endpoint.ParseID(params.identity)
		if err != nil {
			return fmt.Errorf("parsing --identity: %w", err)
		}
		addr.ID = id

		if params.relay != "" {
			relay, err := endpoint.ParseRelayURL(params.relay)
			if err != nil {
				return fmt.Errorf("parsing --relay: %w", err)
			}
			addr.Relay = relay
		}

		for _, raw := range params.addrs {
			addrPort, err := netip.ParseAddrPort(raw)
			if err != nil {
				return fmt.Errorf("parsing --addr %q: %w", raw, err)
			}
			addr.DirectAddrs = append(addr.DirectAddrs, addrPort)
		}
	}

	endpointTicket, err := endpoint.NewTicket(addr)
	if err != nil {
		return err
	}

	serialized, err := ticket.Serialize(endpointTicket)
	if err != nil {
		return err
	}

	fmt.Println(serialized)
	return nil
}

// parseAddrFile reads a JSONC addressing file and parses it into an
// Addr. JSONC is stripped to plain JSON first, so // comments, block
// comments, and trailing commas are accepted.
func parseAddrFile(path string) (endpoint.Addr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return endpoint.Addr{}, fmt.Errorf("reading addressing file: %w", err)
	}

	var addr endpoint.Addr
	if err := json.Unmarshal(jsonc.ToJSON(data), &addr); err != nil {
		return endpoint.Addr{}, fmt.Errorf("parsing addressing file %s: %w", path, err)
	}
	return addr, nil
}
