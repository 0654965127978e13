// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"net/netip"
	"slices"
)

// Addr is the complete addressing information for one endpoint. The
// network layer builds an Addr from what it knows about a peer; this
// package packages it into tickets and back. Addr is a plain value —
// copying it is safe, and no field is mutated after construction.
//
// DirectAddrs is a set: order carries no meaning, and duplicates
// collapse. The wire encoding always uses the canonical (sorted,
// deduplicated) order so equal sets encode to equal bytes.
type Addr struct {
	// ID is the endpoint's identity. Required: an Addr with a zero
	// ID cannot be made into a ticket.
	ID ID `json:"id"`

	// Relay optionally names a relay service that can reach the
	// endpoint when no direct address works.
	Relay RelayURL `json:"relay,omitempty"`

	// DirectAddrs are sockets the endpoint is (or was recently)
	// reachable on directly.
	DirectAddrs []netip.AddrPort `json:"direct_addrs,omitempty"`
}

// Canonical returns a copy of the Addr with DirectAddrs normalized:
// 4-in-6 mapped addresses unmapped, host-scoped zones stripped (they
// are meaningless to a remote peer), then sorted and deduplicated.
// The original Addr is not modified.
func (a Addr) Canonical() Addr {
	canonical := a
	canonical.DirectAddrs = make([]netip.AddrPort, 0, len(a.DirectAddrs))
	for _, addrPort := range a.DirectAddrs {
		if !addrPort.IsValid() {
			continue
		}
		addr := addrPort.Addr().Unmap().WithZone("")
		canonical.DirectAddrs = append(canonical.DirectAddrs, netip.AddrPortFrom(addr, addrPort.Port()))
	}
	slices.SortFunc(canonical.DirectAddrs, compareAddrPorts)
	canonical.DirectAddrs = slices.Compact(canonical.DirectAddrs)
	return canonical
}

// Equal reports whether two Addrs describe the same endpoint
// addressing: same identity, same relay, same direct address set
// (ignoring order and duplicates).
func (a Addr) Equal(other Addr) bool {
	left, right := a.Canonical(), other.Canonical()
	return left.ID == right.ID &&
		left.Relay == right.Relay &&
		slices.Equal(left.DirectAddrs, right.DirectAddrs)
}

// compareAddrPorts orders address/port pairs by address, then port.
// This is the canonical wire order.
func compareAddrPorts(a, b netip.AddrPort) int {
	if c := a.Addr().Compare(b.Addr()); c != 0 {
		return c
	}
	switch {
	case a.Port() < b.Port():
		return -1
	case a.Port() > b.Port():
		return 1
	default:
		return 0
	}
}
