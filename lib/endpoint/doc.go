// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package endpoint provides the addressing types for reaching a peer —
// identity, relay hint, direct socket addresses — and the endpoint
// ticket that packages them into a shareable string.
//
// An [Addr] is the complete addressing picture for one peer: the
// 32-byte [ID] derived from its Ed25519 key (required), an optional
// [RelayURL] naming a rendezvous service, and a set of direct
// [netip.AddrPort] values. The network layer produces Addr values;
// this package only packages and unpackages them.
//
// A [Ticket] wraps an Addr for sharing. Its string form starts with
// the literal "endpoint" followed by the base32-encoded wire payload;
// the wire payload is a varint revision discriminant followed by the
// revision's CBOR encoding. Direct addresses are serialized in a
// canonical sorted order, so the same logical Addr always produces
// identical bytes and identical strings.
//
// Tickets embedded in other serialized structures adapt to the
// carrying format: text-oriented formats (JSON via TextMarshaler,
// YAML via yaml.Marshaler) carry the shareable string, while binary
// CBOR carries the structured payload directly with no textual
// envelope. The choice follows from the interface the framework
// consumes — never from inspecting the data.
package endpoint
