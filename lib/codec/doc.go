// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// ticket wire payloads.
//
// Tickets carry a binary payload that must be byte-reproducible: the
// same addressing information always encodes to the same bytes, so a
// ticket can be fingerprinted, deduplicated, and compared by content.
// The encoder therefore uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items.
//
// All ticket packages encode through this package so that the wire
// format is pinned in exactly one place:
//
//	data, err := codec.Marshal(payload)
//	err = codec.Unmarshal(data, &payload)
//
// # Struct Tag Rules
//
// Wire payload structs use `cbor` tags with keyasint field numbers
// (compact, rename-safe). Types that additionally appear in JSON (CLI
// --json output, addressing files) use `json` tags; fxamacker/cbor v2
// reads `json` tags as fallback when `cbor` tags are absent. Never use
// both tags on the same field.
package codec
