// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticket defines the shareable token contract: a versioned
// binary payload wrapped in a kind-tagged, text-safe string that is
// safe to paste into chat, email, or a DM.
//
// A ticket type implements the [Ticket] interface (a stable kind tag
// plus binary marshaling). The package supplies the two layers every
// ticket shares, so that concrete types differ only in their kind and
// payload shape:
//
//   - The textual envelope: [Serialize] produces the kind tag followed
//     by the unpadded lowercase base32 encoding of the binary payload;
//     [Deserialize] reverses it, rejecting mismatched kinds.
//   - The wire envelope: [EncodeEnvelope] prefixes a payload with an
//     unsigned-varint revision discriminant; [DecodeEnvelope] splits
//     it back apart. Revisions are only ever added, never redefined,
//     so an old decoder always detects a future revision and rejects
//     it cleanly instead of misparsing it.
//
// Every parse failure wraps one of the package's sentinel errors
// (ErrUnknownKind, ErrInvalidEncoding, ErrUnsupportedRevision,
// ErrMalformedPayload, ErrTrailingData), so callers can react to the
// failure class with errors.Is without string matching.
//
// All operations are pure and allocate only local buffers; every
// function is safe for concurrent use.
package ticket
