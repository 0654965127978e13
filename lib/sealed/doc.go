// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealed provides confidential ticket sharing. A plain ticket
// string reveals a peer's identity and network addresses to every
// transport it crosses; sealing wraps the ticket in age x25519
// encryption so it can ride public channels (issue trackers, group
// chats, pastebins) readable only by the intended recipients.
//
// Sealing operates on the serialized string form, so any registered
// ticket kind can be sealed. Ciphertext is base64-encoded for the
// same single-line copy-paste transport guarantees as the tickets
// themselves.
//
// This package handles short-lived addressing tokens, not long-term
// credentials: keys are plain strings, and key storage discipline is
// the caller's concern.
package sealed
