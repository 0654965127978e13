// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"encoding/base32"
	"fmt"
	"strings"
)

// base32Alphabet is the RFC 4648 base32 alphabet, lowercased. This is
// a compatibility-relevant constant: changing it invalidates every
// ticket ever issued. Lowercase keeps tickets visually uniform with
// their kind tags; the alphabet omits 0, 1, 8, and 9, so the encoding
// survives the usual o/0 and l/1 transcription confusions.
const base32Alphabet = "abcdefghijklmnopqrstuvwxyz234567"

// Base32 is the text-safe encoding used for ticket bodies and for the
// canonical string form of endpoint identities: unpadded lowercase
// RFC 4648 base32.
var Base32 = base32.NewEncoding(base32Alphabet).WithPadding(base32.NoPadding)

// encodeBody encodes wire envelope bytes as the ticket body text.
func encodeBody(data []byte) string {
	return Base32.EncodeToString(data)
}

// decodeBody decodes a ticket body back into wire envelope bytes.
// Input is lowercased first: the alphabet is case-insensitive-safe,
// and tickets routinely pass through transports that mangle case
// (mail clients, URL fragments, OCR).
func decodeBody(body string) ([]byte, error) {
	data, err := Base32.DecodeString(strings.ToLower(body))
	if err != nil {
		return nil, fmt.Errorf("ticket: decoding body: %v: %w", err, ErrInvalidEncoding)
	}
	return data, nil
}
