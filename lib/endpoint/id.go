// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"crypto/ed25519"
	"fmt"

	"github.com/bureau-foundation/tickets/lib/ticket"
)

// IDLength is the size of an endpoint identity in bytes.
const IDLength = 32

// idStringLength is the length of the canonical base32 string form:
// 32 bytes at 5 bits per character, rounded up.
const idStringLength = 52

// ID is the unique identity of an endpoint: the 32 bytes of its
// Ed25519 public key. IDs are plain comparable values, usable as map
// keys and compared with ==.
//
// The canonical external representation is 52 characters of unpadded
// lowercase base32 (the same alphabet as ticket bodies). The zero
// value is not a valid identity anywhere in this module: an address
// without an identity is an error, never a partial value.
type ID [IDLength]byte

// IDFromBytes validates and copies a raw 32-byte identity.
func IDFromBytes(b []byte) (ID, error) {
	if len(b) != IDLength {
		return ID{}, fmt.Errorf("endpoint identity is %d bytes, want %d", len(b), IDLength)
	}
	var id ID
	copy(id[:], b)
	if id.IsZero() {
		return ID{}, fmt.Errorf("endpoint identity is all zeros")
	}
	return id, nil
}

// IDFromPublicKey derives the identity for an Ed25519 public key.
func IDFromPublicKey(key ed25519.PublicKey) (ID, error) {
	return IDFromBytes(key)
}

// ParseID parses the canonical base32 string form of an identity.
// Parsing is case-insensitive; the canonical form is lowercase.
func ParseID(s string) (ID, error) {
	if len(s) != idStringLength {
		return ID{}, fmt.Errorf("endpoint identity string is %d characters, want %d", len(s), idStringLength)
	}
	decoded, err := decodeIDText(s)
	if err != nil {
		return ID{}, err
	}
	return IDFromBytes(decoded)
}

// MustParseID is like ParseID but panics on error. Use in tests and
// static initialization where the input is known-valid.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(fmt.Sprintf("endpoint.MustParseID(%q): %v", s, err))
	}
	return id
}

// String returns the canonical lowercase base32 form (52 characters).
// The zero value formats as "" so it is visibly wrong in output.
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return ticket.Base32.EncodeToString(id[:])
}

// Short returns a truncated identity for log lines: the first 10
// characters of the canonical form.
func (id ID) Short() string {
	s := id.String()
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// PublicKey returns the identity as an Ed25519 public key.
func (id ID) PublicKey() ed25519.PublicKey {
	return ed25519.PublicKey(id[:])
}

// IsZero reports whether the ID is the (invalid) zero value.
func (id ID) IsZero() bool {
	return id == ID{}
}

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats. The zero value is an error, not
// an empty string: an identity is never optional.
func (id ID) MarshalText() ([]byte, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("cannot marshal zero endpoint identity")
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := ParseID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// decodeIDText lowercases and base32-decodes an identity string.
func decodeIDText(s string) ([]byte, error) {
	decoded, err := ticket.Base32.DecodeString(lowerASCII(s))
	if err != nil {
		return nil, fmt.Errorf("decoding endpoint identity: %v", err)
	}
	return decoded, nil
}

// lowerASCII lowercases ASCII letters without the unicode machinery
// of strings.ToLower. Identity strings are pure ASCII by contract.
func lowerASCII(s string) string {
	lowered := []byte(s)
	for i, c := range lowered {
		if c >= 'A' && c <= 'Z' {
			lowered[i] = c + ('a' - 'A')
		}
	}
	return string(lowered)
}
