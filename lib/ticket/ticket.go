// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"fmt"
	"strings"
)

// maxKindLength bounds kind tags. Tags are meant to be short,
// recognizable prefixes ("endpoint", "sealed"), not namespaces.
const maxKindLength = 16

// Ticket is implemented by every shareable token type. A concrete
// type supplies its stable kind tag and its binary wire encoding;
// the string forms are provided uniformly by [Serialize] and
// [Deserialize] and are never reimplemented per type, so every
// ticket behaves identically except for its kind and payload shape.
//
// Implementations must treat MarshalBinary as the canonical encoding:
// the same logical content must always produce identical bytes.
type Ticket interface {
	// Kind returns the ticket's stable kind tag: a short, non-empty
	// ASCII lowercase-letter literal that prefixes the serialized
	// string. A kind is bound 1:1 to a ticket type within a process
	// (enforced by Register) and must never change once shipped.
	Kind() string

	// MarshalBinary returns the wire envelope bytes: the current
	// revision discriminant followed by the revision payload.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary decodes wire envelope bytes produced by any
	// revision the type supports. Failures wrap a sentinel from this
	// package's error taxonomy.
	UnmarshalBinary(data []byte) error
}

// Serialize returns the shareable string form of t: the kind tag
// immediately followed by the base32-encoded binary payload. The
// result is a single line of lowercase ASCII with no padding and no
// separator — safe for text-only transports.
func Serialize(t Ticket) (string, error) {
	kind := t.Kind()
	if err := ValidateKind(kind); err != nil {
		return "", err
	}
	data, err := t.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("ticket: encoding %s ticket: %w", kind, err)
	}
	return kind + encodeBody(data), nil
}

// Deserialize parses s into t. The kind tag must equal t.Kind()
// exactly (ErrUnknownKind otherwise); the body must be valid base32
// (ErrInvalidEncoding otherwise); the decoded bytes are handed to
// t.UnmarshalBinary. On error t is left in an unspecified state and
// must not be used.
func Deserialize(t Ticket, s string) error {
	kind := t.Kind()
	if err := ValidateKind(kind); err != nil {
		return err
	}
	body, found := strings.CutPrefix(s, kind)
	if !found {
		return fmt.Errorf("ticket: expected kind %q: %w", kind, ErrUnknownKind)
	}
	data, err := decodeBody(body)
	if err != nil {
		return err
	}
	return t.UnmarshalBinary(data)
}

// ValidateKind checks that kind is a usable ticket kind tag:
// non-empty, at most 16 bytes, ASCII lowercase letters only. Letters
// only (no digits) keeps tags visually distinct from the base32 body,
// which mixes letters and digits 2-7.
func ValidateKind(kind string) error {
	if kind == "" {
		return fmt.Errorf("ticket: empty kind tag")
	}
	if len(kind) > maxKindLength {
		return fmt.Errorf("ticket: kind tag %q exceeds %d bytes", kind, maxKindLength)
	}
	for i := 0; i < len(kind); i++ {
		if kind[i] < 'a' || kind[i] > 'z' {
			return fmt.Errorf("ticket: kind tag %q contains %q, want ASCII lowercase letters", kind, kind[i])
		}
	}
	return nil
}
