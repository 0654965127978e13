// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"fmt"

	"github.com/zeebo/blake3"
)

// fingerprintDomainKey is the 32-byte key for BLAKE3 keyed hashing of
// ticket fingerprints. Domain separation ensures ticket fingerprints
// can never collide with hashes of the same bytes computed in another
// context. The byte values are the ASCII encoding of the domain name,
// zero-padded to 32 bytes — readable in hex dumps without sacrificing
// any cryptographic property.
var fingerprintDomainKey = [32]byte{
	't', 'i', 'c', 'k', 'e', 't', '.', 'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r', 'i',
	'n', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// fingerprintLength is the number of digest bytes kept. 10 bytes (16
// base32 characters) is short enough for log lines and long enough
// that accidental collisions are not a practical concern for the
// dedup and display uses fingerprints serve. Fingerprints are not a
// security boundary.
const fingerprintLength = 10

// Fingerprint returns a short, stable identifier for a ticket's
// content: the truncated keyed BLAKE3 digest of the kind tag and the
// canonical binary encoding, in the same lowercase base32 alphabet as
// ticket bodies. Two tickets have equal fingerprints exactly when
// they have the same kind and byte-identical wire encodings.
func Fingerprint(t Ticket) (string, error) {
	data, err := t.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("ticket: fingerprinting %s ticket: %w", t.Kind(), err)
	}

	// NewKeyed only fails for a key that is not exactly 32 bytes,
	// which the array type guarantees.
	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		panic("ticket: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	// The kind participates in the hash (with a separator that cannot
	// appear in a kind tag) so that two ticket types with coinciding
	// payload bytes still fingerprint differently.
	hasher.Write([]byte(t.Kind()))
	hasher.Write([]byte{0})
	hasher.Write(data)

	digest := hasher.Sum(nil)
	return Base32.EncodeToString(digest[:fingerprintLength]), nil
}
