// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"strings"
	"testing"
)

// testID returns a deterministic non-zero identity for tests.
func testID(t *testing.T, seed byte) ID {
	t.Helper()
	raw := make([]byte, IDLength)
	for i := range raw {
		raw[i] = seed + byte(i)
	}
	if raw[0] == 0 {
		raw[0] = 1
	}
	id, err := IDFromBytes(raw)
	if err != nil {
		t.Fatalf("IDFromBytes: %v", err)
	}
	return id
}

func TestIDStringRoundtrip(t *testing.T) {
	t.Parallel()

	id := testID(t, 0x01)
	s := id.String()

	if len(s) != idStringLength {
		t.Errorf("String() length = %d, want %d", len(s), idStringLength)
	}
	if s != strings.ToLower(s) {
		t.Errorf("String() = %q is not lowercase", s)
	}

	parsed, err := ParseID(s)
	if err != nil {
		t.Fatalf("ParseID(%q): %v", s, err)
	}
	if parsed != id {
		t.Errorf("roundtrip mismatch: %v != %v", parsed, id)
	}

	// Case-insensitive parsing: uppercase input, same identity.
	parsed, err = ParseID(strings.ToUpper(s))
	if err != nil {
		t.Fatalf("ParseID(uppercase): %v", err)
	}
	if parsed != id {
		t.Errorf("uppercase roundtrip mismatch: %v != %v", parsed, id)
	}
}

func TestParseIDInvalid(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"tooshort",
		strings.Repeat("a", idStringLength-1),
		strings.Repeat("a", idStringLength+1),
		strings.Repeat("0", idStringLength), // 0 not in alphabet
		strings.Repeat("a", idStringLength), // decodes to all-zero identity
	}
	for _, input := range invalid {
		if _, err := ParseID(input); err == nil {
			t.Errorf("ParseID(%q) = nil, want error", input)
		}
	}
}

func TestIDFromBytes(t *testing.T) {
	t.Parallel()

	if _, err := IDFromBytes(make([]byte, IDLength)); err == nil {
		t.Error("IDFromBytes(all zeros) = nil, want error")
	}
	if _, err := IDFromBytes(make([]byte, 16)); err == nil {
		t.Error("IDFromBytes(16 bytes) = nil, want error")
	}

	raw := bytes.Repeat([]byte{0x42}, IDLength)
	id, err := IDFromBytes(raw)
	if err != nil {
		t.Fatalf("IDFromBytes: %v", err)
	}
	// The ID is a copy, not a view.
	raw[0] = 0xff
	if id[0] != 0x42 {
		t.Error("ID aliases the input slice")
	}
}

func TestIDFromPublicKey(t *testing.T) {
	t.Parallel()

	publicKey, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	id, err := IDFromPublicKey(publicKey)
	if err != nil {
		t.Fatalf("IDFromPublicKey: %v", err)
	}
	if !bytes.Equal(id.PublicKey(), publicKey) {
		t.Error("PublicKey() does not round-trip the key bytes")
	}
}

func TestIDShort(t *testing.T) {
	t.Parallel()

	id := testID(t, 0x07)
	short := id.Short()
	if len(short) != 10 {
		t.Errorf("Short() length = %d, want 10", len(short))
	}
	if !strings.HasPrefix(id.String(), short) {
		t.Errorf("Short() = %q is not a prefix of String() = %q", short, id.String())
	}
}

func TestIDJSON(t *testing.T) {
	t.Parallel()

	id := testID(t, 0x11)
	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `"` + id.String() + `"`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded ID
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != id {
		t.Errorf("JSON roundtrip mismatch: %v != %v", decoded, id)
	}

	if _, err := json.Marshal(ID{}); err == nil {
		t.Error("Marshal of zero ID succeeded, want error")
	}
}
