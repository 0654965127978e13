// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import "errors"

// Sentinel errors for the parse failure taxonomy. Every decode or
// parse failure returned by this package — and by concrete ticket
// types — wraps exactly one of these, so callers can branch on the
// failure class with errors.Is (prompt for re-entry on a typo, abort
// on a version mismatch) without inspecting message text.
var (
	// ErrUnknownKind means the textual parse saw a kind tag that does
	// not match the ticket type being parsed (or, for registry
	// dispatch, any registered type).
	ErrUnknownKind = errors.New("ticket: unknown ticket kind")

	// ErrInvalidEncoding means the body after the kind tag is not
	// valid unpadded base32 (bad character or impossible length).
	ErrInvalidEncoding = errors.New("ticket: invalid text encoding")

	// ErrUnsupportedRevision means the wire envelope carries a
	// revision discriminant this decoder does not implement. The
	// payload may be perfectly well formed for a newer revision;
	// it is rejected rather than guessed at.
	ErrUnsupportedRevision = errors.New("ticket: unsupported wire revision")

	// ErrMalformedPayload means the binary payload is structurally
	// invalid for its claimed revision: truncated fields, an invalid
	// address family tag, a missing identity.
	ErrMalformedPayload = errors.New("ticket: malformed payload")

	// ErrTrailingData means a payload decoded successfully but
	// unconsumed bytes remained. Treated as an error to defend
	// against concatenation and framing bugs.
	ErrTrailingData = errors.New("ticket: trailing data after payload")
)
