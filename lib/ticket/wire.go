// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"fmt"

	"github.com/multiformats/go-varint"
)

// EncodeEnvelope prepends the unsigned-varint revision discriminant to
// a revision payload, producing the wire envelope bytes. Encoders
// always write their current revision — there is no "oldest
// compatible" fallback; compatibility is the decoder's job.
func EncodeEnvelope(revision uint64, payload []byte) []byte {
	header := varint.ToUvarint(revision)
	envelope := make([]byte, 0, len(header)+len(payload))
	envelope = append(envelope, header...)
	return append(envelope, payload...)
}

// DecodeEnvelope splits wire envelope bytes into the revision
// discriminant and the revision payload. It does not interpret the
// payload; dispatching on the revision — and rejecting revisions it
// does not implement with ErrUnsupportedRevision — is the concrete
// ticket type's responsibility.
func DecodeEnvelope(data []byte) (revision uint64, payload []byte, err error) {
	if len(data) == 0 {
		return 0, nil, fmt.Errorf("ticket: empty wire envelope: %w", ErrMalformedPayload)
	}
	revision, n, err := varint.FromUvarint(data)
	if err != nil {
		return 0, nil, fmt.Errorf("ticket: reading revision discriminant: %v: %w", err, ErrMalformedPayload)
	}
	return revision, data[n:], nil
}
