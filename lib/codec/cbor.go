// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical data always
// produces identical bytes — the foundation of the ticket wire
// format's reproducibility guarantee.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
// Unknown fields are silently ignored so that a revision can add
// fields without breaking older decoders of the same revision.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Identifier types implementing encoding.TextMarshaler
	// (endpoint.ID, endpoint.RelayURL) serialize as CBOR text strings
	// via MarshalText. Without this, struct fields with unexported
	// data would serialize as empty CBOR maps, losing their identity.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Wire payloads never use non-string map keys outside of
		// keyasint structs. When the decoder's target is any (the
		// CLI's inspect path decodes unknown payloads generically),
		// it must pick a concrete Go map type; the CBOR default of
		// map[interface{}]interface{} is incompatible with
		// encoding/json output.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		// Mirrors the TextMarshaler setting above for round-trip
		// correctness of identifier types.
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v. The data must contain exactly
// one CBOR item: trailing bytes after a well-formed item produce an
// error for which IsExtraneousData reports true.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// IsExtraneousData reports whether err indicates that well-formed CBOR
// was followed by unconsumed bytes. Ticket decoders map this condition
// to their trailing-data error rather than treating it as a generic
// malformed payload, so callers can distinguish concatenation and
// truncation bugs from corruption.
func IsExtraneousData(err error) bool {
	var extraneous *cbor.ExtraneousDataError
	return errors.As(err, &extraneous)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data. Used by the CLI to render wire payloads of
// unknown or future revisions.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
