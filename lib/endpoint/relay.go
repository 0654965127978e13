// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"fmt"
	"net/url"
	"strings"
)

// RelayURL names the relay/rendezvous service through which an
// endpoint can be reached when no direct address works. It is an
// immutable, validated value type; the zero value means "no relay
// hint" and is valid wherever a relay is optional.
//
// Construction normalizes the URL (lowercased host, "/" default
// path) so that two RelayURLs naming the same service compare equal
// with == and encode to identical bytes.
type RelayURL struct {
	url string
}

// ParseRelayURL validates and normalizes a relay URL string. The URL
// must be absolute with an http or https scheme and a non-empty host.
// An empty input is an error; use the zero value for "no relay".
func ParseRelayURL(raw string) (RelayURL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RelayURL{}, fmt.Errorf("empty relay URL")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return RelayURL{}, fmt.Errorf("parsing relay URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return RelayURL{}, fmt.Errorf("relay URL scheme is %q, want http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return RelayURL{}, fmt.Errorf("relay URL %q has no host", raw)
	}

	// DNS names are case-insensitive; pin one casing so equal relays
	// have equal canonical strings.
	parsed.Host = strings.ToLower(parsed.Host)
	if parsed.Path == "" {
		parsed.Path = "/"
	}

	return RelayURL{url: parsed.String()}, nil
}

// MustParseRelayURL is like ParseRelayURL but panics on error. Use in
// tests and static initialization where the input is known-valid.
func MustParseRelayURL(raw string) RelayURL {
	relay, err := ParseRelayURL(raw)
	if err != nil {
		panic(fmt.Sprintf("endpoint.MustParseRelayURL(%q): %v", raw, err))
	}
	return relay
}

// String returns the normalized URL, or "" for the zero value.
func (r RelayURL) String() string { return r.url }

// IsZero reports whether the RelayURL is the zero value (no relay).
func (r RelayURL) IsZero() bool { return r.url == "" }

// MarshalText implements encoding.TextMarshaler. The zero value
// marshals as empty (relay hints are optional).
func (r RelayURL) MarshalText() ([]byte, error) {
	return []byte(r.url), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value.
func (r *RelayURL) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*r = RelayURL{}
		return nil
	}
	parsed, err := ParseRelayURL(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
