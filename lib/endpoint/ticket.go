// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"fmt"
	"net/netip"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/tickets/lib/codec"
	"github.com/bureau-foundation/tickets/lib/ticket"
)

// Kind is the endpoint ticket's kind tag: the literal prefix of every
// serialized endpoint ticket. Stable forever.
const Kind = "endpoint"

// currentRevision is the wire revision this package writes. Decoding
// supports every revision ever shipped; encoding always uses the
// newest. Revisions are only added, never redefined.
const currentRevision = 0

// Address family tags in the revision-0 wire payload.
const (
	familyIPv4 = 4
	familyIPv6 = 6
)

func init() {
	ticket.Register(Kind, func() ticket.Ticket { return new(Ticket) })
}

// Ticket is a shareable token carrying the addressing information for
// one endpoint. Construct with [NewTicket]; parse with
// ticket.Deserialize (or ticket.Parse via the kind registry). The
// zero value is only useful as a deserialization target.
type Ticket struct {
	addr Addr
}

// NewTicket creates a ticket for the given addressing information.
// The identity is required; relay and direct addresses may be empty.
// The Addr is canonicalized on the way in, so the ticket's encoding
// depends only on the logical addressing content.
func NewTicket(addr Addr) (*Ticket, error) {
	if addr.ID.IsZero() {
		return nil, fmt.Errorf("endpoint: ticket requires an endpoint identity")
	}
	return &Ticket{addr: addr.Canonical()}, nil
}

// Addr returns the addressing information this ticket carries, in
// canonical form. The returned value shares no mutable state with
// the ticket.
func (t *Ticket) Addr() Addr {
	addr := t.addr
	addr.DirectAddrs = slices.Clone(addr.DirectAddrs)
	return addr
}

// Kind returns the endpoint ticket kind tag.
func (t *Ticket) Kind() string { return Kind }

// String returns the shareable string form. A ticket constructed by
// NewTicket or a successful parse always has a string form; the
// zero value formats as "".
func (t *Ticket) String() string {
	s, err := ticket.Serialize(t)
	if err != nil {
		return ""
	}
	return s
}

// wireAddrV0 is the revision-0 payload. Field numbers are part of the
// wire format; never renumber or reuse them.
type wireAddrV0 struct {
	Identity []byte       `cbor:"1,keyasint"`
	Relay    string       `cbor:"2,keyasint,omitempty"`
	Addrs    []wireSockV0 `cbor:"3,keyasint,omitempty"`
}

// wireSockV0 is one direct address in the revision-0 payload: an
// explicit family tag, the raw IP bytes (4 or 16), and the port.
type wireSockV0 struct {
	Family uint8  `cbor:"1,keyasint"`
	IP     []byte `cbor:"2,keyasint"`
	Port   uint16 `cbor:"3,keyasint"`
}

// MarshalBinary returns the wire envelope: the current revision's
// varint discriminant followed by its CBOR payload. Deterministic:
// the same logical Addr always yields the same bytes.
func (t *Ticket) MarshalBinary() ([]byte, error) {
	payload, err := t.marshalPayload()
	if err != nil {
		return nil, err
	}
	return ticket.EncodeEnvelope(currentRevision, payload), nil
}

// UnmarshalBinary decodes a wire envelope of any supported revision.
func (t *Ticket) UnmarshalBinary(data []byte) error {
	revision, payload, err := ticket.DecodeEnvelope(data)
	if err != nil {
		return err
	}
	switch revision {
	case 0:
		return t.unmarshalPayloadV0(payload)
	default:
		return fmt.Errorf("endpoint: wire revision %d: %w", revision, ticket.ErrUnsupportedRevision)
	}
}

// marshalPayload encodes the current revision's CBOR payload (no
// envelope). Also the binary-embedded form used by MarshalCBOR.
func (t *Ticket) marshalPayload() ([]byte, error) {
	if t.addr.ID.IsZero() {
		return nil, fmt.Errorf("endpoint: ticket has no endpoint identity")
	}

	canonical := t.addr.Canonical()
	wire := wireAddrV0{
		Identity: canonical.ID[:],
		Relay:    canonical.Relay.String(),
	}
	for _, addrPort := range canonical.DirectAddrs {
		sock, err := sockToWire(addrPort)
		if err != nil {
			return nil, err
		}
		wire.Addrs = append(wire.Addrs, sock)
	}

	payload, err := codec.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("endpoint: encoding wire payload: %w", err)
	}
	return payload, nil
}

// unmarshalPayloadV0 decodes and validates a revision-0 CBOR payload.
func (t *Ticket) unmarshalPayloadV0(payload []byte) error {
	var wire wireAddrV0
	if err := codec.Unmarshal(payload, &wire); err != nil {
		if codec.IsExtraneousData(err) {
			return fmt.Errorf("endpoint: %v: %w", err, ticket.ErrTrailingData)
		}
		return fmt.Errorf("endpoint: decoding wire payload: %v: %w", err, ticket.ErrMalformedPayload)
	}

	id, err := IDFromBytes(wire.Identity)
	if err != nil {
		return fmt.Errorf("endpoint: %v: %w", err, ticket.ErrMalformedPayload)
	}

	var relay RelayURL
	if wire.Relay != "" {
		relay, err = ParseRelayURL(wire.Relay)
		if err != nil {
			return fmt.Errorf("endpoint: %v: %w", err, ticket.ErrMalformedPayload)
		}
	}

	directAddrs := make([]netip.AddrPort, 0, len(wire.Addrs))
	for _, sock := range wire.Addrs {
		addrPort, err := sockFromWire(sock)
		if err != nil {
			return fmt.Errorf("endpoint: %v: %w", err, ticket.ErrMalformedPayload)
		}
		directAddrs = append(directAddrs, addrPort)
	}

	t.addr = Addr{ID: id, Relay: relay, DirectAddrs: directAddrs}.Canonical()
	return nil
}

// sockToWire converts a canonical address/port pair to its wire form.
func sockToWire(addrPort netip.AddrPort) (wireSockV0, error) {
	addr := addrPort.Addr()
	switch {
	case addr.Is4():
		ip := addr.As4()
		return wireSockV0{Family: familyIPv4, IP: ip[:], Port: addrPort.Port()}, nil
	case addr.Is6():
		ip := addr.As16()
		return wireSockV0{Family: familyIPv6, IP: ip[:], Port: addrPort.Port()}, nil
	default:
		return wireSockV0{}, fmt.Errorf("endpoint: direct address %v has no family", addrPort)
	}
}

// sockFromWire validates a wire address against its claimed family
// tag and reconstructs the address/port pair.
func sockFromWire(sock wireSockV0) (netip.AddrPort, error) {
	switch sock.Family {
	case familyIPv4:
		if len(sock.IP) != 4 {
			return netip.AddrPort{}, fmt.Errorf("IPv4 direct address has %d bytes, want 4", len(sock.IP))
		}
		return netip.AddrPortFrom(netip.AddrFrom4([4]byte(sock.IP)), sock.Port), nil
	case familyIPv6:
		if len(sock.IP) != 16 {
			return netip.AddrPort{}, fmt.Errorf("IPv6 direct address has %d bytes, want 16", len(sock.IP))
		}
		return netip.AddrPortFrom(netip.AddrFrom16([16]byte(sock.IP)), sock.Port), nil
	default:
		return netip.AddrPort{}, fmt.Errorf("direct address has unknown family tag %d", sock.Family)
	}
}

// MarshalText implements encoding.TextMarshaler. Text-oriented
// interchange formats (JSON and anything else that consumes
// TextMarshaler) carry the shareable string form.
func (t *Ticket) MarshalText() ([]byte, error) {
	s, err := ticket.Serialize(t)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Ticket) UnmarshalText(data []byte) error {
	return ticket.Deserialize(t, string(data))
}

// MarshalCBOR implements cbor.Marshaler. Binary interchange carries
// the structured payload directly — no kind tag, no base32, no
// revision envelope — so machine-to-machine formats pay no textual
// overhead. Symmetric with UnmarshalCBOR.
func (t *Ticket) MarshalCBOR() ([]byte, error) {
	return t.marshalPayload()
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (t *Ticket) UnmarshalCBOR(data []byte) error {
	return t.unmarshalPayloadV0(data)
}

// MarshalYAML implements yaml.Marshaler. YAML is human-oriented, so
// it carries the shareable string form, same as JSON.
func (t *Ticket) MarshalYAML() (any, error) {
	return ticket.Serialize(t)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Ticket) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return ticket.Deserialize(t, s)
}
