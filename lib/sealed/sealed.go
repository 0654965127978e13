// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sealed

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"filippo.io/age"

	"github.com/bureau-foundation/tickets/lib/ticket"
)

// maxSealedLength bounds the accepted ciphertext. Tickets are tens to
// hundreds of bytes; anything beyond this is not a sealed ticket.
const maxSealedLength = 8 * 1024

// Keypair holds an age x25519 keypair. The public key (age1...) is
// safe to publish; the private key (AGE-SECRET-KEY-1...) must be kept
// by its owner.
type Keypair struct {
	PrivateKey string
	PublicKey  string
}

// GenerateKeypair generates a new age x25519 keypair for receiving
// sealed tickets.
func GenerateKeypair() (*Keypair, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("sealed: generating age keypair: %w", err)
	}
	return &Keypair{
		PrivateKey: identity.String(),
		PublicKey:  identity.Recipient().String(),
	}, nil
}

// ParsePublicKey validates an age public key string. Useful for
// checking keys received out of band before sealing to them.
func ParsePublicKey(publicKey string) error {
	if _, err := age.ParseX25519Recipient(publicKey); err != nil {
		return fmt.Errorf("sealed: invalid age public key: %w", err)
	}
	return nil
}

// Seal serializes t and encrypts the string to one or more recipients
// given by their age public keys. The result is a single line of
// base64. At least one recipient is required.
func Seal(t ticket.Ticket, recipientKeys []string) (string, error) {
	if len(recipientKeys) == 0 {
		return "", fmt.Errorf("sealed: at least one recipient is required")
	}

	serialized, err := ticket.Serialize(t)
	if err != nil {
		return "", fmt.Errorf("sealed: serializing ticket: %w", err)
	}

	recipients := make([]age.Recipient, 0, len(recipientKeys))
	for _, key := range recipientKeys {
		recipient, err := age.ParseX25519Recipient(key)
		if err != nil {
			return "", fmt.Errorf("sealed: parsing recipient key %q: %w", key, err)
		}
		recipients = append(recipients, recipient)
	}

	var ciphertext bytes.Buffer
	writer, err := age.Encrypt(&ciphertext, recipients...)
	if err != nil {
		return "", fmt.Errorf("sealed: creating age encryptor: %w", err)
	}
	if _, err := io.WriteString(writer, serialized); err != nil {
		return "", fmt.Errorf("sealed: encrypting ticket: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("sealed: finalizing encryption: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext.Bytes()), nil
}

// Open decrypts a sealed ticket with the given age private key and
// parses the recovered string through the kind registry. The inner
// ticket's kind must be registered in this process.
func Open(sealedTicket string, privateKey string) (ticket.Ticket, error) {
	serialized, err := OpenString(sealedTicket, privateKey)
	if err != nil {
		return nil, err
	}
	parsed, err := ticket.Parse(serialized)
	if err != nil {
		return nil, fmt.Errorf("sealed: parsing decrypted ticket: %w", err)
	}
	return parsed, nil
}

// OpenString decrypts a sealed ticket and returns the inner
// serialized string without parsing it. Use when the ticket kind is
// not registered locally (forwarding, archival).
func OpenString(sealedTicket string, privateKey string) (string, error) {
	if len(sealedTicket) > maxSealedLength {
		return "", fmt.Errorf("sealed: ciphertext is %d bytes, limit %d", len(sealedTicket), maxSealedLength)
	}

	identity, err := age.ParseX25519Identity(privateKey)
	if err != nil {
		return "", fmt.Errorf("sealed: parsing private key: %w", err)
	}

	rawCiphertext, err := base64.StdEncoding.DecodeString(sealedTicket)
	if err != nil {
		return "", fmt.Errorf("sealed: decoding base64 ciphertext: %w", err)
	}

	reader, err := age.Decrypt(bytes.NewReader(rawCiphertext), identity)
	if err != nil {
		return "", fmt.Errorf("sealed: decrypting: %w", err)
	}
	serialized, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("sealed: reading decrypted ticket: %w", err)
	}
	return string(serialized), nil
}
