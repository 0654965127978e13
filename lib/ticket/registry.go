// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// registry maps kind tags to factories for kind-agnostic parsing.
// A kind is bound to exactly one ticket type per process; Register
// panics on rebinding because a duplicate kind is a programming error
// that would make Parse results depend on registration order.
var registry = struct {
	sync.RWMutex
	factories map[string]func() Ticket
	// kinds is kept sorted longest-first so that Parse prefers the
	// most specific tag when one registered kind is a prefix of
	// another.
	kinds []string
}{factories: make(map[string]func() Ticket)}

// Register binds a kind tag to a factory producing empty tickets of
// that kind, making the kind parseable by [Parse]. Typically called
// from a ticket package's init. The factory's tickets must report the
// registered kind from their Kind method.
//
// Register panics on an invalid kind or a kind that is already bound.
func Register(kind string, factory func() Ticket) {
	if err := ValidateKind(kind); err != nil {
		panic("ticket.Register: " + err.Error())
	}
	if factory == nil {
		panic(fmt.Sprintf("ticket.Register(%q): nil factory", kind))
	}

	registry.Lock()
	defer registry.Unlock()
	if _, bound := registry.factories[kind]; bound {
		panic(fmt.Sprintf("ticket.Register(%q): kind already registered", kind))
	}
	registry.factories[kind] = factory
	registry.kinds = append(registry.kinds, kind)
	sort.Slice(registry.kinds, func(i, j int) bool {
		a, b := registry.kinds[i], registry.kinds[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
}

// Parse deserializes a ticket string of any registered kind. Used by
// tooling that accepts tickets generically (the CLI's inspect and
// seal commands); code expecting a specific type should call
// [Deserialize] on that type instead and let the kind check reject
// everything else.
func Parse(s string) (Ticket, error) {
	registry.RLock()
	defer registry.RUnlock()

	for _, kind := range registry.kinds {
		if !strings.HasPrefix(s, kind) {
			continue
		}
		t := registry.factories[kind]()
		if err := Deserialize(t, s); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("ticket: no registered kind matches %q: %w", leadingTag(s), ErrUnknownKind)
}

// Kinds returns the registered kind tags, sorted longest-first.
func Kinds() []string {
	registry.RLock()
	defer registry.RUnlock()
	kinds := make([]string, len(registry.kinds))
	copy(kinds, registry.kinds)
	return kinds
}

// leadingTag extracts the leading lowercase-letter run of s for error
// messages, truncated to the maximum kind length. Reporting the full
// input would leak entire (possibly sensitive) tickets into logs.
func leadingTag(s string) string {
	end := 0
	for end < len(s) && end < maxKindLength && s[end] >= 'a' && s[end] <= 'z' {
		end++
	}
	return s[:end]
}
