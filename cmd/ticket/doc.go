// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Ticket is the command-line driver for endpoint tickets. It creates
// tickets from addressing information (flags or a JSONC file), decodes
// and inspects tickets of any registered kind, and seals tickets to age
// recipients for confidential exchange.
package main
