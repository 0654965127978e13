// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the subcommand dispatch framework for the
// ticket tool: a tree of [Command] values with pflag flag parsing,
// structured help output, and typo suggestions for unknown commands
// and flags.
package cli
