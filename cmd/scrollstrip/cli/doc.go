// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the error and logging conventions of the
// scrollstrip command: categorized errors with optional hints,
// handled non-zero exits, and the stderr logger used before (or
// instead of) the terminal UI.
package cli
