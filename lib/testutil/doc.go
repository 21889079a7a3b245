// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for scrollstrip
// packages.
//
// [WriteFile] writes a fixture (typically a YAML or JSONC config) into
// a per-test temporary directory and returns its path. The directory
// is removed when the test completes.
//
// [RequireReceive] encapsulates the timeout safety valve pattern
// (select with time.After fallback) for tests that wait on a
// goroutine, such as a running tea.Program.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no scrollstrip-internal dependencies.
package testutil
