// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the scroll strip.
//
// Configuration comes from a single file named by the --config flag
// (via [LoadFile]). There is no environment variable, no ~/.config
// discovery and no automatic file search; without a file, [Default]
// is used as is.
//
// Two formats are accepted, chosen by file extension:
//
//   - .yaml / .yml: YAML, decoded with gopkg.in/yaml.v3
//   - .json / .jsonc: JSON extended with // and /* */ comments and
//     trailing commas, normalized with tidwall/jsonc
//
// Fields omitted from the file keep their defaults. Cards listed in
// the file replace the default deck; card fields left at zero inherit
// the content-level card size and cycle through the accent groups.
//
// Key exports:
//
//   - [Config] -- frame, content, scrollbar, indicator and theme
//   - [Default] -- the built-in twelve-card deck
//   - [LoadFile] and [Config.Validate]
//
// This package depends on no other scrollstrip packages.
package config
