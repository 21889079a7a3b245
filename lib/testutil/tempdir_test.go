// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "strip.yaml", "frame:\n  width: 80\n")
	if filepath.Base(path) != "strip.yaml" {
		t.Errorf("path = %s, want base strip.yaml", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "frame:\n  width: 80\n" {
		t.Errorf("content = %q", data)
	}
}

func TestMissingPath(t *testing.T) {
	if _, err := os.Stat(MissingPath(t, "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("Stat error = %v, want not-exist", err)
	}
}
