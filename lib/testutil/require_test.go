// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"testing"
	"time"
)

// recordingT captures Fatalf instead of stopping the test.
type recordingT struct {
	message string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.message = fmt.Sprintf(format, args...)
	panic(r)
}

func TestRequireReceiveValue(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 7
	if got := RequireReceive(t, ch, time.Second, "reading"); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestRequireReceiveTimeout(t *testing.T) {
	recorder := &recordingT{}
	func() {
		defer func() {
			if recovered := recover(); recovered != recorder {
				panic(recovered)
			}
		}()
		RequireReceive(recorder, make(chan int), 10*time.Millisecond, "waiting for %s", "exit")
	}()
	if recorder.message != "timed out after 10ms: waiting for exit" {
		t.Errorf("message = %q", recorder.message)
	}
}
