// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"strings"
	"testing"
)

func TestLogLevelFlag(t *testing.T) {
	if LogLevelFlag.Name != "log" || LogLevelFlag.Value != "info" {
		t.Errorf("unexpected flag defaults: %+v", LogLevelFlag)
	}
	for _, level := range []string{"critical", "error", "warning", "notice", "info", "debug"} {
		if !strings.Contains(LogLevelFlag.Usage, level) {
			t.Errorf("flag usage does not mention level %q", level)
		}
	}
	if strings.Contains(LogLevelFlag.Usage, "app action") {
		t.Errorf("flag usage does not describe this command: %q", LogLevelFlag.Usage)
	}
}

func TestNewUnknownLevel(t *testing.T) {
	// An unknown level falls back to INFO rather than failing.
	log := New("bogus", "test")
	if log == nil {
		t.Fatal("want a logger, got nil")
	}
}
