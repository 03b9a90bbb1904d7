// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "testing"

func TestParseList(t *testing.T) {
	xs, err := parseList("0, 1, 2, 3, 4, 5, 6, 7, 8")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(xs) != 9 {
		t.Fatalf("want 9 numbers, got %d", len(xs))
	}
	for i, x := range xs {
		if x != float64(i) {
			t.Errorf("element %d: want %d, got %v", i, i, x)
		}
	}
}

func TestParseListNewlines(t *testing.T) {
	xs, err := parseList("1.5\n-2\n3e2\n")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := []float64{1.5, -2, 300}
	for i, x := range xs {
		if x != want[i] {
			t.Errorf("element %d: want %v, got %v", i, want[i], x)
		}
	}
}

func TestParseListInvalid(t *testing.T) {
	if _, err := parseList("1, 2, three"); err == nil {
		t.Errorf("want parse error, got nil")
	}
	xs, err := parseList("")
	if err != nil || len(xs) != 0 {
		t.Errorf("empty input: want no numbers, got %v, %v", xs, err)
	}
}
