/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percent

import "testing"

func TestEscape(t *testing.T) {
	var tests = []struct {
		in   string
		set  Set
		want string
	}{
		{"hello", General, "hello"},
		{"a b", General, "a%20b"},
		{"a?b", General, "a%3Fb"},
		{"a?b", Query, "a?b"},
		{"a#b", Query, "a%23b"},
		{"100%", General, "100%"},
		{"héllo", General, "h%C3%A9llo"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in, tt.set); got != tt.want {
			t.Errorf("Escape(%q, %v) = %q, want %q", tt.in, tt.set, got, tt.want)
		}
	}
}

func TestDecode(t *testing.T) {
	var tests = []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"hello", "hello", false},
		{"a%20b", "a b", false},
		{"a%3Fb", "a?b", false},
		{"h%C3%A9llo", "héllo", false},
		{"bad%2", "", true},
		{"bad%zz", "", true},
	}
	for _, tt := range tests {
		got, err := Decode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Decode(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Decode(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeDecodeRoundTrip(t *testing.T) {
	in := "a b?c#d\"e<f>g`h"
	escaped := Escape(in, General)
	got, err := Decode(escaped)
	if err != nil {
		t.Fatalf("Decode(%q): %v", escaped, err)
	}
	if got != in {
		t.Errorf("round trip: got %q, want %q", got, in)
	}
}
