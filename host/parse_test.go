/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package host

import "testing"

func TestParseDomain(t *testing.T) {
	var tests = []struct {
		in        string
		isSpecial bool
		wantKind  Kind
		wantValue string
		wantErr   bool
	}{
		{"example.com", true, Domain, "example.com", false},
		{"EXAMPLE.com", true, Domain, "example.com", false},
		{"", true, Empty, "", false},
		{"1.2.3.4", true, Domain, "1.2.3.4", false},
	}
	for _, tt := range tests {
		h, err := Parse(tt.in, tt.isSpecial)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tt.in, err)
		}
		if h.Kind != tt.wantKind || h.Value != tt.wantValue {
			t.Errorf("Parse(%q) = %v %q, want %v %q", tt.in, h.Kind, h.Value, tt.wantKind, tt.wantValue)
		}
	}
}

func TestParseIPv4Quirks(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{"1.2.3.4", "1.2.3.4"},
		{"0x1.2.3.4", "1.2.3.4"},
		{"1.2.3", "1.2.0.3"},
		{"1", "0.0.0.1"},
		{"0300.0250.0002.0001", "192.168.2.1"},
	}
	for _, tt := range tests {
		h, err := Parse(tt.in, true)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tt.in, err)
		}
		if h.Kind != Domain || h.Value != tt.want {
			t.Errorf("Parse(%q) = %v %q, want Domain %q", tt.in, h.Kind, h.Value, tt.want)
		}
	}
}

func TestParseIPv6(t *testing.T) {
	var tests = []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"[::1]", "::1", false},
		{"[2001:db8::1]", "2001:db8::1", false},
		{"[2001:0db8:0000:0000:0000:0000:0000:0001]", "2001:db8::1", false},
		{"[::ffff:1.2.3.4", "", true}, // missing closing bracket
		{"[not-an-address]", "", true},
	}
	for _, tt := range tests {
		h, err := Parse(tt.in, true)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tt.in, err)
		}
		if h.Kind != IPv6 || h.Value != tt.want {
			t.Errorf("Parse(%q) = %v %q, want IPv6 %q", tt.in, h.Kind, h.Value, tt.want)
		}
	}
}

func TestParseOpaqueHost(t *testing.T) {
	h, err := Parse("not a host", false)
	if err == nil {
		t.Fatalf("Parse(%q, false): expected forbidden-code-point error, got %v", "not a host", h)
	}

	h, err = Parse("opaque-host", false)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if h.Kind != Opaque || h.Value != "opaque-host" {
		t.Errorf("Parse(%q, false) = %v %q, want Opaque %q", "opaque-host", h.Kind, h.Value, "opaque-host")
	}
}

func TestSerialize(t *testing.T) {
	var tests = []struct {
		h    *Host
		want string
	}{
		{nil, ""},
		{&Host{Kind: Empty}, ""},
		{&Host{Kind: Domain, Value: "example.com"}, "example.com"},
		{&Host{Kind: IPv6, Value: "::1"}, "[::1]"},
		{&Host{Kind: Opaque, Value: "opaque-host"}, "opaque-host"},
	}
	for _, tt := range tests {
		if got := Serialize(tt.h); got != tt.want {
			t.Errorf("Serialize(%v) = %q, want %q", tt.h, got, tt.want)
		}
	}
}
