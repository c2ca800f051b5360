/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package urlencoded

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		in   string
		want []Pair
	}{
		{"", nil},
		{"a=b", []Pair{{"a", "b"}}},
		{"a=b&c=d", []Pair{{"a", "b"}, {"c", "d"}}},
		{"a", []Pair{{"a", ""}}},
		{"a=", []Pair{{"a", ""}}},
		{"a=b+c", []Pair{{"a", "b c"}}},
		{"a=b%20c", []Pair{{"a", "b c"}}},
		{"&a=b&", []Pair{{"a", "b"}}},
		{"a=1&a=2", []Pair{{"a", "1"}, {"a", "2"}}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tt.in, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSerialize(t *testing.T) {
	var tests = []struct {
		in   []Pair
		want string
	}{
		{nil, ""},
		{[]Pair{{"a", "b"}}, "a=b"},
		{[]Pair{{"a", "b"}, {"c", "d"}}, "a=b&c=d"},
		{[]Pair{{"a", "b c"}}, "a=b+c"},
		{[]Pair{{"a", "b&c"}}, "a=b%26c"},
	}
	for _, tt := range tests {
		if got := Serialize(tt.in); got != tt.want {
			t.Errorf("Serialize(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSerializeRoundTrip(t *testing.T) {
	in := "name=Jane+Doe&city=San+Francisco&q=a%26b"
	pairs, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Serialize(pairs); got != in {
		t.Errorf("round trip: got %q, want %q", got, in)
	}
}
