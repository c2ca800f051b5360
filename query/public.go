/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package query

import (
	"sort"
	"strings"

	"github.com/kalda/weburl/urlencoded"
)

// New returns an empty, unbound container.
func New() *Values {
	return &Values{}
}

// NewFromString parses s via the urlencoded codec (§4.C), after stripping
// one optional leading '?'.
func NewFromString(s string) (*Values, error) {
	s = strings.TrimPrefix(s, "?")
	pairs, err := urlencoded.Parse(s)
	if err != nil {
		return nil, err
	}
	return &Values{pairs: sanitizePairs(pairs)}, nil
}

// NewFromPairs builds a container from a sequence of 2-element sequences.
// Any entry whose length is not exactly 2 is a TypeError.
func NewFromPairs(seqs [][]string) (*Values, error) {
	v := &Values{}
	for _, s := range seqs {
		if len(s) != 2 {
			return nil, TypeError("expected a name/value pair of length 2")
		}
		v.pairs = append(v.pairs, urlencoded.Pair{Name: sanitizeUSV(s[0]), Value: sanitizeUSV(s[1])})
	}
	return v, nil
}

// NewFromMap builds a container from a string-to-string record, iterating
// keys in the order given (callers that need a deterministic order should
// pass an ordered slice of keys alongside the map, or prefer NewFromPairs).
func NewFromMap(m map[string]string, order []string) *Values {
	v := &Values{}
	for _, k := range order {
		val, ok := m[k]
		if !ok {
			continue
		}
		v.pairs = append(v.pairs, urlencoded.Pair{Name: sanitizeUSV(k), Value: sanitizeUSV(val)})
	}
	return v
}

// Copy returns a new, unbound container holding a copy of other's pairs.
func Copy(other *Values) *Values {
	v := &Values{pairs: make([]urlencoded.Pair, len(other.pairs))}
	copy(v.pairs, other.pairs)
	return v
}

func sanitizePairs(pairs []urlencoded.Pair) []urlencoded.Pair {
	for i := range pairs {
		pairs[i].Name = sanitizeUSV(pairs[i].Name)
		pairs[i].Value = sanitizeUSV(pairs[i].Value)
	}
	return pairs
}

// sanitizeUSV coerces s to a USV string: any byte sequence that is not
// valid UTF-8 (the closest Go analogue to a lone UTF-16 surrogate) is
// replaced by U+FFFD.
func sanitizeUSV(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// Bind attaches the back-reference used by update. It is set once, at
// construction of the owning URL object, and never reassigned (§3).
func (v *Values) Bind(b Binder) {
	v.bound = b
}

// Get returns the first value associated with name, or "" if none exists.
func (v *Values) Get(name string) string {
	for _, p := range v.pairs {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// GetAll returns every value associated with name, in insertion order.
func (v *Values) GetAll(name string) []string {
	var out []string
	for _, p := range v.pairs {
		if p.Name == name {
			out = append(out, p.Value)
		}
	}
	return out
}

// Has reports whether name has at least one value.
func (v *Values) Has(name string) bool {
	for _, p := range v.pairs {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Append adds (name, value) as a new entry, preserving any existing
// entries for the same name.
func (v *Values) Append(name, value string) {
	v.pairs = append(v.pairs, urlencoded.Pair{Name: sanitizeUSV(name), Value: sanitizeUSV(value)})
	v.update()
}

// Delete removes every entry for name.
func (v *Values) Delete(name string) {
	out := v.pairs[:0]
	for _, p := range v.pairs {
		if p.Name != name {
			out = append(out, p)
		}
	}
	v.pairs = out
	v.update()
}

// Set overwrites the first occurrence of name with value and removes all
// other occurrences; if name does not exist, it is appended.
func (v *Values) Set(name, value string) {
	name = sanitizeUSV(name)
	value = sanitizeUSV(value)
	found := false
	out := v.pairs[:0]
	for _, p := range v.pairs {
		if p.Name != name {
			out = append(out, p)
			continue
		}
		if !found {
			out = append(out, urlencoded.Pair{Name: name, Value: value})
			found = true
		}
	}
	v.pairs = out
	if !found {
		v.pairs = append(v.pairs, urlencoded.Pair{Name: name, Value: value})
	}
	v.update()
}

// Sort stably reorders entries by code-unit comparison of name, leaving
// values and the relative order within equal-name groups untouched.
func (v *Values) Sort() {
	sort.SliceStable(v.pairs, func(i, j int) bool {
		return v.pairs[i].Name < v.pairs[j].Name
	})
	v.update()
}

// String serializes the container via the urlencoded codec (§4.C).
func (v *Values) String() string {
	return urlencoded.Serialize(v.pairs)
}

// Len reports the number of entries, including duplicates.
func (v *Values) Len() int {
	return len(v.pairs)
}

// ForEach calls fn for every (name, value) pair in insertion order.
func (v *Values) ForEach(fn func(name, value string)) {
	for _, p := range v.pairs {
		fn(p.Name, p.Value)
	}
}

// update is the private step every mutation calls at its tail (§4.H): if a
// URL is bound, the container's serialized form is written back into the
// bound URL's query field, as "" turning into a null query rather than an
// empty string.
func (v *Values) update() {
	if v.bound == nil {
		return
	}
	s := v.String()
	if s == "" {
		v.bound.SetBoundQuery(nil)
		return
	}
	v.bound.SetBoundQuery(&s)
}

// Reset replaces the contents of v with pairs parsed from query (without a
// leading '?'), without touching the binding. Used by the URL object after
// href= or search= reassigns the query string (§4.G).
func (v *Values) Reset(query string) error {
	pairs, err := urlencoded.Parse(query)
	if err != nil {
		return err
	}
	v.pairs = sanitizePairs(pairs)
	return nil
}
