/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package query

import "testing"

type boundSpy struct {
	last *string
	n    int
}

func (b *boundSpy) SetBoundQuery(q *string) {
	b.last = q
	b.n++
}

func TestNewFromString(t *testing.T) {
	v, err := NewFromString("?a=1&b=2")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	if got := v.Get("a"); got != "1" {
		t.Errorf("Get(a) = %q, want 1", got)
	}
	if got := v.Get("b"); got != "2" {
		t.Errorf("Get(b) = %q, want 2", got)
	}
	if got := v.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestGetAllHasAppendDelete(t *testing.T) {
	v := New()
	v.Append("a", "1")
	v.Append("a", "2")
	v.Append("b", "3")

	if !v.Has("a") {
		t.Errorf("Has(a) = false, want true")
	}
	if v.Has("z") {
		t.Errorf("Has(z) = true, want false")
	}
	all := v.GetAll("a")
	if len(all) != 2 || all[0] != "1" || all[1] != "2" {
		t.Errorf("GetAll(a) = %v, want [1 2]", all)
	}

	v.Delete("a")
	if v.Has("a") {
		t.Errorf("Has(a) after Delete = true, want false")
	}
	if v.Len() != 1 {
		t.Errorf("Len() after Delete = %d, want 1", v.Len())
	}
}

func TestSetOverwritesFirstAndRemovesRest(t *testing.T) {
	v := New()
	v.Append("a", "1")
	v.Append("a", "2")
	v.Append("a", "3")
	v.Set("a", "x")

	if got := v.GetAll("a"); len(got) != 1 || got[0] != "x" {
		t.Errorf("GetAll(a) after Set = %v, want [x]", got)
	}
}

func TestSortIsStableByName(t *testing.T) {
	v := New()
	v.Append("b", "1")
	v.Append("a", "1")
	v.Append("a", "2")
	v.Sort()

	var names []string
	var values []string
	it := v.Entries()
	for {
		n, val, ok := it.Next()
		if !ok {
			break
		}
		names = append(names, n)
		values = append(values, val)
	}
	wantNames := []string{"a", "a", "b"}
	wantValues := []string{"1", "2", "1"}
	for i := range wantNames {
		if names[i] != wantNames[i] || values[i] != wantValues[i] {
			t.Fatalf("Sort() entries = %v/%v, want %v/%v", names, values, wantNames, wantValues)
		}
	}
}

func TestUpdateBindsToURL(t *testing.T) {
	v := New()
	b := &boundSpy{}
	v.Bind(b)

	v.Append("a", "1")
	if b.n != 1 || b.last == nil || *b.last != "a=1" {
		t.Fatalf("after Append: bound = %v (n=%d), want \"a=1\"", b.last, b.n)
	}

	v.Delete("a")
	if b.last != nil {
		t.Errorf("after Delete of last pair: bound = %v, want nil", b.last)
	}
}

func TestIteratorIsLiveView(t *testing.T) {
	v := New()
	v.Append("a", "1")
	it := v.Entries()
	if _, _, ok := it.Next(); !ok {
		t.Fatalf("first Next: expected an entry")
	}
	v.Append("b", "2")
	name, value, ok := it.Next()
	if !ok || name != "b" || value != "2" {
		t.Errorf("second Next after mutation = %q %q %v, want b 2 true", name, value, ok)
	}
}

func TestString(t *testing.T) {
	v := New()
	v.Append("a", "1 2")
	v.Append("b", "3")
	if got, want := v.String(), "a=1+2&b=3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
