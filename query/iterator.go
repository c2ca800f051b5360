/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package query

// PairIterator walks v.pairs by cursor index rather than over a snapshot
// copy, so a mutation on v between Next calls is visible to an iterator
// already in flight — an intentional live-view contract (§4.I).
type PairIterator struct {
	v   *Values
	pos int
}

// Entries returns an iterator over (name, value) pairs in insertion order.
func (v *Values) Entries() *PairIterator { return &PairIterator{v: v} }

// Next reports whether a further pair is available and, if so, returns it.
func (it *PairIterator) Next() (name, value string, ok bool) {
	if it.pos >= len(it.v.pairs) {
		return "", "", false
	}
	p := it.v.pairs[it.pos]
	it.pos++
	return p.Name, p.Value, true
}

// NameIterator walks v.pairs the same way as PairIterator but only exposes
// names.
type NameIterator struct {
	v   *Values
	pos int
}

// Keys returns an iterator over entry names, in insertion order, including
// duplicates.
func (v *Values) Keys() *NameIterator { return &NameIterator{v: v} }

func (it *NameIterator) Next() (name string, ok bool) {
	if it.pos >= len(it.v.pairs) {
		return "", false
	}
	name = it.v.pairs[it.pos].Name
	it.pos++
	return name, true
}

// ValueIterator walks v.pairs the same way as PairIterator but only
// exposes values.
type ValueIterator struct {
	v   *Values
	pos int
}

// Vals returns an iterator over entry values, in insertion order. Named
// Vals rather than Values to avoid colliding with the container type name.
func (v *Values) Vals() *ValueIterator { return &ValueIterator{v: v} }

func (it *ValueIterator) Next() (value string, ok bool) {
	if it.pos >= len(it.v.pairs) {
		return "", false
	}
	value = it.v.pairs[it.pos].Value
	it.pos++
	return value, true
}
