/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package query implements the query-parameter container (§4.H) bound
// bidirectionally to a URL's query string, plus its iterator adapters
// (§4.I). The container itself never imports the root url package — it
// depends on a small Binder interface instead, so a *url.URL can hold a
// *query.Values without an import cycle (the URL owns the container; the
// container holds a raw back-reference, per the ownership note in §9 of
// SPEC_FULL.md's originating spec).
package query

import "github.com/kalda/weburl/urlencoded"

// Binder receives the re-serialized query string on every mutation. A URL
// object implements this to keep its Query field in sync with its
// searchParams, per §4.G.
type Binder interface {
	SetBoundQuery(query *string)
}

// Values is an ordered multimap of string pairs, as produced by parsing an
// application/x-www-form-urlencoded query string. Duplicates are allowed;
// all operations preserve relative insertion order except Sort.
type Values struct {
	pairs []urlencoded.Pair
	bound Binder
}

// TypeError reports a malformed pair-sequence constructor argument —
// the query container's only fatal construction error (§4.H).
type TypeError string

func (e TypeError) Error() string {
	return "invalid query parameter pair: " + string(e)
}
