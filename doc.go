/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package url implements a WHATWG-compliant URL parser, serializer, and
// mutable URL object, together with a companion query-parameter container.
//
// The basic URL parser (Parser.Parse) is a single-cursor, 21-state machine
// over input code points, usable both for a fresh parse and — via a state
// override — for re-parsing a single component of an already-parsed URL in
// place, which is how the attribute setters on URL are implemented.
//
// Host parsing/serialization, the x-www-form-urlencoded codec, and the
// query container live in the sibling host, urlencoded, and query
// packages respectively.
package url
