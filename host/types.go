/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package host parses and serializes the host component of a WHATWG URL.
//
// A host is one of: null (absent), the empty string, a domain or IPv4
// address, an IPv6 address, or an opaque host string. The tagged Host value
// below carries that distinction; the URL record stores a *Host, with a nil
// pointer meaning "no host" (not the same as an empty-string host).
package host

// Kind tags which variant a parsed Host holds.
type Kind int

const (
	// Domain is either a dot-separated domain name (IDNA-processed to ASCII)
	// or an IPv4 address in dotted-decimal form.
	Domain Kind = iota
	// IPv6 holds the bracket-free textual form of an IPv6 address.
	IPv6
	// Opaque holds a percent-encoded string for a non-special-scheme host.
	Opaque
	// Empty represents the host being present but the empty string
	// (distinct from no host at all).
	Empty
)

// Host is the tagged payload stored on a URL record's Host field.
type Host struct {
	Kind  Kind
	Value string
}

func (k Kind) String() string {
	switch k {
	case Domain:
		return "domain"
	case IPv6:
		return "ipv6"
	case Opaque:
		return "opaque"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// InvalidHostError reports an invalid character or structure in a host
// string. Mirrors the teacher's InvalidHostError string-based error type.
type InvalidHostError string

func (e InvalidHostError) Error() string {
	return "invalid host: " + string(e)
}
