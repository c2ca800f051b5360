/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strconv"
	"strings"

	"github.com/kalda/weburl/host"
	"github.com/kalda/weburl/percent"
	"github.com/kalda/weburl/query"
)

// NewURL constructs a URL object (§4.G): input is parsed, optionally
// against a base URL parsed from baseInput. Mirrors the JavaScript "new
// URL(url, base)" constructor's two-argument shape.
func NewURL(input string, baseInput ...string) (*URL, error) {
	p := &Parser{}
	var base *URL
	if len(baseInput) > 0 && baseInput[0] != "" {
		b, err := p.Parse(baseInput[0], nil)
		if err != nil {
			return nil, err
		}
		base = b
	}
	u, err := p.Parse(input, base)
	if err != nil {
		return nil, err
	}
	u.bindSearchParams()
	return u, nil
}

func (u *URL) bindSearchParams() {
	v, _ := query.NewFromString(u.queryOrEmpty())
	v.Bind(u)
	u.searchParams = v
}

func (u *URL) queryOrEmpty() string {
	if u.Query == nil {
		return ""
	}
	return *u.Query
}

// SetBoundQuery implements query.Binder: the searchParams container calls
// this after every mutation to keep u.Query in sync (§4.G, §4.H).
func (u *URL) SetBoundQuery(q *string) {
	u.Query = q
}

// SearchParams returns the query container bound to u, constructing it on
// first access if u was built directly (e.g. via the zero value) rather
// than through NewURL.
func (u *URL) SearchParams() *query.Values {
	if u.searchParams == nil {
		u.bindSearchParams()
	}
	return u.searchParams
}

func (u *URL) set(state State, value string) error {
	p := &Parser{}
	return p.ParseWithOverride(value, nil, u, state)
}

// Href returns the full serialization, equivalent to String.
func (u *URL) Href() string { return u.String() }

// SetHref re-parses the entire URL from scratch (§4.G).
func (u *URL) SetHref(value string) error {
	p := &Parser{}
	parsed, err := p.Parse(value, nil)
	if err != nil {
		return err
	}
	sp := u.searchParams
	*u = *parsed
	if sp == nil {
		u.bindSearchParams()
		return nil
	}
	u.searchParams = sp
	_ = sp.Reset(u.queryOrEmpty())
	return nil
}

// Protocol returns "scheme:".
func (u *URL) Protocol() string { return u.Scheme + ":" }

// SetProtocol re-parses the scheme in place (§4.G). An invalid or
// incompatible scheme leaves u unchanged.
func (u *URL) SetProtocol(value string) error {
	return u.set(StateSchemeStart, value+":")
}

// GetUsername returns the username component, already percent-encoded.
func (u *URL) GetUsername() string { return u.Username }

// SetUsername percent-encodes value with the general set and replaces the
// username, leaving a file, opaque-path, or hostless URL unchanged (§4.G,
// §9's "cannot have credentials" rule).
func (u *URL) SetUsername(value string) {
	if u.cannotHaveCredentials() {
		return
	}
	u.Username = percentEncodeUserinfo(value)
}

// GetPassword returns the password component, already percent-encoded.
func (u *URL) GetPassword() string { return u.Password }

// SetPassword is SetUsername's counterpart.
func (u *URL) SetPassword(value string) {
	if u.cannotHaveCredentials() {
		return
	}
	u.Password = percentEncodeUserinfo(value)
}

func (u *URL) cannotHaveCredentials() bool {
	return u.Host == nil || u.Host.Kind == host.Empty || u.Scheme == "file"
}

func percentEncodeUserinfo(s string) string {
	return percent.Escape(s, percent.General)
}

// GetHost returns "hostname:port" (port omitted when absent).
func (u *URL) GetHost() string {
	if u.Host == nil {
		return ""
	}
	h := host.Serialize(u.Host)
	if u.Port != nil {
		h += ":" + strconv.Itoa(*u.Port)
	}
	return h
}

// SetHost re-parses both hostname and port from a single "host[:port]"
// string (§4.G). A no-op on a URL that cannot have a host (opaque path).
func (u *URL) SetHost(value string) error {
	if u.CannotBeABase {
		return nil
	}
	return u.set(StateHost, value)
}

// GetHostname returns the serialized host without a port (an IPv6 address
// keeps its brackets).
func (u *URL) GetHostname() string {
	if u.Host == nil {
		return ""
	}
	return host.Serialize(u.Host)
}

// SetHostname re-parses the hostname alone, leaving any existing port
// untouched (§4.G).
func (u *URL) SetHostname(value string) error {
	if u.CannotBeABase {
		return nil
	}
	return u.set(StateHostname, value)
}

// GetPort returns the port as a string, or "" if absent or equal to the
// scheme's default.
func (u *URL) GetPort() string {
	if u.Port == nil {
		return ""
	}
	return strconv.Itoa(*u.Port)
}

// SetPort re-parses the port alone. An empty value clears it; a URL with
// no host, an opaque path, or a file scheme cannot carry a port (§4.G).
func (u *URL) SetPort(value string) error {
	if u.Host == nil || u.Host.Kind == host.Empty || u.CannotBeABase || u.Scheme == "file" {
		return nil
	}
	if value == "" {
		u.Port = nil
		return nil
	}
	return u.set(StatePort, value)
}

// Pathname returns the path serialization (opaque path verbatim for a
// cannot-be-a-base URL).
func (u *URL) Pathname() string { return u.EscapedPath() }

// SetPathname re-parses the path alone; a no-op on a cannot-be-a-base URL
// (§4.G).
func (u *URL) SetPathname(value string) error {
	if u.CannotBeABase {
		return nil
	}
	u.Path = nil
	return u.set(StatePathStart, value)
}

// Search returns "?query", or "" if the query is null.
func (u *URL) Search() string {
	if u.Query == nil || *u.Query == "" {
		return ""
	}
	return "?" + *u.Query
}

// SetSearch re-parses the query string and resets searchParams to match
// (§4.G). An empty value nulls the query entirely.
func (u *URL) SetSearch(value string) error {
	value = strings.TrimPrefix(value, "?")
	if value == "" {
		u.Query = nil
	} else {
		u.Query = ptr("")
		if err := (&Parser{}).ParseWithOverride(value, nil, u, StateQuery); err != nil {
			return err
		}
	}
	if u.searchParams != nil {
		_ = u.searchParams.Reset(u.queryOrEmpty())
	}
	return nil
}

// Hash returns "#fragment", or "" if the fragment is null or empty.
func (u *URL) Hash() string {
	if u.Fragment == nil || *u.Fragment == "" {
		return ""
	}
	return "#" + *u.Fragment
}

// SetHash re-parses the fragment alone. An empty value nulls it (§4.G).
func (u *URL) SetHash(value string) error {
	value = strings.TrimPrefix(value, "#")
	if value == "" {
		u.Fragment = nil
		return nil
	}
	u.Fragment = ptr("")
	return (&Parser{}).ParseWithOverride(value, nil, u, StateFragment)
}

// Origin computes the tuple origin (§4.G): "scheme://host[:port]" for a
// special or file-less networked scheme, "null" for an opaque or
// cannot-be-a-base URL, and "" when there is no host to report. blob: is
// out of scope (SPEC_FULL.md §E), so its special-cased nested-origin
// unwrap is not implemented.
func (u *URL) Origin() string {
	switch {
	case u.CannotBeABase, u.Scheme == "file", u.Scheme == "data", u.Scheme == "javascript", u.Scheme == "mailto":
		return "null"
	case u.Scheme == "" || u.Host == nil || u.Host.Kind == host.Empty:
		return ""
	default:
		origin := u.Scheme + "://" + host.Serialize(u.Host)
		if u.Port != nil {
			origin += ":" + strconv.Itoa(*u.Port)
		}
		return origin
	}
}
