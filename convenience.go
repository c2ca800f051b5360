/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "github.com/kalda/weburl/query"

// Userinfo wraps a username and optional password, matching the teacher's
// url.Userinfo (_examples/badu-http/url/userinfo.go). It exists alongside
// URL.Username/Password as a convenience for callers building one from
// parts rather than through the parser.
type Userinfo struct {
	username    string
	password    string
	passwordSet bool
}

// User returns a Userinfo carrying only a username.
func User(username string) *Userinfo { return &Userinfo{username: username} }

// UserPassword returns a Userinfo carrying both a username and a password.
func UserPassword(username, password string) *Userinfo {
	return &Userinfo{username: username, password: password, passwordSet: true}
}

// Username returns u's username.
func (u *Userinfo) Username() string { return u.username }

// Password returns u's password and whether one was set.
func (u *Userinfo) Password() (string, bool) { return u.password, u.passwordSet }

// String renders u as "username" or "username:password", each component
// percent-encoded with the general set (§4.A).
func (u *Userinfo) String() string {
	s := percentEncodeUserinfo(u.username)
	if u.passwordSet {
		s += ":" + percentEncodeUserinfo(u.password)
	}
	return s
}

// Parse is a package-level convenience equivalent to NewURL(rawurl).
func Parse(rawurl string) (*URL, error) { return NewURL(rawurl) }

// ParseRequestURI parses rawurl, requiring it to be absolute (carry a
// scheme), matching the teacher's url.ParseRequestURI.
func ParseRequestURI(rawurl string) (*URL, error) {
	u, err := NewURL(rawurl)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, &Error{Op: "parse", URL: rawurl, Err: fail("relative URI without base")}
	}
	return u, nil
}

// ParseQuery is a package-level convenience equivalent to
// query.NewFromString.
func ParseQuery(q string) (*query.Values, error) { return query.NewFromString(q) }

// ResolveReference resolves ref against u as a base, equivalent to
// NewURL(ref.String(), u.String()).
func (u *URL) ResolveReference(ref *URL) (*URL, error) {
	return NewURL(ref.String(), u.String())
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u *URL) MarshalBinary() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *URL) UnmarshalBinary(text []byte) error {
	parsed, err := NewURL(string(text))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
