/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strconv"
	"strings"

	"github.com/kalda/weburl/host"
)

// String serializes u per §4.F: scheme, optional "//" + userinfo + host +
// port, path or opaque path, optional "?query", optional "#fragment".
func (u *URL) String() string {
	return u.serialize(false)
}

// RequestURI returns the serialization with no scheme, host, or fragment,
// matching the teacher's url.URL.RequestURI (_examples/badu-http/url/url.go).
func (u *URL) RequestURI() string {
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.CannotBeABase {
		path = u.opaquePath()
	}
	var b strings.Builder
	b.WriteString(path)
	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(*u.Query)
	}
	return b.String()
}

func (u *URL) serialize(excludeFragment bool) string {
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteByte(':')

	if u.Host != nil {
		b.WriteString("//")
		if u.Username != "" || u.Password != "" {
			b.WriteString(u.Username)
			if u.Password != "" {
				b.WriteByte(':')
				b.WriteString(u.Password)
			}
			b.WriteByte('@')
		}
		b.WriteString(host.Serialize(u.Host))
		if u.Port != nil {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(*u.Port))
		}
	} else if u.Scheme == "file" {
		b.WriteString("//")
	}

	if u.CannotBeABase {
		b.WriteString(u.opaquePath())
	} else {
		if u.Host == nil && len(u.Path) > 1 && u.Path[0] == "" {
			b.WriteString("/.")
		}
		for _, seg := range u.Path {
			b.WriteByte('/')
			b.WriteString(seg)
		}
	}

	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(*u.Query)
	}

	if !excludeFragment && u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}

	return b.String()
}

func (u *URL) opaquePath() string {
	if len(u.Path) == 0 {
		return ""
	}
	return u.Path[0]
}

// EscapedPath returns the path component, already percent-encoded (the
// parser stores path segments pre-escaped, so this simply joins them).
func (u *URL) EscapedPath() string {
	if u.CannotBeABase {
		return u.opaquePath()
	}
	var b strings.Builder
	for _, seg := range u.Path {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}

// IsAbs reports whether u has a non-empty scheme, matching
// url.URL.IsAbs in the teacher.
func (u *URL) IsAbs() bool { return u.Scheme != "" }

// Hostname returns the host without a port, matching url.URL.Hostname:
// an IPv6 address is returned without its enclosing brackets.
func (u *URL) Hostname() string {
	if u.Host == nil {
		return ""
	}
	if u.Host.Kind == host.IPv6 {
		return u.Host.Value
	}
	return host.Serialize(u.Host)
}

// PortString returns the port as a string, or "" if absent, matching
// url.URL.Port.
func (u *URL) PortString() string {
	if u.Port == nil {
		return ""
	}
	return strconv.Itoa(*u.Port)
}
