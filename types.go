/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"github.com/kalda/weburl/host"
	"github.com/kalda/weburl/query"
)

// URL is the parsed record (§3): scheme, userinfo, host, port, path,
// query, fragment, plus the cannot-be-a-base flag. It also serves as the
// URL object (§4.G) — its attribute setters below call the parser with a
// state override to re-validate a single component in place, and it owns
// a bound query container, built by NewURL (or on first access to
// SearchParams for a URL built any other way).
type URL struct {
	Scheme        string
	Username      string // percent-encoded form
	Password      string // percent-encoded form
	Host          *host.Host
	Port          *int // nil means "no port" (absent, or equal to the scheme's default)
	Path          []string
	Query         *string // percent-encoded form, no leading '?'
	Fragment      *string // percent-encoded form, no leading '#'
	CannotBeABase bool

	searchParams   *query.Values
	validationErrs []ValidationError
}

// State names one of the 21 states of the basic URL parser (§4.E).
type State int

const (
	StateSchemeStart State = iota
	StateScheme
	StateNoScheme
	StateSpecialRelativeOrAuthority
	StatePathOrAuthority
	StateRelative
	StateRelativeSlash
	StateSpecialAuthoritySlashes
	StateSpecialAuthorityIgnoreSlashes
	StateAuthority
	StateHost
	StateHostname
	StatePort
	StateFile
	StateFileSlash
	StateFileHost
	StatePathStart
	StatePath
	StateCannotBeABaseURLPath
	StateQuery
	StateFragment
)

func (s State) String() string {
	switch s {
	case StateSchemeStart:
		return "scheme-start"
	case StateScheme:
		return "scheme"
	case StateNoScheme:
		return "no-scheme"
	case StateSpecialRelativeOrAuthority:
		return "special-relative-or-authority"
	case StatePathOrAuthority:
		return "path-or-authority"
	case StateRelative:
		return "relative"
	case StateRelativeSlash:
		return "relative-slash"
	case StateSpecialAuthoritySlashes:
		return "special-authority-slashes"
	case StateSpecialAuthorityIgnoreSlashes:
		return "special-authority-ignore-slashes"
	case StateAuthority:
		return "authority"
	case StateHost:
		return "host"
	case StateHostname:
		return "hostname"
	case StatePort:
		return "port"
	case StateFile:
		return "file"
	case StateFileSlash:
		return "file-slash"
	case StateFileHost:
		return "file-host"
	case StatePathStart:
		return "path-start"
	case StatePath:
		return "path"
	case StateCannotBeABaseURLPath:
		return "cannot-be-a-base-url-path"
	case StateQuery:
		return "query"
	case StateFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// specialSchemes is the fixed default-port table (§3, §6). gopher is kept
// for bug-compatibility with the source even though the living standard
// has removed it (§9, SPEC_FULL.md §E).
var specialSchemes = map[string]int{
	"ftp":    21,
	"file":   -1, // no default port; file hosts never carry one
	"gopher": 70,
	"http":   80,
	"https":  443,
	"ws":     80,
	"wss":    443,
}

func isSpecialScheme(scheme string) bool {
	_, ok := specialSchemes[scheme]
	return ok
}

// defaultPort returns the scheme's default port and whether it has one.
// file: is special but has no numeric default port.
func defaultPort(scheme string) (int, bool) {
	p, ok := specialSchemes[scheme]
	if !ok || p < 0 {
		return 0, false
	}
	return p, true
}
