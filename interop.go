/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/purell"

	"github.com/kalda/weburl/host"
)

// ToNetURL converts u to the standard library's net/url.URL, for handing
// off to code that only knows that type (e.g. net/http). Grounded on
// _examples/region23-urlparser/urlparser.go's ToNetURL.
func (u *URL) ToNetURL() *url.URL {
	ret := &url.URL{
		Scheme:   u.Scheme,
		RawQuery: u.queryOrEmpty(),
	}
	if u.Username != "" || u.Password != "" {
		if u.Password != "" {
			ret.User = url.UserPassword(u.Username, u.Password)
		} else {
			ret.User = url.User(u.Username)
		}
	}
	if u.Host != nil {
		ret.Host = host.Serialize(u.Host)
		if u.Port != nil {
			ret.Host += ":" + strconv.Itoa(*u.Port)
		}
	}
	if u.CannotBeABase {
		ret.Opaque = u.opaquePath()
	} else {
		ret.Path = u.EscapedPath()
		ret.RawPath = u.EscapedPath()
	}
	if u.Fragment != nil {
		ret.Fragment = *u.Fragment
	}
	return ret
}

// normalizeFlags mirrors the flag set assembled in
// _examples/region23-urlparser/urlparser.go's Normalize, minus
// FlagDecodeDWORDHost/FlagDecodeOctalHost/FlagDecodeHexHost: this parser's
// own host state (host.Parse) already canonicalizes those forms during
// parsing, so asking purell to redo it would just re-walk a host string
// that is already in its canonical form.
const normalizeFlags purell.NormalizationFlags = purell.FlagRemoveDefaultPort |
	purell.FlagRemoveUnnecessaryHostDots | purell.FlagRemoveDotSegments | purell.FlagRemoveDuplicateSlashes |
	purell.FlagUppercaseEscapes | purell.FlagDecodeUnnecessaryEscapes | purell.FlagEncodeNecessaryEscapes |
	purell.FlagSortQuery

// Normalize returns a normalized string form of u via purell, for callers
// that need legacy RFC 3986-style normalization (duplicate-slash removal,
// query sorting, default-port stripping) rather than the WHATWG
// serialization String returns.
func (u *URL) Normalize() string {
	return purell.NormalizeURL(u.ToNetURL(), normalizeFlags)
}
