/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"encoding/base64"

	"github.com/kalda/weburl/percent"
)

// QueryEscape escapes s for safe inclusion in a query string, using the
// narrower query percent-escape set (§4.A) that leaves '?' unescaped.
func QueryEscape(s string) string { return percent.Escape(s, percent.Query) }

// QueryUnescape reverses QueryEscape.
func QueryUnescape(s string) (string, error) { return percent.Decode(s) }

// PathEscape escapes s for safe inclusion in a URL path segment or
// userinfo component, using the general percent-escape set (§4.A).
func PathEscape(s string) string { return percent.Escape(s, percent.General) }

// PathUnescape reverses PathEscape.
func PathUnescape(s string) (string, error) { return percent.Decode(s) }

// BasicAuth builds the base64-encoded "user:pass" credential string used
// in an HTTP Basic Authorization header. Carried over from the teacher's
// url.BasicAuth (_examples/badu-http/url/public.go) since Username/Password
// remain first-class URL record fields (§3, SPEC_FULL.md §D.4).
func BasicAuth(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
