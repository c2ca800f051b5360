/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "github.com/sirupsen/logrus"

// ValidationError is a non-fatal parser-detected deviation (§7): the URL is
// still produced, but the caller may want to know leading whitespace was
// trimmed, a backslash was normalized to a slash, and so on.
type ValidationError struct {
	Code  string
	State State
	Pos   int
}

// Validation error codes collected by the parser. Matches the examples
// named in spec.md §7.
const (
	ErrLeadingTrailingWhitespace = "leading-or-trailing-whitespace"
	ErrTabOrNewline              = "tab-or-newline-in-url"
	ErrBackslashAsSlash          = "backslash-treated-as-slash"
	ErrMissingAtBuffer           = "empty-userinfo-buffer-at-sign"
	ErrMalformedPercentEscape    = "malformed-percent-escape"
	ErrNullInFragment            = "null-in-fragment"
	ErrInvalidPortNumber         = "invalid-port-number"
	ErrUnterminatedIPv6          = "unterminated-ipv6-bracket"
	ErrSpecialSchemeMissingSlash = "special-scheme-missing-slashes"
	ErrInvalidSchemeStart        = "invalid-scheme-start"
)

// Parser drives the basic URL parser. The zero value is ready to use; Log
// is optional and, when set, receives one structured entry per collected
// ValidationError — an opt-in, nil-safe logging hook (SPEC_FULL.md §B),
// grounded on _examples/terorie-oddb-go/scheduler.go's use of logrus
// field-based logging in place of the plain "log" package the rest of the
// teacher reaches for.
type Parser struct {
	Log *logrus.Logger
}

func (p *Parser) collect(u *URL, code string, state State, pos int) {
	ve := ValidationError{Code: code, State: state, Pos: pos}
	u.validationErrs = append(u.validationErrs, ve)
	if p == nil || p.Log == nil {
		return
	}
	p.Log.WithFields(logrus.Fields{
		"code":  ve.Code,
		"state": ve.State.String(),
		"pos":   ve.Pos,
	}).Debug("url: validation error")
}

// ValidationErrors returns the non-fatal deviations collected during the
// most recent parse or setter call that touched u. The slice is owned by
// the caller; mutating it has no further effect.
func (u *URL) ValidationErrors() []ValidationError {
	out := make([]ValidationError, len(u.validationErrs))
	copy(out, u.validationErrs)
	return out
}
