/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kalda/weburl/host"
	"github.com/kalda/weburl/percent"
)

// Parse runs the basic URL parser (§4.E) on input, with no existing record
// to mutate and the state starting at scheme-start. base, if non-nil, is
// used to resolve a relative input.
func (p *Parser) Parse(input string, base *URL) (*URL, error) {
	u, err := p.run(input, base, nil, nil)
	if err != nil {
		return nil, &Error{Op: "parse", URL: input, Err: err}
	}
	return u, nil
}

// ParseWithOverride re-parses input into the existing record u, starting
// at stateOverride instead of scheme-start (§4.E, §4.G). u is mutated in
// place only on success; on failure it is left untouched, matching the
// "setter that fails leaves the record unchanged" rule (§4.G, §5).
func (p *Parser) ParseWithOverride(input string, base *URL, u *URL, stateOverride State) error {
	scratch := *u
	scratch.Path = append([]string(nil), u.Path...)
	scratch.validationErrs = nil
	if _, err := p.run(input, base, &scratch, &stateOverride); err != nil {
		return err
	}
	*u = scratch
	return nil
}

const eof = rune(-1)

// run is the 21-state machine itself (§4.E). It returns the resulting
// record and, for a fatal failure, a non-nil error. Validation errors are
// collected on u.validationErrs as the machine runs.
func (p *Parser) run(input string, base *URL, urlInOut *URL, stateOverride *State) (*URL, error) {
	u := urlInOut
	if u == nil {
		u = &URL{}
	}

	if stateOverride == nil {
		trimmed := strings.TrimFunc(input, isC0OrSpace)
		if trimmed != input {
			p.collect(u, ErrLeadingTrailingWhitespace, StateSchemeStart, 0)
		}
		input = trimmed
	}
	var b strings.Builder
	b.Grow(len(input))
	stripped := false
	for _, c := range input {
		if c == '\t' || c == '\n' || c == '\r' {
			stripped = true
			continue
		}
		b.WriteRune(c)
	}
	if stripped {
		p.collect(u, ErrTabOrNewline, StateSchemeStart, 0)
	}
	r := []rune(b.String())

	state := StateSchemeStart
	if stateOverride != nil {
		state = *stateOverride
	}

	var buf strings.Builder
	var atSignSeen, insideBrackets, passwordTokenSeen bool

	special := func() bool { return isSpecialScheme(u.Scheme) }
	specialBackslashes := func(c rune) bool { return c == '/' || (special() && c == '\\') }

	for pointer := 0; pointer <= len(r); pointer++ {
		var c rune
		if pointer == len(r) {
			c = eof
		} else {
			c = r[pointer]
		}

		switch state {

		case StateSchemeStart:
			switch {
			case isASCIIAlpha(c):
				buf.WriteRune(lowerRune(c))
				state = StateScheme
			case stateOverride == nil:
				state = StateNoScheme
				pointer--
			default:
				p.collect(u, ErrInvalidSchemeStart, state, pointer)
				return u, fail("invalid scheme start character")
			}

		case StateScheme:
			switch {
			case isASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.':
				buf.WriteRune(lowerRune(c))
			case c == ':':
				scheme := buf.String()
				buf.Reset()
				if stateOverride != nil {
					wasSpecial := isSpecialScheme(u.Scheme)
					isSpecial := isSpecialScheme(scheme)
					if wasSpecial != isSpecial {
						return u, nil
					}
					if (u.Username != "" || u.Password != "" || u.Port != nil) && scheme == "file" {
						return u, nil
					}
					if u.Scheme == "file" && u.Host != nil && u.Host.Kind == host.Empty {
						return u, nil
					}
				}
				u.Scheme = scheme
				if stateOverride != nil {
					if dp, ok := defaultPort(u.Scheme); ok && u.Port != nil && *u.Port == dp {
						u.Port = nil
					}
					return u, nil
				}
				switch {
				case u.Scheme == "file":
					state = StateFile
				case isSpecialScheme(u.Scheme) && base != nil && base.Scheme == u.Scheme:
					state = StateSpecialRelativeOrAuthority
				case isSpecialScheme(u.Scheme):
					state = StateSpecialAuthoritySlashes
				case pointer+1 < len(r) && r[pointer+1] == '/':
					state = StatePathOrAuthority
					pointer++
				default:
					u.CannotBeABase = true
					u.Path = append(u.Path, "")
					state = StateCannotBeABaseURLPath
				}
			case stateOverride == nil:
				buf.Reset()
				state = StateNoScheme
				pointer = -1
			default:
				return u, fail("invalid scheme")
			}

		case StateNoScheme:
			switch {
			case base == nil || (base.CannotBeABase && c != '#'):
				return u, fail("missing scheme and no base to resolve against")
			case base.CannotBeABase && c == '#':
				u.Scheme = base.Scheme
				u.Path = append([]string(nil), base.Path...)
				u.Query = copyStr(base.Query)
				u.Fragment = ptr("")
				u.CannotBeABase = true
				state = StateFragment
			case base.Scheme != "file":
				state = StateRelative
				pointer--
			default:
				state = StateFile
				pointer--
			}

		case StateSpecialRelativeOrAuthority:
			if c == '/' && pointer+1 < len(r) && r[pointer+1] == '/' {
				state = StateSpecialAuthoritySlashes
				pointer++
			} else {
				p.collect(u, ErrSpecialSchemeMissingSlash, state, pointer)
				state = StateRelative
				pointer--
			}

		case StatePathOrAuthority:
			if c == '/' {
				state = StateAuthority
			} else {
				state = StatePath
				pointer--
			}

		case StateRelative:
			u.Scheme = base.Scheme
			switch {
			case c == '/':
				state = StateRelativeSlash
			case special() && c == '\\':
				p.collect(u, ErrBackslashAsSlash, state, pointer)
				state = StateRelativeSlash
			default:
				u.Username = base.Username
				u.Password = base.Password
				u.Host = base.Host
				u.Port = copyPort(base.Port)
				u.Path = append([]string(nil), base.Path...)
				u.Query = copyStr(base.Query)
				switch {
				case c == '?':
					u.Query = ptr("")
					state = StateQuery
				case c == '#':
					u.Fragment = ptr("")
					state = StateFragment
				case c == eof:
					// leave query/fragment as copied from base
				default:
					u.Query = nil
					shortenPath(u)
					state = StatePath
					pointer--
				}
			}

		case StateRelativeSlash:
			switch {
			case special() && (c == '/' || c == '\\'):
				if c == '\\' {
					p.collect(u, ErrBackslashAsSlash, state, pointer)
				}
				state = StateSpecialAuthorityIgnoreSlashes
			case c == '/':
				state = StateAuthority
			default:
				u.Username = base.Username
				u.Password = base.Password
				u.Host = base.Host
				u.Port = copyPort(base.Port)
				state = StatePath
				pointer--
			}

		case StateSpecialAuthoritySlashes:
			if c == '/' && pointer+1 < len(r) && r[pointer+1] == '/' {
				state = StateSpecialAuthorityIgnoreSlashes
				pointer++
			} else {
				p.collect(u, ErrSpecialSchemeMissingSlash, state, pointer)
				state = StateSpecialAuthorityIgnoreSlashes
				pointer--
			}

		case StateSpecialAuthorityIgnoreSlashes:
			if c != '/' && c != '\\' {
				state = StateAuthority
				pointer--
			} else {
				p.collect(u, ErrSpecialSchemeMissingSlash, state, pointer)
			}

		case StateAuthority:
			switch {
			case c == '@':
				p.collect(u, ErrMissingAtBuffer, state, pointer)
				if atSignSeen {
					buf2 := "%40" + buf.String()
					buf.Reset()
					buf.WriteString(buf2)
				}
				atSignSeen = true
				flushed := []rune(buf.String())
				buf.Reset()
				for _, fc := range flushed {
					if fc == ':' && !passwordTokenSeen {
						passwordTokenSeen = true
						continue
					}
					enc := percent.Escape(string(fc), percent.General)
					if passwordTokenSeen {
						u.Password += enc
					} else {
						u.Username += enc
					}
				}
			case eof == c || c == '/' || c == '?' || c == '#' || specialBackslashes(c):
				if atSignSeen && buf.Len() == 0 {
					return u, fail("empty userinfo buffer after '@'")
				}
				pointer -= utf8.RuneCountInString(buf.String()) + 1
				buf.Reset()
				state = StateHost
			default:
				buf.WriteRune(c)
			}

		case StateHost, StateHostname:
			if stateOverride != nil && u.Scheme == "file" {
				state = StateFileHost
				pointer--
				continue
			}
			switch {
			case c == ':' && !insideBrackets:
				if buf.Len() == 0 {
					return u, InvalidHostError("empty host before ':'")
				}
				if stateOverride != nil && state == StateHostname {
					return u, nil
				}
				h, err := host.Parse(buf.String(), special())
				if err != nil {
					return u, err
				}
				u.Host = h
				buf.Reset()
				state = StatePort
			case c == eof || c == '/' || c == '?' || c == '#' || specialBackslashes(c):
				pointer--
				if special() && buf.Len() == 0 {
					return u, InvalidHostError("empty host in special URL")
				}
				if stateOverride != nil && buf.Len() == 0 && (u.Username != "" || u.Password != "" || u.Port != nil) {
					return u, nil
				}
				h, err := host.Parse(buf.String(), special())
				if err != nil {
					return u, err
				}
				u.Host = h
				buf.Reset()
				if stateOverride != nil {
					return u, nil
				}
				state = StatePathStart
			case c == '[':
				insideBrackets = true
				buf.WriteRune(c)
			case c == ']':
				insideBrackets = false
				buf.WriteRune(c)
			default:
				buf.WriteRune(c)
			}

		case StatePort:
			switch {
			case isASCIIDigit(c):
				buf.WriteRune(c)
			case c == eof || c == '/' || c == '?' || c == '#' || specialBackslashes(c) || stateOverride != nil:
				if buf.Len() > 0 {
					n, err := strconv.Atoi(buf.String())
					if err != nil || n > 65535 {
						p.collect(u, ErrInvalidPortNumber, state, pointer)
						return u, fail("invalid port number")
					}
					if dp, ok := defaultPort(u.Scheme); ok && n == dp {
						u.Port = nil
					} else {
						u.Port = &n
					}
					buf.Reset()
				}
				if stateOverride != nil {
					return u, nil
				}
				state = StatePathStart
				pointer--
			default:
				return u, fail("invalid port character")
			}

		case StateFile:
			u.Scheme = "file"
			u.Host = &host.Host{Kind: host.Empty}
			switch {
			case c == '/' || c == '\\':
				if c == '\\' {
					p.collect(u, ErrBackslashAsSlash, state, pointer)
				}
				state = StateFileSlash
			case base != nil && base.Scheme == "file":
				u.Host = base.Host
				u.Path = append([]string(nil), base.Path...)
				u.Query = copyStr(base.Query)
				switch {
				case c == '?':
					u.Query = ptr("")
					state = StateQuery
				case c == '#':
					u.Fragment = ptr("")
					state = StateFragment
				case c == eof:
					// leave as copied
				default:
					u.Query = nil
					if startsWithWindowsDriveLetter(r[pointer:]) {
						u.Path = nil
					} else {
						shortenPath(u)
					}
					state = StatePath
					pointer--
				}
			default:
				state = StatePath
				pointer--
			}

		case StateFileSlash:
			switch {
			case c == '/' || c == '\\':
				if c == '\\' {
					p.collect(u, ErrBackslashAsSlash, state, pointer)
				}
				state = StateFileHost
			default:
				if base != nil && base.Scheme == "file" {
					u.Host = base.Host
					if !startsWithWindowsDriveLetter(r[pointer:]) && len(base.Path) > 0 && isNormalizedWindowsDriveLetterStr(base.Path[0]) {
						u.Path = append(u.Path, base.Path[0])
					}
				}
				state = StatePath
				pointer--
			}

		case StateFileHost:
			switch {
			case c == eof || c == '/' || c == '\\' || c == '?' || c == '#':
				if stateOverride == nil && isWindowsDriveLetterStr(buf.String()) {
					p.collect(u, ErrSpecialSchemeMissingSlash, state, pointer)
					pointer -= utf8.RuneCountInString(buf.String())
					buf.Reset()
					state = StatePath
					break
				}
				pointer--
				if buf.Len() == 0 {
					u.Host = &host.Host{Kind: host.Empty}
					if stateOverride != nil {
						return u, nil
					}
					state = StatePathStart
				} else {
					h, err := host.Parse(buf.String(), true)
					if err != nil {
						return u, err
					}
					if h.Kind == host.Domain && h.Value == "localhost" {
						h = &host.Host{Kind: host.Empty}
					}
					u.Host = h
					buf.Reset()
					if stateOverride != nil {
						return u, nil
					}
					state = StatePathStart
				}
			default:
				buf.WriteRune(c)
			}

		case StatePathStart:
			switch {
			case special():
				if c == '\\' {
					p.collect(u, ErrBackslashAsSlash, state, pointer)
				}
				state = StatePath
				if c != '/' && c != '\\' {
					pointer--
				}
			case stateOverride == nil && c == '?':
				u.Query = ptr("")
				state = StateQuery
			case stateOverride == nil && c == '#':
				u.Fragment = ptr("")
				state = StateFragment
			case c != eof:
				state = StatePath
				if c != '/' {
					pointer--
				}
			default:
				if stateOverride != nil && u.Host == nil {
					u.Path = append(u.Path, "")
				}
			}

		case StatePath:
			switch {
			case c == eof || c == '/' || (special() && c == '\\') || (stateOverride == nil && (c == '?' || c == '#')):
				if special() && c == '\\' {
					p.collect(u, ErrBackslashAsSlash, state, pointer)
				}
				seg := buf.String()
				switch {
				case isDoubleDotPathSegment(seg):
					shortenPath(u)
					if c != '/' && !(special() && c == '\\') {
						u.Path = append(u.Path, "")
					}
				case isSingleDotPathSegment(seg):
					if c != '/' && !(special() && c == '\\') {
						u.Path = append(u.Path, "")
					}
				default:
					if u.Scheme == "file" && len(u.Path) == 0 && isWindowsDriveLetterStr(seg) {
						segRunes := []rune(seg)
						segRunes[1] = ':'
						seg = string(segRunes)
						if u.Host != nil && u.Host.Kind != host.Empty {
							u.Host = &host.Host{Kind: host.Empty}
						}
					}
					u.Path = append(u.Path, seg)
				}
				buf.Reset()
				if c == '?' {
					u.Query = ptr("")
					state = StateQuery
				} else if c == '#' {
					u.Fragment = ptr("")
					state = StateFragment
				} else if c == eof {
					// done
				}
			default:
				if c == '%' && malformedPercentEscape(r, pointer) {
					p.collect(u, ErrMalformedPercentEscape, state, pointer)
				}
				appendPathCodePoint(&buf, c)
			}

		case StateCannotBeABaseURLPath:
			switch {
			case c == '?':
				u.Query = ptr("")
				state = StateQuery
			case c == '#':
				u.Fragment = ptr("")
				state = StateFragment
			case c == eof:
				// done
			default:
				if c == 0 {
					p.collect(u, ErrNullInFragment, state, pointer)
				}
				if c == '%' && malformedPercentEscape(r, pointer) {
					p.collect(u, ErrMalformedPercentEscape, state, pointer)
				}
				if len(u.Path) == 0 {
					u.Path = append(u.Path, "")
				}
				if percent.EscapeRune(c, percent.General) {
					u.Path[0] += utf8EscapeRune(c)
				} else {
					u.Path[0] += string(c)
				}
			}

		case StateQuery:
			switch {
			case c == eof || c == '#':
				seg := u.Query
				if seg == nil {
					seg = ptr("")
				}
				*seg += buf.String()
				u.Query = seg
				buf.Reset()
				if stateOverride != nil {
					return u, nil
				}
				if c == '#' {
					u.Fragment = ptr("")
					state = StateFragment
				}
			default:
				if c == 0 {
					p.collect(u, ErrNullInFragment, state, pointer)
				}
				if c == '%' && malformedPercentEscape(r, pointer) {
					p.collect(u, ErrMalformedPercentEscape, state, pointer)
				}
				set := percent.Query
				if percent.EscapeRune(c, set) {
					buf.WriteString(utf8EscapeRune(c))
				} else {
					buf.WriteRune(c)
				}
			}

		case StateFragment:
			switch {
			case c == eof:
				cur := u.Fragment
				if cur == nil {
					cur = ptr("")
				}
				*cur += buf.String()
				u.Fragment = cur
				buf.Reset()
			case c == 0:
				p.collect(u, ErrNullInFragment, state, pointer)
			default:
				if c == '%' && malformedPercentEscape(r, pointer) {
					p.collect(u, ErrMalformedPercentEscape, state, pointer)
				}
				if percent.EscapeRune(c, percent.Query) {
					buf.WriteString(utf8EscapeRune(c))
				} else {
					buf.WriteRune(c)
				}
			}
		}
	}

	if u.Scheme == "file" {
		cleanupFilePath(u)
	}

	return u, nil
}

// cleanupFilePath repeatedly removes a leading empty path segment while
// the path has more than one segment, per the file-scheme cleanup rule
// applied when leaving the path state (§4.E).
func cleanupFilePath(u *URL) {
	for len(u.Path) > 1 && u.Path[0] == "" {
		u.Path = u.Path[1:]
	}
}
