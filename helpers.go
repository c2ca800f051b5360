/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strings"

	"github.com/kalda/weburl/percent"
)

func isC0OrSpace(c rune) bool { return c <= 0x20 }

func isASCIIAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c rune) bool { return c >= '0' && c <= '9' }

func isASCIIAlphanumeric(c rune) bool { return isASCIIAlpha(c) || isASCIIDigit(c) }

func lowerRune(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func ptr(s string) *string { return &s }

func copyStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyPort(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// utf8EscapeRune percent-encodes the UTF-8 bytes of a single code point,
// used when the path/query/fragment states decide a code point needs
// escaping (§4.A).
func utf8EscapeRune(c rune) string {
	return percent.EscapeRuneForce(c)
}

// isWindowsDriveLetterRunes reports whether a, b form a Windows drive
// letter pair: an ASCII letter followed by ':' or '|' (§4.E, file state).
func isWindowsDriveLetterRunes(a, b rune) bool {
	return isASCIIAlpha(a) && (b == ':' || b == '|')
}

func isWindowsDriveLetterStr(s string) bool {
	r := []rune(s)
	return len(r) == 2 && isWindowsDriveLetterRunes(r[0], r[1])
}

func isNormalizedWindowsDriveLetterStr(s string) bool {
	r := []rune(s)
	return len(r) == 2 && isASCIIAlpha(r[0]) && r[1] == ':'
}

// startsWithWindowsDriveLetter reports whether r begins with a Windows
// drive letter that is either the whole remaining input or immediately
// followed by a path delimiter (§4.E, file state).
func startsWithWindowsDriveLetter(r []rune) bool {
	if len(r) < 2 || !isWindowsDriveLetterRunes(r[0], r[1]) {
		return false
	}
	if len(r) == 2 {
		return true
	}
	switch r[2] {
	case '/', '\\', '?', '#':
		return true
	default:
		return false
	}
}

func isSingleDotPathSegment(s string) bool {
	return s == "." || strings.EqualFold(s, "%2e")
}

func isDoubleDotPathSegment(s string) bool {
	switch {
	case s == "..":
		return true
	case strings.EqualFold(s, ".%2e"), strings.EqualFold(s, "%2e."), strings.EqualFold(s, "%2e%2e"):
		return true
	default:
		return false
	}
}

// shortenPath removes the last path segment (§4.E), except that a file
// URL's lone normalized Windows drive-letter segment is never removed.
func shortenPath(u *URL) {
	if len(u.Path) == 0 {
		return
	}
	if u.Scheme == "file" && len(u.Path) == 1 && isNormalizedWindowsDriveLetterStr(u.Path[0]) {
		return
	}
	u.Path = u.Path[:len(u.Path)-1]
}

func isHexRune(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// malformedPercentEscape reports whether the '%' at r[pointer] is not
// followed by two hex digits (§7).
func malformedPercentEscape(r []rune, pointer int) bool {
	if pointer >= len(r) || r[pointer] != '%' {
		return false
	}
	if pointer+2 >= len(r) {
		return true
	}
	return !isHexRune(r[pointer+1]) || !isHexRune(r[pointer+2])
}

// appendPathCodePoint appends c to buf, percent-encoding it first if it
// falls in the general escape set (§4.A, path state).
func appendPathCodePoint(buf *strings.Builder, c rune) {
	if c == '%' {
		buf.WriteRune(c)
		return
	}
	if percent.EscapeRune(c, percent.General) {
		buf.WriteString(utf8EscapeRune(c))
	} else {
		buf.WriteRune(c)
	}
}
