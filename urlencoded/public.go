/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package urlencoded

import (
	"strings"

	"github.com/kalda/weburl/percent"
)

const upperhex = "0123456789ABCDEF"

// Parse splits input on '&', drops empty segments, and within each segment
// splits at the first '=' (or treats the whole segment as the name with an
// empty value, if there is none). Every '+' becomes a space in both name
// and value, and the resulting strings are percent-decoded; a name or value
// holding a malformed escape (such as "%zz") is kept undecoded rather than
// failing the parse, so the returned error is always nil.
func Parse(input string) ([]Pair, error) {
	var pairs []Pair
	for _, segment := range strings.Split(input, "&") {
		if segment == "" {
			continue
		}
		name, value := segment, ""
		if i := strings.IndexByte(segment, '='); i >= 0 {
			name, value = segment[:i], segment[i+1:]
		}
		name = strings.ReplaceAll(name, "+", " ")
		value = strings.ReplaceAll(value, "+", " ")

		decodedName, err := percent.Decode(name)
		if err != nil {
			decodedName = name
		}
		decodedValue, err := percent.Decode(value)
		if err != nil {
			decodedValue = value
		}
		pairs = append(pairs, Pair{Name: decodedName, Value: decodedValue})
	}
	return pairs, nil
}

// Serialize joins pairs with '&' in order, each as "name=value". Bytewise:
// space becomes '+' (not %20, unlike the general percent-encoder), the set
// [A-Za-z0-9*\-._] is left literal, and everything else is percent-encoded.
func Serialize(pairs []Pair) string {
	var buf strings.Builder
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte('&')
		}
		writeEscaped(&buf, p.Name)
		buf.WriteByte('=')
		writeEscaped(&buf, p.Value)
	}
	return buf.String()
}

func writeEscaped(buf *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			buf.WriteByte('+')
		case isUnreserved(c):
			buf.WriteByte(c)
		default:
			buf.WriteByte('%')
			buf.WriteByte(upperhex[c>>4])
			buf.WriteByte(upperhex[c&0x0F])
		}
	}
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '*' || c == '-' || c == '.' || c == '_':
		return true
	}
	return false
}
