/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strconv"

// Error reports a fatal parse failure: the operation attempted, the input
// that caused it, and the underlying cause. Mirrors the teacher's
// url.Error (_examples/badu-http/url/error.go) verbatim in shape.
type Error struct {
	Op  string
	URL string
	Err error
}

func (e *Error) Error() string { return e.Op + " " + e.URL + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

type timeout interface {
	Timeout() bool
}

func (e *Error) Timeout() bool {
	t, ok := e.Err.(timeout)
	return ok && t.Timeout()
}

type temporary interface {
	Temporary() bool
}

func (e *Error) Temporary() bool {
	t, ok := e.Err.(temporary)
	return ok && t.Temporary()
}

// EscapeError reports an invalid percent-escape sequence, exactly as the
// teacher's url.EscapeError does.
type EscapeError string

func (e EscapeError) Error() string {
	return "invalid URL escape " + strconv.Quote(string(e))
}

// InvalidHostError reports a host the parser could not accept. Exists on
// the root package alongside host.InvalidHostError because the parser
// raises host failures that originate outside the host package too (e.g.
// an empty required host).
type InvalidHostError string

func (e InvalidHostError) Error() string {
	return "invalid host " + strconv.Quote(string(e))
}

// failure is the sentinel fatal-parse-failure marker (§4.E, §7): any error
// value returned from run signals a hard failure, as opposed to a
// ValidationError, which is only ever collected, never returned.
type failure struct {
	reason string
}

func (f *failure) Error() string { return f.reason }

func fail(reason string) error { return &failure{reason: reason} }
