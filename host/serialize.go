/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package host

// Serialize implements §4.B serializeHost: the stored payload is emitted
// verbatim for Domain and Opaque, bracketed for IPv6, and as the empty
// string for Empty. A nil Host (no host at all) also serializes to "".
func Serialize(h *Host) string {
	if h == nil {
		return ""
	}
	switch h.Kind {
	case IPv6:
		return "[" + h.Value + "]"
	case Empty:
		return ""
	default:
		return h.Value
	}
}
