// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import "github.com/pkg/errors"

// Errors returned by Compress, Decompress and the stream helpers.
// They are usually wrapped with context; test for them with
// errors.Is.
var (
	ErrBadMagic         = errors.New("huff: bad magic number")
	ErrTruncatedHeader  = errors.New("huff: truncated tree header")
	ErrTruncatedPayload = errors.New("huff: truncated payload, no PSEUDO_EOF")
	ErrBadHeader        = errors.New("huff: malformed tree header")

	// ErrMissingCode means the encoder met a symbol the counting
	// pass never saw, which happens only if the input changed
	// between the two passes.
	ErrMissingCode = errors.New("huff: symbol has no code")

	ErrCodeTooLong = errors.New("huff: code longer than 64 bits")
)
