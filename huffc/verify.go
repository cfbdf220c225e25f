// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"golang.org/x/huff"
)

var errVerify = errors.New("verification failed: decompressed output differs from input")

// verify decompresses the file compressed and checks that it yields
// the same BLAKE2b-256 digest as the original input.
func verify(original *input, compressed string) error {
	if err := original.rewind(); err != nil {
		return err
	}
	want, err := digest(func(w io.Writer) error {
		_, err := io.Copy(w, original)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "hashing input")
	}

	f, err := os.Open(compressed)
	if err != nil {
		return err
	}
	defer f.Close()
	got, err := digest(func(w io.Writer) error {
		_, err := huff.DecompressStream(w, f)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "verifying")
	}
	if !bytes.Equal(got, want) {
		return errVerify
	}
	log.Debugf("%s: blake2b-256 %x verified", compressed, got)
	return nil
}

func digest(fill func(w io.Writer) error) ([]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, err
	}
	if err := fill(h); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
