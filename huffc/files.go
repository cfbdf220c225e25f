// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

var errNotSeekable = errors.New("input is not seekable")

// An input is an opened input stream. It can be rewound to where it
// started if it is backed by a seekable file.
type input struct {
	io.Reader
	seeker  io.Seeker // nil if the input cannot be rewound
	start   int64
	closers []func() error
}

// openInput opens name, or the app's standard input for "-". If
// seekable is set, an input that cannot seek, such as a pipe, is
// first copied to a temporary file.
func (a *app) openInput(name string, seekable bool) (*input, error) {
	if name == "-" {
		return newInput(a.stdin, seekable)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if err := adviseSequential(f); err != nil {
		log.Debugf("%s: fadvise: %v", name, err)
	}
	in, err := newInput(f, seekable)
	if err != nil {
		f.Close()
		return nil, err
	}
	in.closers = append(in.closers, f.Close)
	return in, nil
}

func newInput(r io.Reader, seekable bool) (*input, error) {
	in := &input{Reader: r}
	if s, ok := r.(io.Seeker); ok {
		if off, err := s.Seek(0, io.SeekCurrent); err == nil {
			in.seeker, in.start = s, off
			return in, nil
		}
	}
	if !seekable {
		return in, nil
	}
	tmp, err := os.CreateTemp("", "huffc-*")
	if err != nil {
		return nil, errors.Wrap(err, "spooling input")
	}
	in.closers = append(in.closers, func() error {
		err := tmp.Close()
		os.Remove(tmp.Name())
		return err
	})
	n, err := io.Copy(tmp, r)
	if err == nil {
		_, err = tmp.Seek(0, io.SeekStart)
	}
	if err != nil {
		in.Close()
		return nil, errors.Wrap(err, "spooling input")
	}
	log.Debugf("spooled %d bytes to %s", n, tmp.Name())
	in.Reader, in.seeker, in.start = tmp, tmp, 0
	return in, nil
}

func (in *input) Seek(offset int64, whence int) (int64, error) {
	if in.seeker == nil {
		return 0, errNotSeekable
	}
	return in.seeker.Seek(offset, whence)
}

// rewind returns the input to where it was when it was opened.
func (in *input) rewind() error {
	if _, err := in.Seek(in.start, io.SeekStart); err != nil {
		return errors.Wrap(err, "rewinding input")
	}
	return nil
}

func (in *input) Close() error {
	var first error
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	in.closers = nil
	return first
}

// createOutput creates name for writing. Unless force is set, an
// existing file is an error.
func createOutput(name string, force bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(name, flags, 0644)
	if os.IsExist(err) {
		return nil, errors.Errorf("%s already exists; use -f to overwrite", name)
	}
	return f, err
}
