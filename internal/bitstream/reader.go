// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitstream adapts byte streams to the MSB-first bit ports
// used by the huff package.
//
// A Reader reports the end of its input as io.EOF, including a
// multi-bit read that runs out part way through; the bits it did
// consume are lost. Any other error comes from the underlying stream.
package bitstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("huff/bitstream")

func init() {
	logging.SetLevel(logging.WARNING, log.Module)
}

var (
	ErrWidth       = errors.New("bitstream: bit width out of range")
	ErrNotSeekable = errors.New("bitstream: reader cannot be reset")
)

// maxWidth is the widest field ReadBits and WriteBits move at once.
const maxWidth = 32

// A Reader reads fixed-width unsigned fields from an io.Reader,
// most significant bit first.
type Reader struct {
	src   io.Reader
	br    *bitio.Reader
	start int64 // src offset that Reset returns to; -1 if src is not seekable
	nbits int64 // bits delivered since the last Reset
}

// NewReader returns a Reader consuming src. If src implements
// io.Seeker, the current offset is remembered so that Reset can
// return to it.
func NewReader(src io.Reader) *Reader {
	r := &Reader{src: src, start: -1}
	if s, ok := src.(io.Seeker); ok {
		if off, err := s.Seek(0, io.SeekCurrent); err == nil {
			r.start = off
		}
	}
	r.br = bitio.NewReader(src)
	return r
}

// ReadBits reads n bits (1 <= n <= 32) and returns them in the low
// n bits of the result.
func (r *Reader) ReadBits(n int) (uint32, error) {
	if n < 1 || n > maxWidth {
		return 0, errors.Wrapf(ErrWidth, "read of %d bits", n)
	}
	v, err := r.br.ReadBits(uint8(n))
	if err != nil {
		return 0, err
	}
	r.nbits += int64(n)
	return uint32(v), nil
}

// ReadBit reads a single bit, reporting 1 as true.
func (r *Reader) ReadBit() (bool, error) {
	b, err := r.br.ReadBool()
	if err != nil {
		return false, err
	}
	r.nbits++
	return b, nil
}

// Reset repositions the reader at the offset its source had when
// NewReader was called, discarding any buffered bits.
func (r *Reader) Reset() error {
	if r.start < 0 {
		return ErrNotSeekable
	}
	if _, err := r.src.(io.Seeker).Seek(r.start, io.SeekStart); err != nil {
		return errors.Wrap(err, "bitstream: reset")
	}
	log.Debugf("reset after %d bits", r.nbits)
	r.br = bitio.NewReader(r.src)
	r.nbits = 0
	return nil
}

// BitsRead reports the number of bits delivered since the reader
// was created or last Reset.
func (r *Reader) BitsRead() int64 { return r.nbits }
