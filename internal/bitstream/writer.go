// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// A Writer writes fixed-width unsigned fields to an io.Writer, most
// significant bit first. Output is buffered; Close must be called to
// emit the final, zero-padded byte.
type Writer struct {
	bw     *bitio.Writer
	nbits  int64
	closed bool
}

// NewWriter returns a Writer producing bytes on dst.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(dst)}
}

// WriteBits writes the low n bits of v (1 <= n <= 32).
func (w *Writer) WriteBits(n int, v uint32) error {
	if n < 1 || n > maxWidth {
		return errors.Wrapf(ErrWidth, "write of %d bits", n)
	}
	if w.closed {
		return errors.New("bitstream: write after Close")
	}
	mask := uint64(1)<<uint(n) - 1
	if err := w.bw.WriteBits(uint64(v)&mask, uint8(n)); err != nil {
		return err
	}
	w.nbits += int64(n)
	return nil
}

// Close pads the last partial byte with zero bits and flushes
// buffered output. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	log.Debugf("close after %d bits", w.nbits)
	return w.bw.Close()
}

// BitsWritten reports the number of bits accepted so far, not
// counting the padding added by Close.
func (w *Writer) BitsWritten() int64 { return w.nbits }
