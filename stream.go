// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"golang.org/x/huff/internal/bitstream"
)

// Stats reports the amount of data a stream call consumed and
// produced, in bits. BitsOut excludes the padding of the last byte.
type Stats struct {
	BitsIn, BitsOut int64
}

// BytesIn returns BitsIn rounded up to whole bytes.
func (s Stats) BytesIn() int64 { return (s.BitsIn + 7) / 8 }

// BytesOut returns BitsOut rounded up to whole bytes.
func (s Stats) BytesOut() int64 { return (s.BitsOut + 7) / 8 }

// CompressStream compresses src into dst. src is read twice; the
// second pass starts at the offset src had when CompressStream was
// called. BitsIn counts the encoding pass only.
func CompressStream(dst io.Writer, src io.ReadSeeker) (Stats, error) {
	in := bitstream.NewReader(src)
	out := bitstream.NewWriter(dst)
	err := Compress(in, out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "huff: flushing output")
	}
	return Stats{BitsIn: in.BitsRead(), BitsOut: out.BitsWritten()}, err
}

// DecompressStream decompresses src into dst. Nothing is written to
// dst if src does not start with the HuffTree magic number.
func DecompressStream(dst io.Writer, src io.Reader) (Stats, error) {
	in := bitstream.NewReader(src)
	out := bitstream.NewWriter(dst)
	err := Decompress(in, out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "huff: flushing output")
	}
	return Stats{BitsIn: in.BitsRead(), BitsOut: out.BitsWritten()}, err
}

// CompressBytes returns the compressed form of p.
func CompressBytes(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := CompressStream(&buf, bytes.NewReader(p)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes returns the bytes that were compressed into p.
func DecompressBytes(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := DecompressStream(&buf, bytes.NewReader(p)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TreeFor counts the bytes of src and returns the tree Compress
// would build for them.
func TreeFor(src io.Reader) (*Node, error) {
	freq, err := CountFrequencies(bitstream.NewReader(src))
	if err != nil {
		return nil, err
	}
	return BuildTree(&freq), nil
}

// ReadTree reads the magic number and tree header at the start of a
// compressed stream.
func ReadTree(src io.Reader) (*Node, error) {
	in := bitstream.NewReader(src)
	if err := readMagic(in); err != nil {
		return nil, err
	}
	return ReadHeader(in)
}
