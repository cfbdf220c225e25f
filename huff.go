// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package huff implements a lossless compressor based on Huffman
// coding with a tree header.
//
// A compressed stream is a 32-bit magic number (HuffTree), the
// pre-order serialization of the code tree, and the codes of every
// input byte followed by the code of the PseudoEOF symbol. All
// fields are written most significant bit first.
//
// Compression reads its input twice: once to count byte frequencies
// and, after a Reset, once to encode.
package huff

import (
	"io"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("huff")

// Library logging stays quiet until a program installs its own backend.
func init() {
	logging.SetLevel(logging.WARNING, log.Module)
}

const (
	BitsPerWord  = 8
	BitsPerInt   = 32
	AlphabetSize = 1 << BitsPerWord

	// PseudoEOF is the synthetic symbol that ends every payload.
	PseudoEOF = AlphabetSize

	HuffNumber = 0xface8200
	HuffTree   = HuffNumber | 1
)

// A BitReader reads unsigned fields most significant bit first.
// Both methods report the end of the stream as io.EOF or
// io.ErrUnexpectedEOF.
type BitReader interface {
	// ReadBits reads n bits, 1 <= n <= 32.
	ReadBits(n int) (uint32, error)
	// ReadBit reads one bit, reporting 1 as true.
	ReadBit() (bool, error)
}

// A ResetReader is a BitReader that can return to the start of its
// stream.
type ResetReader interface {
	BitReader
	Reset() error
}

// A BitWriter writes the low n bits of v, most significant first.
type BitWriter interface {
	WriteBits(n int, v uint32) error
}

// isEnd reports whether err is a port's end-of-stream signal.
func isEnd(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}

// Compress writes the compressed form of in to out. It reads in to
// the end, calls Reset, and reads it again. Compress does not flush
// or close out.
func Compress(in ResetReader, out BitWriter) error {
	freq, err := CountFrequencies(in)
	if err != nil {
		return err
	}
	root := BuildTree(&freq)
	codes, err := DeriveCodes(root)
	if err != nil {
		return err
	}
	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("tree has %d leaves, height %d", root.Leaves(), root.Height())
	}

	if err := out.WriteBits(BitsPerInt, HuffTree); err != nil {
		return errors.Wrap(err, "huff: writing magic")
	}
	if err := WriteHeader(root, out); err != nil {
		return err
	}
	if err := in.Reset(); err != nil {
		return errors.Wrap(err, "huff: rewinding input")
	}
	return encode(codes, in, out)
}

// Decompress reads a compressed stream from in and writes the
// original bytes to out. It fails with ErrBadMagic before writing
// anything if in does not start with HuffTree. Decompress does not
// flush or close out.
func Decompress(in BitReader, out BitWriter) error {
	if err := readMagic(in); err != nil {
		return err
	}
	root, err := ReadHeader(in)
	if err != nil {
		return err
	}
	return decode(root, in, out)
}

func readMagic(in BitReader) error {
	magic, err := in.ReadBits(BitsPerInt)
	if err != nil {
		if isEnd(err) {
			return errors.Wrap(ErrBadMagic, "stream shorter than magic")
		}
		return errors.Wrap(err, "huff: reading magic")
	}
	if magic != HuffTree {
		return errors.Wrapf(ErrBadMagic, "illegal header starts with %#08x", magic)
	}
	return nil
}
