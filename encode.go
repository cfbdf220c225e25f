// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import "github.com/pkg/errors"

// encode writes the code of every 8-bit symbol remaining in in,
// then the code of PseudoEOF.
func encode(codes *CodeTable, in BitReader, out BitWriter) error {
	var n int64
	for {
		v, err := in.ReadBits(BitsPerWord)
		if err != nil {
			if isEnd(err) {
				break
			}
			return errors.Wrap(err, "huff: reading input")
		}
		if err := writeCode(codes, int(v), out); err != nil {
			return err
		}
		n++
	}
	log.Debugf("encoded %d input bytes", n)
	return writeCode(codes, PseudoEOF, out)
}

func writeCode(codes *CodeTable, sym int, out BitWriter) error {
	c, ok := codes.Lookup(sym)
	if !ok {
		return errors.Wrapf(ErrMissingCode, "symbol %s", symbolName(sym))
	}
	for c.Len > BitsPerInt {
		c.Len -= BitsPerInt
		if err := out.WriteBits(BitsPerInt, uint32(c.Bits>>uint(c.Len))); err != nil {
			return errors.Wrap(err, "huff: writing payload")
		}
	}
	if err := out.WriteBits(c.Len, uint32(c.Bits)); err != nil {
		return errors.Wrap(err, "huff: writing payload")
	}
	return nil
}
