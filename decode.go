// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import "github.com/pkg/errors"

// decode walks the tree from root one bit at a time, writing the
// symbol of every leaf it reaches and restarting at root, until it
// reaches the PseudoEOF leaf.
func decode(root *Node, in BitReader, out BitWriter) error {
	var n int64
	cur := root
	for {
		bit, err := in.ReadBit()
		if err != nil {
			if isEnd(err) {
				return errors.Wrapf(ErrTruncatedPayload, "after %d bytes", n)
			}
			return errors.Wrap(err, "huff: reading payload")
		}
		// A leaf root has the one-bit code given by DeriveCodes.
		if !cur.IsLeaf() {
			if bit {
				cur = cur.Right
			} else {
				cur = cur.Left
			}
		}
		if !cur.IsLeaf() {
			continue
		}
		if cur.Value == PseudoEOF {
			log.Debugf("decoded %d bytes", n)
			return nil
		}
		if err := out.WriteBits(BitsPerWord, uint32(cur.Value)); err != nil {
			return errors.Wrap(err, "huff: writing output")
		}
		n++
		cur = root
	}
}
