// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import "github.com/pkg/errors"

// leafBits is the width of a leaf's symbol in the header; it must
// hold PseudoEOF.
const leafBits = BitsPerWord + 1

// maxHeaderDepth bounds the nesting of internal nodes in a header.
// A tree with at most PseudoEOF+1 leaves is never deeper.
const maxHeaderDepth = PseudoEOF

// WriteHeader writes the pre-order serialization of the tree rooted
// at root: a 0 bit for an internal node followed by its left and
// right subtrees, or a 1 bit and the 9-bit symbol for a leaf.
func WriteHeader(root *Node, out BitWriter) error {
	if root == nil {
		return nil
	}
	if !root.IsLeaf() {
		if err := out.WriteBits(1, 0); err != nil {
			return errors.Wrap(err, "huff: writing header")
		}
		if err := WriteHeader(root.Left, out); err != nil {
			return err
		}
		return WriteHeader(root.Right, out)
	}
	if err := out.WriteBits(1, 1); err != nil {
		return errors.Wrap(err, "huff: writing header")
	}
	if err := out.WriteBits(leafBits, uint32(root.Value)); err != nil {
		return errors.Wrap(err, "huff: writing header")
	}
	return nil
}

// ReadHeader reads a tree written by WriteHeader. The nodes of the
// returned tree have zero weights.
func ReadHeader(in BitReader) (*Node, error) {
	return readNode(in, 0)
}

func readNode(in BitReader, depth int) (*Node, error) {
	bit, err := in.ReadBit()
	if err != nil {
		return nil, headerReadError(err)
	}
	if !bit {
		if depth >= maxHeaderDepth {
			return nil, errors.Wrapf(ErrBadHeader, "internal nodes nested %d deep", depth+1)
		}
		left, err := readNode(in, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := readNode(in, depth+1)
		if err != nil {
			return nil, err
		}
		return &Node{Left: left, Right: right}, nil
	}
	v, err := in.ReadBits(leafBits)
	if err != nil {
		return nil, headerReadError(err)
	}
	if v > PseudoEOF {
		return nil, errors.Wrapf(ErrBadHeader, "leaf symbol %d", v)
	}
	return &Node{Value: int(v)}, nil
}

func headerReadError(err error) error {
	if isEnd(err) {
		return ErrTruncatedHeader
	}
	return errors.Wrap(err, "huff: reading header")
}
