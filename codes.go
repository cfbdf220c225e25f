// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// maxCodeLen is the longest code a Code can hold.
const maxCodeLen = 64

// A Code is the path from the root to a leaf: Len steps, the first
// in bit Len-1 of Bits. A 0 bit goes left, a 1 bit right.
type Code struct {
	Bits uint64
	Len  int
}

func (c Code) String() string {
	if c.Len == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", c.Len, c.Bits)
}

// A CodeTable maps every symbol to its Code. Symbols without a leaf
// in the tree have a zero-length entry.
type CodeTable [AlphabetSize + 1]Code

// Lookup returns the code for sym and whether it has one.
func (t *CodeTable) Lookup(sym int) (Code, bool) {
	if sym < 0 || sym >= len(t) {
		return Code{}, false
	}
	c := t[sym]
	return c, c.Len > 0
}

// String lists the coded symbols, one per line, in symbol order.
func (t *CodeTable) String() string {
	var b strings.Builder
	for sym, c := range t {
		if c.Len > 0 {
			fmt.Fprintf(&b, "%-6s %2d %s\n", symbolName(sym), c.Len, c)
		}
	}
	return b.String()
}

// DeriveCodes walks the tree rooted at root and returns the code of
// every leaf. A root that is itself a leaf gets the one-bit code 0.
func DeriveCodes(root *Node) (*CodeTable, error) {
	t := new(CodeTable)
	if root == nil {
		return t, nil
	}
	if root.IsLeaf() {
		t[root.Value] = Code{Bits: 0, Len: 1}
		return t, nil
	}
	if err := t.walk(root, Code{}); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *CodeTable) walk(n *Node, path Code) error {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		t[n.Value] = path
		return nil
	}
	if path.Len == maxCodeLen {
		return errors.Wrapf(ErrCodeTooLong, "tree deeper than %d", maxCodeLen)
	}
	if err := t.walk(n.Left, Code{path.Bits << 1, path.Len + 1}); err != nil {
		return err
	}
	return t.walk(n.Right, Code{path.Bits<<1 | 1, path.Len + 1})
}
