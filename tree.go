// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"container/heap"
	"fmt"
	"strings"
)

// A Node is a node of a code tree. A node is a leaf if and only if
// both children are nil; internal nodes always have two children.
// Trees are not modified after they are built.
type Node struct {
	// Value is the symbol of a leaf, 0..PseudoEOF. It is unused
	// for internal nodes.
	Value int

	// Weight is the symbol count of a leaf or the sum of the
	// children's weights. Trees read from a header have zero
	// weights.
	Weight int64

	Left, Right *Node

	seq int // arrival order in the build queue
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// nodeQueue is a min-heap ordered by weight, then by arrival.
type nodeQueue []*Node

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].Weight != q[j].Weight {
		return q[i].Weight < q[j].Weight
	}
	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(*Node)) }

func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

// BuildTree builds an optimal code tree for the symbols with a
// nonzero count in freq.
//
// Leaves enter the queue in symbol order. Nodes of equal weight
// leave it in the order they entered, and the first node removed
// becomes the left child, so the same counts always produce the
// same tree.
//
// A tree always has at least two leaves. If freq has a single
// nonzero entry (empty input), a zero-weight leaf for the lowest
// absent symbol is added beside it.
func BuildTree(freq *FrequencyTable) *Node {
	var q nodeQueue
	seq := 0
	add := func(n *Node) {
		n.seq = seq
		seq++
		heap.Push(&q, n)
	}
	for sym, c := range freq {
		if c > 0 {
			add(&Node{Value: sym, Weight: c})
		}
	}
	if q.Len() < 2 {
		add(&Node{Value: placeholder(freq)})
	}
	for q.Len() > 1 {
		left := heap.Pop(&q).(*Node)
		right := heap.Pop(&q).(*Node)
		add(&Node{Weight: left.Weight + right.Weight, Left: left, Right: right})
	}
	return heap.Pop(&q).(*Node)
}

// placeholder returns the lowest symbol with a zero count.
func placeholder(freq *FrequencyTable) int {
	for sym, c := range freq {
		if c == 0 {
			return sym
		}
	}
	panic("huff: every symbol has a count")
}

// Leaves returns the number of leaves under n.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Height returns the length of the longest root-to-leaf path.
func (n *Node) Height() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	l, r := n.Left.Height(), n.Right.Height()
	if r > l {
		l = r
	}
	return l + 1
}

// String draws the tree sideways, left subtree on top.
func (n *Node) String() string {
	var b strings.Builder
	n.draw(&b, 0, "---")
	return b.String()
}

func (n *Node) draw(b *strings.Builder, depth int, edge string) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		fmt.Fprintf(b, "%s%s%s\n", strings.Repeat("    ", depth), edge, symbolName(n.Value))
		return
	}
	n.Left.draw(b, depth+1, "/--")
	fmt.Fprintf(b, "%s%s<\n", strings.Repeat("    ", depth), edge)
	n.Right.draw(b, depth+1, "\\--")
}

func symbolName(sym int) string {
	if sym == PseudoEOF {
		return "EOF"
	}
	if sym >= 0 && sym < AlphabetSize {
		return fmt.Sprintf("%q", byte(sym))
	}
	return fmt.Sprintf("#%d", sym)
}
