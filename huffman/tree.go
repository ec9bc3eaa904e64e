// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "container/heap"

// Node is a node in a Huffman tree. A node is a leaf if and only if both of
// its children are nil; internal nodes always have exactly two children.
type Node struct {
	Weight int64 // Sum of the counts of all leaves in this subtree
	Rep    byte  // Smallest symbol in this subtree, used to break ties
	Sym    byte  // Symbol of a leaf; meaningless for internal nodes

	Left  *Node // Child reached by a 0 bit
	Right *Node // Child reached by a 1 bit
}

func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// ComesBefore reports whether a is ordered before b. Nodes are ordered by
// weight, and equal weights are ordered by their representative symbol.
func ComesBefore(a, b *Node) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.Rep < b.Rep
}

// Combine returns a new internal node with a and b as children.
// The node that comes first becomes the left child.
func Combine(a, b *Node) *Node {
	if ComesBefore(b, a) {
		a, b = b, a
	}
	rep := a.Rep
	if b.Rep < rep {
		rep = b.Rep
	}
	return &Node{Weight: a.Weight + b.Weight, Rep: rep, Left: a, Right: b}
}

// BuildTree builds the Huffman tree for the given counts.
//
// It returns nil if no symbol has a non-zero count and a single leaf if
// exactly one does. Otherwise, the two lowest nodes are repeatedly combined
// until a single root remains.
func BuildTree(c *Counts) *Node {
	var h nodeHeap
	for sym, cnt := range c {
		if cnt > 0 {
			h = append(h, &Node{Weight: cnt, Rep: byte(sym), Sym: byte(sym)})
		}
	}
	switch len(h) {
	case 0:
		return nil
	case 1:
		return h[0]
	}

	// Subtrees are disjoint, so their representatives are distinct and no two
	// nodes in the heap ever compare as equal. Thus, the heap pops nodes in
	// the same order as a full sort would.
	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)
		heap.Push(&h, Combine(a, b))
	}
	return h[0]
}

type nodeHeap []*Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return ComesBefore(h[i], h[j]) }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*Node)) }
func (h *nodeHeap) Pop() interface{} {
	n := len(*h) - 1
	x := (*h)[n]
	(*h)[n] = nil
	*h = (*h)[:n]
	return x
}
