// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package hufftext

import "container/heap"

// A node is a Huffman tree node: either a *leaf or an *interior.
type node interface {
	weight() uint64
	// minSym is the smallest character in the subtree.
	// Subtrees are disjoint, so it breaks ties between equal weights.
	minSym() rune
	isNode()
}

type leaf struct {
	count uint64
	sym   rune
}

type interior struct {
	count     uint64
	min       rune
	zero, one node
}

func (l *leaf) weight() uint64 { return l.count }
func (l *leaf) minSym() rune   { return l.sym }
func (*leaf) isNode()          {}

func (n *interior) weight() uint64 { return n.count }
func (n *interior) minSym() rune   { return n.min }
func (*interior) isNode()          {}

// merge combines the two lightest nodes. The first one popped from the queue
// takes the 0 branch.
func merge(first, second node) *interior {
	return &interior{
		count: first.weight() + second.weight(),
		min:   min(first.minSym(), second.minSym()),
		zero:  first,
		one:   second,
	}
}

// nodeHeap is a min-heap ordered by weight, then by smallest character.
type nodeHeap []node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight() != h[j].weight() {
		return h[i].weight() < h[j].weight()
	}
	return h[i].minSym() < h[j].minSym()
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	return n
}

// BuildTable constructs the Huffman code for the given frequencies.
// Every character in f gets a code, including those with a zero count.
//
// The tree is deterministic: when two nodes have the same weight, the one holding
// the smaller character is merged first. A table with a single character
// gives it the one-bit code "0".
func BuildTable(f Frequencies) (*Table, error) {
	if len(f) == 0 {
		return nil, ErrNoSymbols
	}
	h := make(nodeHeap, 0, len(f))
	for sym, count := range f {
		h = append(h, &leaf{count: count, sym: sym})
	}
	heap.Init(&h)
	for h.Len() > 1 {
		first := heap.Pop(&h).(node)
		second := heap.Pop(&h).(node)
		heap.Push(&h, merge(first, second))
	}

	codes := make(map[rune]Code, len(f))
	switch root := h[0].(type) {
	case *leaf:
		codes[root.sym] = Code{}.Append(0)
	case *interior:
		if err := assignCodes(root, Code{}, codes); err != nil {
			return nil, err
		}
	}
	return NewTable(codes)
}

// assignCodes walks the tree once, giving each leaf the path from the root.
func assignCodes(n node, prefix Code, codes map[rune]Code) error {
	switch n := n.(type) {
	case *leaf:
		codes[n.sym] = prefix
	case *interior:
		if prefix.Len() == MaxCodeLen {
			return ErrCodeTooLong
		}
		if err := assignCodes(n.zero, prefix.Append(0), codes); err != nil {
			return err
		}
		return assignCodes(n.one, prefix.Append(1), codes)
	}
	return nil
}
