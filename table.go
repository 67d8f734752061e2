// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package hufftext

import (
	"maps"
	"slices"
)

// A Table is a prefix-free mapping from characters to [Code]s.
// It is immutable once constructed, and safe for concurrent use.
type Table struct {
	codes   map[rune]Code
	symbols []rune // sorted
	maxLen  int
	pad     Code
	// trie[0] is the root. Edges are indexes into trie; 0 means no edge,
	// since the root is never a child.
	trie []trieNode
}

type trieNode struct {
	next [2]int32
	leaf bool
	sym  rune
}

// NewTable returns a Table with the given codes.
// It is a [MalformedTable] error for a code to be empty or to be a prefix
// of another code, including an identical one.
func NewTable(codes map[rune]Code) (*Table, error) {
	t := &Table{
		codes:   maps.Clone(codes),
		symbols: slices.Sorted(maps.Keys(codes)),
		trie:    make([]trieNode, 1, 2*len(codes)),
	}
	for _, sym := range t.symbols {
		c := codes[sym]
		if err := t.insert(sym, c); err != nil {
			return nil, err
		}
		if c.Len() > t.maxLen {
			t.maxLen = c.Len()
			t.pad = c
		}
	}
	if len(t.symbols) == 1 {
		// The other branch at the root is a dead end, so padding
		// with the opposite of the first bit never completes a code.
		t.pad = Code{n: 8}
		if t.codes[t.symbols[0]].Bit(0) == 0 {
			t.pad.bits = 0xff
		}
	}
	return t, nil
}

func (t *Table) insert(sym rune, c Code) error {
	if c.Len() == 0 {
		return &CodeError{Kind: MalformedTable, Rune: sym}
	}
	cur := int32(0)
	for i := range c.Len() {
		if t.trie[cur].leaf {
			return &CodeError{Kind: MalformedTable, Bits: c, Rune: sym}
		}
		b := c.Bit(i)
		next := t.trie[cur].next[b]
		if next == 0 {
			next = int32(len(t.trie))
			t.trie = append(t.trie, trieNode{})
			t.trie[cur].next[b] = next
		}
		cur = next
	}
	n := &t.trie[cur]
	if n.leaf || n.next != [2]int32{} {
		return &CodeError{Kind: MalformedTable, Bits: c, Rune: sym}
	}
	n.leaf = true
	n.sym = sym
	return nil
}

// Code returns the code for r, and whether r is in the table.
func (t *Table) Code(r rune) (Code, bool) {
	c, ok := t.codes[r]
	return c, ok
}

// Codes returns a copy of the table's mapping.
func (t *Table) Codes() map[rune]Code {
	return maps.Clone(t.codes)
}

// Symbols returns the characters in the table in ascending order.
func (t *Table) Symbols() []rune {
	return slices.Clone(t.symbols)
}

// Len returns the number of characters in the table.
func (t *Table) Len() int { return len(t.symbols) }

// MaxLen returns the length of the longest code.
func (t *Table) MaxLen() int { return t.maxLen }

// padding returns n bits to fill the end of the last byte of a body.
// When possible they are a proper prefix of a code, or lead to a dead end,
// so a decoder will not mistake them for a character.
func (t *Table) padding(n int) Code {
	if t.pad.Len() > n {
		return Code{bits: lowOrderBits(t.pad.bits, n), n: uint8(n)}
	}
	return Code{n: uint8(n)}
}
