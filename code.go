// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package hufftext

import "strings"

// MaxCodeLen is the longest code a [Code] can hold.
const MaxCodeLen = 64

// A Code is a sequence of up to MaxCodeLen bits, read from the root of a Huffman tree
// toward a leaf.
// The first bit is the least significant bit of the underlying word, which is also
// the order in which bits are packed into the encoded body.
type Code struct {
	bits uint64
	n    uint8
}

// Len returns the number of bits in c.
func (c Code) Len() int { return int(c.n) }

// Bit returns the i'th bit of c, counting from the root.
func (c Code) Bit(i int) uint {
	return uint(c.bits>>i) & 1
}

// Append returns c with bit (0 or 1) added to the end.
// It panics if c is already MaxCodeLen bits long.
func (c Code) Append(bit uint) Code {
	if c.n >= MaxCodeLen {
		panic("hufftext: Code.Append: code too long")
	}
	c.bits |= uint64(bit&1) << c.n
	c.n++
	return c
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.n > c.n {
		return false
	}
	return lowOrderBits(c.bits, int(p.n)) == p.bits
}

// String returns the bits of c as ASCII digits, root first.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.n))
	for i := range int(c.n) {
		sb.WriteByte('0' + byte(c.Bit(i)))
	}
	return sb.String()
}

// ParseCode parses a string of '0' and '1' digits into a Code.
// Any other character is a [MalformedTable] error whose Bits are the
// digits accepted before it.
func ParseCode(digits string) (Code, error) {
	var c Code
	for _, d := range digits {
		if d != '0' && d != '1' {
			return c, &CodeError{Kind: MalformedTable, Bits: c, Rune: d}
		}
		if c.n >= MaxCodeLen {
			return c, &CodeError{Kind: MalformedTable, Bits: c, Rune: d}
		}
		c = c.Append(uint(d - '0'))
	}
	return c, nil
}
