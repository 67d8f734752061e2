// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package hufftext

import (
	"bufio"
	"io"
)

// A Decoder decodes a body written by an [Encoder].
type Decoder struct {
	t  *Table
	br *bitReader
}

// NewDecoder returns a Decoder that reads an encoded body from r.
// The table header, if any, must already have been consumed.
func (t *Table) NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{t: t, br: newBitReader(br)}
}

// WriteTo decodes the rest of the body and writes the text to w.
//
// Each bit moves one step down the table's trie. A bit with nowhere to go is an
// [UnmatchedCode] error, except in the final byte, where it marks the start of padding.
// Bits of an incomplete code at the end of the body are also padding and are dropped.
func (d *Decoder) WriteTo(w io.Writer) (int64, error) {
	out := bufio.NewWriter(w)
	var written int64
	var cand Code
	state := int32(0)
	for {
		bit, last, err := d.br.readBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, err
		}
		next := d.t.trie[state].next[bit]
		if next == 0 {
			if last {
				break
			}
			return written, &CodeError{Kind: UnmatchedCode, Bits: cand.Append(bit)}
		}
		if n := &d.t.trie[next]; n.leaf {
			m, err := out.WriteRune(n.sym)
			written += int64(m)
			if err != nil {
				return written, err
			}
			cand, state = Code{}, 0
		} else {
			cand, state = cand.Append(bit), next
		}
	}
	return written, out.Flush()
}
