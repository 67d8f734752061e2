// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package hufftext

import (
	"io"
	"unicode/utf8"
)

// An Encoder writes the encoded body of a text: the code of each character,
// packed into bytes low bit first. It does not write the table header.
//
// Text is supplied with Write, in any number of pieces; a character may be split
// across calls. Close must be called to write the final byte.
type Encoder struct {
	t     *Table
	bw    *bitWriter
	err   error
	line  int // current input line, for error reports
	pend  [utf8.UTFMax]byte
	npend int // bytes of an incomplete character carried over from the last Write
}

// NewEncoder returns an Encoder that writes to w using the codes in t.
func (t *Table) NewEncoder(w io.Writer) *Encoder {
	return &Encoder{t: t, bw: newBitWriter(w), line: 1}
}

// Write encodes the UTF-8 text in p.
// It is an [InvalidText] error if p is not valid UTF-8, and an [UnknownSymbol] error
// if a character has no code.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n := len(p)
	for e.npend > 0 && len(p) > 0 {
		e.pend[e.npend] = p[0]
		e.npend++
		p = p[1:]
		if utf8.FullRune(e.pend[:e.npend]) {
			c, size := utf8.DecodeRune(e.pend[:e.npend])
			e.npend = 0
			if c == utf8.RuneError && size == 1 {
				return 0, e.fail(&CodeError{Kind: InvalidText, Line: e.line})
			}
			e.encodeRune(c)
		}
	}
	for i := 0; i < len(p) && e.err == nil; {
		c, size := rune(p[i]), 1
		if c >= utf8.RuneSelf {
			if !utf8.FullRune(p[i:]) {
				e.npend = copy(e.pend[:], p[i:])
				break
			}
			c, size = utf8.DecodeRune(p[i:])
			if c == utf8.RuneError && size == 1 {
				return 0, e.fail(&CodeError{Kind: InvalidText, Line: e.line})
			}
		}
		e.encodeRune(c)
		i += size
	}
	if e.err != nil {
		return 0, e.err
	}
	if err := e.bw.Err(); err != nil {
		return 0, e.fail(err)
	}
	return n, nil
}

func (e *Encoder) encodeRune(c rune) {
	code, ok := e.t.Code(c)
	if !ok {
		e.fail(&CodeError{Kind: UnknownSymbol, Rune: c, Line: e.line})
		return
	}
	e.bw.writeCode(code)
	if c == '\n' {
		e.line++
	}
}

func (e *Encoder) fail(err error) error {
	if e.err == nil {
		e.err = err
	}
	return e.err
}

// Close pads and writes the final byte. It does not close the underlying writer.
func (e *Encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	if e.npend > 0 {
		return e.fail(&CodeError{Kind: InvalidText, Line: e.line})
	}
	return e.fail(e.bw.close(e.t.padding(e.bw.unfilled())))
}
