// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package hufftext

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// Frequencies maps each character of a text to the number of times it occurs.
type Frequencies map[rune]uint64

// CountFrequencies reads r to the end and counts its characters.
// The result always has an entry for '\n', even when r contains no line terminators,
// because the encoder treats the terminator as a symbol in its own right.
//
// CountFrequencies consumes r. To encode the same text afterwards, the caller must
// rewind it, as [Encode] does.
func CountFrequencies(r io.Reader) (Frequencies, error) {
	f := Frequencies{'\n': 0}
	lr := newLineReader(r)
	for {
		line, terminated, err := lr.next()
		if err == io.EOF {
			return f, nil
		}
		if err != nil {
			return nil, err
		}
		for _, c := range line {
			f[c]++
		}
		if terminated {
			f['\n']++
		}
	}
}

// A lineReader splits text into lines, remembering whether each line
// ended with a terminator so that the last line round-trips exactly.
type lineReader struct {
	br   *bufio.Reader
	line int // number of lines returned so far
}

func newLineReader(r io.Reader) *lineReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &lineReader{br: br}
}

// next returns the next line without its '\n', and whether the '\n' was present.
// It returns io.EOF when there are no more lines.
func (lr *lineReader) next() (string, bool, error) {
	s, err := lr.br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if err == io.EOF && s == "" {
		return "", false, io.EOF
	}
	lr.line++
	terminated := err == nil
	if terminated {
		s = s[:len(s)-1]
	}
	if !utf8.ValidString(s) {
		return "", false, &CodeError{Kind: InvalidText, Line: lr.line}
	}
	return s, terminated, nil
}
