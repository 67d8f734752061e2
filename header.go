// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package hufftext

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"
	"unicode/utf8"
)

// Header format:
//
//	repeat for each character, in ascending order:
//	  char digits '\n'        (char is UTF-8, digits are '0' and '1')
//	  '\n' digits '\n'        (for the character '\n' itself)
//	'\n' '\n'
//
// The '\n' entry starts with an empty line, so a reader that sees an empty line
// must look at the next one: another empty line ends the header.

// WriteTo writes the table's header to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, sym := range t.symbols {
		if sym == '\n' {
			buf.WriteByte('\n')
		} else {
			buf.WriteRune(sym)
		}
		buf.WriteString(t.codes[sym].String())
		buf.WriteByte('\n')
	}
	buf.WriteString("\n\n")
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// ReadTable reads a header written by [Table.WriteTo].
// On success, br is positioned at the first byte of the body.
func ReadTable(br *bufio.Reader) (*Table, error) {
	codes := map[rune]Code{}
	for {
		line, err := readHeaderLine(br)
		if err != nil {
			return nil, err
		}
		var sym rune
		var digits string
		if line == "" {
			next, err := readHeaderLine(br)
			if err != nil {
				return nil, err
			}
			if next == "" {
				break
			}
			sym, digits = '\n', next
		} else {
			r, size := utf8.DecodeRuneInString(line)
			if r == utf8.RuneError && size <= 1 {
				return nil, &CodeError{Kind: InvalidText, Line: len(codes) + 1}
			}
			sym, digits = r, line[size:]
		}
		c, err := ParseCode(digits)
		if err != nil {
			return nil, err
		}
		if _, ok := codes[sym]; ok {
			return nil, &CodeError{Kind: MalformedTable, Bits: c, Rune: sym}
		}
		codes[sym] = c
	}
	if len(codes) == 0 {
		return nil, ErrNoSymbols
	}
	return NewTable(codes)
}

// readHeaderLine returns the next line without its '\n'.
// Every header line is terminated, so EOF is unexpected.
func readHeaderLine(br *bufio.Reader) (string, error) {
	s, err := br.ReadString('\n')
	if err == io.EOF {
		return "", io.ErrUnexpectedEOF
	}
	if err != nil {
		return "", err
	}
	return s[:len(s)-1], nil
}

// Format writes a readable listing of the table to w, one character per line
// with its code length and code.
func (t *Table) Format(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, sym := range t.symbols {
		c := t.codes[sym]
		fmt.Fprintf(tw, "%q\t%d\t%s\n", sym, c.Len(), c)
	}
	return tw.Flush()
}
