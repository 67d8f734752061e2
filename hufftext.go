// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package hufftext compresses text with a Huffman code built from the
// frequencies of its characters.
//
// An encoded stream is a text header listing the code of every character,
// followed by the codes of the text's characters packed into bytes, low bit first.
// See [Table.WriteTo] for the header format.
//
// Encoding reads the text twice, once to count characters and once to encode
// them, so [Encode] needs an [io.ReadSeeker]. Decoding reads its input once.
package hufftext

import (
	"bufio"
	"bytes"
	"io"
)

// Encode writes the header and encoded body for the text in r to w.
// It reads r to the end, seeks back to the start and reads it again.
func Encode(w io.Writer, r io.ReadSeeker) error {
	f, err := CountFrequencies(r)
	if err != nil {
		return err
	}
	t, err := BuildTable(f)
	if err != nil {
		return err
	}
	if _, err := t.WriteTo(w); err != nil {
		return err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	enc := t.NewEncoder(w)
	if _, err := io.Copy(enc, r); err != nil {
		return err
	}
	return enc.Close()
}

// Decode reads a header and body written by [Encode] from r and writes
// the decoded text to w.
func Decode(w io.Writer, r io.Reader) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	t, err := ReadTable(br)
	if err != nil {
		return err
	}
	_, err = t.NewDecoder(br).WriteTo(w)
	return err
}

// EncodeBytes returns the encoding of text.
func EncodeBytes(text []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, bytes.NewReader(text)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBytes returns the text encoded in data.
func DecodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decode(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
