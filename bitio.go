// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package hufftext

import (
	"bufio"
	"io"
)

// The bitWriter is adapted from the standard library's compress/flate package.

// A bitWriter can write up to 32 bits at a time.
// Full words are flushed to its contained [io.Writer].
// Write errors are stored and reported by [bitWriter.close]
// or [bitWriter.Err].
// Bits are packed least significant first: the first bit written
// to a byte is its low-order bit.
type bitWriter struct {
	err error
	w   io.Writer
	// bits is a buffer of unwritten bits.
	// Only the low-order 32 bits are valid between calls to writeBits,
	// and those bytes are stored in reverse order: byte 3 | byte 2 | byte 1 | byte 0.
	bits  uint64
	nbits int // number of bits in bits; always <= 32
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w}
}

// writeBits writes the n low-order bits of b, low bit first.
func (w *bitWriter) writeBits(b uint32, n int) {
	if w.err != nil {
		return
	}
	w.bits |= uint64(b) << w.nbits // w.bits = b concat w.bits
	w.nbits += n                   // there are n more bits in w.bits
	if w.nbits > 32 {              // if w.bits is too large
		var buf [4]byte // write out the low-order part
		buf[0] = byte(w.bits)
		buf[1] = byte(w.bits >> 8)
		buf[2] = byte(w.bits >> 16)
		buf[3] = byte(w.bits >> 24)
		w.bits >>= 32
		w.nbits -= 32
		w.write(buf[:])
	}
}

// writeCode writes the bits of c, root first.
func (w *bitWriter) writeCode(c Code) {
	bits, n := c.bits, c.Len()
	for n > 32 {
		w.writeBits(uint32(bits), 32)
		bits >>= 32
		n -= 32
	}
	w.writeBits(uint32(bits), n)
}

// unfilled returns the number of bits needed to complete the current byte.
func (w *bitWriter) unfilled() int {
	return (8 - w.nbits%8) % 8
}

// close fills the last byte with pad, which must be unfilled() bits long,
// and flushes everything.
func (w *bitWriter) close(pad Code) error {
	w.writeCode(pad)
	w.flush()
	return w.err
}

func (w *bitWriter) flush() {
	var buf [4]byte
	var i int
	for i = 0; i < 4 && w.nbits > 0; i++ {
		buf[i] = byte(w.bits)
		w.bits >>= 8
		if w.nbits > 8 {
			w.nbits -= 8
		} else {
			w.nbits = 0
		}
	}
	w.write(buf[:i])
}

func (w *bitWriter) write(buf []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(buf)
}

func (w *bitWriter) Err() error {
	return w.err
}

// A bitReader returns the bits of a byte stream in the order a bitWriter wrote them.
// That is the low bit of each byte first, the same as reversing the byte and
// taking bits from the high end.
type bitReader struct {
	r     *bufio.Reader
	cur   byte
	nbits int  // unread bits in cur
	last  bool // cur is the final byte of the stream
}

func newBitReader(r *bufio.Reader) *bitReader {
	return &bitReader{r: r}
}

// readBit returns the next bit and whether it belongs to the final byte.
// It returns io.EOF when the stream is exhausted.
func (r *bitReader) readBit() (bit uint, last bool, err error) {
	if r.nbits == 0 {
		b, err := r.r.ReadByte()
		if err != nil {
			return 0, false, err
		}
		r.cur, r.nbits = b, 8
		if _, err := r.r.Peek(1); err == io.EOF {
			r.last = true
		} else if err != nil {
			return 0, false, err
		}
	}
	bit = uint(r.cur & 1)
	r.cur >>= 1
	r.nbits--
	return bit, r.last, nil
}

// lowOrderBits returns the n low-order bits of u.
func lowOrderBits[T uint8 | uint16 | uint32 | uint64](u T, n int) T {
	return u & ((T(1) << n) - 1)
}
