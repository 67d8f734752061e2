// Package service wraps the hufftext codec for the binaries and the HTTP handlers.
package service

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/jba/hufftext"
	"github.com/jba/hufftext/internal/logger"
)

type Compressor struct {
	log  logger.Logger
	zstd *zstd.Encoder // baseline for Stat
}

func NewCompressor(l logger.Logger) (*Compressor, error) {
	z, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	return &Compressor{log: l, zstd: z}, nil
}

// Close releases the zstd encoder.
func (s *Compressor) Close() error {
	return s.zstd.Close()
}

func (s *Compressor) Encode(text []byte) ([]byte, error) {
	out, err := hufftext.EncodeBytes(text)
	if err != nil {
		s.log.Errorf("encode: %v", err)
		return nil, err
	}
	s.log.Infof("encoded %d bytes to %d", len(text), len(out))
	return out, nil
}

func (s *Compressor) Decode(data []byte) ([]byte, error) {
	out, err := hufftext.DecodeBytes(data)
	if err != nil {
		s.log.Errorf("decode: %v", err)
		return nil, err
	}
	s.log.Infof("decoded %d bytes to %d", len(data), len(out))
	return out, nil
}

// Table returns the code table that Encode would use for text.
func (s *Compressor) Table(text []byte) (*hufftext.Table, error) {
	f, err := hufftext.CountFrequencies(bytes.NewReader(text))
	if err != nil {
		return nil, err
	}
	return hufftext.BuildTable(f)
}

// Stats describes how well a text compresses.
type Stats struct {
	InputBytes  int `json:"input_bytes"`
	HeaderBytes int `json:"header_bytes"`
	BodyBytes   int `json:"body_bytes"`
	ZstdBytes   int `json:"zstd_bytes"`
	Symbols     int `json:"symbols"`
	MaxCodeLen  int `json:"max_code_len"`
}

// Ratio is the encoded size over the input size.
func (st Stats) Ratio() float64 {
	if st.InputBytes == 0 {
		return 0
	}
	return float64(st.HeaderBytes+st.BodyBytes) / float64(st.InputBytes)
}

// Stat encodes text and reports the sizes of the header and body,
// alongside the size zstd produces for the same text.
func (s *Compressor) Stat(text []byte) (Stats, error) {
	t, err := s.Table(text)
	if err != nil {
		return Stats{}, err
	}
	var header, body bytes.Buffer
	if _, err := t.WriteTo(&header); err != nil {
		return Stats{}, err
	}
	enc := t.NewEncoder(&body)
	if _, err := enc.Write(text); err != nil {
		return Stats{}, err
	}
	if err := enc.Close(); err != nil {
		return Stats{}, err
	}
	st := Stats{
		InputBytes:  len(text),
		HeaderBytes: header.Len(),
		BodyBytes:   body.Len(),
		ZstdBytes:   len(s.zstd.EncodeAll(text, nil)),
		Symbols:     t.Len(),
		MaxCodeLen:  t.MaxLen(),
	}
	s.log.Infof("stat: %d bytes, %d symbols, ratio %.3f", st.InputBytes, st.Symbols, st.Ratio())
	return st, nil
}

// Report is the result of Verify.
type Report struct {
	InputHash    uint64 `json:"input_xxhash"`
	OutputHash   uint64 `json:"output_xxhash"`
	EncodedBytes int    `json:"encoded_bytes"`
	Match        bool   `json:"match"`
}

// Verify encodes and decodes text and compares digests of the two.
// The decoded text can differ only by trailing characters, when every code
// is short enough to fit in the final byte's padding.
func (s *Compressor) Verify(text []byte) (Report, error) {
	enc, err := s.Encode(text)
	if err != nil {
		return Report{}, err
	}
	dec, err := s.Decode(enc)
	if err != nil {
		return Report{}, err
	}
	r := Report{
		InputHash:    xxhash.Sum64(text),
		OutputHash:   xxhash.Sum64(dec),
		EncodedBytes: len(enc),
	}
	r.Match = r.InputHash == r.OutputHash && len(text) == len(dec)
	if !r.Match {
		s.log.Errorf("verify: digest %s, round trip %s", Digest(text), Digest(dec))
	}
	return r, nil
}

// Digest returns the xxhash64 of b in hex.
func Digest(b []byte) string {
	return strconv.FormatUint(xxhash.Sum64(b), 16)
}
