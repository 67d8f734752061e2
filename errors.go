// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package hufftext

import (
	"errors"
	"fmt"
)

// An ErrorKind classifies the failures reported by a [CodeError].
type ErrorKind int

const (
	// MalformedTable means the code table is unusable: a code digit other than
	// '0' or '1', an over-long or empty code, a duplicate character, or a code that is
	// a prefix of another.
	MalformedTable ErrorKind = iota + 1
	// UnmatchedCode means the encoded body contains a bit sequence that is not
	// a prefix of any code in the table.
	UnmatchedCode
	// InvalidText means the input is not valid UTF-8.
	InvalidText
	// UnknownSymbol means a character being encoded has no code in the table.
	UnknownSymbol
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedTable:
		return "malformed code table"
	case UnmatchedCode:
		return "unmatched code"
	case InvalidText:
		return "invalid text"
	case UnknownSymbol:
		return "unknown symbol"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinel errors, one per kind, for use with [errors.Is].
var (
	ErrMalformedTable = errors.New("hufftext: " + MalformedTable.String())
	ErrUnmatchedCode  = errors.New("hufftext: " + UnmatchedCode.String())
	ErrInvalidText    = errors.New("hufftext: " + InvalidText.String())
	ErrUnknownSymbol  = errors.New("hufftext: " + UnknownSymbol.String())

	// ErrNoSymbols is returned by BuildTable for an empty frequency table.
	ErrNoSymbols = errors.New("hufftext: no symbols")
	// ErrCodeTooLong is returned by BuildTable when the tree is deeper than MaxCodeLen.
	ErrCodeTooLong = errors.New("hufftext: code longer than 64 bits")
)

// A CodeError describes a failure to build, parse or apply a code table.
type CodeError struct {
	Kind ErrorKind
	// Bits is the offending bit pattern: the digits parsed so far for MalformedTable,
	// or the unmatched candidate for UnmatchedCode.
	Bits Code
	// Rune is the character involved, if any.
	Rune rune
	// Line is the 1-based input line for InvalidText, or 0.
	Line int
}

func (e *CodeError) Error() string {
	switch e.Kind {
	case MalformedTable:
		return fmt.Sprintf("hufftext: %s: bits %q, then %q", e.Kind, e.Bits, e.Rune)
	case UnmatchedCode:
		return fmt.Sprintf("hufftext: %s: %q", e.Kind, e.Bits)
	case InvalidText:
		return fmt.Sprintf("hufftext: %s on line %d", e.Kind, e.Line)
	case UnknownSymbol:
		return fmt.Sprintf("hufftext: %s %q", e.Kind, e.Rune)
	}
	return "hufftext: " + e.Kind.String()
}

// Is reports whether target is the sentinel error for e's kind.
func (e *CodeError) Is(target error) bool {
	switch target {
	case ErrMalformedTable:
		return e.Kind == MalformedTable
	case ErrUnmatchedCode:
		return e.Kind == UnmatchedCode
	case ErrInvalidText:
		return e.Kind == InvalidText
	case ErrUnknownSymbol:
		return e.Kind == UnknownSymbol
	}
	return false
}
