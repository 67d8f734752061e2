// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package hufftext

import (
	"errors"
	"io"
	"maps"
	"strings"
	"testing"
	"testing/iotest"
)

func TestCountFrequencies(t *testing.T) {
	for _, test := range []struct {
		text string
		want Frequencies
	}{
		{"", Frequencies{'\n': 0}},
		{"aaab", Frequencies{'a': 3, 'b': 1, '\n': 0}},
		{"aaab\n", Frequencies{'a': 3, 'b': 1, '\n': 1}},
		{"a\n\nb\n", Frequencies{'a': 1, 'b': 1, '\n': 3}},
		{"x\r\ny", Frequencies{'x': 1, '\r': 1, 'y': 1, '\n': 1}},
		{"世界世", Frequencies{'世': 2, '界': 1, '\n': 0}},
	} {
		got, err := CountFrequencies(strings.NewReader(test.text))
		if err != nil {
			t.Fatal(err)
		}
		if !maps.Equal(got, test.want) {
			t.Errorf("%q: got %v, want %v", test.text, got, test.want)
		}
	}
}

func TestCountFrequenciesErrors(t *testing.T) {
	_, err := CountFrequencies(strings.NewReader("fine\nfine\nbad \xc3\x28\n"))
	var ce *CodeError
	if !errors.As(err, &ce) || ce.Kind != InvalidText || ce.Line != 3 {
		t.Errorf("got %v, want invalid text on line 3", err)
	}

	readErr := errors.New("disk on fire")
	_, err = CountFrequencies(io.MultiReader(strings.NewReader("abc"), iotest.ErrReader(readErr)))
	if !errors.Is(err, readErr) {
		t.Errorf("got %v, want %v", err, readErr)
	}
}
