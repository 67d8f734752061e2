package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jba/hufftext/internal/logger"
)

const panama = "a man a plan a canal panama\n"

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEncodeDecode(t *testing.T) {
	in := writeTemp(t, "in.txt", panama)
	enc := filepath.Join(filepath.Dir(in), "in.huff")
	if err := run([]string{"encode", "-o", enc, in}, nil, nil, logger.Discard()); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := run([]string{"decode", enc}, nil, &out, logger.Discard()); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != panama {
		t.Errorf("got %q, want %q", got, panama)
	}

	// Decode from stdin.
	data, err := os.ReadFile(enc)
	if err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := run([]string{"decode", "-"}, bytes.NewReader(data), &out, logger.Discard()); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != panama {
		t.Errorf("stdin: got %q, want %q", got, panama)
	}
}

func TestTable(t *testing.T) {
	in := writeTemp(t, "in.txt", "aaab")
	var out bytes.Buffer
	if err := run([]string{"table", in}, nil, &out, logger.Discard()); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"'\\n'", "'a'", "'b'", "01"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestStatVerify(t *testing.T) {
	in := writeTemp(t, "in.txt", strings.Repeat(panama, 10))
	var out bytes.Buffer
	if err := run([]string{"stat", in}, nil, &out, logger.Discard()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "symbols 8\n") {
		t.Errorf("stat output:\n%s", out.String())
	}
	out.Reset()
	if err := run([]string{"verify", in}, nil, &out, logger.Discard()); err != nil {
		t.Fatalf("%v\n%s", err, out.String())
	}
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"bogus"},
		{"encode"},
		{"table"},
		{"encode", "a", "b"},
		{"encode", filepath.Join(t.TempDir(), "missing")},
	} {
		if err := run(args, nil, &bytes.Buffer{}, logger.Discard()); err == nil {
			t.Errorf("%q: got nil error", args)
		}
	}
}
