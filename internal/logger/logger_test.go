package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "hufftext: ")
	l.Infof("encoded %d bytes", 12)
	l.Errorf("decode: %v", "bad")
	got := buf.String()
	for _, want := range []string{"hufftext: ", "[INFO] encoded 12 bytes", "[ERROR] decode: bad"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q does not contain %q", got, want)
		}
	}
}
