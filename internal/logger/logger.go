// Package logger is the logging interface shared by the binaries and the service.
package logger

import (
	"io"
	"log"
)

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger that writes through the standard logger.
func New() Logger { return &stdLogger{l: log.Default()} }

// NewWriter returns a Logger that writes to w with the given prefix.
func NewWriter(w io.Writer, prefix string) Logger {
	return &stdLogger{l: log.New(w, prefix, log.LstdFlags)}
}

// Discard returns a Logger that drops everything.
func Discard() Logger { return &stdLogger{l: log.New(io.Discard, "", 0)} }

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
