// Command hufftext compresses and decompresses text files.
//
// Usage:
//
//	hufftext encode [-o out] file
//	hufftext decode [-o out] [file]
//	hufftext table file
//	hufftext stat file
//	hufftext verify file
//
// Encoding reads its input twice, so it must be a regular file.
// Decoding reads standard input when no file is given.
// Output goes to standard output unless -o is set.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jba/hufftext"
	"github.com/jba/hufftext/internal/logger"
	"github.com/jba/hufftext/internal/service"
)

func main() {
	logg := logger.NewWriter(os.Stderr, "hufftext: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logg); err != nil {
		logg.Errorf("%v", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: hufftext encode|decode|table|stat|verify [-o out] [file]")

func run(args []string, stdin io.Reader, stdout io.Writer, logg logger.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd := args[0]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	out := fs.String("o", "", "write output to `file`")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return errUsage
	}
	in := fs.Arg(0)

	switch cmd {
	case "encode":
		if in == "" {
			return errors.New("encode: an input file is required")
		}
		f, err := os.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		return withOutput(*out, stdout, func(w io.Writer) error {
			return hufftext.Encode(w, f)
		})

	case "decode":
		r := stdin
		if in != "" && in != "-" {
			f, err := os.Open(in)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}
		return withOutput(*out, stdout, func(w io.Writer) error {
			return hufftext.Decode(w, bufio.NewReader(r))
		})

	case "table", "stat", "verify":
		if in == "" {
			return fmt.Errorf("%s: an input file is required", cmd)
		}
		text, err := os.ReadFile(in)
		if err != nil {
			return err
		}
		svc, err := service.NewCompressor(logger.Discard())
		if err != nil {
			return err
		}
		defer svc.Close()
		return withOutput(*out, stdout, func(w io.Writer) error {
			return report(cmd, svc, text, w, logg)
		})
	}
	return errUsage
}

func report(cmd string, svc *service.Compressor, text []byte, w io.Writer, logg logger.Logger) error {
	switch cmd {
	case "table":
		t, err := svc.Table(text)
		if err != nil {
			return err
		}
		return t.Format(w)
	case "stat":
		st, err := svc.Stat(text)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "input %d bytes\nheader %d bytes\nbody %d bytes\nzstd %d bytes\nsymbols %d\nmax code %d bits\nratio %.3f\n",
			st.InputBytes, st.HeaderBytes, st.BodyBytes, st.ZstdBytes, st.Symbols, st.MaxCodeLen, st.Ratio())
		return err
	default: // verify
		r, err := svc.Verify(text)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "input %016x\noutput %016x\nencoded %d bytes\n", r.InputHash, r.OutputHash, r.EncodedBytes); err != nil {
			return err
		}
		if !r.Match {
			logg.Errorf("round trip does not match the input")
			return errors.New("verify failed")
		}
		return nil
	}
}

// withOutput calls write with a buffered writer to the named file,
// or to stdout if name is empty.
func withOutput(name string, stdout io.Writer, write func(io.Writer) error) (err error) {
	dst := stdout
	if name != "" {
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		dst = f
	}
	bw := bufio.NewWriter(dst)
	if err := write(bw); err != nil {
		return err
	}
	return bw.Flush()
}
