// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"multicomponent/internal/clibase"
	"multicomponent/internal/cmdutil"
	"multicomponent/internal/version"
	"multicomponent/internal/writers"
)

// Exit codes shared by both commands.
const (
	ExitOK          = 0
	ExitFatal       = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

type Options struct {
	OutFile string
	Quiet   bool
}

// WarnFunc reports a non-fatal condition; it honours --quiet.
type WarnFunc func(format string, a ...any)

// Extractor loads the whole input and returns the rows to emit.
type Extractor[T any] func(ctx context.Context, warn WarnFunc) ([]T, error)

// Writer renders rows in the selected output format.
type Writer[T any] func(w io.Writer, rows []T) error

// Run extracts every row before anything is written, so a failed run
// produces no partial table.
func Run[T any](
	ctx context.Context,
	stdout, stderr io.Writer,
	o Options,
	extract Extractor[T],
	write Writer[T],
) int {
	if ctx.Err() != nil {
		return ExitInterrupted
	}
	warn := func(format string, a ...any) { cmdutil.Warnf(stderr, o.Quiet, format, a...) }

	rows, err := extract(ctx, warn)
	if err != nil {
		return Finish(ctx, stderr, err)
	}
	if ctx.Err() != nil {
		return ExitInterrupted
	}
	return Finish(ctx, stderr, emit(stdout, o.OutFile, func(w io.Writer) error { return write(w, rows) }))
}

// emit writes through a buffer to stdout or, when set, to outFile.
func emit(stdout io.Writer, outFile string, fn func(io.Writer) error) (err error) {
	dst := stdout
	if outFile != "" {
		f, cerr := os.Create(outFile)
		if cerr != nil {
			return fmt.Errorf("failed to create output file %q: %w", outFile, cerr)
		}
		defer func() {
			if e := f.Close(); err == nil {
				err = e
			}
		}()
		dst = f
	}
	outw := bufio.NewWriterSize(dst, 64<<10)
	if err := fn(outw); err != nil {
		return err
	}
	return outw.Flush()
}

// Finish maps a terminal error to an exit code, printing it to stderr.
// A closed downstream pipe is a normal, silent end.
func Finish(ctx context.Context, stderr io.Writer, err error) int {
	switch {
	case writers.IsBrokenPipe(err):
		return ExitOK
	case err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return ExitInterrupted
	case err != nil:
		cmdutil.Errorf(stderr, "%v", err)
		return ExitFatal
	case ctx.Err() != nil:
		return ExitInterrupted
	}
	return ExitOK
}

// ParseFailure handles the error returned by a ParseArgs: help and
// examples go to stdout and exit 0, anything else prints the error and
// usage to stderr and exits 2.
func ParseFailure(fs *flag.FlagSet, err error, stdout, stderr io.Writer, examples func(io.Writer)) int {
	switch {
	case errors.Is(err, flag.ErrHelp):
		return printTo(stdout, stderr, func(w io.Writer) {
			fs.SetOutput(w)
			fs.Usage()
		})
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		return printTo(stdout, stderr, examples)
	}
	cmdutil.Errorf(stderr, "%v", err)
	_, _ = fmt.Fprintln(stderr)
	fs.SetOutput(stderr)
	fs.Usage()
	return ExitUsage
}

// Version prints "<name> version <v>" and returns the exit code.
func Version(stdout, stderr io.Writer, name string) int {
	return printTo(stdout, stderr, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "%s version %s\n", name, version.Version)
	})
}

func printTo(stdout, stderr io.Writer, fn func(io.Writer)) int {
	outw := bufio.NewWriter(stdout)
	fn(outw)
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitFatal
	}
	return ExitOK
}
