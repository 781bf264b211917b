package targetcli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"multicomponent/internal/clibase"
	"multicomponent/internal/cliutil"
)

type Options struct {
	clibase.Common

	InputFile string
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "list the detector target assigned to each well", func(out io.Writer, _ func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] <input_file>\n", name)
		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  input_file                  Zip archive with a plate setup XML member")
	})
	return fs
}

// PrintExamples prints a tiny quickstart for eds-targets.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "eds-targets", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Target per well:")
		_, _ = fmt.Fprintln(w, "  eds-targets run.eds")
		_, _ = fmt.Fprintln(w, "\nJoin with the signal table:")
		_, _ = fmt.Fprintln(w, "  join -t $'\\t' <(eds-targets --no-header run.eds) <(multicomponent --no-header eds run.eds)")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if c.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if c.Help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}
	if err := clibase.AfterParse(&c, noHeader); err != nil {
		return o, err
	}
	o.Common = c

	switch {
	case len(posArgs) == 0:
		return o, errors.New("missing <input_file>")
	case len(posArgs) > 1:
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(posArgs[1:], " "))
	case posArgs[0] == "-":
		return o, errors.New("input must be a file path, not STDIN")
	}
	o.InputFile = posArgs[0]
	return o, nil
}
