// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"multicomponent/internal/clibase"
	"multicomponent/internal/cliutil"
	"multicomponent/internal/plot"
	"multicomponent/internal/textin"
)

// Input formats accepted as the first positional.
const (
	FormatEDS = "eds"
	FormatAmp = "amp"
)

type Options struct {
	clibase.Common

	Format    string // eds|amp
	InputFile string

	Plot        string
	PlotChannel string
	Encoding    string
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "extract ROX and FAM multicomponent signal per well and cycle", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] <eds|amp> <input_file>\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  eds                         Zip archive with a multicomponent data XML member")
		_, _ = fmt.Fprintln(out, "  amp                         Tab-delimited amplification export ('-' for STDIN, .gz accepted)")
		_, _ = fmt.Fprintf(out, "      --encoding string       Character set of amp text: %s [%s]\n", strings.Join(textin.Encodings, " | "), def("encoding"))

		_, _ = fmt.Fprintln(out, "\nPlot:")
		_, _ = fmt.Fprintln(out, "      --plot path.png         Also draw per-well amplification curves to a PNG")
		_, _ = fmt.Fprintf(out, "      --plot-channel string   Channel to draw: FAM | ROX [%s]\n", def("plot-channel"))
	})
	return fs
}

// PrintExamples prints a tiny quickstart for multicomponent.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "multicomponent", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Signal table from an EDS run file:")
		_, _ = fmt.Fprintln(w, "  multicomponent eds run.eds > signal.tsv")
		_, _ = fmt.Fprintln(w, "\nFrom an amplification export, as a workbook plus curves:")
		_, _ = fmt.Fprintln(w, "  multicomponent -o xlsx --out-file signal.xlsx --plot curves.png amp export.txt")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options

	// Shared flags via clibase
	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.StringVar(&o.Plot, "plot", "", "write amplification curves to this PNG")
	fs.StringVar(&o.PlotChannel, "plot-channel", plot.ChannelFAM, "channel to draw: FAM | ROX")
	fs.StringVar(&o.Encoding, "encoding", "utf-8", "character set of amp text files")

	// Split & parse
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

	switch len(posArgs) {
	case 0:
		return o, errors.New("missing <format> and <input_file>")
	case 1:
		return o, errors.New("missing <input_file>")
	case 2:
	default:
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(posArgs[2:], " "))
	}
	o.Format, o.InputFile = posArgs[0], posArgs[1]
	if o.Format != FormatEDS && o.Format != FormatAmp {
		return o, fmt.Errorf("invalid format %q (want %s | %s)", o.Format, FormatEDS, FormatAmp)
	}
	if o.Format == FormatEDS && o.InputFile == "-" {
		return o, errors.New("eds input must be a file path, not STDIN")
	}
	if _, err := textin.LookupEncoding(o.Encoding); err != nil {
		return o, err
	}
	if o.PlotChannel != plot.ChannelFAM && o.PlotChannel != plot.ChannelROX {
		return o, fmt.Errorf("invalid --plot-channel %q (want %s | %s)", o.PlotChannel, plot.ChannelFAM, plot.ChannelROX)
	}
	return o, nil
}
