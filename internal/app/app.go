// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"multicomponent/internal/amp"
	"multicomponent/internal/appcore"
	"multicomponent/internal/cli"
	"multicomponent/internal/eds"
	"multicomponent/internal/plot"
	"multicomponent/internal/signal"
	"multicomponent/internal/writers"
)

const name = "multicomponent"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard) // silence default flag pkg

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		return appcore.ParseFailure(fs, err, stdout, stderr, cli.PrintExamples)
	}
	if opts.Version {
		return appcore.Version(stdout, stderr, name)
	}

	extract := func(_ context.Context, warn appcore.WarnFunc) ([]signal.Row, error) {
		table, err := load(opts, warn)
		if err != nil {
			return nil, err
		}
		if opts.Plot != "" {
			if err := writePlot(opts, table); err != nil {
				return nil, err
			}
		}
		return table.Rows(), nil
	}
	write := func(w io.Writer, rows []signal.Row) error {
		return writers.WriteSignal(opts.Output, w, rows, opts.Header)
	}
	return appcore.Run(parent, stdout, stderr,
		appcore.Options{OutFile: opts.OutFile, Quiet: opts.Quiet},
		extract, write)
}

func load(opts cli.Options, warn appcore.WarnFunc) (*signal.Table, error) {
	switch opts.Format {
	case cli.FormatEDS:
		m, err := eds.Load(opts.InputFile)
		if err != nil {
			return nil, err
		}
		if extra := m.Surplus(); len(extra) > 0 {
			warn("%d well(s) beyond WellCount=%d ignored", len(extra), m.WellCount)
		}
		return m.Table()
	case cli.FormatAmp:
		a, err := amp.Load(opts.InputFile, opts.Encoding)
		if err != nil {
			return nil, err
		}
		return a.Table()
	}
	return nil, fmt.Errorf("unsupported format %q", opts.Format)
}

func writePlot(opts cli.Options, table *signal.Table) (err error) {
	f, err := os.Create(opts.Plot)
	if err != nil {
		return fmt.Errorf("failed to create plot file %q: %w", opts.Plot, err)
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	po := plot.DefaultOptions
	po.Channel = opts.PlotChannel
	if opts.InputFile != "-" {
		po.Title = filepath.Base(opts.InputFile)
	}
	return plot.Curves(f, table, po)
}
