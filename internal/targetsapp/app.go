// internal/targetsapp/app.go
package targetsapp

import (
	"context"
	"io"

	"multicomponent/internal/appcore"
	"multicomponent/internal/targetcli"
	"multicomponent/internal/targets"
	"multicomponent/internal/writers"
)

const name = "eds-targets"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := targetcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := targetcli.ParseArgs(fs, argv)
	if err != nil {
		return appcore.ParseFailure(fs, err, stdout, stderr, targetcli.PrintExamples)
	}
	if opts.Version {
		return appcore.Version(stdout, stderr, name)
	}

	extract := func(_ context.Context, warn appcore.WarnFunc) ([]targets.Assignment, error) {
		p, err := targets.Load(opts.InputFile)
		if err != nil {
			return nil, err
		}
		if extra := p.Surplus(); len(extra) > 0 {
			warn("%d target assignment(s) beyond the %dx%d plate ignored", len(extra), p.Rows, p.Columns)
		}
		return p.Assignments()
	}
	write := func(w io.Writer, rows []targets.Assignment) error {
		return writers.WriteTarget(opts.Output, w, rows, opts.Header)
	}
	return appcore.Run(parent, stdout, stderr,
		appcore.Options{OutFile: opts.OutFile, Quiet: opts.Quiet},
		extract, write)
}
