// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"multicomponent/internal/output"
)

// Common holds CLI fields shared by multicomponent and eds-targets.
type Common struct {
	// Output
	Output  string // text|json|jsonl|xlsx
	OutFile string
	Header  bool

	// Misc
	Quiet    bool
	Version  bool
	Help     bool
	Examples bool
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Output
	fs.StringVar(&c.Output, "output", output.FormatText, "output: "+strings.Join(output.Formats, " | ")+" [text]")
	fs.StringVar(&c.Output, "o", output.FormatText, "alias of --output")
	fs.StringVar(&c.OutFile, "out-file", "", "write output to this file instead of STDOUT")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "show this help [false]")
	fs.BoolVar(&c.Help, "help", false, "show this help [false]")
	fs.BoolVar(&c.Examples, "examples", false, "show quickstart examples and exit [false]")

	return &noHeader
}

// AfterParse finalizes header, then runs shared validation.
func AfterParse(c *Common, noHeader *bool) error {
	c.Header = !*noHeader
	return Validate(c)
}

// Validate applies shared CLI invariants used by both tools.
func Validate(c *Common) error {
	valid := false
	for _, f := range output.Formats {
		if c.Output == f {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.Output == output.FormatXLSX && c.OutFile == "" {
		return errors.New("--output xlsx requires --out-file")
	}
	return nil
}
