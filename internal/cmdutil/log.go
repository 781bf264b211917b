// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// prefix renders label in the given attributes only when dst is a terminal.
// Redirected stderr (files, pipes, buffers) always gets plain text.
func prefix(dst io.Writer, label string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if f, ok := dst.(*os.File); ok && os.Getenv("NO_COLOR") == "" &&
		(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(label)
}

// Errorf prints one "ERROR: " line. It is the only way fatal conditions reach the user.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "%s %s\n", prefix(dst, "ERROR:", color.FgRed, color.Bold), fmt.Sprintf(format, a...))
}

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "%s %s\n", prefix(dst, "WARN:", color.FgYellow), fmt.Sprintf(format, a...))
}
