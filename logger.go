package wimey

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errTag  = color.New(color.FgRed).Sprint("ERROR")
	warnTag = color.New(color.FgYellow).Sprint("WARN ")
	infoTag = color.New(color.FgGreen).Sprint("INFO ")
)

// logger is the parser's diagnostic channel. Errors go to errOut unconditionally; warnings and
// informational messages go to out, gated by the configured level.
type logger struct {
	level  LogLevel
	out    io.Writer
	errOut io.Writer
}

func (l *logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.errOut, "%s %s\n", errTag, fmt.Sprintf(format, args...))
}

func (l *logger) Warnf(format string, args ...any) {
	if l.level >= LogWarnings {
		fmt.Fprintf(l.out, "%s %s\n", warnTag, fmt.Sprintf(format, args...))
	}
}

func (l *logger) Infof(format string, args ...any) {
	if l.level >= LogAll {
		fmt.Fprintf(l.out, "%s %s\n", infoTag, fmt.Sprintf(format, args...))
	}
}
