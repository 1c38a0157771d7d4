package wimey

import (
	"fmt"
	"io"
	"strings"

	"github.com/usbertibox/wimey/pkg/textutil"
)

// Reserved keys of the built-in help flag registered by [Parser.GenerateHelp].
const (
	helpLongKey  = "--help"
	helpShortKey = "-h"
)

// helpWrapWidth is the total column budget for a help row, description included.
const helpWrapWidth = 80

// GenerateHelp registers the built-in --help/-h flag. When it is matched during the argument
// pass, the parser prints the full help listing and terminates the process with status 0.
// Calling GenerateHelp more than once registers the flag once.
func (p *Parser) GenerateHelp() error {
	if p.helpGenerated {
		return nil
	}
	err := p.AddArgument(Argument{
		LongKey:  helpLongKey,
		ShortKey: helpShortKey,
		Dest:     BoolVar(&p.helpRequested),
		Desc:     "Show help list",
	})
	if err != nil {
		p.log.Errorf("failed to generate %s: %v", helpLongKey, err)
		return err
	}
	p.helpGenerated = true
	return nil
}

// WriteHelp renders the help listing to w: the name/version banner, the usage line (configured
// or synthesized from argv0), the description, the Commands and Arguments tables aligned on a
// shared column width, and the copyright/license footer. Missing configuration fields are
// simply omitted.
func (p *Parser) WriteHelp(w io.Writer, argv0 string) {
	if p.conf.Name != "" && p.conf.Version != "" {
		fmt.Fprintf(w, "%s (v%s)\n", p.conf.Name, p.conf.Version)
	}
	if p.conf.Usage != "" {
		fmt.Fprintf(w, "Usage: %s\n", p.conf.Usage)
	} else {
		fmt.Fprintf(w, "%s [options] [arguments]\n", argv0)
	}
	if p.conf.Description != "" {
		fmt.Fprintf(w, "\n%s\n", p.conf.Description)
	}

	// Commands and arguments share one left-column width so the two tables align.
	width := 0
	for _, cmd := range p.cmds {
		if len(cmd.Key) > width {
			width = len(cmd.Key)
		}
	}
	for _, arg := range p.args {
		if l := len(arg.label()); l > width {
			width = l
		}
	}

	if len(p.cmds) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		for _, cmd := range p.cmds {
			writeHelpRow(w, cmd.Key, cmd.Desc, width)
		}
	}
	if len(p.args) > 0 {
		fmt.Fprintf(w, "\nArguments:\n")
		for _, arg := range p.args {
			writeHelpRow(w, arg.label(), arg.Desc, width)
		}
	}

	if p.conf.Copyright != "" {
		fmt.Fprintf(w, "\n%s\n", p.conf.Copyright)
	}
	if p.conf.License != "" {
		fmt.Fprintf(w, "This software is under %s license.\n", p.conf.License)
	}
}

// writeHelpRow prints one padded table row, wrapping the description with a hanging indent
// when it overflows the column budget.
func writeHelpRow(w io.Writer, key, desc string, width int) {
	if desc == "" {
		fmt.Fprintf(w, "  %s\n", key)
		return
	}
	lines := textutil.Wrap(desc, helpWrapWidth-(width+4))
	fmt.Fprintf(w, "  %-*s  %s\n", width, key, lines[0])
	indent := strings.Repeat(" ", width+4)
	for _, line := range lines[1:] {
		fmt.Fprintf(w, "%s%s\n", indent, line)
	}
}
