package wimey

import (
	"io"
	"os"
)

// Parser owns a pair of registries (commands and arguments) and the configuration they are
// parsed under. Build one per program run: register everything first, then call [Parser.Parse]
// once. Registration and parsing must not interleave; the parser itself does no locking.
type Parser struct {
	conf Config
	cmds []*Command
	args []*Argument

	log           *logger
	stdout        io.Writer
	helpGenerated bool
	helpRequested bool

	// exit terminates the process after the help listing is printed. Overridden in tests.
	exit func(code int)
}

// New returns a parser with empty registries, configured by conf and writing diagnostics and
// help to the standard streams.
func New(conf Config) *Parser {
	return &Parser{
		conf:   conf,
		log:    &logger{level: conf.LogLevel, out: os.Stdout, errOut: os.Stderr},
		stdout: os.Stdout,
		exit:   os.Exit,
	}
}

// SetConfig replaces the parser's configuration.
func (p *Parser) SetConfig(conf Config) {
	p.conf = conf
	p.log.level = conf.LogLevel
}

// Config returns the current configuration.
func (p *Parser) Config() Config {
	return p.conf
}

// SetOutput redirects help output and the INFO/WARN channel to out and the ERROR channel to
// errOut. Used by hosts that capture output, and by tests.
func (p *Parser) SetOutput(out, errOut io.Writer) {
	p.stdout = out
	p.log.out = out
	p.log.errOut = errOut
}

// Parse scans argv twice: the command pass dispatches callbacks, then the argument pass binds
// flag values. argv must include the program name at index 0, so callers typically pass
// os.Args. Both passes always run; when both fail, the command pass error is returned. Side
// effects of a succeeding pass (callback invocations, bound values) take effect even when the
// other pass fails.
func (p *Parser) Parse(argv []string) error {
	cmdErr := p.parseCommands(argv)
	argErr := p.parseArguments(argv)
	if cmdErr != nil {
		return cmdErr
	}
	return argErr
}

// Reset empties both registries and forgets the generated help flag. The configuration is
// kept. Resetting an already empty parser is a no-op, so calling Reset twice is safe.
func (p *Parser) Reset() {
	p.cmds = nil
	p.args = nil
	p.helpGenerated = false
	p.helpRequested = false
}
