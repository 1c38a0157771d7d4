package wimey

import (
	"strings"

	"github.com/agilira/go-errors"
)

// Command declares one command the parser recognizes. Commands are matched by exact token
// equality anywhere after the program name; a matched command invokes its callback, optionally
// with the following token as value.
type Command struct {
	// Key is the command word, e.g. "install". Must be non-empty.
	Key string

	// HasValue marks the command as accepting a value in the following token.
	HasValue bool

	// ValueRequired makes a missing value a parse failure instead of an absent-value callback.
	ValueRequired bool

	// ValueName is the human-readable value label used in diagnostics, e.g. "Number".
	ValueName string

	// Desc is the description shown in the help listing.
	Desc string

	// Callback runs when the command is matched. The Value is absent when no value token was
	// claimed for this occurrence.
	Callback func(v Value)
}

// AddCommand appends cmd to the command registry. Registration order is preserved and is the
// order of the help listing. The descriptor is copied; it cannot change after registration.
func (p *Parser) AddCommand(cmd Command) error {
	if cmd.Key == "" {
		return errors.New(ErrCodeInvalidDescriptor, "command key cannot be empty")
	}
	if cmd.Callback == nil {
		return errors.New(ErrCodeInvalidDescriptor, "command "+cmd.Key+" has no callback")
	}
	p.cmds = append(p.cmds, &cmd)
	return nil
}

// Commands returns the registered commands in registration order. The returned slice is shared
// with the parser and must be treated as read-only.
func (p *Parser) Commands() []*Command {
	return p.cmds
}

// lookupCommand returns the command registered under exactly key, or nil.
func (p *Parser) lookupCommand(key string) *Command {
	for _, cmd := range p.cmds {
		if cmd.Key == key {
			return cmd
		}
	}
	return nil
}

// claimsCommandToken reports whether token is claimed by some registered command: equal to a
// key, or merely starting with one. The prefix rule is deliberately coarse (a command "go" also
// claims a following "gopher") and exists only to decide whether the token after a command is
// that command's value or the start of another command.
func (p *Parser) claimsCommandToken(token string) bool {
	for _, cmd := range p.cmds {
		if strings.HasPrefix(token, cmd.Key) {
			return true
		}
	}
	return false
}

// parseCommands is the command pass: one left-to-right scan over argv starting after the
// program name. Tokens that match no command are left for the argument pass.
func (p *Parser) parseCommands(argv []string) error {
	if len(p.cmds) == 0 {
		return nil
	}
	if len(argv) < 2 {
		err := errors.New(ErrCodeInsufficientArgs, "commands are registered but no tokens were supplied")
		p.log.Errorf("%v", err)
		return err
	}

	for i := 1; i < len(argv); i++ {
		cmd := p.lookupCommand(argv[i])
		if cmd == nil {
			continue
		}
		p.log.Infof("found command: %s", cmd.Key)

		overflow := i+1 >= len(argv)
		if cmd.ValueRequired && overflow {
			err := errors.New(ErrCodeMissingValue,
				"command "+cmd.Key+" requires value `"+cmd.ValueName+"` but none provided")
			p.log.Errorf("%v", err)
			return err
		}
		if cmd.HasValue && !overflow && !p.claimsCommandToken(argv[i+1]) {
			cmd.Callback(someValue(argv[i+1]))
			i++
			continue
		}
		// No value claimed for this occurrence: either the command takes none, the vector
		// ended, or the next token is itself a command.
		cmd.Callback(Value{})
	}
	return nil
}
