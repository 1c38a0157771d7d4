package wimey

import (
	"strconv"
	"strings"

	"github.com/agilira/go-errors"

	"github.com/usbertibox/wimey/pkg/suggest"
)

// Argument declares one flag the parser recognizes, under a long key ("--count") and a short
// key ("-c"). Both keys match by exact token equality; the value, when one is taken, is the
// following token.
type Argument struct {
	// LongKey is the long form and must start with "--".
	LongKey string

	// ShortKey is the short form and must start with "-".
	ShortKey string

	// HasValue marks the flag as taking a value in the following token.
	HasValue bool

	// ValueRequired makes a missing value a parse failure.
	ValueRequired bool

	// Dest receives the bound value. The destination kind selects the coercion.
	Dest Destination

	// ValueName is the human-readable value label used in diagnostics.
	ValueName string

	// Desc is the description shown in the help listing.
	Desc string
}

// label is the two-key form shown in the help listing, e.g. "-c  --count".
func (a *Argument) label() string {
	return a.ShortKey + "  " + a.LongKey
}

// AddArgument appends arg to the argument registry after normalization: a flag declared with
// HasValue or ValueRequired unset is a presence flag and is registered as an always-required
// boolean. Presence flags must therefore carry a [BoolVar] destination. The descriptor is
// copied; it cannot change after registration.
func (p *Parser) AddArgument(arg Argument) error {
	if !strings.HasPrefix(arg.LongKey, "--") || len(arg.LongKey) <= len("--") {
		return errors.New(ErrCodeInvalidDescriptor, "long key "+strconv.Quote(arg.LongKey)+" must start with --")
	}
	if !strings.HasPrefix(arg.ShortKey, "-") || len(arg.ShortKey) <= len("-") {
		return errors.New(ErrCodeInvalidDescriptor, "short key "+strconv.Quote(arg.ShortKey)+" must start with -")
	}
	if !arg.ValueRequired || !arg.HasValue {
		if arg.Dest.kind != KindBool {
			return errors.New(ErrCodeInvalidDescriptor,
				"presence flag "+arg.LongKey+" requires a BoolVar destination, got "+arg.Dest.kind.String())
		}
		arg.HasValue = true
		arg.ValueRequired = true
	}
	if arg.Dest.kind == KindInvalid {
		return errors.New(ErrCodeInvalidDescriptor, "argument "+arg.LongKey+" has no destination")
	}
	p.args = append(p.args, &arg)
	return nil
}

// Arguments returns the registered arguments in registration order. The returned slice is
// shared with the parser and must be treated as read-only.
func (p *Parser) Arguments() []*Argument {
	return p.args
}

// lookupArgument returns the argument registered under key, matching either form exactly.
func (p *Parser) lookupArgument(key string) *Argument {
	for _, arg := range p.args {
		if arg.LongKey == key || arg.ShortKey == key {
			return arg
		}
	}
	return nil
}

// parseArguments is the argument pass: one scan over the full argument vector, program name
// included. Bound value tokens are not skipped; they are rescanned like any other token and
// simply match nothing in the common case.
func (p *Parser) parseArguments(argv []string) error {
	if len(p.args) == 0 {
		return nil
	}

	for i := 0; i < len(argv); i++ {
		arg := p.lookupArgument(argv[i])
		if arg == nil {
			p.warnNearMiss(argv[i])
			continue
		}

		if p.helpGenerated && arg.LongKey == helpLongKey {
			p.WriteHelp(p.stdout, argv[0])
			p.exit(0)
			return nil
		}

		if arg.Dest.kind == KindBool {
			// Presence only. No token is consumed.
			if err := arg.Dest.store(""); err != nil {
				p.log.Errorf("%v", err)
				return err
			}
			continue
		}

		overflow := i+1 >= len(argv)
		if arg.ValueRequired && overflow {
			err := errors.New(ErrCodeMissingValue,
				"argument "+arg.LongKey+" requires value `"+arg.ValueName+"` but none provided")
			p.log.Errorf("%v", err)
			return err
		}
		if overflow {
			continue
		}
		if err := arg.Dest.store(argv[i+1]); err != nil {
			p.log.Errorf("failed to bind %s: %v", arg.LongKey, err)
			return err
		}
	}
	return nil
}

// warnNearMiss emits a suggestion for a flag-looking token that matched nothing. Unmatched
// tokens never fail the parse; this is diagnostics only.
func (p *Parser) warnNearMiss(token string) {
	if !strings.HasPrefix(token, "-") || p.lookupCommand(token) != nil {
		return
	}
	keys := make([]string, 0, 2*len(p.args))
	for _, arg := range p.args {
		keys = append(keys, arg.LongKey, arg.ShortKey)
	}
	if similar := suggest.FindSimilar(token, keys, 3); len(similar) > 0 {
		p.log.Warnf("unknown flag %q, did you mean %s?", token, strings.Join(similar, " or "))
	}
}
