package wimey

// LogLevel controls which diagnostic messages the parser emits while registering and parsing.
// Errors are always reported.
type LogLevel int

const (
	// LogErrorsOnly emits errors only.
	LogErrorsOnly LogLevel = iota
	// LogWarnings emits errors and warnings.
	LogWarnings
	// LogAll emits errors, warnings and informational messages.
	LogAll
)

// Config holds the host program's metadata and the diagnostic verbosity. The parser only reads
// it: the name/version pair forms the help banner, Usage overrides the synthesized usage line,
// and Copyright/License are appended to the help listing when set.
type Config struct {
	// LogLevel gates the WARN and INFO diagnostic channels. The zero value reports errors only.
	LogLevel LogLevel

	// Name is the program name shown in the help banner.
	Name string

	// Description is a one-line summary printed under the usage line.
	Description string

	// Version is the program version, shown as "Name (vVersion)" when both are set.
	Version string

	// Usage, when non-empty, replaces the synthesized "<argv0> [options] [arguments]" line.
	Usage string

	// License names the license the help footer mentions.
	License string

	// Copyright is printed verbatim at the end of the help listing.
	Copyright string
}
