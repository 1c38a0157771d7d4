// Package wimey provides a small library for declaring and parsing command-line commands and
// flags. A host program registers named commands (e.g. "hello <name>") and named flags
// (e.g. "--count <n>" / "-c"), each with optional typed values, then scans the argument vector
// once: matched commands invoke callbacks, matched flags coerce and write values into
// caller-owned destinations, and a generated help listing is available behind --help.
//
// The package prioritizes simplicity and ease of use. There are no nested subcommands, no
// combined short flags, and no --flag=value syntax; a value always follows its key as the next
// token. This focused design keeps the parsing rules easy to predict and the registration API
// small.
package wimey
