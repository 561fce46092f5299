// Package model defines the error and exit-code types shared across the
// jsonc CLI.
//
// The package contains pure data structures with no external dependencies.
// Every value handled by the tool is transient — a single invocation reads
// stdin once, computes a result string, writes it, and exits — so there is
// no persistent state to model beyond the error taxonomy.
//
// The exit codes (ExitCode) and the custom error type (CLIError) carry the
// distinction between the four failure kinds of the tool: argument
// validation, input parsing, path lookup, and output I/O.
package model
