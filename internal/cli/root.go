// Package cli implements the cobra-based commands for the jsonc CLI.
//
// Each subcommand (read, modify, format) is defined in its own file within
// this package. This file defines the root command, the global flags
// shared by every subcommand, and the error-to-exit-code translation.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mmr-tortoise/jsonc-cli/internal/jsoncedit"
	"github.com/mmr-tortoise/jsonc-cli/internal/model"
)

// Version, Commit and Date are set at build time via ldflags. They are
// injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// globalOptions holds the flag values shared by all subcommands. They are
// bound to cobra persistent flags on the root command, which makes them
// available to every subcommand automatically.
type globalOptions struct {
	// noNewline suppresses the trailing newline otherwise appended to
	// the output.
	noNewline bool

	// format requests pretty-printed output. Its exact meaning differs
	// per command: read indents the extracted value, modify runs a
	// whole-document formatting pass after editing, format ignores it
	// (formatting is the command's whole job).
	format bool

	// file is the output destination; "-" means stdout.
	file string

	// tabSize is the indentation width when indenting with spaces.
	tabSize int

	// insertSpaces selects spaces (true) or tabs (false) for indentation.
	insertSpaces bool

	// eol is the line-ending style, "lf" or "crlf"; empty means detect
	// from the document.
	eol string
}

// NewRootCommand creates and configures the root cobra command with all
// subcommands registered. The root command itself performs no action.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "jsonc",
		Short: "Read, modify and format JSONC documents from standard input",
		Long: `jsonc reads a whole JSONC document (JSON with comments and trailing
commas) from standard input, applies one operation, and writes the result
to standard output or a file.

modify computes the minimal text edits for a single change, so comments
and unrelated whitespace in the document are preserved verbatim.`,

		// Errors are formatted by Execute; cobra must not print usage or
		// errors on its own.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	// PersistentFlags are inherited by all subcommands.
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.noNewline, "no-newline", "n", false, "Do not append a trailing newline to the output")
	pf.BoolVarP(&opts.format, "format", "m", false, "Pretty-print the result")
	pf.StringVarP(&opts.file, "file", "f", "-", `Write the result to this file instead of stdout ("-" = stdout)`)
	pf.IntVarP(&opts.tabSize, "tab-size", "t", 2, "Indentation width when indenting with spaces")
	pf.BoolVarP(&opts.insertSpaces, "insert-spaces", "s", true, "Indent with spaces; =false indents with tabs")
	pf.Var(newEOLValue(&opts.eol), "eol", `Line-ending style used when formatting ("lf" or "crlf")`)

	rootCmd.AddCommand(NewReadCommand(opts))
	rootCmd.AddCommand(NewModifyCommand(opts))
	rootCmd.AddCommand(NewFormatCommand(opts))

	return rootCmd
}

// Execute runs the root command and handles exit codes. CLIError values
// carry their own exit code; any other error exits with code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", cliErr.Error())
			os.Exit(int(cliErr.Code))
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(int(model.ExitGeneralError))
	}
}

// readStdin accumulates the whole input stream before any processing
// begins. There is no size limit and no timeout: an invocation whose
// stdin never closes blocks until it does.
func readStdin(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", model.WrapCLIError(model.ExitInvalidInput, "failed to read stdin", err)
	}
	return string(data), nil
}

// formattingOptions builds the engine formatting options from the global
// flags. eol has already been validated by the flag parser.
func (o *globalOptions) formattingOptions() jsoncedit.FormatOptions {
	fo := jsoncedit.FormatOptions{
		TabSize:      o.tabSize,
		InsertSpaces: o.insertSpaces,
	}
	switch o.eol {
	case "lf":
		fo.EOL = "\n"
	case "crlf":
		fo.EOL = "\r\n"
	}
	return fo
}

// explicitFormattingOptions returns the formatting options only if at
// least one formatting flag was given on the command line, nil otherwise.
// modify uses this distinction: without explicit options the engine
// returns raw minimal edits and injected text stays compact.
func (o *globalOptions) explicitFormattingOptions(cmd *cobra.Command) *jsoncedit.FormatOptions {
	flags := cmd.Flags()
	if !flags.Changed("tab-size") && !flags.Changed("insert-spaces") && !flags.Changed("eol") {
		return nil
	}
	fo := o.formattingOptions()
	return &fo
}

// validateTabSize rejects non-positive indentation widths before any
// input is read.
func (o *globalOptions) validateTabSize() error {
	if o.tabSize <= 0 {
		return model.NewCLIError(model.ExitInvalidArguments,
			fmt.Sprintf("invalid --tab-size %d, must be a positive integer", o.tabSize))
	}
	return nil
}

// eolValue is a pflag.Value that only accepts the two line-ending tokens,
// so an invalid --eol fails at flag-parse time.
type eolValue struct {
	target *string
}

func newEOLValue(target *string) pflag.Value {
	return &eolValue{target: target}
}

func (e *eolValue) String() string {
	return *e.target
}

func (e *eolValue) Set(value string) error {
	if value != "lf" && value != "crlf" {
		return fmt.Errorf("must be %q or %q", "lf", "crlf")
	}
	*e.target = value
	return nil
}

func (e *eolValue) Type() string {
	return "lf|crlf"
}
