// Package cli — format.go implements the "jsonc format" command.
//
// format reformats the whole document on stdin according to the
// formatting flags, falling back to defaults (two spaces, detected line
// endings) when none are given. Comments and trailing commas are
// preserved; only whitespace between tokens changes.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/jsonc-cli/internal/jsoncedit"
)

// NewFormatCommand creates the "format" cobra command. It has no flags of
// its own; the shared formatting flags on the root command apply.
func NewFormatCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: "Reformat the JSONC document on stdin",
		Long: `Reformat the whole JSONC document read from standard input: one property
or element per line, indented per nesting level. Comments are preserved.
Formatting is idempotent — formatting an already formatted document with
the same options changes nothing.

Examples:
  cat tsconfig.json | jsonc format
  cat tsconfig.json | jsonc format --tab-size 4
  cat tsconfig.json | jsonc format --insert-spaces=false --eol crlf`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts)
		},
	}
}

func runFormat(cmd *cobra.Command, opts *globalOptions) error {
	if err := opts.validateTabSize(); err != nil {
		return err
	}

	text, err := readStdin(cmd)
	if err != nil {
		return err
	}

	// Unlike modify, format always constructs options, defaults included.
	edits := jsoncedit.Format(text, nil, opts.formattingOptions())
	result := jsoncedit.ApplyEdits(text, edits)

	return writeResult(cmd, opts, result)
}
