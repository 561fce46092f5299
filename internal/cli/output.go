// Package cli — output.go implements the shared result writer.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/jsonc-cli/internal/model"
)

// writeResult writes the final result string to the destination selected
// by --file ("-" or empty means stdout), appending a trailing newline
// unless --no-newline was given. Write failures carry the underlying
// system error.
func writeResult(cmd *cobra.Command, opts *globalOptions, result string) error {
	if !opts.noNewline {
		result += "\n"
	}

	if opts.file != "" && opts.file != "-" {
		if err := os.WriteFile(opts.file, []byte(result), 0o644); err != nil {
			return model.WrapCLIError(model.ExitWriteFailed,
				fmt.Sprintf("failed to write result to %s", opts.file), err)
		}
		return nil
	}

	if _, err := io.WriteString(cmd.OutOrStdout(), result); err != nil {
		return model.WrapCLIError(model.ExitWriteFailed, "failed to write result to stdout", err)
	}
	return nil
}
