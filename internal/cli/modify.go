// Package cli — modify.go implements the "jsonc modify" command.
//
// modify computes the minimal text edits that set, insert or delete the
// value at a JSONPath, applies them, and writes the result. Comments and
// whitespace outside the edited range are preserved verbatim; a
// whole-document reformat happens only when --format is combined with
// explicit formatting flags.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/jsonc-cli/internal/jsoncedit"
	"github.com/mmr-tortoise/jsonc-cli/internal/jsonpath"
	"github.com/mmr-tortoise/jsonc-cli/internal/model"
)

// modifyFlags holds the flag values for the modify command.
type modifyFlags struct {
	path           string // --JSONPath: location to modify
	delete         bool   // --delete: remove the value at the path
	value          string // --value: JSON literal to set at the path
	arrayInsertion bool   // --is-array-insertion: insert instead of overwrite
}

// NewModifyCommand creates the "modify" cobra command.
func NewModifyCommand(opts *globalOptions) *cobra.Command {
	flags := &modifyFlags{}

	cmd := &cobra.Command{
		Use:   "modify -p <JSONPath> (-d | -v <json-value>)",
		Short: "Set or delete the value at a JSONPath in the JSONC document on stdin",
		Long: `Set or delete the value at the given JSONPath in the JSONC document read
from standard input. Exactly one of --delete and --value must be given.

The change is applied as a minimal text edit: comments and untouched
whitespace survive. Newly injected text is shaped by the formatting flags
when they are given; combined with --format the whole result is
reformatted afterwards.

Examples:
  cat package.json | jsonc modify -p '["scripts","test"]' -v '"vitest run"'
  cat package.json | jsonc modify -p '["keywords",0]' -v '"jsonc"' -i
  cat package.json | jsonc modify -p '["devDependencies","tslint"]' -d`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runModify(cmd, opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.path, "JSONPath", "p", "", "JSONPath of the value to modify (JSON array literal)")
	cmd.Flags().BoolVarP(&flags.delete, "delete", "d", false, "Delete the value at the JSONPath")
	cmd.Flags().StringVarP(&flags.value, "value", "v", "", "JSON literal to set at the JSONPath")
	cmd.Flags().BoolVarP(&flags.arrayInsertion, "is-array-insertion", "i", false, "Insert a new array element at the index instead of overwriting it")
	_ = cmd.MarkFlagRequired("JSONPath")

	return cmd
}

func runModify(cmd *cobra.Command, opts *globalOptions, flags *modifyFlags) error {
	// All validation happens before stdin is read.
	hasValue := cmd.Flags().Changed("value")
	if flags.delete == hasValue {
		return model.NewCLIError(model.ExitInvalidArguments,
			"exactly one of --delete and --value must be given")
	}
	if err := opts.validateTabSize(); err != nil {
		return err
	}
	path, err := jsonpath.Parse(flags.path)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidJSONPath, "invalid --JSONPath", err)
	}

	var value any
	if hasValue {
		value, err = parseValueLiteral(flags.value)
		if err != nil {
			return model.WrapCLIError(model.ExitInvalidInput, "invalid JSON in --value", err)
		}
	}

	text, err := readStdin(cmd)
	if err != nil {
		return err
	}

	// Formatting options shape the injected text only when given
	// explicitly; otherwise the engine produces raw compact edits.
	formatting := opts.explicitFormattingOptions(cmd)
	modifyOptions := jsoncedit.ModifyOptions{
		Formatting:       formatting,
		IsArrayInsertion: flags.arrayInsertion,
	}

	var edits []jsoncedit.Edit
	if flags.delete {
		edits, err = jsoncedit.ComputeRemoveEdits(text, path, modifyOptions)
	} else {
		edits, err = jsoncedit.ComputeSetEdits(text, path, value, modifyOptions)
	}
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidInput, "failed to modify the document", err)
	}
	result := jsoncedit.ApplyEdits(text, edits)

	// Second pass: reformat the entire result, unlike the injection-only
	// shaping above.
	if opts.format && formatting != nil {
		formatEdits := jsoncedit.Format(result, nil, *formatting)
		result = jsoncedit.ApplyEdits(result, formatEdits)
	}

	return writeResult(cmd, opts, result)
}

// parseValueLiteral decodes the --value argument as a single JSON value.
// Numbers stay json.Number so they are re-emitted exactly as written.
func parseValueLiteral(literal string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(literal))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected trailing content after the value")
	}
	return value, nil
}
