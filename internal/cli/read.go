// Package cli — read.go implements the "jsonc read" command.
//
// read parses the document on stdin into a JSONC syntax tree, locates the
// node at the given JSONPath (the document root when omitted), and prints
// its value: JSON-encoded by default, pretty-printed with --format, or as
// a bare unquoted string with --raw.
package cli

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/jsonc-cli/internal/jsoncedit"
	"github.com/mmr-tortoise/jsonc-cli/internal/jsonpath"
	"github.com/mmr-tortoise/jsonc-cli/internal/model"
)

// readFlags holds the flag values for the read command.
type readFlags struct {
	raw bool // --raw: print string values without quotes
}

// NewReadCommand creates the "read" cobra command.
func NewReadCommand(opts *globalOptions) *cobra.Command {
	flags := &readFlags{}

	cmd := &cobra.Command{
		Use:   "read [JSONPath]",
		Short: "Print the value at a JSONPath in the JSONC document on stdin",
		Long: `Print the value at the given JSONPath in the JSONC document read from
standard input. The JSONPath is a JSON array literal of object keys and
array indices; omitting it selects the document root.

Examples:
  cat tsconfig.json | jsonc read '["compilerOptions","target"]'
  cat .eslintrc.json | jsonc read '["rules",0]' --raw
  cat settings.json | jsonc read --format`,

		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, opts, flags, args)
		},
	}

	cmd.Flags().BoolVarP(&flags.raw, "raw", "r", false, "Print string values without surrounding quotes")

	return cmd
}

func runRead(cmd *cobra.Command, opts *globalOptions, flags *readFlags, args []string) error {
	// Validate arguments before touching stdin.
	path := jsonpath.Root
	if len(args) == 1 {
		parsed, err := jsonpath.Parse(args[0])
		if err != nil {
			return model.WrapCLIError(model.ExitInvalidJSONPath, "invalid JSONPath argument", err)
		}
		path = parsed
	}

	text, err := readStdin(cmd)
	if err != nil {
		return err
	}

	root, err := jsoncedit.ParseTree(text)
	if err != nil || root == nil {
		return model.WrapCLIError(model.ExitInvalidInput, "Invalid JSONC on stdin", err)
	}

	node := jsoncedit.FindNodeAtLocation(root, path)
	if node == nil {
		return model.NewCLIError(model.ExitPathNotFound,
			"Invalid JSONPath, could not find the value in the JSONC document")
	}

	if flags.raw && node.Type == jsoncedit.NodeString {
		// Bare string: decoded value, no quotes, no JSON encoding.
		value, _ := jsoncedit.NodeValue(node).(string)
		return writeResult(cmd, opts, value)
	}

	result, err := encodeNode(text, node, opts.format)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidInput, "failed to encode the value", err)
	}
	return writeResult(cmd, opts, result)
}

// encodeNode renders the node's source text as plain JSON: comments and
// trailing commas are stripped, then the remaining text is compacted or
// indented. Re-encoding the text rather than a decoded map keeps object
// keys in document order.
func encodeNode(text string, node *jsoncedit.Node, pretty bool) (string, error) {
	plain := jsonc.ToJSON([]byte(text[node.Offset:node.End()]))

	var buf bytes.Buffer
	var err error
	if pretty {
		err = json.Indent(&buf, plain, "", "  ")
	} else {
		err = json.Compact(&buf, plain)
	}
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
