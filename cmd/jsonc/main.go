// Package main is the entry point for the jsonc CLI.
//
// The binary reads a JSONC document from standard input and exposes three
// subcommands — read, modify and format — implemented in the internal/cli
// package. All parsing, edit computation and formatting is delegated to
// internal/jsoncedit.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process and default to development placeholders.
package main

import (
	"github.com/mmr-tortoise/jsonc-cli/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package. This keeps the
	// build system decoupled from the cobra command definitions.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
