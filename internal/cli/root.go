// Package cli provides the Cobra command structure for scrub.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/creachadair/scrubby/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalOptions carries the persistent flags shared by every subcommand.
type globalOptions struct {
	debug     bool
	color     string
	rulesPath string
	preset    string
	tabWidth  int
	skipWhite bool
}

// NewRootCommand creates the root scrub command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "scrub",
		Short: "A permissive scanner for tag-soup markup",
		Long: `scrub reads markup the way browsers do: nothing is a syntax error.

It scans HTML-ish and SGML-ish documents into a flat sequence of tokens,
matches open and close tags under a configurable set of implicit-closing
rules, and reconstructs the document structure from whatever it finds.
Mismatched, abandoned, and overlapping tags are reported, not rejected.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&opts.rulesPath, "rules", "",
		"path to a YAML ruleset file")
	rootCmd.PersistentFlags().StringVar(&opts.preset, "preset", "html",
		"rule preset when no ruleset file is given: html, none")
	rootCmd.PersistentFlags().IntVar(&opts.tabWidth, "tab-width", 8,
		"tab expansion width for reported columns")
	rootCmd.PersistentFlags().BoolVar(&opts.skipWhite, "skip-white", false,
		"discard whitespace-only text tokens")

	// Add subcommands.
	rootCmd.AddCommand(newTokensCommand(opts))
	rootCmd.AddCommand(newOutlineCommand(opts))
	rootCmd.AddCommand(newFindCommand(opts))
	rootCmd.AddCommand(newLocateCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
