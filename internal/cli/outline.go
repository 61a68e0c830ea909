package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creachadair/scrubby/internal/ui/pretty"
)

func newOutlineCommand(opts *globalOptions) *cobra.Command {
	var includeText bool

	cmd := &cobra.Command{
		Use:   "outline [file]",
		Short: "Show the reconstructed document structure",
		Long: `Show the nesting structure recovered from the input as an indented
outline. Tags that never found a partner are flagged as unclosed; tags
closed implicitly by the active ruleset keep their derived extent.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, content, err := loadInput(cmd, args)
			if err != nil {
				return err
			}
			p, err := opts.parse(cmd, name, content)
			if err != nil {
				return err
			}

			formatter := pretty.NewTreeFormatter(opts.styles(cmd))
			formatter.IncludeText = includeText
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTree(p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeText, "text", false, "include text runs in the outline")

	return cmd
}
