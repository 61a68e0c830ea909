package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/creachadair/scrubby/internal/logging"
	"github.com/creachadair/scrubby/internal/ui/pretty"
	"github.com/creachadair/scrubby/pkg/markup"
	"github.com/creachadair/scrubby/pkg/ruleset"
)

// loadInput reads the document to parse: the named file, or stdin when the
// name is "-" or absent. It returns a display name along with the content.
func loadInput(cmd *cobra.Command, args []string) (name, content string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", &ioError{fmt.Errorf("read stdin: %w", err)}
		}
		return "(stdin)", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", &ioError{err}
	}
	return args[0], string(data), nil
}

// buildOptions resolves the parser options from the global flags. A ruleset
// file takes precedence over the preset flag.
func (g *globalOptions) buildOptions(cmd *cobra.Command) (*markup.Options, error) {
	var rs *ruleset.Ruleset
	if g.rulesPath != "" {
		loaded, err := ruleset.Load(g.rulesPath)
		if err != nil {
			return nil, &configError{err}
		}
		rs = loaded
		logging.FromContext(cmd.Context()).Debug("loaded ruleset",
			logging.FieldRules, g.rulesPath,
			logging.FieldPreset, rs.Preset,
		)
	} else {
		switch g.preset {
		case ruleset.PresetHTML, ruleset.PresetNone, "":
			rs = &ruleset.Ruleset{Preset: g.preset}
		default:
			return nil, &configError{fmt.Errorf("unknown preset %q", g.preset)}
		}
	}

	opts, err := rs.Options()
	if err != nil {
		return nil, &configError{err}
	}
	opts.SkipWhiteText = g.skipWhite
	opts.TabWidth = g.tabWidth
	return opts, nil
}

// parse builds a parser over src using the resolved options.
func (g *globalOptions) parse(cmd *cobra.Command, name, src string) (*markup.Parser, error) {
	opts, err := g.buildOptions(cmd)
	if err != nil {
		return nil, err
	}
	p := markup.New(src, opts)
	logging.FromContext(cmd.Context()).Debug("parsed input",
		logging.FieldInput, name,
		logging.FieldBytes, len(src),
		logging.FieldObjects, p.Len(),
	)
	return p, nil
}

// styles resolves the output styles for the command's stdout.
func (g *globalOptions) styles(cmd *cobra.Command) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(g.color, cmd.OutOrStdout()))
}

// termWidth returns the terminal width of stdout, or 0 when stdout is not a
// terminal.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
