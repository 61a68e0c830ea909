package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creachadair/scrubby/internal/ui/pretty"
	"github.com/creachadair/scrubby/pkg/markup"
)

// tokenAttr is the JSON shape of one tag attribute.
type tokenAttr struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Bare  bool   `json:"bare,omitempty"`
}

// tokenInfo is the JSON shape of one scanned object.
type tokenInfo struct {
	Index   int         `json:"index"`
	Kind    string      `json:"kind"`
	Start   int         `json:"start"`
	End     int         `json:"end"`
	Line    int         `json:"line"`
	Column  int         `json:"column"`
	Name    string      `json:"name,omitempty"`
	Attrs   []tokenAttr `json:"attrs,omitempty"`
	Partner *int        `json:"partner,omitempty"`
	Parent  *int        `json:"parent,omitempty"`
}

func newTokensCommand(opts *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "List the scanned token sequence",
		Long: `List every object the scanner found, in input order, including the
trailing EOF sentinel. Nothing in the input is a syntax error: malformed
constructs appear as text or as unterminated variants.`,
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

			if asJSON {
				return writeTokensJSON(cmd, p)
			}

			styles := opts.styles(cmd)
			formatter := pretty.NewTableFormatter(styles, termWidth())
			rows := make([]pretty.TableRow, 0, p.Len())
			for _, o := range p.Objects() {
				rows = append(rows, pretty.ObjectToTableRow(o))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTable(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit tokens as JSON")

	return cmd
}

func writeTokensJSON(cmd *cobra.Command, p *markup.Parser) error {
	infos := make([]tokenInfo, 0, p.Len())
	for _, o := range p.Objects() {
		infos = append(infos, objectInfo(o))
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}

// objectInfo flattens an object into its JSON shape.
func objectInfo(o *markup.Object) tokenInfo {
	line, col := o.Column()
	info := tokenInfo{
		Index:  o.Index(),
		Kind:   o.Kind().String(),
		Start:  o.Start(),
		End:    o.End(),
		Line:   line,
		Column: col,
		Name:   o.Name(),
	}
	for _, attr := range o.Attributes() {
		info.Attrs = append(info.Attrs, tokenAttr{
			Name:  attr.Name(),
			Value: attr.Value(),
			Bare:  !attr.HasValue(),
		})
	}
	if t := o.Partner(); t != nil {
		idx := t.Index()
		info.Partner = &idx
	}
	if t := o.Parent(); t != nil {
		idx := t.Index()
		info.Parent = &idx
	}
	return info
}
