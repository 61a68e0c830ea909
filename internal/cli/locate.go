package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/creachadair/scrubby/internal/ui/pretty"
	"github.com/creachadair/scrubby/pkg/markup"
)

func newLocateCommand(opts *globalOptions) *cobra.Command {
	var lineCol string

	cmd := &cobra.Command{
		Use:   "locate OFFSET [file]",
		Short: "Identify the object at a position",
		Long: `Identify the object covering a byte offset (or a LINE:COL position with
--at), along with the attribute under the position when it falls inside a
tag, and the chain of enclosing tags.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileArgs := args[1:]
			offsetArg := args[0]
			if lineCol != "" {
				// With --at, the only positional argument is the file.
				fileArgs = args[:1]
				offsetArg = ""
			}

			name, content, err := loadInput(cmd, fileArgs)
			if err != nil {
				return err
			}
			p, err := opts.parse(cmd, name, content)
			if err != nil {
				return err
			}

			pos, err := resolvePosition(p, offsetArg, lineCol)
			if err != nil {
				return err
			}

			o, attr := p.Locate(pos)
			if o == nil {
				return fmt.Errorf("offset %d is outside the input", pos)
			}

			styles := opts.styles(cmd)
			out := cmd.OutOrStdout()

			line, col := o.Column()
			fmt.Fprintf(out, "%s:%d:%d: %s", name, line, col,
				styles.KindLabel.Render(o.Kind().String()))
			if o.Name() != "" {
				fmt.Fprintf(out, " %s", styles.TagName.Render(o.Name()))
			}
			fmt.Fprintln(out)

			if attr != nil {
				fmt.Fprintf(out, "attribute %s", styles.AttrName.Render(attr.Name()))
				if attr.HasValue() {
					fmt.Fprintf(out, " = %s", styles.AttrValue.Render(strconv.Quote(attr.Value())))
				}
				fmt.Fprintln(out)
			}

			// The path ends in the object itself; the chain of interest
			// here is its enclosing tags.
			if path := o.Path(); len(path) > 1 {
				names := make([]string, len(path)-1)
				for i, t := range path[:len(path)-1] {
					names[i] = t.Name()
				}
				fmt.Fprintf(out, "inside %s\n", styles.Dim.Render(strings.Join(names, " > ")))
			}

			fmt.Fprintln(out, pretty.NewSnippetFormatter(styles).FormatSpan(p, o.Span()))
			return nil
		},
	}

	cmd.Flags().StringVar(&lineCol, "at", "", "position as LINE:COL instead of a byte offset")

	return cmd
}

// resolvePosition converts the offset argument or the --at flag into a byte
// offset in the parsed input.
func resolvePosition(p *markup.Parser, offsetArg, lineCol string) (int, error) {
	if lineCol != "" {
		lineStr, colStr, ok := strings.Cut(lineCol, ":")
		if !ok {
			return 0, fmt.Errorf("invalid --at %q, want LINE:COL", lineCol)
		}
		line, err := strconv.Atoi(lineStr)
		if err != nil {
			return 0, fmt.Errorf("invalid --at line: %w", err)
		}
		col, err := strconv.Atoi(colStr)
		if err != nil {
			return 0, fmt.Errorf("invalid --at column: %w", err)
		}
		pos, ok := p.ColumnOffset(line, col)
		if !ok {
			return 0, fmt.Errorf("position %s does not exist", lineCol)
		}
		return pos, nil
	}

	pos, err := strconv.Atoi(offsetArg)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: %w", offsetArg, err)
	}
	return pos, nil
}
