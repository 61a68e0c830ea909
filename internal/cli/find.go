package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/creachadair/scrubby/internal/logging"
	"github.com/creachadair/scrubby/internal/ui/pretty"
	"github.com/creachadair/scrubby/pkg/markup"
)

func newFindCommand(opts *globalOptions) *cobra.Command {
	var (
		kinds     []string
		name      string
		nameRegex string
		fold      bool
		attrs     []string
		inside    string
		countOnly bool
	)

	cmd := &cobra.Command{
		Use:   "find [file]",
		Short: "Search the parse for matching objects",
		Long: `Search the scanned objects by kind, tag name, and attributes, and print
each match with its location and a source excerpt. The command exits
nonzero when nothing matches.`,
		Example: `  scrub find --name a --attr rel=next page.html
  scrub find --kind comment,directive page.html
  scrub find --name-re '^h[1-6]$' --fold page.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := buildCriteria(kinds, name, nameRegex, fold, attrs)
			if err != nil {
				return err
			}

			inputName, content, err := loadInput(cmd, args)
			if err != nil {
				return err
			}
			p, err := opts.parse(cmd, inputName, content)
			if err != nil {
				return err
			}

			if inside != "" {
				scope := p.First(markup.Criteria{
					Kinds: []markup.Kind{markup.KindOpenTag},
					Name:  markup.EqFold(inside),
				})
				if scope == nil {
					return fmt.Errorf("no open tag named %q to search inside", inside)
				}
				criteria.Inside = scope
			}

			styles := opts.styles(cmd)
			snippets := pretty.NewSnippetFormatter(styles)
			out := cmd.OutOrStdout()

			matches := 0
			it := p.Find(criteria)
			for o := it.Next(); o != nil; o = it.Next() {
				matches++
				if countOnly {
					continue
				}
				line, col := o.Column()
				head := fmt.Sprintf("%s:%d:%d: %s",
					inputName, line, col, styles.KindLabel.Render(o.Kind().String()))
				if o.Name() != "" {
					head += " " + styles.TagName.Render(o.Name())
				}
				fmt.Fprintln(out, head)
				fmt.Fprintln(out, snippets.FormatSpan(p, o.Span()))
			}

			logging.FromContext(cmd.Context()).Debug("search finished", logging.FieldMatches, matches)
			if countOnly {
				fmt.Fprintln(out, matches)
			}
			if matches == 0 {
				return ErrNoMatches
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&kinds, "kind", nil,
		"restrict to the given kinds (text, comment, directive, data, open, self, close)")
	cmd.Flags().StringVar(&name, "name", "", "match the tag or directive name")
	cmd.Flags().StringVar(&nameRegex, "name-re", "", "match the name against a regexp")
	cmd.Flags().BoolVar(&fold, "fold", false, "ignore case when matching --name")
	cmd.Flags().StringArrayVar(&attrs, "attr", nil,
		"require an attribute, as NAME or NAME=VALUE (repeatable)")
	cmd.Flags().StringVar(&inside, "inside", "",
		"search only the contents of the first open tag with this name")
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of matches")

	return cmd
}

// buildCriteria translates the find flags into search criteria.
func buildCriteria(kinds []string, name, nameRegex string, fold bool, attrs []string) (markup.Criteria, error) {
	var c markup.Criteria

	for _, k := range kinds {
		kind, err := kindFromName(k)
		if err != nil {
			return c, err
		}
		c.Kinds = append(c.Kinds, kind)
	}

	switch {
	case name != "" && nameRegex != "":
		return c, fmt.Errorf("--name and --name-re are mutually exclusive")
	case name != "" && fold:
		c.Name = markup.EqFold(name)
	case name != "":
		c.Name = markup.Eq(name)
	case nameRegex != "":
		re, err := regexp.Compile(nameRegex)
		if err != nil {
			return c, fmt.Errorf("invalid --name-re: %w", err)
		}
		c.Name = markup.Pattern(re)
	}

	for _, spec := range attrs {
		if c.Attrs == nil {
			c.Attrs = make(map[string]markup.Matcher)
		}
		key, value, hasValue := strings.Cut(spec, "=")
		if key == "" {
			return c, fmt.Errorf("invalid --attr %q", spec)
		}
		if hasValue {
			c.Attrs[key] = markup.Eq(value)
		} else {
			c.Attrs[key] = nil
		}
	}

	return c, nil
}

// kindFromName resolves a kind flag value by its display name.
func kindFromName(name string) (markup.Kind, error) {
	switch strings.ToLower(name) {
	case "text":
		return markup.KindText, nil
	case "comment":
		return markup.KindComment, nil
	case "unterminated-comment":
		return markup.KindUntermComment, nil
	case "directive":
		return markup.KindDirective, nil
	case "unterminated-directive":
		return markup.KindUntermDirective, nil
	case "data":
		return markup.KindData, nil
	case "unterminated-data":
		return markup.KindUntermData, nil
	case "open":
		return markup.KindOpenTag, nil
	case "self":
		return markup.KindSelfTag, nil
	case "close":
		return markup.KindCloseTag, nil
	case "eof":
		return markup.KindEOF, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", name)
	}
}
