package pretty

import (
	"fmt"
	"strings"

	"github.com/creachadair/scrubby/pkg/markup"
)

// TreeFormatter renders the reconstructed document structure as an indented
// outline.
type TreeFormatter struct {
	styles *Styles

	// IncludeText lists text objects in the outline alongside tags.
	IncludeText bool
}

// NewTreeFormatter creates a tree formatter.
func NewTreeFormatter(styles *Styles) *TreeFormatter {
	return &TreeFormatter{styles: styles}
}

// FormatTree renders the outline of the whole parse: every top-level object
// and, recursively, the children of each partnered tag.
func (f *TreeFormatter) FormatTree(p *markup.Parser) string {
	var builder strings.Builder
	for _, o := range p.Objects() {
		if o.Parent() != nil || !f.visible(o) {
			continue
		}
		f.formatNode(&builder, o, 0)
	}
	return builder.String()
}

// visible reports whether an object gets its own outline entry. Close tags
// and the EOF sentinel are implied by their openers.
func (f *TreeFormatter) visible(o *markup.Object) bool {
	switch o.Kind() {
	case markup.KindOpenTag, markup.KindSelfTag:
		return true
	case markup.KindDirective, markup.KindUntermDirective:
		return true
	case markup.KindText:
		return f.IncludeText
	default:
		return false
	}
}

func (f *TreeFormatter) formatNode(builder *strings.Builder, o *markup.Object, depth int) {
	indent := strings.Repeat("  ", depth)
	builder.WriteString(f.styles.TreeBranch.Render(indent))
	builder.WriteString(f.describe(o))
	builder.WriteString("\n")

	for _, child := range o.Children() {
		if f.visible(child) {
			f.formatNode(builder, child, depth+1)
		}
	}
}

// describe renders one outline entry: the tag name with its attributes, or a
// shortened text excerpt, plus the source location.
func (f *TreeFormatter) describe(o *markup.Object) string {
	line, col := o.Column()
	loc := f.styles.Location.Render(fmt.Sprintf("  %d:%d", line, col))

	if o.Kind() == markup.KindText {
		return f.styles.Dim.Render(fmt.Sprintf("%q", truncateString(flatten(o.Source()), 40))) + loc
	}

	var builder strings.Builder
	builder.WriteString(f.styles.TagName.Render(o.Name()))
	for _, attr := range o.Attributes() {
		builder.WriteString(" ")
		builder.WriteString(f.styles.AttrName.Render(attr.Name()))
		if attr.HasValue() {
			builder.WriteString(f.styles.Dim.Render("="))
			builder.WriteString(f.styles.AttrValue.Render(fmt.Sprintf("%q", attr.Value())))
		}
	}
	if o.Kind() == markup.KindDirective || o.Kind() == markup.KindUntermDirective {
		builder.WriteString(f.styles.KindLabel.Render(" (directive)"))
	}
	if o.Kind() == markup.KindOpenTag && o.Partner() == nil &&
		!o.Parser().Rules().IsSingular(o.Name()) {
		builder.WriteString(f.styles.Error.Render(" (unclosed)"))
	}
	builder.WriteString(loc)
	return builder.String()
}
