package pretty

import (
	"fmt"
	"strings"

	"github.com/creachadair/scrubby/pkg/markup"
)

// SnippetFormatter renders source excerpts with caret markers under a span.
type SnippetFormatter struct {
	styles *Styles
}

// NewSnippetFormatter creates a snippet formatter.
func NewSnippetFormatter(styles *Styles) *SnippetFormatter {
	return &SnippetFormatter{styles: styles}
}

// FormatSpan renders the source line containing the start of span, with a
// caret line marking the span's extent. A span continuing past the end of
// the line is marked to the end of the line.
//
//	  3 | <p class="intro">Hello.
//	    |    ^^^^^^^^^^^^^
func (f *SnippetFormatter) FormatSpan(p *markup.Parser, span markup.Span) string {
	line, _ := p.LinePos(span.Start)
	if line == 0 {
		return ""
	}
	text, ok := p.Line(line)
	if !ok {
		return ""
	}

	_, startCol := p.Column(span.Start)
	endCol := expandedWidth(text, p.TabWidth())
	if endLine, _ := p.LinePos(span.End); endLine == line {
		_, endCol = p.Column(span.End)
	}
	if endCol <= startCol {
		endCol = startCol + 1
	}

	gutter := fmt.Sprintf("%4d", line)
	expanded := untabify(text, p.TabWidth())

	var builder strings.Builder
	builder.WriteString(f.styles.LineNumber.Render(gutter + " | "))
	builder.WriteString(f.styles.SourceLine.Render(expanded))
	builder.WriteString("\n")
	builder.WriteString(f.styles.LineNumber.Render(strings.Repeat(" ", len(gutter)) + " | "))
	builder.WriteString(strings.Repeat(" ", startCol))
	builder.WriteString(f.styles.Caret.Render(strings.Repeat("^", endCol-startCol)))
	return builder.String()
}

// untabify expands tabs to spaces at the given tab width.
func untabify(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var builder strings.Builder
	col := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			next := (col/tabWidth + 1) * tabWidth
			builder.WriteString(strings.Repeat(" ", next-col))
			col = next
			continue
		}
		builder.WriteByte(s[i])
		col++
	}
	return builder.String()
}

// expandedWidth returns the display width of s with tabs expanded.
func expandedWidth(s string, tabWidth int) int {
	col := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			col = (col/tabWidth + 1) * tabWidth
		} else {
			col++
		}
	}
	return col
}
