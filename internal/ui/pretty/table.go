package pretty

import (
	"fmt"
	"strings"

	"github.com/creachadair/scrubby/pkg/markup"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 5 // IDX, KIND, LOC, NAME, SOURCE
	minIndexWidth    = 3
	minKindWidth     = 5
	minLocWidth      = 7
	minNameWidth     = 6
	minSourceWidth   = 20
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableRow represents a single object row in the token table.
type TableRow struct {
	Index    int
	Kind     markup.Kind
	Location string
	Name     string
	Source   string
}

// TableFormatter formats a parsed object sequence as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// ObjectToTableRow converts a markup object to a table row. The source
// column shows the literal input with newlines flattened.
func ObjectToTableRow(o *markup.Object) TableRow {
	line, col := o.Column()
	return TableRow{
		Index:    o.Index(),
		Kind:     o.Kind(),
		Location: fmt.Sprintf("%d:%d", line, col),
		Name:     o.Name(),
		Source:   flatten(o.Source()),
	}
}

// FormatTable formats the given rows as a table with a header and footer.
func (t *TableFormatter) FormatTable(rows []TableRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	return builder.String()
}

type columnWidths struct {
	index  int
	kind   int
	loc    int
	name   int
	source int
}

// calculateColumnWidths determines column widths based on content,
// constrained to the terminal width by shrinking the source column.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		index:  minIndexWidth,
		kind:   minKindWidth,
		loc:    minLocWidth,
		name:   minNameWidth,
		source: minSourceWidth,
	}

	for _, row := range rows {
		if w := len(fmt.Sprintf("%d", row.Index)); w > widths.index {
			widths.index = w
		}
		if w := len(row.Kind.String()); w > widths.kind {
			widths.kind = w
		}
		if w := len(row.Location); w > widths.loc {
			widths.loc = w
		}
		if w := len(row.Name); w > widths.name {
			widths.name = w
		}
		if w := len(row.Source); w > widths.source {
			widths.source = w
		}
	}

	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.source = max(minSourceWidth, widths.source-excess)
	}

	return widths
}

func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.index + widths.kind + widths.loc + widths.name + widths.source +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %*s  %-*s  %-*s  %-*s  %-*s",
		widths.index, "IDX",
		widths.kind, "KIND",
		widths.loc, "LOC",
		widths.name, "NAME",
		widths.source, "SOURCE",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	sep := strings.Repeat(heavySeparator, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	return fmt.Sprintf(" %s  %s  %s  %s  %s",
		t.styles.Dim.Render(fmt.Sprintf("%*d", widths.index, row.Index)),
		t.styles.KindLabel.Render(fmt.Sprintf("%-*s", widths.kind, row.Kind)),
		t.styles.Location.Render(fmt.Sprintf("%-*s", widths.loc, row.Location)),
		t.styles.TagName.Render(fmt.Sprintf("%-*s", widths.name, row.Name)),
		truncateString(row.Source, widths.source),
	)
}

// flatten collapses newlines and tabs so a row stays on one line.
func flatten(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, s)
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
