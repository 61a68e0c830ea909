// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Object components
	TagName   lipgloss.Style
	KindLabel lipgloss.Style
	Location  lipgloss.Style
	AttrName  lipgloss.Style
	AttrValue lipgloss.Style

	// Snippet components
	SourceLine lipgloss.Style
	LineNumber lipgloss.Style
	Caret      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	// Tree styles
	TreeBranch lipgloss.Style

	// Misc
	Error lipgloss.Style
	Match lipgloss.Style
	Dim   lipgloss.Style
	Bold  lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		TagName:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		KindLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Location:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		AttrName:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		AttrValue: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),

		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		TreeBranch: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Match: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:  lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		TagName:        plain,
		KindLabel:      plain,
		Location:       plain,
		AttrName:       plain,
		AttrValue:      plain,
		SourceLine:     plain,
		LineNumber:     plain,
		Caret:          plain,
		TableHeader:    plain,
		TableSeparator: plain,
		TreeBranch:     plain,
		Error:          plain,
		Match:          plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if file, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
		}
		return false
	}
}
