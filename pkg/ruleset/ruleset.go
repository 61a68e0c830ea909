// Package ruleset defines the serializable description of a markup
// vocabulary: tag partnering rules and entity definitions that can be loaded
// from a YAML file and compiled into the form the parser consumes.
package ruleset

import (
	"fmt"
	"strings"

	"github.com/creachadair/scrubby/pkg/markup"
)

// Preset names accepted in a ruleset file.
const (
	PresetNone = "none"
	PresetHTML = "html"
)

// Ruleset describes a markup vocabulary. Fields extend or override the named
// preset; an empty preset starts from nothing.
type Ruleset struct {
	// Preset names the base vocabulary: "html" or "none". Empty means
	// "none".
	Preset string `yaml:"preset,omitempty"`

	// FoldNames enables case-insensitive tag name matching. It defaults
	// to true when the preset is "html".
	FoldNames *bool `yaml:"fold_names,omitempty"`

	// Singular lists tags that never take a partner.
	Singular []string `yaml:"singular,omitempty"`

	// ClosedByOpen maps a pending tag name to the open tag names that
	// implicitly close it.
	ClosedByOpen map[string][]string `yaml:"closed_by_open,omitempty"`

	// ClosedByClose maps a pending tag name to the close tag names that
	// implicitly close it.
	ClosedByClose map[string][]string `yaml:"closed_by_close,omitempty"`

	// ClosedByEOF lists tags implicitly closed by the end of input.
	ClosedByEOF []string `yaml:"closed_by_eof,omitempty"`

	// Entities maps additional character reference names to their
	// replacement text, on top of the preset's entity set.
	Entities map[string]string `yaml:"entities,omitempty"`
}

// Validate reports whether the ruleset is internally consistent.
func (r *Ruleset) Validate() error {
	switch r.Preset {
	case "", PresetNone, PresetHTML:
	default:
		return fmt.Errorf("unknown preset %q", r.Preset)
	}
	// The html preset's rule tables are keyed on folded names; exact
	// matching would silently miss every entry.
	if r.Preset == PresetHTML && r.FoldNames != nil && !*r.FoldNames {
		return fmt.Errorf("fold_names: false cannot be combined with the html preset")
	}
	for _, name := range r.Singular {
		if name == "" {
			return fmt.Errorf("empty name in singular list")
		}
	}
	for table, m := range map[string]map[string][]string{
		"closed_by_open":  r.ClosedByOpen,
		"closed_by_close": r.ClosedByClose,
	} {
		for name, closers := range m {
			if name == "" {
				return fmt.Errorf("empty name in %s", table)
			}
			if len(closers) == 0 {
				return fmt.Errorf("%s: %q has no closers", table, name)
			}
		}
	}
	return nil
}

// folded reports whether tag names match case-insensitively.
func (r *Ruleset) folded() bool {
	if r.FoldNames != nil {
		return *r.FoldNames
	}
	return r.Preset == PresetHTML
}

// Rules compiles the ruleset into the parser's rule tables.
func (r *Ruleset) Rules() (*markup.Rules, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	rules := &markup.Rules{
		Singular:      make(map[string]bool),
		ClosedByOpen:  make(map[string][]string),
		ClosedByClose: make(map[string][]string),
		ClosedByEOF:   make(map[string]bool),
	}
	if r.Preset == PresetHTML {
		rules = markup.HTMLRules()
	}

	canon := func(name string) string { return name }
	if r.folded() {
		rules.NameEqual = markup.EqualFold
		rules.Canon = strings.ToLower
		canon = strings.ToLower
	} else {
		rules.NameEqual = nil
		rules.Canon = nil
	}

	for _, name := range r.Singular {
		rules.Singular[canon(name)] = true
	}
	for name, closers := range r.ClosedByOpen {
		rules.ClosedByOpen[canon(name)] = canonAll(closers, canon)
	}
	for name, closers := range r.ClosedByClose {
		rules.ClosedByClose[canon(name)] = canonAll(closers, canon)
	}
	for _, name := range r.ClosedByEOF {
		rules.ClosedByEOF[canon(name)] = true
	}

	return rules, nil
}

// Decoder compiles the ruleset's entity definitions into a decoder. Custom
// entities take precedence over the preset's set.
func (r *Ruleset) Decoder() markup.EntityDecoder {
	base := markup.DefaultEntities
	if r.Preset == PresetHTML {
		base = markup.HTMLEntities
	}
	if len(r.Entities) == 0 {
		return base
	}
	return markup.MapEntities(r.Entities, base)
}

// Options compiles the ruleset into parser options.
func (r *Ruleset) Options() (*markup.Options, error) {
	rules, err := r.Rules()
	if err != nil {
		return nil, err
	}
	return &markup.Options{
		Rules:    rules,
		Entities: r.Decoder(),
	}, nil
}

func canonAll(names []string, canon func(string) string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = canon(n)
	}
	return out
}
