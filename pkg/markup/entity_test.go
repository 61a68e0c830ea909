package markup_test

import (
	"testing"

	"github.com/creachadair/scrubby/pkg/markup"
)

func TestTextValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no references",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "default entities",
			input:    "a &lt;tag&gt; &amp; more",
			expected: "a <tag> & more",
		},
		{
			name:     "adjacent references",
			input:    "&amp;&lt;",
			expected: "&<",
		},
		{
			name:     "unterminated reference passes through",
			input:    "fish &amp chips",
			expected: "fish &amp chips",
		},
		{
			name:     "unknown reference passes through",
			input:    "a &bogus; b",
			expected: "a &bogus; b",
		},
		{
			name:     "decimal numeric reference",
			input:    "cap &#65; tab &#9;.",
			expected: "cap A tab \t.",
		},
		{
			name:     "non-decimal numeric passes through",
			input:    "hex &#x41; stays",
			expected: "hex &#x41; stays",
		},
		{
			name:     "bare ampersand",
			input:    "this & that &",
			expected: "this & that &",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			p := markup.New(testCase.input, nil)
			if got := p.At(0).Value(); got != testCase.expected {
				t.Errorf("expected %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestEntities(t *testing.T) {
	t.Parallel()

	p := markup.New("x &amp; y &broken &#10;", nil)
	ents := p.At(0).Entities()
	if len(ents) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(ents))
	}

	tests := []struct {
		source     string
		terminated bool
		value      string
	}{
		{source: "&amp;", terminated: true, value: "&"},
		{source: "&broken", terminated: false, value: "&broken"},
		{source: "&#10;", terminated: true, value: "\n"},
	}
	for i, want := range tests {
		e := ents[i]
		if e.Source() != want.source {
			t.Errorf("entity %d: expected source %q, got %q", i, want.source, e.Source())
		}
		if e.Terminated() != want.terminated {
			t.Errorf("entity %d: expected terminated %v", i, want.terminated)
		}
		if e.Value() != want.value {
			t.Errorf("entity %d: expected value %q, got %q", i, want.value, e.Value())
		}
		if e.Owner() != p.At(0) {
			t.Errorf("entity %d: wrong owner", i)
		}
		if len(e.Siblings()) != 3 {
			t.Errorf("entity %d: expected 3 siblings", i)
		}
	}

	sp := ents[0].Span()
	if got := p.Input()[sp.Start:sp.End]; got != "&amp;" {
		t.Errorf("expected span to cover the reference, got %q", got)
	}

	if got := p.At(0).Entities(); len(got) != 3 {
		t.Errorf("expected memoized scan to repeat, got %v", got)
	}
}

func TestEntitiesNonText(t *testing.T) {
	t.Parallel()

	p := markup.New("<!-- &amp; -->", nil)
	if got := p.At(0).Entities(); got != nil {
		t.Errorf("expected no entities outside text, got %v", got)
	}
}

func TestHTMLEntities(t *testing.T) {
	t.Parallel()

	p := markup.NewHTML("caf&eacute;&nbsp;&hellip;", nil)
	if got := p.At(0).Value(); got != "café …" {
		t.Errorf("expected full entity set, got %q", got)
	}
}

func TestMapEntities(t *testing.T) {
	t.Parallel()

	decode := markup.MapEntities(map[string]string{"star": "*"}, markup.DefaultEntities)
	p := markup.New("&star; &amp; &moon;", &markup.Options{Entities: decode})
	if got := p.At(0).Value(); got != "* & &moon;" {
		t.Errorf("expected map with fallback, got %q", got)
	}
}
