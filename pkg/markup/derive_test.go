package markup_test

import (
	"testing"

	"github.com/creachadair/scrubby/pkg/markup"
)

// parentIndex returns the parent's object index, or -1 at top level.
func parentIndex(o *markup.Object) int {
	if t := o.Parent(); t != nil {
		return t.Index()
	}
	return -1
}

// checkParents verifies the parent link of every object against expected,
// which maps object index to parent index (-1 for top level).
func checkParents(t *testing.T, p *markup.Parser, expected []int) {
	t.Helper()

	if p.Len() != len(expected) {
		t.Fatalf("expected %d objects, got %d", len(expected), p.Len())
	}
	for i, want := range expected {
		if got := parentIndex(p.At(i)); got != want {
			t.Errorf("object %d (%v): expected parent %d, got %d", i, p.At(i), want, got)
		}
	}
}

func TestParents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{
			name:     "plain nesting",
			input:    "<A> w <B> x </B> y </A>",
			expected: []int{-1, 0, 0, 2, 0, 0, -1, -1},
		},
		{
			name:  "unpartnered tags nest positionally",
			input: "<A> w <B> x <C> y <D></B></C> z </A>",
			// B and C overlap, so C hangs off A; y and D sit inside
			// the innermost enclosing region, which is C.
			expected: []int{-1, 0, 0, 2, 0, 4, 4, 0, 0, 0, -1, -1},
		},
		{
			name:  "overlapping pairs are both top level",
			input: "<a>x<b>y</a>z</b>",
			// Neither a nor b contains the other, but text between the
			// overlap still belongs to the nearest region.
			expected: []int{-1, 0, -1, 2, -1, 2, -1, -1},
		},
		{
			name:     "comment and directive nest like text",
			input:    "<a><!-- c --><?pi ?></a>",
			expected: []int{-1, 0, 0, -1, -1},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			p := markup.New(testCase.input, nil)
			checkParents(t, p, testCase.expected)
		})
	}
}

func TestParentsHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{
			name:     "implicitly closed head still contains its children",
			input:    "<html><head><title>t</title><body>x",
			expected: []int{-1, 0, 1, 2, 1, 0, 5, -1},
		},
		{
			name:     "body closed by html close",
			input:    "<html><body>x</html>",
			expected: []int{-1, 0, 1, -1, -1},
		},
		{
			name:     "list item chain",
			input:    "<ul><li>a<li>b</ul>",
			expected: []int{-1, 0, 1, 0, 3, -1, -1},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			p := markup.NewHTML(testCase.input, nil)
			checkParents(t, p, testCase.expected)
		})
	}
}

func TestContents(t *testing.T) {
	t.Parallel()

	p := markup.New("<A> w <B> x </B> y </A>", nil)
	a, b := p.At(0), p.At(2)

	if got := a.ContentsSource(); got != " w <B> x </B> y " {
		t.Errorf("unexpected contents source for A: %q", got)
	}
	if got := b.ContentsSource(); got != " x " {
		t.Errorf("unexpected contents source for B: %q", got)
	}

	contents := a.Contents()
	if len(contents) != 5 {
		t.Fatalf("expected 5 objects inside A, got %d", len(contents))
	}
	for i, o := range contents {
		if o.Index() != i+1 {
			t.Errorf("contents[%d]: expected object %d, got %d", i, i+1, o.Index())
		}
	}

	// Contents is symmetric over a mutual pair.
	if got := p.At(4).ContentsSource(); got != " x " {
		t.Errorf("unexpected contents source for /B: %q", got)
	}

	if got := p.At(1).Contents(); got != nil {
		t.Errorf("expected no contents for text, got %v", got)
	}
}

func TestContentsOneWay(t *testing.T) {
	t.Parallel()

	p := markup.NewHTML("<html><head><title>t</title><body>x", nil)
	head := p.At(1)
	if got := head.ContentsSource(); got != "<title>t</title>" {
		t.Errorf("unexpected contents source for head: %q", got)
	}
	contents := head.Contents()
	if len(contents) != 3 {
		t.Fatalf("expected 3 objects inside head, got %d", len(contents))
	}
}

func TestChildrenAndSiblings(t *testing.T) {
	t.Parallel()

	p := markup.New("<A> w <B> x </B> y </A>", nil)
	a, b, x := p.At(0), p.At(2), p.At(3)

	kids := a.Children()
	if len(kids) != 4 {
		t.Fatalf("expected 4 children of A, got %d", len(kids))
	}
	for i, wantIdx := range []int{1, 2, 4, 5} {
		if kids[i].Index() != wantIdx {
			t.Errorf("child %d: expected object %d, got %d", i, wantIdx, kids[i].Index())
		}
	}

	if got := a.FirstChild(); got == nil || got.Index() != 1 {
		t.Errorf("expected first child of A at 1, got %v", got)
	}
	if got := b.FirstChild(); got != x {
		t.Errorf("expected first child of B to be its text, got %v", got)
	}
	if got := x.FirstChild(); got != nil {
		t.Errorf("expected no children of text, got %v", got)
	}

	sibs := b.Siblings()
	if len(sibs) != 4 {
		t.Fatalf("expected 4 siblings of B, got %d", len(sibs))
	}
	if b.FirstSib().Index() != 1 || b.LastSib().Index() != 5 {
		t.Errorf("unexpected sibling bounds: first %v last %v", b.FirstSib(), b.LastSib())
	}
	if got := b.PrevSib(); got == nil || got.Index() != 1 {
		t.Errorf("expected previous sibling at 1, got %v", got)
	}
	if got := b.NextSib(); got == nil || got.Index() != 4 {
		t.Errorf("expected next sibling at 4, got %v", got)
	}
	if got := b.FirstSib().PrevSib(); got != nil {
		t.Errorf("expected no sibling before the first, got %v", got)
	}

	// A is at top level: no siblings, not even itself.
	if got := a.Siblings(); len(got) != 0 {
		t.Errorf("expected no siblings at top level, got %v", got)
	}
	if a.FirstSib() != nil || a.NextSib() != nil || a.LastSib() != nil {
		t.Error("expected nil sibling accessors at top level")
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	p := markup.NewHTML("<html><head><title>t</title><body>x", nil)
	title := p.At(2)
	text := p.At(3)

	path := text.Path()
	names := make([]string, len(path))
	for i, o := range path {
		names[i] = o.Name()
	}
	if len(names) != 4 || names[0] != "html" || names[1] != "head" || names[2] != "title" {
		t.Errorf("unexpected path for title text: %v", names)
	}
	if path[len(path)-1] != text {
		t.Errorf("expected path to end in the text object, got %v", path[len(path)-1])
	}

	// A top-level object's path is just itself.
	if got := p.At(0).Path(); len(got) != 1 || got[0] != p.At(0) {
		t.Errorf("expected [html] as the top-level path, got %v", got)
	}
	if got := title.Path(); len(got) != 3 || got[2] != title {
		t.Errorf("expected path of depth 3 ending in title, got %v", got)
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	p := markup.New("<A> w <B> x </B> y </A>", nil)
	a, b := p.At(0), p.At(2)

	if !a.Contains(b) || !a.Contains(p.At(3)) || !b.Contains(p.At(3)) {
		t.Error("expected A and B to contain their interiors")
	}
	if b.Contains(p.At(5)) {
		t.Error("expected B not to contain text outside it")
	}
	if a.Contains(a) || a.Contains(a.Partner()) {
		t.Error("expected no containment of self or partner")
	}

	// Overlapping pairs do not contain each other.
	q := markup.New("<a>x<b>y</a>z</b>", nil)
	if q.At(0).Contains(q.At(2)) || q.At(2).Contains(q.At(0)) {
		t.Error("expected overlapping pairs not to contain each other")
	}
}
