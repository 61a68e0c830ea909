package markup_test

import (
	"regexp"
	"testing"

	"github.com/creachadair/scrubby/pkg/markup"
)

const searchDoc = `<html><head><title>Example</title></head>
<body>
<p class="intro">Hello.</p>
<p>More <a href="/one">here</a> and <a href="/two" rel="next">there</a>.</p>
<!-- fin -->
</body></html>`

func collectNames(it *markup.Iter) []string {
	var names []string
	for o := it.Next(); o != nil; o = it.Next() {
		names = append(names, o.Name())
	}
	return names
}

func TestFind(t *testing.T) {
	t.Parallel()

	p := markup.NewHTML(searchDoc, nil)

	t.Run("by kind", func(t *testing.T) {
		t.Parallel()

		it := p.Find(markup.Criteria{Kinds: []markup.Kind{markup.KindComment}})
		o := it.Next()
		if o == nil || o.InnerSource() != " fin " {
			t.Fatalf("expected the comment, got %v", o)
		}
		if it.Next() != nil {
			t.Error("expected a single comment")
		}
	})

	t.Run("by name", func(t *testing.T) {
		t.Parallel()

		got := collectNames(p.Find(markup.Criteria{
			Kinds: []markup.Kind{markup.KindOpenTag},
			Name:  markup.Eq("p"),
		}))
		if len(got) != 2 {
			t.Errorf("expected 2 paragraphs, got %v", got)
		}
	})

	t.Run("name matching is explicit about case", func(t *testing.T) {
		t.Parallel()

		if o := p.First(markup.Criteria{Name: markup.Eq("TITLE")}); o != nil {
			t.Errorf("expected no exact match, got %v", o)
		}
		if o := p.First(markup.Criteria{Name: markup.EqFold("TITLE")}); o == nil {
			t.Error("expected a folded match")
		}
	})

	t.Run("by pattern", func(t *testing.T) {
		t.Parallel()

		got := collectNames(p.Find(markup.Criteria{
			Kinds: []markup.Kind{markup.KindOpenTag},
			Name:  markup.Pattern(regexp.MustCompile(`^h`)),
		}))
		if len(got) != 2 || got[0] != "html" || got[1] != "head" {
			t.Errorf("expected html and head, got %v", got)
		}
	})

	t.Run("one of several names", func(t *testing.T) {
		t.Parallel()

		got := collectNames(p.Find(markup.Criteria{
			Kinds: []markup.Kind{markup.KindOpenTag},
			Name:  markup.OneOf("title", "body"),
		}))
		if len(got) != 2 {
			t.Errorf("expected title and body, got %v", got)
		}
	})

	t.Run("by attribute presence", func(t *testing.T) {
		t.Parallel()

		got := collectNames(p.Find(markup.Criteria{
			Attrs: map[string]markup.Matcher{"rel": nil},
		}))
		if len(got) != 1 || got[0] != "a" {
			t.Errorf("expected one link with rel, got %v", got)
		}
	})

	t.Run("by attribute value", func(t *testing.T) {
		t.Parallel()

		o := p.First(markup.Criteria{
			Attrs: map[string]markup.Matcher{"href": markup.Eq("/two")},
		})
		if o == nil {
			t.Fatal("expected a match on href")
		}
		if attr, _ := o.Attr("rel"); attr == nil || attr.Value() != "next" {
			t.Errorf("matched the wrong link: %v", o)
		}
	})

	t.Run("by predicate", func(t *testing.T) {
		t.Parallel()

		o := p.First(markup.Criteria{
			Kinds:     []markup.Kind{markup.KindText},
			Predicate: func(o *markup.Object) bool { return o.Source() == "there" },
		})
		if o == nil {
			t.Fatal("expected a text match")
		}
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		if o := p.First(markup.Criteria{Name: markup.Eq("nope")}); o != nil {
			t.Errorf("expected no match, got %v", o)
		}
	})
}

func TestFindPositional(t *testing.T) {
	t.Parallel()

	p := markup.NewHTML(searchDoc, nil)
	body := p.First(markup.Criteria{Name: markup.Eq("body"), Kinds: []markup.Kind{markup.KindOpenTag}})
	if body == nil {
		t.Fatal("expected to find body")
	}

	t.Run("inside", func(t *testing.T) {
		t.Parallel()

		head := p.First(markup.Criteria{Name: markup.Eq("head")})
		got := collectNames(head.Find(markup.Criteria{
			Kinds: []markup.Kind{markup.KindOpenTag},
		}))
		if len(got) != 1 || got[0] != "title" {
			t.Errorf("expected only title inside head, got %v", got)
		}
	})

	t.Run("inside overlapping pair", func(t *testing.T) {
		t.Parallel()

		// The bound is the contents range, not span containment: <b>
		// straddles </a> but still sits between <a> and its partner.
		q := markup.New("<a>x<b>y</a>z</b>", nil)
		a, b := q.At(0), q.At(2)

		var got []markup.Kind
		it := a.Find(markup.Criteria{})
		for o := it.Next(); o != nil; o = it.Next() {
			got = append(got, o.Kind())
		}
		if len(got) != 3 || got[1] != markup.KindOpenTag {
			t.Errorf("expected x, b, y inside a, got %v", got)
		}

		if o := b.First(markup.Criteria{Kinds: []markup.Kind{markup.KindCloseTag}}); o == nil || o.Name() != "a" {
			t.Errorf("expected the close of a inside b, got %v", o)
		}

		if o := q.At(1).First(markup.Criteria{}); o != nil {
			t.Errorf("expected nothing inside an unpartnered object, got %v", o)
		}
	})

	t.Run("after", func(t *testing.T) {
		t.Parallel()

		got := collectNames(p.Find(markup.Criteria{
			Kinds: []markup.Kind{markup.KindOpenTag},
			Name:  markup.Eq("p"),
			After: body,
		}))
		if len(got) != 2 {
			t.Errorf("expected both paragraphs after body, got %v", got)
		}
	})

	t.Run("before", func(t *testing.T) {
		t.Parallel()

		got := collectNames(p.Find(markup.Criteria{
			Kinds:  []markup.Kind{markup.KindOpenTag},
			Before: body,
		}))
		if len(got) != 3 {
			t.Errorf("expected html, head, title before body, got %v", got)
		}
	})
}

func TestFindLast(t *testing.T) {
	t.Parallel()

	p := markup.NewHTML(searchDoc, nil)
	o := p.Last(markup.Criteria{Kinds: []markup.Kind{markup.KindOpenTag}, Name: markup.Eq("a")})
	if o == nil {
		t.Fatal("expected a match")
	}
	if attr, _ := o.Attr("href"); attr == nil || attr.Value() != "/two" {
		t.Errorf("expected the last link, got %v", o)
	}
}

func TestIterReset(t *testing.T) {
	t.Parallel()

	p := markup.NewHTML(searchDoc, nil)
	it := p.Find(markup.Criteria{Kinds: []markup.Kind{markup.KindOpenTag}, Name: markup.Eq("p")})

	first := it.Next()
	if first == nil {
		t.Fatal("expected a first match")
	}
	for it.Next() != nil {
	}
	if it.Next() != nil {
		t.Error("expected exhausted iterator to stay exhausted")
	}

	it.Reset()
	if got := it.Next(); got != first {
		t.Errorf("expected reset to restart, got %v", got)
	}
}

func TestFindEverything(t *testing.T) {
	t.Parallel()

	p := markup.New("a<b>c", nil)
	it := p.Find(markup.Criteria{})
	count := 0
	for it.Next() != nil {
		count++
	}
	if count != p.Len() {
		t.Errorf("expected %d matches including EOF, got %d", p.Len(), count)
	}
}
