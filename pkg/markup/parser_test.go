package markup_test

import (
	"testing"

	"github.com/creachadair/scrubby/pkg/markup"
)

func TestFeed(t *testing.T) {
	t.Parallel()

	t.Run("split tag", func(t *testing.T) {
		t.Parallel()

		p := markup.New("<b>bo", nil)
		checkObjects(t, p, []tok{
			{kind: markup.KindOpenTag, src: "<b>", name: "b"},
			{kind: markup.KindText, src: "bo"},
		})
		if p.At(0).Partner() != nil {
			t.Error("expected b unpartnered before feed")
		}

		p.Feed("ld</b>")
		if p.Input() != "<b>bold</b>" {
			t.Errorf("unexpected input: %q", p.Input())
		}
		checkObjects(t, p, []tok{
			{kind: markup.KindOpenTag, src: "<b>", name: "b"},
			{kind: markup.KindText, src: "bold"},
			{kind: markup.KindCloseTag, src: "</b>", name: "b"},
		})
		if p.At(0).Partner() != p.At(2) || p.At(2).Partner() != p.At(0) {
			t.Error("expected b and /b partnered after feed")
		}
	})

	t.Run("completed comment", func(t *testing.T) {
		t.Parallel()

		p := markup.New("x<!--a", nil)
		checkObjects(t, p, []tok{
			{kind: markup.KindText, src: "x"},
			{kind: markup.KindUntermComment, src: "<!--a", inner: "a"},
		})

		p.Feed("b--> y")
		checkObjects(t, p, []tok{
			{kind: markup.KindText, src: "x"},
			{kind: markup.KindComment, src: "<!--ab-->", inner: "ab"},
			{kind: markup.KindText, src: " y"},
		})
	})

	t.Run("feed into empty", func(t *testing.T) {
		t.Parallel()

		p := markup.New("", nil)
		if p.Len() != 1 {
			t.Fatalf("expected bare EOF, got %d objects", p.Len())
		}
		p.Feed("<i>x</i>")
		checkObjects(t, p, []tok{
			{kind: markup.KindOpenTag, src: "<i>", name: "i"},
			{kind: markup.KindText, src: "x"},
			{kind: markup.KindCloseTag, src: "</i>", name: "i"},
		})
	})

	t.Run("stable tags keep their identity", func(t *testing.T) {
		t.Parallel()

		p := markup.New("<a>done</a> trailing", nil)
		open := p.At(0)
		p.Feed(" more")
		if p.At(0) != open {
			t.Error("expected the completed tag to survive the feed")
		}
		if got := p.At(3).Source(); got != " trailing more" {
			t.Errorf("expected trailing text rescanned, got %q", got)
		}
	})
}

func TestLocate(t *testing.T) {
	t.Parallel()

	const input = `<a href="u">hi</a>`
	p := markup.New(input, nil)

	tests := []struct {
		name  string
		pos   int
		index int    // expected object index, -1 for none
		attr  string // expected attribute name, "" for none
	}{
		{name: "tag start", pos: 0, index: 0},
		{name: "inside attribute name", pos: 4, index: 0, attr: "href"},
		{name: "inside attribute value", pos: 10, index: 0, attr: "href"},
		{name: "inside text", pos: 12, index: 1},
		{name: "inside close tag", pos: 15, index: 2},
		{name: "end of input", pos: len(input), index: 3},
		{name: "past end", pos: len(input) + 1, index: -1},
		{name: "negative", pos: -1, index: -1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			o, attr := p.Locate(testCase.pos)
			if testCase.index < 0 {
				if o != nil {
					t.Fatalf("expected no object, got %v", o)
				}
				return
			}
			if o == nil {
				t.Fatalf("expected object %d, got none", testCase.index)
			}
			if o.Index() != testCase.index {
				t.Errorf("expected object %d, got %d", testCase.index, o.Index())
			}
			if testCase.attr == "" {
				if attr != nil {
					t.Errorf("expected no attribute, got %q", attr.Name())
				}
			} else if attr == nil || attr.Name() != testCase.attr {
				t.Errorf("expected attribute %q, got %v", testCase.attr, attr)
			}
		})
	}
}

func TestSkipWhiteText(t *testing.T) {
	t.Parallel()

	p := markup.New("<a>\n  <b>x </b>\t</a>", &markup.Options{SkipWhiteText: true})
	checkObjects(t, p, []tok{
		{kind: markup.KindOpenTag, src: "<a>", name: "a"},
		{kind: markup.KindOpenTag, src: "<b>", name: "b"},
		{kind: markup.KindText, src: "x "},
		{kind: markup.KindCloseTag, src: "</b>", name: "b"},
		{kind: markup.KindCloseTag, src: "</a>", name: "a"},
	})
}

func TestObjectOrder(t *testing.T) {
	t.Parallel()

	p := markup.New("a<b>c", nil)
	if p.Len() != 4 {
		t.Fatalf("expected 4 objects, got %d", p.Len())
	}
	for i, o := range p.Objects() {
		if o.Index() != i {
			t.Errorf("object %d reports index %d", i, o.Index())
		}
	}
	if p.At(0).Prev() != nil {
		t.Error("expected no object before the first")
	}
	if p.At(0).Next() != p.At(1) || p.At(1).Prev() != p.At(0) {
		t.Error("expected Next and Prev to be inverses")
	}
	if p.EOF().Next() != nil {
		t.Error("expected no object after EOF")
	}
}
