package markup

import (
	"fmt"
	"strings"
)

// noIndex is the sentinel arena index meaning "no such object".
const noIndex = -1

// Object is a single markup object: a tag, a run of text, a comment, a
// directive, a CDATA block, or the EOF sentinel. Objects are created by the
// parser and are immutable except for memoized derived views; they are
// identified by position in the parser's ordered sequence, and all links
// between objects (partner, parent, ordering) are indices into that sequence.
type Object struct {
	p     *Parser
	index int
	tok   rawToken

	partner int // noIndex if unpartnered

	// Derived lazily; see derive.go.
	parent   int // meaningful only once p.derived is set
	entities []*Entity
	entsDone bool
}

// Kind returns the object's kind.
func (o *Object) Kind() Kind { return o.tok.kind }

// Index returns the object's position in the parser's sequence.
func (o *Object) Index() int { return o.index }

// Start returns the byte offset where the object begins.
func (o *Object) Start() int { return o.tok.start }

// End returns the byte offset one past where the object ends.
func (o *Object) End() int { return o.tok.end }

// Span returns the object's [Start, End) byte range.
func (o *Object) Span() Span { return Span{o.tok.start, o.tok.end} }

// Source returns the literal input text of the object.
func (o *Object) Source() string { return o.p.input[o.tok.start:o.tok.end] }

// Prev returns the previous object in input order, or nil for the first.
func (o *Object) Prev() *Object {
	if o.index == 0 {
		return nil
	}
	return o.p.objs[o.index-1]
}

// Next returns the next object in input order, or nil for the EOF sentinel.
func (o *Object) Next() *Object {
	if o.index >= len(o.p.objs)-1 {
		return nil
	}
	return o.p.objs[o.index+1]
}

// Partner returns the object's matching tag, or nil. For a properly nested
// pair the relation is mutual; a tag closed implicitly by a rule has a
// one-directional partner (see Rules).
func (o *Object) Partner() *Object {
	if o.partner == noIndex {
		return nil
	}
	return o.p.objs[o.partner]
}

// Name returns the tag or directive name, or "" for unnamed kinds.
func (o *Object) Name() string {
	if !o.tok.kind.HasName() {
		return ""
	}
	return o.p.input[o.tok.name.Start:o.tok.name.End]
}

// NameSpan returns the byte range of the name within the input.
func (o *Object) NameSpan() Span { return o.tok.name }

// InnerSource returns the object's interior text: the payload of a comment,
// directive, or CDATA block with its delimiters removed, or the attribute
// region of a tag. Text objects and the EOF sentinel have no interior.
func (o *Object) InnerSource() string {
	return o.p.input[o.tok.inner.Start:o.tok.inner.End]
}

// InnerSpan returns the byte range of the interior text.
func (o *Object) InnerSpan() Span { return o.tok.inner }

// Value returns the entity-decoded text for a text object, and the literal
// source for every other kind.
func (o *Object) Value() string {
	if o.tok.kind != KindText {
		return o.Source()
	}
	return decodeString(o.Source(), o.p.decode)
}

// Attributes returns the tag's attributes in source order. Only open and
// self-delimiting tags have attributes.
func (o *Object) Attributes() []*Attribute {
	attrs := make([]*Attribute, len(o.tok.attrs))
	for i := range o.tok.attrs {
		attrs[i] = &Attribute{owner: o, raw: o.tok.attrs[i]}
	}
	return attrs
}

// Keys returns the lower-cased names of the tag's attributes in source order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.tok.attrs))
	for i, a := range o.tok.attrs {
		keys[i] = strings.ToLower(o.p.input[a.name.Start:a.name.End])
	}
	return keys
}

// Attr returns the first attribute whose name matches the given name,
// ignoring ASCII case. The second result reports whether it was found.
func (o *Object) Attr(name string) (*Attribute, bool) {
	for i := range o.tok.attrs {
		a := o.tok.attrs[i]
		if strings.EqualFold(o.p.input[a.name.Start:a.name.End], name) {
			return &Attribute{owner: o, raw: a}, true
		}
	}
	return nil, false
}

// AttributeAt returns the attribute whose span covers the byte offset pos.
func (o *Object) AttributeAt(pos int) (*Attribute, bool) {
	for i := range o.tok.attrs {
		a := o.tok.attrs[i]
		if a.span.Start <= pos && pos < a.span.End {
			return &Attribute{owner: o, raw: a}, true
		}
	}
	return nil, false
}

// Entities returns the character references found in a text object, in
// source order. Non-text objects have none. The scan is performed once per
// object and memoized.
func (o *Object) Entities() []*Entity {
	if o.tok.kind != KindText {
		return nil
	}
	if !o.entsDone {
		o.entities = scanEntities(o)
		o.entsDone = true
	}
	return o.entities
}

// Parser returns the parser that owns this object.
func (o *Object) Parser() *Parser { return o.p }

// LinePos returns the 1-based line number and 0-based byte offset within the
// line of the object's start.
func (o *Object) LinePos() (line, pos int) { return o.p.LinePos(o.tok.start) }

// Column returns the 1-based line number and 0-based column of the object's
// start, expanding tabs to the parser's tab width.
func (o *Object) Column() (line, col int) { return o.p.Column(o.tok.start) }

// String renders a compact description of the object for diagnostics.
func (o *Object) String() string {
	if o.tok.kind.HasName() {
		return fmt.Sprintf("#<%s %q %d..%d>", o.tok.kind, o.Name(), o.tok.start, o.tok.end)
	}
	return fmt.Sprintf("#<%s %d..%d>", o.tok.kind, o.tok.start, o.tok.end)
}

// Attribute is one attribute of an open or self-delimiting tag.
type Attribute struct {
	owner *Object
	raw   rawAttr
}

// Owner returns the tag the attribute belongs to.
func (a *Attribute) Owner() *Object { return a.owner }

// Name returns the attribute's name as written.
func (a *Attribute) Name() string {
	return a.owner.p.input[a.raw.name.Start:a.raw.name.End]
}

// HasValue reports whether the attribute was written with an "=value" part.
func (a *Attribute) HasValue() bool { return a.raw.vkind != valueNone }

// Unterminated reports whether the attribute's quoted value was missing its
// closing quote at the end of the tag.
func (a *Attribute) Unterminated() bool { return a.raw.vkind == valueUntermQuote }

// RawValue returns the attribute value with quotes stripped but entities
// left encoded. Bare attributes yield "".
func (a *Attribute) RawValue() string {
	raw := a.owner.p.input[a.raw.value.Start:a.raw.value.End]
	switch a.raw.vkind {
	case valueQuoted:
		return raw[1 : len(raw)-1]
	case valueUntermQuote:
		return raw[1:]
	default:
		return raw
	}
}

// Value returns the attribute value with quotes stripped and character
// references decoded.
func (a *Attribute) Value() string {
	return decodeString(a.RawValue(), a.owner.p.decode)
}

// Span returns the byte range of the whole attribute.
func (a *Attribute) Span() Span { return a.raw.span }

// NameSpan returns the byte range of the attribute name.
func (a *Attribute) NameSpan() Span { return a.raw.name }

// ValueSpan returns the byte range of the attribute value, including quotes.
// The second result is false for bare attributes.
func (a *Attribute) ValueSpan() (Span, bool) {
	return a.raw.value, a.raw.vkind != valueNone
}

// Source returns the literal text of the attribute.
func (a *Attribute) Source() string {
	return a.owner.p.input[a.raw.span.Start:a.raw.span.End]
}
