package markup

import (
	"fmt"
	"strings"
)

// Options configures a Parser. The zero value scans with no implicit-closing
// rules, exact tag-name matching, and the default entity set.
type Options struct {
	// Rules supplies the implicit-closing rule tables and the tag-name
	// comparison policy used by partnering. Nil means no implicit rules
	// and exact string comparison.
	Rules *Rules

	// Entities decodes named character references in text and attribute
	// values. Nil means DefaultEntities.
	Entities EntityDecoder

	// SkipWhiteText discards text runs consisting entirely of whitespace.
	SkipWhiteText bool

	// TabWidth is the tab expansion width for Column. Zero means 8.
	TabWidth int
}

// Parser scans a markup document into an ordered sequence of objects and
// derives the structural relations between them. The sequence always ends
// with a zero-width EOF sentinel positioned at len(Input).
//
// A Parser is not safe for concurrent use without external synchronization:
// Feed mutates the sequence, and derived views are memoized on first access.
type Parser struct {
	input     string
	rules     *Rules
	decode    EntityDecoder
	skipWhite bool
	tabWidth  int

	objs    []*Object
	derived bool  // parent indices computed; see derive.go
	lines   []int // offsets of "\n" bytes, built on demand
}

// New builds a parser over the given input, which may be empty. A nil opts
// is equivalent to the zero Options.
func New(src string, opts *Options) *Parser {
	if opts == nil {
		opts = &Options{}
	}
	p := &Parser{
		rules:     opts.Rules,
		decode:    opts.Entities,
		skipWhite: opts.SkipWhiteText,
		tabWidth:  opts.TabWidth,
	}
	if p.decode == nil {
		p.decode = DefaultEntities
	}
	if p.tabWidth <= 0 {
		p.tabWidth = 8
	}
	p.parse(src)
	return p
}

// parse scans src from scratch, replacing any previous state.
func (p *Parser) parse(src string) {
	p.input = src
	p.objs = p.objs[:0]
	p.appendTokens((&scanner{input: src}).scan(0))
	p.resetDerived()
	p.findPartners()
}

// Feed appends more input to the parse. Trailing tokens whose shape could
// change with additional input (text and the unterminated variants) are
// rescanned against the extended input, and all derived state — partnering,
// parents, memoized views — is recomputed from scratch. Objects obtained
// before the call must be considered stale.
func (p *Parser) Feed(src string) {
	old := len(p.input)
	p.input += src

	// Drop the EOF sentinel and any trailing rescannable tokens.
	sp := old
	for n := len(p.objs); n > 0; n = len(p.objs) {
		k := p.objs[n-1].tok.kind
		if k != KindEOF && k != KindText && !k.IsUnterminated() {
			break
		}
		sp = p.objs[n-1].tok.start
		p.objs = p.objs[:n-1]
	}

	p.appendTokens((&scanner{input: p.input}).scan(sp))
	p.lines = nil
	p.resetDerived()
	p.findPartners()
}

// appendTokens wraps raw tokens into objects at the end of the sequence,
// applying the whitespace filter and checking the scanner's postconditions.
func (p *Parser) appendTokens(toks []rawToken) {
	prev := -1
	if n := len(p.objs); n > 0 {
		prev = p.objs[n-1].tok.end
	}
	for _, tok := range toks {
		invariant(tok.start >= prev && tok.end >= tok.start, "tokens out of order")
		prev = tok.end
		if p.skipWhite && tok.kind == KindText && isAllSpace(p.input[tok.start:tok.end]) {
			continue
		}
		p.objs = append(p.objs, &Object{
			p:       p,
			index:   len(p.objs),
			tok:     tok,
			partner: noIndex,
			parent:  noIndex,
		})
	}
	last := p.objs[len(p.objs)-1]
	invariant(last.tok.kind == KindEOF && last.tok.start == len(p.input), "missing EOF sentinel")
}

// resetDerived clears partnering and every memoized derived view.
func (p *Parser) resetDerived() {
	for _, o := range p.objs {
		o.partner = noIndex
		o.parent = noIndex
		o.entities = nil
		o.entsDone = false
	}
	p.derived = false
}

// Input returns the full accumulated input string.
func (p *Parser) Input() string { return p.input }

// Rules returns the partnering rules in effect, or nil when none were set.
func (p *Parser) Rules() *Rules { return p.rules }

// Len returns the number of objects, including the EOF sentinel.
func (p *Parser) Len() int { return len(p.objs) }

// At returns the object at index i. It panics if i is out of range.
func (p *Parser) At(i int) *Object { return p.objs[i] }

// EOF returns the trailing EOF sentinel.
func (p *Parser) EOF() *Object { return p.objs[len(p.objs)-1] }

// Objects returns all objects in input order, including the EOF sentinel.
// The returned slice is shared; callers must not modify it.
func (p *Parser) Objects() []*Object { return p.objs }

// Locate returns the object covering the byte offset pos, along with the tag
// attribute covering pos when there is one. An offset equal to len(Input)
// locates the EOF sentinel. Out-of-range offsets return nil.
func (p *Parser) Locate(pos int) (*Object, *Attribute) {
	for _, o := range p.objs {
		if o.tok.start <= pos && pos < o.tok.end {
			if attr, ok := o.AttributeAt(pos); ok {
				return o, attr
			}
			return o, nil
		}
	}
	if pos == len(p.input) {
		return p.EOF(), nil
	}
	return nil, nil
}

func isAllSpace(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return !isSpaceByte(byte(r)) || r >= 0x80
	}) < 0
}

// InvariantError reports an internal defect in the scanner or partnering
// engine. It is delivered by panic: no input, however malformed, should
// produce one.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("markup: internal invariant violated: %s", e.Reason)
}

func invariant(cond bool, reason string) {
	if !cond {
		panic(&InvariantError{Reason: reason})
	}
}
