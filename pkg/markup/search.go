package markup

import (
	"regexp"
	"strings"
)

// A Matcher reports whether a string satisfies some condition. A nil Matcher
// in a Criteria field means "match anything".
type Matcher func(string) bool

// Eq matches strings exactly equal to want.
func Eq(want string) Matcher {
	return func(s string) bool { return s == want }
}

// EqFold matches strings equal to want under ASCII case folding.
func EqFold(want string) Matcher {
	return func(s string) bool { return strings.EqualFold(s, want) }
}

// Pattern matches strings containing a match of re.
func Pattern(re *regexp.Regexp) Matcher {
	return re.MatchString
}

// OneOf matches strings equal to any of the given alternatives under ASCII
// case folding.
func OneOf(names ...string) Matcher {
	return func(s string) bool {
		for _, n := range names {
			if strings.EqualFold(s, n) {
				return true
			}
		}
		return false
	}
}

// Criteria selects objects from a parse. All populated fields must be
// satisfied; the zero value matches every object, including the EOF
// sentinel.
type Criteria struct {
	// Kinds restricts matches to the listed kinds. Empty means any kind.
	Kinds []Kind

	// Name must match the object's name. Setting Name restricts matches
	// to named kinds.
	Name Matcher

	// Attrs requires each named attribute to be present, and its decoded
	// value to satisfy the matcher when one is given. A nil matcher
	// checks presence only. Keys are compared ignoring ASCII case.
	Attrs map[string]Matcher

	// Predicate is an arbitrary final filter.
	Predicate func(*Object) bool

	// Inside restricts matches to the given object's Contents: the
	// objects strictly between it and its partner in sequence order.
	// Nothing matches inside an unpartnered object.
	Inside *Object

	// After and Before restrict matches to objects strictly after or
	// strictly before the given object in sequence order.
	After, Before *Object
}

func (c *Criteria) match(o *Object) bool {
	if len(c.Kinds) > 0 {
		ok := false
		for _, k := range c.Kinds {
			if o.tok.kind == k {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if c.Name != nil {
		if !o.tok.kind.HasName() || !c.Name(o.Name()) {
			return false
		}
	}
	for name, m := range c.Attrs {
		attr, ok := o.Attr(name)
		if !ok {
			return false
		}
		if m != nil && !m(attr.Value()) {
			return false
		}
	}
	if c.Inside != nil {
		if c.Inside.partner == noIndex {
			return false
		}
		lo, hi := c.Inside.index, c.Inside.partner
		if hi < lo {
			lo, hi = hi, lo
		}
		if o.index <= lo || o.index >= hi {
			return false
		}
	}
	if c.After != nil && o.index <= c.After.index {
		return false
	}
	if c.Before != nil && o.index >= c.Before.index {
		return false
	}
	return c.Predicate == nil || c.Predicate(o)
}

// An Iter is a restartable iterator over the objects matching a Criteria, in
// input order.
type Iter struct {
	p    *Parser
	c    Criteria
	next int
}

// Next returns the next matching object, or nil when the sequence is
// exhausted.
func (it *Iter) Next() *Object {
	for it.next < len(it.p.objs) {
		o := it.p.objs[it.next]
		it.next++
		if it.c.match(o) {
			return o
		}
	}
	return nil
}

// Reset rewinds the iterator to the beginning of the sequence.
func (it *Iter) Reset() { it.next = 0 }

// Find returns an iterator over the objects matching c, in input order.
func (p *Parser) Find(c Criteria) *Iter { return &Iter{p: p, c: c} }

// First returns the first object matching c, or nil if there is none.
func (p *Parser) First(c Criteria) *Object { return p.Find(c).Next() }

// Last returns the last object matching c, or nil if there is none.
func (p *Parser) Last(c Criteria) *Object {
	var last *Object
	it := p.Find(c)
	for o := it.Next(); o != nil; o = it.Next() {
		last = o
	}
	return last
}

// Find returns an iterator over the objects in o's Contents matching c.
// Any Inside constraint already in c is replaced by o.
func (o *Object) Find(c Criteria) *Iter {
	c.Inside = o
	return o.p.Find(c)
}

// First returns the first object in o's Contents matching c, or nil.
func (o *Object) First(c Criteria) *Object { return o.Find(c).Next() }
