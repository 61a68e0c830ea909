package markup

// extent returns the byte range spanned by o together with its partner:
// from the smaller Start to the larger End. Unpartnered objects span only
// themselves.
func (o *Object) extent() (lo, hi int) {
	lo, hi = o.tok.start, o.tok.end
	if o.partner != noIndex {
		t := o.p.objs[o.partner].tok
		if t.start < lo {
			lo = t.start
		}
		if t.end > hi {
			hi = t.end
		}
	}
	return lo, hi
}

// deriveParents assigns every object's parent in a single pass.
//
// The parent of an object is the nearest enclosing partnered tag: a tag
// whose extent, from its own start to its partner's end, strictly contains
// the object's extent. Tags sharing a partner do not contain each other;
// when several pending tags share the closing object (implicit-close
// chains), the object nests under the innermost of them.
func (p *Parser) deriveParents() {
	if p.derived {
		return
	}
	p.derived = true

	var open []*Object // partnered tags whose extent is still in progress
	for _, o := range p.objs {
		// Tags whose partner precedes o are finished regions; anything
		// still open but already closed at o's index cannot contain it.
		n := 0
		for _, c := range open {
			if c.partner > o.index {
				open[n] = c
				n++
			}
		}
		open = open[:n]

		lo, hi := o.extent()
		for i := len(open) - 1; i >= 0; i-- {
			c := open[i]
			if c.tok.end > lo {
				continue
			}
			end := c.p.objs[c.partner].tok.start
			if hi <= end || o.partner == c.partner {
				o.parent = c.index
				break
			}
		}

		if o.tok.kind == KindOpenTag && o.partner > o.index {
			open = append(open, o)
		}
	}
}

// Parent returns the nearest enclosing partnered open tag, or nil at top
// level.
func (o *Object) Parent() *Object {
	o.p.deriveParents()
	if o.parent == noIndex {
		return nil
	}
	return o.p.objs[o.parent]
}

// Path returns the chain of objects from the document root down to o
// itself: every enclosing tag, outermost first, ending with o. The path of
// a top-level object is just the object.
func (o *Object) Path() []*Object {
	var path []*Object
	for t := o.Parent(); t != nil; t = t.Parent() {
		path = append(path, t)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return append(path, o)
}

// Contents returns the objects strictly between o and its partner, in input
// order, at every nesting depth. Unpartnered objects, and partnered pairs
// with nothing between them, have no contents.
func (o *Object) Contents() []*Object {
	if o.partner == noIndex {
		return nil
	}
	lo, hi := o.index, o.partner
	if hi < lo {
		lo, hi = hi, lo
	}
	var out []*Object
	for i := lo + 1; i < hi; i++ {
		out = append(out, o.p.objs[i])
	}
	return out
}

// ContentsSource returns the input text strictly between o and its partner.
func (o *Object) ContentsSource() string {
	if o.partner == noIndex {
		return ""
	}
	a, b := o.tok.end, o.p.objs[o.partner].tok.start
	if b < a {
		a, b = o.p.objs[o.partner].tok.end, o.tok.start
	}
	return o.p.input[a:b]
}

// Contains reports whether the extent of o, including its partner, wholly
// contains the extent of t. An object does not contain itself or its
// partner.
func (o *Object) Contains(t *Object) bool {
	if t == nil || t == o || (o.partner != noIndex && t.index == o.partner) {
		return false
	}
	lo, hi := o.extent()
	tlo, thi := t.extent()
	return lo <= tlo && thi <= hi
}

// Children returns the objects directly inside o: the members of Contents
// whose parent is o.
func (o *Object) Children() []*Object {
	o.p.deriveParents()
	var out []*Object
	for _, t := range o.Contents() {
		if t.parent == o.index {
			out = append(out, t)
		}
	}
	return out
}

// FirstChild returns the first object directly inside o, or nil.
func (o *Object) FirstChild() *Object {
	if kids := o.Children(); len(kids) > 0 {
		return kids[0]
	}
	return nil
}

// Siblings returns the objects sharing o's parent, in input order, including
// o itself. A top-level object has no siblings, not even itself.
func (o *Object) Siblings() []*Object {
	par := o.Parent()
	if par == nil {
		return nil
	}
	return par.Children()
}

// FirstSib returns the first of o's siblings, or nil at top level.
func (o *Object) FirstSib() *Object {
	if sibs := o.Siblings(); len(sibs) > 0 {
		return sibs[0]
	}
	return nil
}

// PrevSib returns the sibling immediately before o, or nil.
func (o *Object) PrevSib() *Object {
	sibs := o.Siblings()
	for i, t := range sibs {
		if t == o && i > 0 {
			return sibs[i-1]
		}
	}
	return nil
}

// NextSib returns the sibling immediately after o, or nil.
func (o *Object) NextSib() *Object {
	sibs := o.Siblings()
	for i, t := range sibs {
		if t == o && i+1 < len(sibs) {
			return sibs[i+1]
		}
	}
	return nil
}

// LastSib returns the last of o's siblings, or nil at top level.
func (o *Object) LastSib() *Object {
	if sibs := o.Siblings(); len(sibs) > 0 {
		return sibs[len(sibs)-1]
	}
	return nil
}
