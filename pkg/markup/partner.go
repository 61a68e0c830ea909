package markup

import "strings"

// Rules describes when tags partner with each other. The maps express the
// implicit-closing behavior of vocabularies like HTML, where certain open
// tags end an enclosing element without an explicit close tag.
//
// All map keys, and the names in the value lists, must be in the canonical
// form produced by Canon (lowercase for the HTML preset). The zero value
// gives exact name matching and no implicit rules.
type Rules struct {
	// NameEqual reports whether two tag names refer to the same element.
	// Nil means case-sensitive comparison.
	NameEqual func(a, b string) bool

	// Canon maps a tag name to the form used as a key in the rule tables.
	// Nil means the identity.
	Canon func(name string) string

	// Singular lists tags that never take a partner: an open tag of a
	// singular name acts like a self-closing tag.
	Singular map[string]bool

	// ClosedByOpen maps a pending open tag name to the open tag names
	// that implicitly close it. For example li → {li}: a new list item
	// ends the previous one, and head → {body}: body ends the document
	// head.
	ClosedByOpen map[string][]string

	// ClosedByClose maps a pending open tag name to the close tag names
	// that implicitly close it when they have no matching open tag of
	// their own. For example td → {table}: </table> ends an open cell.
	ClosedByClose map[string][]string

	// ClosedByEOF lists open tag names implicitly closed by the end of
	// input rather than abandoned.
	ClosedByEOF map[string]bool
}

func (r *Rules) nameEq(a, b string) bool {
	if r != nil && r.NameEqual != nil {
		return r.NameEqual(a, b)
	}
	return a == b
}

func (r *Rules) canon(name string) string {
	if r != nil && r.Canon != nil {
		return r.Canon(name)
	}
	return name
}

func (r *Rules) singular(name string) bool {
	return r != nil && r.Singular[r.canon(name)]
}

// IsSingular reports whether name never takes a partner under these rules.
// A nil receiver has no singular tags.
func (r *Rules) IsSingular(name string) bool { return r.singular(name) }

// closedByOpen reports whether a pending open tag named pending is
// implicitly closed by a new open tag named by.
func (r *Rules) closedByOpen(pending, by string) bool {
	if r == nil || len(r.ClosedByOpen) == 0 {
		return false
	}
	return containsName(r.ClosedByOpen[r.canon(pending)], r.canon(by))
}

// closedByClose reports whether a pending open tag named pending is
// implicitly closed by an unmatched close tag named by.
func (r *Rules) closedByClose(pending, by string) bool {
	if r == nil || len(r.ClosedByClose) == 0 {
		return false
	}
	return containsName(r.ClosedByClose[r.canon(pending)], r.canon(by))
}

func (r *Rules) closedByEOF(name string) bool {
	return r != nil && r.ClosedByEOF[r.canon(name)]
}

func containsName(names []string, canon string) bool {
	for _, n := range names {
		if n == canon {
			return true
		}
	}
	return false
}

// findPartners assigns partner links in a single pass over the sequence.
//
// Partnering is not symmetric. A close tag that finds a matching open tag
// forms a mutual pair: each points at the other. A tag closed implicitly by
// one of the rule tables gets a one-way link to the tag (or EOF sentinel)
// that closed it, which itself remains available for a partner of its own.
// Open tags still pending when the pass ends, and close tags that never
// matched, stay unpartnered (abandoned).
//
// A close tag removes only the entry it matches from the pending stack;
// entries pushed after it remain eligible, so overlapping pairs such as
// <a><b></a></b> both resolve.
func (p *Parser) findPartners() {
	r := p.rules
	var pending []int // indices of open tags awaiting a close, oldest first

	// remove deletes pending[i], preserving order.
	remove := func(i int) {
		pending = append(pending[:i], pending[i+1:]...)
	}

	for _, o := range p.objs {
		switch o.tok.kind {
		case KindOpenTag:
			// Singular opens neither close anything nor wait for a close.
			name := p.name(o.tok)
			if r.singular(name) {
				continue
			}
			for i := len(pending) - 1; i >= 0; i-- {
				t := p.objs[pending[i]]
				if r.closedByOpen(p.name(t.tok), name) {
					t.partner = o.index
					remove(i)
				}
			}
			pending = append(pending, o.index)

		case KindCloseTag:
			// Walk the pending stack from the top. Entries implicitly
			// closed by this name are closed one-way on the way down;
			// the first name match becomes the mutual partner and ends
			// the walk. Other entries stay pending, which lets
			// overlapping pairs resolve.
			name := p.name(o.tok)
			for i := len(pending) - 1; i >= 0; i-- {
				t := p.objs[pending[i]]
				if r.nameEq(p.name(t.tok), name) {
					t.partner = o.index
					o.partner = t.index
					remove(i)
					break
				}
				if r.closedByClose(p.name(t.tok), name) {
					t.partner = o.index
					remove(i)
				}
			}

		case KindEOF:
			for i := len(pending) - 1; i >= 0; i-- {
				t := p.objs[pending[i]]
				if r.closedByEOF(p.name(t.tok)) {
					t.partner = o.index
					remove(i)
				}
			}
		}
	}
}

// name extracts the token's name from the input.
func (p *Parser) name(tok rawToken) string {
	return p.input[tok.name.Start:tok.name.End]
}

// EqualFold is a Rules.NameEqual policy for case-insensitive vocabularies.
func EqualFold(a, b string) bool { return strings.EqualFold(a, b) }
