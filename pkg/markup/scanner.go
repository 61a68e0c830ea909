package markup

import "strings"

// Span is a half-open [Start, End) byte range in the parser's input.
type Span struct {
	Start int
	End   int
}

// Len returns the width of the span in bytes.
func (s Span) Len() int { return s.End - s.Start }

// valueKind records how an attribute value was written in the source.
type valueKind uint8

const (
	valueNone        valueKind = iota // bare attribute, no "=value"
	valueBare                         // unquoted value
	valueQuoted                       // quoted value, closing quote found
	valueUntermQuote                  // quoted value, closing quote missing
)

// rawAttr is one attribute span recorded while scanning a tag interior.
type rawAttr struct {
	span  Span // full attribute, name through value
	name  Span
	value Span // quotes included for quoted values
	vkind valueKind
}

// rawToken is one classified span of input produced by the scanner.
type rawToken struct {
	kind  Kind
	start int
	end   int
	name  Span // tags and directives
	inner Span // interior payload, delimiters excluded
	attrs []rawAttr
}

// Delimiter strings recognized by the scanner.
const (
	commentOpen  = "<!--"
	commentClose = "-->"
	cdataOpen    = "<![CDATA["
	cdataClose   = "]]>"
)

// scanner is a permissive lexical analyzer for SGML-like markup. It
// classifies every byte of input into a token; nothing it encounters is an
// error. Constructs that fail to parse as markup fall back to running text.
type scanner struct {
	input string
}

// scan tokenizes the input from start to end of input, folding consecutive
// text tokens into a single run. The final token is always the zero-width
// EOF sentinel.
func (s *scanner) scan(start int) []rawToken {
	var toks []rawToken
	pos := start
	for {
		tok := s.scanOne(pos)
		n := len(toks)
		if tok.kind == KindText && n > 0 && toks[n-1].kind == KindText {
			toks[n-1].end = tok.end
		} else {
			toks = append(toks, tok)
		}
		if tok.kind == KindEOF {
			return toks
		}
		pos = tok.end
	}
}

// scanOne consumes a single token at pos. Anything that does not scan as a
// delimiter-initiated construct is taken as text up to the next "<".
func (s *scanner) scanOne(pos int) rawToken {
	if pos >= len(s.input) {
		return rawToken{kind: KindEOF, start: pos, end: pos}
	}

	c := pos
	if s.input[pos] == '<' {
		var next byte
		if pos+1 < len(s.input) {
			next = s.input[pos+1]
		}
		var tok rawToken
		var ok bool
		switch next {
		case '!':
			tok, ok = s.scanComment(pos)
			if !ok {
				tok, ok = s.scanCDATA(pos)
			}
			if !ok {
				tok, ok = s.scanDirective(pos, ">")
			}
		case '?':
			tok, ok = s.scanDirective(pos, "?>")
		case '/':
			tok, ok = s.scanCloseTag(pos)
		default:
			tok, ok = s.scanOpenTag(pos)
		}
		if ok {
			return tok
		}
		c++ // skip past the unconsumed "<"
	}

	for c < len(s.input) && s.input[c] != '<' {
		c++
	}
	return rawToken{kind: KindText, start: pos, end: c}
}

// scanComment scans "<!--" through "-->". A missing close marker yields an
// unterminated comment spanning to end of input.
func (s *scanner) scanComment(pos int) (rawToken, bool) {
	if !strings.HasPrefix(s.input[pos:], commentOpen) {
		return rawToken{}, false
	}
	body := pos + len(commentOpen)
	if i := strings.Index(s.input[body:], commentClose); i >= 0 {
		return rawToken{
			kind:  KindComment,
			start: pos,
			end:   body + i + len(commentClose),
			inner: Span{body, body + i},
		}, true
	}
	return rawToken{
		kind:  KindUntermComment,
		start: pos,
		end:   len(s.input),
		inner: Span{body, len(s.input)},
	}, true
}

// scanCDATA scans "<![CDATA[" through "]]>".
func (s *scanner) scanCDATA(pos int) (rawToken, bool) {
	if !strings.HasPrefix(s.input[pos:], cdataOpen) {
		return rawToken{}, false
	}
	body := pos + len(cdataOpen)
	if i := strings.Index(s.input[body:], cdataClose); i >= 0 {
		return rawToken{
			kind:  KindData,
			start: pos,
			end:   body + i + len(cdataClose),
			inner: Span{body, body + i},
		}, true
	}
	return rawToken{
		kind:  KindUntermData,
		start: pos,
		end:   len(s.input),
		inner: Span{body, len(s.input)},
	}, true
}

// scanDirective scans "<!name ...>" or "<?name ...?>" constructs. The name
// must follow the opener immediately. The content runs until endMark; a "<"
// or end of input before endMark yields the unterminated variant ending just
// before the "<".
func (s *scanner) scanDirective(pos int, endMark string) (rawToken, bool) {
	extra := ""
	if strings.Contains(endMark, "?") {
		extra = "?"
	}
	ns := pos + 2 // past "<!" or "<?"
	ne, ok := s.scanName(ns, extra)
	if !ok {
		return rawToken{}, false
	}

	c := ne
	for !strings.HasPrefix(s.input[c:], endMark) {
		if c >= len(s.input) || s.input[c] == '<' {
			return rawToken{
				kind:  KindUntermDirective,
				start: pos,
				end:   c,
				name:  Span{ns, ne},
				inner: Span{ns, c},
			}, true
		}
		c++
	}
	return rawToken{
		kind:  KindDirective,
		start: pos,
		end:   c + len(endMark),
		name:  Span{ns, ne},
		inner: Span{ns, c},
	}, true
}

// scanOpenTag scans "<name attrs>" and "<name attrs/>" tags. The attribute
// region, including any trailing "/" of a self-delimiting tag, becomes the
// tag's interior span.
func (s *scanner) scanOpenTag(pos int) (rawToken, bool) {
	ne, ok := s.scanName(pos+1, "")
	if !ok {
		return rawToken{}, false
	}
	attrs, atte := s.scanAttrs(ne)

	kind := KindOpenTag
	if atte < len(s.input) && s.input[atte] == '/' {
		kind = KindSelfTag
		atte++
	}
	if atte >= len(s.input) || s.input[atte] != '>' {
		return rawToken{}, false
	}
	return rawToken{
		kind:  kind,
		start: pos,
		end:   atte + 1,
		name:  Span{pos + 1, ne},
		inner: Span{ne, atte},
		attrs: attrs,
	}, true
}

// scanCloseTag scans "</name >" tags.
func (s *scanner) scanCloseTag(pos int) (rawToken, bool) {
	ne, ok := s.scanName(pos+2, "")
	if !ok {
		return rawToken{}, false
	}
	v := s.skipSpace(ne)
	if v >= len(s.input) || s.input[v] != '>' {
		return rawToken{}, false
	}
	return rawToken{
		kind:  KindCloseTag,
		start: pos,
		end:   v + 1,
		name:  Span{pos + 2, ne},
		inner: Span{ne, v},
	}, true
}

// scanAttrs scans zero or more attributes starting at pos, returning the
// recorded attributes and the end of the region. Whitespace after the last
// attribute is consumed into the region.
func (s *scanner) scanAttrs(pos int) ([]rawAttr, int) {
	var attrs []rawAttr
	v := pos
	for {
		v = s.skipSpace(v)
		attr, ok := s.scanAttr(v)
		if !ok {
			return attrs, v
		}
		attrs = append(attrs, attr)
		v = attr.span.End
	}
}

// scanAttr scans one attribute: a name, optionally followed by "=" and a
// quoted or unquoted value. A name with no parsable "=value" suffix is
// recorded as a bare attribute.
func (s *scanner) scanAttr(pos int) (rawAttr, bool) {
	ne, ok := s.scanName(pos, "")
	if !ok {
		return rawAttr{}, false
	}
	attr := rawAttr{
		span:  Span{pos, ne},
		name:  Span{pos, ne},
		value: Span{ne, ne},
		vkind: valueNone,
	}

	v := s.skipSpace(ne)
	if v >= len(s.input) || s.input[v] != '=' {
		return attr, true
	}
	v = s.skipSpace(v + 1)

	if v < len(s.input) && (s.input[v] == '"' || s.input[v] == '\'') {
		ve, closed := s.scanString(v)
		attr.value = Span{v, ve}
		attr.vkind = valueQuoted
		if !closed {
			attr.vkind = valueUntermQuote
		}
	} else {
		ve := s.scanUnquoted(v, "=")
		attr.value = Span{v, ve}
		attr.vkind = valueBare
	}
	attr.span.End = attr.value.End
	return attr, true
}

// scanString scans a quoted string starting at the opening quote at pos.
// There is no escape processing: the value runs to the next matching quote.
// Returns the end offset and whether the closing quote was found.
func (s *scanner) scanString(pos int) (end int, closed bool) {
	q := s.input[pos]
	p := pos + 1
	for p < len(s.input) && s.input[p] != q {
		p++
	}
	if p < len(s.input) {
		return p + 1, true
	}
	return p, false
}

// scanName scans a name at pos: a maximal run of printable, non-whitespace
// bytes excluding the reserved markers. Reports false for an empty run.
func (s *scanner) scanName(pos int, extra string) (end int, ok bool) {
	e := pos
	for e < len(s.input) && isNameByte(s.input[e]) && !strings.ContainsRune(extra, rune(s.input[e])) {
		e++
	}
	return e, e > pos
}

// scanUnquoted scans an unquoted attribute value, which may be empty. Unlike
// names, unquoted values may contain "<" and "/".
func (s *scanner) scanUnquoted(pos int, extra string) int {
	e := pos
	for e < len(s.input) && isValueByte(s.input[e]) && !strings.ContainsRune(extra, rune(s.input[e])) {
		e++
	}
	return e
}

// skipSpace advances past a run of whitespace.
func (s *scanner) skipSpace(pos int) int {
	p := pos
	for p < len(s.input) && isSpaceByte(s.input[p]) {
		p++
	}
	return p
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isValueByte(b byte) bool {
	switch b {
	case 0, '"', '\'', '>':
		return false
	}
	return b >= 0x20 && !isSpaceByte(b)
}

func isNameByte(b byte) bool {
	switch b {
	case '<', '/', '=':
		return false
	}
	return isValueByte(b)
}
