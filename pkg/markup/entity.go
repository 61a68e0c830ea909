package markup

import (
	"html"
	"strconv"
	"strings"
)

// EntityDecoder maps a named character reference (without the "&" and ";")
// to its replacement text. Returning false leaves the reference in place.
type EntityDecoder func(name string) (string, bool)

// DefaultEntities decodes the four references every SGML-like language
// shares: amp, lt, gt, and quot.
func DefaultEntities(name string) (string, bool) {
	switch name {
	case "amp":
		return "&", true
	case "lt":
		return "<", true
	case "gt":
		return ">", true
	case "quot":
		return `"`, true
	default:
		return "", false
	}
}

// HTMLEntities decodes the full HTML named character reference set.
func HTMLEntities(name string) (string, bool) {
	ref := "&" + name + ";"
	if out := html.UnescapeString(ref); out != ref {
		return out, true
	}
	return "", false
}

// MapEntities builds a decoder from a name-to-replacement map, falling back
// to the given decoder (which may be nil) for names not in the map.
func MapEntities(m map[string]string, fallback EntityDecoder) EntityDecoder {
	return func(name string) (string, bool) {
		if v, ok := m[name]; ok {
			return v, true
		}
		if fallback != nil {
			return fallback(name)
		}
		return "", false
	}
}

// Entity is one character reference found in a text object.
type Entity struct {
	owner      *Object
	span       Span // includes "&", and ";" when terminated
	terminated bool
}

// Owner returns the text object the entity was found in.
func (e *Entity) Owner() *Object { return e.owner }

// Span returns the byte range of the reference in the input.
func (e *Entity) Span() Span { return e.span }

// Terminated reports whether the reference ended with ";".
func (e *Entity) Terminated() bool { return e.terminated }

// Source returns the literal text of the reference.
func (e *Entity) Source() string {
	return e.owner.p.input[e.span.Start:e.span.End]
}

// Value returns the decoded replacement text. References that are
// unterminated or unknown to the decoder yield their literal source.
func (e *Entity) Value() string {
	if !e.terminated {
		return e.Source()
	}
	return decodeString(e.Source(), e.owner.p.decode)
}

// Siblings returns all entities of the owning text object.
func (e *Entity) Siblings() []*Entity { return e.owner.Entities() }

// scanEntities finds every character reference in a text object's source.
// A reference is "&" followed by an optional "#" and at least one word byte;
// a trailing ";" marks it terminated.
func scanEntities(o *Object) []*Entity {
	src, base := o.Source(), o.Start()
	var ents []*Entity
	for c := 0; c < len(src); c++ {
		if src[c] != '&' {
			continue
		}
		e, terminated := scanReference(src, c+1)
		if e > c+1 {
			ents = append(ents, &Entity{
				owner:      o,
				span:       Span{base + c, base + e},
				terminated: terminated,
			})
			c = e - 1
		}
	}
	return ents
}

// scanReference consumes a reference body starting just past "&". It returns
// the end offset (past the ";" when present) and whether ";" was found.
func scanReference(src string, pos int) (end int, terminated bool) {
	p := pos
	if p < len(src) && src[p] == '#' {
		p++
	}
	for p < len(src) && isWordByte(src[p]) {
		p++
	}
	if p == pos || (src[pos] == '#' && p == pos+1) {
		return pos, false
	}
	if p < len(src) && src[p] == ';' {
		return p + 1, true
	}
	return p, false
}

// decodeString replaces every terminated character reference in s using the
// given decoder. Numeric references ("&#NNN;", decimal) decode directly;
// undecodable references pass through literally.
func decodeString(s string, decode EntityDecoder) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for c := 0; c < len(s); {
		if s[c] != '&' {
			b.WriteByte(s[c])
			c++
			continue
		}
		e, terminated := scanReference(s, c+1)
		if !terminated {
			b.WriteByte(s[c])
			c++
			continue
		}
		key := s[c+1 : e-1]
		if rep, ok := decodeReference(key, decode); ok {
			b.WriteString(rep)
		} else {
			b.WriteString(s[c:e])
		}
		c = e
	}
	return b.String()
}

// decodeReference decodes one reference body (between "&" and ";").
func decodeReference(key string, decode EntityDecoder) (string, bool) {
	if strings.HasPrefix(key, "#") {
		n, err := strconv.Atoi(key[1:])
		if err != nil || n < 0 || !isValidRune(rune(n)) {
			return "", false
		}
		return string(rune(n)), true
	}
	if decode == nil {
		return "", false
	}
	return decode(key)
}

func isValidRune(r rune) bool { return r >= 0 && r <= 0x10FFFF }

func isWordByte(b byte) bool {
	return b >= '0' && b <= '9' ||
		b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b == '_'
}
