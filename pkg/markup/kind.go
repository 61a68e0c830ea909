package markup

// Kind classifies a markup object discovered by the scanner.
type Kind uint8

// Object kinds. The unterminated variants mark comment, directive, and CDATA
// blocks whose closing delimiter was not found before end of input.
const (
	KindText Kind = iota

	KindComment
	KindUntermComment
	KindDirective
	KindUntermDirective
	KindData
	KindUntermData

	KindOpenTag
	KindSelfTag
	KindCloseTag

	KindEOF
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindUntermComment:
		return "unterminated-comment"
	case KindDirective:
		return "directive"
	case KindUntermDirective:
		return "unterminated-directive"
	case KindData:
		return "data"
	case KindUntermData:
		return "unterminated-data"
	case KindOpenTag:
		return "open"
	case KindSelfTag:
		return "self"
	case KindCloseTag:
		return "close"
	case KindEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// IsTag reports whether k is an open, self-delimiting, or close tag.
func (k Kind) IsTag() bool {
	return k == KindOpenTag || k == KindSelfTag || k == KindCloseTag
}

// IsUnterminated reports whether k marks a construct whose closing delimiter
// was missing at end of input.
func (k Kind) IsUnterminated() bool {
	return k == KindUntermComment || k == KindUntermDirective || k == KindUntermData
}

// HasName reports whether objects of this kind carry a name (tags and
// directives).
func (k Kind) HasName() bool {
	return k.IsTag() || k == KindDirective || k == KindUntermDirective
}

// HasAttributes reports whether objects of this kind carry attributes (open
// and self-delimiting tags).
func (k Kind) HasAttributes() bool {
	return k == KindOpenTag || k == KindSelfTag
}
