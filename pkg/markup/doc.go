// Package markup provides a permissive, non-validating parser for HTML and
// other SGML-like markup languages. It never rejects malformed input: improper
// nesting, unterminated constructs, and stray delimiters degrade to ordinary
// tokens instead of errors, which makes the package suitable for traversing
// and querying "tag soup" that a conforming parser would refuse.
//
// A Parser scans its input once into an ordered sequence of objects (tags,
// text runs, comments, directives, CDATA blocks) terminated by a zero-width
// EOF sentinel, then matches open and close tags by name. Structural views
// such as Parent, Children, Contents, and Path are derived lazily from the
// matching and memoized; they are never built as a separate tree.
//
// Basic usage:
//
//	p := markup.NewHTML(`<html><body class="foo">Blah blah</body></html>`, nil)
//
//	p.Len()            // 6
//	p.At(0).Name()     // "html"
//	p.At(1).Source()   // `<body class="foo">`
//	p.At(2).Parent()   // the <body> object
//	p.At(1).Partner()  // the </body> object
//
//	body := p.First(markup.Criteria{Name: markup.Eq("body")})  // nil if absent
//
// A Parser is not safe for concurrent use: Feed mutates it, and the derived
// views memoize their results on first access. Guard concurrent readers and
// writers with external synchronization.
package markup
