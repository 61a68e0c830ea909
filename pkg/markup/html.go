package markup

import "strings"

// HTMLRules returns partnering rules for HTML-style markup: case-insensitive
// tag names, void elements, and the usual implicit closings for paragraphs,
// list items, table structure, and the document skeleton.
//
// Each call returns a fresh value; callers may adjust the tables before
// handing them to New.
func HTMLRules() *Rules {
	return &Rules{
		NameEqual: EqualFold,
		Canon:     strings.ToLower,
		Singular: map[string]bool{
			"br": true, "embed": true, "hr": true, "img": true,
			"input": true, "link": true, "param": true,
		},
		ClosedByOpen: map[string][]string{
			"p":     {"p"},
			"li":    {"li"},
			"dt":    {"dt", "dd"},
			"dd":    {"dt", "dd"},
			"th":    {"th", "td", "tr"},
			"td":    {"th", "td", "tr"},
			"tr":    {"tr"},
			"thead": {"tbody", "tfoot"},
			"tbody": {"tbody", "tfoot"},
			"head":  {"body"},
		},
		ClosedByClose: map[string][]string{
			"li":    {"ul", "ol"},
			"dt":    {"dl"},
			"dd":    {"dl"},
			"th":    {"table"},
			"td":    {"table"},
			"tr":    {"table"},
			"tbody": {"table"},
			"tfoot": {"table"},
			"body":  {"html"},
		},
		ClosedByEOF: map[string]bool{
			"body": true, "html": true,
		},
	}
}

// NewHTML builds a parser over src using HTMLRules and the full HTML entity
// set. Other options come from opts, which may be nil.
func NewHTML(src string, opts *Options) *Parser {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Rules == nil {
		o.Rules = HTMLRules()
	}
	if o.Entities == nil {
		o.Entities = HTMLEntities
	}
	return New(src, &o)
}
