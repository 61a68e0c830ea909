package markup

import "sort"

// lineIndex returns the byte offsets of the newline characters in the input,
// building the index on first use.
func (p *Parser) lineIndex() []int {
	if p.lines == nil {
		p.lines = make([]int, 0, 16)
		for i := 0; i < len(p.input); i++ {
			if p.input[i] == '\n' {
				p.lines = append(p.lines, i)
			}
		}
	}
	return p.lines
}

// LineCount returns the number of lines in the input. An empty input has one
// line, and input ending in a newline has a final empty line.
func (p *Parser) LineCount() int { return len(p.lineIndex()) + 1 }

// lineSpan returns the [start, end) byte range of the 1-based line number,
// excluding the terminating newline. It reports false for line numbers out
// of range.
func (p *Parser) lineSpan(line int) (Span, bool) {
	nl := p.lineIndex()
	if line < 1 || line > len(nl)+1 {
		return Span{}, false
	}
	start := 0
	if line > 1 {
		start = nl[line-2] + 1
	}
	end := len(p.input)
	if line <= len(nl) {
		end = nl[line-1]
	}
	return Span{start, end}, true
}

// Line returns the text of the 1-based line number, without its terminating
// newline. It reports false for line numbers out of range.
func (p *Parser) Line(line int) (string, bool) {
	sp, ok := p.lineSpan(line)
	if !ok {
		return "", false
	}
	return p.input[sp.Start:sp.End], true
}

// LinePos converts the byte offset pos into a 1-based line number and a
// 0-based byte offset within that line. A newline character belongs to the
// line it terminates, and pos == len(Input) addresses the position just past
// the last line. Out-of-range offsets yield (0, 0).
func (p *Parser) LinePos(pos int) (line, off int) {
	if pos < 0 || pos > len(p.input) {
		return 0, 0
	}
	nl := p.lineIndex()
	i := sort.SearchInts(nl, pos)
	start := 0
	if i > 0 {
		start = nl[i-1] + 1
	}
	return i + 1, pos - start
}

// Column converts the byte offset pos into a 1-based line number and a
// 0-based column, expanding tabs to the parser's tab width. A tab advances
// the column to the next multiple of the tab width. Out-of-range offsets
// yield (0, 0).
func (p *Parser) Column(pos int) (line, col int) {
	line, off := p.LinePos(pos)
	if line == 0 {
		return 0, 0
	}
	start := pos - off
	for i := start; i < pos; i++ {
		if p.input[i] == '\t' {
			col = (col/p.tabWidth + 1) * p.tabWidth
		} else {
			col++
		}
	}
	return line, col
}

// Offset converts a 1-based line number and 0-based byte offset within the
// line back into an input offset. The offset may address any byte of the
// line or the position just past its last byte. It reports false when the
// location does not exist.
func (p *Parser) Offset(line, pos int) (int, bool) {
	sp, ok := p.lineSpan(line)
	if !ok || pos < 0 || pos > sp.Len() {
		return 0, false
	}
	return sp.Start + pos, true
}

// ColumnOffset converts a 1-based line number and 0-based tab-expanded
// column back into an input offset. A column falling inside a tab expansion
// addresses the tab itself. It reports false when the location does not
// exist.
func (p *Parser) ColumnOffset(line, col int) (int, bool) {
	sp, ok := p.lineSpan(line)
	if !ok || col < 0 {
		return 0, false
	}
	cur := 0
	for i := sp.Start; i < sp.End; i++ {
		next := cur + 1
		if p.input[i] == '\t' {
			next = (cur/p.tabWidth + 1) * p.tabWidth
		}
		if col < next {
			return i, true
		}
		cur = next
	}
	if col == cur {
		return sp.End, true
	}
	return 0, false
}

// TabWidth returns the tab expansion width used by Column and ColumnOffset.
func (p *Parser) TabWidth() int { return p.tabWidth }
