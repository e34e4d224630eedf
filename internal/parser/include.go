package parser

import (
	"github.com/sdlcforge/makelint/internal/ast"
	"github.com/sdlcforge/makelint/internal/diag"
)

// readIncludeWord scans a maximal run of non-whitespace, non-newline,
// non-quote bytes — a single path token within an include directive. It
// stops before a "\" that begins a continuation so the caller rejects it.
func readIncludeWord(buf []byte, pos int) int {
	for pos < len(buf) {
		switch buf[pos] {
		case ' ', '\t', '\n', '\r', '"':
			return pos
		}
		if atEscapedNewline(buf, pos) || atDanglingEscape(buf, pos) {
			return pos
		}
		pos++
	}
	return pos
}

// parseInclude consumes an `include` directive. No quote characters and no
// escaped newline are permitted anywhere in the logical line; both are
// parse errors rather than being tolerated or silently collapsed.
func (p *parser) parseInclude() *diag.ParseError {
	start := p.pos
	p.pos += len("include")
	p.pos = skipSpaces(p.buf, p.pos)

	var paths []string
	for p.pos < len(p.buf) && p.buf[p.pos] != '\n' {
		switch {
		case p.buf[p.pos] == '\r':
			return p.errHereByte([]string{"LF", "path"})
		case p.buf[p.pos] == '"':
			return p.errHereByte([]string{"path without quote characters"})
		case atEscapedNewline(p.buf, p.pos), atDanglingEscape(p.buf, p.pos):
			return p.errAt(p.pos, "\\", []string{"LF (no continuation allowed in include)"})
		case isSpace(p.buf[p.pos]):
			p.pos = skipSpaces(p.buf, p.pos)
		default:
			end := readIncludeWord(p.buf, p.pos)
			paths = append(paths, string(p.buf[p.pos:end]))
			p.pos = end
		}
	}

	if len(paths) == 0 {
		return p.errHereByte([]string{"at least one path"})
	}

	span := p.src.Span(start, p.pos)
	if p.pos < len(p.buf) {
		p.pos++ // consume LF
	}
	p.builder.AddInclude(ast.Include{Span: span, Paths: paths})
	return nil
}
