package parser

import (
	"github.com/sdlcforge/makelint/internal/ast"
	"github.com/sdlcforge/makelint/internal/diag"
	"github.com/sdlcforge/makelint/internal/source"
)

// parser holds the scanning cursor and accumulated AST for one file.
type parser struct {
	path    string
	buf     []byte
	src     *source.File
	pos     int
	builder *ast.Builder
}

// Parse scans raw bytes from path into an AST, or returns the single
// ParseError describing the first syntactic violation. raw is assumed to
// already be valid UTF-8 (internal/source.Load enforces this as an I/O
// precondition before parsing is ever attempted); the fallback below only
// guards a caller that skips that step.
func Parse(path string, raw []byte) (*ast.File, *diag.ParseError) {
	src, err := source.FromBytes(path, raw)
	if err != nil {
		return nil, &diag.ParseError{
			Path:     path,
			Line:     1,
			Column:   1,
			Found:    diag.Quote("invalid UTF-8"),
			Expected: []string{"valid UTF-8 input"},
		}
	}

	p := &parser{
		path:    path,
		buf:     raw,
		src:     src,
		builder: ast.NewBuilder(path),
	}

	for p.pos < len(p.buf) {
		if perr := p.parseOne(); perr != nil {
			return nil, perr
		}
	}

	return p.builder.Build(src.HasFinalNewline), nil
}

// errAt builds a ParseError for the byte at pos.
func (p *parser) errAt(pos int, found string, expected []string) *diag.ParseError {
	return diag.NewParseError(p.path, p.src.PositionAt(pos), found, expected)
}

// errHereByte reports the single byte at the cursor as unexpected.
func (p *parser) errHereByte(expected []string) *diag.ParseError {
	return p.errAt(p.pos, p.byteStr(p.pos), expected)
}

func (p *parser) byteStr(pos int) string {
	if pos >= len(p.buf) {
		return "EOF"
	}
	return string(p.buf[pos])
}

// parseOne consumes exactly one top-level construct at the cursor.
func (p *parser) parseOne() *diag.ParseError {
	if p.pos >= len(p.buf) {
		return nil
	}

	switch p.buf[p.pos] {
	case '\n':
		p.pos++
		return nil
	case '\r':
		return p.errHereByte(expectedTopLevel)
	case '\t':
		return p.errHereByte([]string{"a command line following a rule header"})
	case ' ':
		return p.parseLeadingWhitespace()
	case '#':
		return p.parseComment()
	default:
		if hasPrefixAt(p.buf, p.pos, "include") && p.pos+len("include") < len(p.buf) && isSpace(p.buf[p.pos+len("include")]) {
			return p.parseInclude()
		}
		return p.parseMacroOrRule()
	}
}

// parseLeadingWhitespace handles a line starting with a plain space: legal
// only if the rest of the line is blank, or if a comment follows the
// spaces (leading whitespace before a comment is explicitly permitted).
func (p *parser) parseLeadingWhitespace() *diag.ParseError {
	lineStart := p.pos
	i := skipSpaces(p.buf, p.pos)

	if i >= len(p.buf) || p.buf[i] == '\n' {
		p.pos = i
		if p.pos < len(p.buf) {
			p.pos++
		}
		return nil
	}
	if p.buf[i] == '#' {
		p.pos = i
		return p.parseComment()
	}

	p.pos = lineStart
	return p.errHereByte([]string{"LF", "comment"})
}

func (p *parser) parseComment() *diag.ParseError {
	start := p.pos
	for p.pos < len(p.buf) && p.buf[p.pos] != '\n' {
		if p.buf[p.pos] == '\r' {
			return p.errHereByte(expectedTopLevel)
		}
		p.pos++
	}
	text := string(p.buf[start:p.pos])
	span := p.src.Span(start, p.pos)
	if p.pos < len(p.buf) {
		p.pos++ // consume LF
	}
	p.builder.AddComment(ast.Comment{Span: span, Text: text})
	return nil
}

// parseMacroOrRule disambiguates a MacroDefinition from a Rule header by
// looking ahead past the first word for one of the six assignment
// operator lexemes (or the deliberately-invalid "independent ":="
// attempt). Anything else is a rule header, and the first word was its
// first target name.
func (p *parser) parseMacroOrRule() *diag.ParseError {
	start := p.pos
	nameEnd := readIdentifier(p.buf, start)
	afterName := skipSpaces(p.buf, nameEnd)

	if nameEnd > start && looksLikeMacroName(p.buf, start, nameEnd) {
		if hasPrefixAt(p.buf, afterName, ":=") && !hasPrefixAt(p.buf, afterName, "::=") {
			return p.errAt(afterName, ":", expectedOperators)
		}
		if _, _, ok := matchOperator(p.buf, afterName); ok {
			return p.parseMacro(start, nameEnd, afterName)
		}
	}

	return p.parseRule(start)
}
