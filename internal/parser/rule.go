package parser

import (
	"strings"

	"github.com/sdlcforge/makelint/internal/ast"
	"github.com/sdlcforge/makelint/internal/diag"
)

var expectedTargetOrColon = []string{"target", ":", "macro expansion"}

// expectedRuleBody lists what can satisfy the rule "wholeness" invariant:
// a rule needs a prerequisite, an inline command, or at least one
// indented command, unless it is exempt (sole target is a special
// target) or ends in the bare-";" reset form.
var expectedRuleBody = []string{"a prerequisite", `";" inline command`, "an indented command line"}

// parseRule consumes a rule header — one or more target names, ":", zero
// or more prerequisites, and an optional ";" inline command — followed by
// every indented command line that immediately follows it. Unlike macro
// values and include paths, a backslash-newline anywhere in the header
// (target list or prerequisite list) is always a parse error: strict
// POSIX continuation is legal only inside a macro value or a command.
func (p *parser) parseRule(start int) *diag.ParseError {
	targets, err := p.scanWordList(expectedTargetOrColon, true)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return p.errHereByte(expectedTargetOrColon)
	}
	if p.pos >= len(p.buf) || p.buf[p.pos] != ':' {
		return p.errHereByte(expectedTargetOrColon)
	}
	p.pos++ // consume ':'

	prereqs, err := p.scanWordList(expectedTopLevel, false)
	if err != nil {
		return err
	}

	var inline *ast.CommandLine
	if p.pos < len(p.buf) && p.buf[p.pos] == ';' {
		p.pos++
		cmd, cerr := p.scanCommandBody(true)
		if cerr != nil {
			return cerr
		}
		inline = &cmd
	}

	if p.pos < len(p.buf) && p.buf[p.pos] == '#' {
		for p.pos < len(p.buf) && p.buf[p.pos] != '\n' {
			p.pos++
		}
	}
	if p.pos < len(p.buf) && p.buf[p.pos] == '\r' {
		return p.errHereByte(expectedTopLevel)
	}
	if p.pos < len(p.buf) && p.buf[p.pos] != '\n' {
		return p.errHereByte(expectedTopLevel)
	}
	headerEnd := p.pos
	if p.pos < len(p.buf) {
		p.pos++ // consume LF
	}

	var commands []ast.CommandLine
	for p.pos < len(p.buf) && p.buf[p.pos] == '\t' {
		p.pos++
		cmd, cerr := p.scanCommandBody(false)
		if cerr != nil {
			return cerr
		}
		commands = append(commands, cmd)
		headerEnd = p.pos
	}

	rule := ast.Rule{
		Targets:       targets,
		Prerequisites: prereqs,
		InlineCommand: inline,
		Commands:      commands,
	}
	if len(prereqs) == 0 && inline == nil && len(commands) == 0 && !rule.IsExemptFromWholeness() {
		return p.errAt(headerEnd, p.byteStr(headerEnd), expectedRuleBody)
	}

	rule.Span = p.src.Span(start, headerEnd)
	p.builder.AddRule(rule)
	return nil
}

// scanWordList collects whitespace-separated words up to (but not
// consuming) one of ':', ';', '#', '\n', or EOF. stopAtColon controls
// whether ':' ends the list (the target list does; the prerequisite list
// doesn't expect one, but a stray ':' there is left for the caller to
// reject rather than silently consumed).
func (p *parser) scanWordList(expected []string, stopAtColon bool) ([]string, *diag.ParseError) {
	var words []string
	for {
		p.pos = skipSpaces(p.buf, p.pos)
		if p.pos >= len(p.buf) {
			return words, nil
		}
		switch p.buf[p.pos] {
		case '\n', ';', '#':
			return words, nil
		case '\r':
			return words, p.errHereByte(expected)
		case ':':
			if stopAtColon {
				return words, nil
			}
			return words, p.errHereByte(expected)
		}
		if atEscapedNewline(p.buf, p.pos) || atDanglingEscape(p.buf, p.pos) {
			return words, p.errAt(p.pos, "\\", []string{"LF (no continuation allowed here)"})
		}
		end := readWord(p.buf, p.pos)
		if end == p.pos {
			return words, p.errHereByte(expected)
		}
		words = append(words, string(p.buf[p.pos:end]))
		p.pos = end
	}
}

// scanCommandBody consumes one command: zero or more prefix glyphs
// (@, -, +) followed by shell text, honoring verbatim-preserved
// backslash-newline continuation. inline is true for the ";"-introduced
// header command, where leading whitespace before the glyphs is skipped
// and the terminating LF is left for parseRule to consume as the end of
// the header; indented commands have already had their leading tab
// consumed by the caller, and their LF is consumed here.
func (p *parser) scanCommandBody(inline bool) (ast.CommandLine, *diag.ParseError) {
	if inline {
		p.pos = skipSpaces(p.buf, p.pos)
	}
	start := p.pos

	var prefixes []byte
	for p.pos < len(p.buf) {
		switch p.buf[p.pos] {
		case '@', '-', '+':
			prefixes = append(prefixes, p.buf[p.pos])
			p.pos++
			continue
		}
		break
	}

	var body strings.Builder
	for {
		if p.pos >= len(p.buf) || p.buf[p.pos] == '\n' {
			break
		}
		switch {
		case p.buf[p.pos] == '\r':
			return ast.CommandLine{}, p.errHereByte([]string{"LF", "command text"})
		case atDanglingEscape(p.buf, p.pos):
			return ast.CommandLine{}, p.errAt(p.pos, "\\", []string{"\"\\\" immediately followed by LF"})
		case atEscapedNewline(p.buf, p.pos):
			body.WriteByte('\\')
			body.WriteByte('\n')
			p.pos += 2
			if p.pos >= len(p.buf) {
				return ast.CommandLine{}, p.errAt(p.pos, "EOF", []string{"command text"})
			}
			if p.buf[p.pos] == '\t' {
				p.pos++
			}
			continue
		default:
			body.WriteByte(p.buf[p.pos])
			p.pos++
		}
	}

	span := p.src.Span(start, p.pos)
	if !inline && p.pos < len(p.buf) {
		p.pos++ // consume LF; an inline command leaves it for the header
	}

	return ast.CommandLine{Span: span, Prefixes: prefixes, Body: body.String()}, nil
}
