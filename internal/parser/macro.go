package parser

import (
	"strings"

	"github.com/sdlcforge/makelint/internal/ast"
	"github.com/sdlcforge/makelint/internal/diag"
)

// expectedValueContinuation lists what may follow inside a macro value
// where a stray byte (such as CR) was found instead.
var expectedValueContinuation = []string{"LF", "macro value text"}

// parseMacro consumes a macro definition whose name is buf[start:nameEnd]
// and whose operator lexeme begins at opStart (already confirmed by the
// caller to match one of the six valid operators).
func (p *parser) parseMacro(start, nameEnd, opStart int) *diag.ParseError {
	name := string(p.buf[start:nameEnd])
	op, valueStart, ok := matchOperator(p.buf, opStart)
	if !ok {
		// Unreachable: the caller only calls parseMacro after confirming a match.
		return p.errAt(opStart, "operator", expectedOperators)
	}

	valueStart = skipSpaces(p.buf, valueStart)

	var value strings.Builder
	pos := valueStart
	for {
		if pos >= len(p.buf) {
			break
		}
		switch {
		case p.buf[pos] == '\n':
			goto done
		case p.buf[pos] == '\r':
			return p.errAt(pos, p.byteStr(pos), expectedValueContinuation)
		case atDanglingEscape(p.buf, pos):
			return p.errAt(pos, "\\", []string{"\"\\\" immediately followed by LF"})
		case atEscapedNewline(p.buf, pos):
			value.WriteByte(' ')
			pos += 2 // skip "\\\n"
			if pos >= len(p.buf) {
				return p.errAt(pos, "EOF", []string{"macro value text"})
			}
			pos = skipSpaces(p.buf, pos)
			continue
		default:
			value.WriteByte(p.buf[pos])
			pos++
		}
	}
done:

	span := p.src.Span(start, pos)
	if pos < len(p.buf) {
		pos++ // consume the terminating LF
	}
	p.pos = pos

	p.builder.AddMacro(ast.MacroDefinition{
		Span:  span,
		Name:  name,
		Op:    op,
		Value: value.String(),
	})
	return nil
}
