package parser

import "github.com/sdlcforge/makelint/internal/ast"

type opLexeme struct {
	text string
	op   ast.AssignOp
}

// operatorTable is ordered longest-lexeme-first so matching is greedy:
// ":::=" must be tried before "::=" or it would never match.
var operatorTable = []opLexeme{
	{":::=", ast.OpImmediateColon},
	{"::=", ast.OpDeferredColon},
	{"?=", ast.OpConditional},
	{"!=", ast.OpShell},
	{"+=", ast.OpAppend},
	{"=", ast.OpEqual},
}

// matchOperator tries to match one of the six valid assignment operator
// lexemes at pos, returning the operator and the offset just past it.
func matchOperator(buf []byte, pos int) (ast.AssignOp, int, bool) {
	for _, o := range operatorTable {
		if hasPrefixAt(buf, pos, o.text) {
			return o.op, pos + len(o.text), true
		}
	}
	return 0, pos, false
}
