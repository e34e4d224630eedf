// Package parser implements a hand-rolled, strict-POSIX-make lexer and
// parser. It produces an internal/ast.File from raw makefile bytes, or a
// single internal/diag.ParseError at the first syntactic violation.
//
// # Scanning model
//
// Parsing is a single left-to-right pass over the byte buffer using a
// cursor, not a pre-tokenized stream and not a suspended-coroutine
// abstraction: each call to parseOne consumes exactly one top-level
// construct (a blank line, a comment, a macro definition, an include
// directive, or a rule together with all of the indented command lines
// that immediately follow its header) and leaves the cursor at the start
// of the next one. Because the cursor never rewinds past a byte it has
// already accepted, the first syntactic violation encountered is
// necessarily the earliest one in the file, and parsing stops there.
//
// # Line dispatch
//
// The byte at the start of a line decides what it can be:
//
//	'\n'            blank line, ignored
//	'\r'            always a parse error — CR is not a permitted byte
//	'\t'            a command line; only valid while a rule is still
//	                accepting commands (see Rule parsing below)
//	' '             leading whitespace; valid only if the rest of the
//	                line is blank, or if what follows (after the spaces)
//	                is a comment
//	'#'             a comment
//	"include" + ws  an include directive — this keyword short-circuits
//	                the macro-vs-rule-header decision below; "include"
//	                can never be a macro name
//	anything else   a macro name lookahead decides between
//	                MacroDefinition and Rule header (see operators.go)
//
// # Rule parsing
//
// A rule header's own scan loop immediately consumes every subsequent
// tab-prefixed physical line as one of its CommandLines before returning
// control to the top-level dispatch loop. This means a CommandLine is
// only ever reachable from the top-level dispatch when no rule is
// currently being built — which is exactly the "error if none" case the
// data model's CommandLine ownership invariant describes.
//
// # Continuation
//
// A trailing, unescaped "\" immediately before a line feed continues the
// logical line. Outside command lines this is legal ONLY while scanning a
// macro definition's value, where it collapses (escape, newline, and the
// next line's leading whitespace) to a single space; everywhere else
// outside a command (macro name, operator, rule header, prerequisites,
// include paths) a continuation attempt is a parse error. Inside a
// command body the continuation is preserved verbatim instead of
// collapsed, and the following physical line's leading tab (if any) is
// stripped without being required.
package parser
