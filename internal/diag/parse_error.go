package diag

import (
	"fmt"
	"strings"

	"github.com/sdlcforge/makelint/internal/source"
)

// ParseError is the single structured error a parse can produce. Parsing
// stops at the first syntactic violation, so at most one ParseError exists
// per file.
type ParseError struct {
	// Path is the file being parsed.
	Path string `json:"path"`

	// Line is the 1-based physical line of the first offending byte.
	Line int `json:"line"`

	// Column is the 1-based UTF-8 code point column of the first offending byte.
	Column int `json:"column"`

	// Found is the unexpected byte sequence, rendered with standard escapes.
	Found string `json:"found"`

	// Expected lists the grammar productions that would have been accepted
	// at this position.
	Expected []string `json:"expected"`
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: found %s, expected one of %s",
		e.Path, e.Line, e.Column, e.Found, strings.Join(e.Expected, ", "))
}

// NewParseError builds a ParseError from a source position and the literal
// unexpected text, escaping the text for display.
func NewParseError(path string, pos source.Position, found string, expected []string) *ParseError {
	return &ParseError{
		Path:     path,
		Line:     pos.Line,
		Column:   pos.Column,
		Found:    Quote(found),
		Expected: expected,
	}
}
