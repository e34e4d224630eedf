package lint

import (
	"github.com/sdlcforge/makelint/internal/ast"
	"github.com/sdlcforge/makelint/internal/classify"
)

// Warning is one structural finding. Policy is a fixed, uppercase
// snake-case code; Message follows a per-policy template so downstream
// tooling can match on substrings.
type Warning struct {
	Policy         string `json:"policy"`
	Path           string `json:"path"`
	Line           int    `json:"line"`
	Column         int    `json:"column"`
	Message        string `json:"message"`
	MitigationHint string `json:"mitigation_hint,omitempty"`
}

// CheckContext is what every inspection reads from: the parsed AST, the
// classifier's decision for the file (some policies are suppressed for
// include files or implementation-specific makefiles), and the file path.
type CheckContext struct {
	File     *ast.File
	Decision classify.Decision
}

// CheckFunc performs one inspection and returns the warnings it found.
type CheckFunc func(ctx *CheckContext) []Warning

// Check pairs a policy name with the function that implements it.
type Check struct {
	Name      string
	CheckFunc CheckFunc
}

func warningAt(policy, path string, span ast.Span, message, hint string) Warning {
	return Warning{
		Policy:         policy,
		Path:           path,
		Line:           span.Pos.Line,
		Column:         span.Pos.Column,
		Message:        message,
		MitigationHint: hint,
	}
}
