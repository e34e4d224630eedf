package lint

import (
	"github.com/sdlcforge/makelint/internal/ast"
	"github.com/sdlcforge/makelint/internal/classify"
	"github.com/sdlcforge/makelint/internal/ordering"
)

// Lint runs every registered inspection against f and returns the
// combined, stably-ordered warning list. It is the sole entry point
// external/callers (the CLI) are expected to use; AllChecks and the
// individual check functions exist mainly so tests can target one policy
// at a time.
func Lint(f *ast.File, decision classify.Decision) []Warning {
	ctx := &CheckContext{File: f, Decision: decision}

	var warnings []Warning
	for _, check := range AllChecks() {
		warnings = append(warnings, check.CheckFunc(ctx)...)
	}

	ordering.SortByKey(warnings, func(w Warning) ordering.Key {
		return ordering.Key{Policy: w.Policy, Line: w.Line, Column: w.Column}
	})
	return warnings
}
