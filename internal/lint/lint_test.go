package lint

import (
	"testing"

	"github.com/sdlcforge/makelint/internal/ast"
	"github.com/sdlcforge/makelint/internal/classify"
	"github.com/sdlcforge/makelint/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, path, src string) *ast.File {
	t.Helper()
	f, perr := parser.Parse(path, []byte(src))
	require.Nilf(t, perr, "unexpected parse error: %+v", perr)
	return f
}

func policies(warnings []Warning) []string {
	var names []string
	for _, w := range warnings {
		names = append(names, w.Policy)
	}
	return names
}

func TestLint_MissingFinalEOL(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "Makefile", "all:\n\techo hi")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "MISSING_FINAL_EOL")
}

func TestLint_MakefilePrecedence(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "Makefile", "all:\n\techo hi\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "MAKEFILE_PRECEDENCE")
}

func TestLint_CurdirAssignmentNop(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "CURDIR = /tmp\nall:\n\techo hi\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "CURDIR_ASSIGNMENT_NOP")
}

func TestLint_PhonyNop(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", ".PHONY:\nall:\n\techo hi\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "PHONY_NOP")
}

func TestLint_WdNop(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "all:\n\tcd build\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "WD_NOP")
}

func TestLint_SimplifyAt(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "all:\n\t@echo a\n\t@echo b\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "SIMPLIFY_AT")
}

func TestLint_RepeatedCommandPrefix(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "all:\n\t@@echo a\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "REPEATED_COMMAND_PREFIX")
}

func TestLint_BlankCommand(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "all: build\n\t\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "BLANK_COMMAND")
}

func TestLint_CommandComment(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "all:\n\techo hi # note\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "COMMAND_COMMENT")
}

func TestLint_NoRulesAndStrictPosix(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "PKG = curl\n")
	ws := Lint(f, classify.Decision{})
	names := policies(ws)
	assert.Contains(t, names, "NO_RULES")
	assert.Contains(t, names, "STRICT_POSIX")
}

func TestLint_NoRulesSuppressedForIncludeFile(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "common.include.mk", "PKG = curl\n")
	ws := Lint(f, classify.Decision{IsIncludeFile: true})
	assert.NotContains(t, policies(ws), "NO_RULES")
}

func TestLint_RuleAll(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "build:\n\techo hi\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "RULE_ALL")
}

func TestLint_UBAmbiguousInclude(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "include =foo.mk\nall:\n\techo hi\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "UB_AMBIGUOUS_INCLUDE")
}

func TestLint_UBLatePosixMarker(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", ".POSIX:\nall:\n\techo hi\n.POSIX:\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "UB_LATE_POSIX_MARKER")
}

func TestLint_UBShellMacroAndMakeflags(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "SHELL = /bin/bash\nMAKEFLAGS = -j4\nall:\n\techo hi\n")
	ws := Lint(f, classify.Decision{})
	names := policies(ws)
	assert.Contains(t, names, "UB_SHELL_MACRO")
	assert.Contains(t, names, "UB_MAKEFLAGS_ASSIGNMENT")
}

func TestLint_GlobalIgnore(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", ".IGNORE:\nall:\n\techo hi\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "GLOBAL_IGNORE")
}

func TestLint_RedundantSilentAt(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", ".SILENT:\nall:\n\t@echo hi\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "REDUNDANT_SILENT_AT")
}

func TestLint_RedundantIgnoreMinus(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", ".IGNORE: clean\nclean:\n\t-rm -rf build\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "REDUNDANT_IGNORE_MINUS")
}

func TestLint_SimplifyMinus(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "all:\n\t-echo a\n\t-echo b\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "SIMPLIFY_MINUS")
}

func TestLint_WaitNop(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", ".WAIT:\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "WAIT_NOP")
}

func TestLint_RedundantNotparallelWait(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", ".NOTPARALLEL:\nall: .WAIT build\n\techo hi\nbuild:\n\techo hi\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "REDUNDANT_NOTPARALLEL_WAIT")
}

func TestLint_ImplementationDefinedTarget(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "x.mk", "all%: build\n\techo hi\n")
	ws := Lint(f, classify.Decision{})
	assert.Contains(t, policies(ws), "IMPLEMENTATION_DEFINED_TARGET")
}

func TestLint_StablePolicyOrdering(t *testing.T) {
	t.Parallel()
	f := mustParse(t, "Makefile", "CURDIR = /tmp\nbuild:\n\techo hi")
	ws := Lint(f, classify.Decision{})
	names := policies(ws)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}
