package lint

import (
	"path/filepath"
	"strings"

	"github.com/sdlcforge/makelint/internal/ast"
)

// AllChecks returns every registered inspection. Order here is cosmetic —
// the engine runs every check and lets internal/ordering sort the
// combined result by policy name, then span start.
func AllChecks() []Check {
	return []Check{
		{Name: "MISSING_FINAL_EOL", CheckFunc: checkMissingFinalEOL},
		{Name: "MAKEFILE_PRECEDENCE", CheckFunc: checkMakefilePrecedence},
		{Name: "CURDIR_ASSIGNMENT_NOP", CheckFunc: checkCurdirAssignmentNop},
		{Name: "WAIT_NOP", CheckFunc: checkWaitNop},
		{Name: "PHONY_NOP", CheckFunc: checkPhonyNop},
		{Name: "PHONY_TARGET", CheckFunc: checkPhonyTarget},
		{Name: "IMPLEMENTATION_DEFINED_TARGET", CheckFunc: checkImplementationDefinedTarget},
		{Name: "WD_NOP", CheckFunc: checkWdNop},
		{Name: "REDUNDANT_NOTPARALLEL_WAIT", CheckFunc: checkRedundantNotparallelWait},
		{Name: "REDUNDANT_SILENT_AT", CheckFunc: checkRedundantSilentAt},
		{Name: "REDUNDANT_IGNORE_MINUS", CheckFunc: checkRedundantIgnoreMinus},
		{Name: "GLOBAL_IGNORE", CheckFunc: checkGlobalIgnore},
		{Name: "SIMPLIFY_AT", CheckFunc: checkSimplifyAt},
		{Name: "SIMPLIFY_MINUS", CheckFunc: checkSimplifyMinus},
		{Name: "REPEATED_COMMAND_PREFIX", CheckFunc: checkRepeatedCommandPrefix},
		{Name: "BLANK_COMMAND", CheckFunc: checkBlankCommand},
		{Name: "COMMAND_COMMENT", CheckFunc: checkCommandComment},
		{Name: "NO_RULES", CheckFunc: checkNoRules},
		{Name: "RULE_ALL", CheckFunc: checkRuleAll},
		{Name: "STRICT_POSIX", CheckFunc: checkStrictPosix},
		{Name: "UB_LATE_POSIX_MARKER", CheckFunc: checkUBLatePosixMarker},
		{Name: "UB_AMBIGUOUS_INCLUDE", CheckFunc: checkUBAmbiguousInclude},
		{Name: "UB_MAKEFLAGS_ASSIGNMENT", CheckFunc: checkUBMakeflagsAssignment},
		{Name: "UB_SHELL_MACRO", CheckFunc: checkUBShellMacro},
	}
}

func checkMissingFinalEOL(ctx *CheckContext) []Warning {
	if ctx.File.HasFinalNewline {
		return nil
	}
	return []Warning{{
		Policy:  "MISSING_FINAL_EOL",
		Path:    ctx.File.Path,
		Message: "file does not end with a line feed",
		MitigationHint: "add a trailing newline",
	}}
}

func checkMakefilePrecedence(ctx *CheckContext) []Warning {
	if filepath.Base(ctx.File.Path) != "Makefile" {
		return nil
	}
	return []Warning{{
		Policy:  "MAKEFILE_PRECEDENCE",
		Path:    ctx.File.Path,
		Message: "basename 'Makefile' is searched after 'makefile' by some implementations",
		MitigationHint: "rename to 'makefile' for consistent precedence",
	}}
}

func checkCurdirAssignmentNop(ctx *CheckContext) []Warning {
	var warnings []Warning
	for _, m := range ctx.File.Macros() {
		if m.Name == "CURDIR" {
			warnings = append(warnings, warningAt("CURDIR_ASSIGNMENT_NOP", ctx.File.Path, m.Span,
				"assigning CURDIR has no effect; POSIX make sets it automatically",
				"remove the assignment"))
		}
	}
	return warnings
}

func checkWaitNop(ctx *CheckContext) []Warning {
	var warnings []Warning
	for _, r := range ctx.File.Rules() {
		for _, t := range r.Targets {
			if t == ".WAIT" {
				warnings = append(warnings, warningAt("WAIT_NOP", ctx.File.Path, r.Span,
					".WAIT has no meaning as a rule target; it is only meaningful as a prerequisite",
					"move .WAIT into a prerequisite list"))
			}
		}
	}
	return warnings
}

func checkPhonyNop(ctx *CheckContext) []Warning {
	var warnings []Warning
	for _, r := range ast.RulesWithTarget(ctx.File, ".PHONY") {
		if len(r.Prerequisites) == 0 && r.InlineCommand == nil && len(r.Commands) == 0 {
			warnings = append(warnings, warningAt("PHONY_NOP", ctx.File.Path, r.Span,
				".PHONY rule declares no targets and has no effect",
				"list the phony targets as prerequisites"))
		}
	}
	return warnings
}

// checkPhonyTarget is an inert stub. PHONY_TARGET ("a target is probably
// meant to be phony but isn't declared so") requires heuristics about
// command side effects this linter does not attempt to automate; the
// policy name is reserved and registered so downstream consumers can
// depend on its presence without the check itself firing.
func checkPhonyTarget(_ *CheckContext) []Warning {
	return nil
}

func checkImplementationDefinedTarget(ctx *CheckContext) []Warning {
	var warnings []Warning
	for _, r := range ctx.File.Rules() {
		for _, t := range r.Targets {
			if strings.ContainsAny(t, "%\"") {
				warnings = append(warnings, warningAt("IMPLEMENTATION_DEFINED_TARGET", ctx.File.Path, r.Span,
					"target name contains '%' or '\"', which POSIX leaves implementation-defined",
					"avoid '%' and '\"' in target names"))
				break
			}
		}
		for _, p := range r.Prerequisites {
			if strings.ContainsAny(p, "%\"") {
				warnings = append(warnings, warningAt("IMPLEMENTATION_DEFINED_TARGET", ctx.File.Path, r.Span,
					"prerequisite name contains '%' or '\"', which POSIX leaves implementation-defined",
					"avoid '%' and '\"' in prerequisite names"))
				break
			}
		}
	}
	return warnings
}

var workingDirVerbs = []string{"cd ", "pushd", "popd"}

func bodyStartsWithWorkingDirVerb(body string) bool {
	trimmed := strings.TrimLeft(body, " \t")
	for _, verb := range workingDirVerbs {
		if strings.HasPrefix(trimmed, verb) {
			return true
		}
	}
	return false
}

func checkWdNop(ctx *CheckContext) []Warning {
	var warnings []Warning
	for _, r := range ctx.File.Rules() {
		for _, c := range allCommands(r) {
			if bodyStartsWithWorkingDirVerb(c.Body) {
				warnings = append(warnings, warningAt("WD_NOP", ctx.File.Path, c.Span,
					"each command runs in a fresh shell; 'cd'/'pushd'/'popd' here has no effect on later commands",
					"chain with && on one command line instead"))
			}
		}
	}
	return warnings
}

func checkRedundantNotparallelWait(ctx *CheckContext) []Warning {
	hasNotParallel := len(ast.RulesWithTarget(ctx.File, ".NOTPARALLEL")) > 0
	if !hasNotParallel {
		return nil
	}
	var warnings []Warning
	for _, r := range ctx.File.Rules() {
		for _, p := range r.Prerequisites {
			if p == ".WAIT" {
				warnings = append(warnings, warningAt("REDUNDANT_NOTPARALLEL_WAIT", ctx.File.Path, r.Span,
					".WAIT is redundant once .NOTPARALLEL disables parallel execution for the whole file",
					"remove .WAIT or remove .NOTPARALLEL"))
				break
			}
		}
	}
	return warnings
}

// silentCoverage reports whether .SILENT applies globally (a zero-
// prerequisite .SILENT rule) and which explicit targets it names.
func silentCoverage(f *ast.File) (global bool, targets map[string]bool) {
	targets = map[string]bool{}
	for _, r := range ast.RulesWithTarget(f, ".SILENT") {
		if len(r.Prerequisites) == 0 {
			global = true
		}
		for _, p := range r.Prerequisites {
			targets[p] = true
		}
	}
	return global, targets
}

func checkRedundantSilentAt(ctx *CheckContext) []Warning {
	global, covered := silentCoverage(ctx.File)
	if !global && len(covered) == 0 {
		return nil
	}
	var warnings []Warning
	for _, r := range ctx.File.Rules() {
		if r.IsExemptFromWholeness() {
			continue
		}
		if !global && !ruleTargetsIntersect(r, covered) {
			continue
		}
		for _, c := range allCommands(r) {
			if c.HasPrefix('@') {
				warnings = append(warnings, warningAt("REDUNDANT_SILENT_AT", ctx.File.Path, c.Span,
					"'@' is redundant: .SILENT already suppresses command echoing here",
					"remove the '@' prefix"))
			}
		}
	}
	return warnings
}

func checkRedundantIgnoreMinus(ctx *CheckContext) []Warning {
	_, covered := ignoreCoverage(ctx.File)
	if len(covered) == 0 {
		return nil
	}
	var warnings []Warning
	for _, r := range ctx.File.Rules() {
		if r.IsExemptFromWholeness() {
			continue
		}
		if !ruleTargetsIntersect(r, covered) {
			continue
		}
		for _, c := range allCommands(r) {
			if c.HasPrefix('-') {
				warnings = append(warnings, warningAt("REDUNDANT_IGNORE_MINUS", ctx.File.Path, c.Span,
					"'-' is redundant: .IGNORE already suppresses this command's exit status here",
					"remove the '-' prefix"))
			}
		}
	}
	return warnings
}

func ignoreCoverage(f *ast.File) (global bool, targets map[string]bool) {
	targets = map[string]bool{}
	for _, r := range ast.RulesWithTarget(f, ".IGNORE") {
		if len(r.Prerequisites) == 0 {
			global = true
			continue
		}
		for _, p := range r.Prerequisites {
			targets[p] = true
		}
	}
	return global, targets
}

func checkGlobalIgnore(ctx *CheckContext) []Warning {
	var warnings []Warning
	for _, r := range ast.RulesWithTarget(ctx.File, ".IGNORE") {
		if len(r.Prerequisites) == 0 {
			warnings = append(warnings, warningAt("GLOBAL_IGNORE", ctx.File.Path, r.Span,
				"a global .IGNORE silently masks failures in every rule in the file",
				"scope .IGNORE to specific targets instead"))
		}
	}
	return warnings
}

func checkSimplifyAt(ctx *CheckContext) []Warning {
	return checkSimplifyPrefix(ctx, '@', "SIMPLIFY_AT",
		"every command in this rule carries '@'; use .SILENT for the whole rule instead",
		"replace with a .SILENT rule covering this target")
}

func checkSimplifyMinus(ctx *CheckContext) []Warning {
	return checkSimplifyPrefix(ctx, '-', "SIMPLIFY_MINUS",
		"every command in this rule carries '-'; use .IGNORE for the whole rule instead",
		"replace with an .IGNORE rule covering this target")
}

func checkSimplifyPrefix(ctx *CheckContext, glyph byte, policy, message, hint string) []Warning {
	var warnings []Warning
	for _, r := range ctx.File.Rules() {
		if len(r.Commands) < 2 {
			continue
		}
		allMatch := true
		for _, c := range r.Commands {
			if !c.HasPrefix(glyph) {
				allMatch = false
				break
			}
		}
		if allMatch {
			warnings = append(warnings, warningAt(policy, ctx.File.Path, r.Span, message, hint))
		}
	}
	return warnings
}

func checkRepeatedCommandPrefix(ctx *CheckContext) []Warning {
	var warnings []Warning
	for _, r := range ctx.File.Rules() {
		for _, c := range allCommands(r) {
			seen := map[byte]bool{}
			for _, g := range c.Prefixes {
				if seen[g] {
					warnings = append(warnings, warningAt("REPEATED_COMMAND_PREFIX", ctx.File.Path, c.Span,
						"the same prefix glyph appears more than once on this command",
						"keep at most one of each of '@', '+', '-'"))
					break
				}
				seen[g] = true
			}
		}
	}
	return warnings
}

func checkBlankCommand(ctx *CheckContext) []Warning {
	var warnings []Warning
	for _, r := range ctx.File.Rules() {
		for _, c := range allCommands(r) {
			if strings.TrimSpace(c.Body) == "" {
				warnings = append(warnings, warningAt("BLANK_COMMAND", ctx.File.Path, c.Span,
					"command body is empty after prefixes and whitespace",
					"remove the empty command line"))
			}
		}
	}
	return warnings
}

func checkCommandComment(ctx *CheckContext) []Warning {
	var warnings []Warning
	for _, r := range ctx.File.Rules() {
		for _, c := range allCommands(r) {
			if hasUnescapedHash(c.Body) {
				warnings = append(warnings, warningAt("COMMAND_COMMENT", ctx.File.Path, c.Span,
					"command body contains an unescaped '#'; some shells treat this as a comment start",
					"escape with '\\#' if the '#' is meant literally"))
			}
		}
	}
	return warnings
}

func hasUnescapedHash(body string) bool {
	for i := 0; i < len(body); i++ {
		if body[i] == '#' && (i == 0 || body[i-1] != '\\') {
			return true
		}
	}
	return false
}

func checkNoRules(ctx *CheckContext) []Warning {
	if ctx.Decision.IsIncludeFile || len(ctx.File.NonSpecialRules()) > 0 {
		return nil
	}
	return []Warning{{
		Policy:  "NO_RULES",
		Path:    ctx.File.Path,
		Message: "file declares no ordinary rules",
		MitigationHint: "add at least one rule, or name the file as an include file",
	}}
}

func checkRuleAll(ctx *CheckContext) []Warning {
	if ctx.Decision.IsIncludeFile {
		return nil
	}
	rules := ctx.File.NonSpecialRules()
	if len(rules) == 0 || rules[0].Targets[0] == "all" {
		return nil
	}
	return []Warning{warningAt("RULE_ALL", ctx.File.Path, rules[0].Span,
		"the first ordinary rule is not named 'all'; conventionally the default goal is 'all'",
		"reorder rules so 'all' is declared first, or add an 'all' rule")}
}

func checkStrictPosix(ctx *CheckContext) []Warning {
	if ctx.Decision.IsIncludeFile || ctx.Decision.IsImplementationSpecific {
		return nil
	}
	if len(ast.RulesWithTarget(ctx.File, ".POSIX")) > 0 {
		return nil
	}
	return []Warning{{
		Policy:  "STRICT_POSIX",
		Path:    ctx.File.Path,
		Message: "no '.POSIX:' special target; the file does not opt into strict POSIX mode",
		MitigationHint: "add '.POSIX:' as the first non-comment line",
	}}
}

func checkUBLatePosixMarker(ctx *CheckContext) []Warning {
	var posixRules []*ast.Rule
	firstSignificantIsPosix := false
	seenSignificant := false
	for i := range ctx.File.Items {
		item := ctx.File.Items[i]
		if item.Kind == ast.ItemComment {
			continue
		}
		isPosixRule := item.Kind == ast.ItemRule && len(item.Rule.Targets) > 0 && item.Rule.Targets[0] == ".POSIX" && containsTarget(item.Rule, ".POSIX")
		if !seenSignificant {
			seenSignificant = true
			firstSignificantIsPosix = isPosixRule
		}
		if item.Kind == ast.ItemRule && containsTarget(item.Rule, ".POSIX") {
			posixRules = append(posixRules, item.Rule)
		}
	}
	if len(posixRules) == 0 {
		return nil
	}

	var warnings []Warning
	if !firstSignificantIsPosix {
		warnings = append(warnings, warningAt("UB_LATE_POSIX_MARKER", ctx.File.Path, posixRules[0].Span,
			".POSIX: must be the first non-blank, non-comment line to take effect",
			"move '.POSIX:' to the top of the file"))
	}
	if len(posixRules) > 1 {
		for _, r := range posixRules[1:] {
			warnings = append(warnings, warningAt("UB_LATE_POSIX_MARKER", ctx.File.Path, r.Span,
				".POSIX: appears more than once",
				"declare '.POSIX:' exactly once"))
		}
	}
	for _, r := range posixRules {
		if len(r.Targets) > 1 {
			warnings = append(warnings, warningAt("UB_LATE_POSIX_MARKER", ctx.File.Path, r.Span,
				".POSIX: shares a rule declaration with other targets",
				"declare '.POSIX:' on its own line"))
		}
	}
	return warnings
}

func containsTarget(r *ast.Rule, name string) bool {
	for _, t := range r.Targets {
		if t == name {
			return true
		}
	}
	return false
}

func checkUBAmbiguousInclude(ctx *CheckContext) []Warning {
	var warnings []Warning
	for i := range ctx.File.Items {
		item := ctx.File.Items[i]
		if item.Kind != ast.ItemInclude || len(item.Include.Paths) == 0 {
			continue
		}
		if strings.HasPrefix(item.Include.Paths[0], "=") {
			warnings = append(warnings, warningAt("UB_AMBIGUOUS_INCLUDE", ctx.File.Path, item.Include.Span,
				"'include =...' reads as a path starting with '=', easily confused with a macro assignment",
				"add a space, or rename the path so it doesn't start with '='"))
		}
	}
	return warnings
}

func checkUBMakeflagsAssignment(ctx *CheckContext) []Warning {
	var warnings []Warning
	for _, m := range ctx.File.Macros() {
		if m.Name == "MAKEFLAGS" {
			warnings = append(warnings, warningAt("UB_MAKEFLAGS_ASSIGNMENT", ctx.File.Path, m.Span,
				"assigning MAKEFLAGS from within a makefile has implementation-defined behavior",
				"pass flags on the command line instead"))
		}
	}
	return warnings
}

func checkUBShellMacro(ctx *CheckContext) []Warning {
	var warnings []Warning
	for _, m := range ctx.File.Macros() {
		if m.Name == "SHELL" {
			warnings = append(warnings, warningAt("UB_SHELL_MACRO", ctx.File.Path, m.Span,
				"assigning SHELL has implementation-defined behavior across make implementations",
				"avoid overriding SHELL in portable makefiles"))
		}
	}
	return warnings
}

// allCommands returns every command belonging to a rule: its inline
// command, if any, followed by its indented commands in source order.
func allCommands(r *ast.Rule) []ast.CommandLine {
	var commands []ast.CommandLine
	if r.InlineCommand != nil {
		commands = append(commands, *r.InlineCommand)
	}
	commands = append(commands, r.Commands...)
	return commands
}

func ruleTargetsIntersect(r *ast.Rule, set map[string]bool) bool {
	for _, t := range r.Targets {
		if set[t] {
			return true
		}
	}
	return false
}
