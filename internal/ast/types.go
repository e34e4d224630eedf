package ast

import "github.com/sdlcforge/makelint/internal/source"

// ItemKind discriminates the four top-level item variants.
type ItemKind int

const (
	// ItemComment is a standalone comment line.
	ItemComment ItemKind = iota

	// ItemMacro is a macro (variable) definition.
	ItemMacro

	// ItemInclude is an include directive.
	ItemInclude

	// ItemRule is a rule header plus its owned commands.
	ItemRule
)

// String returns the string representation of ItemKind.
func (k ItemKind) String() string {
	switch k {
	case ItemComment:
		return "comment"
	case ItemMacro:
		return "macro"
	case ItemInclude:
		return "include"
	case ItemRule:
		return "rule"
	default:
		return "unknown"
	}
}

// AssignOp is one of the six POSIX macro assignment operators. `:=` is
// deliberately absent: strict POSIX treats it as a parse error.
type AssignOp int

const (
	// OpEqual is plain recursive assignment: "=".
	OpEqual AssignOp = iota

	// OpDeferredColon is "::=" (POSIX 2024 deferred expansion assignment).
	OpDeferredColon

	// OpImmediateColon is ":::=" (POSIX 2024 immediate expansion assignment).
	OpImmediateColon

	// OpConditional is "?=": assign only if not already defined.
	OpConditional

	// OpShell is "!=": assign the output of a shell command.
	OpShell

	// OpAppend is "+=": append to an existing value.
	OpAppend
)

// String returns the operator's literal spelling.
func (op AssignOp) String() string {
	switch op {
	case OpEqual:
		return "="
	case OpDeferredColon:
		return "::="
	case OpImmediateColon:
		return ":::="
	case OpConditional:
		return "?="
	case OpShell:
		return "!="
	case OpAppend:
		return "+="
	default:
		return "?"
	}
}

// Comment is a standalone comment item.
type Comment struct {
	Span source.Span
	Text string
}

// MacroDefinition is a macro (variable) assignment.
type MacroDefinition struct {
	Span  source.Span
	Name  string
	Op    AssignOp
	Value string
}

// Include is one `include` directive naming one or more paths.
type Include struct {
	Span  source.Span
	Paths []string
}

// CommandLine is one recipe line belonging to a Rule: zero or more prefix
// glyphs (@, -, +, possibly repeated) followed by shell text.
type CommandLine struct {
	Span Span

	// Prefixes preserves the exact glyph sequence encountered, in order,
	// including duplicates — REPEATED_COMMAND_PREFIX depends on seeing
	// them, not on a deduplicated set.
	Prefixes []byte

	// Body is the remaining command text after the prefix glyphs, with any
	// escaped newlines preserved verbatim.
	Body string
}

// Span is source.Span, aliased here so AST call sites don't need to import
// internal/source directly for the common case.
type Span = source.Span

// HasPrefix reports whether glyph appears anywhere in the command's prefix
// sequence.
func (c CommandLine) HasPrefix(glyph byte) bool {
	for _, p := range c.Prefixes {
		if p == glyph {
			return true
		}
	}
	return false
}

// Rule is a rule header (targets : prerequisites [; inline command]) plus
// its owned indented commands.
type Rule struct {
	Span          source.Span
	Targets       []string
	Prerequisites []string

	// InlineCommand is the command following a bare ";" on the header
	// line, or nil if there is none.
	InlineCommand *CommandLine

	// Commands are the indented (tab-prefixed) command lines that follow
	// the header, in source order.
	Commands []CommandLine
}

// IsReset reports whether the rule is the reset form (a header ending in a
// bare ";" with nothing after it): "foo:;".
func (r Rule) IsReset() bool {
	return r.InlineCommand != nil && r.InlineCommand.Body == "" && len(r.InlineCommand.Prefixes) == 0
}

// specialTargets are the exempt targets the wholeness rule does not apply
// to: a rule whose sole target is one of these needs no prerequisite,
// inline command, or indented command.
var specialTargets = map[string]bool{
	".POSIX":       true,
	".IGNORE":      true,
	".NOTPARALLEL": true,
	".PHONY":       true,
	".PRECIOUS":    true,
	".SILENT":      true,
	".SUFFIXES":    true,
	".WAIT":        true,
}

// IsSpecial reports whether name is a reserved POSIX special target.
func IsSpecial(name string) bool {
	return specialTargets[name]
}

// IsExemptFromWholeness reports whether the rule is exempt from the
// wholeness invariant (at least one prerequisite, inline command, or
// indented command) because its sole target is a special target.
func (r Rule) IsExemptFromWholeness() bool {
	return len(r.Targets) == 1 && IsSpecial(r.Targets[0])
}

// Item is a single top-level construct: exactly one of Comment, Macro,
// Include, or Rule is populated, selected by Kind.
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Comment *Comment
	Macro   *MacroDefinition
	Include *Include
	Rule    *Rule
}

// File is the complete parsed AST of one makefile.
type File struct {
	// Path is the file the AST was parsed from.
	Path string

	// Items are the top-level constructs in source order.
	Items []Item

	// HasFinalNewline is carried from source.File so lint inspections
	// don't need a second load of the raw bytes to compute MISSING_FINAL_EOL.
	HasFinalNewline bool
}

// Rules returns every ItemRule item's Rule, in source order.
func (f *File) Rules() []*Rule {
	var rules []*Rule
	for i := range f.Items {
		if f.Items[i].Kind == ItemRule {
			rules = append(rules, f.Items[i].Rule)
		}
	}
	return rules
}

// Macros returns every ItemMacro item's MacroDefinition, in source order.
func (f *File) Macros() []*MacroDefinition {
	var macros []*MacroDefinition
	for i := range f.Items {
		if f.Items[i].Kind == ItemMacro {
			macros = append(macros, f.Items[i].Macro)
		}
	}
	return macros
}

// NonSpecialRules returns every rule whose targets are not exclusively a
// single special target — the rules NO_RULES and RULE_ALL care about.
func (f *File) NonSpecialRules() []*Rule {
	var rules []*Rule
	for _, r := range f.Rules() {
		if !r.IsExemptFromWholeness() {
			rules = append(rules, r)
		}
	}
	return rules
}

// RuleForTarget returns the first rule declaring target among its Targets,
// or nil if none does.
func (f *File) RuleForTarget(target string) *Rule {
	for _, r := range f.Rules() {
		for _, t := range r.Targets {
			if t == target {
				return r
			}
		}
	}
	return nil
}
