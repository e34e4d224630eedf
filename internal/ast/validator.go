package ast

import "fmt"

// ValidateWholeness re-checks the rule "wholeness" invariant against an
// already-built File: every rule must have at least one prerequisite, an
// inline command, or at least one indented command, unless it is exempt
// (sole target is a special target) or ends in the bare-";" reset form.
//
// The parser itself is the authoritative enforcer of this invariant (it
// must fail at the right source position, which only it can compute); this
// function exists as an independent cross-check for tests, the way the
// teacher corpus's ValidateCategorization rechecks a model invariant that
// the builder is also supposed to have enforced along the way.
func ValidateWholeness(f *File) error {
	for _, r := range f.Rules() {
		if r.IsExemptFromWholeness() || r.IsReset() {
			continue
		}
		if len(r.Prerequisites) == 0 && r.InlineCommand == nil && len(r.Commands) == 0 {
			return fmt.Errorf("rule %v violates wholeness: no prerequisites, inline command, or commands", r.Targets)
		}
	}
	return nil
}

// FindMacro returns the last MacroDefinition assigning to name, or nil if
// none does. POSIX make's "last assignment wins" semantics for `=` are not
// evaluated by this linter, but lint inspections that key off whether a
// particular macro was ever assigned (CURDIR_ASSIGNMENT_NOP,
// UB_MAKEFLAGS_ASSIGNMENT, UB_SHELL_MACRO) need to find any occurrence.
func FindMacro(f *File, name string) *MacroDefinition {
	var found *MacroDefinition
	for _, m := range f.Macros() {
		if m.Name == name {
			found = m
		}
	}
	return found
}

// MacrosNamed returns every MacroDefinition assigning to name, in source order.
func MacrosNamed(f *File, name string) []*MacroDefinition {
	var found []*MacroDefinition
	for _, m := range f.Macros() {
		if m.Name == name {
			found = append(found, m)
		}
	}
	return found
}

// RulesWithTarget returns every rule that declares target among its Targets.
func RulesWithTarget(f *File, target string) []*Rule {
	var found []*Rule
	for _, r := range f.Rules() {
		for _, t := range r.Targets {
			if t == target {
				found = append(found, r)
				break
			}
		}
	}
	return found
}
