package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWholeness(t *testing.T) {
	t.Parallel()

	t.Run("complete rule passes", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder("test.mk")
		b.AddRule(Rule{Targets: []string{"all"}, Prerequisites: []string{"build"}})
		require.NoError(t, ValidateWholeness(b.Build(true)))
	})

	t.Run("exempt special target passes", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder("test.mk")
		b.AddRule(Rule{Targets: []string{".PHONY"}})
		require.NoError(t, ValidateWholeness(b.Build(true)))
	})

	t.Run("reset form passes", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder("test.mk")
		b.AddRule(Rule{Targets: []string{"foo"}, InlineCommand: &CommandLine{}})
		require.NoError(t, ValidateWholeness(b.Build(true)))
	})

	t.Run("bare rule fails", func(t *testing.T) {
		t.Parallel()
		b := NewBuilder("test.mk")
		b.AddRule(Rule{Targets: []string{"foo"}})
		assert.Error(t, ValidateWholeness(b.Build(true)))
	})
}

func TestFindMacro(t *testing.T) {
	t.Parallel()
	b := NewBuilder("test.mk")
	b.AddMacro(MacroDefinition{Name: "SHELL", Value: "/bin/sh"})
	b.AddMacro(MacroDefinition{Name: "SHELL", Value: "/bin/bash"})
	f := b.Build(true)

	m := FindMacro(f, "SHELL")
	require.NotNil(t, m)
	assert.Equal(t, "/bin/bash", m.Value)

	assert.Nil(t, FindMacro(f, "CURDIR"))
	assert.Len(t, MacrosNamed(f, "SHELL"), 2)
}

func TestRulesWithTarget(t *testing.T) {
	t.Parallel()
	b := NewBuilder("test.mk")
	b.AddRule(Rule{Targets: []string{"all", "default"}})
	b.AddRule(Rule{Targets: []string{"all"}, Prerequisites: []string{"x"}})
	f := b.Build(true)

	rules := RulesWithTarget(f, "all")
	assert.Len(t, rules, 2)
	assert.Empty(t, RulesWithTarget(f, "missing"))
}
