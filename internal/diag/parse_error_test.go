package diag

import (
	"testing"

	"github.com/sdlcforge/makelint/internal/source"
	"github.com/stretchr/testify/assert"
)

func TestNewParseError(t *testing.T) {
	t.Parallel()
	pos := source.Position{Line: 1, Column: 5}
	err := NewParseError("Makefile", pos, "\r", []string{".WAIT", "LF", "comment"})

	assert.Equal(t, "Makefile", err.Path)
	assert.Equal(t, 1, err.Line)
	assert.Equal(t, 5, err.Column)
	assert.Equal(t, `"\r"`, err.Found)
	assert.Contains(t, err.Error(), "Makefile:1:5")
	assert.Contains(t, err.Error(), `found "\r"`)
	assert.Contains(t, err.Error(), ".WAIT")
}
