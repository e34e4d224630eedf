package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMakefile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func runCmd(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return buf.String(), err
}

func TestRootCmd_CleanMakefileExitsNil(t *testing.T) {
	dir := t.TempDir()
	writeMakefile(t, dir, "makefile", ".POSIX:\nall:\n\techo hi\n")

	out, err := runCmd(t, "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "no issues found")
}

func TestRootCmd_WarningsReturnErrWarningsFound(t *testing.T) {
	dir := t.TempDir()
	writeMakefile(t, dir, "Makefile", "all:\n\techo hi")

	out, err := runCmd(t, "--root", dir)
	assert.ErrorIs(t, err, ErrWarningsFound)
	assert.Contains(t, out, "MISSING_FINAL_EOL")
}

func TestRootCmd_ParseFailureReturnsErrParseFailures(t *testing.T) {
	dir := t.TempDir()
	writeMakefile(t, dir, "Makefile", "all:\r\n\techo hi\n")

	out, err := runCmd(t, "--root", dir)
	assert.ErrorIs(t, err, ErrParseFailures)
	assert.Contains(t, out, "expected one of")
}

func TestRootCmd_List(t *testing.T) {
	dir := t.TempDir()
	writeMakefile(t, dir, "Makefile", "all:\n\techo hi\n")

	out, err := runCmd(t, "--root", dir, "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "Makefile")
}

func TestRootCmd_JSON(t *testing.T) {
	dir := t.TempDir()
	writeMakefile(t, dir, "Makefile", "all:\n\techo hi")

	out, err := runCmd(t, "--root", dir, "--json")
	assert.ErrorIs(t, err, ErrWarningsFound)
	assert.Contains(t, out, `"policy": "MISSING_FINAL_EOL"`)
}

func TestRootCmd_ColorFlagsConflict(t *testing.T) {
	dir := t.TempDir()
	writeMakefile(t, dir, "Makefile", "all:\n\techo hi\n")

	_, err := runCmd(t, "--root", dir, "--color", "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot use both")
}

func TestRootCmd_DryRunNotImplemented(t *testing.T) {
	_, err := runCmd(t, "--dry-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not implemented")
}

func TestRootCmd_ExplicitPathArgument(t *testing.T) {
	dir := t.TempDir()
	path := writeMakefile(t, dir, "custom.mk", ".POSIX:\nall:\n\techo hi\n")

	out, err := runCmd(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "no issues found")
}

func TestErrWarningsFound_MatchesWithErrorsIs(t *testing.T) {
	assert.True(t, errors.Is(ErrWarningsFound, ErrWarningsFound))
}

func TestRootCmd_IOErrorDoesNotAbortOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeMakefile(t, dir, "makefile", "all:\n\techo hi\n")
	badPath := filepath.Join(dir, "bad.mk")
	require.NoError(t, os.WriteFile(badPath, []byte("all:\xff\n\techo hi\n"), 0o644))

	out, err := runCmd(t, "--root", dir, "--json")
	assert.ErrorIs(t, err, ErrIOFailures)
	assert.Contains(t, out, `"io_error"`)
	assert.NotContains(t, out, `"io_error": ""`)
}
