package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestClassify_PortableMakefile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "makefile", "all:\n\techo hi\n")

	d, err := Classify(path)
	require.NoError(t, err)
	assert.True(t, d.IsMakefile)
	assert.True(t, d.ShouldParse)
	assert.True(t, d.ShouldLint)
	assert.Equal(t, BuildSystemMake, d.BuildSystem)
}

func TestClassify_MkSuffix(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "rules.mk", "all:\n\techo hi\n")

	d, err := Classify(path)
	require.NoError(t, err)
	assert.True(t, d.IsMakefile)
}

func TestClassify_IncludeFileExemption(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "common.include.mk", "FOO = bar\n")

	d, err := Classify(path)
	require.NoError(t, err)
	assert.True(t, d.IsIncludeFile)
}

func TestClassify_ImplementationSpecific(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "GNUmakefile", "all:\n\techo hi\n")

	d, err := Classify(path)
	require.NoError(t, err)
	assert.True(t, d.IsMakefile)
	assert.True(t, d.IsImplementationSpecific)
}

func TestClassify_SysMk(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "sys.mk", "all:\n\techo hi\n")

	d, err := Classify(path)
	require.NoError(t, err)
	assert.True(t, d.IsMakefile)
	assert.True(t, d.IsImplementationSpecific, "sys.mk must be classified implementation-specific despite its .mk suffix")
}

func TestClassify_NotAMakefile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "README.md", "hello\n")

	d, err := Classify(path)
	require.NoError(t, err)
	assert.False(t, d.IsMakefile)
	assert.False(t, d.ShouldParse)
}

func TestClassify_MachineGenerated(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "Makefile", "# Makefile.in generated by automake 1.16\nall:\n\techo hi\n")

	d, err := Classify(path)
	require.NoError(t, err)
	assert.True(t, d.IsMakefile)
	assert.True(t, d.IsMachineGenerated)
	assert.False(t, d.ShouldLint)
	assert.Equal(t, BuildSystemAutoconf, d.BuildSystem)
}

func TestClassify_RejectsSymlink(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := writeFile(t, dir, "Makefile", "all:\n\techo hi\n")
	link := filepath.Join(dir, "link.mk")
	require.NoError(t, os.Symlink(target, link))

	d, err := Classify(link)
	require.NoError(t, err)
	assert.False(t, d.IsMakefile)
}

func TestClassify_RejectsVendorAncestor(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	vendorDir := filepath.Join(dir, "vendor", "pkg")
	require.NoError(t, os.MkdirAll(vendorDir, 0o755))
	path := writeFile(t, vendorDir, "Makefile", "all:\n\techo hi\n")

	d, err := Classify(path)
	require.NoError(t, err)
	assert.False(t, d.IsMakefile)
}

func TestClassify_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := Classify("/nonexistent/path/Makefile")
	assert.Error(t, err)
}

func TestResolvePath_Empty(t *testing.T) {
	t.Parallel()
	path, err := ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "Makefile", filepath.Base(path))
	assert.True(t, filepath.IsAbs(path))
}

func TestValidateExists_MissingFile(t *testing.T) {
	t.Parallel()
	err := ValidateExists("/nonexistent/path/Makefile")
	assert.Error(t, err)
}
