package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorsImplementErrorInterface verifies all error types implement error interface.
func TestErrorsImplementErrorInterface(t *testing.T) {
	var _ error = &FileNotFoundError{}
	var _ error = &SymlinkSkippedError{}
	var _ error = &NotRegularFileError{}
	var _ error = &ReadFailedError{}
	var _ error = &NotUTF8Error{}
	var _ error = &FileTooLargeError{}
}

func TestFileNotFoundError(t *testing.T) {
	err := NewFileNotFoundError("/tmp/missing.mk")
	assert.Contains(t, err.Error(), "file not found")
	assert.Contains(t, err.Error(), "/tmp/missing.mk")
}

func TestSymlinkSkippedError(t *testing.T) {
	err := NewSymlinkSkippedError("/tmp/link")
	assert.Contains(t, err.Error(), "symlink")
	assert.Contains(t, err.Error(), "/tmp/link")
}

func TestNotRegularFileError(t *testing.T) {
	err := NewNotRegularFileError("/tmp/dir", "is a directory")
	assert.Contains(t, err.Error(), "/tmp/dir")
	assert.Contains(t, err.Error(), "is a directory")
}

func TestReadFailedError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewReadFailedError("/tmp/Makefile", cause)
	assert.Contains(t, err.Error(), "/tmp/Makefile")
	assert.Contains(t, err.Error(), "permission denied")
	assert.ErrorIs(t, err, cause)
}

func TestNotUTF8Error(t *testing.T) {
	err := NewNotUTF8Error("/tmp/Makefile")
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestFileTooLargeError(t *testing.T) {
	err := NewFileTooLargeError("/tmp/Makefile", 1<<20, 1<<19)
	assert.Contains(t, err.Error(), "1048576 bytes")
	assert.Contains(t, err.Error(), "524288 bytes")
}
