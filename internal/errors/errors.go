package errors

import "fmt"

// FileNotFoundError is returned when a candidate path does not exist.
type FileNotFoundError struct {
	// Path is the path that was searched.
	Path string
}

// Error implements the error interface.
func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// NewFileNotFoundError creates a new FileNotFoundError.
func NewFileNotFoundError(path string) *FileNotFoundError {
	return &FileNotFoundError{Path: path}
}

// SymlinkSkippedError is returned when a candidate path is a symlink.
// Traversal and classification must not follow symlinks.
type SymlinkSkippedError struct {
	// Path is the symlink that was rejected.
	Path string
}

// Error implements the error interface.
func (e *SymlinkSkippedError) Error() string {
	return fmt.Sprintf("refusing to follow symlink: %s", e.Path)
}

// NewSymlinkSkippedError creates a new SymlinkSkippedError.
func NewSymlinkSkippedError(path string) *SymlinkSkippedError {
	return &SymlinkSkippedError{Path: path}
}

// NotRegularFileError is returned when a candidate path is not a regular
// file (for example, a directory passed directly instead of being walked).
type NotRegularFileError struct {
	// Path is the offending path.
	Path string

	// Reason describes why the path was rejected.
	Reason string
}

// Error implements the error interface.
func (e *NotRegularFileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// NewNotRegularFileError creates a new NotRegularFileError.
func NewNotRegularFileError(path, reason string) *NotRegularFileError {
	return &NotRegularFileError{Path: path, Reason: reason}
}

// ReadFailedError is returned when a file exists but could not be read.
type ReadFailedError struct {
	// Path is the file that failed to read.
	Path string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *ReadFailedError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

// Unwrap exposes the underlying error for errors.Is/errors.As callers.
func (e *ReadFailedError) Unwrap() error {
	return e.Cause
}

// NewReadFailedError creates a new ReadFailedError.
func NewReadFailedError(path string, cause error) *ReadFailedError {
	return &ReadFailedError{Path: path, Cause: cause}
}

// NotUTF8Error is returned when a file's bytes are not valid UTF-8.
// Per the error-handling design, this is an I/O-layer failure, not a
// parse error: it is detected before any grammar is applied.
type NotUTF8Error struct {
	// Path is the offending file.
	Path string
}

// Error implements the error interface.
func (e *NotUTF8Error) Error() string {
	return fmt.Sprintf("%s: not valid UTF-8", e.Path)
}

// NewNotUTF8Error creates a new NotUTF8Error.
func NewNotUTF8Error(path string) *NotUTF8Error {
	return &NotUTF8Error{Path: path}
}

// FileTooLargeError is returned when a file exceeds a host-chosen size
// limit. The core spec does not bound file size; a host may reject files
// beyond a limit of its choosing using this distinct error kind.
type FileTooLargeError struct {
	// Path is the offending file.
	Path string

	// Size is the file's actual size in bytes.
	Size int64

	// Limit is the host-configured maximum.
	Limit int64
}

// Error implements the error interface.
func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: %d bytes exceeds limit of %d bytes", e.Path, e.Size, e.Limit)
}

// NewFileTooLargeError creates a new FileTooLargeError.
func NewFileTooLargeError(path string, size, limit int64) *FileTooLargeError {
	return &FileTooLargeError{Path: path, Size: size, Limit: limit}
}
