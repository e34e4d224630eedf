// Package errors defines custom error types for the makelint core.
//
// All error types implement the standard error interface. They cover only
// the I/O layer (file access, encoding) as described in spec.md's error
// handling design; syntactic failures are represented by
// internal/diag.ParseError instead, since those carry line/column
// information and a set of expected alternatives rather than a single
// message.
//
// # Error Types
//
//   - FileNotFoundError: the requested path does not exist
//   - SymlinkSkippedError: the path is a symlink and must not be followed
//   - NotRegularFileError: the path is not a regular file (e.g. a directory)
//   - ReadFailedError: the file exists but could not be read
//   - NotUTF8Error: the file's bytes are not valid UTF-8
//   - FileTooLargeError: the file exceeds a host-chosen size limit
//
// # Usage
//
// All error types have constructor functions (NewXxxError) that create
// properly initialized error instances.
package errors
