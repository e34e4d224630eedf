// Package source loads makefile bytes from disk and maps byte offsets back
// to 1-based physical line/column positions for diagnostics.
//
// # Encoding
//
// Loaded content must be valid UTF-8; Load returns an
// *errors.NotUTF8Error otherwise. This check happens at load time, not
// during parsing, so that non-UTF-8 content is reported as an I/O-layer
// failure rather than a syntax error.
//
// # Final newline
//
// File.HasFinalNewline records whether the raw bytes end with a line feed.
// An empty file is considered to have a final newline (there is nothing
// missing to warn about); any other file not ending in '\n' does not.
//
// # Columns
//
// Position.Column counts UTF-8 code points, not bytes, so a diagnostic
// pointing past a multi-byte rune lands on the right column for a human
// reading the file, not the right byte offset.
package source
