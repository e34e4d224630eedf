// Package classify decides, per filesystem path, whether a candidate file
// is a portable POSIX makefile that should be linted with full strictness,
// an implementation-specific or machine-generated makefile that should be
// parsed but not (fully) linted, or not a makefile at all.
//
// The decision is made from the path alone plus a content prefix read for
// machine-generated-signature detection; it never opens a file for
// writing and never follows a symlink.
package classify
