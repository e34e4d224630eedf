// Package diag holds the diagnostic record shapes shared by the parser and
// its callers: ParseError for syntactic failures, and the byte-escaping
// helper used to render the offending input in a ParseError's Found field.
//
// Warning records live in internal/lint instead, since they are produced
// only after a successful parse and are keyed by policy rather than by
// grammar position.
package diag
