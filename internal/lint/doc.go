// Package lint implements the structural warning engine: a registry of
// independent, mostly-stateless inspections keyed by policy code, each of
// which reads a parsed ast.File (and the classify.Decision that produced
// it) and yields zero or more Warnings.
//
// Inspections never run on a file that failed to parse, and never
// promote themselves to errors; ordering the final warning list is
// internal/ordering's job, not this package's.
package lint
