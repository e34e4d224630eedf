// Package cli wires walk, classify, parser, and lint into a command-line
// tool using Cobra. It is the only package that touches os.Args or stdout.
package cli
