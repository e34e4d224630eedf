// Package walk enumerates candidate files beneath a root directory for the
// classify/parse/lint pipeline. It never follows symlinks — neither
// symlinked directories nor symlinked regular files — and it prunes the
// same noise directories classify independently rejects by ancestor
// (.git, node_modules, vendor), purely as a traversal-cost optimization;
// classify still re-checks every path it is handed on its own.
package walk
