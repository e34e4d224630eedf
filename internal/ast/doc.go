// Package ast holds the immutable, read-only abstract syntax model produced
// by a successful parse: comments, macro definitions, include directives,
// and rules (each owning its inline and indented commands).
//
// Items are represented as a tagged union (ItemKind plus one populated
// pointer field per variant) rather than an interface with per-kind
// implementations, so inspections in internal/lint can switch on Kind
// without dynamic dispatch. A Rule owns its CommandLines directly; a
// CommandLine never references the Rule it belongs to, so the only way to
// recover that relationship is to iterate Rules and look at what they own
// — which is exactly what every lint inspection that needs it already does.
package ast
