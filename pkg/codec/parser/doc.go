// Package parser compiles codec documents into ASTs.
//
// A codec document is a YAML (or JSON, which YAML subsumes) mapping with the
// required keys TARGET and RULES, an optional DEFAULT-EMITTER, and any number
// of user-defined emitter definitions under arbitrary other keys. Documents
// are decoded through yaml.Node so that rule order, user-defined emitter
// declaration order, and source line numbers are all preserved.
//
// Compilation runs guard parsing, emitter resolution (with cycle detection),
// and rule-chain construction, producing a single right-leaning If chain with
// first-match-wins semantics. All failures abort the single document that
// triggered them and are reported as typed errors from pkg/codec/errors.
package parser
