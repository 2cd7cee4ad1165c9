// Package format renders compiled codec ASTs to target-language text.
//
// The formatter has no built-in knowledge of any output language: the caller
// supplies a mapping from dispatch key to template string once, at
// construction. The dispatch key is the node kind, refined by operator for
// comparisons/combinators and by value for constant predicates; builtin
// emitters share one generic template that receives the builtin's name.
//
// Templates use {name} placeholders:
//
//	templates := format.Templates{
//		format.KeyIf:        "({condition} ? {iftrue} : {iffalse})",
//		format.KeyEq:        "{operand1} == {operand2}",
//		format.KeyCandidate: "c",
//		format.KeyCodepoint: "{codepoint}",
//		format.KeyBuiltin:   "{builtin}(c)",
//		format.KeyConstant:  "\"{constant}\"",
//		format.KeyTrue:      "true",
//		format.KeyNop:       "\"\"",
//	}
//	f := format.New(templates)
//	out, err := f.Render(codec.Root())
//
// Rendering is recursive (children first, in structural order), a pure
// function of the tree and the mapping, and safe for concurrent use; the
// tree is borrowed read-only. A missing template for an encountered dispatch
// key is a configuration error surfaced immediately — it signals an
// incomplete template set, not malformed input.
package format
