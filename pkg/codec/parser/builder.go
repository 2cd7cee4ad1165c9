package parser

import "c2e-dev/c2e/pkg/codec/ast"

// compiledRule is one rule after guard and emitter compilation.
type compiledRule struct {
	guard   ast.Predicate
	emitter ast.Emitter
}

// buildChain assembles compiled rules into a single right-leaning If chain
// implementing first-match-wins semantics: rules are evaluated strictly in
// declaration order and the first matching guard selects the emitter. The
// terminal node's condition is the constant true; its true branch is the
// default emitter, or Nop when no default was supplied. Later rules shadowed
// by earlier ones are unreachable on purpose, not an error.
func buildChain(rules []compiledRule, defaultEmitter ast.Emitter) *ast.If {
	if defaultEmitter == nil {
		defaultEmitter = ast.NewNop()
	}
	chain := ast.NewIf(ast.NewBool(true), defaultEmitter, ast.NewNop())

	for i := len(rules) - 1; i >= 0; i-- {
		chain = ast.NewIf(rules[i].guard, rules[i].emitter, chain)
	}
	return chain
}
