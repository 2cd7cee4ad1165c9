// Package ast provides the Abstract Syntax Tree (AST) node model for compiled
// codecs.
//
// A codec compiles into a single right-leaning chain of If nodes implementing
// first-match-wins rule semantics. Each If node carries a predicate over the
// candidate (the character being transcoded) and two emitter branches.
//
// # Node categories
//
// The node set is closed and split into two disjoint categories enforced by
// the type system:
//
// Predicate: a guard over the candidate. BinOp (comparisons and the logical
// combinators land/lor) and Bool (constant true/false).
//
// Emitter: a producer of output text. Nop, Builtin (DEC, HEX, IDENTITY, NOP),
// Constant, List (ordered emitter composition), and If itself, so that the
// false branch of an If is either another If or a terminal emitter, never a
// predicate.
//
// Candidate and Codepoint are operand leaves that appear only inside
// comparison predicates.
//
// # Construction
//
// Nodes are built through constructors (Eq, And, NewIf, NewList, ...) whose
// signatures restrict operands to the correct category, so a malformed tree
// (say, a predicate in an emitter position) cannot be expressed at all.
// All nodes are immutable after construction; the tree is built exactly once
// per codec and only ever read afterwards.
//
// # Traversal
//
// Walk visits a tree in structural child order:
//
//	err := ast.Walk(codec.Root(), func(n ast.Node) error {
//		fmt.Println(n.Kind())
//		return nil
//	})
package ast
