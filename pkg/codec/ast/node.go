package ast

// Kind identifies the variant of an AST node. The set is closed; tree-walking
// code switches exhaustively over these values.
type Kind string

const (
	KindCandidate Kind = "candidate" // the character being classified
	KindCodepoint Kind = "codepoint" // a Unicode scalar operand
	KindBinOp     Kind = "binop"     // comparison or logical combinator
	KindBool      Kind = "bool"      // constant predicate
	KindNop       Kind = "nop"       // emitter producing no output
	KindBuiltin   Kind = "builtin"   // reference to a builtin emitter
	KindConstant  Kind = "constant"  // fixed literal string emitter
	KindList      Kind = "list"      // ordered emitter composition
	KindIf        Kind = "if"        // cascading conditional
)

// Node is the interface implemented by every AST node.
type Node interface {
	// Kind returns the node's variant tag.
	Kind() Kind

	// Children returns the node's children in structural order.
	// Leaves return nil.
	Children() []Node
}

// Predicate is a node usable as an If condition: a guard over the candidate.
// Only BinOp and Bool implement it.
type Predicate interface {
	Node
	predicateNode()
}

// Emitter is a node that produces output for a candidate. Nop, Builtin,
// Constant, List, and If implement it.
type Emitter interface {
	Node
	emitterNode()
}

// Operand is a node usable on either side of a comparison predicate.
// Only Candidate and Codepoint implement it.
type Operand interface {
	Node
	operandNode()
}

// Walk traverses the tree rooted at n in structural child order (the node
// first, then each child recursively) and calls visit for every node.
// It returns the first error from visit, or nil if traversal completes.
func Walk(n Node, visit func(Node) error) error {
	if err := visit(n); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := Walk(child, visit); err != nil {
			return err
		}
	}
	return nil
}
