package ast

// Op identifies the operation of a BinOp node.
type Op string

const (
	OpAnd Op = "land" // logical and of two predicates
	OpOr  Op = "lor"  // logical or of two predicates
	OpEq  Op = "eq"   // ordinal equality
	OpLt  Op = "lt"   // ordinal less-than
	OpGt  Op = "gt"   // ordinal greater-than
	OpLte Op = "lte"  // ordinal less-than-or-equal
	OpGte Op = "gte"  // ordinal greater-than-or-equal
)

// Candidate is an operand leaf standing for the character currently being
// classified by the generated logic.
type Candidate struct{}

// NewCandidate creates a candidate node.
func NewCandidate() *Candidate { return &Candidate{} }

// Kind implements Node.
func (c *Candidate) Kind() Kind { return KindCandidate }

// Children implements Node. Candidates are leaves.
func (c *Candidate) Children() []Node { return nil }

func (c *Candidate) operandNode() {}

// BinOp is a binary predicate: either a comparison between the candidate and
// a codepoint, or a logical combination of two predicate subtrees. BinOps are
// built through the Eq/Lt/Gt/Lte/Gte and And/Or constructors, which restrict
// operand categories at compile time.
type BinOp struct {
	op       Op
	operand1 Node
	operand2 Node
}

// Eq builds an ordinal-equality comparison.
func Eq(lhs, rhs Operand) *BinOp { return &BinOp{op: OpEq, operand1: lhs, operand2: rhs} }

// Lt builds an ordinal less-than comparison.
func Lt(lhs, rhs Operand) *BinOp { return &BinOp{op: OpLt, operand1: lhs, operand2: rhs} }

// Gt builds an ordinal greater-than comparison.
func Gt(lhs, rhs Operand) *BinOp { return &BinOp{op: OpGt, operand1: lhs, operand2: rhs} }

// Lte builds an ordinal less-than-or-equal comparison.
func Lte(lhs, rhs Operand) *BinOp { return &BinOp{op: OpLte, operand1: lhs, operand2: rhs} }

// Gte builds an ordinal greater-than-or-equal comparison.
func Gte(lhs, rhs Operand) *BinOp { return &BinOp{op: OpGte, operand1: lhs, operand2: rhs} }

// And builds the logical conjunction of two predicates.
func And(p, q Predicate) *BinOp { return &BinOp{op: OpAnd, operand1: p, operand2: q} }

// Or builds the logical disjunction of two predicates.
func Or(p, q Predicate) *BinOp { return &BinOp{op: OpOr, operand1: p, operand2: q} }

// Kind implements Node.
func (b *BinOp) Kind() Kind { return KindBinOp }

// Children implements Node: operand1 then operand2.
func (b *BinOp) Children() []Node { return []Node{b.operand1, b.operand2} }

// Op returns the node's operation.
func (b *BinOp) Op() Op { return b.op }

// Operand1 returns the left operand.
func (b *BinOp) Operand1() Node { return b.operand1 }

// Operand2 returns the right operand.
func (b *BinOp) Operand2() Node { return b.operand2 }

// IsLogical reports whether the node combines two predicates (land/lor).
func (b *BinOp) IsLogical() bool { return b.op == OpAnd || b.op == OpOr }

func (b *BinOp) predicateNode() {}

// Bool is a constant predicate. The terminal node of a rule chain uses a true
// condition so the default emitter always applies.
type Bool struct {
	value bool
}

// NewBool creates a constant predicate node.
func NewBool(v bool) *Bool { return &Bool{value: v} }

// Kind implements Node.
func (b *Bool) Kind() Kind { return KindBool }

// Children implements Node. Bools are leaves.
func (b *Bool) Children() []Node { return nil }

// Value returns the constant's truth value.
func (b *Bool) Value() bool { return b.value }

func (b *Bool) predicateNode() {}
