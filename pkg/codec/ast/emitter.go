package ast

import "fmt"

// BuiltinName names one of the fixed set of builtin emitters.
type BuiltinName string

const (
	BuiltinDec      BuiltinName = "DEC"      // decimal representation of the candidate
	BuiltinHex      BuiltinName = "HEX"      // hexadecimal representation of the candidate
	BuiltinIdentity BuiltinName = "IDENTITY" // the candidate itself
	BuiltinNop      BuiltinName = "NOP"      // nothing
)

// BuiltinNames lists the builtin emitter names in canonical order.
func BuiltinNames() []BuiltinName {
	return []BuiltinName{BuiltinDec, BuiltinHex, BuiltinIdentity, BuiltinNop}
}

// IsBuiltinName reports whether name refers to a builtin emitter.
func IsBuiltinName(name string) bool {
	switch BuiltinName(name) {
	case BuiltinDec, BuiltinHex, BuiltinIdentity, BuiltinNop:
		return true
	}
	return false
}

// Nop is the emitter that produces no output.
type Nop struct{}

// NewNop creates a nop emitter node.
func NewNop() *Nop { return &Nop{} }

// Kind implements Node.
func (n *Nop) Kind() Kind { return KindNop }

// Children implements Node. Nops are leaves.
func (n *Nop) Children() []Node { return nil }

func (n *Nop) emitterNode() {}

// Builtin is a reference to one of the builtin emitters. The name is
// validated at construction; the set is closed.
type Builtin struct {
	name BuiltinName
}

// NewBuiltin creates a builtin emitter node. It returns an error if name is
// not one of DEC, HEX, IDENTITY, NOP.
func NewBuiltin(name string) (*Builtin, error) {
	if !IsBuiltinName(name) {
		return nil, fmt.Errorf("%q is not a builtin emitter", name)
	}
	return &Builtin{name: BuiltinName(name)}, nil
}

// Kind implements Node.
func (b *Builtin) Kind() Kind { return KindBuiltin }

// Children implements Node. Builtins are leaves.
func (b *Builtin) Children() []Node { return nil }

// Name returns the builtin's name.
func (b *Builtin) Name() BuiltinName { return b.name }

func (b *Builtin) emitterNode() {}

// Constant is an emitter producing a fixed literal string regardless of the
// candidate. The literal is escaped per target language at render time, not
// at construction.
type Constant struct {
	value string
}

// NewConstant creates a constant emitter node.
func NewConstant(s string) *Constant { return &Constant{value: s} }

// Kind implements Node.
func (c *Constant) Kind() Kind { return KindConstant }

// Children implements Node. Constants are leaves.
func (c *Constant) Children() []Node { return nil }

// Value returns the literal string.
func (c *Constant) Value() string { return c.value }

func (c *Constant) emitterNode() {}

// List is an ordered composition of emitters: the candidate is passed to each
// element in order and the outputs concatenated. An empty list is legal and
// emits nothing.
type List struct {
	emitters []Emitter
}

// NewList creates an emitter list node.
func NewList(emitters ...Emitter) *List {
	return &List{emitters: emitters}
}

// Kind implements Node.
func (l *List) Kind() Kind { return KindList }

// Children implements Node: the elements in order.
func (l *List) Children() []Node {
	children := make([]Node, len(l.emitters))
	for i, e := range l.emitters {
		children[i] = e
	}
	return children
}

// Emitters returns the elements in order.
func (l *List) Emitters() []Emitter { return l.emitters }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.emitters) }

func (l *List) emitterNode() {}

// If is the cascading branch node. Its condition is a predicate and both
// branches are emitters; because If itself is an emitter, the false branch is
// recursively either another If or a terminal emitter, forming a chain.
type If struct {
	condition Predicate
	then      Emitter
	els       Emitter
}

// NewIf creates a conditional node.
func NewIf(condition Predicate, then, els Emitter) *If {
	return &If{condition: condition, then: then, els: els}
}

// Kind implements Node.
func (i *If) Kind() Kind { return KindIf }

// Children implements Node: condition, true branch, false branch.
func (i *If) Children() []Node { return []Node{i.condition, i.then, i.els} }

// Condition returns the branch predicate.
func (i *If) Condition() Predicate { return i.condition }

// Then returns the true branch.
func (i *If) Then() Emitter { return i.then }

// Else returns the false branch.
func (i *If) Else() Emitter { return i.els }

func (i *If) emitterNode() {}
