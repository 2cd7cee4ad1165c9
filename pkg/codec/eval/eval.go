// Package eval provides a reference interpreter over compiled codec trees.
// It answers which emitter a candidate character reaches, which is what lint
// probing and tests need; it never executes generated code.
package eval

import (
	"fmt"

	"c2e-dev/c2e/pkg/codec/ast"
)

// Predicate evaluates a predicate for a candidate rune.
func Predicate(p ast.Predicate, candidate rune) (bool, error) {
	switch node := p.(type) {
	case *ast.Bool:
		return node.Value(), nil

	case *ast.BinOp:
		if node.IsLogical() {
			return evalLogical(node, candidate)
		}
		return evalComparison(node, candidate)

	default:
		return false, fmt.Errorf("cannot evaluate node of kind %q as a predicate", p.Kind())
	}
}

// Select walks a rule chain and returns the emitter the candidate reaches:
// the true branch of the first If whose condition holds. Chains built by the
// parser always terminate in a constant-true If, so a well-formed chain
// always selects an emitter.
func Select(root ast.Emitter, candidate rune) (ast.Emitter, error) {
	node := root
	for {
		branch, ok := node.(*ast.If)
		if !ok {
			return node, nil
		}
		matched, err := Predicate(branch.Condition(), candidate)
		if err != nil {
			return nil, err
		}
		if matched {
			return branch.Then(), nil
		}
		node = branch.Else()
	}
}

func evalLogical(b *ast.BinOp, candidate rune) (bool, error) {
	lhs, ok := b.Operand1().(ast.Predicate)
	if !ok {
		return false, fmt.Errorf("left operand of %s is not a predicate", b.Op())
	}
	rhs, ok := b.Operand2().(ast.Predicate)
	if !ok {
		return false, fmt.Errorf("right operand of %s is not a predicate", b.Op())
	}

	left, err := Predicate(lhs, candidate)
	if err != nil {
		return false, err
	}
	right, err := Predicate(rhs, candidate)
	if err != nil {
		return false, err
	}

	if b.Op() == ast.OpAnd {
		return left && right, nil
	}
	return left || right, nil
}

func evalComparison(b *ast.BinOp, candidate rune) (bool, error) {
	lhs, err := operandValue(b.Operand1(), candidate)
	if err != nil {
		return false, err
	}
	rhs, err := operandValue(b.Operand2(), candidate)
	if err != nil {
		return false, err
	}

	switch b.Op() {
	case ast.OpEq:
		return lhs == rhs, nil
	case ast.OpLt:
		return lhs < rhs, nil
	case ast.OpGt:
		return lhs > rhs, nil
	case ast.OpLte:
		return lhs <= rhs, nil
	case ast.OpGte:
		return lhs >= rhs, nil
	default:
		return false, fmt.Errorf("unknown comparison %q", b.Op())
	}
}

func operandValue(n ast.Node, candidate rune) (rune, error) {
	switch node := n.(type) {
	case *ast.Candidate:
		return candidate, nil
	case *ast.Codepoint:
		return node.Rune(), nil
	default:
		return 0, fmt.Errorf("node of kind %q is not a comparison operand", n.Kind())
	}
}
