// Package printer renders compiled codec trees as colored, human-readable
// text for terminal inspection. Output is diagnostic only; code generation
// goes through pkg/codec/format.
package printer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"golang.org/x/text/unicode/runenames"

	"c2e-dev/c2e/pkg/codec/ast"
)

var (
	branchColor   = color.New(color.FgBlue)
	arrowColor    = color.New(color.FgCyan)
	operatorColor = color.New(color.FgYellow)
	literalColor  = color.New(color.FgWhite)
	alphaColor    = color.New(color.FgRed)
	trueColor     = color.New(color.FgGreen)
	falseColor    = color.New(color.FgRed)
)

// Printer renders AST nodes for terminal display. The zero value is ready to
// use; color output honors NO_COLOR through the color package.
type Printer struct{}

// New creates a printer.
func New() *Printer { return &Printer{} }

// Print renders a tree. Each If node of a rule chain appears on its own
// line, indented under its parent with an arrow.
func (p *Printer) Print(n ast.Node) string {
	var sb strings.Builder
	p.print(&sb, n, 0)
	return sb.String()
}

func (p *Printer) print(sb *strings.Builder, n ast.Node, depth int) {
	switch node := n.(type) {
	case *ast.If:
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		if depth > 0 {
			sb.WriteString(strings.Repeat(" ", depth-1))
			sb.WriteString(arrowColor.Sprint("⤷ "))
		}
		sb.WriteString(branchColor.Sprint("IF ("))
		p.print(sb, node.Condition(), depth+1)
		sb.WriteString(branchColor.Sprint(") THEN "))
		p.print(sb, node.Then(), depth+1)
		if _, chained := node.Else().(*ast.If); !chained {
			sb.WriteString(branchColor.Sprint(" ELSE "))
		}
		p.print(sb, node.Else(), depth+1)

	case *ast.BinOp:
		p.print(sb, node.Operand1(), depth)
		sb.WriteString(fmt.Sprintf(" %s ", operatorColor.Sprint(opSymbol(node.Op()))))
		p.print(sb, node.Operand2(), depth)

	case *ast.Candidate:
		sb.WriteString(alphaColor.Sprint("α"))

	case *ast.Codepoint:
		sb.WriteString(formatCodepoint(node.Rune()))

	case *ast.Bool:
		if node.Value() {
			sb.WriteString(trueColor.Sprint("true"))
		} else {
			sb.WriteString(falseColor.Sprint("false"))
		}

	case *ast.Nop:
		sb.WriteString(falseColor.Sprint("nop"))

	case *ast.Builtin:
		sb.WriteString(fmt.Sprintf("%s(%s)",
			operatorColor.Sprint(string(node.Name())), alphaColor.Sprint("α")))

	case *ast.Constant:
		sb.WriteString(fmt.Sprintf("%s(%s %s \"%s\")",
			operatorColor.Sprint("λ"), alphaColor.Sprint("α"),
			operatorColor.Sprint("↦"), literalColor.Sprint(node.Value())))

	case *ast.List:
		sb.WriteByte('[')
		for i, e := range node.Emitters() {
			if i != 0 {
				sb.WriteString(operatorColor.Sprint(" ∙ "))
			}
			p.print(sb, e, depth)
		}
		sb.WriteByte(']')
	}
}

// opSymbol maps an operation to its display symbol.
func opSymbol(op ast.Op) string {
	switch op {
	case ast.OpAnd:
		return "∧"
	case ast.OpOr:
		return "∨"
	case ast.OpEq:
		return "=="
	case ast.OpLt:
		return "<"
	case ast.OpGt:
		return ">"
	case ast.OpLte:
		return "≤"
	case ast.OpGte:
		return "≥"
	}
	return string(op)
}

// formatCodepoint shows printable Latin-1 characters quoted, names known
// whitespace characters, and falls back to the U+XXXX form.
func formatCodepoint(r rune) string {
	if unicode.IsSpace(r) {
		if name := runenames.Name(r); name != "" && !strings.HasPrefix(name, "<") {
			return fmt.Sprintf("'%s'", literalColor.Sprint(name))
		}
		return fmt.Sprintf("U+%04X", r)
	}
	if r > 255 {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("\"%s\"", literalColor.Sprint(string(r)))
}
