package format

import (
	"fmt"
	"strconv"
	"strings"

	"c2e-dev/c2e/pkg/codec/ast"
	codecerrors "c2e-dev/c2e/pkg/codec/errors"
)

// Key is a template dispatch key: the node kind, refined by operator for
// BinOp and by value for Bool. Emitter lists have no key; they render as the
// concatenation of their elements.
type Key string

const (
	KeyIf        Key = "if"
	KeyCandidate Key = "candidate"
	KeyCodepoint Key = "codepoint"
	KeyNop       Key = "nop"
	KeyBuiltin   Key = "builtin"
	KeyConstant  Key = "constant"
	KeyTrue      Key = "true"
	KeyFalse     Key = "false"
	KeyAnd       Key = "land"
	KeyOr        Key = "lor"
	KeyEq        Key = "eq"
	KeyLt        Key = "lt"
	KeyGt        Key = "gt"
	KeyLte       Key = "lte"
	KeyGte       Key = "gte"
)

// Templates maps dispatch keys to template strings.
type Templates map[Key]string

// EscapeFunc rewrites one rune of a constant emitter's literal for safe
// embedding in generated source text.
type EscapeFunc func(rune) string

// defaultEscape doubles backslashes and leaves everything else alone.
func defaultEscape(r rune) string {
	if r == '\\' {
		return `\\`
	}
	return string(r)
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithEscape sets the escape function applied to constant emitter literals.
func WithEscape(escape EscapeFunc) Option {
	return func(f *Formatter) { f.escape = escape }
}

// Formatter renders AST nodes using a fixed template mapping. It is
// stateless across Render calls and safe for concurrent use.
type Formatter struct {
	templates Templates
	escape    EscapeFunc
}

// New creates a formatter with the given template mapping. The mapping is
// copied; later mutation of the argument does not affect the formatter.
func New(templates Templates, opts ...Option) *Formatter {
	copied := make(Templates, len(templates))
	for k, v := range templates {
		copied[k] = v
	}
	f := &Formatter{
		templates: copied,
		escape:    defaultEscape,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// KeyFor returns the dispatch key of a node, or "" for emitter lists, which
// have none.
func KeyFor(n ast.Node) Key {
	switch node := n.(type) {
	case *ast.If:
		return KeyIf
	case *ast.Candidate:
		return KeyCandidate
	case *ast.Codepoint:
		return KeyCodepoint
	case *ast.Nop:
		return KeyNop
	case *ast.Builtin:
		return KeyBuiltin
	case *ast.Constant:
		return KeyConstant
	case *ast.BinOp:
		return Key(node.Op())
	case *ast.Bool:
		if node.Value() {
			return KeyTrue
		}
		return KeyFalse
	case *ast.List:
		return ""
	default:
		return Key(n.Kind())
	}
}

// Render renders a node to text. Children are rendered first, in structural
// order, then substituted into the node's template. Identical inputs always
// produce identical output.
func (f *Formatter) Render(n ast.Node) (string, error) {
	switch node := n.(type) {
	case *ast.If:
		condition, err := f.Render(node.Condition())
		if err != nil {
			return "", err
		}
		iftrue, err := f.Render(node.Then())
		if err != nil {
			return "", err
		}
		iffalse, err := f.Render(node.Else())
		if err != nil {
			return "", err
		}
		return f.expand(KeyIf, map[string]string{
			"condition": condition,
			"iftrue":    iftrue,
			"iffalse":   iffalse,
		})

	case *ast.BinOp:
		operand1, err := f.Render(node.Operand1())
		if err != nil {
			return "", err
		}
		operand2, err := f.Render(node.Operand2())
		if err != nil {
			return "", err
		}
		return f.expand(Key(node.Op()), map[string]string{
			"operand1": operand1,
			"operand2": operand2,
		})

	case *ast.Bool:
		return f.expand(KeyFor(node), nil)

	case *ast.Candidate:
		return f.expand(KeyCandidate, nil)

	case *ast.Codepoint:
		return f.expand(KeyCodepoint, map[string]string{
			"codepoint": strconv.Itoa(node.Ord()),
		})

	case *ast.Nop:
		return f.expand(KeyNop, nil)

	case *ast.Builtin:
		return f.expand(KeyBuiltin, map[string]string{
			"builtin": string(node.Name()),
		})

	case *ast.Constant:
		var sb strings.Builder
		for _, r := range node.Value() {
			sb.WriteString(f.escape(r))
		}
		return f.expand(KeyConstant, map[string]string{
			"constant": sb.String(),
		})

	case *ast.List:
		var sb strings.Builder
		for _, e := range node.Emitters() {
			s, err := f.Render(e)
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
		}
		return sb.String(), nil

	default:
		return "", &codecerrors.Error{
			Type:    codecerrors.ErrorTypeTemplate,
			Message: fmt.Sprintf("cannot render node of kind %q", n.Kind()),
		}
	}
}

// expand substitutes rendered children and leaf payloads into the template
// for key. A missing template is a configuration error: the caller's
// template set is incomplete for this tree.
func (f *Formatter) expand(key Key, vars map[string]string) (string, error) {
	tmpl, ok := f.templates[key]
	if !ok {
		return "", &codecerrors.Error{
			Type:       codecerrors.ErrorTypeTemplate,
			Message:    fmt.Sprintf("template mapping has no entry for dispatch key %q", key),
			Suggestion: "supply a complete template set for every node kind the tree contains",
		}
	}
	return Expand(tmpl, vars), nil
}

// Expand substitutes {name} placeholders in a template with entries from
// vars. Placeholders with no entry, and braces that do not delimit a known
// placeholder, pass through unchanged.
func Expand(tmpl string, vars map[string]string) string {
	if len(vars) == 0 {
		return tmpl
	}

	var sb strings.Builder
	for i := 0; i < len(tmpl); {
		if tmpl[i] == '{' {
			if j := strings.IndexByte(tmpl[i:], '}'); j > 0 {
				if val, ok := vars[tmpl[i+1:i+j]]; ok {
					sb.WriteString(val)
					i += j + 1
					continue
				}
			}
		}
		sb.WriteByte(tmpl[i])
		i++
	}
	return sb.String()
}
