package parser

import (
	"strings"
	"testing"

	"c2e-dev/c2e/pkg/codec/ast"
	codecerrors "c2e-dev/c2e/pkg/codec/errors"
)

// parseDoc compiles an inline document, failing the test on error.
func parseDoc(t *testing.T, doc string) *Result {
	t.Helper()
	r, err := NewParser().ParseBytes([]byte(doc), "memory://test")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	return r
}

func TestEmitter_Constant(t *testing.T) {
	r := parseDoc(t, `
TARGET: test
RULES:
  - "&": "&amp;"
`)

	emitter := r.Root.Then()
	constant, ok := emitter.(*ast.Constant)
	if !ok {
		t.Fatalf("rule emitter is %T, want *ast.Constant", emitter)
	}
	if constant.Value() != "&amp;" {
		t.Errorf("Value() = %q, want %q", constant.Value(), "&amp;")
	}
}

func TestEmitter_Builtin(t *testing.T) {
	r := parseDoc(t, `
TARGET: test
RULES:
  - "a": { emitter: HEX }
`)

	builtin, ok := r.Root.Then().(*ast.Builtin)
	if !ok {
		t.Fatalf("rule emitter is %T, want *ast.Builtin", r.Root.Then())
	}
	if builtin.Name() != ast.BuiltinHex {
		t.Errorf("Name() = %q, want HEX", builtin.Name())
	}
}

func TestEmitter_UserDefinedInlined(t *testing.T) {
	r := parseDoc(t, `
TARGET: test
RULES:
  - "a": { emitter: HEX_REF }
HEX_REF:
  - "&#x"
  - { emitter: HEX }
  - ";"
`)

	list, ok := r.Root.Then().(*ast.List)
	if !ok {
		t.Fatalf("rule emitter is %T, want *ast.List", r.Root.Then())
	}
	if list.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", list.Len())
	}

	elements := list.Emitters()
	if c, ok := elements[0].(*ast.Constant); !ok || c.Value() != "&#x" {
		t.Errorf("element 0 = %T, want constant \"&#x\"", elements[0])
	}
	if b, ok := elements[1].(*ast.Builtin); !ok || b.Name() != ast.BuiltinHex {
		t.Errorf("element 1 = %T, want builtin HEX", elements[1])
	}
	if c, ok := elements[2].(*ast.Constant); !ok || c.Value() != ";" {
		t.Errorf("element 2 = %T, want constant \";\"", elements[2])
	}
}

func TestEmitter_NestedUserDefined(t *testing.T) {
	r := parseDoc(t, `
TARGET: test
RULES:
  - "a": { emitter: OUTER }
OUTER:
  - "["
  - { emitter: INNER }
  - "]"
INNER:
  - { emitter: DEC }
`)

	outer := r.Root.Then().(*ast.List)
	inner, ok := outer.Emitters()[1].(*ast.List)
	if !ok {
		t.Fatalf("nested reference is %T, want *ast.List", outer.Emitters()[1])
	}
	if inner.Len() != 1 {
		t.Errorf("inner Len() = %d, want 1", inner.Len())
	}
}

func TestEmitter_UserDefinedShadowsBuiltin(t *testing.T) {
	// A document-level definition of HEX takes precedence over the builtin.
	r := parseDoc(t, `
TARGET: test
RULES:
  - "a": { emitter: HEX }
HEX:
  - "custom"
`)

	list, ok := r.Root.Then().(*ast.List)
	if !ok {
		t.Fatalf("rule emitter is %T, want the user definition (*ast.List)", r.Root.Then())
	}
	if c := list.Emitters()[0].(*ast.Constant); c.Value() != "custom" {
		t.Errorf("shadowed HEX element = %q, want %q", c.Value(), "custom")
	}
}

func TestEmitter_Unknown(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte(`
TARGET: test
RULES:
  - "a": { emitter: HEXX }
`), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded with an unknown emitter")
	}
	if !codecerrors.IsUnknownEmitter(err) {
		t.Fatalf("error type = %v, want unknown-emitter", codecerrors.TypeOf(err))
	}

	// A near-miss reference suggests the closest known name.
	cerr := err.(*codecerrors.Error)
	if !strings.Contains(cerr.Suggestion, "HEX") {
		t.Errorf("Suggestion = %q, want a mention of HEX", cerr.Suggestion)
	}
}

func TestEmitter_SelfCycle(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte(`
TARGET: test
RULES:
  - "a": { emitter: A }
A:
  - { emitter: A }
`), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded with a self-referential emitter")
	}
	if !codecerrors.IsCycle(err) {
		t.Errorf("error type = %v, want cycle", codecerrors.TypeOf(err))
	}
}

func TestEmitter_TransitiveCycle(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte(`
TARGET: test
RULES:
  - "a": { emitter: A }
A:
  - { emitter: B }
B:
  - { emitter: A }
`), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded with a transitive emitter cycle")
	}
	if !codecerrors.IsCycle(err) {
		t.Fatalf("error type = %v, want cycle", codecerrors.TypeOf(err))
	}

	cerr := err.(*codecerrors.Error)
	if !strings.Contains(cerr.Message, "->") {
		t.Errorf("Message = %q, want the resolution chain", cerr.Message)
	}
}

func TestEmitter_UnreferencedDefinitionStillChecked(t *testing.T) {
	// Definitions are compiled even when no rule references them, so a
	// broken definition fails the document.
	_, err := NewParser().ParseBytes([]byte(`
TARGET: test
RULES:
  - "a": { emitter: HEX }
UNUSED:
  - { emitter: NOPE }
`), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded with a broken unreferenced definition")
	}
	if !codecerrors.IsUnknownEmitter(err) {
		t.Errorf("error type = %v, want unknown-emitter", codecerrors.TypeOf(err))
	}
}

func TestEmitter_DefinitionMustBeSequence(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte(`
TARGET: test
RULES:
  - "a": { emitter: BAD }
BAD: "not a list"
`), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded with a scalar emitter definition")
	}
	if codecerrors.TypeOf(err) != codecerrors.ErrorTypeStructural {
		t.Errorf("error type = %v, want structural", codecerrors.TypeOf(err))
	}
}

func TestEmitter_ReferenceWithoutKey(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte(`
TARGET: test
RULES:
  - "a": { name: HEX }
`), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded with a reference lacking the emitter key")
	}
	if !codecerrors.IsUnknownEmitter(err) {
		t.Errorf("error type = %v, want unknown-emitter", codecerrors.TypeOf(err))
	}
}

func TestEmitter_EmptyDefinition(t *testing.T) {
	// An empty list is legal and emits nothing.
	r := parseDoc(t, `
TARGET: test
RULES:
  - "a": { emitter: EMPTY }
EMPTY: []
`)

	list, ok := r.Root.Then().(*ast.List)
	if !ok {
		t.Fatalf("rule emitter is %T, want *ast.List", r.Root.Then())
	}
	if list.Len() != 0 {
		t.Errorf("Len() = %d, want 0", list.Len())
	}
}
