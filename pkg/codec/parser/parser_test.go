package parser

import (
	"strings"
	"testing"

	"c2e-dev/c2e/pkg/codec/ast"
	codecerrors "c2e-dev/c2e/pkg/codec/errors"
)

func TestParser_ParseFile(t *testing.T) {
	r, err := NewParser().ParseFile("../../../internal/testdata/valid/html.c2e")
	if err != nil {
		t.Fatalf("ParseFile() failed: %v", err)
	}

	if r.Target != "html" {
		t.Errorf("Target = %q, want %q", r.Target, "html")
	}
	if r.Root == nil {
		t.Fatal("Root is nil")
	}
}

func TestParser_ChainShape(t *testing.T) {
	r := parseDoc(t, `
TARGET: test
RULES:
  - "a": "one"
  - "b": "two"
DEFAULT-EMITTER: { emitter: IDENTITY }
`)

	// Two rule branches, then the constant-true terminal.
	first := r.Root
	second, ok := first.Else().(*ast.If)
	if !ok {
		t.Fatalf("Else() of first branch is %T, want *ast.If", first.Else())
	}
	terminal, ok := second.Else().(*ast.If)
	if !ok {
		t.Fatalf("Else() of second branch is %T, want *ast.If", second.Else())
	}

	if c, ok := first.Then().(*ast.Constant); !ok || c.Value() != "one" {
		t.Errorf("first branch emitter = %v, want constant \"one\"", first.Then())
	}
	if c, ok := second.Then().(*ast.Constant); !ok || c.Value() != "two" {
		t.Errorf("second branch emitter = %v, want constant \"two\"", second.Then())
	}

	cond, ok := terminal.Condition().(*ast.Bool)
	if !ok || !cond.Value() {
		t.Errorf("terminal condition = %v, want constant true", terminal.Condition())
	}
	if b, ok := terminal.Then().(*ast.Builtin); !ok || b.Name() != ast.BuiltinIdentity {
		t.Errorf("terminal emitter = %T, want builtin IDENTITY", terminal.Then())
	}
	if _, ok := terminal.Else().(*ast.Nop); !ok {
		t.Errorf("terminal else = %T, want *ast.Nop", terminal.Else())
	}
}

func TestParser_DefaultEmitterDefaultsToNop(t *testing.T) {
	r := parseDoc(t, `
TARGET: test
RULES:
  - "a": { emitter: HEX }
`)

	terminal, ok := r.Root.Else().(*ast.If)
	if !ok {
		t.Fatalf("Else() is %T, want the terminal *ast.If", r.Root.Else())
	}
	if _, ok := terminal.Then().(*ast.Nop); !ok {
		t.Errorf("terminal emitter = %T, want *ast.Nop", terminal.Then())
	}
}

func TestParser_EmptyRules(t *testing.T) {
	// A document with no rules compiles to the bare terminal branch.
	r := parseDoc(t, `
TARGET: test
RULES: []
DEFAULT-EMITTER: { emitter: DEC }
`)

	cond, ok := r.Root.Condition().(*ast.Bool)
	if !ok || !cond.Value() {
		t.Fatalf("root condition = %v, want constant true", r.Root.Condition())
	}
	if b, ok := r.Root.Then().(*ast.Builtin); !ok || b.Name() != ast.BuiltinDec {
		t.Errorf("root emitter = %T, want builtin DEC", r.Root.Then())
	}
}

func TestParser_EmitterNames(t *testing.T) {
	// Referenced builtins in canonical order, then user-defined names in
	// declaration order. Unreferenced builtins do not appear.
	r := parseDoc(t, `
TARGET: test
RULES:
  - "a": { emitter: HEX }
  - "b": { emitter: WRAP }
  - "c": { emitter: DEC }
WRAP:
  - "<"
  - { emitter: HEX }
  - ">"
`)

	want := []string{"DEC", "HEX", "WRAP"}
	if len(r.EmitterNames) != len(want) {
		t.Fatalf("EmitterNames = %v, want %v", r.EmitterNames, want)
	}
	for i := range want {
		if r.EmitterNames[i] != want[i] {
			t.Errorf("EmitterNames[%d] = %q, want %q", i, r.EmitterNames[i], want[i])
		}
	}

	if _, ok := r.UserEmitters["WRAP"]; !ok {
		t.Error("UserEmitters missing WRAP subtree")
	}
}

func TestParser_MissingTarget(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte(`
RULES:
  - "a": { emitter: HEX }
`), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded without TARGET")
	}
	if !codecerrors.IsMissingKey(err) {
		t.Errorf("error type = %v, want missing-key", codecerrors.TypeOf(err))
	}
	if !strings.Contains(err.Error(), "TARGET") {
		t.Errorf("error = %q, want a mention of TARGET", err.Error())
	}
}

func TestParser_MissingRules(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte(`TARGET: test`), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded without RULES")
	}
	if !codecerrors.IsMissingKey(err) {
		t.Errorf("error type = %v, want missing-key", codecerrors.TypeOf(err))
	}
}

func TestParser_MultiGuardRuleRejected(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte(`
TARGET: test
RULES:
  - "a": "one"
    "b": "two"
`), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded with a two-guard rule entry")
	}
	if codecerrors.TypeOf(err) != codecerrors.ErrorTypeStructural {
		t.Errorf("error type = %v, want structural", codecerrors.TypeOf(err))
	}
}

func TestParser_DuplicateEmitterDefinition(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte(`
TARGET: test
RULES:
  - "a": { emitter: DUP }
DUP:
  - "x"
DUP:
  - "y"
`), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded with a duplicate emitter definition")
	}
}

func TestParser_NotYAML(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte("TARGET: [unclosed"), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded on malformed input")
	}
	if codecerrors.TypeOf(err) != codecerrors.ErrorTypeSyntax {
		t.Errorf("error type = %v, want syntax", codecerrors.TypeOf(err))
	}
}

func TestParser_TopLevelNotMapping(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte("- just\n- a\n- list\n"), "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() succeeded on a sequence document")
	}
	if codecerrors.TypeOf(err) != codecerrors.ErrorTypeStructural {
		t.Errorf("error type = %v, want structural", codecerrors.TypeOf(err))
	}
}

func TestParser_JSONDocument(t *testing.T) {
	// JSON is a YAML subset, so JSON documents compile unchanged.
	r := parseDoc(t, `{"TARGET":"test","RULES":[{"\"":{"emitter":"HEX"}}],"DEFAULT-EMITTER":{"emitter":"IDENTITY"}}`)

	if r.Target != "test" {
		t.Errorf("Target = %q, want %q", r.Target, "test")
	}
	if b, ok := r.Root.Then().(*ast.Builtin); !ok || b.Name() != ast.BuiltinHex {
		t.Errorf("rule emitter = %T, want builtin HEX", r.Root.Then())
	}
}

func TestParser_MaxFileSize(t *testing.T) {
	_, err := NewParser().WithMaxFileSize(8).ParseFile("../../../internal/testdata/valid/html.c2e")
	if err == nil {
		t.Fatal("ParseFile() succeeded past the size limit")
	}
	if codecerrors.TypeOf(err) != codecerrors.ErrorTypeIO {
		t.Errorf("error type = %v, want io", codecerrors.TypeOf(err))
	}
}

func TestParser_FileNotFound(t *testing.T) {
	_, err := NewParser().ParseFile("../../../internal/testdata/no-such-file.c2e")
	if err == nil {
		t.Fatal("ParseFile() succeeded on a missing file")
	}
	if codecerrors.TypeOf(err) != codecerrors.ErrorTypeIO {
		t.Errorf("error type = %v, want io", codecerrors.TypeOf(err))
	}
}

func BenchmarkParseBytes(b *testing.B) {
	doc := []byte(`
TARGET: html
RULES:
  - "&": "&amp;"
  - "<": "&lt;"
  - ">": "&gt;"
  - (U+0000-U+001F): { emitter: HEX_REF }
DEFAULT-EMITTER: { emitter: IDENTITY }
HEX_REF:
  - "&#x"
  - { emitter: HEX }
  - ";"
`)
	p := NewParser()
	for i := 0; i < b.N; i++ {
		if _, err := p.ParseBytes(doc, "bench"); err != nil {
			b.Fatal(err)
		}
	}
}
