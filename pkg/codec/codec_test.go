package codec

import (
	"testing"

	"c2e-dev/c2e/pkg/codec/ast"
	codecerrors "c2e-dev/c2e/pkg/codec/errors"
)

func TestParseAndValidateFile(t *testing.T) {
	c, err := ParseAndValidateFile("../../internal/testdata/valid/html.c2e")
	if err != nil {
		t.Fatalf("ParseAndValidateFile() failed: %v", err)
	}

	if c.Target() != "html" {
		t.Errorf("Target() = %q, want %q", c.Target(), "html")
	}
	if c.Root() == nil {
		t.Fatal("Root() is nil")
	}

	emitter := c.UserEmitter("HEX_REF")
	if emitter == nil {
		t.Fatal("UserEmitter(\"HEX_REF\") = nil")
	}
	if _, ok := emitter.(*ast.List); !ok {
		t.Errorf("UserEmitter(\"HEX_REF\") is %T, want *ast.List", emitter)
	}
	if c.UserEmitter("HEX") != nil {
		t.Error("UserEmitter(\"HEX\") != nil for a builtin")
	}
}

func TestParseAndValidateBytes(t *testing.T) {
	doc := []byte(`
TARGET: test
RULES:
  - "\"": { emitter: HEX }
DEFAULT-EMITTER: { emitter: IDENTITY }
`)
	c, err := ParseAndValidateBytes(doc, "memory://test")
	if err != nil {
		t.Fatalf("ParseAndValidateBytes() failed: %v", err)
	}
	if c.Target() != "test" {
		t.Errorf("Target() = %q, want %q", c.Target(), "test")
	}
}

func TestParseAndValidateBytes_SchemaViolation(t *testing.T) {
	// RULES as a mapping fails schema validation before compilation.
	doc := []byte(`
TARGET: test
RULES:
  "a": "one"
`)
	_, err := ParseAndValidateBytes(doc, "memory://test")
	if err == nil {
		t.Fatal("ParseAndValidateBytes() succeeded on a schema-violating document")
	}
	if codecerrors.TypeOf(err) != codecerrors.ErrorTypeStructural {
		t.Errorf("error type = %v, want structural", codecerrors.TypeOf(err))
	}
}

func TestCodec_EmittersReturnsCopy(t *testing.T) {
	c, err := ParseAndValidateFile("../../internal/testdata/valid/html.c2e")
	if err != nil {
		t.Fatalf("ParseAndValidateFile() failed: %v", err)
	}

	names := c.Emitters()
	if len(names) == 0 {
		t.Fatal("Emitters() is empty")
	}
	names[0] = "clobbered"
	if c.Emitters()[0] == "clobbered" {
		t.Error("mutating the returned slice changed the codec")
	}
}

func TestParseFile_CompilationErrors(t *testing.T) {
	tests := []struct {
		path string
		want codecerrors.ErrorType
	}{
		{"../../internal/testdata/invalid/missing-target.c2e", codecerrors.ErrorTypeMissingKey},
		{"../../internal/testdata/invalid/cycle.c2e", codecerrors.ErrorTypeCycle},
		{"../../internal/testdata/invalid/unknown-emitter.c2e", codecerrors.ErrorTypeUnknownEmitter},
		{"../../internal/testdata/invalid/bad-guard.c2e", codecerrors.ErrorTypeMalformedGuard},
	}
	for _, tt := range tests {
		_, err := ParseFile(tt.path)
		if err == nil {
			t.Errorf("ParseFile(%q) succeeded, want %v error", tt.path, tt.want)
			continue
		}
		if !codecerrors.HasType(err, tt.want) {
			t.Errorf("ParseFile(%q) error type = %v, want %v", tt.path, codecerrors.TypeOf(err), tt.want)
		}
	}
}
