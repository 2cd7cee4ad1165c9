package codec

import (
	"fmt"
	"os"

	"c2e-dev/c2e/pkg/codec/ast"
	codecerrors "c2e-dev/c2e/pkg/codec/errors"
	"c2e-dev/c2e/pkg/codec/parser"
	"c2e-dev/c2e/pkg/codec/validator"
)

// Codec is one compiled rule set: a target name, the emitter names it
// references, and the compiled rule-chain AST. Codecs are immutable once
// built; compilation happens exactly once per document.
type Codec struct {
	target       string
	emitterNames []string
	userEmitters map[string]ast.Emitter
	root         *ast.If
}

// Target returns the identifying name of the codec's output target.
func (c *Codec) Target() string { return c.target }

// Emitters returns the referenced emitter names: builtins actually used, in
// canonical order, followed by user-defined names in declaration order.
func (c *Codec) Emitters() []string {
	names := make([]string, len(c.emitterNames))
	copy(names, c.emitterNames)
	return names
}

// UserEmitter returns the compiled subtree of a user-defined emitter, or nil
// if the codec declares no emitter with that name.
func (c *Codec) UserEmitter(name string) ast.Emitter {
	return c.userEmitters[name]
}

// Root returns the root of the compiled rule chain.
func (c *Codec) Root() *ast.If { return c.root }

// fromResult wraps a parser result into a Codec.
func fromResult(r *parser.Result) *Codec {
	return &Codec{
		target:       r.Target,
		emitterNames: r.EmitterNames,
		userEmitters: r.UserEmitters,
		root:         r.Root,
	}
}

// ParseFile compiles the codec document at path without schema validation.
func ParseFile(path string) (*Codec, error) {
	r, err := parser.NewParser().ParseFile(path)
	if err != nil {
		return nil, err
	}
	return fromResult(r), nil
}

// ParseBytes compiles a codec document from memory. sourcePath is used for
// error locations only and may be empty.
func ParseBytes(data []byte, sourcePath string) (*Codec, error) {
	r, err := parser.NewParser().ParseBytes(data, sourcePath)
	if err != nil {
		return nil, err
	}
	return fromResult(r), nil
}

// ParseAndValidateFile validates the document at path against the codec
// document schema, then compiles it.
func ParseAndValidateFile(path string) (*Codec, error) {
	data, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return ParseAndValidateBytes(data, path)
}

// ParseAndValidateBytes validates document bytes against the codec document
// schema, then compiles them.
func ParseAndValidateBytes(data []byte, sourcePath string) (*Codec, error) {
	if err := validator.NewValidator().Validate(data, sourcePath); err != nil {
		return nil, err
	}
	return ParseBytes(data, sourcePath)
}

func readDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &codecerrors.Error{
			Type:     codecerrors.ErrorTypeIO,
			Message:  fmt.Sprintf("cannot read codec document: %v", err),
			Location: codecerrors.Location{File: path},
		}
	}
	return data, nil
}
