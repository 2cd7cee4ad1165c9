package parser

import (
	"fmt"
	"os"

	"c2e-dev/c2e/pkg/codec/ast"
	codecerrors "c2e-dev/c2e/pkg/codec/errors"
)

// Result is the outcome of compiling one codec document.
type Result struct {
	// Target is the output target's identifying name.
	Target string

	// EmitterNames lists the referenced emitter names: builtins actually
	// used, in canonical DEC/HEX/IDENTITY/NOP order, followed by
	// user-defined names in declaration order.
	EmitterNames []string

	// UserEmitters maps each user-defined emitter name to its compiled
	// subtree. Every declared definition is compiled, referenced or not,
	// so downstream renderers can emit code for all of them.
	UserEmitters map[string]ast.Emitter

	// Root is the compiled rule chain.
	Root *ast.If
}

// Parser compiles codec documents into ASTs.
type Parser struct {
	maxFileSize int64
}

// NewParser creates a parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxFileSize: 1 * 1024 * 1024, // 1MB
	}
}

// WithMaxFileSize sets the maximum document size accepted by ParseFile.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// ParseFile compiles the codec document at path.
func (p *Parser) ParseFile(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &codecerrors.Error{
			Type:     codecerrors.ErrorTypeIO,
			Message:  fmt.Sprintf("cannot access codec document: %v", err),
			Location: codecerrors.Location{File: path},
		}
	}
	if info.Size() > p.maxFileSize {
		return nil, &codecerrors.Error{
			Type:     codecerrors.ErrorTypeIO,
			Message:  fmt.Sprintf("document size %d exceeds maximum %d bytes", info.Size(), p.maxFileSize),
			Location: codecerrors.Location{File: path},
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &codecerrors.Error{
			Type:     codecerrors.ErrorTypeIO,
			Message:  fmt.Sprintf("cannot read codec document: %v", err),
			Location: codecerrors.Location{File: path},
		}
	}
	return p.ParseBytes(data, path)
}

// ParseBytes compiles a codec document from memory. sourcePath is used for
// error locations only and may be empty.
func (p *Parser) ParseBytes(data []byte, sourcePath string) (*Result, error) {
	doc, err := decodeDocument(data, sourcePath)
	if err != nil {
		return nil, err
	}
	return compile(doc)
}

// compile runs emitter resolution, guard parsing, and chain construction over
// a decoded document.
func compile(doc *document) (*Result, error) {
	emitters := newEmitterParser(doc)

	// Compile every declared user-defined emitter up front. This surfaces
	// unknown references and cycles even in definitions no rule uses, and
	// gives renderers a subtree per declared name.
	userTrees := make(map[string]ast.Emitter, len(doc.userNames))
	for _, name := range doc.userNames {
		tree, err := emitters.resolveUserDefined(name, doc.userDefs[name], codecerrors.Location{File: doc.path})
		if err != nil {
			return nil, err
		}
		userTrees[name] = tree
	}

	rules := make([]compiledRule, 0, len(doc.rules))
	for _, entry := range doc.rules {
		guard, err := parseGuard(entry.guard, entry.loc)
		if err != nil {
			return nil, err
		}
		emitter, err := emitters.parseEmitter(entry.spec)
		if err != nil {
			return nil, err
		}
		rules = append(rules, compiledRule{guard: guard, emitter: emitter})
	}

	var defaultEmitter ast.Emitter
	if doc.defaultSpec != nil {
		var err error
		defaultEmitter, err = emitters.parseEmitter(doc.defaultSpec)
		if err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(doc.userNames)+4)
	for _, b := range ast.BuiltinNames() {
		if emitters.usedBuiltins[b] {
			names = append(names, string(b))
		}
	}
	names = append(names, doc.userNames...)

	return &Result{
		Target:       doc.target,
		EmitterNames: names,
		UserEmitters: userTrees,
		Root:         buildChain(rules, defaultEmitter),
	}, nil
}
