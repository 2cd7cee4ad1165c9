package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"c2e-dev/c2e/pkg/codec/ast"
	codecerrors "c2e-dev/c2e/pkg/codec/errors"
)

// emitterKey is the mapping key of an emitter reference: {emitter: NAME}.
const emitterKey = "emitter"

// emitterParser resolves emitter specs against one codec document. It tracks
// the chain of user-defined names currently being resolved so transitively
// self-referential definitions fail instead of recursing without bound, and
// records which builtins the document actually references.
type emitterParser struct {
	doc          *document
	resolving    []string // names on the current resolution path, in order
	usedBuiltins map[ast.BuiltinName]bool
}

func newEmitterParser(doc *document) *emitterParser {
	return &emitterParser{
		doc:          doc,
		usedBuiltins: make(map[ast.BuiltinName]bool),
	}
}

// parseEmitter compiles one emitter spec. A spec is either a literal string
// (constant emitter) or a mapping {emitter: NAME} referencing a user-defined
// emitter or a builtin. User-defined names are looked up first, so a
// document-level definition shadows a builtin of the same name.
func (p *emitterParser) parseEmitter(node *yaml.Node) (ast.Emitter, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag != "!!str" {
			return nil, &codecerrors.Error{
				Type:     codecerrors.ErrorTypeUnknownEmitter,
				Message:  fmt.Sprintf("%s is not an emitter spec", node.Value),
				Location: nodeLocation(node, p.doc.path),
			}
		}
		return ast.NewConstant(node.Value), nil

	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == emitterKey {
				return p.parseReference(node.Content[i+1])
			}
		}
		return nil, &codecerrors.Error{
			Type:       codecerrors.ErrorTypeUnknownEmitter,
			Message:    "emitter reference has no \"emitter\" key",
			Location:   nodeLocation(node, p.doc.path),
			Suggestion: `write references as {emitter: "NAME"}`,
		}

	default:
		return nil, &codecerrors.Error{
			Type:     codecerrors.ErrorTypeUnknownEmitter,
			Message:  "emitter spec must be a string or an {emitter: NAME} reference",
			Location: nodeLocation(node, p.doc.path),
		}
	}
}

// parseReference resolves a named emitter reference.
func (p *emitterParser) parseReference(nameNode *yaml.Node) (ast.Emitter, error) {
	if nameNode.Kind != yaml.ScalarNode {
		return nil, &codecerrors.Error{
			Type:     codecerrors.ErrorTypeUnknownEmitter,
			Message:  "emitter name must be a string",
			Location: nodeLocation(nameNode, p.doc.path),
		}
	}
	name := nameNode.Value

	if def, ok := p.doc.userDefs[name]; ok {
		return p.resolveUserDefined(name, def, nodeLocation(nameNode, p.doc.path))
	}

	if ast.IsBuiltinName(name) {
		builtin, err := ast.NewBuiltin(name)
		if err != nil {
			return nil, err
		}
		p.usedBuiltins[builtin.Name()] = true
		return builtin, nil
	}

	known := make([]string, 0, len(p.doc.userNames)+4)
	known = append(known, p.doc.userNames...)
	for _, b := range ast.BuiltinNames() {
		known = append(known, string(b))
	}
	return nil, &codecerrors.Error{
		Type:       codecerrors.ErrorTypeUnknownEmitter,
		Message:    fmt.Sprintf("%q names neither a builtin nor a user-defined emitter", name),
		Location:   nodeLocation(nameNode, p.doc.path),
		Suggestion: codecerrors.SuggestEmitterName(name, known),
	}
}

// resolveUserDefined parses the definition of a user-defined emitter into an
// emitter list, guarding against cycles.
func (p *emitterParser) resolveUserDefined(name string, def *yaml.Node, loc codecerrors.Location) (ast.Emitter, error) {
	for _, active := range p.resolving {
		if active == name {
			chain := append(append([]string{}, p.resolving...), name)
			return nil, &codecerrors.Error{
				Type:       codecerrors.ErrorTypeCycle,
				Message:    fmt.Sprintf("emitter %q references itself: %s", name, strings.Join(chain, " -> ")),
				Location:   loc,
				Suggestion: "emitter definitions must not reference themselves, directly or transitively",
			}
		}
	}

	if def.Kind == yaml.AliasNode {
		def = def.Alias
	}
	if def.Kind != yaml.SequenceNode {
		return nil, &codecerrors.Error{
			Type:       codecerrors.ErrorTypeStructural,
			Message:    fmt.Sprintf("definition of emitter %q must be an ordered list of emitter specs", name),
			Location:   nodeLocation(def, p.doc.path),
			Suggestion: fmt.Sprintf(`%s: [{emitter: "HEX"}]`, name),
		}
	}

	p.resolving = append(p.resolving, name)
	defer func() { p.resolving = p.resolving[:len(p.resolving)-1] }()

	elements := make([]ast.Emitter, 0, len(def.Content))
	for _, specNode := range def.Content {
		e, err := p.parseEmitter(specNode)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return ast.NewList(elements...), nil
}
