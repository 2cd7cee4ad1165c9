package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	codecerrors "c2e-dev/c2e/pkg/codec/errors"
)

// Document keys with fixed meaning. Every other top-level key declares a
// user-defined emitter.
const (
	keyTarget         = "TARGET"
	keyRules          = "RULES"
	keyDefaultEmitter = "DEFAULT-EMITTER"
)

// document is the decoded intermediate form of a codec document. It keeps
// the original yaml nodes so emitter specs can be parsed lazily and errors
// can point at source lines.
type document struct {
	path string

	target    string
	targetSet bool

	rules    []ruleEntry
	rulesSet bool

	defaultSpec *yaml.Node // nil when DEFAULT-EMITTER is absent

	userNames []string              // user-defined emitter names in declaration order
	userDefs  map[string]*yaml.Node // name -> definition (sequence of emitter specs)
}

// ruleEntry is one (guard, emitter spec) pair from RULES, in declaration
// order.
type ruleEntry struct {
	guard string
	spec  *yaml.Node
	loc   codecerrors.Location
}

// decodeDocument decodes codec document bytes into the intermediate form.
// It enforces document shape (mapping at the top level, RULES a sequence of
// single-entry mappings) and the TARGET/RULES required keys.
func decodeDocument(data []byte, path string) (*document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &codecerrors.Error{
			Type:       codecerrors.ErrorTypeSyntax,
			Message:    fmt.Sprintf("document is not well-formed: %v", err),
			Location:   codecerrors.Location{File: path, Line: 1},
			Suggestion: "check YAML/JSON syntax (quoting, brackets, indentation)",
		}
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		return nil, &codecerrors.Error{
			Type:     codecerrors.ErrorTypeStructural,
			Message:  "codec document must be a mapping",
			Location: codecerrors.Location{File: path, Line: 1},
		}
	}

	doc := &document{
		path:     path,
		userDefs: make(map[string]*yaml.Node),
	}

	mapping := root.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valNode := mapping.Content[i+1]
		loc := nodeLocation(keyNode, path)

		switch keyNode.Value {
		case keyTarget:
			if valNode.Kind != yaml.ScalarNode {
				return nil, &codecerrors.Error{
					Type:     codecerrors.ErrorTypeStructural,
					Message:  "TARGET must be a string",
					Location: nodeLocation(valNode, path),
				}
			}
			doc.target = valNode.Value
			doc.targetSet = true

		case keyRules:
			rules, err := decodeRules(valNode, path)
			if err != nil {
				return nil, err
			}
			doc.rules = rules
			doc.rulesSet = true

		case keyDefaultEmitter:
			doc.defaultSpec = valNode

		default:
			if _, dup := doc.userDefs[keyNode.Value]; dup {
				return nil, &codecerrors.Error{
					Type:     codecerrors.ErrorTypeStructural,
					Message:  fmt.Sprintf("emitter %q is defined more than once", keyNode.Value),
					Location: loc,
				}
			}
			doc.userNames = append(doc.userNames, keyNode.Value)
			doc.userDefs[keyNode.Value] = valNode
		}
	}

	if !doc.targetSet {
		return nil, &codecerrors.Error{
			Type:       codecerrors.ErrorTypeMissingKey,
			Message:    "codec document has no TARGET",
			Location:   codecerrors.Location{File: path, Line: 1},
			Suggestion: codecerrors.SuggestMissingKey(keyTarget, `TARGET: "html"`),
		}
	}
	if !doc.rulesSet {
		return nil, &codecerrors.Error{
			Type:       codecerrors.ErrorTypeMissingKey,
			Message:    "codec document has no RULES",
			Location:   codecerrors.Location{File: path, Line: 1},
			Suggestion: codecerrors.SuggestMissingKey(keyRules, `RULES: [{"<": {emitter: HEX}}]`),
		}
	}

	return doc, nil
}

// decodeRules decodes the RULES sequence. Each element must be a mapping with
// exactly one entry: guard text mapped to an emitter spec.
func decodeRules(node *yaml.Node, path string) ([]ruleEntry, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, &codecerrors.Error{
			Type:     codecerrors.ErrorTypeStructural,
			Message:  "RULES must be an ordered list of rules",
			Location: nodeLocation(node, path),
		}
	}

	rules := make([]ruleEntry, 0, len(node.Content))
	for i, entry := range node.Content {
		if entry.Kind != yaml.MappingNode || len(entry.Content) != 2 {
			return nil, &codecerrors.Error{
				Type:       codecerrors.ErrorTypeStructural,
				Message:    fmt.Sprintf("rule at index %d must be a mapping with exactly one guard", i),
				Location:   nodeLocation(entry, path),
				Suggestion: `write each rule as {"<guard>": <emitter spec>}`,
			}
		}
		keyNode := entry.Content[0]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, &codecerrors.Error{
				Type:     codecerrors.ErrorTypeStructural,
				Message:  fmt.Sprintf("guard of rule at index %d must be a string", i),
				Location: nodeLocation(keyNode, path),
			}
		}
		rules = append(rules, ruleEntry{
			guard: keyNode.Value,
			spec:  entry.Content[1],
			loc:   nodeLocation(keyNode, path),
		})
	}
	return rules, nil
}

// nodeLocation extracts the source location of a yaml node.
func nodeLocation(node *yaml.Node, path string) codecerrors.Location {
	if node == nil {
		return codecerrors.Location{File: path}
	}
	return codecerrors.Location{File: path, Line: node.Line, Col: node.Column}
}
