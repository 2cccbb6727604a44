package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/field"
)

// YAMLParser implements the Parser interface for YAML documents.
// Scalars keep their source text, so "max: 100.00" stays "100.00".
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes a document that is either a sequence of field mappings or
// a mapping with a "fields" sequence.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) ([]field.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	list, err := yamlFieldList(&doc)
	if err != nil {
		return nil, err
	}

	defs := make([]field.Definition, 0, len(list.Content))
	for i, item := range list.Content {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrParsingCancelled, err)
		}
		def, err := yamlDefinition(resolve(item))
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

func yamlFieldList(doc *yaml.Node) (*yaml.Node, error) {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	root = resolve(root)

	switch root.Kind {
	case yaml.SequenceNode:
		return root, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == FieldsKey {
				if list := resolve(root.Content[i+1]); list.Kind == yaml.SequenceNode {
					return list, nil
				}
				return nil, fmt.Errorf("%w: line %d: %q must be a list", ErrInvalidDocument, root.Content[i+1].Line, FieldsKey)
			}
		}
		return nil, fmt.Errorf("%w: line %d: missing %q", ErrInvalidDocument, root.Line, FieldsKey)
	}
	return nil, fmt.Errorf("%w: line %d: expected a list of fields", ErrInvalidDocument, root.Line)
}

func yamlDefinition(node *yaml.Node) (field.Definition, error) {
	var def field.Definition
	if node.Kind != yaml.MappingNode {
		return def, fmt.Errorf("%w: line %d: expected a mapping", ErrInvalidDocument, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		raw, err := yamlValue(resolve(node.Content[i+1]))
		if err != nil {
			return def, fmt.Errorf("%w: line %d: %s: %w", ErrInvalidDocument, key.Line, key.Value, err)
		}
		if err := put(&def, key.Value, raw, fmt.Sprintf("line %d", key.Line)); err != nil {
			return def, err
		}
	}
	return def, nil
}

func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return yamlScalar(node)
	case yaml.MappingNode:
		entries := make([]attribute.Entry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v := resolve(node.Content[i+1])
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: %s: nested values must be scalars", v.Line, node.Content[i].Value)
			}
			entries = append(entries, attribute.Entry{Key: node.Content[i].Value, Value: v.Value})
		}
		return entries, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: list items must be scalars", item.Line)
			}
			v, err := yamlScalar(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	}
	return nil, fmt.Errorf("line %d: unsupported node", node.Line)
}

func yamlScalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	}
	return node.Value, nil
}

// resolve follows aliases to their anchored node.
func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
