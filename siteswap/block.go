package siteswap

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Shape is the tag of a ParsedBlock.
type Shape int

const (
	ShapeInvalid Shape = iota
	ShapeMapping
	ShapeScalar
)

// ParsedBlock is the structural parse of a block before validation.
type ParsedBlock struct {
	Shape    Shape
	Mapping  Params // ShapeMapping
	Scalar   Value  // ShapeScalar
	Reason   string // ShapeInvalid
	Warnings []Warning
}

// tokenize makes "key:value" acceptable to a YAML parser. Neither keys nor
// values contain colons, so a space after every colon is always safe.
func tokenize(source string) string {
	return strings.ReplaceAll(source, ":", ": ")
}

// ParseBlock parses raw block text. The returned error is always a
// *BlockError of kind ErrorParse.
func ParseBlock(source string) (ParsedBlock, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(tokenize(source)), &doc); err != nil {
		return ParsedBlock{}, parseError(err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return ParsedBlock{Shape: ShapeInvalid, Reason: "empty block"}, nil
	}

	root := resolveAlias(doc.Content[0])
	switch root.Kind {
	case yaml.MappingNode:
		return parseMapping(root)
	case yaml.ScalarNode:
		switch root.ShortTag() {
		case "!!null":
			return ParsedBlock{Shape: ShapeInvalid, Reason: "null block"}, nil
		case "!!bool":
			return ParsedBlock{Shape: ShapeInvalid, Reason: "boolean block"}, nil
		}
		// A bare pattern is kept exactly as written: "015" is not 13.
		return ParsedBlock{Shape: ShapeScalar, Scalar: String(root.Value)}, nil
	case yaml.SequenceNode:
		return ParsedBlock{Shape: ShapeInvalid, Reason: "list block"}, nil
	default:
		return ParsedBlock{Shape: ShapeInvalid, Reason: "unsupported block"}, nil
	}
}

func parseMapping(node *yaml.Node) (ParsedBlock, error) {
	block := ParsedBlock{Shape: ShapeMapping, Mapping: Params{}}
	seen := make(map[string]bool, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := resolveAlias(node.Content[i])
		valueNode := resolveAlias(node.Content[i+1])

		if keyNode.Kind != yaml.ScalarNode {
			return ParsedBlock{Shape: ShapeInvalid, Reason: fmt.Sprintf("line %d: non-scalar key", keyNode.Line)}, nil
		}
		key := keyNode.Value
		if seen[key] {
			return ParsedBlock{}, parseError(fmt.Errorf("yaml: line %d: mapping key %q already defined", keyNode.Line, key))
		}
		seen[key] = true

		if valueNode.Kind != yaml.ScalarNode {
			return ParsedBlock{Shape: ShapeInvalid, Reason: fmt.Sprintf("line %d: value of %q is not a scalar", valueNode.Line, key)}, nil
		}

		value, tag, err := scalarValue(valueNode)
		if err != nil {
			return ParsedBlock{}, parseError(err)
		}
		if key == KeyPattern && tag != "!!null" {
			value = String(valueNode.Value)
		}
		if tag == "!!null" {
			block.Warnings = append(block.Warnings, Warning{
				Type:    WarningIgnoredParameter,
				Key:     key,
				Message: fmt.Sprintf("parameter %q has no value and was ignored", key),
			})
			continue
		}

		block.Mapping = append(block.Mapping, Param{Key: key, Value: value, Source: SourceBlock})
	}

	return block, nil
}

func scalarValue(node *yaml.Node) (Value, string, error) {
	tag := node.ShortTag()
	switch tag {
	case "!!null":
		return Value{}, tag, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, tag, fmt.Errorf("yaml: line %d: %w", node.Line, err)
		}
		return Bool(b), tag, nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return String(node.Value), tag, nil
		}
		return numberText(f, node.Value), tag, nil
	default:
		return String(node.Value), tag, nil
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// validate turns a parsed block into the block parameters, applying the
// shorthand form for bare scalars.
func (b ParsedBlock) validate() (Params, error) {
	switch b.Shape {
	case ShapeMapping:
		if !b.Mapping.Has(KeyPattern) {
			return nil, missingPatternError()
		}
		return b.Mapping, nil
	case ShapeScalar:
		return Params{{Key: KeyPattern, Value: String(b.Scalar.String()), Source: SourceBlock}}, nil
	default:
		return nil, unsupportedShapeError(errors.New(b.Reason))
	}
}
