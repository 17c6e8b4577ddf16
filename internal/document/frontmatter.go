// Package document models a slash-command markdown file: an optional YAML
// frontmatter block followed by a verbatim body.
package document

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter is the frontmatter marker line.
const Delimiter = "---"

// ParseError indicates the frontmatter block could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse frontmatter: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Bounds returns the opening and closing frontmatter line indices.
// Frontmatter is only detected when the first line is '---'.
// If the block is unclosed, endLine is -1.
func Bounds(lines []string) (startLine int, endLine int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != Delimiter {
		return 0, -1, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == Delimiter {
			return 0, i, true
		}
	}

	return 0, -1, true
}

// Parse splits raw content into frontmatter fields and body.
//
// A file without an opening marker is valid: Meta is nil and Body is the
// raw text verbatim. An opening marker without a closing marker, or a
// block that fails to decode as a mapping of string/boolean/sequence
// scalars, returns a *ParseError.
func Parse(raw, path string) (*Document, error) {
	lines := strings.Split(raw, "\n")

	_, endLine, ok := Bounds(lines)
	if !ok {
		return &Document{Path: path, Raw: raw, Body: raw}, nil
	}
	if endLine == -1 {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("closing '%s' not found", Delimiter)}
	}

	block := strings.Join(lines[1:endLine], "\n")

	meta, err := decodeBlock(block)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &Document{
		Path:           path,
		Raw:            raw,
		Meta:           meta,
		Body:           strings.Join(lines[endLine+1:], "\n"),
		HasFrontmatter: true,
		rawBlock:       block,
	}, nil
}

// decodeBlock decodes the frontmatter text into ordered fields. A yaml.Node
// walk is used instead of decoding into a map so declaration order survives.
func decodeBlock(block string) (*Fields, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(block), &root); err != nil {
		return nil, err
	}

	fields := NewFields()

	// Empty or comment-only blocks decode to a zero node. Frontmatter is
	// still considered present because it affects body offsets.
	if root.Kind == 0 || len(root.Content) == 0 {
		return fields, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("frontmatter is not a key/value mapping")
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valNode := mapping.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: field name is not a scalar", keyNode.Line)
		}

		value, err := valueFromNode(valNode)
		if err != nil {
			return nil, err
		}
		fields.Set(keyNode.Value, value)
	}

	return fields, nil
}

func valueFromNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!bool":
			return Bool(node.Value == "true" || node.Value == "True" || node.Value == "TRUE"), nil
		case "!!null":
			return String(""), nil
		default:
			// Numbers and other scalar tags are kept as their literal text;
			// the command format has no numeric fields.
			return String(node.Value), nil
		}
	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return Absent(), fmt.Errorf("line %d: sequence item is not a scalar", item.Line)
			}
			items = append(items, item.Value)
		}
		return List(items), nil
	case yaml.AliasNode:
		if node.Alias != nil {
			return valueFromNode(node.Alias)
		}
		return Absent(), fmt.Errorf("line %d: unresolved alias", node.Line)
	default:
		return Absent(), fmt.Errorf("line %d: nested mappings are not supported in frontmatter", node.Line)
	}
}
