package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Decoding errors.
var (
	ErrTrailingData  = errors.New("trailing data after top-level value")
	ErrEmptyDocument = errors.New("document contains no value")
	ErrBadMappingKey = errors.New("mapping key is not a scalar")
)

// DecodeJSON reads a single JSON value from r into a document tree. Numbers
// are carried as decimals built from the source digits, without a float
// round-trip. Mapping entries keep their order of appearance.
func DecodeJSON(r io.Reader) (Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	node, err := decodeJSONValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Null(), ErrEmptyDocument
		}

		return Null(), err
	}

	// A sales or catalogue file holds exactly one document.
	if dec.More() {
		return Null(), ErrTrailingData
	}

	return node, nil
}

func decodeJSONValue(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null(), err
	}

	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONMapping(dec)
		case '[':
			return decodeJSONSequence(dec)
		default:
			return Null(), fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return TextOf(t), nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return Null(), fmt.Errorf("invalid number %q: %w", t.String(), err)
		}

		return NumberOf(d), nil
	case bool:
		return Boolean(t), nil
	case nil:
		return Null(), nil
	default:
		return Null(), fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeJSONMapping(dec *json.Decoder) (Node, error) {
	var entries []Entry

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Null(), err
		}

		key, ok := keyTok.(string)
		if !ok {
			return Null(), ErrBadMappingKey
		}

		value, err := decodeJSONValue(dec)
		if err != nil {
			return Null(), err
		}

		entries = append(entries, Entry{Key: key, Value: value})
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return Null(), err
	}

	return Mapping(entries...), nil
}

func decodeJSONSequence(dec *json.Decoder) (Node, error) {
	var items []Node

	for dec.More() {
		item, err := decodeJSONValue(dec)
		if err != nil {
			return Null(), err
		}

		items = append(items, item)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return Null(), err
	}

	return Sequence(items...), nil
}

// DecodeYAML parses a YAML document into a document tree. Mapping entries
// keep their order of appearance.
func DecodeYAML(data []byte) (Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Null(), fmt.Errorf("failed to parse YAML: %w", err)
	}

	if root.Kind == 0 {
		return Null(), ErrEmptyDocument
	}

	return fromYAMLNode(&root)
}

func fromYAMLNode(n *yaml.Node) (Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), ErrEmptyDocument
		}

		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		entries := make([]Entry, 0, len(n.Content)/2)

		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return Null(), ErrBadMappingKey
			}

			value, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return Null(), err
			}

			entries = append(entries, Entry{Key: keyNode.Value, Value: value})
		}

		return Mapping(entries...), nil
	case yaml.SequenceNode:
		items := make([]Node, 0, len(n.Content))

		for _, c := range n.Content {
			item, err := fromYAMLNode(c)
			if err != nil {
				return Null(), err
			}

			items = append(items, item)
		}

		return Sequence(items...), nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	default:
		return Null(), fmt.Errorf("unsupported YAML node kind %d", n.Kind)
	}
}

func fromYAMLScalar(n *yaml.Node) (Node, error) {
	switch n.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		return Boolean(strings.EqualFold(n.Value, "true")), nil
	case "!!int", "!!float":
		d, err := decimal.NewFromString(n.Value)
		if err != nil {
			return Null(), fmt.Errorf("invalid number %q: %w", n.Value, err)
		}

		return NumberOf(d), nil
	default:
		return TextOf(n.Value), nil
	}
}

// LoadFile reads and decodes a document file, selecting the decoder by file
// extension (.yaml/.yml for YAML, JSON otherwise). On failure it returns the
// null node so the caller can continue with an empty document.
func LoadFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Null(), fmt.Errorf("failed to read document file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		node, err := DecodeYAML(data)
		if err != nil {
			return Null(), fmt.Errorf("invalid YAML in file %s: %w", path, err)
		}

		return node, nil
	default:
		node, err := DecodeJSON(bytes.NewReader(data))
		if err != nil {
			return Null(), fmt.Errorf("invalid JSON in file %s: %w", path, err)
		}

		return node, nil
	}
}
