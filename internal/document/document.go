// Package document provides the generic in-memory representation of
// deserialized input: a tagged tree of mappings, ordered sequences, and
// scalars. Traversal code pattern-matches on the node kind instead of
// relying on runtime type inspection.
package document

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies the shape of a document node.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindText
	KindSequence
	KindMapping
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Entry is one key/value pair of a mapping node. Entries keep the order in
// which they appeared in the source document.
type Entry struct {
	Key   string
	Value Node
}

// Node is a single node of a document tree. Exactly one of the value fields
// is meaningful, selected by Kind.
type Node struct {
	Kind    Kind
	Bool    bool
	Number  decimal.Decimal
	Text    string
	Items   []Node  // sequence elements, in order
	Entries []Entry // mapping entries, in document order
}

// Null returns the null node.
func Null() Node {
	return Node{Kind: KindNull}
}

// Boolean returns a boolean node.
func Boolean(b bool) Node {
	return Node{Kind: KindBoolean, Bool: b}
}

// NumberOf returns a number node.
func NumberOf(d decimal.Decimal) Node {
	return Node{Kind: KindNumber, Number: d}
}

// TextOf returns a text node.
func TextOf(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// Sequence returns a sequence node over the given elements.
func Sequence(items ...Node) Node {
	return Node{Kind: KindSequence, Items: items}
}

// Mapping returns a mapping node over the given entries.
func Mapping(entries ...Entry) Node {
	return Node{Kind: KindMapping, Entries: entries}
}

// IsContainer reports whether the node is a mapping or a sequence.
func (n Node) IsContainer() bool {
	return n.Kind == KindMapping || n.Kind == KindSequence
}

// ResolveAlias finds the first alias present among the mapping's keys,
// checked in the priority order the alias list defines. Key comparison is
// case-insensitive; the first matching entry wins. It returns the matched
// source key, its value, and whether a match was found.
func (n Node) ResolveAlias(aliases []string) (string, Node, bool) {
	if n.Kind != KindMapping {
		return "", Node{}, false
	}

	for _, alias := range aliases {
		for _, ent := range n.Entries {
			if strings.EqualFold(ent.Key, alias) {
				return ent.Key, ent.Value, true
			}
		}
	}

	return "", Node{}, false
}

// AsDecimal interprets the node as a real number: either a native number or
// numeric-looking text. It reports false for any other shape.
func (n Node) AsDecimal() (decimal.Decimal, bool) {
	switch n.Kind {
	case KindNumber:
		return n.Number, true
	case KindText:
		d, err := decimal.NewFromString(strings.TrimSpace(n.Text))
		if err != nil {
			return decimal.Decimal{}, false
		}

		return d, true
	default:
		return decimal.Decimal{}, false
	}
}
