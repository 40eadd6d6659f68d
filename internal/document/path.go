package document

import (
	"strconv"
)

// Path locates a node within a document tree, rendered JSON-Pointer-like:
// $ for the root, .key for mapping keys, [i] for sequence indices, and
// ["key"] for flat-map entries.
type Path struct {
	s string
}

// Root returns the root path "$".
func Root() Path {
	return Path{s: "$"}
}

// Key returns the path extended by a mapping key.
func (p Path) Key(key string) Path {
	return Path{s: p.s + "." + key}
}

// Index returns the path extended by a sequence index.
func (p Path) Index(i int) Path {
	return Path{s: p.s + "[" + strconv.Itoa(i) + "]"}
}

// Entry returns the path extended by a flat-map entry key.
func (p Path) Entry(key string) Path {
	return Path{s: p.s + "[" + strconv.Quote(key) + "]"}
}

// String returns the rendered locator.
func (p Path) String() string {
	if p.s == "" {
		return "$"
	}

	return p.s
}
