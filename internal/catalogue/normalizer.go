package catalogue

import (
	"salescalc/internal/document"
)

// Default key aliases for catalogue records, in priority order.
var (
	DefaultNameAliases  = []string{"product", "name", "title", "id", "sku"}
	DefaultPriceAliases = []string{"price", "cost", "value"}
)

// Normalizer converts a raw price catalogue document into a Catalogue.
// Malformed entries are dropped without diagnostics; catalogue-level
// tolerance is deliberately looser than the sales-record path.
type Normalizer struct {
	nameAliases  []string
	priceAliases []string
}

// NewNormalizer creates a normalizer with the default alias lists.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithAliases(DefaultNameAliases, DefaultPriceAliases)
}

// NewNormalizerWithAliases creates a normalizer with custom alias lists.
func NewNormalizerWithAliases(nameAliases, priceAliases []string) *Normalizer {
	return &Normalizer{
		nameAliases:  nameAliases,
		priceAliases: priceAliases,
	}
}

// Normalize builds the canonical catalogue from a raw document. Two source
// forms are supported: a direct mapping of name to price, and a sequence of
// records with aliasable name/price keys. Any other shape yields an empty
// catalogue. Normalize never fails; it is a pure function over its input.
func (n *Normalizer) Normalize(raw document.Node) *Catalogue {
	cat := newCatalogue()

	switch raw.Kind {
	case document.KindMapping:
		for _, ent := range raw.Entries {
			price, ok := ent.Value.AsDecimal()
			if !ok {
				continue
			}

			cat.add(ent.Key, price)
		}
	case document.KindSequence:
		for _, item := range raw.Items {
			if item.Kind != document.KindMapping {
				continue
			}

			_, nameValue, ok := item.ResolveAlias(n.nameAliases)
			if !ok || nameValue.Kind != document.KindText {
				continue
			}

			_, priceValue, ok := item.ResolveAlias(n.priceAliases)
			if !ok {
				continue
			}

			price, ok := priceValue.AsDecimal()
			if !ok {
				continue
			}

			cat.add(nameValue.Text, price)
		}
	}

	return cat
}
