package sales

import (
	"strconv"

	"salescalc/internal/catalogue"
	"salescalc/internal/document"
)

// Default key aliases for line items, in priority order.
var (
	DefaultProductAliases  = []string{"product", "name", "item", "sku"}
	DefaultQuantityAliases = []string{"quantity", "qty", "amount", "units"}
)

// Extractor walks an arbitrary sales record document, discovers candidate
// line items wherever they appear, and validates each one independently.
// Anomalies become diagnostics; extraction never fails.
type Extractor struct {
	productAliases  []string
	quantityAliases []string
}

// NewExtractor creates an extractor with the default alias lists.
func NewExtractor() *Extractor {
	return NewExtractorWithAliases(DefaultProductAliases, DefaultQuantityAliases)
}

// NewExtractorWithAliases creates an extractor with custom alias lists.
func NewExtractorWithAliases(productAliases, quantityAliases []string) *Extractor {
	return &Extractor{
		productAliases:  productAliases,
		quantityAliases: quantityAliases,
	}
}

// Extract traverses the sales document against the catalogue and returns the
// aggregated result. A top-level mapping whose values are all scalars is
// interpreted as the flat product-to-quantity form; anything else goes
// through the recursive search.
func (e *Extractor) Extract(raw document.Node, cat *catalogue.Catalogue) *RunResult {
	res := newRunResult()

	if raw.Kind == document.KindMapping && !e.isCandidate(raw) && isFlatQuantityMap(raw) {
		for _, ent := range raw.Entries {
			e.validateFlatEntry(ent, document.Root().Entry(ent.Key), cat, res)
		}

		return res
	}

	e.walk(raw, document.Root(), cat, res)

	return res
}

// walk performs the depth-first search in container order. A mapping that is
// a candidate line item is a leaf: its child values are not searched, so a
// quantity field that happens to be a nested structure cannot be counted
// twice.
func (e *Extractor) walk(n document.Node, path document.Path, cat *catalogue.Catalogue, res *RunResult) {
	switch n.Kind {
	case document.KindMapping:
		if e.isCandidate(n) {
			e.validateCandidate(n, path, cat, res)

			return
		}

		for _, ent := range n.Entries {
			e.walk(ent.Value, path.Key(ent.Key), cat, res)
		}
	case document.KindSequence:
		for i, item := range n.Items {
			e.walk(item, path.Index(i), cat, res)
		}
	}
	// Scalars contribute nothing.
}

func (e *Extractor) isCandidate(n document.Node) bool {
	if _, _, ok := n.ResolveAlias(e.productAliases); !ok {
		return false
	}

	_, _, ok := n.ResolveAlias(e.quantityAliases)

	return ok
}

// isFlatQuantityMap reports whether a mapping looks like the degenerate flat
// product-to-quantity form: non-empty, with no container values.
func isFlatQuantityMap(n document.Node) bool {
	if len(n.Entries) == 0 {
		return false
	}

	for _, ent := range n.Entries {
		if ent.Value.IsContainer() {
			return false
		}
	}

	return true
}

// validateCandidate applies the validation rules in fixed order; the first
// failure wins and emits exactly one diagnostic.
func (e *Extractor) validateCandidate(n document.Node, path document.Path, cat *catalogue.Catalogue, res *RunResult) {
	productKey, productValue, _ := n.ResolveAlias(e.productAliases)
	quantityKey, quantityValue, _ := n.ResolveAlias(e.quantityAliases)

	if productValue.Kind != document.KindText {
		res.reject(ReasonInvalidProductValue, path.Key(productKey), productValue.String())

		return
	}

	price, ok := cat.Price(productValue.Text)
	if !ok {
		res.reject(ReasonUnknownProduct, path, productValue.String())

		return
	}

	quantity, ok := quantityValue.AsDecimal()
	if !ok {
		res.reject(ReasonInvalidNumericValue, path.Key(quantityKey), quantityValue.String())

		return
	}

	if !quantity.IsPositive() {
		res.reject(ReasonNonPositiveQuantity, path.Key(quantityKey), quantity.String())

		return
	}

	res.accept(price, quantity)
}

// validateFlatEntry validates one entry of the flat form, with the mapping
// key as product and the value as quantity. The product is always text here,
// so only the catalogue and quantity rules apply.
func (e *Extractor) validateFlatEntry(ent document.Entry, path document.Path, cat *catalogue.Catalogue, res *RunResult) {
	price, ok := cat.Price(ent.Key)
	if !ok {
		res.reject(ReasonUnknownProduct, path, strconv.Quote(ent.Key))

		return
	}

	quantity, ok := ent.Value.AsDecimal()
	if !ok {
		res.reject(ReasonInvalidNumericValue, path, ent.Value.String())

		return
	}

	if !quantity.IsPositive() {
		res.reject(ReasonNonPositiveQuantity, path, quantity.String())

		return
	}

	res.accept(price, quantity)
}
