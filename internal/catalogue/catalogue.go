// Package catalogue normalizes loosely structured price catalogue documents
// into a canonical mapping from product name to unit price.
package catalogue

import (
	"github.com/shopspring/decimal"
)

// Catalogue is the canonical price catalogue: product name (case-sensitive)
// to unit price. It is built once per run and immutable thereafter.
type Catalogue struct {
	prices map[string]decimal.Decimal
	names  []string
}

func newCatalogue() *Catalogue {
	return &Catalogue{prices: make(map[string]decimal.Decimal)}
}

func (c *Catalogue) add(name string, price decimal.Decimal) {
	if _, exists := c.prices[name]; !exists {
		c.names = append(c.names, name)
	}

	// A later entry for the same product overrides the earlier price.
	c.prices[name] = price
}

// Price returns the unit price for a product and whether it is listed.
func (c *Catalogue) Price(name string) (decimal.Decimal, bool) {
	price, ok := c.prices[name]

	return price, ok
}

// Has reports whether a product is listed.
func (c *Catalogue) Has(name string) bool {
	_, ok := c.prices[name]

	return ok
}

// Len returns the number of listed products.
func (c *Catalogue) Len() int {
	return len(c.prices)
}

// Names returns the product names in first-seen order.
func (c *Catalogue) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)

	return names
}
