// Package sales scans arbitrary sales record documents for line items,
// validates each one against the price catalogue, and accumulates a total
// plus per-item diagnostics.
package sales

import (
	"fmt"

	"github.com/shopspring/decimal"

	"salescalc/internal/document"
)

// Reason identifies why a candidate line item was rejected.
type Reason int

const (
	// ReasonInvalidProductValue - the product field is present but not text.
	ReasonInvalidProductValue Reason = iota
	// ReasonUnknownProduct - the product text is not in the catalogue.
	ReasonUnknownProduct
	// ReasonInvalidNumericValue - the quantity is not coercible to a number.
	ReasonInvalidNumericValue
	// ReasonNonPositiveQuantity - the quantity is numeric but not > 0.
	ReasonNonPositiveQuantity
)

// Message returns the human-readable reason text.
func (r Reason) Message() string {
	switch r {
	case ReasonInvalidProductValue:
		return "Invalid product value"
	case ReasonUnknownProduct:
		return "Unknown product"
	case ReasonInvalidNumericValue:
		return "Invalid numeric value"
	case ReasonNonPositiveQuantity:
		return "Quantity must be > 0"
	default:
		return "Unknown reason"
	}
}

// Diagnostic is one non-fatal record of a rejected line item: where in the
// document it occurred, why, and the offending value rendered as text.
type Diagnostic struct {
	Reason Reason
	Path   document.Path
	Value  string
}

// String renders the diagnostic in the console reporting format.
func (d Diagnostic) String() string {
	return fmt.Sprintf("[ERROR] %s at %s: %s", d.Reason.Message(), d.Path, d.Value)
}

// RunResult aggregates one extraction run: total cost, counts, and the
// diagnostics in discovery order. Processed plus Skipped always equals the
// number of candidate line items discovered.
type RunResult struct {
	Total       decimal.Decimal
	Processed   int
	Skipped     int
	Diagnostics []Diagnostic
}

func newRunResult() *RunResult {
	return &RunResult{
		Total:       decimal.Zero,
		Diagnostics: []Diagnostic{},
	}
}

func (r *RunResult) reject(reason Reason, path document.Path, value string) {
	r.Skipped++
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Reason: reason,
		Path:   path,
		Value:  value,
	})
}

func (r *RunResult) accept(price, quantity decimal.Decimal) {
	r.Total = r.Total.Add(price.Mul(quantity))
	r.Processed++
}

// Candidates returns the number of candidate line items discovered.
func (r *RunResult) Candidates() int {
	return r.Processed + r.Skipped
}
