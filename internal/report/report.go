// Package report builds the human-readable sales results report and writes
// it to the results file.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"salescalc/internal/sales"
)

// Params carries everything the report needs from the driver.
type Params struct {
	CatalogueFile string
	SalesFile     string
	Result        *sales.RunResult
	Elapsed       time.Duration
}

// Build creates the report text: a header, an aligned summary table, and the
// itemized diagnostics in discovery order.
func Build(p Params) string {
	var sb strings.Builder

	sb.WriteString("Sales Results\n")
	sb.WriteString("=============\n\n")

	rows := [][2]string{
		{"Price catalogue file", p.CatalogueFile},
		{"Sales record file", p.SalesFile},
		{"Line items processed", fmt.Sprintf("%d", p.Result.Processed)},
		{"Line items skipped", fmt.Sprintf("%d", p.Result.Skipped)},
		{"TOTAL COST", FormatMoney(p.Result.Total)},
		{"Time elapsed", fmt.Sprintf("%.6f seconds", p.Elapsed.Seconds())},
	}

	sb.WriteString(renderTable(rows))

	if len(p.Result.Diagnostics) > 0 {
		sb.WriteString("\nSkipped entries:\n")

		for _, d := range p.Result.Diagnostics {
			sb.WriteString("  ")
			sb.WriteString(d.String())
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\nNotes:\n")
	sb.WriteString("- Any invalid entries are reported and skipped.\n")
	sb.WriteString("- Total cost is computed as sum(price(product) * quantity) for each valid line item.\n")

	return sb.String()
}

// renderTable lays the rows out as a two-column table padded to the widest
// cell, using display width so wide characters stay aligned.
func renderTable(rows [][2]string) string {
	colWidths := [2]int{3, 3}

	for _, row := range rows {
		for i := 0; i < 2; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	var sb strings.Builder

	for _, row := range rows {
		sb.WriteString("|")

		for i := 0; i < 2; i++ {
			sb.WriteString(" ")
			sb.WriteString(row[i])

			padding := colWidths[i] - runewidth.StringWidth(row[i])
			if padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatMoney formats an amount with two decimal places and thousands
// separators.
func FormatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var sb strings.Builder

	if negative {
		sb.WriteString("-")
	}

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteString(",")
		}

		sb.WriteRune(r)
	}

	sb.WriteString(".")
	sb.WriteString(fracPart)

	return sb.String()
}

// WriteFile persists the report to the results file.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	return nil
}
