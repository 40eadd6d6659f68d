package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"salescalc/internal/document"
	"salescalc/internal/sales"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0.00"},
		{"81.75", "81.75"},
		{"81.749", "81.75"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
		{"1234567.5", "1,234,567.50"},
		{"-1234.5", "-1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.input)
			if err != nil {
				t.Fatalf("Failed to parse decimal: %v", err)
			}

			if got := FormatMoney(d); got != tt.want {
				t.Errorf("FormatMoney(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	result := &sales.RunResult{
		Total:     decimal.RequireFromString("81.75"),
		Processed: 5,
		Skipped:   1,
		Diagnostics: []sales.Diagnostic{
			{
				Reason: sales.ReasonUnknownProduct,
				Path:   document.Root().Index(0),
				Value:  `"ghost"`,
			},
		},
	}

	text := Build(Params{
		CatalogueFile: "priceCatalogue.json",
		SalesFile:     "salesRecord.json",
		Result:        result,
		Elapsed:       1500 * time.Millisecond,
	})

	wantFragments := []string{
		"Sales Results",
		"priceCatalogue.json",
		"salesRecord.json",
		"Line items processed",
		"| 5",
		"Line items skipped",
		"TOTAL COST",
		"81.75",
		"1.500000 seconds",
		`[ERROR] Unknown product at $[0]: "ghost"`,
	}

	for _, fragment := range wantFragments {
		if !strings.Contains(text, fragment) {
			t.Errorf("Report missing %q:\n%s", fragment, text)
		}
	}
}

func TestBuild_TableAlignment(t *testing.T) {
	result := &sales.RunResult{
		Total:       decimal.Zero,
		Diagnostics: []sales.Diagnostic{},
	}

	text := Build(Params{
		CatalogueFile: "a.json",
		SalesFile:     "b.json",
		Result:        result,
	})

	// All table rows share the same rendered width.
	width := 0

	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}

		if width == 0 {
			width = len(line)
			continue
		}

		if len(line) != width {
			t.Errorf("Misaligned table row (%d != %d): %q", len(line), width, line)
		}
	}

	if width == 0 {
		t.Error("Report contains no table rows")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SalesResults.txt")

	if err := WriteFile(path, "report body\n"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read results file: %v", err)
	}

	if string(data) != "report body\n" {
		t.Errorf("Results file = %q", string(data))
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "SalesResults.txt"), "x"); err == nil {
		t.Error("WriteFile expected error for missing directory")
	}
}
