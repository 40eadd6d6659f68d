// Package main provides the cataloguecheck command: it normalizes a price
// catalogue file and lists the canonical entries, so malformed catalogues can
// be inspected before a sales run.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"salescalc/internal/catalogue"
	"salescalc/internal/config"
	"salescalc/internal/document"
	"salescalc/internal/logger"
	"salescalc/internal/report"
)

func main() {
	configPath := flag.String("config", os.Getenv("SALESCALC_CONFIG"), "Path to an optional YAML configuration file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: cataloguecheck [flags] priceCatalogue.json")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	log := logger.NewLogger(cfg.Logging.Level)

	path := flag.Arg(0)

	doc, err := document.LoadFile(path)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Could not load catalogue: %v", err))
		os.Exit(1)
	}

	normalizer := catalogue.NewNormalizerWithAliases(cfg.Aliases.CatalogueName, cfg.Aliases.Price)
	cat := normalizer.Normalize(doc)

	names := cat.Names()

	nameWidth := len("Product")
	for _, name := range names {
		if w := runewidth.StringWidth(name); w > nameWidth {
			nameWidth = w
		}
	}

	fmt.Printf("%s  %s\n", pad("Product", nameWidth), "Unit price")
	fmt.Printf("%s  %s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", len("Unit price")))

	for _, name := range names {
		price, _ := cat.Price(name)
		fmt.Printf("%s  %s\n", pad(name, nameWidth), report.FormatMoney(price))
	}

	fmt.Printf("\n%d product(s) listed.\n", cat.Len())
}

func pad(s string, width int) string {
	padding := width - runewidth.StringWidth(s)
	if padding <= 0 {
		return s
	}

	return s + strings.Repeat(" ", padding)
}
