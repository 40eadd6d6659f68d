// Package main provides the computesales command: it computes the total cost
// of all sales in a sales record file against a price catalogue file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"salescalc/internal/catalogue"
	"salescalc/internal/config"
	"salescalc/internal/document"
	"salescalc/internal/logger"
	"salescalc/internal/report"
	"salescalc/internal/sales"
)

func main() {
	// Best-effort env bootstrap; a missing .env is fine.
	_ = godotenv.Load()

	// 1. Define Command-Line Flags
	// ---------------------------
	configPath := flag.String("config", os.Getenv("SALESCALC_CONFIG"), "Path to an optional YAML configuration file")
	outputPath := flag.String("output", os.Getenv("SALESCALC_OUTPUT"), "Results file path (overrides configuration)")
	logLevel := flag.String("log-level", os.Getenv("SALESCALC_LOG_LEVEL"), "Log level: debug, info, warn, error")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: computesales [flags] priceCatalogue.json salesRecord.json")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cataloguePath := flag.Arg(0)
	salesPath := flag.Arg(1)

	// 2. Load Configuration
	// ---------------------
	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *outputPath != "" {
		cfg.Output.ResultsPath = *outputPath
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := logger.NewLogger(cfg.Logging.Level)

	log.Info("🚀 Starting sales computation",
		"catalogue", cataloguePath,
		"sales", salesPath,
	)

	start := time.Now()

	// 3. Ingestion
	// ------------
	catalogueDoc := loadDocument(log, cataloguePath)
	salesDoc := loadDocument(log, salesPath)

	// 4. Processing
	// -------------
	normalizer := catalogue.NewNormalizerWithAliases(cfg.Aliases.CatalogueName, cfg.Aliases.Price)

	cat := normalizer.Normalize(catalogueDoc)
	if cat.Len() == 0 {
		log.Warn("⚠️  Price catalogue is empty or invalid. Totals may be zero.")
	}

	extractor := sales.NewExtractorWithAliases(cfg.Aliases.Product, cfg.Aliases.Quantity)
	result := extractor.Extract(salesDoc, cat)

	for _, d := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, d)
	}

	// 5. Final Report
	// ---------------
	rep := report.Build(report.Params{
		CatalogueFile: cataloguePath,
		SalesFile:     salesPath,
		Result:        result,
		Elapsed:       time.Since(start),
	})

	fmt.Println(rep)

	if err := report.WriteFile(cfg.Output.ResultsPath, rep); err != nil {
		log.Error(fmt.Sprintf("❌ Could not write results file: %v", err))
	} else {
		log.Info("✅ Results written", "path", cfg.Output.ResultsPath)
	}
}

// loadDocument reads one input file; a missing or malformed file is reported
// and replaced by an empty document so the computation continues.
func loadDocument(log *logger.Logger, path string) document.Node {
	node, err := document.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "[ERROR] File not found: %s\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		}

		log.Debug("continuing with empty document", "path", path)

		return document.Null()
	}

	return node
}
