package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JamesonCodes/s3-image-importer/internal/config"
	"github.com/JamesonCodes/s3-image-importer/internal/ledger"
	"github.com/JamesonCodes/s3-image-importer/internal/manifest"
)

// runStatus reports ledger coverage for a CSV without touching the network
// or the bucket.
func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ExitOnError)

	configPath := fs.String("config", "", "YAML config file")
	csvPath := fs.String("csv", "", "Input CSV file (required unless set in config)")
	urlColumn := fs.String("url-column", "", "CSV column containing image URLs")
	ledgerPath := fs.String("ledger", "", "Progress file tracking completed rows")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: s3importer status [options]

Report how many rows of the CSV have been imported, how many are pending,
and how many have no URL.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	cfg := config.Default()
	if *configPath != "" {
		fileCfg, err := config.LoadFromFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitConfigError
		}
		cfg = fileCfg
	}
	if err := cfg.LoadFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitConfigError
	}
	cfg = cfg.Merge(config.Config{
		CSVPath:   *csvPath,
		URLColumn: *urlColumn,
		Ledger:    *ledgerPath,
	})
	if cfg.CSVPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -csv is required")
		fs.Usage()
		return ExitInvalidArgs
	}

	records, err := manifest.Load(cfg.CSVPath, cfg.URLColumn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitConfigError
	}

	done, err := ledger.Load(cfg.Ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitGeneralError
	}

	var completed, noURL int
	for _, rec := range records {
		switch {
		case done[rec.Index]:
			completed++
		case rec.URL == "":
			noURL++
		}
	}
	pending := len(records) - completed - noURL

	fmt.Printf("Rows:      %d\n", len(records))
	fmt.Printf("Completed: %d\n", completed)
	fmt.Printf("Pending:   %d\n", pending)
	fmt.Printf("No URL:    %d\n", noURL)

	return ExitSuccess
}
