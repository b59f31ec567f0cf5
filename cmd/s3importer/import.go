package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/JamesonCodes/s3-image-importer/internal/config"
	"github.com/JamesonCodes/s3-image-importer/internal/fetch"
	"github.com/JamesonCodes/s3-image-importer/internal/importer"
	"github.com/JamesonCodes/s3-image-importer/internal/ledger"
	"github.com/JamesonCodes/s3-image-importer/internal/manifest"
	"github.com/JamesonCodes/s3-image-importer/internal/progress"
)

// runImport downloads every image URL in the CSV that the ledger does not
// already cover, validates it, and uploads it to the destination bucket.
// Re-running after an interruption or partial failure resumes where the
// ledger left off.
func runImport(args []string) int {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	configPath := fs.String("config", "", "YAML config file")
	csvPath := fs.String("csv", "", "Input CSV file (required unless set in config)")
	urlColumn := fs.String("url-column", "", "CSV column containing image URLs")
	bucketURL := fs.String("bucket", "", "Destination bucket URL (required unless set in config)")
	folder := fs.String("folder", "", "Key prefix within the bucket (required unless set in config)")
	workers := fs.Int("workers", 0, "Number of parallel workers")
	timeout := fs.Duration("timeout", 0, "Per-download timeout")
	ledgerPath := fs.String("ledger", "", "Progress file tracking completed rows")
	failuresPath := fs.String("failures", "", "Log file for failed URLs")
	showProgress := fs.Bool("progress", false, "Show live progress output")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: s3importer import [options]

Download images listed in a CSV and upload them to object storage under
deterministic keys. Completed rows are recorded in a ledger file; re-running
skips them, so an interrupted run can simply be started again.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitConfigError
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
		CSVPath:    *csvPath,
		URLColumn:  *urlColumn,
		Bucket:     *bucketURL,
		Folder:     *folder,
		Workers:    *workers,
		Timeout:    *timeout,
		Ledger:     *ledgerPath,
		FailureLog: *failuresPath,
		Progress:   *showProgress,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fs.Usage()
		return ExitInvalidArgs
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\n[s3importer] Received interrupt, finishing in-flight tasks...")
		cancel()
	}()

	return importImages(ctx, cfg)
}

func importImages(ctx context.Context, cfg config.Config) int {
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

	if len(done) > 0 {
		fmt.Fprintf(os.Stderr, "[s3importer] Found %d already processed. Resuming...\n", len(done))
	}

	pending := manifest.Pending(records, done)
	if len(pending) == 0 {
		fmt.Fprintln(os.Stderr, "[s3importer] All images already processed or no new URLs found. Nothing to do.")
		return ExitSuccess
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Bucket)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening bucket: %v\n", err)
		return ExitStorageError
	}
	defer bucket.Close()

	led, err := ledger.Open(cfg.Ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitGeneralError
	}
	defer led.Close()

	failures, err := ledger.OpenFailureLog(cfg.FailureLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitGeneralError
	}
	defer failures.Close()

	var reporter *progress.Reporter
	if cfg.Progress {
		reporter = progress.NewReporter(progress.Options{
			TotalTasks: len(pending),
			Workers:    cfg.Workers,
		})
		reporter.Start()
		defer reporter.Stop()
	}

	fmt.Fprintf(os.Stderr, "[s3importer] Importing %d new images...\n", len(pending))
	start := time.Now()

	imp := importer.New(bucket, led, failures, importer.Options{
		Workers: cfg.Workers,
		Folder:  cfg.Folder,
		Fetch: fetch.Options{
			Timeout:             cfg.Timeout,
			MaxIdleConnsPerHost: cfg.Workers,
		},
		Progress: reporter,
	})

	summary, err := imp.Run(ctx, pending)
	if reporter != nil {
		reporter.Stop()
	}

	var noURL int
	for _, rec := range records {
		if rec.URL == "" && !done[rec.Index] {
			noURL++
		}
	}
	fmt.Fprintf(os.Stderr, "[s3importer] Finished in %s: %d imported (%s), %d failed, %d rows without URL\n",
		time.Since(start).Round(time.Second), summary.Imported, progress.FormatBytes(summary.Bytes), summary.Failed, noURL)
	if summary.Failed > 0 {
		fmt.Fprintf(os.Stderr, "[s3importer] See %s for details. Run again to retry failed rows.\n", cfg.FailureLog)
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "[s3importer] Interrupted. Run again to resume.")
		return ExitGeneralError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitGeneralError
	}

	return ExitSuccess
}
