package importer

import (
	"context"
	"sync"

	"gocloud.dev/blob"

	"github.com/JamesonCodes/s3-image-importer/internal/fetch"
	"github.com/JamesonCodes/s3-image-importer/internal/imaging"
	"github.com/JamesonCodes/s3-image-importer/internal/ledger"
	"github.com/JamesonCodes/s3-image-importer/internal/manifest"
	"github.com/JamesonCodes/s3-image-importer/internal/progress"
)

// DefaultWorkers is the default worker pool size.
const DefaultWorkers = 30

// Options configures the importer.
type Options struct {
	// Workers is the number of parallel import workers.
	// Default: DefaultWorkers.
	Workers int

	// Folder is the destination key prefix within the bucket.
	Folder string

	// Fetch configures the HTTP client.
	Fetch fetch.Options

	// Progress is an optional progress reporter.
	Progress *progress.Reporter
}

// Summary totals the outcomes of one run.
type Summary struct {
	Imported int
	Failed   int
	Bytes    int64
}

// Importer runs the fetch→sniff→upload pipeline over pending records.
type Importer struct {
	bucket   *blob.Bucket
	client   *fetch.Client
	ledger   *ledger.Ledger
	failures *ledger.FailureLog
	opts     Options
}

// New creates an Importer writing to bucket, recording completions in led
// and failures in failures. failures may be nil.
func New(bucket *blob.Bucket, led *ledger.Ledger, failures *ledger.FailureLog, opts Options) *Importer {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Fetch.MaxIdleConnsPerHost == 0 {
		opts.Fetch.MaxIdleConnsPerHost = opts.Workers
	}

	return &Importer{
		bucket:   bucket,
		client:   fetch.NewClient(opts.Fetch),
		ledger:   led,
		failures: failures,
		opts:     opts,
	}
}

// Run dispatches pending records onto the worker pool and drains it fully.
// Every record produces exactly one outcome: successes are appended to the
// ledger before they count as imported, failures go to the failure log.
// Cancelling ctx stops dispatch; records already handed to a worker still
// finish and are recorded.
func (imp *Importer) Run(ctx context.Context, pending []manifest.Record) (Summary, error) {
	var summary Summary
	if len(pending) == 0 {
		return summary, nil
	}

	jobs := make(chan manifest.Record)
	results := make(chan Outcome)

	// Start workers
	var wg sync.WaitGroup
	for i := 0; i < imp.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range jobs {
				if imp.opts.Progress != nil {
					imp.opts.Progress.TaskStarted()
				}
				results <- imp.process(ctx, rec)
			}
		}()
	}

	// Feed jobs in manifest order
	go func() {
		defer close(jobs)
		for _, rec := range pending {
			select {
			case jobs <- rec:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Close results once all workers have drained
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect outcomes. This loop is the only writer to the ledger and
	// failure log, so appends never interleave.
	var firstErr error
	for out := range results {
		if out.Failed() {
			summary.Failed++
			if imp.opts.Progress != nil {
				imp.opts.Progress.TaskFailed()
			}
			if imp.failures != nil {
				// Best effort: a failure-log write error must not
				// affect the run.
				_ = imp.failures.Record(out.URL, out.Err)
			}
			continue
		}

		if err := imp.ledger.Record(out.Index); err != nil {
			// The upload happened but we couldn't persist the fact;
			// the row will re-run next time, which is safe because
			// uploads are idempotent. Surface the ledger problem.
			summary.Failed++
			if imp.opts.Progress != nil {
				imp.opts.Progress.TaskFailed()
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		summary.Imported++
		summary.Bytes += out.Bytes
		if imp.opts.Progress != nil {
			imp.opts.Progress.TaskCompleted(out.Bytes)
		}
	}

	if firstErr != nil {
		return summary, firstErr
	}
	return summary, ctx.Err()
}

// process runs the full pipeline for one record. Every failure is caught
// here and converted into an Outcome; nothing escapes to the pool.
func (imp *Importer) process(ctx context.Context, rec manifest.Record) Outcome {
	out := Outcome{Index: rec.Index, URL: rec.URL}

	body, declaredType, err := imp.client.Get(ctx, rec.URL)
	if err != nil {
		out.Kind, out.Err = KindNetwork, err
		return out
	}

	format, err := imaging.Sniff(body)
	if err != nil {
		out.Kind, out.Err = KindInvalidContent, err
		return out
	}

	key := deriveKey(imp.opts.Folder, rec.Index, rec.URL, format.Extension)

	contentType := format.MIME
	if contentType == "" {
		contentType = declaredType
	}

	err = imp.bucket.WriteAll(ctx, key, body, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		out.Kind, out.Err = KindStorage, err
		return out
	}

	out.Key = key
	out.Bytes = int64(len(body))
	return out
}
