// Package progress provides progress reporting for import runs.
//
// This package outputs human-readable progress information to stderr,
// including completion counts, transfer throughput, and ETA.
//
// # Usage
//
//	reporter := progress.NewReporter(Options{
//	    TotalTasks: len(pending),
//	    Workers:    cfg.Workers,
//	})
//
//	reporter.Start()
//	defer reporter.Stop()
//
//	// Update as tasks finish
//	reporter.TaskCompleted(bytesUploaded)
//
// # Output Format
//
//	[s3importer] Importing 1200 images | Workers: 30
//	[s3importer] Progress: 45.2% | 542/1200 done | 3 failed | Rate: 12.4/s | ETA: 53s
package progress
