// Package importer orchestrates the parallel import pipeline.
//
// Each pending manifest record is processed by one worker running the
// full pipeline for that row: fetch the URL, sniff the bytes to confirm
// a real image, derive the destination key, and upload to the bucket.
// Exactly one Outcome is emitted per dispatched record.
//
// # Worker Pool
//
// Workers receive records from a jobs channel fed in manifest order. All
// outcomes flow through a single results channel consumed by one collector
// goroutine, which appends successes to the ledger and failures to the
// failure log; the single consumer is what serializes ledger appends.
//
// # Failure Isolation
//
// A task failure is converted into a Failure outcome at the task boundary
// and never cancels sibling tasks. The pool always drains fully; recovery
// for failed rows is re-running the importer, which skips everything the
// ledger already contains.
package importer
