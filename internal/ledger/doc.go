// Package ledger persists import progress across runs.
//
// The ledger is a plain text file with one completed row index per line,
// append-only. It is the sole state consulted on restart: an index present
// in the ledger is never dispatched again, and an index absent from it is
// retried on the next run. Duplicate lines are harmless; loading treats the
// file as a set.
//
// Appends are synced to disk per entry so a crash loses at most the task
// that was in flight, which re-runs idempotently.
//
// The package also provides FailureLog, a best-effort append-only record of
// failed URLs for operator inspection. It plays no part in resume logic.
package ledger
