package ledger

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// FailureLog records failed URLs with timestamps for later inspection.
// Writes are best-effort: a failure log write error is reported to the
// caller but must not affect the run.
type FailureLog struct {
	mu  sync.Mutex
	f   *os.File
	now func() time.Time
}

// OpenFailureLog opens the failure log at path for appending.
func OpenFailureLog(path string) (*FailureLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open failure log: %w", err)
	}
	return &FailureLog{f: f, now: time.Now}, nil
}

// Record appends a timestamped line describing a failed URL.
func (fl *FailureLog) Record(url string, cause error) error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	ts := fl.now().Format(time.RFC3339)
	if _, err := fmt.Fprintf(fl.f, "%s - %s - %v\n", ts, url, cause); err != nil {
		return fmt.Errorf("append failure log: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (fl *FailureLog) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return fl.f.Close()
}
