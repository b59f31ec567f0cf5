package ledger

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Load reads the ledger at path and returns the set of completed indices.
// A missing file is not an error; it means nothing has been processed yet.
func Load(path string) (map[int]bool, error) {
	done := make(map[int]bool)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return done, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		idx, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("ledger: invalid entry %q: %w", line, err)
		}
		done[idx] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	return done, nil
}

// Ledger appends completed indices to the progress file.
type Ledger struct {
	mu sync.Mutex
	f  *os.File
}

// Open opens the ledger at path for appending, creating it if needed.
func Open(path string) (*Ledger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open ledger for append: %w", err)
	}
	return &Ledger{f: f}, nil
}

// Record appends idx as a complete line and syncs it to disk. Each entry
// is written under the lock so concurrent callers cannot interleave
// partial lines.
func (l *Ledger) Record(idx int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := fmt.Fprintf(l.f, "%d\n", idx); err != nil {
		return fmt.Errorf("append ledger entry %d: %w", idx, err)
	}
	if err := l.f.Sync(); err != nil {
		return fmt.Errorf("sync ledger: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}
