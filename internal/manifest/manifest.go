package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrColumnMissing is returned when the configured URL column does not
// exist in the CSV header. This is a schema problem and aborts the run,
// unlike individual rows with an empty URL value, which are just skipped.
var ErrColumnMissing = errors.New("manifest: URL column not found")

// Record is one row of the input set: a stable index plus the source URL.
type Record struct {
	// Index is the data-row position in the CSV, starting at 0.
	Index int

	// URL is the source URL to fetch. May be empty for rows that have
	// no value in the URL column.
	URL string
}

// Load reads the CSV at path and returns one Record per data row.
// The first row is treated as a header and must contain urlColumn.
func Load(path, urlColumn string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	return Parse(f, urlColumn)
}

// Parse reads CSV data from r. See Load.
func Parse(r io.Reader, urlColumn string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows; missing URL cells become empty

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %q (empty file)", ErrColumnMissing, urlColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest header: %w", err)
	}

	urlIdx := -1
	for i, name := range header {
		if strings.TrimSpace(name) == urlColumn {
			urlIdx = i
			break
		}
	}
	if urlIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnMissing, urlColumn)
	}

	var records []Record
	for i := 0; ; i++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read manifest row %d: %w", i, err)
		}

		var url string
		if urlIdx < len(row) {
			url = strings.TrimSpace(row[urlIdx])
		}
		records = append(records, Record{Index: i, URL: url})
	}

	return records, nil
}

// Pending returns the records that still need processing: rows whose index
// is not in done and whose URL is non-empty, in their original order.
func Pending(records []Record, done map[int]bool) []Record {
	var pending []Record
	for _, rec := range records {
		if done[rec.Index] || rec.URL == "" {
			continue
		}
		pending = append(pending, rec)
	}
	return pending
}
