// Package manifest reads the input CSV and computes the set of rows that
// still need to be imported.
//
// Each data row is assigned a stable index (its position after the header,
// starting at 0). The index doubles as the resume key in the ledger and as
// the namespacing prefix of the destination key, so it must never change
// between runs over the same file.
//
// # Usage
//
//	records, err := manifest.Load("images.csv", "URL")
//	done, _ := ledger.Load("processed_indices.log")
//	pending := manifest.Pending(records, done)
package manifest
