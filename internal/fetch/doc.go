// Package fetch provides the HTTP client used to download source images.
//
// This package handles:
//   - Connection pooling sized for the worker pool
//   - Per-request timeouts
//   - Status code classification into sentinel errors
//
// Each Get is a single attempt. There is no in-run retry: a failed fetch
// leaves its row out of the ledger, and re-running the importer picks it
// up again.
//
// # Usage
//
//	client := fetch.NewClient(fetch.Options{
//	    Timeout:             30 * time.Second,
//	    MaxIdleConnsPerHost: 30,
//	})
//
//	body, contentType, err := client.Get(ctx, url)
package fetch
