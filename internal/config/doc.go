// Package config defines configuration structures for the s3importer CLI.
//
// Configuration can be provided via:
//   - Command-line flags
//   - Environment variables (S3IMPORTER_ prefix)
//   - YAML configuration file
//   - A .env file for credentials (AWS_ACCESS_KEY_ID etc. for the bucket driver)
//
// # Structure
//
//	type Config struct {
//	    CSVPath    string
//	    URLColumn  string
//	    Bucket     string
//	    Folder     string
//	    Workers    int
//	    Timeout    time.Duration
//	    Ledger     string
//	    FailureLog string
//	    Progress   bool
//	}
package config
