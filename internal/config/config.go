package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines configuration for the s3importer CLI.
type Config struct {
	// CSVPath is the input CSV file containing image URLs.
	CSVPath string `yaml:"csv_path"`

	// URLColumn is the header name of the column holding URLs.
	URLColumn string `yaml:"url_column"`

	// Bucket is the destination bucket URL, e.g.
	// "s3://my-bucket?region=us-east-1".
	Bucket string `yaml:"bucket"`

	// Folder is the key prefix within the bucket.
	Folder string `yaml:"folder"`

	// Workers is the number of parallel import workers.
	Workers int `yaml:"workers"`

	// Timeout bounds each download request.
	Timeout time.Duration `yaml:"timeout"`

	// Ledger is the path of the progress file tracking completed rows.
	Ledger string `yaml:"ledger"`

	// FailureLog is the path of the failed-URLs log.
	FailureLog string `yaml:"failure_log"`

	// Progress enables the live progress display.
	Progress bool `yaml:"progress"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		URLColumn:  "URL",
		Workers:    30,
		Timeout:    30 * time.Second,
		Ledger:     "processed_indices.log",
		FailureLog: "failed_urls.log",
	}
}

// LoadDotenv loads a .env file if one exists in the working directory.
// Credentials for the bucket driver (AWS_ACCESS_KEY_ID and friends) are
// typically provided this way. A missing file is not an error.
func LoadDotenv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// yamlConfig is used for YAML unmarshaling with string durations.
type yamlConfig struct {
	CSVPath    string `yaml:"csv_path"`
	URLColumn  string `yaml:"url_column"`
	Bucket     string `yaml:"bucket"`
	Folder     string `yaml:"folder"`
	Workers    int    `yaml:"workers"`
	Timeout    string `yaml:"timeout"`
	Ledger     string `yaml:"ledger"`
	FailureLog string `yaml:"failure_log"`
	Progress   bool   `yaml:"progress"`
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.CSVPath != "" {
		cfg.CSVPath = yc.CSVPath
	}
	if yc.URLColumn != "" {
		cfg.URLColumn = yc.URLColumn
	}
	if yc.Bucket != "" {
		cfg.Bucket = yc.Bucket
	}
	if yc.Folder != "" {
		cfg.Folder = yc.Folder
	}
	if yc.Workers != 0 {
		cfg.Workers = yc.Workers
	}
	if yc.Timeout != "" {
		d, err := time.ParseDuration(yc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if yc.Ledger != "" {
		cfg.Ledger = yc.Ledger
	}
	if yc.FailureLog != "" {
		cfg.FailureLog = yc.FailureLog
	}
	cfg.Progress = yc.Progress

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the S3IMPORTER_ prefix.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("S3IMPORTER_CSV_PATH"); v != "" {
		c.CSVPath = v
	}
	if v := os.Getenv("S3IMPORTER_URL_COLUMN"); v != "" {
		c.URLColumn = v
	}
	if v := os.Getenv("S3IMPORTER_BUCKET"); v != "" {
		c.Bucket = v
	}
	if v := os.Getenv("S3IMPORTER_FOLDER"); v != "" {
		c.Folder = v
	}
	if v := os.Getenv("S3IMPORTER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse S3IMPORTER_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("S3IMPORTER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse S3IMPORTER_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("S3IMPORTER_LEDGER"); v != "" {
		c.Ledger = v
	}
	if v := os.Getenv("S3IMPORTER_FAILURE_LOG"); v != "" {
		c.FailureLog = v
	}
	if v := os.Getenv("S3IMPORTER_PROGRESS"); v != "" {
		c.Progress = v == "true" || v == "1"
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.CSVPath == "" {
		return errors.New("config: csv_path is required")
	}
	if c.URLColumn == "" {
		return errors.New("config: url_column is required")
	}
	if c.Bucket == "" {
		return errors.New("config: bucket is required")
	}
	if c.Folder == "" {
		return errors.New("config: folder is required")
	}
	if c.Workers <= 0 {
		return errors.New("config: workers must be positive")
	}
	if c.Timeout <= 0 {
		return errors.New("config: timeout must be positive")
	}
	return nil
}

// Merge merges override values into c, returning a new Config.
// Zero values in override are ignored.
func (c Config) Merge(override Config) Config {
	if override.CSVPath != "" {
		c.CSVPath = override.CSVPath
	}
	if override.URLColumn != "" {
		c.URLColumn = override.URLColumn
	}
	if override.Bucket != "" {
		c.Bucket = override.Bucket
	}
	if override.Folder != "" {
		c.Folder = override.Folder
	}
	if override.Workers != 0 {
		c.Workers = override.Workers
	}
	if override.Timeout != 0 {
		c.Timeout = override.Timeout
	}
	if override.Ledger != "" {
		c.Ledger = override.Ledger
	}
	if override.FailureLog != "" {
		c.FailureLog = override.FailureLog
	}
	if override.Progress {
		c.Progress = override.Progress
	}
	return c
}
