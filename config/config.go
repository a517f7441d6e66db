// Package config loads the cleaner's settings from environment variables,
// optionally seeded from a .env file, and validates them before a run.
package config

import "boqclean/services"

// Config holds all cleaner configuration.
type Config struct {
	Header  HeaderConfig
	Clean   CleanConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// HeaderConfig tunes header row detection.
type HeaderConfig struct {
	// ScanRows is how many leading rows are searched for the header (default: 20)
	ScanRows int `env:"BOQ_HEADER_SCAN_ROWS" default:"20"`

	// MinMatches is the number of keyword cells a header needs (default: 3)
	MinMatches int `env:"BOQ_HEADER_MIN_MATCHES" default:"3"`

	// Keywords mark header cells
	Keywords []string `env:"BOQ_HEADER_KEYWORDS" default:"description,particulars,qty,quantity,rate,amount,unit"`
}

// CleanConfig tunes row cleaning.
type CleanConfig struct {
	// RemoveKeywords drop rows whose description contains them
	RemoveKeywords []string `env:"BOQ_REMOVE_KEYWORDS" default:"sub total,note"`
}

// OutputConfig controls where and how the cleaned table is written.
type OutputConfig struct {
	Dir      string `env:"BOQ_OUTPUT_DIR" default:"Output"`
	Format   string `env:"BOQ_OUTPUT_FORMAT" default:"csv"`
	Currency string `env:"BOQ_CURRENCY" default:"plain"`
}

// LoggingConfig holds log level and format.
type LoggingConfig struct {
	Level  string `env:"BOQ_LOG_LEVEL" envAlt:"LOG_LEVEL" default:"info"`
	Format string `env:"BOQ_LOG_FORMAT" envAlt:"LOG_FORMAT" default:"text"`
}

// PipelineOptions converts the loaded settings into pipeline options.
// Keywords are lower-cased since matching is done on lower-cased cells.
func (c *Config) PipelineOptions() services.Options {
	return services.Options{
		Header: services.HeaderOptions{
			ScanRows:   c.Header.ScanRows,
			MinMatches: c.Header.MinMatches,
			Keywords:   lowerAll(c.Header.Keywords),
		},
		Clean: services.CleanOptions{
			RemoveKeywords: lowerAll(c.Clean.RemoveKeywords),
		},
	}
}
