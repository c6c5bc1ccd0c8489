// =============================================================================
// Workout Tree Tagger - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. All
// settings have sensible defaults, and the tool runs without any
// configuration file at all; a config file only needs to exist when the
// defaults are overridden.
//
// CONFIGURATION FILE (config.yaml):
//
//   output_suffix: "_tagged"
//   extensions:
//     - ".zwo"
//     - ".xml"
//   write_error_log: true
//   report_dir: ""            # defaults to the output root
//   report_name_format: "tagging_report_{timestamp}_{uuid}.xlsx"
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config path assumed when --config is not given.
const DefaultFile = "config.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// OutputSuffix is appended to the input root's base name to form the
	// output root, which is created as a sibling of the input root.
	// Default: "_tagged"
	OutputSuffix string `yaml:"output_suffix"`

	// Extensions lists the recognized workout file extensions, matched
	// case-insensitively. Files with any other extension are ignored.
	// Default: [".zwo", ".xml"]
	Extensions []string `yaml:"extensions"`

	// WriteErrorLog controls whether a plain-text error log is written
	// into the output root when individual files fail.
	// Default: true
	WriteErrorLog bool `yaml:"write_error_log"`

	// ReportDir is the directory for XLSX run reports (--report).
	// Empty means the output root.
	ReportDir string `yaml:"report_dir"`

	// ReportNameFormat is the file name format for run reports.
	// Placeholders: {uuid}, {timestamp}, {date}, {time}.
	// Default: "tagging_report_{timestamp}_{uuid}.xlsx"
	ReportNameFormat string `yaml:"report_name_format"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from path.
//
// A missing file is only an error when the path was explicitly requested;
// if the default config.yaml does not exist, defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{WriteErrorLog: true}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultFile {
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{WriteErrorLog: true}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = "_tagged"
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".zwo", ".xml"}
	}
	if cfg.ReportNameFormat == "" {
		cfg.ReportNameFormat = "tagging_report_{timestamp}_{uuid}.xlsx"
	}
}

// validate checks the configuration for values the rest of the pipeline
// cannot work with.
func validate(cfg *Config) error {
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	if !strings.HasSuffix(strings.ToLower(cfg.ReportNameFormat), ".xlsx") {
		return fmt.Errorf("report_name_format %q must end in .xlsx", cfg.ReportNameFormat)
	}
	return nil
}

// Recognizes reports whether the given extension (including the dot) is one
// of the configured workout extensions. Matching is case-insensitive.
func (c *Config) Recognizes(ext string) bool {
	for _, e := range c.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
