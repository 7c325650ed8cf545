package config

import (
	"os"
	"runtime"
	"time"
)

// Default values for configuration.
const (
	DefaultLineEnding     = LineEndingLF
	DefaultExtension      = ".txt"
	DefaultReportFormat   = ReportFormatText
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvConfig       = "MLOXRULES_CONFIG"
	EnvLineEnding   = "MLOXRULES_LINE_ENDING"
	EnvReportFormat = "MLOXRULES_REPORT_FORMAT"
)

var nativeTerminator = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LineEnding: DefaultLineEnding,
		Split: SplitConfig{
			Extension: DefaultExtension,
		},
		Report: ReportConfig{
			Format: DefaultReportFormat,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvLineEnding); v != "" {
		c.LineEnding = LineEnding(v)
	}
	if v := os.Getenv(EnvReportFormat); v != "" {
		c.Report.Format = ReportFormat(v)
	}
}
