// Package config provides configuration loading and validation for mloxrules.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure, loaded from YAML or TOML.
type Config struct {
	// LineEnding selects the terminator written after merged files and
	// split sections: lf, crlf or native.
	LineEnding LineEnding `yaml:"line_ending" toml:"line_ending"`

	Split    SplitConfig     `yaml:"split" toml:"split"`
	Report   ReportConfig    `yaml:"report" toml:"report"`
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty" toml:"webhooks,omitempty"`
}

// LineEnding names a line terminator style.
type LineEnding string

const (
	LineEndingLF     LineEnding = "lf"
	LineEndingCRLF   LineEnding = "crlf"
	LineEndingNative LineEnding = "native"
)

// Terminator returns the characters written for the line ending.
func (l LineEnding) Terminator() string {
	switch l {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingNative:
		return nativeTerminator
	default:
		return "\n"
	}
}

// SplitConfig controls the split command.
type SplitConfig struct {
	// Extension is appended to every section file name.
	Extension string `yaml:"extension" toml:"extension"`
}

// ReportFormat names a report output format.
type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatJSON ReportFormat = "json"
)

// ReportConfig controls the report command.
type ReportConfig struct {
	// Format is the default output format.
	Format ReportFormat `yaml:"format" toml:"format"`

	// Sections lists every section key by default.
	Sections bool `yaml:"sections" toml:"sections"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnIssues fires only when the report finds issues (default).
	WebhookTriggerOnIssues WebhookTrigger = "on_issues"
	// WebhookTriggerAlways fires after every report.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines an endpoint that receives JSON reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url" toml:"url"`

	// Token is an optional bearer token. ${VAR} and $VAR are expanded.
	Token string `yaml:"token,omitempty" toml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_issues" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty" toml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout Duration `yaml:"timeout,omitempty" toml:"timeout,omitempty"`
}

// Duration is a time.Duration written as a Go duration string ("10s") in
// both YAML and TOML.
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalYAML parses a duration scalar.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}
