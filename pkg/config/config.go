package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the XDG config home.
const AppName = "mloxrules"

// configFileNames are searched, in order, by Discover.
var configFileNames = []string{"config.yaml", "config.yml", "config.toml"}

// Load reads and validates a configuration file. The format is chosen by the
// file extension: .toml for TOML, anything else for YAML.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Resolve returns the configuration to use for a command run. An explicit
// path wins, then $MLOXRULES_CONFIG, then a file found by Discover under the
// XDG config home. Without any file the defaults are used.
func Resolve(ctx context.Context, path string) (*Config, string, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = Discover(xdg.ConfigHome)
	}

	if path == "" {
		cfg := DefaultConfig()
		cfg.applyEnvironmentOverrides()
		if err := Validate(cfg); err != nil {
			return nil, "", fmt.Errorf("validating config: %w", err)
		}
		return cfg, "", nil
	}

	cfg, err := Load(ctx, path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// Discover returns the first config file present under
// <configHome>/mloxrules, or "" if there is none.
func Discover(configHome string) string {
	if configHome == "" {
		return ""
	}
	for _, name := range configFileNames {
		candidate := filepath.Join(configHome, AppName, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks a configuration for errors and fills in defaults.
func Validate(cfg *Config) error {
	switch cfg.LineEnding {
	case LineEndingLF, LineEndingCRLF, LineEndingNative:
	case "":
		cfg.LineEnding = DefaultLineEnding
	default:
		return fmt.Errorf("line_ending: invalid value %q (must be lf, crlf, or native)", cfg.LineEnding)
	}

	if err := validateSplit(&cfg.Split); err != nil {
		return fmt.Errorf("split: %w", err)
	}

	switch cfg.Report.Format {
	case ReportFormatText, ReportFormatJSON:
	case "":
		cfg.Report.Format = DefaultReportFormat
	default:
		return fmt.Errorf("report: invalid format %q (must be text or json)", cfg.Report.Format)
	}

	for i := range cfg.Webhooks {
		if err := ValidateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateSplit(sc *SplitConfig) error {
	if sc.Extension == "" {
		sc.Extension = DefaultExtension
	}
	if !strings.HasPrefix(sc.Extension, ".") {
		return fmt.Errorf("extension %q must start with '.'", sc.Extension)
	}
	if strings.ContainsAny(sc.Extension, `/\`) {
		return fmt.Errorf("extension %q must not contain path separators", sc.Extension)
	}
	return nil
}

// ValidateWebhook checks a single webhook and fills in its default trigger
// and timeout. The token is expanded from the environment.
func ValidateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	wh.Token = expandEnvVar(wh.Token)

	if wh.Trigger != "" {
		switch wh.Trigger {
		case WebhookTriggerOnIssues, WebhookTriggerAlways, WebhookTriggerNever:
		default:
			return fmt.Errorf("invalid trigger %q (must be on_issues, always, or never)", wh.Trigger)
		}
	} else {
		wh.Trigger = WebhookTriggerOnIssues
	}

	if wh.Timeout <= 0 {
		wh.Timeout = Duration(DefaultWebhookTimeout)
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}

	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		return os.Getenv(s[1:])
	}

	return s
}
