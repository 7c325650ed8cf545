package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	content := `
line_ending: crlf
split:
  extension: .rules
report:
  format: json
  sections: true
webhooks:
  - name: ci
    url: https://hooks.example.com/mlox
    trigger: always
    timeout: 3s
`
	cfg, err := Load(context.Background(), writeTempFile(t, "config.yaml", content))
	require.NoError(t, err)

	assert.Equal(t, LineEndingCRLF, cfg.LineEnding)
	assert.Equal(t, ".rules", cfg.Split.Extension)
	assert.Equal(t, ReportFormatJSON, cfg.Report.Format)
	assert.True(t, cfg.Report.Sections)
	require.Len(t, cfg.Webhooks, 1)
	assert.Equal(t, "ci", cfg.Webhooks[0].Name)
	assert.Equal(t, WebhookTriggerAlways, cfg.Webhooks[0].Trigger)
	assert.Equal(t, Duration(3*time.Second), cfg.Webhooks[0].Timeout)
}

func TestLoad_TOML(t *testing.T) {
	content := `
line_ending = "native"

[split]
extension = ".ini"

[report]
format = "text"

[[webhooks]]
url = "http://localhost:8080/hook"
timeout = "250ms"
`
	cfg, err := Load(context.Background(), writeTempFile(t, "config.toml", content))
	require.NoError(t, err)

	assert.Equal(t, LineEndingNative, cfg.LineEnding)
	assert.Equal(t, ".ini", cfg.Split.Extension)
	assert.Equal(t, ReportFormatText, cfg.Report.Format)
	require.Len(t, cfg.Webhooks, 1)
	assert.Equal(t, WebhookTriggerOnIssues, cfg.Webhooks[0].Trigger)
	assert.Equal(t, Duration(250*time.Millisecond), cfg.Webhooks[0].Timeout)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), writeTempFile(t, "config.yaml", "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLineEnding, cfg.LineEnding)
	assert.Equal(t, DefaultExtension, cfg.Split.Extension)
	assert.Equal(t, DefaultReportFormat, cfg.Report.Format)
	assert.False(t, cfg.Report.Sections)
	assert.Empty(t, cfg.Webhooks)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvLineEnding, "crlf")
	t.Setenv(EnvReportFormat, "json")

	cfg, err := Load(context.Background(), writeTempFile(t, "config.yaml", "line_ending: lf\n"))
	require.NoError(t, err)
	assert.Equal(t, LineEndingCRLF, cfg.LineEnding)
	assert.Equal(t, ReportFormatJSON, cfg.Report.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"bad yaml", "config.yaml", "line_ending: [\n", "parsing config file"},
		{"bad toml", "config.toml", "line_ending = \n", "parsing config file"},
		{"bad line ending", "config.yaml", "line_ending: cr\n", "line_ending"},
		{"extension without dot", "config.yaml", "split:\n  extension: txt\n", "must start with '.'"},
		{"extension with separator", "config.yaml", "split:\n  extension: ./x\n", "path separators"},
		{"bad format", "config.yaml", "report:\n  format: xml\n", "invalid format"},
		{"bad duration", "config.yaml", "webhooks:\n  - url: http://x\n    timeout: soon\n", "invalid duration"},
		{"webhook without url", "config.yaml", "webhooks:\n  - name: a\n", "url is required"},
		{"webhook bad scheme", "config.yaml", "webhooks:\n  - url: ftp://x\n", "scheme"},
		{"webhook no host", "config.yaml", "webhooks:\n  - url: http://\n", "host"},
		{"webhook bad trigger", "config.yaml", "webhooks:\n  - url: http://x\n    trigger: sometimes\n", "invalid trigger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), writeTempFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_WebhookToken(t *testing.T) {
	t.Setenv("MLOX_HOOK_TOKEN", "secret")

	for _, token := range []string{"${MLOX_HOOK_TOKEN}", "$MLOX_HOOK_TOKEN"} {
		cfg := DefaultConfig()
		cfg.Webhooks = []WebhookConfig{{URL: "https://example.com", Token: token}}
		require.NoError(t, Validate(cfg))
		assert.Equal(t, "secret", cfg.Webhooks[0].Token)
		assert.Equal(t, Duration(DefaultWebhookTimeout), cfg.Webhooks[0].Timeout)
	}

	cfg := DefaultConfig()
	cfg.Webhooks = []WebhookConfig{{URL: "https://example.com", Token: "literal"}}
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "literal", cfg.Webhooks[0].Token)
}

func TestDiscover(t *testing.T) {
	home := t.TempDir()
	assert.Empty(t, Discover(home))
	assert.Empty(t, Discover(""))

	dir := filepath.Join(home, AppName)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	tomlPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(""), 0o644))
	assert.Equal(t, tomlPath, Discover(home))

	yamlPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(""), 0o644))
	assert.Equal(t, yamlPath, Discover(home))
}

func TestResolve_ExplicitPath(t *testing.T) {
	path := writeTempFile(t, "custom.yaml", "line_ending: crlf\n")
	t.Setenv(EnvConfig, writeTempFile(t, "env.yaml", "line_ending: native\n"))

	cfg, used, err := Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, LineEndingCRLF, cfg.LineEnding)
}

func TestResolve_EnvPath(t *testing.T) {
	path := writeTempFile(t, "env.yaml", "line_ending: native\n")
	t.Setenv(EnvConfig, path)

	cfg, used, err := Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, LineEndingNative, cfg.LineEnding)
}

func TestLineEnding_Terminator(t *testing.T) {
	assert.Equal(t, "\n", LineEndingLF.Terminator())
	assert.Equal(t, "\r\n", LineEndingCRLF.Terminator())
	assert.Equal(t, nativeTerminator, LineEndingNative.Terminator())
	assert.Equal(t, "\n", LineEnding("").Terminator())
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, Duration(90*time.Second), d)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))

	assert.Error(t, d.UnmarshalText([]byte("ninety")))
}
