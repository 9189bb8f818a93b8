package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
store:
  backend: sqlite
  path: /tmp/test.db
  ttl: 30m
parser:
  preamble_lines: 3
  language: it
webhooks:
  - name: alerts
    url: https://example.com/hook
    trigger: always
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Store.Backend != StoreBackendSQLite || cfg.Store.Path != "/tmp/test.db" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Store.TTL != 30*time.Minute {
		t.Errorf("TTL = %v, want 30m", cfg.Store.TTL)
	}
	if cfg.Parser.PreambleLines != 3 || cfg.Parser.Language != "it" {
		t.Errorf("parser = %+v", cfg.Parser)
	}
	if len(cfg.Webhooks) != 1 || cfg.Webhooks[0].Trigger != WebhookTriggerAlways {
		t.Errorf("webhooks = %+v", cfg.Webhooks)
	}
	if cfg.Webhooks[0].Timeout != DefaultWebhookTimeout {
		t.Errorf("webhook timeout = %v, want default", cfg.Webhooks[0].Timeout)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), writeConfig(t, "{}"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Store.Backend != StoreBackendMemory || cfg.Store.TTL != DefaultTTL {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Parser.PreambleLines != DefaultPreambleLines {
		t.Errorf("PreambleLines = %d, want %d", cfg.Parser.PreambleLines, DefaultPreambleLines)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(context.Background(), writeConfig(t, "server: [not a map"))
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("error = %v, want parse failure", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			"invalid store backend",
			func(c *Config) { c.Store.Backend = "redis" },
			"invalid backend",
		},
		{
			"sqlite without path",
			func(c *Config) { c.Store.Backend = StoreBackendSQLite; c.Store.Path = "" },
			"path is required",
		},
		{
			"negative preamble",
			func(c *Config) { c.Parser.PreambleLines = -1 },
			"preamble_lines",
		},
		{
			"invalid language",
			func(c *Config) { c.Parser.Language = "fr" },
			"invalid language",
		},
		{
			"webhook without url",
			func(c *Config) { c.Webhooks = []WebhookConfig{{Name: "x"}} },
			"url is required",
		},
		{
			"webhook bad scheme",
			func(c *Config) { c.Webhooks = []WebhookConfig{{URL: "ftp://example.com"}} },
			"scheme must be http or https",
		},
		{
			"webhook without host",
			func(c *Config) { c.Webhooks = []WebhookConfig{{URL: "https://"}} },
			"host",
		},
		{
			"webhook bad trigger",
			func(c *Config) {
				c.Webhooks = []WebhookConfig{{URL: "https://example.com", Trigger: "sometimes"}}
			},
			"invalid trigger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_WebhookDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Webhooks = []WebhookConfig{{URL: "https://example.com/hook"}}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Webhooks[0].Trigger != WebhookTriggerOnMatches {
		t.Errorf("Trigger = %q, want on_matches default", cfg.Webhooks[0].Trigger)
	}
	if cfg.Webhooks[0].Timeout != DefaultWebhookTimeout {
		t.Errorf("Timeout = %v, want default", cfg.Webhooks[0].Timeout)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvAddr, ":7070")
	t.Setenv(EnvStoreBackend, "sqlite")
	t.Setenv(EnvStorePath, "/tmp/env.db")
	t.Setenv(EnvStoreTTL, "2h")
	t.Setenv(EnvLanguage, "it")
	t.Setenv(EnvPatternsDir, "/etc/chatlens/patterns")

	cfg, err := FromEnvironment()
	if err != nil {
		t.Fatalf("FromEnvironment() error = %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Store.Backend != StoreBackendSQLite || cfg.Store.Path != "/tmp/env.db" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Store.TTL != 2*time.Hour {
		t.Errorf("TTL = %v", cfg.Store.TTL)
	}
	if cfg.Parser.Language != "it" {
		t.Errorf("Language = %q", cfg.Parser.Language)
	}
	if cfg.Patterns.Dir != "/etc/chatlens/patterns" {
		t.Errorf("Patterns.Dir = %q", cfg.Patterns.Dir)
	}
}

func TestWebhookTokenExpansion(t *testing.T) {
	t.Setenv("HOOK_TOKEN", "secret-value")

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"braced", "${HOOK_TOKEN}", "secret-value"},
		{"bare", "$HOOK_TOKEN", "secret-value"},
		{"literal", "plain-token", "plain-token"},
		{"empty", "", ""},
		{"unset var", "${UNSET_HOOK_TOKEN}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Webhooks = []WebhookConfig{{URL: "https://example.com", Token: tt.token}}
			if err := Validate(cfg); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if cfg.Webhooks[0].Token != tt.want {
				t.Errorf("Token = %q, want %q", cfg.Webhooks[0].Token, tt.want)
			}
		})
	}
}
