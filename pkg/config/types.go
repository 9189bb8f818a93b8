// Package config provides configuration loading and validation for ChatLens.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Server   ServerConfig    `yaml:"server,omitempty"`
	Store    StoreConfig     `yaml:"store,omitempty"`
	Parser   ParserConfig    `yaml:"parser,omitempty"`
	Patterns PatternsConfig  `yaml:"patterns,omitempty"`
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr,omitempty"`

	// MaxUploadBytes caps the size of an uploaded transcript.
	MaxUploadBytes int64 `yaml:"max_upload_bytes,omitempty"`
}

// StoreBackend identifies a session store implementation.
type StoreBackend string

const (
	StoreBackendMemory StoreBackend = "memory"
	StoreBackendSQLite StoreBackend = "sqlite"
)

// StoreConfig configures the parsed-transcript session store.
type StoreConfig struct {
	// Backend selects the store implementation (memory or sqlite).
	Backend StoreBackend `yaml:"backend,omitempty"`

	// Path is the database file path (sqlite backend only).
	Path string `yaml:"path,omitempty"`

	// TTL is how long an uploaded session remains retrievable.
	TTL time.Duration `yaml:"ttl,omitempty"`
}

// ParserConfig configures transcript parsing.
type ParserConfig struct {
	// PreambleLines is the number of leading lines skipped before parsing.
	PreambleLines int `yaml:"preamble_lines"`

	// Language is the default content language ("en" or "it").
	// Empty means detect per transcript.
	Language string `yaml:"language,omitempty"`
}

// PatternsConfig configures tracked phrase loading.
type PatternsConfig struct {
	// Dir is a directory containing phrase files. Empty uses built-in fallbacks.
	Dir string `yaml:"dir,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnMatches fires only when tracked phrases were found (default).
	WebhookTriggerOnMatches WebhookTrigger = "on_matches"
	// WebhookTriggerAlways fires after every analysis.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending analysis reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_matches" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
