package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultAddr           = ":8080"
	DefaultMaxUploadBytes = 32 << 20
	DefaultStorePath      = "chatlens.db"
	DefaultTTL            = time.Hour
	DefaultPreambleLines  = 5
	DefaultLanguage       = "en"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvAddr         = "CHATLENS_ADDR"
	EnvStoreBackend = "CHATLENS_STORE_BACKEND"
	EnvStorePath    = "CHATLENS_STORE_PATH"
	EnvStoreTTL     = "CHATLENS_STORE_TTL"
	EnvLanguage     = "CHATLENS_LANGUAGE"
	EnvPatternsDir  = "CHATLENS_PATTERNS_DIR"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           DefaultAddr,
			MaxUploadBytes: DefaultMaxUploadBytes,
		},
		Store: StoreConfig{
			Backend: StoreBackendMemory,
			Path:    DefaultStorePath,
			TTL:     DefaultTTL,
		},
		Parser: ParserConfig{
			PreambleLines: DefaultPreambleLines,
			Language:      DefaultLanguage,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if addr := os.Getenv(EnvAddr); addr != "" {
		c.Server.Addr = addr
	}
	if backend := os.Getenv(EnvStoreBackend); backend != "" {
		c.Store.Backend = StoreBackend(backend)
	}
	if path := os.Getenv(EnvStorePath); path != "" {
		c.Store.Path = path
	}
	if ttl := os.Getenv(EnvStoreTTL); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Store.TTL = d
		}
	}
	if lang := os.Getenv(EnvLanguage); lang != "" {
		c.Parser.Language = lang
	}
	if dir := os.Getenv(EnvPatternsDir); dir != "" {
		c.Patterns.Dir = dir
	}
}
