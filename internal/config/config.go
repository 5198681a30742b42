// Package config provides configuration loading and validation for the
// analyzer server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxUploadBytes caps uploads at 16 MiB, matching the documented
// request contract.
const DefaultMaxUploadBytes = 16 * 1024 * 1024

// Config holds the analyzer settings. All fields are optional; missing
// values fall back to defaults. Environment variables override file values.
type Config struct {
	Port           int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	UploadDir      string `json:"upload_dir,omitempty"`
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty" validate:"omitempty,min=1"`

	// Rate limiting for the analyze endpoint.
	RateLimitEnabled bool `json:"rate_limit_enabled,omitempty"`
	RateLimitPerMin  int  `json:"rate_limit_per_min,omitempty" validate:"omitempty,min=1"`

	// FetchTimeoutSeconds bounds job-description URL fetches.
	FetchTimeoutSeconds int `json:"fetch_timeout_seconds,omitempty" validate:"omitempty,min=1,max=300"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Port:                8080,
		UploadDir:           filepath.Join(os.TempDir(), "resume-analyzer-uploads"),
		MaxUploadBytes:      DefaultMaxUploadBytes,
		RateLimitEnabled:    true,
		RateLimitPerMin:     60,
		FetchTimeoutSeconds: 15,
	}
}

// Load reads configuration from an optional JSON file, fills defaults, then
// applies environment overrides and validates the result. Env overrides come
// last so RESUME_ANALYZER_RATE_LIMIT_PER_MIN=0 can disable rate limiting
// without the defaults merge re-enabling it.
func Load(path string) (Config, error) {
	cfg := Config{}

	// Distinguishes "rate_limit_enabled absent" from an explicit false; a
	// plain bool cannot, and the defaults merge would re-enable it.
	var flags struct {
		RateLimitEnabled *bool `json:"rate_limit_enabled"`
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
		}
		_ = json.Unmarshal(data, &flags)
	}

	cfg = cfg.MergeWithDefaults(Default())
	if flags.RateLimitEnabled != nil {
		cfg.RateLimitEnabled = *flags.RateLimitEnabled
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from RESUME_ANALYZER_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("RESUME_ANALYZER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("RESUME_ANALYZER_UPLOAD_DIR"); v != "" {
		c.UploadDir = v
	}
	if v := os.Getenv("RESUME_ANALYZER_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("RESUME_ANALYZER_RATE_LIMIT_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateLimitPerMin = n
			c.RateLimitEnabled = n > 0
		}
	}
	if v := os.Getenv("RESUME_ANALYZER_FETCH_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FetchTimeoutSeconds = n
		}
	}
}

// MergeWithDefaults returns a copy with zero-value fields filled from
// defaults. When the per-minute rate is unset, RateLimitEnabled follows the
// default too; Load restores an explicit file or env setting afterwards.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.RateLimitPerMin == 0 {
		result.RateLimitPerMin = defaults.RateLimitPerMin
		result.RateLimitEnabled = defaults.RateLimitEnabled
	}
	if result.FetchTimeoutSeconds == 0 {
		result.FetchTimeoutSeconds = defaults.FetchTimeoutSeconds
	}

	return result
}

// Validate checks field ranges via struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// FetchTimeout returns the URL-fetch bound as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
