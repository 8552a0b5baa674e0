// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/novonex/skill-align/internal/profile"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Target
	Company    string `json:"company,omitempty"`     // Company name for analysis
	Role       string `json:"role,omitempty"`        // Role id or title for analysis
	PostingURL string `json:"posting_url,omitempty"` // URL of a job posting to analyze instead

	// Identity
	ProfileID string `json:"profile_id,omitempty"` // Profile UUID (required for DB-based runs)

	// Matching
	MatchPolicy string `json:"match_policy,omitempty"` // contains | word | exact

	// Services
	APIKey        string `json:"api_key,omitempty"`        // Gemini API key
	DatabaseURL   string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	RedisAddr     string `json:"redis_addr,omitempty"`     // Redis address for the analysis cache
	RedisPassword string `json:"redis_password,omitempty"` // Redis password

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; CLI flag validation after merging
// handles those.
func (c *Config) Validate() error {
	if c.Company != "" && c.PostingURL != "" {
		return fmt.Errorf("config error: 'company' and 'posting_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if _, err := c.ResolveMatchPolicy(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	return nil
}

// ResolveMatchPolicy maps the configured match_policy string to a resolver
// policy. Empty means the default containment policy.
func (c *Config) ResolveMatchPolicy() (profile.MatchPolicy, error) {
	switch c.MatchPolicy {
	case "", "contains":
		return profile.MatchContains, nil
	case "word":
		return profile.MatchWholeWord, nil
	case "exact":
		return profile.MatchExact, nil
	default:
		return profile.MatchContains, fmt.Errorf("unknown match_policy %q (want contains, word, or exact)", c.MatchPolicy)
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.PostingURL == "" {
		result.PostingURL = defaults.PostingURL
	}
	if result.ProfileID == "" {
		result.ProfileID = defaults.ProfileID
	}
	if result.MatchPolicy == "" {
		result.MatchPolicy = defaults.MatchPolicy
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.RedisPassword == "" {
		result.RedisPassword = defaults.RedisPassword
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
