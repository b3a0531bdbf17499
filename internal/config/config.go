// Package config handles moanote configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HartBrook/moanote/internal/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// CacheConfig contains article cache settings.
type CacheConfig struct {
	TTL string `yaml:"ttl"` // e.g., "168h"
}

// TemplatesConfig contains shared template settings.
type TemplatesConfig struct {
	// Source is an owner/repo holding shared template YAML under templates/.
	Source string `yaml:"source,omitempty"`
}

// Config represents the moanote configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Provider selects the article writer: openai, gemini, gemini-pro, anthropic or mock.
	Provider string `yaml:"provider"`

	// Model overrides the provider's default model.
	Model string `yaml:"model,omitempty"`

	// WordCount is used when a brief leaves word_count empty.
	WordCount int `yaml:"word_count,omitempty"`

	// EnvFile is an optional .env file holding API keys.
	EnvFile string `yaml:"env_file,omitempty"`

	// Trusted is a list of repos/orgs that don't require confirmation on pull.
	Trusted []string `yaml:"trusted,omitempty"`

	Cache     CacheConfig     `yaml:"cache"`
	Templates TemplatesConfig `yaml:"templates,omitempty"`
}

// Default values.
const (
	DefaultVersion   = 1
	DefaultProvider  = "openai"
	DefaultWordCount = 3000
	DefaultCacheTTL  = "168h"
)

// KnownProviders lists the provider names accepted in config.
var KnownProviders = []string{"openai", "gemini", "gemini-pro", "anthropic", "mock"}

// Load reads and validates config from the default location.
func Load() (*Config, error) {
	paths := NewPaths()
	return LoadFrom(paths.ConfigFile)
}

// LoadOrDefault reads config from the default location, falling back to
// defaults when no config file exists yet.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err == nil {
		return cfg, nil
	}
	if errors.HasCode(err, errors.ErrConfigNotFound) {
		return NewDefaultConfig(), nil
	}
	return nil, err
}

// LoadFrom reads and validates config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes config to the default location.
func Save(cfg *Config) error {
	paths := NewPaths()
	return SaveTo(cfg, paths.ConfigFile)
}

// SaveTo writes config to a specific path.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to marshal config", "", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, DefaultFileMode)
}

// Validate checks config for required fields and valid values.
func (c *Config) Validate() error {
	if !IsKnownProvider(c.Provider) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown provider %q (use %s)", c.Provider, strings.Join(KnownProviders, ", ")))
	}

	if c.WordCount < 0 {
		return errors.ConfigInvalid("word_count must not be negative")
	}

	if c.Cache.TTL != "" {
		if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
			return errors.ConfigInvalid("invalid cache.ttl format, use Go duration format (e.g., 168h)")
		}
	}

	if c.Templates.Source != "" {
		if _, _, err := ParseRepo(c.Templates.Source); err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("invalid templates.source: %v", err))
		}
	}

	return nil
}

// applyDefaults sets default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.WordCount == 0 {
		c.WordCount = DefaultWordCount
	}
	if c.Cache.TTL == "" {
		c.Cache.TTL = DefaultCacheTTL
	}
}

// TTLDuration returns the cache TTL as a time.Duration.
func (c *CacheConfig) TTLDuration() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		d, _ = time.ParseDuration(DefaultCacheTTL)
	}
	return d
}

// LoadEnv loads EnvFile into the process environment. Variables already set
// are left alone. A missing env_file is not an error when none is configured.
func (c *Config) LoadEnv() error {
	if c.EnvFile == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		return godotenv.Load()
	}
	if err := godotenv.Load(c.EnvFile); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, fmt.Sprintf("failed to load env_file %s", c.EnvFile), "Check the env_file path in your config", err)
	}
	return nil
}

// Exists checks if a config file exists at the default location.
func Exists() bool {
	paths := NewPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

// IsKnownProvider reports whether name is an accepted provider.
func IsKnownProvider(name string) bool {
	for _, p := range KnownProviders {
		if p == name {
			return true
		}
	}
	return false
}

// IsTrustedSource checks if a repo is trusted according to this config.
// It checks both the user's trusted list and the default trusted sources.
func (c *Config) IsTrustedSource(repo string) bool {
	if IsTrusted(repo, c.Trusted) {
		return true
	}
	return IsTrusted(repo, DefaultTrustedSources)
}

// NewDefaultConfig creates a config with every default applied.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// TemplatesOwnerRepo returns the owner and repo of the shared template source.
func (c *Config) TemplatesOwnerRepo() (owner, repo string, err error) {
	return ParseRepo(c.Templates.Source)
}
