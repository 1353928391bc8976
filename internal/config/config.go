// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete fusion configuration.
type Config struct {
	// Version of the config schema
	Version string `toml:"version"`

	// API configuration (generative-language service)
	API APIConfig `toml:"api"`

	// Chat behavior configuration
	Chat ChatConfig `toml:"chat"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Telemetry configuration
	Telemetry TelemetryConfig `toml:"telemetry"`
}

// APIConfig contains the generative-language service configuration.
type APIConfig struct {
	// Key is the API credential. Usually left empty here and supplied
	// via GEMINI_API_KEY / FUSION_API_KEY; an absent key never blocks
	// startup, it only makes every gateway call fall back.
	Key string `toml:"key"`
	// BaseURL of the service (empty = provider default)
	BaseURL string `toml:"base_url"`
	// Model to generate with (empty = provider default)
	Model string `toml:"model"`
	// TimeoutSecs is the transport timeout for one call
	TimeoutSecs int `toml:"timeout_secs"`
}

// ChatConfig contains conversation behavior configuration.
type ChatConfig struct {
	// ContactName is the display name of the assistant contact
	ContactName string `toml:"contact_name"`
	// ReplyDelayMS is the simulated human latency added after the
	// service responds, in milliseconds
	ReplyDelayMS int `toml:"reply_delay_ms"`
	// HistoryLimit caps how many prior turns are replayed per call
	HistoryLimit int `toml:"history_limit"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// PrivacyOnStart enables the privacy blur when entering the room
	PrivacyOnStart bool `toml:"privacy_on_start"`
}

// TelemetryConfig contains the local observability sink configuration.
type TelemetryConfig struct {
	// Enabled turns the event log on or off
	Enabled bool `toml:"enabled"`
	// DBPath is the SQLite database path (empty = ~/.fusion/telemetry.db)
	DBPath string `toml:"db_path"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Version: "1",
		API: APIConfig{
			TimeoutSecs: 30,
		},
		Chat: ChatConfig{
			ContactName:  "Gemini Fusion Assistant",
			ReplyDelayMS: 1000,
			HistoryLimit: 64,
		},
		UI: UIConfig{
			PrivacyOnStart: false,
		},
		Telemetry: TelemetryConfig{
			Enabled: true,
		},
	}
}

// ReplyDelay returns the simulated latency as a duration.
func (c *Config) ReplyDelay() time.Duration {
	return time.Duration(c.Chat.ReplyDelayMS) * time.Millisecond
}

// Timeout returns the API transport timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSecs) * time.Second
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the fusion configuration directory (~/.fusion).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".fusion"), nil
}

// Path returns the path of the TOML config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureDir creates the configuration directory if it doesn't exist.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file, fills defaults, and applies environment
// overrides. A missing file is not an error; defaults are used.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if loadErr := LoadTOML(cfg, path); loadErr != nil && !os.IsNotExist(loadErr) {
			return nil, loadErr
		}
	}

	cfg.fillDefaults()
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadTOML decodes a TOML file over the given config. Values present
// in the file replace values in cfg; absent values are untouched.
func LoadTOML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return nil
}

// fillDefaults replaces zero values with built-in defaults so a
// sparse config file still yields a workable configuration.
func (c *Config) fillDefaults() {
	def := Default()

	if c.Version == "" {
		c.Version = def.Version
	}
	if c.API.TimeoutSecs <= 0 {
		c.API.TimeoutSecs = def.API.TimeoutSecs
	}
	if c.Chat.ContactName == "" {
		c.Chat.ContactName = def.Chat.ContactName
	}
	if c.Chat.ReplyDelayMS < 0 {
		c.Chat.ReplyDelayMS = def.Chat.ReplyDelayMS
	}
	if c.Chat.HistoryLimit <= 0 {
		c.Chat.HistoryLimit = def.Chat.HistoryLimit
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies FUSION_* environment variables over the
// loaded configuration. GEMINI_API_KEY is honored for compatibility
// with the service's own tooling; FUSION_API_KEY wins when both are
// set.
func (c *Config) ApplyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.API.Key = key
	}
	if key := os.Getenv("FUSION_API_KEY"); key != "" {
		c.API.Key = key
	}
	if url := os.Getenv("FUSION_BASE_URL"); url != "" {
		c.API.BaseURL = url
	}
	if model := os.Getenv("FUSION_MODEL"); model != "" {
		c.API.Model = model
	}
	if contact := os.Getenv("FUSION_CONTACT"); contact != "" {
		c.Chat.ContactName = contact
	}
	if delay := os.Getenv("FUSION_REPLY_DELAY_MS"); delay != "" {
		if ms, err := strconv.Atoi(delay); err == nil && ms >= 0 {
			c.Chat.ReplyDelayMS = ms
		}
	}
	if privacy := os.Getenv("FUSION_PRIVACY"); privacy != "" {
		c.UI.PrivacyOnStart = privacy == "1" || privacy == "true"
	}
	if telemetry := os.Getenv("FUSION_TELEMETRY"); telemetry != "" {
		c.Telemetry.Enabled = telemetry != "0" && telemetry != "false"
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid config value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for invalid values. An empty API
// key is deliberately NOT a validation error: the app starts without
// one and every gateway call falls into the fallback path.
func (c *Config) Validate() error {
	if c.API.TimeoutSecs <= 0 {
		return ValidationError{Field: "api.timeout_secs", Message: "must be positive"}
	}
	if c.Chat.ReplyDelayMS < 0 {
		return ValidationError{Field: "chat.reply_delay_ms", Message: "must not be negative"}
	}
	if c.Chat.HistoryLimit <= 0 {
		return ValidationError{Field: "chat.history_limit", Message: "must be positive"}
	}
	if c.Chat.ContactName == "" {
		return ValidationError{Field: "chat.contact_name", Message: "must not be empty"}
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the config to the default TOML path.
func Save(cfg *Config) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the config to the given path as TOML.
func SaveTOML(cfg *Config, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu     sync.RWMutex
	globalConfig *Config
)

// Global returns the process-wide config, loading it on first use.
// Returns nil only if loading failed.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	cfg, err := Load()
	if err != nil {
		return nil
	}
	SetGlobal(cfg)
	return cfg
}

// SetGlobal replaces the process-wide config.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// ReloadGlobal re-reads the config file and replaces the global.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// ResetGlobalForTesting clears the global config. Test helper only.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = nil
}
