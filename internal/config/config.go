package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all application configuration
type Config struct {
	// API Keys
	GeminiKey string `json:"gemini_api_key,omitempty"`
	OpenAIKey string `json:"openai_api_key,omitempty"`

	// Model selection
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`

	// Preferences
	Language string `json:"language,omitempty"`
	Theme    string `json:"theme,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Environment variables consulted when a credential is not in the file.
// API_KEY is the build-time default, usually provided through .env.
var (
	geminiEnv = []string{"API_KEY", "GEMINI_API_KEY"}
	openaiEnv = []string{"OPENAI_API_KEY"}
)

var (
	configDir  string
	configFile string
	current    *Config
)

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	configDir = filepath.Join(home, ".config", "folio")
	configFile = filepath.Join(configDir, "config.json")
}

// Load reads the config from disk
func Load() (*Config, error) {
	if current != nil {
		return current, nil
	}

	cfg := &Config{
		Provider: ProviderGemini,
		Language: "en",
		Theme:    "default",
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			current = cfg
			return current, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	current = cfg
	return current, nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	current = cfg
	return nil
}

// Get returns the current config, loading if necessary.
// A config file that cannot be parsed yields defaults.
func Get() *Config {
	if current == nil {
		if _, err := Load(); err != nil {
			current = &Config{Provider: ProviderGemini, Language: "en", Theme: "default"}
		}
	}
	return current
}

// Set updates a config value by key
func Set(key, value string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	switch key {
	case "gemini_api_key", "gemini", "api_key":
		cfg.GeminiKey = value
	case "openai_api_key", "openai":
		cfg.OpenAIKey = value
	case "provider":
		if value != ProviderGemini && value != ProviderOpenAI {
			return fmt.Errorf("unknown provider: %s", value)
		}
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "base_url":
		cfg.BaseURL = value
	case "language", "lang":
		if value != "en" && value != "vi" {
			return fmt.Errorf("unsupported language: %s", value)
		}
		cfg.Language = value
	case "theme":
		if value != "default" && value != "synthwave" {
			return fmt.Errorf("unknown theme: %s", value)
		}
		cfg.Theme = value
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return Save(cfg)
}

// Delete removes a config value
func Delete(key string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	switch key {
	case "gemini_api_key", "gemini", "api_key":
		cfg.GeminiKey = ""
	case "openai_api_key", "openai":
		cfg.OpenAIKey = ""
	case "provider":
		cfg.Provider = ProviderGemini
	case "model":
		cfg.Model = ""
	case "base_url":
		cfg.BaseURL = ""
	case "language", "lang":
		cfg.Language = "en"
	case "theme":
		cfg.Theme = "default"
	case "log_level":
		cfg.LogLevel = ""
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return Save(cfg)
}

// StoredKey returns the credential saved in the file for a provider.
func StoredKey(provider string) string {
	cfg := Get()
	if provider == ProviderOpenAI {
		return cfg.OpenAIKey
	}
	return cfg.GeminiKey
}

// EnvKey returns the credential from the environment for a provider.
func EnvKey(provider string) string {
	names := geminiEnv
	if provider == ProviderOpenAI {
		names = openaiEnv
	}
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// GetKey returns the credential for a provider (config or env)
func GetKey(provider string) string {
	if k := StoredKey(provider); k != "" {
		return k
	}
	return EnvKey(provider)
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return configFile
}

// LogPath returns the path of the application log file
func LogPath() string {
	return filepath.Join(configDir, "folio.log")
}

// ListKeys returns configured keys (masked for display)
func ListKeys() map[string]string {
	cfg := Get()
	result := make(map[string]string)

	for _, p := range []string{ProviderGemini, ProviderOpenAI} {
		name := p + "_api_key"
		if k := StoredKey(p); k != "" {
			result[name] = maskKey(k)
		} else if k := EnvKey(p); k != "" {
			result[name] = maskKey(k) + " (env)"
		}
	}

	if cfg.Provider != "" {
		result["provider"] = cfg.Provider
	}
	if cfg.Model != "" {
		result["model"] = cfg.Model
	}
	if cfg.BaseURL != "" {
		result["base_url"] = cfg.BaseURL
	}
	if cfg.Language != "" {
		result["language"] = cfg.Language
	}
	if cfg.Theme != "" {
		result["theme"] = cfg.Theme
	}
	if cfg.LogLevel != "" {
		result["log_level"] = cfg.LogLevel
	}

	return result
}

// maskKey shows only first 4 and last 4 characters
func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// CredentialBackend persists one provider's credential in the config file.
type CredentialBackend struct {
	Provider string
}

func (b CredentialBackend) key() string {
	if b.Provider == ProviderOpenAI {
		return "openai"
	}
	return "gemini"
}

// Load returns the stored credential, or "" when none is stored.
func (b CredentialBackend) Load() (string, error) {
	if _, err := Load(); err != nil {
		return "", err
	}
	return StoredKey(b.Provider), nil
}

func (b CredentialBackend) Save(value string) error {
	return Set(b.key(), value)
}

func (b CredentialBackend) Remove() error {
	return Delete(b.key())
}
