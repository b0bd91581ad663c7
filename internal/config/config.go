package config

import (
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv    = "ASTRO_VISION_CONFIG"
	databaseDSNEnv   = "DATABASE_DSN"
	storageDriverEnv = "STORAGE_DRIVER"
	geminiModelEnv   = "GEMINI_MODEL"
	adminPasscodeEnv = "ADMIN_PASSCODE"
	httpAddrEnv      = "HTTP_ADDR"
	logLevelEnv      = "LOG_LEVEL"
	formIDEnv        = "FORMSPREE_ID"
)

// apiKeyEnvs are checked in order; the first non-empty value wins.
var apiKeyEnvs = []string{"API_KEY", "GEMINI_API_KEY", "VITE_API_KEY"}

// Config holds high-level settings required across the application.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Storage StorageConfig `yaml:"storage"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Admin   AdminConfig   `yaml:"admin"`
	Contact ContactConfig `yaml:"contact"`
	Drafts  DraftsConfig  `yaml:"drafts"`
	Weather WeatherConfig `yaml:"weather"`
	Chat    ChatConfig    `yaml:"chat"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	AllowOrigins    string        `yaml:"allowOrigins"`
}

// LoggingConfig selects the slog level and handler format (text or json).
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StorageConfig picks the persistence driver: memory, sqlite or postgres.
type StorageConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// GeminiConfig defines how to contact the text-generation service.
type GeminiConfig struct {
	APIKey  string        `yaml:"apiKey"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// AdminConfig holds the shared admin passcode.
type AdminConfig struct {
	Passcode string `yaml:"passcode"`
}

// ContactConfig points at the third-party form service.
type ContactConfig struct {
	Endpoint string        `yaml:"endpoint"`
	FormID   string        `yaml:"formId"`
	Timeout  time.Duration `yaml:"timeout"`
}

// DraftsConfig tunes the editor autosave debounce.
type DraftsConfig struct {
	AutosaveDelay time.Duration `yaml:"autosaveDelay"`
}

// WeatherConfig controls the cosmic weather refresh.
type WeatherConfig struct {
	Interval  time.Duration `yaml:"interval"`
	Languages []string      `yaml:"languages"`
}

// ChatConfig bounds the in-memory chat sessions.
type ChatConfig struct {
	MaxSessions int           `yaml:"maxSessions"`
	IdleTimeout time.Duration `yaml:"idleTimeout"`
}

// Load reads the file named by ASTRO_VISION_CONFIG (if any) and applies
// environment overrides.
func Load() Config {
	return LoadFrom(os.Getenv(configPathEnv))
}

// LoadFrom reads YAML configuration from path (if present) and applies
// environment overrides.
func LoadFrom(path string) Config {
	cfg := defaultConfig()

	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	return cfg
}

func (c *Config) applyEnvOverrides() {
	for _, name := range apiKeyEnvs {
		if v := os.Getenv(name); v != "" {
			c.Gemini.APIKey = v
			break
		}
	}

	if v := os.Getenv(geminiModelEnv); v != "" {
		c.Gemini.Model = v
	}

	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Storage.DSN = v
	}

	if v := os.Getenv(storageDriverEnv); v != "" {
		c.Storage.Driver = v
	}

	if v := os.Getenv(adminPasscodeEnv); v != "" {
		c.Admin.Passcode = v
	}

	if v := os.Getenv(httpAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(formIDEnv); v != "" {
		c.Contact.FormID = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if override.Server.ReadTimeout > 0 {
		base.Server.ReadTimeout = override.Server.ReadTimeout
	}
	if override.Server.WriteTimeout > 0 {
		base.Server.WriteTimeout = override.Server.WriteTimeout
	}
	if override.Server.ShutdownTimeout > 0 {
		base.Server.ShutdownTimeout = override.Server.ShutdownTimeout
	}
	if override.Server.AllowOrigins != "" {
		base.Server.AllowOrigins = override.Server.AllowOrigins
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Storage.Driver != "" {
		base.Storage = override.Storage
	}

	if override.Gemini.APIKey != "" {
		base.Gemini.APIKey = override.Gemini.APIKey
	}
	if override.Gemini.Model != "" {
		base.Gemini.Model = override.Gemini.Model
	}
	if override.Gemini.Timeout > 0 {
		base.Gemini.Timeout = override.Gemini.Timeout
	}

	if override.Admin.Passcode != "" {
		base.Admin.Passcode = override.Admin.Passcode
	}

	if override.Contact.Endpoint != "" {
		base.Contact.Endpoint = override.Contact.Endpoint
	}
	if override.Contact.FormID != "" {
		base.Contact.FormID = override.Contact.FormID
	}
	if override.Contact.Timeout > 0 {
		base.Contact.Timeout = override.Contact.Timeout
	}

	if override.Drafts.AutosaveDelay > 0 {
		base.Drafts.AutosaveDelay = override.Drafts.AutosaveDelay
	}

	if override.Weather.Interval > 0 {
		base.Weather.Interval = override.Weather.Interval
	}
	if len(override.Weather.Languages) > 0 {
		base.Weather.Languages = override.Weather.Languages
	}

	if override.Chat.MaxSessions > 0 {
		base.Chat.MaxSessions = override.Chat.MaxSessions
	}
	if override.Chat.IdleTimeout > 0 {
		base.Chat.IdleTimeout = override.Chat.IdleTimeout
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    2 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
			AllowOrigins:    "*",
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Storage: StorageConfig{Driver: "memory"},
		Gemini: GeminiConfig{
			Model:   "gemini-3-pro-preview",
			Timeout: 90 * time.Second,
		},
		Contact: ContactConfig{
			Endpoint: "https://formspree.io/f/",
			FormID:   "xrbrgvbw",
			Timeout:  10 * time.Second,
		},
		Drafts:  DraftsConfig{AutosaveDelay: 2 * time.Second},
		Weather: WeatherConfig{Interval: 24 * time.Hour, Languages: []string{"en"}},
		Chat:    ChatConfig{MaxSessions: 1000, IdleTimeout: 30 * time.Minute},
	}
}
