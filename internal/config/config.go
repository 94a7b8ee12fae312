// Package config loads and exposes application configuration (TOML).
package config

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Default configuration values used when a field is missing in TOML.
const (
	DefaultConfigPath   = "config.toml"
	DefaultHTTPAddr     = ":3001"
	DefaultAPIBaseURL   = "http://localhost:3001"
	DefaultResource     = "contactos"
	DefaultAPITimeout   = "10s"
	DefaultUpdateMethod = http.MethodPut
	DefaultStorePath    = "agenda.db"
	DefaultRateLimit    = 20
)

// Storage drivers understood by the mock backend.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config is the root application configuration loaded from TOML.
type Config struct {
	Log     LogConfig     `toml:"log"`
	API     APIConfig     `toml:"api"`
	App     AppConfig     `toml:"app"`
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
}

// LogConfig holds logging level, format and an optional output file.
// The terminal UI always logs to File because it owns stdout.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// APIConfig describes the REST backend the client talks to.
type APIConfig struct {
	BaseURL      string `toml:"base_url"`
	Resource     string `toml:"resource"`
	Timeout      string `toml:"timeout"`
	UpdateMethod string `toml:"update_method"`
}

// AppConfig holds the static header and footer metadata.
type AppConfig struct {
	Titulo     string `toml:"titulo"`
	Subtitulo  string `toml:"subtitulo"`
	Ficha      string `toml:"ficha"`
	Instructor string `toml:"instructor"`
}

// ServerConfig holds the mock backend listen address and request rate limit (req/s, 0 disables).
type ServerConfig struct {
	Addr      string  `toml:"addr"`
	RateLimit float64 `toml:"rate_limit"`
}

// StorageConfig selects the mock backend store.
type StorageConfig struct {
	Driver   string `toml:"driver"`
	Path     string `toml:"path"`
	SeedFile string `toml:"seed_file"`
}

// TimeoutDuration parses Timeout, falling back to the default on empty or invalid values.
func (c APIConfig) TimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(strings.TrimSpace(c.Timeout)); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultAPITimeout)
	return d
}

// Method returns the HTTP method used for updates (PUT or PATCH).
func (c APIConfig) Method() string {
	if strings.EqualFold(strings.TrimSpace(c.UpdateMethod), http.MethodPatch) {
		return http.MethodPatch
	}
	return DefaultUpdateMethod
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		API: APIConfig{
			BaseURL:      DefaultAPIBaseURL,
			Resource:     DefaultResource,
			Timeout:      DefaultAPITimeout,
			UpdateMethod: DefaultUpdateMethod,
		},
		App: AppConfig{
			Titulo:     "Agenda ADSO",
			Subtitulo:  "Gestión de contactos conectada a una API REST.",
			Ficha:      "3223874",
			Instructor: "Gustavo Adolfo Bolaños Dorado",
		},
		Server: ServerConfig{
			Addr:      DefaultHTTPAddr,
			RateLimit: DefaultRateLimit,
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
			Path:   DefaultStorePath,
		},
	}
}

// Load reads and parses the TOML config file at path and applies default values for missing fields.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Environment variables that override values loaded from the file.
const (
	EnvHTTPAddr      = "HTTP_ADDR"
	EnvAPIBaseURL    = "AGENDA_API_URL"
	EnvStorageDriver = "AGENDA_STORAGE_DRIVER"
	EnvStoragePath   = "AGENDA_STORAGE_PATH"
)

// ApplyEnv overrides cfg with the non-empty environment variables above.
func ApplyEnv(cfg *Config) {
	if value := os.Getenv(EnvHTTPAddr); value != "" {
		cfg.Server.Addr = value
	}
	if value := os.Getenv(EnvAPIBaseURL); value != "" {
		cfg.API.BaseURL = value
	}
	if value := os.Getenv(EnvStorageDriver); value != "" {
		cfg.Storage.Driver = value
	}
	if value := os.Getenv(EnvStoragePath); value != "" {
		cfg.Storage.Path = value
	}
}
