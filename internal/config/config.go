package config

// Application configuration loading and validation for ykscountdown

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/asalkapakli/ykscountdown/internal/errors"
	"github.com/asalkapakli/ykscountdown/internal/settings"
)

// AppName is used for the config directory and as the counter namespace.
const AppName = "ykscountdown"

// Defaults
const (
	DefaultCounterBaseURL = "https://api.counterapi.dev/v1"
	DefaultCounterTimeout = 5000
	DefaultTimezone       = "Europe/Istanbul"
	DefaultTickMs         = 1000
	DefaultLogLevel       = "error"
)

// Environment overrides
const (
	EnvStorageDir     = "YKS_STORAGE_DIR"
	EnvTimezone       = "YKS_TIMEZONE"
	EnvLogLevel       = "YKS_LOG_LEVEL"
	EnvCounterEnabled = "YKS_COUNTER_ENABLED"
)

// StorageConfig locates the settings blob.
type StorageConfig struct {
	Dir string `yaml:"dir" validate:"required"`
	Key string `yaml:"key" validate:"required"`
}

// CounterConfig controls the visit counter request.
type CounterConfig struct {
	Enabled   bool   `yaml:"enabled"`
	BaseURL   string `yaml:"base_url" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace" validate:"required_if=Enabled true"`
	TimeoutMs int    `yaml:"timeout_ms" validate:"gte=0"`
}

// DisplayConfig controls how time is rendered.
type DisplayConfig struct {
	Timezone string `yaml:"timezone" validate:"required"`
	TickMs   int    `yaml:"tick_ms" validate:"gt=0"`
}

// LoggingConfig selects the log level and optional log file.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=silent error info verbose debug"`
	File  string `yaml:"file,omitempty"`
}

// Config is the application configuration file.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Counter CounterConfig `yaml:"counter"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultDir returns the per-user directory holding config and settings.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "." + AppName
		}
		return filepath.Join(home, "."+AppName)
	}
	return filepath.Join(base, AppName)
}

// DefaultPath returns the default location of the config file.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// CreateDefaultConfig creates a default configuration
func CreateDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir: DefaultDir(),
			Key: settings.StorageKey,
		},
		Counter: CounterConfig{
			Enabled:   true,
			BaseURL:   DefaultCounterBaseURL,
			Namespace: AppName,
			TimeoutMs: DefaultCounterTimeout,
		},
		Display: DisplayConfig{
			Timezone: DefaultTimezone,
			TickMs:   DefaultTickMs,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// WriteDefaultConfig writes a default configuration to a file
func WriteDefaultConfig(path string) error {
	cfg := CreateDefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Load loads the configuration from a YAML file.
// A missing file yields the defaults; with autoCreate set the defaults are
// also written to path. Environment overrides are applied last, after any
// .env file in the working directory has been read.
func Load(path string, autoCreate bool) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := CreateDefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapConfigError(fmt.Errorf("parse YAML: %w", err), path)
		}
	case os.IsNotExist(err):
		if autoCreate {
			if err := WriteDefaultConfig(path); err != nil {
				return nil, errors.WrapConfigError(fmt.Errorf("create default config: %w", err), path)
			}
		}
	default:
		return nil, errors.WrapConfigError(fmt.Errorf("read config file: %w", err), path)
	}

	applyDefaults(cfg)

	// A missing .env is the normal case.
	_ = godotenv.Load()
	if err := applyEnv(cfg); err != nil {
		return nil, errors.WrapConfigError(err, path)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("validate config: %w", err), path)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = DefaultDir()
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = settings.StorageKey
	}
	if cfg.Counter.BaseURL == "" {
		cfg.Counter.BaseURL = DefaultCounterBaseURL
	}
	if cfg.Counter.Namespace == "" {
		cfg.Counter.Namespace = AppName
	}
	if cfg.Counter.TimeoutMs == 0 {
		cfg.Counter.TimeoutMs = DefaultCounterTimeout
	}
	if cfg.Display.Timezone == "" {
		cfg.Display.Timezone = DefaultTimezone
	}
	if cfg.Display.TickMs == 0 {
		cfg.Display.TickMs = DefaultTickMs
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvStorageDir)); v != "" {
		cfg.Storage.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimezone)); v != "" {
		cfg.Display.Timezone = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvCounterEnabled)); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not a boolean", EnvCounterEnabled, v)
		}
		cfg.Counter.Enabled = enabled
	}
	return nil
}

var validate = validator.New()

// Validate checks field constraints and those that need more than a tag.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validate.Struct(cfg); err != nil {
		return describeValidation(err)
	}
	if _, err := time.LoadLocation(cfg.Display.Timezone); err != nil {
		return fmt.Errorf("display.timezone: unknown zone %q", cfg.Display.Timezone)
	}
	if cfg.Counter.Enabled {
		u, err := url.Parse(cfg.Counter.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("counter.base_url: %q must be an http(s) URL", cfg.Counter.BaseURL)
		}
	}
	return nil
}

func describeValidation(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config."))
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Errorf("%s is required", field)
	case "oneof":
		return fmt.Errorf("%s: %v is not one of [%s]", field, fe.Value(), fe.Param())
	default:
		return fmt.Errorf("%s: failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	}
}

// Location returns the display timezone. The zone is validated on load, so
// the fallback only applies to hand-built configs.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Tick returns the refresh interval.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.Display.TickMs) * time.Millisecond
}

// CounterTimeout returns the visit counter request timeout.
func (c *Config) CounterTimeout() time.Duration {
	return time.Duration(c.Counter.TimeoutMs) * time.Millisecond
}
