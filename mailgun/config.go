package mailgun

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/shineum/mailgun-lite/internal/logging"
)

// dotEnvPath is the .env file consulted by Load and LoadFromFile.
var dotEnvPath = ".env"

// Config holds everything needed to build a Client.
type Config struct {
	Mailgun AccountConfig `yaml:"mailgun"`
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
}

// AccountConfig holds the API credentials and sending domain.
type AccountConfig struct {
	Secret   string `yaml:"secret"`
	Endpoint string `yaml:"endpoint"`
	Domain   string `yaml:"domain"`
}

// LogValue keeps the secret out of log records.
func (a AccountConfig) LogValue() slog.Value {
	secret := ""
	if a.Secret != "" {
		secret = "[REDACTED]"
	}
	return slog.GroupValue(
		slog.String("secret", secret),
		slog.String("endpoint", a.Endpoint),
		slog.String("domain", a.Domain),
	)
}

// HTTPConfig holds transport settings.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load builds a configuration from defaults, an optional .env file in the
// working directory and the process environment, in increasing precedence.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	dotenv, err := readDotEnv(dotEnvPath)
	if err != nil {
		return nil, err
	}
	cfg.applyEnvVars(dotenv)

	return cfg, nil
}

// LoadFromFile is like Load but uses a YAML file as the base layer.
// Returns an error if the file cannot be read or parsed.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	dotenv, err := readDotEnv(dotEnvPath)
	if err != nil {
		return nil, err
	}
	cfg.applyEnvVars(dotenv)

	return cfg, nil
}

// Configured returns true if the secret, endpoint and domain are all set.
func (c *Config) Configured() bool {
	return c.Mailgun.Secret != "" &&
		c.Mailgun.Endpoint != "" &&
		c.Mailgun.Domain != ""
}

// Validate reports which required settings are missing.
func (c *Config) Validate() error {
	var missing []string
	if c.Mailgun.Secret == "" {
		missing = append(missing, "MAILGUN_SECRET")
	}
	if c.Mailgun.Endpoint == "" {
		missing = append(missing, "MAILGUN_ENDPOINT")
	}
	if c.Mailgun.Domain == "" {
		missing = append(missing, "MAILGUN_DOMAIN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// NewFromConfig validates cfg and builds a Client with a JSON logger on
// stderr at the configured level.
func NewFromConfig(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Logging.Level, os.Stderr)
	logger.Debug("creating mailgun client", "account", cfg.Mailgun)

	return New(
		cfg.Mailgun.Secret,
		cfg.Mailgun.Endpoint,
		cfg.Mailgun.Domain,
		WithTimeout(cfg.HTTP.Timeout),
		WithLogger(logger),
	), nil
}

// applyDefaults sets default values for all optional fields.
func (c *Config) applyDefaults() {
	c.Mailgun.Endpoint = EndpointUS
	c.HTTP.Timeout = defaultTimeout
	c.Logging.Level = "info"
}

// applyEnvVars overrides configuration with values from the environment,
// falling back to the .env values. Empty values never override.
func (c *Config) applyEnvVars(dotenv map[string]string) {
	get := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	if v := get("MAILGUN_SECRET"); v != "" {
		c.Mailgun.Secret = v
	}
	if v := get("MAILGUN_ENDPOINT"); v != "" {
		c.Mailgun.Endpoint = v
	}
	if v := get("MAILGUN_DOMAIN"); v != "" {
		c.Mailgun.Domain = v
	}
	if v := get("MAILGUN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.HTTP.Timeout = d
		}
	}
	if v := get("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

// readDotEnv reads a .env file without touching the process environment.
// A missing file yields no values.
func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}
