package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// DefaultEngineURL is used when neither the environment nor the config file names a backend.
const DefaultEngineURL = "http://localhost:8090"

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"15s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Engine struct {
		BaseURL string        `yaml:"base_url" default:"http://localhost:8090"`
		Timeout time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"engine"`
	Sentiment struct {
		URL     string        `yaml:"url" default:"https://api.alternative.me/fng/?limit=2"`
		Timeout time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"sentiment"`
	Refresh struct {
		Interval time.Duration `yaml:"interval" default:"30s"`
	} `yaml:"refresh"`
	RateLimit struct {
		Enabled      bool    `yaml:"enabled" default:"true"`
		Capacity     float64 `yaml:"capacity" default:"60"`
		RefillPerSec float64 `yaml:"refill_per_sec" default:"2"`
	} `yaml:"rate_limit"`
	LogShipping struct {
		Enabled        bool          `yaml:"enabled"`
		Brokers        []string      `yaml:"brokers"`
		Topic          string        `yaml:"topic" default:"godsignal.logs"`
		FlushInterval  time.Duration `yaml:"flush_interval" default:"30s"`
		CountThreshold int           `yaml:"count_threshold" default:"100"`
	} `yaml:"log_shipping"`
}

// Default returns a configuration populated only from struct defaults.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}
	return &c, nil
}

// Load reads and parses a YAML configuration file on top of the defaults.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// The engine base URL is resolved here once; nothing downstream reads the environment.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyEnv(c, os.Getenv)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func applyEnv(c *Config, getenv func(string) string) {
	if v := getenv("NEXT_PUBLIC_API_URL"); v != "" {
		c.Engine.BaseURL = v
	}
	// API_URL takes precedence over the public variant.
	if v := getenv("API_URL"); v != "" {
		c.Engine.BaseURL = v
	}
	if v := getenv("FEAR_GREED_URL"); v != "" {
		c.Sentiment.URL = v
	}
	if v := getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("KAFKA_BROKERS"); v != "" {
		c.LogShipping.Brokers = strings.Split(v, ",")
	}
	c.Engine.BaseURL = strings.TrimRight(c.Engine.BaseURL, "/")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if err := validateHTTPURL("engine.base_url", c.Engine.BaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL("sentiment.url", c.Sentiment.URL); err != nil {
		return err
	}
	if c.Engine.Timeout <= 0 {
		return fmt.Errorf("engine.timeout must be positive")
	}
	if c.Sentiment.Timeout <= 0 {
		return fmt.Errorf("sentiment.timeout must be positive")
	}
	if c.Refresh.Interval <= 0 {
		return fmt.Errorf("refresh.interval must be positive")
	}
	if c.LogShipping.Enabled && len(c.LogShipping.Brokers) == 0 {
		return fmt.Errorf("log_shipping.brokers cannot be empty when shipping is enabled")
	}
	return nil
}

func validateHTTPURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got '%s'", field, raw)
	}
	return nil
}
