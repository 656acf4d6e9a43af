package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	App         struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`
	Server struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		CORSOrigins     []string      `yaml:"cors_origins"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Provider struct {
		Type string `yaml:"type"`
	} `yaml:"provider"`
	AlphaVantage struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"alphavantage"`
	Yahoo struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"yahoo"`
	Gemini struct {
		APIKey   string        `yaml:"api_key"`
		BaseURL  string        `yaml:"base_url"`
		Model    string        `yaml:"model"`
		Language string        `yaml:"language"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"gemini"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// Secrets are expected to arrive via env in deployed environments.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ALPHA_VANTAGE_KEY"); v != "" {
		c.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("MARKET_PROVIDER"); v != "" {
		c.Provider.Type = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = strings.Split(v, ",")
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "TraderPulse API"
	}
	if c.App.Version == "" {
		c.App.Version = "1.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"http://localhost:3000"}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.AlphaVantage.BaseURL == "" {
		c.AlphaVantage.BaseURL = "https://www.alphavantage.co/query"
	}
	if c.AlphaVantage.Timeout == 0 {
		c.AlphaVantage.Timeout = 10 * time.Second
	}
	if c.Yahoo.BaseURL == "" {
		c.Yahoo.BaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	}
	if c.Yahoo.Timeout == 0 {
		c.Yahoo.Timeout = 10 * time.Second
	}
	if c.Gemini.BaseURL == "" {
		c.Gemini.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Gemini.Language == "" {
		c.Gemini.Language = "es"
	}
	if c.Gemini.Timeout == 0 {
		c.Gemini.Timeout = 10 * time.Second
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Provider.Type == "" {
		return fmt.Errorf("provider.type is required")
	}
	if c.Provider.Type != "alphavantage" && c.Provider.Type != "yahoo" {
		return fmt.Errorf("provider.type must be 'alphavantage' or 'yahoo', got '%s'", c.Provider.Type)
	}
	if c.Provider.Type == "alphavantage" && c.AlphaVantage.APIKey == "" {
		return fmt.Errorf("alphavantage.api_key is required")
	}
	if c.Gemini.Language != "es" && c.Gemini.Language != "en" {
		return fmt.Errorf("gemini.language must be 'es' or 'en', got '%s'", c.Gemini.Language)
	}
	return nil
}
