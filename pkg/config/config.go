package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Profiles struct {
		Path string `yaml:"path"`
	} `yaml:"profiles"`
	WorldBank struct {
		BaseURL   string        `yaml:"base_url"`
		Timeout   time.Duration `yaml:"timeout"`
		YearsBack int           `yaml:"years_back"`
	} `yaml:"worldbank"`
	Quotes struct {
		BaseURL  string        `yaml:"base_url"`
		Timeout  time.Duration `yaml:"timeout"`
		Interval string        `yaml:"interval"`
		Range    string        `yaml:"range"`
		MaxRPS   float64       `yaml:"max_rps"`
	} `yaml:"quotes"`
	Fallback struct {
		Dir string `yaml:"dir"`
	} `yaml:"fallback"`
	Engine struct {
		FetchTimeout  time.Duration `yaml:"fetch_timeout"`
		IndicatorTTL  time.Duration `yaml:"indicator_ttl"`
		QuoteTTL      time.Duration `yaml:"quote_ttl"`
		BatchWorkers  int           `yaml:"batch_workers"`
		SweepInterval time.Duration `yaml:"sweep_interval"`
	} `yaml:"engine"`
	ResponseCache struct {
		Enabled bool   `yaml:"enabled"`
		Backend string `yaml:"backend"` // memory or redis
		Redis   struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"response_cache"`
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

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("WORLDBANK_BASE_URL"); v != "" {
		c.WorldBank.BaseURL = v
	}
	if v := os.Getenv("QUOTES_BASE_URL"); v != "" {
		c.Quotes.BaseURL = v
	}
	if v := os.Getenv("FALLBACK_DIR"); v != "" {
		c.Fallback.Dir = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.ResponseCache.Backend = "redis"
		c.ResponseCache.Redis.Addr = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Profiles.Path == "" {
		return fmt.Errorf("profiles.path is required")
	}
	if c.WorldBank.BaseURL == "" {
		return fmt.Errorf("worldbank.base_url is required")
	}
	if c.Quotes.BaseURL == "" {
		return fmt.Errorf("quotes.base_url is required")
	}
	if c.Fallback.Dir == "" {
		return fmt.Errorf("fallback.dir is required")
	}
	if c.ResponseCache.Enabled && c.ResponseCache.Backend == "redis" && c.ResponseCache.Redis.Addr == "" {
		return fmt.Errorf("response_cache.redis.addr is required for the redis backend")
	}
	return nil
}
