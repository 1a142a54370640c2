package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment names
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Config 应用配置
type Config struct {
	Port        string        `yaml:"port" validate:"required"`
	Environment string        `yaml:"environment" validate:"oneof=development production test"`
	DBPath      string        `yaml:"dbPath" validate:"required"`
	DatasetSeed uint64        `yaml:"datasetSeed"` // 0 = seed from clock
	ReplyDelay  time.Duration `yaml:"replyDelay"`  // Simulated "thinking" delay reported to the client
	RateLimit   RateLimit     `yaml:"rateLimit"`
	Chart       Chart         `yaml:"chart"`
}

// RateLimit bounds query requests per client IP
type RateLimit struct {
	Requests int           `yaml:"requests" validate:"min=1"`
	Window   time.Duration `yaml:"window" validate:"required"`
}

// Chart holds default PNG dimensions
type Chart struct {
	Width  int `yaml:"width" validate:"min=200,max=2000"`
	Height int `yaml:"height" validate:"min=200,max=2000"`
}

var validate = validator.New()

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Port:        ":8080",
		Environment: Development,
		DBPath:      ":memory:",
		ReplyDelay:  time.Second,
		RateLimit: RateLimit{
			Requests: 60,
			Window:   time.Minute,
		},
		Chart: Chart{
			Width:  800,
			Height: 450,
		},
	}
}

// Load 加载配置
// Sources in increasing priority: defaults, the YAML file named by
// CONFIG_FILE, environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		if !strings.Contains(v, ":") {
			v = ":" + v
		}
		c.Port = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = strings.ToLower(v)
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DBPath = v
	}

	var err error
	if v := os.Getenv("DATASET_SEED"); v != "" {
		if c.DatasetSeed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return fmt.Errorf("invalid DATASET_SEED: %w", err)
		}
	}
	if v := os.Getenv("REPLY_DELAY"); v != "" {
		if c.ReplyDelay, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid REPLY_DELAY: %w", err)
		}
	}
	if v := os.Getenv("RATE_LIMIT_REQUESTS"); v != "" {
		if c.RateLimit.Requests, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %w", err)
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		if c.RateLimit.Window, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
		}
	}
	if v := os.Getenv("CHART_WIDTH"); v != "" {
		if c.Chart.Width, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid CHART_WIDTH: %w", err)
		}
	}
	if v := os.Getenv("CHART_HEIGHT"); v != "" {
		if c.Chart.Height, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid CHART_HEIGHT: %w", err)
		}
	}
	return nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.ReplyDelay < 0 {
		return errors.New("invalid configuration: reply delay must not be negative")
	}
	if c.RateLimit.Window < 0 {
		return errors.New("invalid configuration: rate limit window must be positive")
	}
	return nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
