package cart

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings read from the environment.
// Variables are prefixed with USECART_, e.g. USECART_API_KEY.
type Config struct {
	APIKey    string        `envconfig:"API_KEY" validate:"required"`
	BaseURL   string        `envconfig:"BASE_URL" default:"https://api.usecart.com/v1" validate:"required,url"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
	UserAgent string        `envconfig:"USER_AGENT"`
	Debug     bool          `envconfig:"DEBUG" default:"false"`
}

var configValidator = validator.New()

// LoadConfig populates Config from environment variables (prefix USECART_).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("USECART", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	if err := configValidator.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (cfg Config) options() []Option {
	opts := []Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPTimeout(cfg.Timeout),
		WithDebugLogging(cfg.Debug),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, WithUserAgent(cfg.UserAgent))
	}
	return opts
}
