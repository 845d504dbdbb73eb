package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/julianstephens/uvcast/internal/constants"
)

// Config holds the runtime settings for the forecast client.
type Config struct {
	BaseURL    string
	APIDocsURL string
	// Timeout of 0 disables the request timeout
	Timeout time.Duration
	// RateLimit is fetches per second; 0 disables throttling
	RateLimit float64
	Burst     int
	LogDir    string
	Debug     bool
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		BaseURL:    constants.DefaultBaseURL,
		APIDocsURL: constants.DefaultAPIDocsURL,
		Timeout:    constants.DefaultTimeout,
		RateLimit:  constants.DefaultRateLimit,
		Burst:      constants.DefaultBurst,
		LogDir:     constants.DefaultLogDir,
	}
}

// Load reads configuration from environment variables (optionally .env files).
// Missing env files are ignored. Only malformed values are reported here;
// callers apply their overrides and then call Validate.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := Default()

	if v := os.Getenv(constants.EnvAPIURL); v != "" {
		cfg.BaseURL = v
	}

	if v := os.Getenv(constants.EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %s", constants.EnvTimeout, v)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv(constants.EnvRateLimit); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %s", constants.EnvRateLimit, v)
		}
		cfg.RateLimit = rps
	}

	return cfg, nil
}

// Validate checks that the configuration can be used to build a client
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("api url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api url %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api url %q: must be an absolute http(s) url", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", c.Timeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("invalid rate limit %g: must not be negative", c.RateLimit)
	}
	if c.Burst < 1 {
		return fmt.Errorf("invalid burst %d: must be at least 1", c.Burst)
	}
	return nil
}
