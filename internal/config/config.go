package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

var knownWeakSecrets = []string{
	"change-me", "dev-secret-change-me", "secret", "admin", "password",
}

type Config struct {
	Port                   int    `env:"PORT" envDefault:"8080"`
	Environment            string `env:"APP_ENV" envDefault:"development"`
	DatabaseURL            string `env:"DATABASE_URL,required"`
	RedisURL               string `env:"REDIS_URL,required"`
	SessionSecret          string `env:"SESSION_SECRET,required"`
	SessionDurationMinutes int    `env:"SESSION_DURATION_MINUTES" envDefault:"300"`
	LogLevel               string `env:"LOG_LEVEL" envDefault:"info"`
	StaticDir              string `env:"STATIC_DIR" envDefault:"static"`
	UploadDir              string `env:"UPLOAD_DIR" envDefault:"static/site/uploads"`
	UploadBaseURL          string `env:"UPLOAD_BASE_URL" envDefault:"/uploads"`
	MaxUploadBytes         int64  `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SessionDuration is the one canonical session lifetime; the session row
// expiry and the cookie Max-Age are both derived from it.
func (c *Config) SessionDuration() time.Duration {
	return time.Duration(c.SessionDurationMinutes) * time.Minute
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) Validate() error {
	if c.SessionDurationMinutes <= 0 {
		return fmt.Errorf("SESSION_DURATION_MINUTES must be positive")
	}

	if c.IsProduction() {
		if err := validateSecret("SESSION_SECRET", c.SessionSecret); err != nil {
			return err
		}
	}

	return nil
}

func validateSecret(name, value string) error {
	if len(value) < 32 {
		return fmt.Errorf("%s must be at least 32 characters in production (generate with: openssl rand -base64 32)", name)
	}
	for _, weak := range knownWeakSecrets {
		if value == weak {
			return fmt.Errorf("%s is a known weak default; set a strong secret in production", name)
		}
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
