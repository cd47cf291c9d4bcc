package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/nfrund/dashboard/internal/theme"
	"github.com/nfrund/dashboard/internal/viewport"
)

// devSessionSecret is only accepted when AppEnv is "development".
const devSessionSecret = "dashboard-development-session-secret"

// Config holds all configuration for the application.
type Config struct {
	// Addr is the address the HTTP server binds to.
	Addr string `env:"APP_ADDR" envDefault:":8080"`
	// AppEnv is "development" or "production".
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	// SessionSecret signs the preferences and flash cookies.
	SessionSecret string `env:"SESSION_SECRET"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"debug"`

	// ThemeDefault is used until the client picks a theme.
	ThemeDefault string `env:"THEME_DEFAULT" envDefault:"dark"`
	// ThemeKey is the key the preference is stored under.
	ThemeKey string `env:"THEME_KEY" envDefault:"ui-theme"`

	// ViewportBreakpoint is the width below which the drawer navigation is used.
	ViewportBreakpoint int `env:"VIEWPORT_BREAKPOINT" envDefault:"768"`

	// RateLimitPerMinute caps form submissions per client IP.
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"10"`
}

// New loads configuration from a .env file (if any) and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads the environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Sanitize normalises values and applies guardrails.
func (c *Config) Sanitize() {
	c.AppEnv = strings.ToLower(strings.TrimSpace(c.AppEnv))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.ThemeDefault = strings.ToLower(strings.TrimSpace(c.ThemeDefault))

	if c.ThemeKey == "" {
		c.ThemeKey = theme.DefaultKey
	}
	if c.ViewportBreakpoint <= 0 {
		c.ViewportBreakpoint = viewport.DefaultBreakpoint
	}
	if c.RateLimitPerMinute <= 0 {
		c.RateLimitPerMinute = 10
	}
	if c.SessionSecret == "" && c.IsDev() {
		c.SessionSecret = devSessionSecret
	}
}

// Validate reports configuration that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if _, err := theme.Parse(c.ThemeDefault); err != nil {
		errs = append(errs, fmt.Errorf("THEME_DEFAULT: %w", err))
	}
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required outside development"))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT: unsupported format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// IsDev reports whether the application runs in development mode.
func (c *Config) IsDev() bool {
	return c.AppEnv == "" || c.AppEnv == "development" || c.AppEnv == "dev"
}

// DefaultTheme returns ThemeDefault as a theme value.
func (c *Config) DefaultTheme() theme.Theme {
	t, err := theme.Parse(c.ThemeDefault)
	if err != nil {
		return theme.Default
	}
	return t
}
