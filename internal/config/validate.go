package config

import (
	"fmt"
	"net/url"

	"github.com/rgonek/siteswap-renderer/mdrender"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := c.validateService(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateService() error {
	u, err := url.Parse(c.Service.BaseURL)
	if err != nil {
		return fmt.Errorf("service.base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("service.base_url must be an absolute URL, got %q", c.Service.BaseURL)
	}
	return nil
}

func (c *Config) validateRender() error {
	switch mdrender.ResolutionMode(c.Render.ResolutionMode) {
	case mdrender.ResolutionBestEffort, mdrender.ResolutionStrict:
	default:
		return fmt.Errorf("render.resolution_mode: unsupported value %q", c.Render.ResolutionMode)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
