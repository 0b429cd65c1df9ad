package config

import (
	"strings"

	"github.com/rgonek/siteswap-renderer/mdrender"
	"github.com/rgonek/siteswap-renderer/siteswap"
)

func (c *Config) normalize() {
	c.normalizeSettings()
	c.normalizeService()
	c.normalizeRender()
	c.normalizeLogging()
}

func (c *Config) normalizeSettings() {
	c.Settings.ShowGround = siteswap.ShowGround(strings.ToLower(strings.TrimSpace(string(c.Settings.ShowGround))))
	if c.Settings.ShowGround == "" {
		c.Settings.ShowGround = siteswap.ShowGroundAuto
	}
	c.Settings.CamAngle = strings.TrimSpace(c.Settings.CamAngle)
	c.Settings.HideJugglers = strings.TrimSpace(c.Settings.HideJugglers)
	c.Settings.Hands = strings.TrimSpace(c.Settings.Hands)
}

func (c *Config) normalizeService() {
	c.Service.BaseURL = strings.TrimSpace(c.Service.BaseURL)
	if c.Service.BaseURL == "" {
		c.Service.BaseURL = siteswap.DefaultBaseURL
	}
}

func (c *Config) normalizeRender() {
	c.Render.Language = strings.TrimSpace(c.Render.Language)
	if c.Render.Language == "" {
		c.Render.Language = mdrender.DefaultLanguage
	}
	c.Render.ResolutionMode = strings.ToLower(strings.TrimSpace(c.Render.ResolutionMode))
	if c.Render.ResolutionMode == "" {
		c.Render.ResolutionMode = string(mdrender.ResolutionBestEffort)
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
