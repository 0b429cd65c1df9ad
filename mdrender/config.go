package mdrender

import (
	"fmt"
	"strings"

	"github.com/rgonek/siteswap-renderer/siteswap"
)

// Config configures markdown rendering.
type Config struct {
	Siteswap       siteswap.Config `json:"siteswap"`
	Language       string          `json:"language,omitempty"`
	ResolutionMode ResolutionMode  `json:"resolutionMode,omitempty"`
	ImageHook      ImageRenderHook `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.ResolutionMode == "" {
		c.ResolutionMode = ResolutionBestEffort
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Language) == "" || strings.ContainsAny(c.Language, " \t`~") {
		return fmt.Errorf("invalid language %q", c.Language)
	}
	if c.ResolutionMode != ResolutionBestEffort && c.ResolutionMode != ResolutionStrict {
		return fmt.Errorf("invalid resolutionMode %q", c.ResolutionMode)
	}
	return nil
}
