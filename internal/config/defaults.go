package config

import (
	"github.com/rgonek/siteswap-renderer/mdrender"
	"github.com/rgonek/siteswap-renderer/siteswap"
)

const (
	appName        = "siteswap"
	configFileName = "config.toml"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Settings: siteswap.DefaultSettings(),
		Service: Service{
			BaseURL: siteswap.DefaultBaseURL,
		},
		Render: Render{
			Language:       mdrender.DefaultLanguage,
			ResolutionMode: string(mdrender.ResolutionBestEffort),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
