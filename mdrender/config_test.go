package mdrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.applyDefaults()
	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, ResolutionBestEffort, cfg.ResolutionMode)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:    "language with space",
			config:  Config{Language: "site swap"},
			wantErr: `invalid language "site swap"`,
		},
		{
			name:    "language with backtick",
			config:  Config{Language: "site`swap"},
			wantErr: "invalid language",
		},
		{
			name:    "unknown resolution mode",
			config:  Config{ResolutionMode: "lenient"},
			wantErr: `invalid resolutionMode "lenient"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewRejectsInvalidSiteswapConfig(t *testing.T) {
	cfg := Config{}
	cfg.Siteswap.BaseURL = "/relative"
	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid baseURL")
}
