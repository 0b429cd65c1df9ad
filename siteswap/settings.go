package siteswap

import (
	"fmt"
	"strconv"
	"strings"
)

// ShowGround controls whether the animation displays the ground.
type ShowGround string

const (
	ShowGroundAuto  ShowGround = "auto"
	ShowGroundTrue  ShowGround = "true"
	ShowGroundFalse ShowGround = "false"
)

// Settings is the persisted, process-wide default parameter set. Values in a
// block override these per render.
type Settings struct {
	Width        float64    `json:"width" yaml:"width" toml:"width"`
	Height       float64    `json:"height" yaml:"height" toml:"height"`
	Scale        float64    `json:"scale" yaml:"scale" toml:"scale"`
	FPS          float64    `json:"fps" yaml:"fps" toml:"fps"`
	Stereo       bool       `json:"stereo" yaml:"stereo" toml:"stereo"`
	Slowdown     float64    `json:"slowdown" yaml:"slowdown" toml:"slowdown"`
	CamAngle     string     `json:"camangle" yaml:"camangle" toml:"camangle"`
	ShowGround   ShowGround `json:"showground" yaml:"showground" toml:"showground"`
	HideJugglers string     `json:"hidejugglers" yaml:"hidejugglers" toml:"hidejugglers"`
	Hands        string     `json:"hands" yaml:"hands" toml:"hands"`
}

// Parameter keys understood by the settings record, in declared order.
const (
	KeyWidth        = "width"
	KeyHeight       = "height"
	KeyScale        = "scale"
	KeyFPS          = "fps"
	KeyStereo       = "stereo"
	KeySlowdown     = "slowdown"
	KeyCamAngle     = "camangle"
	KeyShowGround   = "showground"
	KeyHideJugglers = "hidejugglers"
	KeyHands        = "hands"

	KeyPattern  = "pattern"
	KeyRedirect = "redirect"
)

var settingsKeys = []string{
	KeyWidth,
	KeyHeight,
	KeyScale,
	KeyFPS,
	KeyStereo,
	KeySlowdown,
	KeyCamAngle,
	KeyShowGround,
	KeyHideJugglers,
	KeyHands,
}

// SettingsKeys returns the settings field names in declared order.
func SettingsKeys() []string {
	out := make([]string, len(settingsKeys))
	copy(out, settingsKeys)
	return out
}

// DefaultSettings returns the canonical defaults table.
func DefaultSettings() Settings {
	return Settings{
		Width:        400,
		Height:       450,
		Scale:        1,
		FPS:          33.3,
		Stereo:       false,
		Slowdown:     2,
		CamAngle:     "",
		ShowGround:   ShowGroundAuto,
		HideJugglers: "",
		Hands:        "",
	}
}

func (s Settings) applyDefaults() Settings {
	defaults := DefaultSettings()
	if s.Width == 0 {
		s.Width = defaults.Width
	}
	if s.Height == 0 {
		s.Height = defaults.Height
	}
	if s.Scale == 0 {
		s.Scale = defaults.Scale
	}
	if s.FPS == 0 {
		s.FPS = defaults.FPS
	}
	if s.Slowdown == 0 {
		s.Slowdown = defaults.Slowdown
	}
	if s.ShowGround == "" {
		s.ShowGround = defaults.ShowGround
	}
	return s
}

// Validate checks that settings values are usable.
func (s Settings) Validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("width must be positive, got %v", s.Width)
	}
	if s.Height <= 0 {
		return fmt.Errorf("height must be positive, got %v", s.Height)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", s.Scale)
	}
	if s.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %v", s.FPS)
	}
	if s.Slowdown <= 0 {
		return fmt.Errorf("slowdown must be positive, got %v", s.Slowdown)
	}
	if s.ShowGround != ShowGroundAuto && s.ShowGround != ShowGroundTrue && s.ShowGround != ShowGroundFalse {
		return fmt.Errorf("invalid showground %q", s.ShowGround)
	}
	return nil
}

// Params returns the settings as an ordered parameter list.
func (s Settings) Params() Params {
	params := make(Params, 0, len(settingsKeys))
	for _, key := range settingsKeys {
		value, _ := s.Get(key)
		params = append(params, Param{Key: key, Value: value, Source: SourceSettings})
	}
	return params
}

// Get returns the value of the named settings field.
func (s Settings) Get(key string) (Value, bool) {
	switch key {
	case KeyWidth:
		return Number(s.Width), true
	case KeyHeight:
		return Number(s.Height), true
	case KeyScale:
		return Number(s.Scale), true
	case KeyFPS:
		return Number(s.FPS), true
	case KeyStereo:
		return Bool(s.Stereo), true
	case KeySlowdown:
		return Number(s.Slowdown), true
	case KeyCamAngle:
		return String(s.CamAngle), true
	case KeyShowGround:
		return String(string(s.ShowGround)), true
	case KeyHideJugglers:
		return String(s.HideJugglers), true
	case KeyHands:
		return String(s.Hands), true
	default:
		return Value{}, false
	}
}

// Set parses raw according to the type of the named field and returns the
// updated settings. The receiver is not modified.
func (s Settings) Set(key, raw string) (Settings, error) {
	raw = strings.TrimSpace(raw)
	switch key {
	case KeyWidth, KeyHeight, KeyScale, KeyFPS, KeySlowdown:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return s, fmt.Errorf("%s: invalid number %q", key, raw)
		}
		switch key {
		case KeyWidth:
			s.Width = n
		case KeyHeight:
			s.Height = n
		case KeyScale:
			s.Scale = n
		case KeyFPS:
			s.FPS = n
		case KeySlowdown:
			s.Slowdown = n
		}
	case KeyStereo:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return s, fmt.Errorf("%s: invalid boolean %q", key, raw)
		}
		s.Stereo = b
	case KeyCamAngle:
		s.CamAngle = raw
	case KeyShowGround:
		s.ShowGround = ShowGround(strings.ToLower(raw))
	case KeyHideJugglers:
		s.HideJugglers = raw
	case KeyHands:
		s.Hands = raw
	default:
		return s, fmt.Errorf("unknown setting %q", key)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}
