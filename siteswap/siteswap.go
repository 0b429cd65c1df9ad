// Package siteswap turns siteswap block text into a Juggling Lab animation
// request.
//
// A block is a small "key: value" document (the space after the colon is
// optional) or a bare pattern such as "5b31". Rendering merges the block over
// a settings snapshot, normalizes derived fields, drops values the service
// would assume anyway, and serializes the rest into a cache-friendly URL.
package siteswap

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
)

// Config configures a Renderer.
type Config struct {
	// Settings is the host's settings snapshot merged under every block.
	Settings Settings `json:"settings"`
	// Defaults is the canonical defaults table used for elision.
	Defaults Settings `json:"defaults"`
	// BaseURL is the service endpoint the query string is appended to.
	BaseURL string       `json:"baseURL,omitempty"`
	Logger  *slog.Logger `json:"-"`
}

func (c Config) applyDefaults() Config {
	c.Settings = c.Settings.applyDefaults()
	c.Defaults = c.Defaults.applyDefaults()
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := c.Defaults.Validate(); err != nil {
		return fmt.Errorf("invalid defaults: %w", err)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid baseURL %q: %w", c.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid baseURL %q: must be absolute", c.BaseURL)
	}
	return nil
}

// Renderer renders blocks against a fixed settings snapshot. It holds no
// mutable state and is safe for concurrent use.
type Renderer struct {
	config   Config
	settings Params
	table    Params
}

// New creates a Renderer with the given config.
func New(config Config) (*Renderer, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{
		config:   cfg,
		settings: cfg.Settings.Params(),
		table:    elisionTable(cfg.Defaults),
	}, nil
}

// Render renders source against settings using the canonical defaults.
func Render(source string, settings Settings) (Result, error) {
	r, err := New(Config{Settings: settings})
	if err != nil {
		return Result{}, err
	}
	return r.Render(source)
}

// Settings returns the snapshot the renderer merges under each block.
func (r *Renderer) Settings() Settings {
	return r.config.Settings
}

// BaseURL returns the service endpoint.
func (r *Renderer) BaseURL() string {
	return r.config.BaseURL
}

// Render parses a block and builds the service request. A block that cannot
// be rendered yields a *BlockError whose message is meant for display.
func (r *Renderer) Render(source string) (Result, error) {
	logger := r.config.Logger

	parsed, err := ParseBlock(source)
	if err != nil {
		logger.Debug("siteswap block rejected", "error", err)
		return Result{}, err
	}
	block, err := parsed.validate()
	if err != nil {
		logger.Debug("siteswap block rejected", "error", err)
		return Result{}, err
	}

	warnings := append([]Warning(nil), parsed.Warnings...)
	warnings = append(warnings, unknownKeyWarnings(block)...)

	effective := r.effectiveParams(block, &warnings)
	logger.Debug("siteswap params merged", "params", effective.Keys())

	displayWidth := r.displayWidth(effective, &warnings)
	effective = scaleDimensions(effective, &warnings)
	effective = expandHandsParam(effective)

	sent, elided := elide(effective, r.table)
	query := EncodeQuery(sent)
	logger.Debug("siteswap request built", "query", query, "elided", len(elided))

	pattern, _ := effective.Get(KeyPattern)
	return Result{
		URL:          r.config.BaseURL + query,
		Query:        query,
		DisplayWidth: displayWidth,
		Pattern:      pattern.String(),
		Sent:         sent,
		Elided:       elided,
		Warnings:     warnings,
	}, nil
}

// effectiveParams merges the block over the settings snapshot. The redirect
// flag always comes first and cannot be overridden by the block.
func (r *Renderer) effectiveParams(block Params, warnings *[]Warning) Params {
	if value, ok := block.Get(KeyRedirect); ok {
		*warnings = append(*warnings, Warning{
			Type:    WarningIgnoredParameter,
			Key:     KeyRedirect,
			Message: fmt.Sprintf("redirect=%s ignored; redirect is always true", value),
		})
	}

	base := Params{{Key: KeyRedirect, Value: Bool(true), Source: SourceForced}}
	base = append(base, r.settings...)
	return merge(base, block).With(KeyRedirect, Bool(true), SourceForced)
}

func (r *Renderer) displayWidth(params Params, warnings *[]Warning) float64 {
	value, _ := params.Get(KeyWidth)
	if width, ok := value.Float(); ok {
		return width
	}
	*warnings = append(*warnings, Warning{
		Type:    WarningInvalidValue,
		Key:     KeyWidth,
		Message: fmt.Sprintf("width %q is not a number; displaying at %s px", value, formatNumber(r.config.Settings.Width)),
	})
	return r.config.Settings.Width
}

// scaleDimensions divides width and height by scale. Scale only shrinks the
// requested image; the display width is unaffected.
func scaleDimensions(params Params, warnings *[]Warning) Params {
	scaleValue, ok := params.Get(KeyScale)
	if !ok {
		return params
	}
	scale, ok := scaleValue.Float()
	if !ok || scale <= 0 {
		*warnings = append(*warnings, Warning{
			Type:    WarningInvalidValue,
			Key:     KeyScale,
			Message: fmt.Sprintf("scale %q must be a positive number; dimensions left unscaled", scaleValue),
		})
		return params
	}

	out := params
	for _, key := range []string{KeyWidth, KeyHeight} {
		value, ok := out.Get(key)
		if !ok {
			continue
		}
		n, ok := value.Float()
		if !ok {
			*warnings = append(*warnings, Warning{
				Type:    WarningInvalidValue,
				Key:     key,
				Message: fmt.Sprintf("%s %q is not a number; sent unscaled", key, value),
			})
			continue
		}
		source := out[out.index(key)].Source
		out = out.With(key, Number(n/scale), source)
	}
	return out
}

func expandHandsParam(params Params) Params {
	value, ok := params.Get(KeyHands)
	if !ok {
		return params
	}
	expanded := ExpandHands(value.String())
	if expanded == value.String() {
		return params
	}
	source := params[params.index(KeyHands)].Source
	return params.With(KeyHands, String(expanded), source)
}

func unknownKeyWarnings(block Params) []Warning {
	var warnings []Warning
	for _, param := range block {
		key := strings.TrimSpace(param.Key)
		if serviceKeys[key] || internalKeys[key] {
			continue
		}
		warnings = append(warnings, Warning{
			Type:    WarningUnknownParameter,
			Key:     param.Key,
			Message: fmt.Sprintf("parameter %q is not recognized by the animation service", param.Key),
		})
	}
	return warnings
}
