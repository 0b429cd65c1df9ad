package mdrender

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rgonek/siteswap-renderer/siteswap"
)

// ErrUnresolved indicates that an image hook could not resolve a block.
var ErrUnresolved = errors.New("unresolved siteswap image")

// ResolutionMode controls how unresolved hook results are handled.
type ResolutionMode string

const (
	// ResolutionBestEffort continues conversion and keeps the service URL.
	ResolutionBestEffort ResolutionMode = "best_effort"
	// ResolutionStrict fails conversion when a hook returns ErrUnresolved.
	ResolutionStrict ResolutionMode = "strict"
)

// ConvertOptions carries optional per-conversion context.
type ConvertOptions struct {
	SourcePath string
}

// ImageRenderHook can rewrite the image of a successfully rendered block,
// for example to point at a local cache of the animation.
type ImageRenderHook func(ctx context.Context, in ImageRenderInput) (ImageRenderOutput, error)

// ImageRenderInput describes a block about to be rendered as an image.
type ImageRenderInput struct {
	SourcePath   string
	Line         int
	Source       string
	URL          string
	Query        string
	Pattern      string
	DisplayWidth float64
	Params       siteswap.Params
}

// ImageRenderOutput contains hook-provided image data.
type ImageRenderOutput struct {
	URL     string
	Alt     string
	Handled bool
}

func (s *state) applyImageHook(block *Block) error {
	if s.config.ImageHook == nil {
		return nil
	}

	if err := s.checkContext(); err != nil {
		return err
	}

	input := ImageRenderInput{
		SourcePath:   s.options.SourcePath,
		Line:         block.Line,
		Source:       block.Source,
		URL:          block.Result.URL,
		Query:        block.Result.Query,
		Pattern:      block.Result.Pattern,
		DisplayWidth: block.Result.DisplayWidth,
		Params:       block.Result.Sent,
	}

	output, err := s.config.ImageHook(s.ctx, input)
	if err != nil {
		if errors.Is(err, ErrUnresolved) {
			if s.config.ResolutionMode == ResolutionStrict {
				return fmt.Errorf("unresolved siteswap image at line %d: %w", block.Line, err)
			}
			s.addWarning(siteswap.Warning{
				Type:    siteswap.WarningUnresolvedImage,
				Line:    block.Line,
				Message: fmt.Sprintf("unresolved siteswap image %q; using service URL", block.Result.Pattern),
			})
			return nil
		}
		return fmt.Errorf("image hook failed: %w", err)
	}

	if !output.Handled {
		return nil
	}

	if err := validateImageRenderOutput(output); err != nil {
		return fmt.Errorf("invalid image hook output: %w", err)
	}

	block.ImageURL = strings.TrimSpace(output.URL)
	if alt := strings.TrimSpace(output.Alt); alt != "" {
		block.Alt = alt
	}
	return nil
}

func validateImageRenderOutput(output ImageRenderOutput) error {
	if strings.TrimSpace(output.URL) == "" {
		return errors.New("handled image render output requires non-empty url")
	}
	return nil
}
