// Package mdrender renders siteswap fenced code blocks in markdown documents.
package mdrender

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/rgonek/siteswap-renderer/siteswap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Converter converts GFM markdown with siteswap blocks to HTML.
type Converter struct {
	config   Config
	renderer *siteswap.Renderer
	markdown goldmark.Markdown
}

type state struct {
	ctx      context.Context
	config   Config
	options  ConvertOptions
	warnings []siteswap.Warning
}

// Result holds the output of a conversion.
type Result struct {
	HTML     string             `json:"html"`
	Blocks   []BlockOutcome     `json:"blocks,omitempty"`
	Warnings []siteswap.Warning `json:"warnings,omitempty"`
}

// BlockOutcome summarizes one siteswap block. Exactly one of URL and Error is
// set.
type BlockOutcome struct {
	Line         int                `json:"line"`
	Source       string             `json:"source"`
	URL          string             `json:"url,omitempty"`
	DisplayWidth float64            `json:"displayWidth,omitempty"`
	Error        string             `json:"error,omitempty"`
	ErrorKind    siteswap.ErrorKind `json:"errorKind,omitempty"`
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r, err := siteswap.New(cfg.Siteswap)
	if err != nil {
		return nil, err
	}

	return &Converter{
		config:   cfg,
		renderer: r,
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				&Extension{Renderer: r, Language: cfg.Language},
			),
		),
	}, nil
}

// Renderer returns the block renderer used by the converter.
func (c *Converter) Renderer() *siteswap.Renderer {
	return c.renderer
}

// Convert takes a markdown document and returns HTML.
func (c *Converter) Convert(markdown string) (Result, error) {
	return c.ConvertWithContext(context.Background(), markdown, ConvertOptions{})
}

// ConvertWithContext converts markdown with per-call context and options.
func (c *Converter) ConvertWithContext(ctx context.Context, markdown string, opts ConvertOptions) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &state{
		ctx:     ctx,
		config:  c.config,
		options: opts,
	}
	if err := s.checkContext(); err != nil {
		return Result{}, err
	}

	source := []byte(markdown)
	doc := c.markdown.Parser().Parse(text.NewReader(source))

	blocks := collectBlocks(doc)
	outcomes := make([]BlockOutcome, 0, len(blocks))
	for _, block := range blocks {
		if block.Err == nil {
			if err := s.applyImageHook(block); err != nil {
				return Result{}, err
			}
		}
		outcomes = append(outcomes, s.outcome(block))
	}

	var buf bytes.Buffer
	if err := c.markdown.Renderer().Render(&buf, source, doc); err != nil {
		return Result{}, fmt.Errorf("failed to render HTML: %w", err)
	}

	return Result{
		HTML:     buf.String(),
		Blocks:   outcomes,
		Warnings: s.warnings,
	}, nil
}

func (s *state) outcome(block *Block) BlockOutcome {
	out := BlockOutcome{
		Line:   block.Line,
		Source: block.Source,
	}
	if block.Err != nil {
		out.Error = block.Err.Error()
		var blockErr *siteswap.BlockError
		if errors.As(block.Err, &blockErr) {
			out.ErrorKind = blockErr.Kind
		}
		return out
	}

	out.URL = block.ImageURL
	out.DisplayWidth = block.Result.DisplayWidth
	for _, warning := range block.Result.Warnings {
		warning.Line = block.Line
		s.addWarning(warning)
	}
	return out
}

func (s *state) addWarning(warning siteswap.Warning) {
	s.warnings = append(s.warnings, warning)
}

func (s *state) checkContext() error {
	if err := s.ctx.Err(); err != nil {
		return fmt.Errorf("conversion canceled: %w", err)
	}
	return nil
}

func collectBlocks(doc ast.Node) []*Block {
	var blocks []*Block
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if block, ok := node.(*Block); ok {
			blocks = append(blocks, block)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return blocks
}
