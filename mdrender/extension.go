package mdrender

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgonek/siteswap-renderer/siteswap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultLanguage is the fence info string that marks a siteswap block.
const DefaultLanguage = "siteswap"

const (
	priorityTransformer = 100
	priorityRenderer    = 500
)

// Extension renders siteswap fenced code blocks as animation images.
type Extension struct {
	// Renderer builds the image request. A nil Renderer uses the default
	// settings.
	Renderer *siteswap.Renderer
	// Language overrides DefaultLanguage.
	Language string
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	r := e.Renderer
	if r == nil {
		var err error
		if r, err = siteswap.New(siteswap.Config{}); err != nil {
			panic(fmt.Sprintf("mdrender: default siteswap renderer: %v", err))
		}
	}
	language := strings.TrimSpace(e.Language)
	if language == "" {
		language = DefaultLanguage
	}

	m.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(&transformer{renderer: r, language: language}, priorityTransformer),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&HTMLRenderer{}, priorityRenderer),
		),
	)
}

// transformer replaces matching fenced code blocks with Block nodes and
// renders each one. A failing block only affects its own node.
type transformer struct {
	renderer *siteswap.Renderer
	language string
}

// Transform implements parser.ASTTransformer.
func (t *transformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	var fences []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fence, ok := node.(*ast.FencedCodeBlock); ok && t.matches(fence, source) {
			fences = append(fences, fence)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	for _, fence := range fences {
		block := newBlock(fence, source)
		block.Result, block.Err = t.renderer.Render(block.Source)
		if block.Err == nil {
			block.ImageURL = block.Result.URL
			block.Alt = "siteswap " + block.Result.Pattern
		}
		parent := fence.Parent()
		parent.ReplaceChild(parent, fence, block)
	}
}

func (t *transformer) matches(fence *ast.FencedCodeBlock, source []byte) bool {
	language := fence.Language(source)
	return language != nil && strings.EqualFold(string(language), t.language)
}

func newBlock(fence *ast.FencedCodeBlock, source []byte) *Block {
	var buf bytes.Buffer
	lines := fence.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}

	block := &Block{Source: buf.String()}
	block.SetLines(lines)
	if fence.Info != nil {
		block.Line = lineOf(source, fence.Info.Segment.Start)
	} else if lines.Len() > 0 {
		block.Line = lineOf(source, lines.At(0).Start) - 1
	}
	return block
}

func lineOf(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n")) + 1
}
