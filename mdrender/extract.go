package mdrender

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/rgonek/siteswap-renderer/siteswap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractedBlock is a siteswap block recovered from rendered HTML.
type ExtractedBlock struct {
	URL          string          `json:"url"`
	Source       string          `json:"source"`
	Params       siteswap.Params `json:"params"`
	DisplayWidth float64         `json:"displayWidth,omitempty"`
}

var widthStylePattern = regexp.MustCompile(`(?i)(?:^|;)\s*width\s*:\s*([0-9]+(?:\.[0-9]+)?)px`)

// Extract scans HTML for service images and decodes each back into block
// text. Images pointing elsewhere are skipped.
func Extract(r io.Reader, baseURL string) ([]ExtractedBlock, error) {
	var blocks []ExtractedBlock
	tokenizer := html.NewTokenizer(r)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to read HTML: %w", err)
			}
			return blocks, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.DataAtom != atom.Img {
				continue
			}
			block, ok, err := extractImage(token, baseURL)
			if err != nil {
				return nil, err
			}
			if ok {
				blocks = append(blocks, block)
			}
		}
	}
}

func extractImage(token html.Token, baseURL string) (ExtractedBlock, bool, error) {
	var src, style string
	for _, attr := range token.Attr {
		switch attr.Key {
		case "src":
			src = attr.Val
		case "style":
			style = attr.Val
		}
	}
	if src == "" {
		return ExtractedBlock{}, false, nil
	}

	params, err := siteswap.ParseImageURL(src, baseURL)
	if err != nil {
		if errors.Is(err, siteswap.ErrNotServiceURL) {
			return ExtractedBlock{}, false, nil
		}
		return ExtractedBlock{}, false, err
	}

	block := ExtractedBlock{
		URL:    src,
		Source: siteswap.FormatBlock(params),
		Params: params,
	}
	if m := widthStylePattern.FindStringSubmatch(style); m != nil {
		block.DisplayWidth, _ = strconv.ParseFloat(m[1], 64)
	}
	return block, true, nil
}
