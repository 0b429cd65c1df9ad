package mdrender

import (
	"strings"
	"testing"

	"github.com/rgonek/siteswap-renderer/siteswap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRoundTrip(t *testing.T) {
	conv := newTestConverter(t, Config{})

	rendered, err := conv.Convert("```siteswap\npattern: 531\nhands: mills\n```\n\n```siteswap\npattern: 3\nscale: 2\n```\n")
	require.NoError(t, err)

	blocks, err := Extract(strings.NewReader(rendered.HTML), "")
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, rendered.Blocks[0].URL, blocks[0].URL)
	assert.Equal(t, "hands: mills\npattern: 531\n", blocks[0].Source)
	assert.Equal(t, float64(400), blocks[0].DisplayWidth)

	assert.Equal(t, "width: 200\nheight: 225\npattern: 3\n", blocks[1].Source)
	assert.Equal(t, float64(400), blocks[1].DisplayWidth)

	again, err := conv.Renderer().Render(blocks[0].Source)
	require.NoError(t, err)
	assert.Equal(t, rendered.Blocks[0].URL, again.URL)
}

func TestExtractSkipsForeignImages(t *testing.T) {
	input := `<p><img src="https://example.com/cat.png"><img alt="no src"></p>` +
		`<img src="https://jugglinglab.org/anim?redirect=true;pattern=3" style="width: 250px;"/>`

	blocks, err := Extract(strings.NewReader(input), "")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "pattern: 3\n", blocks[0].Source)
	assert.Equal(t, float64(250), blocks[0].DisplayWidth)

	pattern, ok := blocks[0].Params.Get(siteswap.KeyPattern)
	require.True(t, ok)
	assert.Equal(t, siteswap.KindNumber, pattern.Kind())
}

func TestExtractCustomBaseURL(t *testing.T) {
	input := `<img src="https://anim.example/render?pattern=3"><img src="https://jugglinglab.org/anim?pattern=4">`

	blocks, err := Extract(strings.NewReader(input), "https://anim.example/render?")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "pattern: 3\n", blocks[0].Source)
}

func TestExtractBadEscape(t *testing.T) {
	_, err := Extract(strings.NewReader(`<img src="https://jugglinglab.org/anim?pattern=%zz">`), "")
	require.Error(t, err)
}

func TestExtractEmptyDocument(t *testing.T) {
	blocks, err := Extract(strings.NewReader(""), "")
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
