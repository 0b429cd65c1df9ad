package mdrender

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rgonek/siteswap-renderer/siteswap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hookContextKey string

const traceContextKey hookContextKey = "trace"

func TestImageHookRewritesImage(t *testing.T) {
	conv := newTestConverter(t, Config{
		ImageHook: func(ctx context.Context, in ImageRenderInput) (ImageRenderOutput, error) {
			assert.Equal(t, "hook-test", ctx.Value(traceContextKey))
			assert.Equal(t, "docs/tricks.md", in.SourcePath)
			assert.Equal(t, 1, in.Line)
			assert.Equal(t, "pattern: 531\n", in.Source)
			assert.Equal(t, "https://jugglinglab.org/anim?redirect=true;pattern=531", in.URL)
			assert.Equal(t, "redirect=true;pattern=531", in.Query)
			assert.Equal(t, "531", in.Pattern)
			assert.Equal(t, float64(400), in.DisplayWidth)
			assert.Equal(t, []string{"redirect", "pattern"}, in.Params.Keys())
			return ImageRenderOutput{
				URL:     "img/531.gif",
				Alt:     "Three ball 531",
				Handled: true,
			}, nil
		},
	})

	ctx := context.WithValue(context.Background(), traceContextKey, "hook-test")
	result, err := conv.ConvertWithContext(ctx, "```siteswap\npattern: 531\n```\n", ConvertOptions{SourcePath: "docs/tricks.md"})
	require.NoError(t, err)

	assert.Equal(t, `<div class="siteswap"><img src="img/531.gif" alt="Three ball 531" style="width: 400px;"></div>`+"\n", result.HTML)
	require.Len(t, result.Blocks, 1)
	assert.Equal(t, "img/531.gif", result.Blocks[0].URL)
}

func TestImageHookNotHandledKeepsServiceURL(t *testing.T) {
	conv := newTestConverter(t, Config{
		ImageHook: func(context.Context, ImageRenderInput) (ImageRenderOutput, error) {
			return ImageRenderOutput{URL: "ignored.gif"}, nil
		},
	})

	result, err := conv.Convert("```siteswap\n3\n```\n")
	require.NoError(t, err)
	require.Len(t, result.Blocks, 1)
	assert.Equal(t, "https://jugglinglab.org/anim?redirect=true;pattern=3", result.Blocks[0].URL)
}

func TestImageHookSkipsFailedBlocks(t *testing.T) {
	calls := 0
	conv := newTestConverter(t, Config{
		ImageHook: func(context.Context, ImageRenderInput) (ImageRenderOutput, error) {
			calls++
			return ImageRenderOutput{}, nil
		},
	})

	_, err := conv.Convert("```siteswap\nwidth: 10\n```\n\n```siteswap\n3\n```\n")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestImageHookUnresolvedBestEffort(t *testing.T) {
	conv := newTestConverter(t, Config{
		ImageHook: func(context.Context, ImageRenderInput) (ImageRenderOutput, error) {
			return ImageRenderOutput{}, ErrUnresolved
		},
	})

	result, err := conv.Convert("```siteswap\n3\n```\n")
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, siteswap.WarningUnresolvedImage, result.Warnings[0].Type)
	assert.Equal(t, 1, result.Warnings[0].Line)
	assert.Contains(t, result.HTML, `src="https://jugglinglab.org/anim?redirect=true;pattern=3"`)
}

func TestImageHookUnresolvedStrict(t *testing.T) {
	conv := newTestConverter(t, Config{
		ResolutionMode: ResolutionStrict,
		ImageHook: func(context.Context, ImageRenderInput) (ImageRenderOutput, error) {
			return ImageRenderOutput{}, fmt.Errorf("cache miss: %w", ErrUnresolved)
		},
	})

	_, err := conv.Convert("text\n\n```siteswap\n3\n```\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolved)
	assert.Contains(t, err.Error(), "line 3")
}

func TestImageHookErrorFailsConversion(t *testing.T) {
	boom := errors.New("boom")
	conv := newTestConverter(t, Config{
		ImageHook: func(context.Context, ImageRenderInput) (ImageRenderOutput, error) {
			return ImageRenderOutput{}, boom
		},
	})

	_, err := conv.Convert("```siteswap\n3\n```\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "image hook failed")
}

func TestImageHookHandledRequiresURL(t *testing.T) {
	conv := newTestConverter(t, Config{
		ImageHook: func(context.Context, ImageRenderInput) (ImageRenderOutput, error) {
			return ImageRenderOutput{URL: "  ", Handled: true}, nil
		},
	})

	_, err := conv.Convert("```siteswap\n3\n```\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid image hook output")
}

func TestImageHookKeepsDefaultAlt(t *testing.T) {
	conv := newTestConverter(t, Config{
		ImageHook: func(context.Context, ImageRenderInput) (ImageRenderOutput, error) {
			return ImageRenderOutput{URL: "local.gif", Handled: true}, nil
		},
	})

	result, err := conv.Convert("```siteswap\n3\n```\n")
	require.NoError(t, err)
	assert.Contains(t, result.HTML, `<img src="local.gif" alt="siteswap 3"`)
}
