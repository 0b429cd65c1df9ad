package mdrender

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// HTMLRenderer renders Block nodes as an image or an inline error message.
type HTMLRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *HTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindBlock, r.renderBlock)
}

func (r *HTMLRenderer) renderBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*Block)

	_, _ = w.WriteString(`<div class="siteswap">`)
	if n.Err != nil {
		_, _ = w.WriteString(`<p class="siteswap-error" style="color: #ff0000;">`)
		_, _ = w.Write(util.EscapeHTML([]byte(n.Err.Error())))
		_, _ = w.WriteString(`</p>`)
	} else {
		_, _ = w.WriteString(`<img src="`)
		_, _ = w.Write(util.EscapeHTML([]byte(n.ImageURL)))
		_, _ = w.WriteString(`" alt="`)
		_, _ = w.Write(util.EscapeHTML([]byte(n.Alt)))
		_, _ = w.WriteString(`" style="width: `)
		_, _ = w.WriteString(strconv.FormatFloat(n.Result.DisplayWidth, 'f', -1, 64))
		_, _ = w.WriteString(`px;">`)
	}
	_, _ = w.WriteString("</div>\n")

	return ast.WalkSkipChildren, nil
}
