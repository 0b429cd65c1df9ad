package mdrender

import (
	"strconv"

	"github.com/rgonek/siteswap-renderer/siteswap"
	"github.com/yuin/goldmark/ast"
)

// KindBlock is the NodeKind of a siteswap block.
var KindBlock = ast.NewNodeKind("SiteswapBlock")

// Block is a siteswap fenced code block together with its render outcome.
type Block struct {
	ast.BaseBlock

	// Source is the raw block text between the fences.
	Source string
	// Line is the 1-based line of the opening fence.
	Line int
	// Result is valid when Err is nil.
	Result siteswap.Result
	Err    error
	// ImageURL is what gets rendered; it starts as Result.URL and may be
	// rewritten by an image hook.
	ImageURL string
	Alt      string
}

// Kind implements ast.Node.Kind.
func (n *Block) Kind() ast.NodeKind {
	return KindBlock
}

// IsRaw implements ast.Node.IsRaw.
func (n *Block) IsRaw() bool {
	return true
}

// Dump implements ast.Node.Dump.
func (n *Block) Dump(source []byte, level int) {
	attrs := map[string]string{
		"Line": strconv.Itoa(n.Line),
	}
	if n.Err != nil {
		attrs["Error"] = n.Err.Error()
	} else {
		attrs["URL"] = n.ImageURL
	}
	ast.DumpHelper(n, source, level, attrs, nil)
}
