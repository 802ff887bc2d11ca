package markdown

import (
	"bytes"
	"strconv"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// KindBlock is the node kind of webblock fences.
var KindBlock = ast.NewNodeKind("WebBlock")

// Block replaces a fenced webblock code block. Its lines are the raw block
// body and Index is its 1-based position in the document.
type Block struct {
	ast.BaseBlock
	Index int
}

func (n *Block) Kind() ast.NodeKind {
	return KindBlock
}

func (n *Block) IsRaw() bool {
	return true
}

func (n *Block) IsBlank(source []byte) bool {
	return util.IsBlank(n.Source(source))
}

func (n *Block) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Index": strconv.Itoa(n.Index)}, nil)
}

// Source returns the raw block body.
func (n *Block) Source(source []byte) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	return buf.Bytes()
}
