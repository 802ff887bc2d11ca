package markdown

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

var (
	rawPolicyOnce sync.Once
	rawPolicy     *bluemonday.Policy
)

// rawHTMLRenderer writes author supplied HTML through a sanitizing policy.
// Webblock nodes never reach it, so renderer output keeps its handlers.
type rawHTMLRenderer struct{}

func (r *rawHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
}

func (r *rawHTMLRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n, ok := node.(*ast.HTMLBlock)
	if !ok {
		return ast.WalkContinue, nil
	}

	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	if n.HasClosure() {
		buf.Write(n.ClosureLine.Value(source))
	}

	_, _ = w.Write(sanitizer().SanitizeBytes(buf.Bytes()))
	return ast.WalkContinue, nil
}

func (r *rawHTMLRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	n, ok := node.(*ast.RawHTML)
	if !ok {
		return ast.WalkSkipChildren, nil
	}

	var buf bytes.Buffer
	for i := 0; i < n.Segments.Len(); i++ {
		segment := n.Segments.At(i)
		buf.Write(segment.Value(source))
	}

	_, _ = w.Write(sanitizer().SanitizeBytes(buf.Bytes()))
	return ast.WalkSkipChildren, nil
}

func sanitizer() *bluemonday.Policy {
	rawPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("div", "button", "iframe", "pre")
		policy.AllowDataAttributes()
		policy.AllowAttrs("style").OnElements("div", "button", "iframe")
		policy.AllowAttrs("type").OnElements("button")
		policy.AllowAttrs("src").OnElements("iframe")
		policy.AllowStyling()
		rawPolicy = policy
	})
	return rawPolicy
}
