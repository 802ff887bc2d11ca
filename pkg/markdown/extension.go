package markdown

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/goliatone/go-webblock/pkg/codec"
	"github.com/goliatone/go-webblock/pkg/logger"
	"github.com/goliatone/go-webblock/pkg/render"
	"github.com/goliatone/go-webblock/pkg/renderers/html"
)

const (
	transformerPriority = 100
	rendererPriority    = 100
)

// Option configures the extension.
type Option func(*Extension)

// WithRenderer selects the block renderer. Defaults to the html renderer.
func WithRenderer(r render.Renderer) Option {
	return func(e *Extension) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithRenderOptions sets the base options passed to the renderer. MountID is
// used as a prefix; each block gets "<prefix>-<index>".
func WithRenderOptions(opts render.RenderOptions) Option {
	return func(e *Extension) {
		e.options = opts
	}
}

// WithLogger logs block parse failures at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(e *Extension) {
		if log != nil {
			e.log = log
		}
	}
}

// WithContext sets the context handed to the renderer.
func WithContext(ctx context.Context) Option {
	return func(e *Extension) {
		if ctx != nil {
			e.ctx = ctx
		}
	}
}

// Extension is a goldmark.Extender for webblock fences.
type Extension struct {
	renderer render.Renderer
	options  render.RenderOptions
	log      *slog.Logger
	ctx      context.Context
}

var _ goldmark.Extender = (*Extension)(nil)

// New builds the extension.
func New(options ...Option) (*Extension, error) {
	e := &Extension{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ctx: context.Background(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.renderer == nil {
		r, err := html.New()
		if err != nil {
			return nil, fmt.Errorf("markdown: default renderer: %w", err)
		}
		e.renderer = r
	}
	return e, nil
}

// Extend registers the AST transformer and node renderer.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&blockTransformer{}, transformerPriority),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&blockRenderer{ext: e}, rendererPriority),
	))
}

type blockTransformer struct{}

func (t *blockTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	var fences []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fence, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if string(fence.Language(source)) == codec.Language {
			fences = append(fences, fence)
		}
		return ast.WalkSkipChildren, nil
	})

	for i, fence := range fences {
		block := &Block{Index: i + 1}
		block.SetLines(fence.Lines())
		parent := fence.Parent()
		if parent == nil {
			continue
		}
		parent.ReplaceChild(parent, fence, block)
	}
}

type blockRenderer struct {
	ext *Extension
}

func (r *blockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindBlock, r.renderBlock)
}

func (r *blockRenderer) renderBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	block, ok := node.(*Block)
	if !ok {
		return ast.WalkContinue, nil
	}

	opts := r.ext.options
	opts.MountID = fmt.Sprintf("%s-%d", opts.Mount(), block.Index)

	out, err := render.RenderBlock(r.ext.ctx, r.ext.renderer, string(block.Source(source)), opts)
	if err != nil {
		if !render.IsNotice(err) {
			return ast.WalkStop, err
		}
		r.ext.log.Debug("webblock parse failed", logger.BlockFields(opts.MountID, r.ext.renderer.Name()), "error", err)
	}

	_, _ = w.Write(out)
	_ = w.WriteByte('\n')
	return ast.WalkSkipChildren, nil
}
