package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	goldmarkHtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ConverterOption configures a Converter.
type ConverterOption func(*converterConfig)

type converterConfig struct {
	unsafe     bool
	extOptions []Option
}

// WithUnsafeHTML lets raw HTML in documents through. Each raw HTML node is
// sanitized with a UGC policy; rendered webblocks are written untouched.
func WithUnsafeHTML(enabled bool) ConverterOption {
	return func(c *converterConfig) {
		c.unsafe = enabled
	}
}

// WithExtensionOptions forwards options to the webblock extension.
func WithExtensionOptions(options ...Option) ConverterOption {
	return func(c *converterConfig) {
		c.extOptions = append(c.extOptions, options...)
	}
}

// Converter turns markdown documents into HTML with webblocks rendered.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter builds a GFM converter carrying the webblock extension.
func NewConverter(options ...ConverterOption) (*Converter, error) {
	cfg := converterConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	ext, err := New(cfg.extOptions...)
	if err != nil {
		return nil, err
	}

	rendererOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(extension.GFM, ext),
	}
	if cfg.unsafe {
		rendererOptions = append(rendererOptions, goldmark.WithRendererOptions(
			goldmarkHtml.WithUnsafe(),
			renderer.WithNodeRenderers(util.Prioritized(&rawHTMLRenderer{}, 100)),
		))
	}

	return &Converter{md: goldmark.New(rendererOptions...)}, nil
}

// Convert renders source to HTML.
func (c *Converter) Convert(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown: convert: %w", err)
	}
	return buf.Bytes(), nil
}
