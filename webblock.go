// Package webblock is the top-level entry point: it re-exports the block
// codec and builds a renderer registry with the bundled renderers.
package webblock

import (
	"context"
	"fmt"

	"github.com/goliatone/go-webblock/pkg/codec"
	"github.com/goliatone/go-webblock/pkg/markdown"
	"github.com/goliatone/go-webblock/pkg/model"
	"github.com/goliatone/go-webblock/pkg/render"
	"github.com/goliatone/go-webblock/pkg/renderers/dom"
	"github.com/goliatone/go-webblock/pkg/renderers/html"
)

// Language is the fence tag that marks a webblock.
const Language = codec.Language

// BlockConfig aliases model.BlockConfig.
type BlockConfig = model.BlockConfig

// ButtonDescriptor aliases model.ButtonDescriptor.
type ButtonDescriptor = model.ButtonDescriptor

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Parse reads block text into a config with defaults applied.
func Parse(text string) (BlockConfig, error) {
	return codec.Parse(text)
}

// Serialize writes buttons and settings as block text.
func Serialize(cfg BlockConfig) (string, error) {
	return codec.SerializeConfig(cfg)
}

// NewRegistry returns a registry holding the html renderer (default) and
// the dom renderer.
func NewRegistry(options ...html.Option) (*render.Registry, error) {
	htmlRenderer, err := html.New(options...)
	if err != nil {
		return nil, fmt.Errorf("webblock: html renderer: %w", err)
	}
	registry := render.NewRegistry()
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, err
	}
	if err := registry.Register(dom.New()); err != nil {
		return nil, err
	}
	return registry, nil
}

// RenderHTML renders block text with the named renderer. Malformed text
// yields the notice markup and a nil error.
func RenderHTML(ctx context.Context, text, rendererName string, options RenderOptions) ([]byte, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	out, err := render.RenderBlock(ctx, renderer, text, options)
	if err != nil && !render.IsNotice(err) {
		return nil, err
	}
	return out, nil
}

// ConvertMarkdown renders a markdown document, replacing every webblock
// fence with its widget.
func ConvertMarkdown(source []byte, options ...markdown.ConverterOption) ([]byte, error) {
	conv, err := markdown.NewConverter(options...)
	if err != nil {
		return nil, err
	}
	return conv.Convert(source)
}
