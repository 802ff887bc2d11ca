// Package dom renders webblocks by building the widget through widget.Render
// on an in-memory node tree and serializing it. Buttons carry their click
// handler inline, so the output works without the runtime script.
package dom

import (
	"context"
	"fmt"

	"github.com/goliatone/go-webblock/pkg/model"
	"github.com/goliatone/go-webblock/pkg/render"
	"github.com/goliatone/go-webblock/pkg/widget"
	widgetdom "github.com/goliatone/go-webblock/pkg/widget/dom"
)

type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the dom renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "dom"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, cfg model.BlockConfig, options render.RenderOptions) ([]byte, error) {
	doc := widgetdom.New(options.Mount())
	if options.Theme != nil {
		if vars := render.InlineCSSVars(options.Theme.CSSVars); vars != "" {
			widgetdom.SetAttr(doc.Root(), "style", vars)
		}
	}

	if _, err := widget.Render(doc, doc.Mount(), cfg); err != nil {
		return nil, fmt.Errorf("dom renderer: %w", err)
	}
	out, err := doc.HTML()
	if err != nil {
		return nil, fmt.Errorf("dom renderer: %w", err)
	}
	return []byte(out), nil
}
