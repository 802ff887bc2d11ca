package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-webblock/pkg/codec"
	"github.com/goliatone/go-webblock/pkg/widget"
	"github.com/goliatone/go-webblock/pkg/widget/dom"
)

// RenderBlock parses block text and renders it with renderer. A parse
// failure never escapes: the notice markup is returned in place of the
// widget together with the *codec.ParseError so callers can log it. Any
// other error is a renderer failure and yields no output.
func RenderBlock(ctx context.Context, renderer Renderer, text string, options RenderOptions) ([]byte, error) {
	if renderer == nil {
		return nil, errors.New("render: renderer is required")
	}

	cfg, err := codec.Parse(text)
	if err != nil {
		notice, nerr := Notice(options.Mount(), err)
		if nerr != nil {
			return nil, nerr
		}
		return notice, err
	}

	out, err := renderer.Render(ctx, cfg, options)
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", renderer.Name(), err)
	}
	return out, nil
}

// Notice renders the plain-text error notice shown instead of a widget.
func Notice(mountID string, cause error) ([]byte, error) {
	doc := dom.New(mountID)
	if _, err := doc.CreateElement(doc.Mount(), widget.KindNotice, widget.Attrs{
		Text: widget.NoticeText(cause),
	}); err != nil {
		return nil, fmt.Errorf("render: notice: %w", err)
	}
	out, err := doc.HTML()
	if err != nil {
		return nil, fmt.Errorf("render: notice: %w", err)
	}
	return []byte(out), nil
}

// IsNotice reports whether err returned by RenderBlock came with notice
// output rather than a renderer failure.
func IsNotice(err error) bool {
	return errors.Is(err, codec.ErrMalformedPayload)
}
