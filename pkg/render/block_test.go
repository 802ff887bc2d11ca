package render_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-webblock/pkg/codec"
	"github.com/goliatone/go-webblock/pkg/model"
	"github.com/goliatone/go-webblock/pkg/render"
	"github.com/goliatone/go-webblock/pkg/renderers/html"
)

func TestRenderBlock_MalformedRendersNotice(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := render.RenderBlock(context.Background(), renderer, "not json\nwidth=50%", render.RenderOptions{MountID: "webblock-9"})
	if !errors.Is(err, codec.ErrMalformedPayload) || !render.IsNotice(err) {
		t.Fatalf("expected malformed payload error, got %v", err)
	}
	got := string(out)
	if !strings.HasPrefix(got, `<div class="webblock" data-webblock="webblock-9"><pre>Invalid webblock format:`) {
		t.Fatalf("unexpected notice markup: %s", got)
	}
	if !strings.Contains(got, "malformed payload: invalid character") {
		t.Fatalf("notice must carry the decode error: %s", got)
	}
	if strings.Contains(got, "<iframe") || strings.Contains(got, "<button") {
		t.Fatalf("notice must replace the whole widget: %s", got)
	}
}

func TestRenderBlock_Valid(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := render.RenderBlock(context.Background(), renderer, `[{"label":"A","url":"https://a.test"}]`, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render block: %v", err)
	}
	if !strings.Contains(string(out), `data-webblock-url="https://a.test"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

type brokenRenderer struct{}

func (brokenRenderer) Name() string        { return "broken" }
func (brokenRenderer) ContentType() string { return "text/plain" }
func (brokenRenderer) Render(context.Context, model.BlockConfig, render.RenderOptions) ([]byte, error) {
	return nil, errors.New("boom")
}

func TestRenderBlock_RendererFailure(t *testing.T) {
	out, err := render.RenderBlock(context.Background(), brokenRenderer{}, "[]", render.RenderOptions{})
	if err == nil || render.IsNotice(err) {
		t.Fatalf("expected renderer failure, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected no output on renderer failure")
	}
	if _, err := render.RenderBlock(context.Background(), nil, "[]", render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}
