package widget_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-webblock/pkg/codec"
	"github.com/goliatone/go-webblock/pkg/model"
	"github.com/goliatone/go-webblock/pkg/widget"
	"github.com/goliatone/go-webblock/pkg/widget/dom"
)

func TestRender_ClickSetsFrameTarget(t *testing.T) {
	doc := dom.New("webblock-1")
	cfg := model.NewBlockConfig([]model.ButtonDescriptor{
		{Label: "A", URL: "https://a.test"},
		{Label: "B", URL: "https://b.test"},
	}, model.Defaults())

	w, err := widget.Render(doc, doc.Mount(), cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	frames := doc.FindAll(widget.KindFrame)
	if len(frames) != 1 {
		t.Fatalf("expected exactly one frame, got %d", len(frames))
	}
	if dom.HasAttr(frames[0], "src") {
		t.Fatalf("frame must start blank")
	}

	buttons := doc.FindAll(widget.KindButton)
	if len(buttons) != 2 {
		t.Fatalf("expected two buttons, got %d", len(buttons))
	}
	if dom.Text(buttons[0]) != "A" || dom.Text(buttons[1]) != "B" {
		t.Fatalf("buttons out of order")
	}

	if !doc.Click(buttons[0]) {
		t.Fatalf("expected click handler on button A")
	}
	if got := dom.Attr(frames[0], "src"); got != "https://a.test" {
		t.Fatalf("frame src = %q, want https://a.test", got)
	}

	doc.Click(buttons[1])
	doc.Click(buttons[0])
	doc.Click(buttons[1])
	if got := dom.Attr(frames[0], "src"); got != "https://b.test" {
		t.Fatalf("last click should win, got %q", got)
	}

	if err := w.Activate(0); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if got := dom.Attr(frames[0], "src"); got != "https://a.test" {
		t.Fatalf("activate did not retarget frame, got %q", got)
	}
	if err := w.Activate(5); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestRender_EmptyURLClearsFrame(t *testing.T) {
	doc := dom.New("x")
	cfg := model.NewBlockConfig([]model.ButtonDescriptor{
		{Label: "Go", URL: "https://go.test"},
		{Label: "Clear", URL: ""},
	}, model.Defaults())

	if _, err := widget.Render(doc, doc.Mount(), cfg); err != nil {
		t.Fatalf("render: %v", err)
	}
	buttons := doc.FindAll(widget.KindButton)
	frame := doc.FindAll(widget.KindFrame)[0]

	doc.Click(buttons[0])
	doc.Click(buttons[1])
	if !dom.HasAttr(frame, "src") || dom.Attr(frame, "src") != "" {
		t.Fatalf("expected src cleared to empty string, got %q", dom.Attr(frame, "src"))
	}
}

func TestRender_ColorFallbackAndSizeStyles(t *testing.T) {
	doc := dom.New("x")
	cfg := model.BlockConfig{
		Buttons: []model.ButtonDescriptor{
			{Label: "default", URL: "https://a.test"},
			{Label: "green", URL: "https://b.test", Color: "#00ff00"},
		},
		Width:        "640px",
		Height:       "480px",
		ButtonSize:   model.ButtonSizeSmall,
		DefaultColor: "#ff0000",
	}
	if _, err := widget.Render(doc, doc.Mount(), cfg); err != nil {
		t.Fatalf("render: %v", err)
	}

	buttons := doc.FindAll(widget.KindButton)
	first := dom.Attr(buttons[0], "style")
	second := dom.Attr(buttons[1], "style")
	if !strings.Contains(first, "background-color: #ff0000;") {
		t.Fatalf("expected default color fallback, got %q", first)
	}
	if !strings.Contains(second, "background-color: #00ff00;") {
		t.Fatalf("expected button color, got %q", second)
	}
	if !strings.HasPrefix(first, "padding:4px 8px; font-size:0.75rem; ") {
		t.Fatalf("expected small size style, got %q", first)
	}

	frameStyle := dom.Attr(doc.FindAll(widget.KindFrame)[0], "style")
	if frameStyle != "width: 640px; height: 480px; border: 1px solid #ccc;" {
		t.Fatalf("unexpected frame style %q", frameStyle)
	}
	row := doc.FindAll(widget.KindContainer)
	if len(row) != 1 || dom.Attr(row[0], "style") != widget.RowStyle {
		t.Fatalf("expected a single styled button row")
	}
}

func TestButtonStyle_UnknownSizeKeepsBaseStyle(t *testing.T) {
	cfg := model.BlockConfig{ButtonSize: model.ButtonSize("huge"), DefaultColor: "#123456"}
	got := widget.ButtonStyle(cfg, model.ButtonDescriptor{})
	want := "background-color: #123456; color: white; border:none; border-radius:4px; cursor:pointer;"
	if got != want {
		t.Fatalf("unexpected style\nwant: %q\n got: %q", want, got)
	}
}

func TestRender_EmptyButtons(t *testing.T) {
	doc := dom.New("x")
	w, err := widget.Render(doc, doc.Mount(), model.NewBlockConfig(nil, model.Defaults()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(w.Buttons()) != 0 || len(doc.FindAll(widget.KindButton)) != 0 {
		t.Fatalf("expected no buttons")
	}
	if len(doc.FindAll(widget.KindFrame)) != 1 {
		t.Fatalf("expected the frame even without buttons")
	}
}

func TestRenderSource_MalformedShowsNotice(t *testing.T) {
	doc := dom.New("x")
	w, err := widget.RenderSource(doc, doc.Mount(), "not json\nwidth=50%")
	if w != nil {
		t.Fatalf("expected no widget")
	}
	if !errors.Is(err, codec.ErrMalformedPayload) {
		t.Fatalf("expected malformed payload, got %v", err)
	}

	notices := doc.FindAll(widget.KindNotice)
	if len(notices) != 1 {
		t.Fatalf("expected one notice, got %d", len(notices))
	}
	text := dom.Text(notices[0])
	if !strings.HasPrefix(text, widget.NoticePrefix) || !strings.Contains(text, err.Error()) {
		t.Fatalf("notice should carry the failure, got %q", text)
	}
	if len(doc.FindAll(widget.KindFrame)) != 0 || len(doc.FindAll(widget.KindContainer)) != 0 {
		t.Fatalf("no partial widget may be rendered")
	}
}

func TestRenderSource_Valid(t *testing.T) {
	doc := dom.New("x")
	w, err := widget.RenderSource(doc, doc.Mount(), `[{"label":"A","url":"https://a.test"}]`)
	if err != nil {
		t.Fatalf("render source: %v", err)
	}
	if len(w.Buttons()) != 1 {
		t.Fatalf("expected one button")
	}
	if len(doc.FindAll(widget.KindNotice)) != 0 {
		t.Fatalf("unexpected notice")
	}
}

type failingHost struct {
	failOn widget.Kind
}

func (h failingHost) CreateElement(_ widget.Element, kind widget.Kind, _ widget.Attrs) (widget.Element, error) {
	if kind == h.failOn {
		return nil, errors.New("boom")
	}
	return struct{}{}, nil
}

func (failingHost) SetClickHandler(widget.Element, func()) error { return nil }
func (failingHost) SetFrameTarget(widget.Element, string) error  { return nil }

func TestRender_HostFailures(t *testing.T) {
	cfg := model.NewBlockConfig([]model.ButtonDescriptor{{Label: "A", URL: "u"}}, model.Defaults())
	for _, kind := range []widget.Kind{widget.KindContainer, widget.KindFrame, widget.KindButton} {
		if _, err := widget.Render(failingHost{failOn: kind}, nil, cfg); err == nil {
			t.Fatalf("expected error when %s creation fails", kind)
		}
	}
	if _, err := widget.Render(nil, nil, cfg); err == nil {
		t.Fatalf("expected error for nil host")
	}
}

type brokenFrameHost struct {
	handlers []func()
	reported []error
	sources  []widget.Element
}

func (h *brokenFrameHost) CreateElement(_ widget.Element, kind widget.Kind, _ widget.Attrs) (widget.Element, error) {
	return kind, nil
}

func (h *brokenFrameHost) SetClickHandler(_ widget.Element, fn func()) error {
	h.handlers = append(h.handlers, fn)
	return nil
}

func (h *brokenFrameHost) SetFrameTarget(widget.Element, string) error {
	return errors.New("frame detached")
}

func (h *brokenFrameHost) ReportError(el widget.Element, err error) {
	h.sources = append(h.sources, el)
	h.reported = append(h.reported, err)
}

func TestRender_ClickFailuresReachErrorReporter(t *testing.T) {
	host := &brokenFrameHost{}
	cfg := model.NewBlockConfig([]model.ButtonDescriptor{{Label: "A", URL: "u"}}, model.Defaults())
	if _, err := widget.Render(host, nil, cfg); err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(host.handlers) != 1 {
		t.Fatalf("expected one click handler, got %d", len(host.handlers))
	}

	host.handlers[0]()
	if len(host.reported) != 1 {
		t.Fatalf("expected one reported error, got %v", host.reported)
	}
	if got := host.reported[0].Error(); !strings.Contains(got, "button 0") || !strings.Contains(got, "frame detached") {
		t.Fatalf("unexpected reported error %q", got)
	}
	if host.sources[0] != widget.KindButton {
		t.Fatalf("error should name the clicked button, got %v", host.sources[0])
	}
}
