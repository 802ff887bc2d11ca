package widget

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-webblock/pkg/codec"
	"github.com/goliatone/go-webblock/pkg/model"
)

// NoticePrefix starts the text shown in place of a widget whose block failed
// to parse.
const NoticePrefix = "Invalid webblock format:\n"

// Button pairs a descriptor with the element created for it.
type Button struct {
	Descriptor model.ButtonDescriptor
	Element    Element
}

// Widget is the handle of a rendered block.
type Widget struct {
	host    Host
	frame   Element
	buttons []Button
}

// Render builds the widget under mount. Each button sets the frame target to
// its URL when activated; an empty URL clears the frame.
func Render(host Host, mount Element, cfg model.BlockConfig) (*Widget, error) {
	if host == nil {
		return nil, errors.New("widget: host is required")
	}

	row, err := host.CreateElement(mount, KindContainer, Attrs{Style: RowStyle})
	if err != nil {
		return nil, fmt.Errorf("widget: create button row: %w", err)
	}

	frame, err := host.CreateElement(mount, KindFrame, Attrs{
		Style: FrameStyle(cfg),
		Extra: map[string]string{AttrFrame: ""},
	})
	if err != nil {
		return nil, fmt.Errorf("widget: create frame: %w", err)
	}

	w := &Widget{
		host:    host,
		frame:   frame,
		buttons: make([]Button, 0, len(cfg.Buttons)),
	}

	for i, descriptor := range cfg.Buttons {
		el, err := host.CreateElement(row, KindButton, Attrs{
			Text:  descriptor.Label,
			Style: ButtonStyle(cfg, descriptor),
			Extra: map[string]string{
				"type":  "button",
				AttrURL: descriptor.URL,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("widget: create button %d: %w", i, err)
		}

		if err := host.SetClickHandler(el, clickHandler(host, el, frame, i, descriptor.URL)); err != nil {
			return nil, fmt.Errorf("widget: wire button %d: %w", i, err)
		}
		w.buttons = append(w.buttons, Button{Descriptor: descriptor, Element: el})
	}

	return w, nil
}

func clickHandler(host Host, el, frame Element, i int, url string) func() {
	return func() {
		err := host.SetFrameTarget(frame, url)
		if err == nil {
			return
		}
		if reporter, ok := host.(ErrorReporter); ok {
			reporter.ReportError(el, fmt.Errorf("widget: button %d: set frame target: %w", i, err))
		}
	}
}

// RenderSource parses block text and renders it. When parsing fails a notice
// element carrying the failure is created under mount instead and the parse
// error is returned with a nil widget.
func RenderSource(host Host, mount Element, text string) (*Widget, error) {
	if host == nil {
		return nil, errors.New("widget: host is required")
	}

	cfg, err := codec.Parse(text)
	if err != nil {
		if _, nerr := host.CreateElement(mount, KindNotice, Attrs{Text: NoticeText(err)}); nerr != nil {
			return nil, fmt.Errorf("widget: create notice: %w", nerr)
		}
		return nil, err
	}
	return Render(host, mount, cfg)
}

// NoticeText formats the notice shown for a failed block.
func NoticeText(err error) string {
	if err == nil {
		return NoticePrefix
	}
	return NoticePrefix + err.Error()
}

// Frame returns the content frame element.
func (w *Widget) Frame() Element {
	return w.frame
}

// Buttons returns the rendered buttons in display order.
func (w *Widget) Buttons() []Button {
	out := make([]Button, len(w.buttons))
	copy(out, w.buttons)
	return out
}

// Activate behaves like a click on button i.
func (w *Widget) Activate(i int) error {
	if i < 0 || i >= len(w.buttons) {
		return fmt.Errorf("widget: button index %d out of range", i)
	}
	return w.host.SetFrameTarget(w.frame, w.buttons[i].Descriptor.URL)
}
