// Package html renders webblocks to static HTML with pongo2 templates. The
// markup carries data attributes only; clicks are wired by the embedded
// runtime script (see AssetsFS).
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-webblock/pkg/model"
	"github.com/goliatone/go-webblock/pkg/render"
	rendertemplate "github.com/goliatone/go-webblock/pkg/render/template"
	gotemplate "github.com/goliatone/go-webblock/pkg/render/template/gotemplate"
	"github.com/goliatone/go-webblock/pkg/widget"
)

const templateName = "templates/widget.tmpl"

// Name is the registry key of the html renderer.
const Name = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/widget.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the html renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, cfg model.BlockConfig, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(templateName, templateData(cfg, options))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(strings.TrimRight(result, "\n")), nil
}

func templateData(cfg model.BlockConfig, options render.RenderOptions) map[string]any {
	buttons := make([]any, 0, len(cfg.Buttons))
	for _, button := range cfg.Buttons {
		buttons = append(buttons, map[string]any{
			"label": button.Label,
			"url":   button.URL,
			"style": widget.ButtonStyle(cfg, button),
		})
	}

	themeData := map[string]any{}
	if options.Theme != nil {
		themeData["name"] = options.Theme.Theme
		themeData["variant"] = options.Theme.Variant
		themeData["css_vars"] = render.InlineCSSVars(options.Theme.CSSVars)
	}

	return map[string]any{
		"mount_id":    options.Mount(),
		"row_style":   widget.RowStyle,
		"frame_style": widget.FrameStyle(cfg),
		"buttons":     buttons,
		"theme":       themeData,
	}
}
