// Package server is the webblock preview server: it renders markdown
// documents with their widgets and exposes the block codec over HTTP.
package server

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
	gotemplate "github.com/goliatone/go-template"

	"github.com/goliatone/go-webblock/pkg/logger"
	"github.com/goliatone/go-webblock/pkg/markdown"
	"github.com/goliatone/go-webblock/pkg/render"
	"github.com/goliatone/go-webblock/pkg/render/template"
	"github.com/goliatone/go-webblock/pkg/renderers/html"
)

//go:embed templates/*.tpl
var pageTemplates embed.FS

const (
	runtimePrefix = "/runtime"
	maxBodyBytes  = 1 << 20
)

// Options configure a Server.
type Options struct {
	// Docs is the tree served under /docs. Nil disables the route.
	Docs fs.FS
	// Renderer names the registry entry used for documents and for
	// /api/blocks/render when no renderer query is given.
	Renderer string
	// UnsafeHTML passes raw HTML in documents through the sanitizer.
	UnsafeHTML bool
	Log        *slog.Logger
}

// Server holds the router dependencies.
type Server struct {
	registry  *render.Registry
	docs      fs.FS
	converter *markdown.Converter
	pages     template.TemplateRenderer
	renderer  render.Renderer
	log       *slog.Logger
}

// New wires a server around registry.
func New(registry *render.Registry, opts Options) (*Server, error) {
	if registry == nil {
		return nil, errors.New("server: registry is required")
	}
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}

	renderer, err := registry.Get(opts.Renderer)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	converter, err := markdown.NewConverter(
		markdown.WithUnsafeHTML(opts.UnsafeHTML),
		markdown.WithExtensionOptions(
			markdown.WithRenderer(renderer),
			markdown.WithLogger(log.With("component", "markdown")),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	pages, err := gotemplate.NewRenderer(gotemplate.WithFS(pageTemplates))
	if err != nil {
		return nil, fmt.Errorf("server: page templates: %w", err)
	}

	return &Server{
		registry:  registry,
		docs:      opts.Docs,
		converter: converter,
		pages:     pages,
		renderer:  renderer,
		log:       log,
	}, nil
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(Recovery(s.log))

	router.GET("/health", s.health)
	router.GET("/metrics", func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "text/plain; version=0.0.4")
		metrics.WritePrometheus(c.Writer, true)
	})
	router.StaticFS(runtimePrefix, http.FS(html.AssetsFS()))

	routed := router.Group("/")
	routed.Use(RequestID())
	routed.Use(Metrics())
	routed.Use(Logging(s.log))
	{
		routed.GET("/docs/*path", s.document)

		api := routed.Group("/api/blocks")
		api.POST("/parse", s.parseBlock)
		api.POST("/render", s.renderBlock)
		api.POST("/serialize", s.serializeBlock)
	}

	return router
}
