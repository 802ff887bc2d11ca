package server

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-webblock/pkg/authoring"
	"github.com/goliatone/go-webblock/pkg/codec"
	"github.com/goliatone/go-webblock/pkg/logger"
	"github.com/goliatone/go-webblock/pkg/model"
	"github.com/goliatone/go-webblock/pkg/render"
	"github.com/goliatone/go-webblock/pkg/renderers/html"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) parseBlock(c *gin.Context) {
	text, err := readBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, err := codec.Parse(text)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (s *Server) renderBlock(c *gin.Context) {
	renderer := s.renderer
	if name := c.Query("renderer"); name != "" {
		r, err := s.registry.Get(name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		renderer = r
	}

	text, err := readBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := render.RenderOptions{MountID: c.Query("mount")}
	out, err := render.RenderBlock(c.Request.Context(), renderer, text, opts)
	fields := logger.BlockFields(opts.Mount(), renderer.Name())
	if err != nil && !render.IsNotice(err) {
		s.log.Error("block render failed", fields, "error", err, "request_id", logger.GetRequestID(c.Request.Context()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	if err != nil {
		s.log.Debug("block rendered as notice", fields, "error", err, "request_id", logger.GetRequestID(c.Request.Context()))
	}
	countBlock(err != nil)
	c.Data(http.StatusOK, renderer.ContentType(), out)
}

func (s *Server) serializeBlock(c *gin.Context) {
	var cfg model.BlockConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := authoring.NewSessionFromPresets(authoring.Presets{
		Buttons:      cfg.Buttons,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ButtonSize:   cfg.ButtonSize,
		DefaultColor: cfg.DefaultColor,
	})
	snippet, err := codec.Snippet(session.Submit())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, snippet)
}

func (s *Server) document(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("path"), "/")
	if s.docs == nil || !fs.ValidPath(name) || !isMarkdown(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	source, err := fs.ReadFile(s.docs, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		s.log.Error("document read failed", "path", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read failed"})
		return
	}

	body, err := s.converter.Convert(source)
	if err != nil {
		s.log.Error("document render failed", "path", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}

	page, err := s.pages.RenderTemplate("templates/page", map[string]any{
		"title":       path.Base(name),
		"runtime_url": runtimePrefix + "/" + html.RuntimeScriptName,
		"content":     string(body),
	})
	if err != nil {
		s.log.Error("page template failed", "path", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func readBody(c *gin.Context) (string, error) {
	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func isMarkdown(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}
