package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-webblock"
	"github.com/goliatone/go-webblock/internal/server"
	"github.com/goliatone/go-webblock/pkg/authoring"
	"github.com/goliatone/go-webblock/pkg/codec"
	"github.com/goliatone/go-webblock/pkg/config"
	"github.com/goliatone/go-webblock/pkg/logger"
	"github.com/goliatone/go-webblock/pkg/markdown"
	"github.com/goliatone/go-webblock/pkg/renderers/html"
)

const usage = `usage: webblock <command> [flags]

commands:
  insert   run the authoring dialog and insert a block into a document
  render   convert a markdown document to HTML
  parse    print the parsed configuration of a block
  serve    start the preview server
`

func main() {
	log := logger.New(os.Getenv("WEBBLOCK_LOG_LEVEL"))
	slog.SetDefault(log)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "insert":
		err = runInsert(ctx, log, os.Args[2:])
	case "render":
		err = runRender(log, os.Args[2:], os.Stdout)
	case "parse":
		err = runParse(os.Args[2:], os.Stdout)
	case "serve":
		err = runServe(log)
	case "-h", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, authoring.ErrAborted) {
			log.Info("aborted")
			os.Exit(130)
		}
		log.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func runInsert(ctx context.Context, log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("insert", flag.ExitOnError)
	file := fs.String("file", "", "markdown document to edit (stdout if empty)")
	offset := fs.Int("offset", -1, "byte offset of the cursor (end of document if negative)")
	presets := fs.String("presets", "", "JSON or YAML presets file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var doc string
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read %s: %w", *file, err)
		}
		doc = string(data)
	}

	var opts []authoring.Option
	if *presets != "" {
		p, err := authoring.LoadPresets(*presets)
		if err != nil {
			return err
		}
		opts = append(opts, authoring.WithPresets(p))
	}

	cursor := *offset
	if cursor < 0 {
		cursor = len(doc)
	}

	cmd := authoring.NewCommand(authoring.NewDialog(opts...), log.With("component", "authoring"))
	out, err := cmd.Execute(ctx, doc, cursor)
	if err != nil {
		return err
	}

	if *file == "" {
		_, err := fmt.Fprintln(os.Stdout, out)
		return err
	}
	if err := os.WriteFile(*file, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *file, err)
	}
	log.Info("document updated", "file", *file)
	return nil
}

func runRender(log *slog.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	input := fs.String("input", "", "markdown document (stdin if empty)")
	output := fs.String("output", "", "output file (stdout if empty)")
	rendererName := fs.String("renderer", html.Name, "renderer to use (html, dom)")
	unsafe := fs.Bool("unsafe", false, "allow sanitized raw HTML from the document")
	if err := fs.Parse(args); err != nil {
		return err
	}

	source, err := readInput(*input)
	if err != nil {
		return err
	}

	registry, err := webblock.NewRegistry()
	if err != nil {
		return err
	}
	renderer, err := registry.Get(*rendererName)
	if err != nil {
		return err
	}

	out, err := webblock.ConvertMarkdown(source,
		markdown.WithUnsafeHTML(*unsafe),
		markdown.WithExtensionOptions(
			markdown.WithRenderer(renderer),
			markdown.WithLogger(log.With("component", "markdown")),
		),
	)
	if err != nil {
		return err
	}
	out = appendRuntime(renderer.Name(), out)

	if *output == "" {
		_, err := stdout.Write(out)
		return err
	}
	if err := os.WriteFile(*output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *output, err)
	}
	log.Info("document rendered", "output", *output)
	return nil
}

// appendRuntime inlines the click-wiring script for renderers whose
// markup depends on it.
func appendRuntime(rendererName string, out []byte) []byte {
	if rendererName != html.Name {
		return out
	}
	script := html.RuntimeScript()
	if script == "" {
		return out
	}
	out = append(out, "<script>\n"...)
	out = append(out, script...)
	return append(out, "</script>\n"...)
}

func runParse(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	input := fs.String("input", "", "block text file (stdin if empty)")
	format := fs.String("format", "json", "output format (json, yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	source, err := readInput(*input)
	if err != nil {
		return err
	}
	cfg, err := codec.Parse(string(source))
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func runServe(log *slog.Logger) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	log = logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	registry, err := webblock.NewRegistry()
	if err != nil {
		return err
	}
	srv, err := server.New(registry, server.Options{
		Docs:       os.DirFS(cfg.DocsDir),
		Renderer:   cfg.Renderer,
		UnsafeHTML: cfg.UnsafeHTML,
		Log:        log.With("component", "server"),
	})
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info("server started", "addr", cfg.Addr, "docs", cfg.DocsDir)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
		log.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
