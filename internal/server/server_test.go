package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-webblock/pkg/model"
	"github.com/goliatone/go-webblock/pkg/render"
	"github.com/goliatone/go-webblock/pkg/renderers/dom"
	"github.com/goliatone/go-webblock/pkg/renderers/html"
)

const guide = "# Guide\n\n```webblock\n[{\"label\":\"Go\",\"url\":\"go.dev\"}]\n```\n"

func newTestRouter(t *testing.T, opts Options) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := render.NewRegistry()
	htmlRenderer, err := html.New()
	require.NoError(t, err)
	registry.MustRegister(htmlRenderer)
	registry.MustRegister(dom.New())

	if opts.Docs == nil {
		opts.Docs = fstest.MapFS{
			"guide.md":       {Data: []byte(guide)},
			"notes/todo.txt": {Data: []byte("plain")},
		}
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	srv, err := New(registry, opts)
	require.NoError(t, err)
	return srv.Router()
}

func perform(router http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, Options{})
	w := perform(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRuntimeScript(t *testing.T) {
	router := newTestRouter(t, Options{})
	w := perform(router, http.MethodGet, "/runtime/"+html.RuntimeScriptName, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "data-webblock-url")
}

func TestParseBlock(t *testing.T) {
	router := newTestRouter(t, Options{})

	w := perform(router, http.MethodPost, "/api/blocks/parse", "[{\"label\":\"a\",\"url\":\"https://a.test\"}]\nheight=20px")
	require.Equal(t, http.StatusOK, w.Code)

	var cfg model.BlockConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, "20px", cfg.Height)
	assert.Equal(t, model.DefaultWidth, cfg.Width)
	assert.Equal(t, model.DefaultButtonSize, cfg.ButtonSize)
	require.Len(t, cfg.Buttons, 1)
	assert.Equal(t, "https://a.test", cfg.Buttons[0].URL)
}

func TestParseBlockMalformed(t *testing.T) {
	router := newTestRouter(t, Options{})
	w := perform(router, http.MethodPost, "/api/blocks/parse", "width=10px")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "malformed payload")
}

func TestRenderBlock(t *testing.T) {
	router := newTestRouter(t, Options{})

	w := perform(router, http.MethodPost, "/api/blocks/render?mount=demo", "[{\"label\":\"Go\",\"url\":\"https://go.dev\"}]")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `data-webblock="demo"`)
	assert.Contains(t, w.Body.String(), `data-webblock-url="https://go.dev"`)

	w = perform(router, http.MethodPost, "/api/blocks/render?renderer=dom", "[{\"label\":\"Go\",\"url\":\"https://go.dev\"}]")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "onclick=")

	w = perform(router, http.MethodPost, "/api/blocks/render", "{}")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid webblock format:")

	w = perform(router, http.MethodPost, "/api/blocks/render?renderer=pdf", "[]")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSerializeBlock(t *testing.T) {
	router := newTestRouter(t, Options{})
	w := perform(router, http.MethodPost, "/api/blocks/serialize",
		`{"buttons":[{"label":"  ","url":"example.com","color":"#123456"}],"height":"250px"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))

	want := "```webblock\n" +
		"[\n" +
		"  {\n" +
		"    \"label\": \"none\",\n" +
		"    \"url\": \"https://example.com\",\n" +
		"    \"color\": \"#123456\"\n" +
		"  }\n" +
		"]\n" +
		"width=100%\n" +
		"height=250px\n" +
		"buttonSize=medium\n" +
		"defaultColor=#007bff\n" +
		"```"
	assert.Equal(t, want, w.Body.String())

	w = perform(router, http.MethodPost, "/api/blocks/serialize", "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocument(t *testing.T) {
	router := newTestRouter(t, Options{})
	w := perform(router, http.MethodGet, "/docs/guide.md", "")

	require.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()
	assert.Contains(t, page, `<script src="/runtime/webblock.js" defer></script>`)
	assert.Contains(t, page, `<h1 id="guide">Guide</h1>`)
	assert.Contains(t, page, `data-webblock="webblock-1"`)
	assert.Contains(t, page, `data-webblock-url="go.dev"`)
}

func TestDocumentNotFound(t *testing.T) {
	router := newTestRouter(t, Options{})
	for _, target := range []string{
		"/docs/missing.md",
		"/docs/../guide.md",
		"/docs/notes/todo.txt",
		"/docs/",
	} {
		w := perform(router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, w.Code, target)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t, Options{})

	w := perform(router, http.MethodPost, "/api/blocks/parse", "[]")
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodPost, "/api/blocks/parse", strings.NewReader("[]"))
	req.Header.Set(HeaderRequestID, "req-42")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
}

func TestLoggingIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	router := newTestRouter(t, Options{Log: slog.New(slog.NewJSONHandler(&buf, nil))})

	req := httptest.NewRequest(http.MethodPost, "/api/blocks/parse", strings.NewReader("[]"))
	req.Header.Set(HeaderRequestID, "req-7")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, "request completed", record["msg"])
	fields, ok := record["http"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "req-7", fields["request_id"])
	assert.Equal(t, float64(http.StatusOK), fields["status_code"])
}

func TestRenderBlockNoticeLogsBlockFields(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	router := newTestRouter(t, Options{Log: log})

	w := perform(router, http.MethodPost, "/api/blocks/render?mount=broken", "not json")
	require.Equal(t, http.StatusOK, w.Code)

	var found map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var record map[string]any
		require.NoError(t, json.Unmarshal(line, &record))
		if record["msg"] == "block rendered as notice" {
			found = record
		}
	}
	require.NotNil(t, found, "expected notice log in %s", buf.String())
	block, ok := found["block"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "broken", block["mount_id"])
	assert.Equal(t, "html", block["renderer"])
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, Options{})
	perform(router, http.MethodPost, "/api/blocks/render", "nope")

	w := perform(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `webblock_blocks_rendered_total{result="notice"}`)
	assert.Contains(t, w.Body.String(), `http_requests_total{handler="/api/blocks/render",method="POST",status="200"}`)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery(slog.New(slog.NewJSONHandler(io.Discard, nil))))
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	w := perform(router, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestNewRequiresRegistry(t *testing.T) {
	_, err := New(nil, Options{})
	assert.Error(t, err)

	_, err = New(render.NewRegistry(), Options{})
	assert.Error(t, err)
}
