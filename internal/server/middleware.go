package server

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goliatone/go-webblock/pkg/logger"
)

// HeaderRequestID carries the request id in and out of the server.
const HeaderRequestID = "X-Request-ID"

var httpRequestsInFlight int64

func init() {
	metrics.NewGauge(`http_requests_in_flight`, func() float64 {
		return float64(atomic.LoadInt64(&httpRequestsInFlight))
	})
}

func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("panic recovered",
					slog.Any("error", err),
					slog.String("stack", string(debug.Stack())),
					slog.String("path", c.Request.URL.Path),
					slog.String("method", c.Request.Method),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(HeaderRequestID, requestID)
		c.Set("request_id", requestID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request completed", logger.HTTPFields(
			logger.GetRequestID(c.Request.Context()),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Milliseconds(),
			c.Writer.Size(),
		))
	}
}

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		atomic.AddInt64(&httpRequestsInFlight, 1)
		defer atomic.AddInt64(&httpRequestsInFlight, -1)

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		path = strings.ReplaceAll(path, `"`, `_`)
		method := strings.ReplaceAll(c.Request.Method, `"`, `_`)
		status := strconv.Itoa(c.Writer.Status())

		metrics.GetOrCreateCounter(`http_requests_total{handler="` + path + `",method="` + method + `",status="` + status + `"}`).Inc()
		metrics.GetOrCreateHistogram(`http_request_duration_seconds{handler="` + path + `",method="` + method + `"}`).Update(time.Since(start).Seconds())
	}
}

func countBlock(notice bool) {
	result := "widget"
	if notice {
		result = "notice"
	}
	metrics.GetOrCreateCounter(`webblock_blocks_rendered_total{result="` + result + `"}`).Inc()
}
