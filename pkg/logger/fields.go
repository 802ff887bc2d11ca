package logger

import "log/slog"

// HTTPFields groups the attributes logged for a served request.
func HTTPFields(requestID, method, path string, status int, durationMs int64, responseSize int) slog.Attr {
	return slog.Group("http",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status_code", status),
		slog.Int64("duration_ms", durationMs),
		slog.Int("response_size", responseSize),
	)
}

// BlockFields groups the attributes logged for a rendered block.
func BlockFields(mountID, renderer string) slog.Attr {
	return slog.Group("block",
		slog.String("mount_id", mountID),
		slog.String("renderer", renderer),
	)
}
